//go:build !ebiten

// Package ui draws the game screens with ebiten. Headless builds get no
// views; the game state lives in the domain packages.
package ui
