//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"forest-merge/internal/render"
)

var face = basicfont.Face7x13

func fillRect(dst *ebiten.Image, r image.Rectangle, col color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), col, false)
}

func strokeRect(dst *ebiten.Image, r image.Rectangle, width float32, col color.Color) {
	vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), width, col, false)
}

func drawText(dst *ebiten.Image, s string, x, y int, col color.Color) {
	text.Draw(dst, s, face, x, y, col)
}

// drawCentered draws s centred in r.
func drawCentered(dst *ebiten.Image, s string, r image.Rectangle, col color.Color) {
	b := text.BoundString(face, s)
	x := r.Min.X + (r.Dx()-b.Dx())/2
	y := r.Min.Y + (r.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(dst, s, face, x, y, col)
}

func drawButton(dst *ebiten.Image, h render.Hotspot, label string, enabled, active bool) {
	bg := color.RGBA{R: 255, G: 255, B: 255, A: 235}
	fg := render.Ink
	switch {
	case !enabled:
		bg = color.RGBA{R: 210, G: 218, B: 210, A: 235}
		fg = render.Muted
	case active:
		bg = render.Accent
		fg = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	fillRect(dst, h.Rect, bg)
	strokeRect(dst, h.Rect, 1, render.Muted)
	if label == "" {
		label = h.Label
	}
	drawCentered(dst, label, h.Rect, fg)
}

func drawLine(dst *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.Color) {
	if thickness <= 0 || math.Hypot(x2-x1, y2-y1) <= 1e-4 {
		return
	}
	vector.StrokeLine(dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(thickness), col, true)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func fade(c color.RGBA, alpha float64) color.RGBA {
	a := clamp01(alpha)
	return color.RGBA{
		R: uint8(math.Round(float64(c.R) * a)),
		G: uint8(math.Round(float64(c.G) * a)),
		B: uint8(math.Round(float64(c.B) * a)),
		A: uint8(math.Round(float64(c.A) * a)),
	}
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
