package core

import (
	"errors"
	"fmt"
)

// ScreenID names one of the top-level screens.
type ScreenID string

const (
	ScreenLogin    ScreenID = "login"
	ScreenGame     ScreenID = "game"
	ScreenFounders ScreenID = "founders"
	ScreenWallet   ScreenID = "wallet"
)

// ErrBadTransition is returned when a screen change is not allowed.
var ErrBadTransition = errors.New("screen transition not allowed")

var transitions = map[ScreenID][]ScreenID{
	ScreenLogin:    {ScreenGame},
	ScreenGame:     {ScreenFounders, ScreenWallet, ScreenLogin},
	ScreenFounders: {ScreenGame},
	ScreenWallet:   {ScreenGame},
}

// Router tracks the active screen and validates navigation between screens.
type Router struct {
	current  ScreenID
	onChange []func(from, to ScreenID)
}

// NewRouter starts on the login screen.
func NewRouter() *Router { return &Router{current: ScreenLogin} }

// Current returns the active screen.
func (r *Router) Current() ScreenID { return r.current }

// OnChange registers a callback invoked after every successful transition.
func (r *Router) OnChange(fn func(from, to ScreenID)) {
	if fn != nil {
		r.onChange = append(r.onChange, fn)
	}
}

// Go switches to the target screen.
func (r *Router) Go(to ScreenID) error {
	for _, allowed := range transitions[r.current] {
		if allowed == to {
			from := r.current
			r.current = to
			for _, fn := range r.onChange {
				fn(from, to)
			}
			return nil
		}
	}
	return fmt.Errorf("%s -> %s: %w", r.current, to, ErrBadTransition)
}

// Cue identifies a sound effect.
type Cue uint8

const (
	CueSelect Cue = iota
	CueSpawn
	CueMerge
	CueReward
)

func (c Cue) String() string {
	switch c {
	case CueSelect:
		return "select"
	case CueSpawn:
		return "spawn"
	case CueMerge:
		return "merge"
	case CueReward:
		return "reward"
	}
	return "unknown"
}

// SoundPlayer plays sound cues.
type SoundPlayer interface {
	Play(Cue)
}

// NopSound discards every cue.
type NopSound struct{}

// Play does nothing.
func (NopSound) Play(Cue) {}
