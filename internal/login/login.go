// Package login holds the sign-in screen state. Authentication is not
// performed; Submit always lets the player in.
package login

import (
	"time"

	"go.uber.org/zap"

	"forest-merge/internal/core"
)

// Method is the sign-in form variant.
type Method string

const (
	MethodManual Method = "manual"
	MethodPhone  Method = "phone"
)

const (
	SloganInterval = 3 * time.Second
	SloganFade     = 500 * time.Millisecond
)

// Slogans rotate under the title.
var Slogans = []string{
	"Play and earn",
	"Pass the time",
	"Beat the boredom",
	"Win real cash",
}

// Screen is the login screen state machine.
type Screen struct {
	method  Method
	slogan  int
	visible bool
	sched   *core.Scheduler
	log     *zap.Logger
	closed  bool
}

// New starts the slogan rotation.
func New(log *zap.Logger) *Screen {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Screen{method: MethodManual, visible: true, sched: core.NewScheduler(), log: log}
	s.sched.After(SloganInterval, s.fadeOut)
	return s
}

func (s *Screen) fadeOut() {
	s.visible = false
	s.sched.After(SloganFade, func() {
		s.slogan = (s.slogan + 1) % len(Slogans)
		s.visible = true
	})
	s.sched.After(SloganInterval, s.fadeOut)
}

// Method returns the selected sign-in variant.
func (s *Screen) Method() Method { return s.method }

// SetMethod switches the sign-in variant; unknown values are ignored.
func (s *Screen) SetMethod(m Method) {
	if m == MethodManual || m == MethodPhone {
		s.method = m
	}
}

// Slogan returns the current slogan and whether it is faded in.
func (s *Screen) Slogan() (string, bool) { return Slogans[s.slogan], s.visible }

// SloganIndex returns the index of the current slogan.
func (s *Screen) SloganIndex() int { return s.slogan }

// Tick advances the screen clock.
func (s *Screen) Tick(dt time.Duration) {
	if s.closed {
		return
	}
	s.sched.Advance(dt)
}

// Submit accepts the sign-in.
func (s *Screen) Submit() bool {
	s.log.Info("player signed in", zap.String("method", string(s.method)))
	return true
}

// Close stops the rotation.
func (s *Screen) Close() {
	s.closed = true
	s.sched.CancelAll()
}
