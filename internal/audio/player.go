package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"forest-merge/internal/core"
)

// Player mixes cues into the speaker. Until Init succeeds, and while
// muted, Play does nothing.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	ready  bool
	muted  bool
	gain   float64
	log    *zap.Logger
	played int
}

var _ core.SoundPlayer = (*Player)(nil)

// NewPlayer creates an idle player.
func NewPlayer(gain float64, log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	return &Player{mixer: &beep.Mixer{}, gain: gain, log: log}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

// Play queues a cue.
func (p *Player) Play(c core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready || p.muted {
		return
	}
	s := Stream(c, p.gain)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	p.played++
	p.log.Debug("cue", zap.Stringer("cue", c))
}

// ToggleMute flips muting and returns the new state. Muting drops any
// cues still playing.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	if p.muted && p.ready {
		speaker.Lock()
		p.mixer.Clear()
		speaker.Unlock()
	}
	return p.muted
}

// Muted reports whether cues are suppressed.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Close silences the mixer. The speaker stays open for the process lifetime.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.ready = false
}
