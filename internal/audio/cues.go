// Package audio synthesises the board's sound cues with beep.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"forest-merge/internal/core"
)

const sampleRate = beep.SampleRate(44100)

type wave uint8

const (
	waveSine wave = iota
	waveSquare
	waveTriangle
)

type tone struct {
	freq     float64
	phase    float64
	position int
	length   int
	shape    wave
	rate     beep.SampleRate
}

func newTone(freq float64, d time.Duration, shape wave, rate beep.SampleRate) beep.Streamer {
	return &tone{freq: freq, length: rate.N(d), shape: shape, rate: rate}
}

func (o *tone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}
		var v float64
		switch o.shape {
		case waveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case waveTriangle:
			v = 4*math.Abs(o.phase-0.5) - 1
		}
		samples[i][0], samples[i][1] = v, v
		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	s        beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func shape(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{s: s, attack: rate.N(attack), release: rate.N(release), total: rate.N(d)}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.s.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		gain := 1.0
		if e.attack > 0 && e.position < e.attack {
			gain = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; e.release > 0 && left < e.release {
			gain = math.Min(gain, float64(left)/float64(e.release))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

func note(freq float64, d time.Duration, w wave) beep.Streamer {
	return shape(newTone(freq, d, w, sampleRate), d, 5*time.Millisecond, d/2, sampleRate)
}

// Stream builds a fresh streamer for a cue. Unknown cues return nil.
func Stream(c core.Cue, gain float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case core.CueSelect:
		s = note(660, 60*time.Millisecond, waveTriangle)
	case core.CueSpawn:
		s = beep.Seq(
			note(392, 70*time.Millisecond, waveSine),
			note(587.33, 90*time.Millisecond, waveSine),
		)
	case core.CueMerge:
		s = beep.Mix(
			volume(note(523.25, 250*time.Millisecond, waveSine), 0.6),
			volume(note(1046.5, 250*time.Millisecond, waveSine), 0.3),
		)
	case core.CueReward:
		s = beep.Seq(
			note(783.99, 80*time.Millisecond, waveSquare),
			note(987.77, 80*time.Millisecond, waveSquare),
			note(1318.51, 160*time.Millisecond, waveSquare),
		)
	default:
		return nil
	}
	return volume(s, gain)
}

// Duration reports how long a cue plays.
func Duration(c core.Cue) time.Duration {
	switch c {
	case core.CueSelect:
		return 60 * time.Millisecond
	case core.CueSpawn:
		return 160 * time.Millisecond
	case core.CueMerge:
		return 250 * time.Millisecond
	case core.CueReward:
		return 320 * time.Millisecond
	}
	return 0
}
