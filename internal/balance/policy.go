// Package balance plays scripted sessions against the board to measure how
// fast coins, points and levels accumulate under a given tuning.
package balance

import (
	"time"

	"forest-merge/internal/animals"
	"forest-merge/internal/board"
)

// Options controls a batch of simulated sessions.
type Options struct {
	Sessions int
	Steps    int
	Workers  int
	// Step is the game time that passes between two player actions.
	Step time.Duration
	// UseAds lets the player watch reward videos.
	UseAds bool
	// SpinReserve is the balance kept back before the wheel is used.
	SpinReserve int
}

// DefaultOptions returns a short batch suitable for quick checks.
func DefaultOptions() Options {
	return Options{Sessions: 32, Steps: 400, Workers: 4, Step: time.Second, UseAds: true, SpinReserve: 150}
}

// Result summarises one played session.
type Result struct {
	Seed      int64 `json:"seed"`
	Merges    int   `json:"merges"`
	Spawns    int   `json:"spawns"`
	Spins     int   `json:"spins"`
	Ads       int   `json:"ads"`
	Coins     int   `json:"coins"`
	Points    int   `json:"points"`
	Level     int   `json:"level"`
	TopAnimal int   `json:"top_animal"`
	Stuck     bool  `json:"stuck"`
}

// mergePair finds the lowest-level pair of equal animals below the cap.
func mergePair(slots []board.Slot) (int, int, bool) {
	best, from, to := 0, -1, -1
	for i, a := range slots {
		if a.Empty() || a.Animal.Level >= animals.MaxLevel {
			continue
		}
		for j := i + 1; j < len(slots); j++ {
			b := slots[j]
			if b.Empty() || b.Animal.Level != a.Animal.Level {
				continue
			}
			if from < 0 || a.Animal.Level < best {
				best, from, to = a.Animal.Level, i, j
			}
			break
		}
	}
	return from, to, from >= 0
}

// step makes one greedy decision. It returns false when nothing useful is
// left to do.
func step(c *board.Controller, opts Options, r *Result) bool {
	if c.Modal() == board.ModalSpawnLimit {
		if opts.UseAds {
			if c.WatchSpawnAd() == board.SpawnPlaced {
				r.Spawns++
			}
			r.Ads++
			return true
		}
		switch c.ContinueSpawn() {
		case board.SpawnPlaced:
			r.Spawns++
		case board.SpawnCoolingDown:
		default:
			c.CloseModal()
		}
		return true
	}
	if c.Modal() != board.ModalNone {
		c.CloseModal()
	}

	if from, to, ok := mergePair(c.Slots()); ok {
		if sel := c.Selected(); sel != board.NoSelection {
			c.Tap(sel)
		}
		c.Tap(from)
		if c.Tap(to) == board.TapMerged {
			r.Merges++
		}
		return true
	}

	cfg := c.Config()
	coins := c.Store().Coins()
	if c.Occupied() < cfg.Cols*cfg.Rows && coins >= cfg.Spawn.Price {
		switch c.Spawn() {
		case board.SpawnPlaced:
			r.Spawns++
			return true
		case board.SpawnLimited:
			return true
		}
	}
	if !c.Spinning() && coins >= cfg.Wheel.Cost+opts.SpinReserve && c.Spin() {
		r.Spins++
		return true
	}
	if c.Spinning() {
		return true
	}
	if opts.UseAds {
		c.WatchAd()
		r.Ads++
		return true
	}
	return false
}

// Play runs one session with the given configuration.
func Play(cfg board.Config, opts Options) Result {
	c := board.New(cfg)
	defer c.Close()
	r := Result{Seed: cfg.Seed}
	for i := 0; i < opts.Steps; i++ {
		if !step(c, opts, &r) {
			r.Stuck = true
			break
		}
		c.Tick(opts.Step)
	}
	st := c.Store()
	r.Coins = st.Coins()
	r.Points = st.PointsToday()
	r.Level = st.Level()
	for _, s := range c.Slots() {
		if !s.Empty() && s.Animal.Level > r.TopAnimal {
			r.TopAnimal = s.Animal.Level
		}
	}
	return r
}
