// Package board implements the merge grid and its reward mechanics. All state
// changes happen on the caller's goroutine, either from a player intent or
// from Tick.
package board

import (
	"time"

	"go.uber.org/zap"

	"forest-merge/internal/animals"
	"forest-merge/internal/core"
	"forest-merge/internal/economy"
	pcore "forest-merge/pkg/core"
)

// NoSelection is returned by Selected when no slot is selected.
const NoSelection = -1

// Slot is one grid position. Animal is nil for an empty slot.
type Slot struct {
	Index  int
	Animal *animals.Instance
}

// Empty reports whether the slot holds no animal.
func (s Slot) Empty() bool { return s.Animal == nil }

// TapResult describes what a tap did.
type TapResult uint8

const (
	TapIgnored TapResult = iota
	TapSelected
	TapDeselected
	TapMoved
	TapMerged
	TapReselected
)

// Option customizes a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for gameplay events.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithRandom replaces the seeded RNG.
func WithRandom(r pcore.Random) Option {
	return func(c *Controller) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithStore shares an existing balance store.
func WithStore(s *economy.Store) Option {
	return func(c *Controller) {
		if s != nil {
			c.store = s
		}
	}
}

// WithSound routes sound cues to p.
func WithSound(p core.SoundPlayer) Option {
	return func(c *Controller) {
		if p != nil {
			c.sound = p
		}
	}
}

// Controller owns the board state and the reward mechanics.
type Controller struct {
	cfg    Config
	layout core.Layout
	slots  []Slot

	selected int

	store *economy.Store
	rng   pcore.Random
	sched *core.Scheduler
	log   *zap.Logger
	sound core.SoundPlayer

	spawnCount    int
	cooldownLeft  time.Duration
	cooldownTimer *core.Timer

	spinning   bool
	rotation   int
	lastReward int
	spinTimer  *core.Timer

	autoMerge      bool
	autoMergeTimer *core.Timer

	notice           Notice
	noticeTimer      *core.Timer
	modal            Modal
	celebration      *Celebration
	celebrationTimer *core.Timer

	merges int
	closed bool
}

// New builds a controller and fills the board from the configured RNG.
func New(cfg Config, opts ...Option) *Controller {
	cfg = cfg.normalized()
	c := &Controller{
		cfg:      cfg,
		layout:   core.NewLayout(cfg.Cols, cfg.Rows),
		selected: NoSelection,
		sched:    core.NewScheduler(),
		log:      zap.NewNop(),
		sound:    core.NopSound{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = pcore.NewRNG(cfg.Seed)
	}
	if c.store == nil {
		c.store = economy.NewStore(cfg.Economy.Balances())
	}
	c.populate()
	return c
}

func (c *Controller) populate() {
	c.slots = make([]Slot, c.layout.Len())
	for i := range c.slots {
		c.slots[i] = Slot{Index: i}
		if !pcore.Chance(c.rng, c.cfg.FillChance) {
			continue
		}
		level := pcore.IntRange(c.rng, animals.MinLevel, c.cfg.InitialMaxLevel)
		if inst, ok := animals.NewInstance(level); ok {
			c.slots[i].Animal = &inst
		}
	}
	c.log.Debug("board populated", zap.Int("slots", len(c.slots)), zap.Int("occupied", c.Occupied()))
}

// Config returns the effective configuration.
func (c *Controller) Config() Config { return c.cfg }

// Layout returns the grid dimensions.
func (c *Controller) Layout() core.Layout { return c.layout }

// Store returns the balance store the controller spends from.
func (c *Controller) Store() *economy.Store { return c.store }

// Slots returns a copy of the grid.
func (c *Controller) Slots() []Slot {
	out := make([]Slot, len(c.slots))
	for i, s := range c.slots {
		out[i] = s
		if s.Animal != nil {
			a := *s.Animal
			out[i].Animal = &a
		}
	}
	return out
}

// Slot returns a copy of slot i.
func (c *Controller) Slot(i int) (Slot, bool) {
	if !c.layout.Contains(i) {
		return Slot{}, false
	}
	s := c.slots[i]
	if s.Animal != nil {
		a := *s.Animal
		s.Animal = &a
	}
	return s, true
}

// Selected returns the selected slot or NoSelection.
func (c *Controller) Selected() int { return c.selected }

// Occupied counts slots holding an animal.
func (c *Controller) Occupied() int {
	n := 0
	for _, s := range c.slots {
		if s.Animal != nil {
			n++
		}
	}
	return n
}

// Merges returns the number of merges performed.
func (c *Controller) Merges() int { return c.merges }

func (c *Controller) firstEmpty() int {
	for i, s := range c.slots {
		if s.Animal == nil {
			return i
		}
	}
	return -1
}

// Tap applies a tap on slot i to the selection state machine.
func (c *Controller) Tap(i int) TapResult {
	if c.closed || !c.layout.Contains(i) {
		return TapIgnored
	}
	target := &c.slots[i]

	if c.selected == NoSelection {
		if target.Animal == nil {
			return TapIgnored
		}
		c.selected = i
		c.sound.Play(core.CueSelect)
		return TapSelected
	}

	if c.selected == i {
		c.selected = NoSelection
		return TapDeselected
	}

	source := &c.slots[c.selected]
	if source.Animal == nil {
		c.selected = NoSelection
		return TapIgnored
	}

	if target.Animal == nil {
		target.Animal, source.Animal = source.Animal, nil
		c.log.Debug("move", zap.Int("from", source.Index), zap.Int("to", i))
		c.selected = NoSelection
		return TapMoved
	}

	level := target.Animal.Level
	if level != source.Animal.Level || level >= animals.MaxLevel {
		c.selected = i
		return TapReselected
	}

	merged, ok := animals.NewInstance(level + 1)
	if !ok {
		c.selected = i
		return TapReselected
	}
	source.Animal = nil
	target.Animal = &merged
	c.selected = NoSelection
	c.merges++

	next := merged.Level
	reward := next * c.cfg.Economy.MergeCoinFactor
	c.store.Earn(reward, reward)
	c.store.AddExp(next * c.cfg.Economy.MergeExpFactor)
	c.celebrate(i, next, reward)
	c.sound.Play(core.CueMerge)
	c.log.Debug("merge",
		zap.Int("slot", i),
		zap.Int("level", next),
		zap.Int("reward", reward),
		zap.Int("coins", c.store.Coins()),
	)
	return TapMerged
}

// Tick advances the controller's timers by dt.
func (c *Controller) Tick(dt time.Duration) {
	if c.closed {
		return
	}
	c.sched.Advance(dt)
}

// Pending returns the number of scheduled timers.
func (c *Controller) Pending() int { return c.sched.Pending() }

// Close cancels every pending timer. Further input is ignored.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.sched.CancelAll()
	c.noticeTimer, c.celebrationTimer, c.spinTimer, c.cooldownTimer, c.autoMergeTimer = nil, nil, nil, nil, nil
	c.log.Debug("board closed", zap.Int("merges", c.merges))
}

// Closed reports whether Close has been called.
func (c *Controller) Closed() bool { return c.closed }

// Stats exposes balances plus board counters for the HUD.
func (c *Controller) Stats() core.StatSnapshot {
	snap := c.store.Stats()
	snap.Groups = append(snap.Groups, core.StatGroup{
		Name: "Board",
		Stats: []core.Stat{
			core.CountStat("occupied", "Animals", c.Occupied()),
			core.CountStat("merges", "Merges", c.merges),
			core.CountStat("spawns", "Spawns in a row", c.spawnCount),
			core.FlagStat("auto_merge", "Auto merge", c.autoMerge),
		},
	})
	return snap
}
