package board

import (
	"testing"

	"forest-merge/internal/animals"
)

// scripted is a Random that replays fixed draws.
type scripted struct {
	ints   []int
	floats []float64
}

func (s *scripted) IntN(n int) int {
	if len(s.ints) == 0 || n <= 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scripted) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.99
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

// emptyBoard returns a controller with no animals and the given coin balance.
func emptyBoard(t *testing.T, coins int, opts ...Option) *Controller {
	t.Helper()
	cfg := DefaultConfig()
	cfg.FillChance = 0
	cfg.Economy.StartCoins = coins
	c := New(cfg, opts...)
	if c.Occupied() != 0 {
		t.Fatalf("expected empty board, got %d animals", c.Occupied())
	}
	return c
}

func put(t *testing.T, c *Controller, slot, level int) {
	t.Helper()
	inst, ok := animals.NewInstance(level)
	if !ok {
		t.Fatalf("invalid level %d", level)
	}
	c.slots[slot].Animal = &inst
}

func levelAt(c *Controller, slot int) int {
	s, ok := c.Slot(slot)
	if !ok || s.Animal == nil {
		return 0
	}
	return s.Animal.Level
}

func fill(t *testing.T, c *Controller, level int) {
	t.Helper()
	for i := range c.slots {
		put(t, c, i, level)
	}
}
