// Package economy owns the player's balances. A single Store is shared by
// every screen so the board and the wallet always agree on the coin count.
package economy

import (
	"errors"
	"fmt"

	"forest-merge/internal/core"
)

var (
	// ErrInsufficientFunds is returned when a spend exceeds the coin balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInvalidAmount is returned for non-positive spend amounts.
	ErrInvalidAmount = errors.New("amount must be positive")
)

// expPerLevel scales the experience needed to finish a level.
const expPerLevel = 150

// Balances is a value copy of every counter.
type Balances struct {
	Coins       int
	Gems        int
	PointsToday int
	Level       int
	Exp         int
}

// Store holds the authoritative balances.
type Store struct {
	b Balances
}

// NewStore returns a store seeded with the given balances.
func NewStore(initial Balances) *Store {
	if initial.Level < 1 {
		initial.Level = 1
	}
	return &Store{b: initial}
}

// Coins returns the coin balance.
func (s *Store) Coins() int { return s.b.Coins }

// PointsToday returns the points earned today.
func (s *Store) PointsToday() int { return s.b.PointsToday }

// Exp returns the experience towards the next level.
func (s *Store) Exp() int { return s.b.Exp }

// Level returns the player level.
func (s *Store) Level() int { return s.b.Level }

// CanAfford reports whether n coins can be spent.
func (s *Store) CanAfford(n int) bool { return n > 0 && n <= s.b.Coins }

// Spend removes n coins. The balance is untouched on error.
func (s *Store) Spend(n int) error {
	if n <= 0 {
		return fmt.Errorf("spend %d: %w", n, ErrInvalidAmount)
	}
	if n > s.b.Coins {
		return fmt.Errorf("spend %d of %d: %w", n, s.b.Coins, ErrInsufficientFunds)
	}
	s.b.Coins -= n
	return nil
}

// Earn credits coins and today's points. Negative values are ignored.
func (s *Store) Earn(coins, points int) {
	if coins > 0 {
		s.b.Coins += coins
	}
	if points > 0 {
		s.b.PointsToday += points
	}
}

// AddExp adds experience. Negative values are ignored.
func (s *Store) AddExp(n int) {
	if n > 0 {
		s.b.Exp += n
	}
}

// MaxExp returns the experience needed to finish the current level.
func (s *Store) MaxExp() int { return s.b.Level * expPerLevel }

// Progress returns Exp/MaxExp clamped to [0, 1].
func (s *Store) Progress() float64 {
	max := s.MaxExp()
	if max <= 0 {
		return 0
	}
	p := float64(s.b.Exp) / float64(max)
	if p > 1 {
		p = 1
	}
	return p
}

// Snapshot returns a copy of the balances.
func (s *Store) Snapshot() Balances { return s.b }

// Stats exposes the balances for the daily and level panels.
func (s *Store) Stats() core.StatSnapshot {
	return core.StatSnapshot{Groups: []core.StatGroup{
		{
			Name: "Wallet",
			Stats: []core.Stat{
				core.CountStat("coins", "Coins", s.b.Coins),
				core.CountStat("gems", "Gems", s.b.Gems),
				core.CountStat("points_today", "Points today", s.b.PointsToday),
			},
		},
		{
			Name: "Level",
			Stats: []core.Stat{
				core.CountStat("level", "Level", s.b.Level),
				core.CountStat("exp", "XP", s.b.Exp),
				core.CountStat("max_exp", "XP to next", s.MaxExp()),
				core.RatioStat("progress", "Progress", s.Progress()),
			},
		},
	}}
}
