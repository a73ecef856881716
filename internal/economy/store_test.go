package economy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpendLeavesBalanceOnFailure(t *testing.T) {
	s := NewStore(Balances{Coins: 30, Level: 5})

	err := s.Spend(50)
	require.ErrorIs(t, err, ErrInsufficientFunds)
	require.Equal(t, 30, s.Coins())

	require.ErrorIs(t, s.Spend(0), ErrInvalidAmount)
	require.ErrorIs(t, s.Spend(-4), ErrInvalidAmount)

	require.NoError(t, s.Spend(30))
	require.Equal(t, 0, s.Coins())
	require.False(t, s.CanAfford(1))
}

func TestEarnAndExperience(t *testing.T) {
	s := NewStore(Balances{Coins: 1250, Gems: 50, PointsToday: 150, Level: 5, Exp: 450})

	s.Earn(40, 40)
	s.AddExp(20)
	s.Earn(-10, -10)
	s.AddExp(-5)

	b := s.Snapshot()
	require.Equal(t, Balances{Coins: 1290, Gems: 50, PointsToday: 190, Level: 5, Exp: 470}, b)
	require.Equal(t, 750, s.MaxExp())
	require.InDelta(t, 470.0/750.0, s.Progress(), 1e-9)

	st, ok := s.Stats().Lookup("points_today")
	require.True(t, ok)
	require.Equal(t, "190", st.Value)
}

func TestStoreDefaultsLevel(t *testing.T) {
	s := NewStore(Balances{Exp: 1000})
	require.Equal(t, 1, s.Level())
	require.Equal(t, 1.0, s.Progress())
}
