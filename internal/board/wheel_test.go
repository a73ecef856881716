package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSpinRejectedWithoutFunds(t *testing.T) {
	c := emptyBoard(t, 30)

	require.False(t, c.Spin())
	require.False(t, c.Spinning())
	require.Equal(t, 30, c.Store().Coins())
	require.Equal(t, NoticeNoFunds, c.Notice().Kind)
	require.Equal(t, 1, c.Pending(), "only the notice timer is pending")
}

func TestSpinResolvesAfterDelay(t *testing.T) {
	rnd := &scripted{ints: []int{123, 90}}
	c := emptyBoard(t, 1000, WithRandom(rnd))
	points := c.Store().PointsToday()

	require.True(t, c.Spin())
	require.True(t, c.Spinning())
	require.Equal(t, 1800+123, c.Rotation())
	require.Equal(t, 950, c.Store().Coins())

	require.False(t, c.Spin(), "no second spin while turning")
	require.Equal(t, NoticeSpinBusy, c.Notice().Kind)
	require.Equal(t, 950, c.Store().Coins())

	c.Tick(3999 * time.Millisecond)
	require.True(t, c.Spinning())

	c.Tick(time.Millisecond)
	require.False(t, c.Spinning())
	require.Equal(t, 100, c.LastReward())
	require.Equal(t, 1050, c.Store().Coins())
	require.Equal(t, points+100, c.Store().PointsToday())
	require.Equal(t, NoticeWheelWin, c.Notice().Kind)
	require.Equal(t, "You won 100 coins!", c.Notice().Text)
}

func TestSpinRewardRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FillChance = 0
	cfg.Economy.StartCoins = 50
	cfg.Seed = 2024
	c := New(cfg)

	for i := 0; i < 500; i++ {
		// Keep the balance at exactly one spin.
		if d := c.Store().Coins() - 50; d > 0 {
			require.NoError(t, c.Store().Spend(d))
		} else if d < 0 {
			c.Store().Earn(-d, 0)
		}
		before := c.Store().Coins()
		require.True(t, c.Spin())
		c.Tick(4 * time.Second)
		reward := c.LastReward()
		require.GreaterOrEqual(t, reward, 10)
		require.LessOrEqual(t, reward, 250)
		require.Equal(t, before-50+reward, c.Store().Coins())
	}
}
