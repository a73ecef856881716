package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSpawnLastEmptySlot(t *testing.T) {
	c := emptyBoard(t, 150)
	fill(t, c, 2)
	c.slots[6].Animal = nil

	require.Equal(t, SpawnPlaced, c.Spawn())
	require.Equal(t, 50, c.Store().Coins())
	require.Equal(t, 12, c.Occupied())
	require.Equal(t, 1, levelAt(c, 6))
	require.Equal(t, 1, c.SpawnCount())
}

func TestSpawnNoFunds(t *testing.T) {
	c := emptyBoard(t, 99)

	require.Equal(t, SpawnNoFunds, c.Spawn())
	require.Equal(t, 99, c.Store().Coins())
	require.Equal(t, 0, c.Occupied())
	require.Equal(t, NoticeNoFunds, c.Notice().Kind)
	require.Equal(t, 0, c.SpawnCount())
}

func TestSpawnBoardFullKeepsCoins(t *testing.T) {
	c := emptyBoard(t, 1000)
	fill(t, c, 1)

	require.Equal(t, SpawnBoardFull, c.Spawn())
	require.Equal(t, 1000, c.Store().Coins())
	require.Equal(t, NoticeBoardFull, c.Notice().Kind)
	require.Equal(t, "The cage is full!", c.Notice().Text)
}

func TestSpawnLimitAndCooldown(t *testing.T) {
	c := emptyBoard(t, 1000)
	for i := 0; i < 3; i++ {
		require.Equal(t, SpawnPlaced, c.Spawn())
	}
	require.Equal(t, 700, c.Store().Coins())

	require.Equal(t, SpawnLimited, c.Spawn())
	require.Equal(t, ModalSpawnLimit, c.Modal())
	require.Equal(t, 5*time.Second, c.CooldownRemaining())
	require.Equal(t, 700, c.Store().Coins())
	require.Equal(t, 3, c.Occupied())

	require.Equal(t, SpawnCoolingDown, c.ContinueSpawn())

	c.Tick(time.Second)
	require.Equal(t, 4*time.Second, c.CooldownRemaining())

	// Pressing spawn again restarts the wait.
	require.Equal(t, SpawnLimited, c.Spawn())
	require.Equal(t, 5*time.Second, c.CooldownRemaining())

	c.Tick(4 * time.Second)
	require.Equal(t, SpawnCoolingDown, c.ContinueSpawn())
	require.Equal(t, 3, c.SpawnCount())

	c.Tick(time.Second)
	require.Equal(t, time.Duration(0), c.CooldownRemaining())
	require.Equal(t, SpawnPlaced, c.ContinueSpawn())
	require.Equal(t, ModalNone, c.Modal())
	require.Equal(t, 1, c.SpawnCount())
	require.Equal(t, 600, c.Store().Coins())
}

func TestWatchSpawnAdResetsCounter(t *testing.T) {
	c := emptyBoard(t, 1000)
	require.Equal(t, SpawnIgnored, c.WatchSpawnAd(), "only available from the limit dialog")

	for i := 0; i < 3; i++ {
		c.Spawn()
	}
	require.Equal(t, SpawnLimited, c.Spawn())

	require.Equal(t, SpawnPlaced, c.WatchSpawnAd())
	require.Equal(t, 1, c.SpawnCount())
	require.Equal(t, ModalNone, c.Modal())
	require.Equal(t, time.Duration(0), c.CooldownRemaining())
	require.Equal(t, NoticeAdThanks, c.Notice().Kind)
	require.Equal(t, 600, c.Store().Coins())
	require.Equal(t, 4, c.Occupied())
}

func TestWatchSpawnAdWithoutFunds(t *testing.T) {
	c := emptyBoard(t, 300)
	for i := 0; i < 3; i++ {
		require.Equal(t, SpawnPlaced, c.Spawn())
	}
	require.Equal(t, SpawnLimited, c.Spawn())

	require.Equal(t, SpawnNoFunds, c.WatchSpawnAd())
	require.Equal(t, 0, c.SpawnCount(), "the counter resets even when the spawn fails")
	require.Equal(t, NoticeNoFunds, c.Notice().Kind, "the funds notice replaces the thank-you")
}
