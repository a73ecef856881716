package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatchAdGrantsBonus(t *testing.T) {
	c := emptyBoard(t, 0)
	c.OpenModal(ModalAd)
	points := c.Store().PointsToday()

	c.WatchAd()
	require.Equal(t, 50, c.Store().Coins())
	require.Equal(t, points, c.Store().PointsToday())
	require.Equal(t, ModalNone, c.Modal())
	require.Equal(t, NoticeAdReward, c.Notice().Kind)
}

func TestAutoMergeExpires(t *testing.T) {
	c := emptyBoard(t, 0)
	put(t, c, 0, 1)
	put(t, c, 1, 1)

	require.True(t, c.ToggleAutoMerge())
	require.Equal(t, NoticeAutoMergeOn, c.Notice().Kind)

	c.Tick(29 * time.Second)
	require.True(t, c.AutoMerge())
	require.Equal(t, 2, c.Occupied(), "the flag never merges on its own")

	c.Tick(time.Second)
	require.False(t, c.AutoMerge())
}

func TestAutoMergeToggleOffCancelsExpiry(t *testing.T) {
	c := emptyBoard(t, 0)
	require.True(t, c.ToggleAutoMerge())
	c.Tick(20 * time.Second)
	require.False(t, c.ToggleAutoMerge())
	require.Equal(t, NoticeAutoMergeOff, c.Notice().Kind)

	require.True(t, c.ToggleAutoMerge())
	c.Tick(20 * time.Second)
	require.True(t, c.AutoMerge(), "the first expiry timer was cancelled")
	c.Tick(10 * time.Second)
	require.False(t, c.AutoMerge())
}

func TestNoticeReplacedAndDismissed(t *testing.T) {
	c := emptyBoard(t, 0)
	require.Equal(t, SpawnNoFunds, c.Spawn())
	c.Tick(2 * time.Second)

	c.WatchAd()
	require.Equal(t, NoticeAdReward, c.Notice().Kind)

	c.Tick(2 * time.Second)
	require.True(t, c.Notice().Active(), "replacement restarted the dismiss timer")
	c.Tick(time.Second)
	require.False(t, c.Notice().Active())
}

func TestModals(t *testing.T) {
	c := emptyBoard(t, 0)
	c.OpenModal(ModalWheel)
	require.Equal(t, ModalWheel, c.Modal())
	c.OpenModal(ModalSpawnLimit)
	require.Equal(t, ModalWheel, c.Modal(), "spawn-limit dialog only opens from Spawn")
	c.CloseModal()
	require.Equal(t, ModalNone, c.Modal())
}
