package balance

import (
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"forest-merge/internal/animals"
	"forest-merge/internal/board"
)

func TestMergePairPrefersLowestLevel(t *testing.T) {
	mk := func(level int) *animals.Instance {
		in, ok := animals.NewInstance(level)
		require.True(t, ok)
		return &in
	}
	slots := []board.Slot{
		{Index: 0, Animal: mk(3)},
		{Index: 1, Animal: mk(2)},
		{Index: 2},
		{Index: 3, Animal: mk(3)},
		{Index: 4, Animal: mk(2)},
		{Index: 5, Animal: mk(60)},
		{Index: 6, Animal: mk(60)},
	}
	from, to, ok := mergePair(slots)
	require.True(t, ok)
	require.Equal(t, 1, from)
	require.Equal(t, 4, to)

	_, _, ok = mergePair(slots[5:])
	require.False(t, ok, "max level animals never merge")
}

func TestPlayProgresses(t *testing.T) {
	opts := DefaultOptions()
	opts.Steps = 300
	res := Play(board.DefaultConfig(), opts)
	require.Positive(t, res.Merges)
	require.Positive(t, res.Spawns)
	require.GreaterOrEqual(t, res.Coins, 0)
	require.GreaterOrEqual(t, res.TopAnimal, 2)
	require.False(t, res.Stuck)
}

func TestPlayWithoutAdsWaitsOutCooldown(t *testing.T) {
	opts := DefaultOptions()
	opts.UseAds = false
	opts.Steps = 120
	opts.Step = 500 * time.Millisecond
	res := Play(board.DefaultConfig(), opts)
	require.Zero(t, res.Ads)
	require.Greater(t, res.Spawns, board.DefaultConfig().Spawn.Limit)
}

func TestRunIsReproducible(t *testing.T) {
	opts := DefaultOptions()
	opts.Sessions = 6
	opts.Steps = 80
	opts.Workers = 3
	a := Run(board.DefaultConfig(), opts)
	opts.Workers = 1
	b := Run(board.DefaultConfig(), opts)
	require.Equal(t, a, b)
	require.Len(t, a.Results, 6)
	require.Equal(t, int64(42), a.Results[0].Seed)
	require.LessOrEqual(t, a.Coins.Min, a.Coins.Median)
	require.LessOrEqual(t, a.Coins.Median, a.Coins.Max)
}

func TestSummary(t *testing.T) {
	s := summary([]int{5, 1, 3, 9})
	require.Equal(t, Summary{Min: 1, Max: 9, Mean: 4.5, Median: 5}, s)
	require.Equal(t, Summary{}, summary(nil))
}

func TestReportJSON(t *testing.T) {
	rep := summarise([]Result{{Seed: 1, Coins: 10, TopAnimal: 4}})
	out, err := jsoniter.MarshalToString(rep)
	require.NoError(t, err)
	require.Contains(t, out, `"top_animal":{"min":4`)
	require.Contains(t, out, `"seed":1`)
}
