package audio

import (
	"testing"

	"github.com/stretchr/testify/require"

	"forest-merge/internal/core"
)

func drain(t *testing.T, c core.Cue) (int, float64) {
	t.Helper()
	s := Stream(c, 1)
	require.NotNil(t, s)
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for _, f := range buf[:n] {
			if v := f[0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestCueLengths(t *testing.T) {
	for _, c := range []core.Cue{core.CueSelect, core.CueSpawn, core.CueMerge, core.CueReward} {
		n, peak := drain(t, c)
		want := sampleRate.N(Duration(c))
		require.InDeltaf(t, want, n, 3, "cue %s", c)
		require.Greaterf(t, peak, 0.0, "cue %s is silent", c)
		require.LessOrEqualf(t, peak, 1.0, "cue %s clips", c)
	}
}

func TestUnknownCue(t *testing.T) {
	require.Nil(t, Stream(core.Cue(200), 1))
	require.Zero(t, Duration(core.Cue(200)))
}

func TestPlayerIdleUntilInit(t *testing.T) {
	p := NewPlayer(0.5, nil)
	p.Play(core.CueMerge)
	require.Zero(t, p.played)
	require.True(t, p.ToggleMute())
	require.True(t, p.Muted())
	require.False(t, p.ToggleMute())
	p.Close()
}
