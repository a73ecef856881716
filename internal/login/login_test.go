package login

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSloganRotation(t *testing.T) {
	s := New(nil)
	text, visible := s.Slogan()
	require.Equal(t, Slogans[0], text)
	require.True(t, visible)

	s.Tick(3 * time.Second)
	_, visible = s.Slogan()
	require.False(t, visible)
	require.Equal(t, 0, s.SloganIndex())

	s.Tick(500 * time.Millisecond)
	text, visible = s.Slogan()
	require.True(t, visible)
	require.Equal(t, Slogans[1], text)

	s.Tick(3 * time.Second * time.Duration(len(Slogans)-1))
	require.Equal(t, 0, s.SloganIndex())
}

func TestCloseStopsRotation(t *testing.T) {
	s := New(nil)
	s.Close()
	s.Tick(time.Minute)
	require.Equal(t, 0, s.SloganIndex())
	require.Zero(t, s.sched.Pending())
}

func TestMethodAndSubmit(t *testing.T) {
	s := New(nil)
	defer s.Close()
	require.Equal(t, MethodManual, s.Method())
	s.SetMethod(MethodPhone)
	require.Equal(t, MethodPhone, s.Method())
	s.SetMethod("email")
	require.Equal(t, MethodPhone, s.Method())
	require.True(t, s.Submit())
}
