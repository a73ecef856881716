package app

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"forest-merge/internal/board"
	"forest-merge/internal/core"
	"forest-merge/internal/withdraw"
)

func TestSessionLifecycle(t *testing.T) {
	s := NewSession(board.DefaultConfig(), nil, nil)
	require.Equal(t, core.ScreenLogin, s.Screen())
	require.NotNil(t, s.Login())
	require.Nil(t, s.Board())

	require.ErrorIs(t, s.Go(core.ScreenWallet), core.ErrBadTransition)

	lg := s.Login()
	require.NoError(t, s.SignIn())
	require.Equal(t, core.ScreenGame, s.Screen())
	require.Nil(t, s.Login())
	lg.Tick(10 * time.Second)
	require.Equal(t, 0, lg.SloganIndex())

	b := s.Board()
	require.NotNil(t, b)
	require.Same(t, s.Store(), b.Store())

	require.True(t, b.ToggleAutoMerge())
	require.NoError(t, s.Go(core.ScreenFounders))
	require.True(t, b.Closed())
	require.Zero(t, b.Pending())
	require.Nil(t, s.Board())

	require.NoError(t, s.Go(core.ScreenGame))
	require.NotNil(t, s.Board())
	require.NotSame(t, b, s.Board())
	s.Close()
	require.True(t, s.Board().Closed())
}

func TestSessionWalletSharesBalance(t *testing.T) {
	cfg := board.DefaultConfig()
	cfg.Economy.StartCoins = 800
	s := NewSession(cfg, nil, nil)
	require.NoError(t, s.SignIn())

	require.True(t, s.Board().Spin())
	require.Equal(t, 750, s.Store().Coins())

	require.NoError(t, s.Go(core.ScreenWallet))
	f := s.Form()
	f.SelectMethod("instapay")
	f.Amount = "700"
	f.PaymentAddress = "me@instapay"
	tx, err := s.SubmitWithdrawal()
	require.NoError(t, err)
	require.Equal(t, withdraw.StatusPending, tx.Status)
	require.Equal(t, 50, s.Store().Coins())
	require.Equal(t, withdraw.Form{MethodID: "instapay"}, *s.Form())

	f.Amount = "51"
	f.PaymentAddress = "me@instapay"
	_, err = s.SubmitWithdrawal()
	require.ErrorIs(t, err, withdraw.ErrOverBalance)

	require.NoError(t, s.Go(core.ScreenGame))
	require.Equal(t, withdraw.Form{}, *s.Form())
	require.Equal(t, 50, s.Board().Store().Coins())
}

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-seed", "7", "-scale", "2", "-mute", "-config", "board.yaml", "-log-level", "debug"}))
	require.Equal(t, int64(7), cfg.Seed)
	require.Equal(t, 2, cfg.Scale)
	require.True(t, cfg.Mute)
	require.Equal(t, "board.yaml", cfg.Board)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 60, cfg.TPS)
}
