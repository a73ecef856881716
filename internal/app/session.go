package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"forest-merge/internal/board"
	"forest-merge/internal/core"
	"forest-merge/internal/economy"
	"forest-merge/internal/login"
	"forest-merge/internal/withdraw"
	pcore "forest-merge/pkg/core"
)

// Session owns the screens and the balance they share. Entering a screen
// builds its state; leaving it tears the state down and cancels its timers.
type Session struct {
	cfg    board.Config
	log    *zap.Logger
	sound  core.SoundPlayer
	router *core.Router
	store  *economy.Store
	desk   *withdraw.Desk
	rng    *pcore.RNG

	login *login.Screen
	board *board.Controller
	form  withdraw.Form
}

// NewSession starts on the login screen.
func NewSession(cfg board.Config, log *zap.Logger, sound core.SoundPlayer) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	if sound == nil {
		sound = core.NopSound{}
	}
	store := economy.NewStore(cfg.Economy.Balances())
	s := &Session{
		cfg:    cfg,
		log:    log,
		sound:  sound,
		router: core.NewRouter(),
		store:  store,
		desk:   withdraw.NewDesk(store, log.Named("wallet")),
		rng:    pcore.NewRNG(cfg.Seed),
	}
	s.login = login.New(log.Named("login"))
	s.router.OnChange(s.switchScreen)
	return s
}

func (s *Session) switchScreen(from, to core.ScreenID) {
	switch from {
	case core.ScreenLogin:
		s.login.Close()
		s.login = nil
	case core.ScreenGame:
		s.board.Close()
		s.board = nil
	case core.ScreenWallet:
		s.form = withdraw.Form{}
	}
	switch to {
	case core.ScreenLogin:
		s.login = login.New(s.log.Named("login"))
	case core.ScreenGame:
		s.board = board.New(s.cfg,
			board.WithStore(s.store),
			board.WithRandom(s.rng),
			board.WithLogger(s.log.Named("board")),
			board.WithSound(s.sound),
		)
	}
	s.log.Debug("screen", zap.String("from", string(from)), zap.String("to", string(to)))
}

// Go navigates to another screen.
func (s *Session) Go(to core.ScreenID) error {
	if err := s.router.Go(to); err != nil {
		return fmt.Errorf("navigate: %w", err)
	}
	return nil
}

// Screen returns the active screen.
func (s *Session) Screen() core.ScreenID { return s.router.Current() }

// Login returns the login state, or nil off the login screen.
func (s *Session) Login() *login.Screen { return s.login }

// Board returns the board, or nil off the game screen.
func (s *Session) Board() *board.Controller { return s.board }

// Store returns the shared balance.
func (s *Session) Store() *economy.Store { return s.store }

// Desk returns the withdrawal desk.
func (s *Session) Desk() *withdraw.Desk { return s.desk }

// Form returns the wallet form being edited.
func (s *Session) Form() *withdraw.Form { return &s.form }

// SignIn leaves the login screen for the board.
func (s *Session) SignIn() error {
	if s.login == nil || !s.login.Submit() {
		return fmt.Errorf("sign in from %s: %w", s.Screen(), core.ErrBadTransition)
	}
	return s.Go(core.ScreenGame)
}

// SubmitWithdrawal sends the wallet form to the desk and resets it on success.
func (s *Session) SubmitWithdrawal() (withdraw.Transaction, error) {
	tx, err := s.desk.Submit(s.form)
	if err != nil {
		return tx, err
	}
	s.form = withdraw.Form{MethodID: s.form.MethodID}
	return tx, nil
}

// Tick advances whichever screen is active.
func (s *Session) Tick(dt time.Duration) {
	if s.login != nil {
		s.login.Tick(dt)
	}
	if s.board != nil {
		s.board.Tick(dt)
	}
}

// Close tears down the active screen.
func (s *Session) Close() {
	if s.login != nil {
		s.login.Close()
	}
	if s.board != nil {
		s.board.Close()
	}
}
