//go:build ebiten

package app

import (
	"errors"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"forest-merge/internal/board"
	"forest-merge/internal/core"
	"forest-merge/internal/login"
	"forest-merge/internal/render"
	"forest-merge/internal/ui"
	"forest-merge/internal/withdraw"
)

// Muter toggles sound output.
type Muter interface {
	ToggleMute() bool
	Muted() bool
}

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	s     *Session
	sound Muter
	log   *zap.Logger
	dt    time.Duration

	shown   *board.Controller
	hud     *ui.HUD
	view    *ui.BoardView
	overlay *ui.Overlay
	wallet  ui.WalletView
}

// New constructs a Game driving s at tps updates per second.
func New(s *Session, sound Muter, tps int, log *zap.Logger) *Game {
	if tps <= 0 {
		tps = 60
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Game{s: s, sound: sound, log: log, dt: time.Second / time.Duration(tps)}
}

// Update handles per-frame input and advances the active screen's clock.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) && g.s.Screen() != core.ScreenWallet {
		return ebiten.Termination
	}
	switch g.s.Screen() {
	case core.ScreenLogin:
		g.updateLogin()
	case core.ScreenGame:
		g.updateGame()
	case core.ScreenFounders:
		if g.backPressed() {
			g.navigate(core.ScreenGame)
		}
	case core.ScreenWallet:
		g.updateWallet()
	}
	g.s.Tick(g.dt)
	if b := g.s.Board(); b != nil && g.shown == b {
		g.view.Update(b, g.dt)
		g.overlay.Update(b, g.dt)
		g.hud.Update()
	}
	return nil
}

func (g *Game) updateLogin() {
	lg := g.s.Login()
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.signIn()
		return
	}
	x, y, ok := pressed()
	if !ok {
		return
	}
	spot, ok := render.Hit(render.LoginHotspots(), x, y)
	if !ok {
		return
	}
	switch spot.Action {
	case render.ActionManual:
		lg.SetMethod(login.MethodManual)
	case render.ActionPhone:
		lg.SetMethod(login.MethodPhone)
	case render.ActionPlay:
		g.signIn()
	}
}

func (g *Game) signIn() {
	if err := g.s.SignIn(); err != nil {
		g.log.Warn("sign in failed", zap.Error(err))
	}
}

func (g *Game) updateGame() {
	b := g.ensureViews()
	if b == nil {
		return
	}
	g.gameKeys(b)
	x, y, ok := pressed()
	if !ok {
		return
	}
	if action, hit := g.overlay.Hit(b, x, y); hit {
		g.modalAction(b, action)
		return
	}
	if action, hit := g.hud.Hit(x, y); hit {
		g.gameAction(b, action)
		return
	}
	if i, hit := g.view.SlotAt(x, y); hit {
		b.Tap(i)
	}
}

func (g *Game) gameKeys(b *board.Controller) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		b.CloseModal()
	}
	if b.Modal() != board.ModalNone {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.modalAction(b, render.ActionConfirm)
		}
		return
	}
	for k, a := range actionKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.gameAction(b, a)
		}
	}
	for k, m := range modalKeys {
		if inpututil.IsKeyJustPressed(k) {
			b.OpenModal(m)
		}
	}
}

var actionKeys = map[ebiten.Key]render.Action{
	ebiten.KeySpace: render.ActionSpawn,
	ebiten.KeyW:     render.ActionSpin,
	ebiten.KeyA:     render.ActionAd,
	ebiten.KeyTab:   render.ActionAutoMerge,
	ebiten.KeyM:     render.ActionMute,
	ebiten.KeyF:     render.ActionFounders,
	ebiten.KeyP:     render.ActionWallet,
}

var modalKeys = map[ebiten.Key]board.Modal{
	ebiten.KeyD: board.ModalDaily,
	ebiten.KeyL: board.ModalLevel,
	ebiten.KeyT: board.ModalTasks,
	ebiten.KeyI: board.ModalInvite,
	ebiten.KeyB: board.ModalBoost,
}

func (g *Game) gameAction(b *board.Controller, a render.Action) {
	switch a {
	case render.ActionSpawn:
		b.Spawn()
	case render.ActionSpin:
		b.OpenModal(board.ModalWheel)
	case render.ActionAd:
		b.OpenModal(board.ModalAd)
	case render.ActionAutoMerge:
		b.ToggleAutoMerge()
	case render.ActionMute:
		if g.sound != nil {
			g.sound.ToggleMute()
		}
	case render.ActionWallet:
		g.navigate(core.ScreenWallet)
	case render.ActionFounders:
		g.navigate(core.ScreenFounders)
	}
}

func (g *Game) modalAction(b *board.Controller, a render.Action) {
	m := b.Modal()
	switch a {
	case render.ActionConfirm:
		switch m {
		case board.ModalWheel:
			b.Spin()
		case board.ModalAd:
			b.WatchAd()
		case board.ModalSpawnLimit:
			b.WatchSpawnAd()
		default:
			b.CloseModal()
		}
	case render.ActionDismiss:
		if m == board.ModalSpawnLimit {
			b.ContinueSpawn()
			return
		}
		b.CloseModal()
	}
}

func (g *Game) updateWallet() {
	f := g.s.Form()
	fields := len(walletFieldsFor(f))
	if g.wallet.Focus >= fields {
		g.wallet.Focus = 0
	}
	if g.backPressed() {
		g.navigate(core.ScreenGame)
		return
	}
	field := walletFieldsFor(f)[g.wallet.Focus]
	value := f.Value(field)
	for _, r := range ebiten.AppendInputChars(nil) {
		*value += string(r)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(*value) > 0 {
		*value = (*value)[:len(*value)-1]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.wallet.Focus = (g.wallet.Focus + 1) % fields
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.submitWithdrawal()
	}

	x, y, ok := pressed()
	if !ok {
		return
	}
	spot, ok := render.Hit(g.wallet.Hotspots(f), x, y)
	if !ok {
		return
	}
	switch spot.Action {
	case render.ActionBack:
		g.navigate(core.ScreenGame)
	case render.ActionPickMethod:
		f.SelectMethod(withdraw.Methods()[spot.Index].ID)
		g.wallet.Focus = 0
		g.wallet.Err = ""
	case render.ActionFocusField:
		g.wallet.Focus = spot.Index
	case render.ActionSubmit:
		g.submitWithdrawal()
	}
}

func (g *Game) submitWithdrawal() {
	tx, err := g.s.SubmitWithdrawal()
	switch {
	case err == nil:
		g.wallet.Err = ""
		g.wallet.Focus = 0
		g.log.Debug("withdrawal queued", zap.String("id", tx.ID))
	case errors.Is(err, withdraw.ErrNoMethod):
		g.wallet.Err = "Choose a withdrawal method"
	case errors.Is(err, withdraw.ErrInvalidAmount):
		g.wallet.Err = "Enter a valid amount"
	case errors.Is(err, withdraw.ErrOverBalance):
		g.wallet.Err = "Not enough points"
	case errors.Is(err, withdraw.ErrMissingField):
		g.wallet.Err = "Fill in all fields"
	default:
		g.wallet.Err = err.Error()
	}
}

func walletFieldsFor(f *withdraw.Form) []withdraw.Field {
	if m, ok := withdraw.MethodByID(f.MethodID); ok {
		return withdraw.FieldsFor(m.Kind)
	}
	return withdraw.FieldsFor("")
}

func (g *Game) backPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return true
	}
	x, y, ok := pressed()
	if !ok {
		return false
	}
	return image.Pt(x, y).In(render.BackHotspot().Rect)
}

func (g *Game) navigate(to core.ScreenID) {
	if err := g.s.Go(to); err != nil {
		g.log.Warn("navigation refused", zap.Error(err))
	}
}

// ensureViews rebuilds the board views whenever the session replaces the
// board controller.
func (g *Game) ensureViews() *board.Controller {
	b := g.s.Board()
	if b == nil {
		return nil
	}
	if g.shown != b {
		g.shown = b
		g.hud = ui.NewHUD(b)
		g.view = ui.NewBoardView(b)
		g.overlay = ui.NewOverlay(b)
		g.hud.Update()
	}
	return b
}

// pressed reports the position of a mouse click or a new touch this frame.
func pressed() (int, int, bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return x, y, true
	}
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return x, y, true
	}
	return 0, 0, false
}

// Draw renders the active screen.
func (g *Game) Draw(screen *ebiten.Image) {
	switch g.s.Screen() {
	case core.ScreenLogin:
		if lg := g.s.Login(); lg != nil {
			ui.DrawLogin(screen, lg)
		}
	case core.ScreenGame:
		b := g.ensureViews()
		if b == nil {
			return
		}
		screen.Fill(render.Background)
		g.view.Draw(screen, b)
		muted := g.sound != nil && g.sound.Muted()
		g.hud.Draw(screen, muted, cooldownLabel(b))
		g.overlay.Draw(screen, b)
	case core.ScreenFounders:
		ui.DrawFounders(screen)
	case core.ScreenWallet:
		g.wallet.Draw(screen, g.s.Form(), g.s.Store().Coins(), g.s.Desk().History())
	}
}

func cooldownLabel(b *board.Controller) string {
	left := b.CooldownRemaining()
	if left <= 0 {
		return ""
	}
	return left.Round(time.Second).String()
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return render.ScreenW, render.ScreenH
}
