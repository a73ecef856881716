//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"forest-merge/internal/founders"
	"forest-merge/internal/login"
	"forest-merge/internal/render"
	"forest-merge/internal/withdraw"
)

// DrawLogin renders the sign-in screen.
func DrawLogin(screen *ebiten.Image, s *login.Screen) {
	screen.Fill(render.Background)
	drawCentered(screen, "FOREST MERGE", image.Rect(0, 150, render.ScreenW, 180), render.Ink)
	slogan, visible := s.Slogan()
	alpha := 1.0
	if !visible {
		alpha = 0.2
	}
	drawCentered(screen, slogan, image.Rect(0, 200, render.ScreenW, 230), fade(render.Accent, alpha))

	for _, spot := range render.LoginHotspots() {
		active := false
		switch spot.Action {
		case render.ActionManual:
			active = s.Method() == login.MethodManual
		case render.ActionPhone:
			active = s.Method() == login.MethodPhone
		case render.ActionPlay:
			active = true
		}
		drawButton(screen, spot, "", true, active)
	}
	hint := "Username and password"
	if s.Method() == login.MethodPhone {
		hint = "Phone number and code"
	}
	drawCentered(screen, hint, image.Rect(0, 360, render.ScreenW, 390), render.Muted)
}

// DrawFounders renders the credits screen.
func DrawFounders(screen *ebiten.Image) {
	screen.Fill(render.Background)
	drawButton(screen, render.BackHotspot(), "", true, false)
	drawCentered(screen, "Founders", image.Rect(0, 48, render.ScreenW, 72), render.Ink)

	admin := founders.Admin()
	card := image.Rect(24, 84, render.ScreenW-24, 124)
	fillRect(screen, card, render.Gold)
	drawCentered(screen, admin.Name+" (admin)", card, render.Ink)

	y := 148
	for _, f := range founders.Team() {
		drawText(screen, f.Name, 36, y, render.Ink)
		y += 20
	}
}

// WalletView renders the withdrawal screen for a form owned elsewhere.
type WalletView struct {
	Focus int
	Err   string
}

// Hotspots returns the clickable areas for the current method.
func (v *WalletView) Hotspots(f *withdraw.Form) []render.Hotspot {
	return render.WalletHotspots(len(withdraw.Methods()), len(walletFields(f)))
}

// Draw renders balance, methods, the form and the request history.
func (v *WalletView) Draw(screen *ebiten.Image, f *withdraw.Form, balance int, history []withdraw.Transaction) {
	screen.Fill(render.Background)
	methods := withdraw.Methods()
	fields := walletFields(f)
	drawCentered(screen, fmt.Sprintf("Balance %d pts = %s EGP", balance, withdraw.Quote(balance).StringFixed(2)),
		image.Rect(0, 48, render.ScreenW, 80), render.Ink)

	var submit image.Rectangle
	for _, spot := range v.Hotspots(f) {
		switch spot.Action {
		case render.ActionPickMethod:
			m := methods[spot.Index]
			drawButton(screen, spot, shortName(m.Name), true, m.ID == f.MethodID)
		case render.ActionFocusField:
			field := fields[spot.Index]
			drawText(screen, field.String(), spot.Rect.Min.X, spot.Rect.Min.Y-3, render.Muted)
			fillRect(screen, spot.Rect, color.White)
			border := render.Muted
			if spot.Index == v.Focus {
				border = render.Accent
			}
			strokeRect(screen, spot.Rect, 2, border)
			drawText(screen, *f.Value(field), spot.Rect.Min.X+6, spot.Rect.Max.Y-9, render.Ink)
		case render.ActionSubmit:
			submit = spot.Rect
			drawButton(screen, spot, "", f.MethodID != "", true)
		default:
			drawButton(screen, spot, "", true, false)
		}
	}

	y := submit.Max.Y + 22
	if v.Err != "" {
		drawText(screen, v.Err, 24, y, render.Danger)
		y += 20
	}
	for _, tx := range history {
		if y > render.ScreenH-12 {
			break
		}
		drawText(screen, fmt.Sprintf("%s  %d pts  %s  %s", tx.ID, tx.Amount, tx.Method, tx.Status), 24, y, render.Ink)
		y += 18
	}
}

func walletFields(f *withdraw.Form) []withdraw.Field {
	m, ok := withdraw.MethodByID(f.MethodID)
	if !ok {
		return withdraw.FieldsFor("")
	}
	return withdraw.FieldsFor(m.Kind)
}

func shortName(s string) string {
	const limit = 8
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
