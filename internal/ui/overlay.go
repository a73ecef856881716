//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"forest-merge/internal/board"
	"forest-merge/internal/render"
)

const wheelSegments = 8

// Overlay draws notices and modal dialogs over the board.
type Overlay struct {
	spots     []render.Hotspot
	spinAge   time.Duration
	spinTotal time.Duration
	wasSpin   bool
}

// NewOverlay constructs an overlay for the board's timings.
func NewOverlay(c *board.Controller) *Overlay {
	return &Overlay{spots: render.ModalHotspots(), spinTotal: c.Config().Wheel.Duration}
}

// Update tracks the wheel animation.
func (o *Overlay) Update(c *board.Controller, dt time.Duration) {
	if c.Spinning() {
		if !o.wasSpin {
			o.spinAge = 0
		}
		o.spinAge += dt
	}
	o.wasSpin = c.Spinning()
}

// Hit maps a click to a modal button. Clicks outside an open modal are
// swallowed so the board underneath stays untouched.
func (o *Overlay) Hit(c *board.Controller, x, y int) (render.Action, bool) {
	if c.Modal() == board.ModalNone {
		return render.ActionNone, false
	}
	if spot, ok := render.Hit(o.spots, x, y); ok {
		return spot.Action, true
	}
	return render.ActionNone, true
}

// Draw renders the notice toast and the open modal.
func (o *Overlay) Draw(screen *ebiten.Image, c *board.Controller) {
	if m := c.Modal(); m != board.ModalNone {
		o.drawModal(screen, c, m)
	}
	if n := c.Notice(); n.Active() {
		r := image.Rect(24, render.HeaderH+4, render.ScreenW-24, render.HeaderH+30)
		bg := render.Ink
		if n.Kind == board.NoticeNoFunds || n.Kind == board.NoticeBoardFull || n.Kind == board.NoticeSpinBusy {
			bg = render.Danger
		}
		fillRect(screen, r, bg)
		drawCentered(screen, n.Text, r, color.White)
	}
}

func (o *Overlay) drawModal(screen *ebiten.Image, c *board.Controller, m board.Modal) {
	fillRect(screen, image.Rect(0, 0, render.ScreenW, render.ScreenH), color.RGBA{A: 120})
	panel := render.ModalRect()
	fillRect(screen, panel, render.Panel)
	strokeRect(screen, panel, 2, render.Accent)

	title, lines, confirm, dismiss := modalCopy(c, m)
	drawCentered(screen, title, image.Rect(panel.Min.X, panel.Min.Y+8, panel.Max.X, panel.Min.Y+36), render.Ink)
	y := panel.Min.Y + 60
	for _, l := range lines {
		drawCentered(screen, l, image.Rect(panel.Min.X, y, panel.Max.X, y+18), render.Muted)
		y += 20
	}
	if m == board.ModalWheel {
		o.drawWheel(screen, c, panel.Min.X+panel.Dx()/2, y+70)
	}
	for _, spot := range o.spots {
		label, enabled := dismiss, true
		if spot.Action == render.ActionConfirm {
			label = confirm
			enabled = !(m == board.ModalWheel && c.Spinning())
		}
		if label == "" {
			continue
		}
		drawButton(screen, spot, label, enabled, spot.Action == render.ActionConfirm)
	}
}

func (o *Overlay) drawWheel(screen *ebiten.Image, c *board.Controller, cx, cy int) {
	const radius = 64
	angle := float64(c.Rotation())
	if c.Spinning() && o.spinTotal > 0 {
		t := clamp01(float64(o.spinAge) / float64(o.spinTotal))
		angle *= 1 - math.Pow(1-t, 3)
	}
	x, y := float32(cx), float32(cy)
	vector.DrawFilledCircle(screen, x, y, radius, render.Gold, true)
	for i := 0; i < wheelSegments; i++ {
		a := (angle + float64(i)*360/wheelSegments) * math.Pi / 180
		col := render.TierColor(0)
		if i%2 == 1 {
			col = render.Accent
		}
		drawLine(screen, float64(cx), float64(cy), float64(cx)+radius*math.Cos(a), float64(cy)+radius*math.Sin(a), 3, col)
	}
	vector.StrokeCircle(screen, x, y, radius, 3, render.Ink, true)
	drawLine(screen, float64(cx), float64(cy-radius-12), float64(cx), float64(cy-radius+8), 5, render.Danger)
}

func modalCopy(c *board.Controller, m board.Modal) (title string, lines []string, confirm, dismiss string) {
	cfg := c.Config()
	st := c.Store()
	dismiss = "Close"
	switch m {
	case board.ModalWheel:
		title = "Lucky wheel"
		lines = []string{fmt.Sprintf("Spin for %d coins", cfg.Wheel.Cost),
			fmt.Sprintf("Win %d to %d coins", cfg.Wheel.RewardMin, cfg.Wheel.RewardMax)}
		if r := c.LastReward(); r > 0 && !c.Spinning() {
			lines = append(lines, fmt.Sprintf("Last win: %d", r))
		}
		confirm = "Spin"
	case board.ModalAd:
		title = "Free coins"
		lines = []string{fmt.Sprintf("Watch a short ad for %d coins", cfg.Economy.AdBonus)}
		confirm = "Watch"
	case board.ModalSpawnLimit:
		title = "Spawn limit reached"
		lines = []string{"Watch an ad for a free reset", "or wait for the countdown"}
		confirm = "Watch ad"
		dismiss = "Continue"
		if left := c.CooldownRemaining(); left > 0 {
			dismiss = fmt.Sprintf("Wait %ds", int(math.Ceil(left.Seconds())))
		}
	case board.ModalDaily:
		title = "Daily points"
		lines = []string{fmt.Sprintf("Points today: %d", st.PointsToday())}
	case board.ModalLevel:
		title = fmt.Sprintf("Level %d", st.Level())
		lines = []string{fmt.Sprintf("XP %d / %d", st.Exp(), st.MaxExp())}
	case board.ModalTasks:
		title = "Tasks"
		lines = []string{fmt.Sprintf("Merges this session: %d", c.Merges())}
	case board.ModalInvite:
		title = "Invite friends"
		lines = []string{"Share the game with friends"}
	case board.ModalBoost:
		title = "Boost"
		lines = []string{"Auto merge helps you clear the cage"}
	}
	return title, lines, confirm, dismiss
}
