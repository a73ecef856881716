//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"

	"forest-merge/internal/core"
	"forest-merge/internal/render"
)

// HUD renders the balance header and the action bar of the game screen.
type HUD struct {
	src      core.StatsProvider
	snapshot core.StatSnapshot
	spots    []render.Hotspot
	panel    *ebiten.Image
}

// NewHUD constructs a HUD reading stats from src.
func NewHUD(src core.StatsProvider) *HUD {
	return &HUD{src: src, spots: render.GameHotspots()}
}

// Update refreshes the cached stats snapshot.
func (h *HUD) Update() {
	if h == nil || h.src == nil {
		return
	}
	h.snapshot = h.src.Stats()
}

// Hit maps a click to a header or action bar control.
func (h *HUD) Hit(x, y int) (render.Action, bool) {
	spot, ok := render.Hit(h.spots, x, y)
	return spot.Action, ok
}

// Draw paints the header strip and the action bar.
func (h *HUD) Draw(screen *ebiten.Image, muted bool, cooldown string) {
	if h == nil {
		return
	}
	if h.panel == nil {
		h.panel = ebiten.NewImage(render.ScreenW, render.HeaderH)
	}
	h.panel.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 220})
	h.drawHeader()
	screen.DrawImage(h.panel, &ebiten.DrawImageOptions{})

	for _, spot := range h.spots {
		label := spot.Label
		active := false
		switch spot.Action {
		case render.ActionAutoMerge:
			active = h.value("auto_merge") == "true"
		case render.ActionMute:
			if muted {
				label = "x"
			}
		case render.ActionSpawn:
			if cooldown != "" {
				label = cooldown
			}
		}
		drawButton(screen, spot, label, true, active)
	}
}

func (h *HUD) drawHeader() {
	drawText(h.panel, "Coins "+h.value("coins"), 12, 24, render.Ink)
	drawText(h.panel, "Today "+h.value("points_today"), 12, 42, render.Muted)

	lvl := "Lv " + h.value("level")
	drawText(h.panel, lvl, 132, 24, render.Ink)
	drawText(h.panel, fmt.Sprintf("%s/%s XP", h.value("exp"), h.value("max_exp")), 132, 42, render.Muted)

	progress, err := strconv.ParseFloat(h.value("progress"), 64)
	if err != nil {
		progress = 0
	}
	bar := image.Rect(12, 54, render.ScreenW-12, 64)
	fillRect(h.panel, bar, render.EmptySlot)
	fill := bar
	fill.Max.X = bar.Min.X + int(float64(bar.Dx())*clamp01(progress))
	fillRect(h.panel, fill, lerpRGBA(render.Accent, render.Gold, progress))
}

func (h *HUD) value(key string) string {
	st, ok := h.snapshot.Lookup(key)
	if !ok {
		return "--"
	}
	return st.Value
}
