//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"forest-merge/internal/board"
	"forest-merge/internal/render"
)

// BoardView draws the slot grid, the selection and the merge celebration.
type BoardView struct {
	layout  render.BoardLayout
	painter *render.SlotPainter

	celebSlot  int
	celebLevel int
	celebAge   time.Duration
	celebTTL   time.Duration
}

// NewBoardView sizes a view for the controller's grid.
func NewBoardView(c *board.Controller) *BoardView {
	l := c.Layout()
	return &BoardView{
		layout:    render.NewBoardLayout(l.Cols, l.Rows),
		painter:   render.NewSlotPainter(l.Cols, l.Rows),
		celebSlot: board.NoSelection,
		celebTTL:  c.Config().Timers.Celebration,
	}
}

// SlotAt maps a click to a slot.
func (v *BoardView) SlotAt(x, y int) (int, bool) { return v.layout.SlotAt(x, y) }

// Update ages the celebration effect.
func (v *BoardView) Update(c *board.Controller, dt time.Duration) {
	cel := c.Celebration()
	if cel == nil {
		v.celebSlot = board.NoSelection
		return
	}
	if cel.Slot != v.celebSlot || cel.Level != v.celebLevel {
		v.celebSlot, v.celebLevel, v.celebAge = cel.Slot, cel.Level, 0
		return
	}
	v.celebAge += dt
}

// Draw renders the grid.
func (v *BoardView) Draw(screen *ebiten.Image, c *board.Controller) {
	slots := c.Slots()
	v.painter.Blit(screen, slots, v.layout)
	for i, s := range slots {
		r := v.layout.SlotRect(i)
		strokeRect(screen, r, 1, render.Muted)
		if s.Empty() {
			continue
		}
		drawCentered(screen, s.Animal.Species, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+r.Dy()/2+8), render.Ink)
		drawCentered(screen, fmt.Sprintf("Lv %d", s.Animal.Level), image.Rect(r.Min.X, r.Min.Y+r.Dy()/2, r.Max.X, r.Max.Y-8), render.Ink)
	}
	if sel := c.Selected(); sel != board.NoSelection {
		strokeRect(screen, v.layout.SlotRect(sel).Inset(-2), 4, render.Gold)
	}
	if cel := c.Celebration(); cel != nil {
		t := 0.0
		if v.celebTTL > 0 {
			t = float64(v.celebAge) / float64(v.celebTTL)
		}
		r := v.layout.SlotRect(cel.Slot)
		rise := int(24 * t)
		drawCentered(screen, cel.Text, r.Sub(image.Pt(0, r.Dy()/2+rise)), fade(render.Gold, 1-t))
	}
}
