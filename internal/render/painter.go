//go:build ebiten

package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"forest-merge/internal/board"
)

// SlotPainter keeps one texel per slot and stretches each over its slot
// rectangle.
type SlotPainter struct {
	cols, rows int
	img        *ebiten.Image
}

// NewSlotPainter allocates a painter for a cols x rows board.
func NewSlotPainter(cols, rows int) *SlotPainter {
	return &SlotPainter{cols: cols, rows: rows, img: ebiten.NewImage(cols, rows)}
}

// Blit uploads the slot colours and draws them at the layout positions.
func (sp *SlotPainter) Blit(dst *ebiten.Image, slots []board.Slot, l BoardLayout) {
	if len(slots) != sp.cols*sp.rows {
		return
	}
	sp.img.WritePixels(SlotPixels(slots))
	for i := range slots {
		x, y := i%sp.cols, i/sp.cols
		texel := sp.img.SubImage(image.Rect(x, y, x+1, y+1)).(*ebiten.Image)
		r := l.SlotRect(i)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
		op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
		dst.DrawImage(texel, op)
	}
}

// Size returns the board dimensions the painter was built for.
func (sp *SlotPainter) Size() (int, int) { return sp.cols, sp.rows }
