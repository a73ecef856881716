// Package render holds drawing helpers that do not need a window, such as
// the tier palette and slot hit-testing. The ebiten painter lives behind the
// ebiten build tag.
package render

import (
	"image/color"

	"forest-merge/internal/animals"
	"forest-merge/internal/board"
)

var (
	Background = color.RGBA{R: 232, G: 246, B: 228, A: 255}
	Panel      = color.RGBA{R: 255, G: 255, B: 255, A: 230}
	Ink        = color.RGBA{R: 30, G: 60, B: 40, A: 255}
	Muted      = color.RGBA{R: 120, G: 140, B: 125, A: 255}
	Accent     = color.RGBA{R: 34, G: 197, B: 94, A: 255}
	Gold       = color.RGBA{R: 250, G: 204, B: 21, A: 255}
	Danger     = color.RGBA{R: 220, G: 38, B: 38, A: 255}
	EmptySlot  = color.RGBA{R: 200, G: 222, B: 196, A: 255}
)

var tierPalette = map[animals.Tier]color.RGBA{
	animals.TierCommon:    {R: 74, G: 222, B: 128, A: 255},
	animals.TierRare:      {R: 251, G: 146, B: 60, A: 255},
	animals.TierEpic:      {R: 239, G: 68, B: 68, A: 255},
	animals.TierLegendary: {R: 168, G: 85, B: 247, A: 255},
	animals.TierMythical:  {R: 59, G: 130, B: 246, A: 255},
	animals.TierDivine:    {R: 234, G: 179, B: 8, A: 255},
}

// TierColor returns the fill colour for animals of tier t.
func TierColor(t animals.Tier) color.RGBA {
	if c, ok := tierPalette[t]; ok {
		return c
	}
	return tierPalette[animals.TierCommon]
}

// SlotPalette indexes EmptySlot at 0 followed by every tier in order, so a
// slot cell value of tier+1 picks that tier's colour.
func SlotPalette() []color.RGBA {
	p := []color.RGBA{EmptySlot}
	for t := animals.TierCommon; t <= animals.TierDivine; t++ {
		p = append(p, TierColor(t))
	}
	return p
}

// SlotCells encodes each slot as a palette index for SlotPalette.
func SlotCells(slots []board.Slot) []uint8 {
	cells := make([]uint8, len(slots))
	for i, s := range slots {
		if s.Empty() {
			continue
		}
		cells[i] = uint8(s.Animal.Tier) + 1
	}
	return cells
}

// SlotPixels renders slots into an RGBA buffer, one pixel per slot.
func SlotPixels(slots []board.Slot) []byte {
	buf := make([]byte, 4*len(slots))
	fillPaletteRGBA(buf, SlotCells(slots), SlotPalette())
	return buf
}
