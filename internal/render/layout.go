package render

import "image"

// Logical screen size. The window scales this up.
const (
	ScreenW = 360
	ScreenH = 640

	HeaderH   = 76
	boardTop  = HeaderH + 24
	boardSide = 24
	slotGap   = 12
	barTop    = 548
	barH      = 44
	barGap    = 8
)

// BoardLayout places the slot grid on screen.
type BoardLayout struct {
	OriginX, OriginY int
	Cell             int
	Gap              int
	Cols, Rows       int
}

// NewBoardLayout fits a cols x rows grid between the header and action bar.
func NewBoardLayout(cols, rows int) BoardLayout {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	availW := ScreenW - 2*boardSide
	availH := barTop - boardTop - slotGap
	cell := (availW - (cols-1)*slotGap) / cols
	if h := (availH - (rows-1)*slotGap) / rows; h < cell {
		cell = h
	}
	if cell < 8 {
		cell = 8
	}
	w := cols*cell + (cols-1)*slotGap
	return BoardLayout{
		OriginX: (ScreenW - w) / 2,
		OriginY: boardTop,
		Cell:    cell,
		Gap:     slotGap,
		Cols:    cols,
		Rows:    rows,
	}
}

// Pitch is the distance between neighbouring slot origins.
func (l BoardLayout) Pitch() int { return l.Cell + l.Gap }

// SlotRect returns the screen rectangle of slot i.
func (l BoardLayout) SlotRect(i int) image.Rectangle {
	x := l.OriginX + (i%l.Cols)*l.Pitch()
	y := l.OriginY + (i/l.Cols)*l.Pitch()
	return image.Rect(x, y, x+l.Cell, y+l.Cell)
}

// Bounds covers the whole grid.
func (l BoardLayout) Bounds() image.Rectangle {
	return image.Rect(l.OriginX, l.OriginY,
		l.OriginX+l.Cols*l.Pitch()-l.Gap, l.OriginY+l.Rows*l.Pitch()-l.Gap)
}

// SlotAt maps a screen point to a slot index. Points in the gaps between
// slots hit nothing.
func (l BoardLayout) SlotAt(x, y int) (int, bool) {
	dx, dy := x-l.OriginX, y-l.OriginY
	if dx < 0 || dy < 0 || l.Pitch() <= 0 {
		return 0, false
	}
	col, row := dx/l.Pitch(), dy/l.Pitch()
	if col >= l.Cols || row >= l.Rows {
		return 0, false
	}
	if dx%l.Pitch() >= l.Cell || dy%l.Pitch() >= l.Cell {
		return 0, false
	}
	return row*l.Cols + col, true
}

// Action is a tappable control outside the grid.
type Action uint8

const (
	ActionNone Action = iota
	ActionSpawn
	ActionSpin
	ActionAd
	ActionAutoMerge
	ActionWallet
	ActionFounders
	ActionMute
	ActionConfirm
	ActionDismiss
	ActionPlay
	ActionManual
	ActionPhone
	ActionBack
	ActionSubmit
	ActionPickMethod
	ActionFocusField
)

// Hotspot binds an action to a rectangle.
type Hotspot struct {
	Action Action
	Label  string
	Rect   image.Rectangle
	Index  int
}

// GameHotspots lists the action bar and header buttons of the game screen.
func GameHotspots() []Hotspot {
	labels := []struct {
		a Action
		s string
	}{
		{ActionSpawn, "Spawn"},
		{ActionSpin, "Wheel"},
		{ActionAd, "Ad +50"},
		{ActionAutoMerge, "Auto"},
	}
	w := (ScreenW - 2*boardSide - (len(labels)-1)*barGap) / len(labels)
	out := make([]Hotspot, 0, len(labels)+3)
	for i, l := range labels {
		x := boardSide + i*(w+barGap)
		out = append(out, Hotspot{Action: l.a, Label: l.s, Rect: image.Rect(x, barTop, x+w, barTop+barH)})
	}
	icon := 28
	right := ScreenW - 12
	for _, l := range []struct {
		a Action
		s string
	}{{ActionMute, "S"}, {ActionFounders, "i"}, {ActionWallet, "$"}} {
		out = append(out, Hotspot{Action: l.a, Label: l.s, Rect: image.Rect(right-icon, 8, right, 8+icon)})
		right -= icon + 6
	}
	return out
}

// ModalRect is the panel used by every modal.
func ModalRect() image.Rectangle {
	return image.Rect(30, 150, ScreenW-30, 470)
}

// ModalHotspots returns the confirm and dismiss buttons of a modal.
func ModalHotspots() []Hotspot {
	r := ModalRect()
	w := (r.Dx() - 3*16) / 2
	y := r.Max.Y - 16 - barH
	return []Hotspot{
		{Action: ActionConfirm, Label: "OK", Rect: image.Rect(r.Min.X+16, y, r.Min.X+16+w, y+barH)},
		{Action: ActionDismiss, Label: "Close", Rect: image.Rect(r.Max.X-16-w, y, r.Max.X-16, y+barH)},
	}
}

// Hit returns the first hotspot containing the point.
func Hit(spots []Hotspot, x, y int) (Hotspot, bool) {
	p := image.Pt(x, y)
	for _, h := range spots {
		if p.In(h.Rect) {
			return h, true
		}
	}
	return Hotspot{}, false
}
