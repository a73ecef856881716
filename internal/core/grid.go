package core

// Layout describes a fixed grid of slots stored in row-major order.
type Layout struct {
	Cols, Rows int
}

// NewLayout returns a layout with the given dimensions, clamped to at least 1x1.
func NewLayout(cols, rows int) Layout {
	if cols <= 0 {
		cols = 1
	}
	if rows <= 0 {
		rows = 1
	}
	return Layout{Cols: cols, Rows: rows}
}

// Len returns the number of slots.
func (l Layout) Len() int { return l.Cols * l.Rows }

// Index returns the linear slot index for (col, row).
func (l Layout) Index(col, row int) int { return row*l.Cols + col }

// Coords converts a slot index back into (col, row).
func (l Layout) Coords(i int) (int, int) { return i % l.Cols, i / l.Cols }

// Contains reports whether i addresses a slot in the layout.
func (l Layout) Contains(i int) bool { return i >= 0 && i < l.Len() }
