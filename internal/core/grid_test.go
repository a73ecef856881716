package core

import "testing"

func TestLayoutIndexRoundTrip(t *testing.T) {
	l := NewLayout(3, 4)
	if l.Len() != 12 {
		t.Fatalf("Len = %d, want 12", l.Len())
	}
	for i := 0; i < l.Len(); i++ {
		c, r := l.Coords(i)
		if got := l.Index(c, r); got != i {
			t.Fatalf("Index(Coords(%d)) = %d", i, got)
		}
	}
	if l.Contains(-1) || l.Contains(12) || !l.Contains(11) {
		t.Fatal("Contains bounds wrong")
	}
	if z := NewLayout(0, -2); z.Len() != 1 {
		t.Fatalf("degenerate layout Len = %d", z.Len())
	}
}
