package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 64; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestIntRangeInclusive(t *testing.T) {
	rng := NewRNG(3)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := IntRange(rng, 1, 3)
		if v < 1 || v > 3 {
			t.Fatalf("IntRange(1,3) produced %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected all of 1..3 to appear, got %v", seen)
	}
	if v := IntRange(rng, 5, 5); v != 5 {
		t.Fatalf("degenerate range returned %d", v)
	}
	if v := IntRange(rng, 9, 8); v != 8 && v != 9 {
		t.Fatalf("reversed bounds returned %d", v)
	}
}

func TestChanceBounds(t *testing.T) {
	rng := NewRNG(11)
	for i := 0; i < 100; i++ {
		if Chance(rng, 0) {
			t.Fatal("Chance(0) must never succeed")
		}
		if !Chance(rng, 1) {
			t.Fatal("Chance(1) must always succeed")
		}
	}
	if NewRNG(1).IntN(0) != 0 {
		t.Fatal("IntN(0) should return 0")
	}
}
