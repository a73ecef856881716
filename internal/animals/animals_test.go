package animals

import "testing"

func TestLookupTable(t *testing.T) {
	cases := []struct {
		level   int
		name    string
		tier    Tier
		species string
	}{
		{1, "Rabbit Lv.1", TierCommon, "Rabbit"},
		{8, "Buffalo Lv.8", TierCommon, "Buffalo"},
		{9, "Rabbit Lv.9", TierCommon, "Rabbit"},
		{10, "Deer Lv.10", TierCommon, "Deer"},
		{11, "Tiger Lv.11", TierRare, "Tiger"},
		{51, "Tiger Lv.51", TierDivine, "Tiger"},
		{60, "Leopard Lv.60", TierDivine, "Leopard"},
	}
	for _, tc := range cases {
		a, ok := Lookup(tc.level)
		if !ok {
			t.Fatalf("level %d missing", tc.level)
		}
		if a.Name != tc.name || a.Tier != tc.tier || a.Species != tc.species || a.Level != tc.level {
			t.Fatalf("level %d = %+v", tc.level, a)
		}
	}
	for _, lvl := range []int{0, -1, 61} {
		if _, ok := Lookup(lvl); ok {
			t.Fatalf("level %d should not resolve", lvl)
		}
	}
}

func TestTierClamp(t *testing.T) {
	if TierFor(1000) != TierDivine {
		t.Fatal("tiers above divine must clamp")
	}
	if TierFor(0) != TierCommon {
		t.Fatal("levels below 1 map to common")
	}
	if TierLegendary.String() != "legendary" || Tier(9).String() != "unknown" {
		t.Fatal("tier names wrong")
	}
}

func TestNewInstanceUniqueIDs(t *testing.T) {
	a, ok := NewInstance(3)
	b, _ := NewInstance(3)
	if !ok || a.Level != 3 {
		t.Fatalf("NewInstance(3) = %+v, %v", a, ok)
	}
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("instance IDs must be unique, got %q and %q", a.ID, b.ID)
	}
	if _, ok := NewInstance(MaxLevel + 1); ok {
		t.Fatal("NewInstance beyond max level should fail")
	}
}
