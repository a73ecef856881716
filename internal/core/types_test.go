package core

import (
	"errors"
	"testing"
)

func TestRouterTransitions(t *testing.T) {
	r := NewRouter()
	var seen []ScreenID
	r.OnChange(func(_, to ScreenID) { seen = append(seen, to) })

	if err := r.Go(ScreenWallet); !errors.Is(err, ErrBadTransition) {
		t.Fatalf("login -> wallet should fail, got %v", err)
	}
	for _, to := range []ScreenID{ScreenGame, ScreenWallet, ScreenGame, ScreenFounders, ScreenGame, ScreenLogin} {
		if err := r.Go(to); err != nil {
			t.Fatalf("Go(%s): %v", to, err)
		}
	}
	if r.Current() != ScreenLogin {
		t.Fatalf("current = %s", r.Current())
	}
	if len(seen) != 6 {
		t.Fatalf("OnChange fired %d times, want 6", len(seen))
	}
}

func TestStatLookup(t *testing.T) {
	snap := StatSnapshot{Groups: []StatGroup{{Name: "Economy", Stats: []Stat{CountStat("coins", "Coins", 12), RatioStat("xp", "XP", 0.5)}}}}
	st, ok := snap.Lookup("xp")
	if !ok || st.Value != "0.50" || st.Kind != StatKindRatio {
		t.Fatalf("lookup xp = %+v, %v", st, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("missing key should not resolve")
	}
}
