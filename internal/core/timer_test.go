package core

import (
	"slices"
	"testing"
	"time"
)

func TestSchedulerFiresInDeadlineOrder(t *testing.T) {
	s := NewScheduler()
	var got []string
	s.After(3*time.Second, func() { got = append(got, "c") })
	s.After(time.Second, func() { got = append(got, "a") })
	s.After(time.Second, func() { got = append(got, "b") })

	s.Advance(500 * time.Millisecond)
	if len(got) != 0 {
		t.Fatalf("nothing should fire yet, got %v", got)
	}
	s.Advance(5 * time.Second)
	if !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Fatalf("fire order = %v", got)
	}
	if s.Pending() != 0 {
		t.Fatalf("pending = %d after all fired", s.Pending())
	}
}

func TestSchedulerStopPreventsFiring(t *testing.T) {
	s := NewScheduler()
	fired := false
	tm := s.After(time.Second, func() { fired = true })
	if !tm.Active() {
		t.Fatal("timer should be active after scheduling")
	}
	if !tm.Stop() {
		t.Fatal("first Stop should report true")
	}
	if tm.Stop() {
		t.Fatal("second Stop should report false")
	}
	s.Advance(2 * time.Second)
	if fired {
		t.Fatal("stopped timer fired")
	}
}

func TestSchedulerChainedTimersFireWithinAdvance(t *testing.T) {
	s := NewScheduler()
	ticks := 0
	var tick func()
	tick = func() {
		ticks++
		if ticks < 5 {
			s.After(time.Second, tick)
		}
	}
	s.After(time.Second, tick)
	s.Advance(10 * time.Second)
	if ticks != 5 {
		t.Fatalf("ticks = %d, want 5", ticks)
	}
}

func TestSchedulerCancelAll(t *testing.T) {
	s := NewScheduler()
	a := s.After(time.Second, func() { t.Fatal("cancelled timer fired") })
	s.After(2*time.Second, func() { t.Fatal("cancelled timer fired") })
	s.CancelAll()
	if s.Pending() != 0 || a.Active() {
		t.Fatal("CancelAll left timers behind")
	}
	s.Advance(time.Minute)
	if s.Now() != time.Minute {
		t.Fatalf("Now = %v", s.Now())
	}
}
