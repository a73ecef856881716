package core

import (
	"sort"
	"time"
)

// Timer is a handle to a one-shot callback registered on a Scheduler.
type Timer struct {
	s        *Scheduler
	deadline time.Duration
	seq      uint64
	fn       func()
	active   bool
}

// Stop cancels the timer. It reports whether the call prevented the callback
// from running.
func (t *Timer) Stop() bool {
	if t == nil || !t.active {
		return false
	}
	t.active = false
	t.s.remove(t)
	return true
}

// Active reports whether the timer is still waiting to fire.
func (t *Timer) Active() bool { return t != nil && t.active }

// Scheduler runs one-shot callbacks against a game clock that only moves when
// Advance is called. Callbacks execute on the caller's goroutine, so timer
// firings are serialized with whatever else that goroutine does.
type Scheduler struct {
	now     time.Duration
	seq     uint64
	pending []*Timer
}

// NewScheduler returns an empty scheduler at time zero.
func NewScheduler() *Scheduler { return &Scheduler{} }

// Now returns the elapsed game time.
func (s *Scheduler) Now() time.Duration { return s.now }

// Pending returns the number of timers waiting to fire.
func (s *Scheduler) Pending() int { return len(s.pending) }

// After schedules fn to run once d of game time has elapsed. Non-positive
// durations fire on the next Advance.
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &Timer{s: s, deadline: s.now + d, seq: s.seq, fn: fn, active: true}
	s.pending = append(s.pending, t)
	return t
}

// Advance moves the clock forward by dt and fires every timer whose deadline
// falls inside the window, earliest first. Ties fire in scheduling order. The
// clock sits at each timer's deadline while its callback runs, so timers
// scheduled from a callback may fire within the same Advance.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt
	for {
		t := s.nextDue(target)
		if t == nil {
			break
		}
		if t.deadline > s.now {
			s.now = t.deadline
		}
		t.active = false
		s.remove(t)
		if t.fn != nil {
			t.fn()
		}
	}
	s.now = target
}

// CancelAll stops every pending timer.
func (s *Scheduler) CancelAll() {
	for _, t := range s.pending {
		t.active = false
	}
	s.pending = s.pending[:0]
}

func (s *Scheduler) nextDue(limit time.Duration) *Timer {
	if len(s.pending) == 0 {
		return nil
	}
	sort.SliceStable(s.pending, func(i, j int) bool {
		a, b := s.pending[i], s.pending[j]
		if a.deadline != b.deadline {
			return a.deadline < b.deadline
		}
		return a.seq < b.seq
	})
	if t := s.pending[0]; t.deadline <= limit {
		return t
	}
	return nil
}

func (s *Scheduler) remove(t *Timer) {
	for i, p := range s.pending {
		if p == t {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}
