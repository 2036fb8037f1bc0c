package mission

import (
	"sync"
	"time"
)

// Timer is a pending callback. Stop reports whether it prevented the call.
type Timer interface {
	Stop() bool
}

// Scheduler runs a callback after a delay. Missions use it for travel and
// scan latency.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// RealScheduler uses wall-clock timers.
type RealScheduler struct{}

func (RealScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// ManualScheduler fires callbacks only when told to. Time is virtual and
// starts at zero. Callbacks run on the goroutine calling Advance or
// FireAll, never under the scheduler's lock.
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending []*manualTimer
}

type manualTimer struct {
	s   *ManualScheduler
	at  time.Duration
	seq int
	f   func()
}

// NewManualScheduler returns a scheduler at virtual time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	t := &manualTimer{s: s, at: s.now + d, seq: s.seq, f: f}
	s.pending = append(s.pending, t)
	return t
}

func (t *manualTimer) Stop() bool {
	s := t.s
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.pending {
		if p == t {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return true
		}
	}
	return false
}

// Now returns the virtual time.
func (s *ManualScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Pending returns the number of timers that have not fired or stopped.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Advance moves virtual time forward by d, firing every timer that comes
// due in deadline order. It returns how many fired.
func (s *ManualScheduler) Advance(d time.Duration) int {
	s.mu.Lock()
	deadline := s.now + d
	s.mu.Unlock()

	fired := 0
	for {
		t := s.popDue(deadline)
		if t == nil {
			break
		}
		t.f()
		fired++
	}

	s.mu.Lock()
	if s.now < deadline {
		s.now = deadline
	}
	s.mu.Unlock()
	return fired
}

// FireAll fires timers until none are pending, including ones scheduled
// by the callbacks themselves. It returns how many fired.
func (s *ManualScheduler) FireAll() int {
	fired := 0
	for {
		t := s.popDue(-1)
		if t == nil {
			return fired
		}
		t.f()
		fired++
	}
}

// popDue removes and returns the earliest timer due by deadline, or any
// earliest timer when deadline is negative, advancing the clock to it.
func (s *ManualScheduler) popDue(deadline time.Duration) *manualTimer {
	s.mu.Lock()
	defer s.mu.Unlock()

	best := -1
	for i, t := range s.pending {
		if deadline >= 0 && t.at > deadline {
			continue
		}
		if best < 0 || t.at < s.pending[best].at ||
			(t.at == s.pending[best].at && t.seq < s.pending[best].seq) {
			best = i
		}
	}
	if best < 0 {
		return nil
	}
	t := s.pending[best]
	s.pending = append(s.pending[:best], s.pending[best+1:]...)
	if t.at > s.now {
		s.now = t.at
	}
	return t
}
