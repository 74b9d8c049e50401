package mock

import (
	"sort"
	"sync"
	"time"

	"github.com/KirkDiggler/lol-cast-engine/internal/clock"
)

// ManualScheduler fires callbacks only when the test advances time
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending []*manualTimer
}

type manualTimer struct {
	s       *ManualScheduler
	due     time.Duration
	seq     int
	fn      func()
	stopped bool
	fired   bool
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) clock.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d < 0 {
		d = 0
	}
	s.seq++
	t := &manualTimer{s: s, due: s.now + d, seq: s.seq, fn: fn}
	s.pending = append(s.pending, t)
	return t
}

func (t *manualTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	t.s.removeLocked(t)
	return true
}

// Advance moves time forward by d and runs every callback that became due,
// in due order. Callbacks run on the caller's goroutine without the lock
// held, so they may schedule more timers.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	for {
		s.mu.Lock()
		next := s.nextDueLocked(target)
		if next == nil {
			s.now = target
			s.mu.Unlock()
			return
		}
		s.now = next.due
		next.fired = true
		s.removeLocked(next)
		s.mu.Unlock()

		next.fn()
	}
}

// Pending returns how many timers are waiting to fire
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Elapsed returns the total time advanced so far
func (s *ManualScheduler) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// NextDue returns the delay until the earliest pending timer
func (s *ManualScheduler) NextDue() (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pending) == 0 {
		return 0, false
	}
	s.sortLocked()
	return s.pending[0].due - s.now, true
}

func (s *ManualScheduler) nextDueLocked(target time.Duration) *manualTimer {
	if len(s.pending) == 0 {
		return nil
	}
	s.sortLocked()
	if s.pending[0].due > target {
		return nil
	}
	return s.pending[0]
}

func (s *ManualScheduler) sortLocked() {
	sort.Slice(s.pending, func(i, j int) bool {
		if s.pending[i].due == s.pending[j].due {
			return s.pending[i].seq < s.pending[j].seq
		}
		return s.pending[i].due < s.pending[j].due
	})
}

func (s *ManualScheduler) removeLocked(t *manualTimer) {
	for i, p := range s.pending {
		if p == t {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}
