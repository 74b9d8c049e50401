package clock

import "time"

// Timer is a pending callback that can be cancelled
type Timer interface {
	// Stop prevents the callback from running. It returns false if the
	// callback already ran or was already stopped.
	Stop() bool
}

// Scheduler runs callbacks after a delay without blocking the caller
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// RealScheduler schedules on the runtime timer heap
type RealScheduler struct{}

func NewRealScheduler() *RealScheduler {
	return &RealScheduler{}
}

func (s *RealScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	return time.AfterFunc(d, fn)
}

// SchedulerFunc adapts a function to the Scheduler interface
type SchedulerFunc func(d time.Duration, fn func()) Timer

func (f SchedulerFunc) AfterFunc(d time.Duration, fn func()) Timer {
	return f(d, fn)
}
