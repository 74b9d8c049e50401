package input

import (
	"context"
	"sync"
)

//go:generate mockgen -destination=mock/mock_source.go -package=mockinput -source=source.go

// Source delivers raw input events in capture order
type Source interface {
	// Start begins capturing; events arrive on Events until Stop
	Start(ctx context.Context) error
	// Events is closed after Stop
	Events() <-chan Event
	Stop() error
}

// ChannelSource is a Source fed programmatically through Publish
type ChannelSource struct {
	mu      sync.Mutex
	events  chan Event
	started bool
	stopped bool
}

// NewChannelSource creates a source buffering up to size events
func NewChannelSource(size int) *ChannelSource {
	if size <= 0 {
		size = 1
	}
	return &ChannelSource{events: make(chan Event, size)}
}

func (s *ChannelSource) Start(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = true
	return nil
}

func (s *ChannelSource) Events() <-chan Event {
	return s.events
}

// Publish enqueues ev without blocking. It returns false when the buffer is
// full or the source is stopped; the event is dropped in that case.
func (s *ChannelSource) Publish(ev Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return false
	}
	select {
	case s.events <- ev:
		return true
	default:
		return false
	}
}

func (s *ChannelSource) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return nil
	}
	s.stopped = true
	close(s.events)
	return nil
}
