package events

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// EventListener processes events
type EventListener interface {
	HandleEvent(event Event) error
	Priority() int
	ID() string
}

// Bus manages event distribution
type Bus struct {
	listeners map[EventType][]EventListener
	mu        sync.RWMutex
	logger    *zap.Logger
}

// NewBus creates a new event bus; a nil logger discards logs
func NewBus(logger *zap.Logger) *Bus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bus{
		listeners: make(map[EventType][]EventListener),
		logger:    logger,
	}
}

// Subscribe adds a listener for specific event types
func (b *Bus) Subscribe(eventType EventType, listener EventListener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], listener)
	b.sortLocked(eventType)

	b.logger.Debug("listener subscribed",
		zap.String("listener", listener.ID()),
		zap.String("event", string(eventType)),
		zap.Int("priority", listener.Priority()))
}

// SubscribeAll adds a listener for every event type in AllTypes
func (b *Bus) SubscribeAll(listener EventListener) {
	for _, eventType := range AllTypes {
		b.Subscribe(eventType, listener)
	}
}

// Unsubscribe removes a listener
func (b *Bus) Unsubscribe(eventType EventType, listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	listeners := b.listeners[eventType]
	for i, l := range listeners {
		if l.ID() != listenerID {
			continue
		}
		listeners[i] = listeners[len(listeners)-1]
		b.listeners[eventType] = listeners[:len(listeners)-1]
		b.sortLocked(eventType)

		b.logger.Debug("listener unsubscribed",
			zap.String("listener", listenerID),
			zap.String("event", string(eventType)))
		return
	}
}

// UnsubscribeAll removes a listener from every event type
func (b *Bus) UnsubscribeAll(listenerID string) {
	for _, eventType := range AllTypes {
		b.Unsubscribe(eventType, listenerID)
	}
}

// Emit sends an event to all registered listeners in priority order.
// A listener may cancel the event to stop propagation.
func (b *Bus) Emit(event Event) error {
	b.mu.RLock()
	listeners := make([]EventListener, len(b.listeners[event.GetType()]))
	copy(listeners, b.listeners[event.GetType()])
	b.mu.RUnlock()

	for _, listener := range listeners {
		if event.IsCancelled() {
			b.logger.Debug("event cancelled, stopping propagation",
				zap.String("event", string(event.GetType())),
				zap.String("id", event.GetID()))
			break
		}

		if err := listener.HandleEvent(event); err != nil {
			return fmt.Errorf("listener %s failed: %w", listener.ID(), err)
		}
	}

	return nil
}

// Clear removes all listeners
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners = make(map[EventType][]EventListener)
}

func (b *Bus) sortLocked(eventType EventType) {
	sort.SliceStable(b.listeners[eventType], func(i, j int) bool {
		return b.listeners[eventType][i].Priority() < b.listeners[eventType][j].Priority()
	})
}
