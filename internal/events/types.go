package events

import (
	"time"

	"github.com/KirkDiggler/lol-cast-engine/internal/domain/champion"
)

// EventType names a kind of decision or notification
type EventType string

// Event is the base interface for everything published on the Bus
type Event interface {
	GetID() string
	GetType() EventType
	GetChampion() string
	GetKey() champion.AbilityKey
	GetTime() time.Time
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides the common fields of all events
type BaseEvent struct {
	ID        string
	Type      EventType
	Champion  string
	Key       champion.AbilityKey
	At        time.Time
	Cancelled bool
}

func (e *BaseEvent) GetID() string               { return e.ID }
func (e *BaseEvent) GetType() EventType          { return e.Type }
func (e *BaseEvent) GetChampion() string         { return e.Champion }
func (e *BaseEvent) GetKey() champion.AbilityKey { return e.Key }
func (e *BaseEvent) GetTime() time.Time          { return e.At }
func (e *BaseEvent) IsCancelled() bool           { return e.Cancelled }
func (e *BaseEvent) Cancel()                     { e.Cancelled = true }

// AbilityCastEvent is emitted when an ability is cast
type AbilityCastEvent struct {
	BaseEvent
}

// AbilityRecastEvent is emitted when an ability is recast inside its window
type AbilityRecastEvent struct {
	BaseEvent
	RecastsRemaining int
}

// OutOfManaEvent is emitted when a cast attempt failed only for lack of resource
type OutOfManaEvent struct {
	BaseEvent
}

// CooldownStartedEvent is emitted when an ability goes on cooldown
type CooldownStartedEvent struct {
	BaseEvent
	Duration time.Duration
}

// CooldownEndedEvent is emitted when the tracked cooldown of an ability is released
type CooldownEndedEvent struct {
	BaseEvent
}

func NewAbilityCast(id, champ string, key champion.AbilityKey, at time.Time) *AbilityCastEvent {
	return &AbilityCastEvent{BaseEvent: BaseEvent{ID: id, Type: EventTypeAbilityCast, Champion: champ, Key: key, At: at}}
}

func NewAbilityRecast(id, champ string, key champion.AbilityKey, remaining int, at time.Time) *AbilityRecastEvent {
	return &AbilityRecastEvent{
		BaseEvent:        BaseEvent{ID: id, Type: EventTypeAbilityRecast, Champion: champ, Key: key, At: at},
		RecastsRemaining: remaining,
	}
}

func NewOutOfMana(id, champ string, key champion.AbilityKey, at time.Time) *OutOfManaEvent {
	return &OutOfManaEvent{BaseEvent: BaseEvent{ID: id, Type: EventTypeOutOfMana, Champion: champ, Key: key, At: at}}
}

func NewCooldownStarted(id, champ string, key champion.AbilityKey, d time.Duration, at time.Time) *CooldownStartedEvent {
	return &CooldownStartedEvent{
		BaseEvent: BaseEvent{ID: id, Type: EventTypeCooldownStarted, Champion: champ, Key: key, At: at},
		Duration:  d,
	}
}

func NewCooldownEnded(id, champ string, key champion.AbilityKey, at time.Time) *CooldownEndedEvent {
	return &CooldownEndedEvent{BaseEvent: BaseEvent{ID: id, Type: EventTypeCooldownEnded, Champion: champ, Key: key, At: at}}
}
