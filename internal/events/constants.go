package events

// Event type constants
const (
	// Decisions
	EventTypeAbilityCast   EventType = "ability_cast"
	EventTypeAbilityRecast EventType = "ability_recast"
	EventTypeOutOfMana     EventType = "out_of_mana_attempted"

	// Cooldown display
	EventTypeCooldownStarted EventType = "cooldown_started"
	EventTypeCooldownEnded   EventType = "cooldown_ended"
)

// AllTypes lists every event type the engine publishes
var AllTypes = []EventType{
	EventTypeAbilityCast,
	EventTypeAbilityRecast,
	EventTypeOutOfMana,
	EventTypeCooldownStarted,
	EventTypeCooldownEnded,
}

// Priority levels for listener ordering, lower runs first
const (
	PriorityAnimation    = 100 // local animation playback
	PriorityDisplay      = 200 // cooldown displays
	PriorityNotification = 300 // remote notifications
)
