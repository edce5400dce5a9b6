package events

// Event type constants
const (
	EventTypeStatsChanged   EventType = "stats_changed"
	EventTypeEffectAdded    EventType = "effect_added"
	EventTypeEffectRemoved  EventType = "effect_removed"
	EventTypeEffectResisted EventType = "effect_resisted"
	EventTypeHitResolved    EventType = "hit_resolved"
	EventTypeDeath          EventType = "death"
	EventTypeTurnStarted    EventType = "turn_started"
	EventTypeActionResolved EventType = "action_resolved"
)

// AllEventTypes lists every event the combat core emits
var AllEventTypes = []EventType{
	EventTypeStatsChanged,
	EventTypeEffectAdded,
	EventTypeEffectRemoved,
	EventTypeEffectResisted,
	EventTypeHitResolved,
	EventTypeDeath,
	EventTypeTurnStarted,
	EventTypeActionResolved,
}

// Priority levels for listener order
const (
	PriorityState        = 0   // Bookkeeping that later listeners read
	PriorityPresentation = 100 // Floating numbers, animation cues
	PriorityLogging      = 200 // Battle logs, external sinks
)
