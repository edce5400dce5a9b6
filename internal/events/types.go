package events

// EventType represents the type of battle event
type EventType string

// Event is the base interface for all battle events
type Event interface {
	GetType() EventType
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type      EventType
	Cancelled bool
}

func (e *BaseEvent) GetType() EventType { return e.Type }
func (e *BaseEvent) IsCancelled() bool  { return e.Cancelled }
func (e *BaseEvent) Cancel()            { e.Cancelled = true }

// Emitter is what the combat core needs from the presentation side
type Emitter interface {
	Emit(event Event) error
}

// Publish emits through e when it is set. Listener errors are logged and
// swallowed: presentation failures never change combat state.
func Publish(e Emitter, event Event) {
	if e == nil {
		return
	}
	if err := e.Emit(event); err != nil {
		logf("EventBus: Listener error on %s: %v", event.GetType(), err)
	}
}
