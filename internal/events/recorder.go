package events

import "sync"

// Recorder is a listener that keeps every event it sees, in order
type Recorder struct {
	id       string
	priority int

	mu     sync.Mutex
	events []Event
}

// NewRecorder creates a Recorder at logging priority
func NewRecorder(id string) *Recorder {
	return &Recorder{id: id, priority: PriorityLogging}
}

func (r *Recorder) ID() string    { return r.id }
func (r *Recorder) Priority() int { return r.priority }

func (r *Recorder) HandleEvent(event Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

// Events returns a copy of everything recorded
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// OfType returns recorded events of one type
func (r *Recorder) OfType(eventType EventType) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Event
	for _, e := range r.events {
		if e.GetType() == eventType {
			out = append(out, e)
		}
	}
	return out
}

// Reset drops recorded events
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
