package core

import "fmt"

// EventKind identifies a discrete input event delivered to the simulation.
type EventKind int

const (
	EventNone EventKind = iota
	EventFire           // Fire at a point (mouse click, space)
	EventQuit           // Quit the session (q, Ctrl+C, window close)
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventFire:
		return "Fire"
	case EventQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Event is a single input event. Point is only meaningful for EventFire.
type Event struct {
	Kind  EventKind
	Point Vec2
}

// Fire returns a fire event aimed at p.
func Fire(p Vec2) Event {
	return Event{Kind: EventFire, Point: p}
}

// Quit returns a quit event.
func Quit() Event {
	return Event{Kind: EventQuit}
}

func (e Event) String() string {
	if e.Kind == EventFire {
		return fmt.Sprintf("Fire(%.1f, %.1f)", e.Point.X, e.Point.Y)
	}
	return e.Kind.String()
}

// InputFrame collects the events that arrived between two simulation ticks.
// Arrival order is preserved; the simulation drains them in that order.
type InputFrame struct {
	events []Event
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Push appends an event to the frame.
func (f *InputFrame) Push(e Event) {
	f.events = append(f.events, e)
}

// Events returns the queued events in arrival order.
// The returned slice must not be modified.
func (f InputFrame) Events() []Event {
	return f.events
}

// Len returns the number of queued events.
func (f InputFrame) Len() int {
	return len(f.events)
}

// Has returns true if an event of the given kind is queued.
func (f InputFrame) Has(k EventKind) bool {
	for _, e := range f.events {
		if e.Kind == k {
			return true
		}
	}
	return false
}

// Clear empties the frame for the next tick, keeping its capacity.
func (f *InputFrame) Clear() {
	f.events = f.events[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{events: make([]Event, len(f.events))}
	copy(clone.events, f.events)
	return clone
}
