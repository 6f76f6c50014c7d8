// Package input buffers the discrete events collected during one frame.
package input

import "chosenoffset.com/paperboy/internal/core/geom"

// Kind identifies an event.
type Kind int

const (
	Click      Kind = iota // Pointer pressed at Pos (world space)
	ToggleMode             // Swap courier/path placement
	ClearPath              // Discard the drawn route
	Confirm                // Hand the drawn route to the courier
)

func (k Kind) String() string {
	switch k {
	case Click:
		return "click"
	case ToggleMode:
		return "toggle-mode"
	case ClearPath:
		return "clear-path"
	case Confirm:
		return "confirm"
	default:
		return "unknown"
	}
}

// Event is a single input occurrence. Pos is only meaningful for Click.
type Event struct {
	Kind Kind
	Pos  geom.Point
}

// IsCommand reports whether the event is a keyboard command rather than a
// pointer click.
func (e Event) IsCommand() bool {
	return e.Kind != Click
}

// DefaultCapacity bounds a frame's queue when no capacity is configured.
const DefaultCapacity = 64

// Queue is a bounded FIFO filled by the input collector and drained once per
// frame.
type Queue struct {
	events   []Event
	capacity int
	dropped  int
}

// NewQueue creates a queue holding at most capacity events.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Queue{
		events:   make([]Event, 0, capacity),
		capacity: capacity,
	}
}

// Push appends e. It returns false and drops e when the queue is full.
func (q *Queue) Push(e Event) bool {
	if len(q.events) >= q.capacity {
		q.dropped++
		return false
	}
	q.events = append(q.events, e)
	return true
}

// Drain returns the buffered events in arrival order and empties the queue.
func (q *Queue) Drain() []Event {
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}

// Len returns the number of buffered events.
func (q *Queue) Len() int {
	return len(q.events)
}

// Dropped returns how many events were rejected since creation.
func (q *Queue) Dropped() int {
	return q.dropped
}
