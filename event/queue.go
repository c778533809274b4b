package event

// Queue is a fixed-capacity event buffer drained once per tick.
// Overflow drops the oldest event and counts the drop; feedback events
// are advisory, so losing the oldest under pressure is preferable to
// blocking the collision collaborator.
type Queue struct {
	events  []Event
	dropped uint64
}

// NewQueue creates a queue holding up to capacity events between drains
func NewQueue(capacity int) *Queue {
	if capacity < 1 {
		capacity = 1
	}
	return &Queue{
		events: make([]Event, 0, capacity),
	}
}

// Push appends an event, dropping the oldest when full
func (q *Queue) Push(ev Event) {
	if len(q.events) == cap(q.events) {
		copy(q.events, q.events[1:])
		q.events = q.events[:len(q.events)-1]
		q.dropped++
	}
	q.events = append(q.events, ev)
}

// Consume returns all pending events and clears the queue
func (q *Queue) Consume() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}

// Len returns the number of pending events
func (q *Queue) Len() int {
	return len(q.events)
}

// Dropped returns the cumulative overflow drop count
func (q *Queue) Dropped() uint64 {
	return q.dropped
}
