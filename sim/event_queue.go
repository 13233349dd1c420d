package sim

import "container/heap"

type queuedEvent struct {
	event Event
	seq   uint64
}

// EventQueue is a priority queue of pending events with deterministic ordering.
// Order: timestamp → kind precedence → insertion sequence.
type EventQueue struct {
	items   []queuedEvent
	nextSeq uint64
}

// NewEventQueue creates an empty event queue.
func NewEventQueue() *EventQueue {
	q := &EventQueue{items: make([]queuedEvent, 0)}
	heap.Init((*eventHeap)(q))
	return q
}

// Add inserts an event.
func (q *EventQueue) Add(e Event) {
	heap.Push((*eventHeap)(q), queuedEvent{event: e, seq: q.nextSeq})
	q.nextSeq++
}

// RemoveEarliest removes and returns the next event to process.
func (q *EventQueue) RemoveEarliest() (Event, error) {
	if len(q.items) == 0 {
		return nil, ErrEmptyQueue
	}
	return heap.Pop((*eventHeap)(q)).(queuedEvent).event, nil
}

// Peek returns the next event without removing it, or nil if empty.
func (q *EventQueue) Peek() Event {
	if len(q.items) == 0 {
		return nil
	}
	return q.items[0].event
}

// IsEmpty reports whether no events are pending.
func (q *EventQueue) IsEmpty() bool {
	return len(q.items) == 0
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.items)
}

// eventHeap adapts EventQueue to heap.Interface without exposing Push/Pop.
type eventHeap EventQueue

func (h *eventHeap) Len() int { return len(h.items) }

func (h *eventHeap) Less(i, j int) bool {
	ei, ej := h.items[i], h.items[j]

	// Primary: timestamp (lower first)
	if ti, tj := ei.event.Timestamp(), ej.event.Timestamp(); ti != tj {
		return ti < tj
	}

	// Secondary: kind precedence
	if ki, kj := ei.event.Kind(), ej.event.Kind(); ki != kj {
		return ki < kj
	}

	// Tertiary: insertion sequence
	return ei.seq < ej.seq
}

func (h *eventHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

func (h *eventHeap) Push(x any) {
	h.items = append(h.items, x.(queuedEvent))
}

func (h *eventHeap) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	old[n-1] = queuedEvent{}
	h.items = old[:n-1]
	return item
}
