package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// EventKind names the event variant. Its value is also the precedence used to
// order events that share a timestamp: lower kinds are processed first.
type EventKind int

const (
	KindFinishService EventKind = iota
	KindLineClosure
	KindArrival
)

func (k EventKind) String() string {
	switch k {
	case KindFinishService:
		return "FinishService"
	case KindLineClosure:
		return "LineClosure"
	case KindArrival:
		return "Arrival"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is one of *ArrivalEvent, *FinishServiceEvent or *LineClosureEvent.
// The unexported marker method keeps the set closed to this package.
type Event interface {
	Timestamp() int64
	Kind() EventKind
	sealed()
}

// ArrivalEvent represents a customer trying to join a checkout line.
type ArrivalEvent struct {
	time      int64
	Customer  *Customer
	displaced LineID // line the customer was pushed out of, noLine for a first arrival
}

// NewArrivalEvent creates a first-time arrival.
func NewArrivalEvent(timestamp int64, c *Customer) *ArrivalEvent {
	return &ArrivalEvent{time: timestamp, Customer: c, displaced: noLine}
}

// newDisplacementEvent creates the re-arrival of a customer whose line closed.
func newDisplacementEvent(timestamp int64, c *Customer, from LineID) *ArrivalEvent {
	return &ArrivalEvent{time: timestamp, Customer: c, displaced: from}
}

func (e *ArrivalEvent) Timestamp() int64 { return e.time }
func (e *ArrivalEvent) Kind() EventKind  { return KindArrival }
func (e *ArrivalEvent) sealed()          {}

// DisplacedFrom returns the closed line this arrival was re-routed from.
func (e *ArrivalEvent) DisplacedFrom() (LineID, bool) {
	return e.displaced, e.displaced != noLine
}

// FinishServiceEvent represents the customer at the head of a line finishing checkout.
type FinishServiceEvent struct {
	time     int64
	Customer *Customer
	Line     LineID
}

// NewFinishServiceEvent creates a service completion for c on line.
func NewFinishServiceEvent(timestamp int64, c *Customer, line LineID) *FinishServiceEvent {
	return &FinishServiceEvent{time: timestamp, Customer: c, Line: line}
}

func (e *FinishServiceEvent) Timestamp() int64 { return e.time }
func (e *FinishServiceEvent) Kind() EventKind  { return KindFinishService }
func (e *FinishServiceEvent) sealed()          {}

// LineClosureEvent represents a checkout line closing for the rest of the day.
// Line is resolved against the store when the event is applied.
type LineClosureEvent struct {
	time int64
	Line LineID
}

// NewLineClosureEvent creates a closure of line.
func NewLineClosureEvent(timestamp int64, line LineID) *LineClosureEvent {
	return &LineClosureEvent{time: timestamp, Line: line}
}

func (e *LineClosureEvent) Timestamp() int64 { return e.time }
func (e *LineClosureEvent) Kind() EventKind  { return KindLineClosure }
func (e *LineClosureEvent) sealed()          {}

// Apply processes ev against the store and returns the events it causes.
// A non-nil error leaves the store unchanged except where noted on the
// Store method that handles the variant.
func Apply(store *Store, ev Event) ([]Event, error) {
	switch e := ev.(type) {
	case *ArrivalEvent:
		logrus.Infof("<< Arrival: %s at %d", e.Customer, e.time)
		return store.join(e)
	case *FinishServiceEvent:
		logrus.Infof("<< FinishService: %s on line %d at %d", e.Customer.ID, e.Line, e.time)
		return store.finishService(e)
	case *LineClosureEvent:
		logrus.Infof("<< LineClosure: line %d at %d", e.Line, e.time)
		return store.closeLine(e)
	default:
		panic(fmt.Sprintf("Apply: unknown event type %T", ev))
	}
}
