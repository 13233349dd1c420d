package sim

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/linolastella/checkout-sim/sim/trace"
)

// EventRecord is one entry of the input event list, as produced by an
// external parser or generator. Only Arrival and LineClosure records are valid.
type EventRecord struct {
	Kind       EventKind
	Timestamp  int64
	CustomerID string // Arrival only
	Items      int    // Arrival only
	Line       int    // LineClosure only; index in the store's construction order
}

// Simulator owns the event queue and the store and drains events in order.
type Simulator struct {
	Store      *Store
	EventQueue *EventQueue
	Trace      *trace.SimulationTrace // nil unless tracing is enabled

	Clock           int64 // timestamp of the last extracted event
	TotalTime       int64 // latest timestamp of an applied event
	EventsProcessed int
	StaleDiscarded  int // completions dropped because their customer was displaced

	unresolved []UnresolvedCustomer
	seenIDs    map[string]bool
}

// NewSimulator builds a store from cfg and an empty event queue.
func NewSimulator(cfg StoreConfig, traceCfg trace.TraceConfig) (*Simulator, error) {
	store, err := NewStore(cfg)
	if err != nil {
		return nil, err
	}
	s := &Simulator{
		Store:      store,
		EventQueue: NewEventQueue(),
		seenIDs:    make(map[string]bool),
	}
	if traceCfg.Enabled() {
		s.Trace = trace.NewSimulationTrace(traceCfg)
		store.SetTrace(s.Trace)
	}
	return s, nil
}

// Seed validates records and adds the corresponding events to the queue.
// Nothing is queued if any record is invalid.
func (s *Simulator) Seed(records []EventRecord) error {
	events := make([]Event, 0, len(records))
	ids := make(map[string]bool)
	closures := make(map[[2]int64]bool)
	for i, r := range records {
		if r.Timestamp < 0 {
			return fmt.Errorf("record %d: negative timestamp %d", i, r.Timestamp)
		}
		switch r.Kind {
		case KindArrival:
			if r.CustomerID == "" {
				return fmt.Errorf("record %d: arrival without customer id", i)
			}
			if r.Items < 0 {
				return fmt.Errorf("record %d: customer %s has negative item count %d", i, r.CustomerID, r.Items)
			}
			if ids[r.CustomerID] || s.seenIDs[r.CustomerID] {
				return fmt.Errorf("record %d: duplicate customer id %q", i, r.CustomerID)
			}
			ids[r.CustomerID] = true
			events = append(events, NewArrivalEvent(r.Timestamp, NewCustomer(r.CustomerID, r.Items)))
		case KindLineClosure:
			if _, ok := s.Store.Line(LineID(r.Line)); !ok {
				return fmt.Errorf("record %d: %w %d (store has %d lines)", i, ErrUnknownLine, r.Line, len(s.Store.lines))
			}
			key := [2]int64{r.Timestamp, int64(r.Line)}
			if closures[key] {
				return fmt.Errorf("record %d: duplicate closure of line %d at %d", i, r.Line, r.Timestamp)
			}
			closures[key] = true
			events = append(events, NewLineClosureEvent(r.Timestamp, LineID(r.Line)))
		default:
			return fmt.Errorf("record %d: unsupported event kind %s", i, r.Kind)
		}
	}

	for id := range ids {
		s.seenIDs[id] = true
	}
	for _, e := range events {
		s.EventQueue.Add(e)
	}
	logrus.Debugf("seeded %d events", len(events))
	return nil
}

// Step extracts the earliest event, applies it, and queues its follow-ups.
// It returns false once the queue is empty.
func (s *Simulator) Step() bool {
	ev, err := s.EventQueue.RemoveEarliest()
	if err != nil {
		return false
	}

	if ev.Timestamp() < s.Clock {
		panic(fmt.Sprintf("Clock went backwards: %d < %d", ev.Timestamp(), s.Clock))
	}
	s.Clock = ev.Timestamp()

	follow, err := Apply(s.Store, ev)
	if errors.Is(err, errStaleService) {
		s.StaleDiscarded++
		logrus.Debugf("discarding stale %s at %d", ev.Kind(), ev.Timestamp())
		return true
	}
	if err != nil {
		s.recordFailure(ev, err)
	}

	s.EventsProcessed++
	if ev.Timestamp() > s.TotalTime {
		s.TotalTime = ev.Timestamp()
	}
	for _, f := range follow {
		if f.Timestamp() < ev.Timestamp() {
			panic(fmt.Sprintf("Causality violated: %s at %d generated %s at %d",
				ev.Kind(), ev.Timestamp(), f.Kind(), f.Timestamp()))
		}
		s.EventQueue.Add(f)
	}
	return true
}

// Run seeds the queue from records and processes events until none remain.
// On ErrNoCompletedCustomers the returned Stats still carry the customer
// count and total time.
func (s *Simulator) Run(records []EventRecord) (Stats, error) {
	if err := s.Seed(records); err != nil {
		return Stats{}, err
	}
	for s.Step() {
	}
	logrus.Infof("Simulation complete: %d events processed, %d stale, %d unresolved customers",
		s.EventsProcessed, s.StaleDiscarded, len(s.unresolved))
	return s.Stats()
}

// Unresolved returns the customers the simulation could not place, in the
// order the failures happened.
func (s *Simulator) Unresolved() []UnresolvedCustomer {
	out := make([]UnresolvedCustomer, len(s.unresolved))
	copy(out, s.unresolved)
	return out
}

func (s *Simulator) recordFailure(ev Event, err error) {
	var stranded *NoEligibleLineError
	if !errors.As(err, &stranded) {
		logrus.Warnf("%s at %d: %v", ev.Kind(), ev.Timestamp(), err)
		return
	}
	logrus.Warnf("stranded customer at %d: %v", ev.Timestamp(), err)
	s.unresolved = append(s.unresolved, UnresolvedCustomer{
		CustomerID: stranded.CustomerID,
		Timestamp:  ev.Timestamp(),
		Err:        err,
	})
}
