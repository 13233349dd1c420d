package sim

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/linolastella/checkout-sim/sim/trace"
)

// ErrUnknownLine is returned when an event names a line the store never had.
var ErrUnknownLine = errors.New("unknown checkout line")

// Store holds the mutable simulation state: every line built at opening,
// the ordered set of lines still open, the shared line capacity, and the
// registry of customers who ever joined a line.
type Store struct {
	capacity int
	lines    []*CheckoutLine // indexed by LineID, closed lines included
	open     []LineID        // ascending LineID order

	customers []*Customer // registry, in order of first join
	byID      map[string]*Customer

	trace *trace.SimulationTrace // nil when tracing is disabled
}

// NewStore builds the opening line set in the order Cashier*, Express*, SelfServe*.
func NewStore(cfg StoreConfig) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid store config: %w", err)
	}
	s := &Store{
		capacity: cfg.LineCapacity,
		lines:    make([]*CheckoutLine, 0, cfg.TotalLines()),
		open:     make([]LineID, 0, cfg.TotalLines()),
		byID:     make(map[string]*Customer),
	}
	for _, group := range []struct {
		kind  LineKind
		count int
	}{
		{Cashier, cfg.CashierCount},
		{Express, cfg.ExpressCount},
		{SelfServe, cfg.SelfServeCount},
	} {
		for i := 0; i < group.count; i++ {
			id := LineID(len(s.lines))
			s.lines = append(s.lines, newCheckoutLine(id, group.kind))
			s.open = append(s.open, id)
		}
	}
	return s, nil
}

// SetTrace enables decision recording. Pass nil to disable.
func (s *Store) SetTrace(t *trace.SimulationTrace) {
	s.trace = t
}

// Capacity returns the maximum number of customers any line may hold.
func (s *Store) Capacity() int {
	return s.capacity
}

// Line returns a line by ID, open or closed.
func (s *Store) Line(id LineID) (*CheckoutLine, bool) {
	if id < 0 || int(id) >= len(s.lines) {
		return nil, false
	}
	return s.lines[id], true
}

// Lines returns every line the store opened with, in LineID order.
func (s *Store) Lines() []*CheckoutLine {
	out := make([]*CheckoutLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// OpenLines returns the lines still open, in index order.
func (s *Store) OpenLines() []*CheckoutLine {
	out := make([]*CheckoutLine, 0, len(s.open))
	for _, id := range s.open {
		out = append(out, s.lines[id])
	}
	return out
}

// Customers returns the registry in order of first successful join.
func (s *Store) Customers() []*Customer {
	out := make([]*Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

// Customer looks up a registered customer by ID.
func (s *Store) Customer(id string) (*Customer, bool) {
	c, ok := s.byID[id]
	return c, ok
}

// QueuedCustomers returns the number of customers currently in any line.
func (s *Store) QueuedCustomers() int {
	n := 0
	for _, id := range s.open {
		n += s.lines[id].Len()
	}
	return n
}

func (s *Store) register(c *Customer) {
	if _, ok := s.byID[c.ID]; ok {
		return
	}
	s.byID[c.ID] = c
	s.customers = append(s.customers, c)
}

// join assigns the arriving customer to a line. On failure the store is left
// unchanged and the error is returned; a displaced customer's failure is
// wrapped in an UnresolvedDisplacementError.
func (s *Store) join(e *ArrivalEvent) ([]Event, error) {
	c := e.Customer
	if id, queued := c.Line(); queued {
		panic(fmt.Sprintf("join: customer %s already queued in line %d", c.ID, id))
	}
	if c.done {
		panic(fmt.Sprintf("join: customer %s already finished service", c.ID))
	}

	id, candidates, err := assign(s, c)
	from, displaced := e.DisplacedFrom()
	s.recordAssignment(e, id, candidates, err)
	if err != nil {
		if displaced {
			return nil, &UnresolvedDisplacementError{CustomerID: c.ID, From: from, Err: err}
		}
		return nil, err
	}

	if !c.arrived {
		c.arrived = true
		c.ArrivalTime = e.time
	}
	s.register(c)

	line := s.lines[id]
	line.enqueue(c)
	c.line = id
	logrus.Debugf("customer %s joined %s (queued=%d)", c.ID, line, line.Len())

	if line.Head() != c {
		return nil, nil
	}
	return []Event{NewFinishServiceEvent(e.time+line.ServiceTime(c), c, id)}, nil
}

// finishService removes the head of the line and starts serving the next
// customer. Completions for customers no longer at the head of an open line
// are stale and return errStaleService without touching the store.
func (s *Store) finishService(e *FinishServiceEvent) ([]Event, error) {
	line, ok := s.Line(e.Line)
	if !ok {
		return nil, fmt.Errorf("finish service on line %d: %w", e.Line, ErrUnknownLine)
	}
	if !line.open || line.Head() != e.Customer {
		return nil, errStaleService
	}

	c := line.dequeue()
	c.line = noLine
	c.done = true
	c.Wait = e.time - c.ArrivalTime
	line.served++
	logrus.Debugf("customer %s done after waiting %d", c.ID, c.Wait)

	next := line.Head()
	if next == nil {
		return nil, nil
	}
	return []Event{NewFinishServiceEvent(e.time+line.ServiceTime(next), next, line.ID)}, nil
}

// closeLine removes a line from the open set for good and re-issues an
// arrival, at the closure time, for each customer it held, in queue order.
func (s *Store) closeLine(e *LineClosureEvent) ([]Event, error) {
	line, ok := s.Line(e.Line)
	if !ok {
		return nil, fmt.Errorf("close line %d: %w", e.Line, ErrUnknownLine)
	}
	if !line.open {
		return nil, fmt.Errorf("close line %d: %w", e.Line, ErrLineClosed)
	}

	line.open = false
	line.closedAt = e.time
	for i, id := range s.open {
		if id == line.ID {
			s.open = append(s.open[:i], s.open[i+1:]...)
			break
		}
	}

	displaced := line.drain()
	events := make([]Event, 0, len(displaced))
	ids := make([]string, 0, len(displaced))
	for _, c := range displaced {
		c.line = noLine
		events = append(events, newDisplacementEvent(e.time, c, line.ID))
		ids = append(ids, c.ID)
	}
	if s.trace != nil {
		s.trace.RecordClosure(trace.ClosureRecord{LineID: int(line.ID), Clock: e.time, Displaced: ids})
	}
	logrus.Debugf("line %d closed, displacing %v", line.ID, ids)
	return events, nil
}

func (s *Store) recordAssignment(e *ArrivalEvent, chosen LineID, candidates []lineCandidate, err error) {
	if s.trace == nil {
		return
	}
	_, displaced := e.DisplacedFrom()
	record := trace.AssignmentRecord{
		CustomerID: e.Customer.ID,
		Clock:      e.time,
		Items:      e.Customer.Items,
		Assigned:   err == nil,
		ChosenLine: int(chosen),
		Displaced:  displaced,
		Candidates: make([]trace.CandidateLine, 0, len(candidates)),
	}
	for _, cand := range candidates {
		record.Candidates = append(record.Candidates, trace.CandidateLine{
			LineID:   int(cand.id),
			Kind:     s.lines[cand.id].Kind.String(),
			QueueLen: cand.queued,
		})
	}
	if err != nil {
		record.ChosenLine = int(noLine)
		record.Reason = err.Error()
	} else {
		record.Reason = fmt.Sprintf("shortest (queued=%d)", s.lines[chosen].Len())
	}
	s.trace.RecordAssignment(record)
}
