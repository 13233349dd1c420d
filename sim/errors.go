package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyQueue is returned by EventQueue.RemoveEarliest when nothing is pending.
	ErrEmptyQueue = errors.New("event queue is empty")

	// ErrNoCompletedCustomers is returned by Run when no customer finished
	// service, leaving the maximum wait undefined.
	ErrNoCompletedCustomers = errors.New("no customer completed service")

	// ErrLineClosed is returned when a closure names a line that already closed.
	ErrLineClosed = errors.New("checkout line already closed")

	// errStaleService marks a FinishService event whose customer was displaced
	// before service ended. The driver discards such events.
	errStaleService = errors.New("stale finish-service event")
)

// NoEligibleLineError reports that no open line could take a customer,
// either because none accepts their item count or all are at capacity.
type NoEligibleLineError struct {
	CustomerID string
	Items      int
	OpenLines  int
}

func (e *NoEligibleLineError) Error() string {
	return fmt.Sprintf("no eligible line for customer %s (%d items, %d open lines)",
		e.CustomerID, e.Items, e.OpenLines)
}

// UnresolvedDisplacementError reports a customer displaced by a line closure
// who could not be re-assigned to any remaining line.
type UnresolvedDisplacementError struct {
	CustomerID string
	From       LineID
	Err        error
}

func (e *UnresolvedDisplacementError) Error() string {
	return fmt.Sprintf("customer %s displaced from line %d: %v", e.CustomerID, e.From, e.Err)
}

func (e *UnresolvedDisplacementError) Unwrap() error {
	return e.Err
}

// UnresolvedCustomer records a customer the simulation could not place.
type UnresolvedCustomer struct {
	CustomerID string
	Timestamp  int64
	Err        error
}
