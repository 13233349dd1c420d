package sim

import "fmt"

// Customer models a single shopper's passage through the store.
// ArrivalTime is set on the first successful line join and never reset,
// so a customer re-routed after a closure keeps their original arrival.
type Customer struct {
	ID    string // Unique identifier for the customer
	Items int    // Number of items to check out

	ArrivalTime int64 // Timestamp of the first successful join; valid when HasArrived
	Wait        int64 // Time from arrival to finished service; valid when Done

	arrived bool
	done    bool
	line    LineID // line currently queued in, noLine otherwise
}

// NewCustomer creates a customer that has not yet joined any line.
func NewCustomer(id string, items int) *Customer {
	return &Customer{ID: id, Items: items, line: noLine}
}

// HasArrived reports whether the customer has ever joined a line.
func (c *Customer) HasArrived() bool {
	return c.arrived
}

// Done reports whether the customer finished service.
func (c *Customer) Done() bool {
	return c.done
}

// Line returns the line the customer is currently queued in.
func (c *Customer) Line() (LineID, bool) {
	return c.line, c.line != noLine
}

func (c *Customer) String() string {
	return fmt.Sprintf("%s(%d items)", c.ID, c.Items)
}
