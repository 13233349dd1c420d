package sim

import (
	"fmt"
	"strings"
)

// LineID identifies a checkout line by its position in the store's
// construction order. IDs stay valid after the line closes and are never reused.
type LineID int

const noLine LineID = -1

// LineKind selects a checkout line's eligibility rule and service time.
type LineKind int

const (
	Cashier LineKind = iota
	Express
	SelfServe
)

// ExpressItemLimit is the item count at which Express lines turn customers away.
const ExpressItemLimit = 8

func (k LineKind) String() string {
	switch k {
	case Cashier:
		return "cashier"
	case Express:
		return "express"
	case SelfServe:
		return "self-serve"
	default:
		return fmt.Sprintf("LineKind(%d)", int(k))
	}
}

// ServiceTime returns how long a line of this kind takes to check out items.
func (k LineKind) ServiceTime(items int) int64 {
	n := int64(items)
	switch k {
	case Cashier:
		return n + 7
	case Express:
		return n + 4
	case SelfServe:
		return 2*n + 1
	default:
		panic(fmt.Sprintf("ServiceTime: unknown line kind %d", int(k)))
	}
}

// Accepts reports whether a customer with the given item count may join.
func (k LineKind) Accepts(items int) bool {
	if k == Express {
		return items < ExpressItemLimit
	}
	return true
}

// CheckoutLine is a FIFO queue of customers served one at a time from the head.
type CheckoutLine struct {
	ID   LineID
	Kind LineKind

	queue []*Customer

	open     bool
	closedAt int64
	served   int
	peakLen  int
}

func newCheckoutLine(id LineID, kind LineKind) *CheckoutLine {
	return &CheckoutLine{ID: id, Kind: kind, open: true}
}

// Len returns the number of customers queued, including the one being served.
func (l *CheckoutLine) Len() int {
	return len(l.queue)
}

// Head returns the customer being served, or nil if the line is empty.
func (l *CheckoutLine) Head() *Customer {
	if len(l.queue) == 0 {
		return nil
	}
	return l.queue[0]
}

// Customers returns a copy of the queue in order.
func (l *CheckoutLine) Customers() []*Customer {
	out := make([]*Customer, len(l.queue))
	copy(out, l.queue)
	return out
}

// IsOpen reports whether customers may still join.
func (l *CheckoutLine) IsOpen() bool {
	return l.open
}

// ServiceTime returns the checkout duration for c on this line.
func (l *CheckoutLine) ServiceTime(c *Customer) int64 {
	return l.Kind.ServiceTime(c.Items)
}

func (l *CheckoutLine) enqueue(c *Customer) {
	l.queue = append(l.queue, c)
	if len(l.queue) > l.peakLen {
		l.peakLen = len(l.queue)
	}
}

func (l *CheckoutLine) dequeue() *Customer {
	if len(l.queue) == 0 {
		return nil
	}
	c := l.queue[0]
	l.queue[0] = nil
	l.queue = l.queue[1:]
	return c
}

// drain empties the queue and returns its former contents in order.
func (l *CheckoutLine) drain() []*Customer {
	out := l.queue
	l.queue = nil
	return out
}

func (l *CheckoutLine) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s#%d[", l.Kind, l.ID)
	for i, c := range l.queue {
		sb.WriteString(c.ID)
		if i < len(l.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
