package sim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/linolastella/checkout-sim/sim/trace"
)

func newTestStore(t *testing.T, cashiers, express, selfServe, capacity int) *Store {
	t.Helper()
	s, err := NewStore(NewStoreConfig(cashiers, express, selfServe, capacity))
	require.NoError(t, err)
	return s
}

func newTestSimulator(t *testing.T, cfg StoreConfig) *Simulator {
	t.Helper()
	s, err := NewSimulator(cfg, trace.TraceConfig{Level: trace.TraceLevelDecisions})
	require.NoError(t, err)
	return s
}

func arrival(ts int64, id string, items int) EventRecord {
	return EventRecord{Kind: KindArrival, Timestamp: ts, CustomerID: id, Items: items}
}

func closure(ts int64, line int) EventRecord {
	return EventRecord{Kind: KindLineClosure, Timestamp: ts, Line: line}
}

// mustJoin applies a first-time arrival and fails the test on error.
func mustJoin(t *testing.T, s *Store, ts int64, c *Customer) []Event {
	t.Helper()
	events, err := Apply(s, NewArrivalEvent(ts, c))
	require.NoError(t, err)
	return events
}

func queueIDs(l *CheckoutLine) []string {
	ids := make([]string, 0, l.Len())
	for _, c := range l.Customers() {
		ids = append(ids, c.ID)
	}
	return ids
}
