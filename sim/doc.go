// Package sim provides the discrete-event engine for the checkout simulator.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - event.go: the three event variants (Arrival, FinishService, LineClosure) and Apply
//   - store.go: open lines, the customer registry, and how each event mutates them
//   - simulator.go: seeding, the event loop, and stranded-customer bookkeeping
//
// # Ordering
//
// EventQueue orders events by timestamp, then by kind (FinishService before
// LineClosure before Arrival), then by insertion sequence. Identical input
// therefore always replays identically.
//
// # Sub-packages
//   - sim/trace/: assignment and closure decision recording
//   - sim/workload/: event-log parsing and cron-driven event generation
package sim
