package sim

// Stats is the aggregate result of a simulation run.
type Stats struct {
	CustomerCount int   // customers that ever joined a line
	TotalTime     int64 // timestamp of the last applied event
	MaxWait       int64 // longest arrival-to-finish time among completed customers
}

// Stats computes the run's aggregate result from the current state. It
// returns ErrNoCompletedCustomers, alongside the other fields, when no
// customer has finished service.
func (s *Simulator) Stats() (Stats, error) {
	stats := Stats{
		CustomerCount: len(s.Store.customers),
		TotalTime:     s.TotalTime,
	}
	completed := false
	for _, c := range s.Store.customers {
		if !c.done {
			continue
		}
		if !completed || c.Wait > stats.MaxWait {
			stats.MaxWait = c.Wait
		}
		completed = true
	}
	if !completed {
		return stats, ErrNoCompletedCustomers
	}
	return stats, nil
}

// LineMetrics summarises one checkout line at the end of a run.
type LineMetrics struct {
	ID           LineID
	Kind         LineKind
	Open         bool
	ClosedAt     int64 // meaningful only when !Open
	Served       int
	PeakQueueLen int
	Queued       int // customers still in line
}

// LineMetrics returns per-line counters in LineID order.
func (s *Simulator) LineMetrics() []LineMetrics {
	out := make([]LineMetrics, 0, len(s.Store.lines))
	for _, l := range s.Store.lines {
		out = append(out, LineMetrics{
			ID:           l.ID,
			Kind:         l.Kind,
			Open:         l.open,
			ClosedAt:     l.closedAt,
			Served:       l.served,
			PeakQueueLen: l.peakLen,
			Queued:       l.Len(),
		})
	}
	return out
}
