package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalDecisions     int
	AssignedCount      int
	RejectedCount      int
	DisplacedArrivals  int // assignment attempts made for displaced customers
	Closures           int
	DisplacedCustomers int // customers pushed out by closures
	UniqueLines        int
	LineDistribution   map[int]int // line ID → count of customers assigned
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		LineDistribution: make(map[int]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalDecisions = len(st.Assignments)
	for _, a := range st.Assignments {
		if a.Assigned {
			summary.AssignedCount++
			summary.LineDistribution[a.ChosenLine]++
		} else {
			summary.RejectedCount++
		}
		if a.Displaced {
			summary.DisplacedArrivals++
		}
	}

	summary.Closures = len(st.Closures)
	for _, c := range st.Closures {
		summary.DisplacedCustomers += len(c.Displaced)
	}

	summary.UniqueLines = len(summary.LineDistribution)

	return summary
}
