package cmd

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/linolastella/checkout-sim/sim"
	"github.com/linolastella/checkout-sim/sim/trace"
)

// runReport is everything a finished run hands to the renderer.
type runReport struct {
	Stats      sim.Stats
	StatsErr   error
	Lines      []sim.LineMetrics
	Unresolved []sim.UnresolvedCustomer
	Trace      *trace.SimulationTrace
}

func newRunReport(s *sim.Simulator, stats sim.Stats, statsErr error) runReport {
	return runReport{
		Stats:      stats,
		StatsErr:   statsErr,
		Lines:      s.LineMetrics(),
		Unresolved: s.Unresolved(),
		Trace:      s.Trace,
	}
}

// writeReport renders a run for the console.
func writeReport(w io.Writer, r runReport) {
	fmt.Fprintln(w, "=== Simulation Stats ===")
	fmt.Fprintf(w, "Customers            : %d\n", r.Stats.CustomerCount)
	fmt.Fprintf(w, "Total Time           : %d\n", r.Stats.TotalTime)
	if errors.Is(r.StatsErr, sim.ErrNoCompletedCustomers) {
		fmt.Fprintln(w, "Max Wait             : n/a (no customer finished)")
	} else {
		fmt.Fprintf(w, "Max Wait             : %d\n", r.Stats.MaxWait)
	}

	fmt.Fprintln(w, "\n=== Checkout Lines ===")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LINE\tKIND\tSTATE\tSERVED\tPEAK\tQUEUED")
	for _, l := range r.Lines {
		state := "open"
		if !l.Open {
			state = fmt.Sprintf("closed@%d", l.ClosedAt)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%d\n", l.ID, l.Kind, state, l.Served, l.PeakQueueLen, l.Queued)
	}
	tw.Flush()

	if len(r.Unresolved) > 0 {
		fmt.Fprintln(w, "\n=== Unresolved Customers ===")
		for _, u := range r.Unresolved {
			fmt.Fprintf(w, "%-20s at %d: %v\n", u.CustomerID, u.Timestamp, u.Err)
		}
	}

	if r.Trace != nil {
		summary := trace.Summarize(r.Trace)
		fmt.Fprintln(w, "\n=== Decision Trace ===")
		fmt.Fprintf(w, "Assignments          : %d (%d rejected)\n", summary.TotalDecisions, summary.RejectedCount)
		fmt.Fprintf(w, "Displaced Arrivals   : %d\n", summary.DisplacedArrivals)
		fmt.Fprintf(w, "Closures             : %d (%d customers displaced)\n", summary.Closures, summary.DisplacedCustomers)
		ids := make([]int, 0, len(summary.LineDistribution))
		for id := range summary.LineDistribution {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		for _, id := range ids {
			fmt.Fprintf(w, "  line %-3d assigned  : %d\n", id, summary.LineDistribution[id])
		}
	}
}
