// Package trace provides decision-trace recording for checkout-line analysis.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// CandidateLine captures an open line that could take a customer at decision time.
type CandidateLine struct {
	LineID   int
	Kind     string
	QueueLen int
}

// AssignmentRecord captures a single line-assignment decision.
type AssignmentRecord struct {
	CustomerID string
	Clock      int64
	Items      int
	Assigned   bool
	ChosenLine int // -1 when no line could take the customer
	Displaced  bool
	Reason     string
	Candidates []CandidateLine // eligible, under-capacity lines in open order
}

// ClosureRecord captures a line closing and the customers it pushed out.
type ClosureRecord struct {
	LineID    int
	Clock     int64
	Displaced []string // customer IDs in original queue order
}
