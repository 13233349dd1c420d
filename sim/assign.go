package sim

// lineCandidate is an open line that can take a given customer.
type lineCandidate struct {
	id     LineID
	pos    int // position among the store's open lines
	queued int
}

// AssignLine picks the line an arriving customer joins: among open lines that
// accept the customer's item count and are below capacity, the one with the
// fewest queued customers, with ties going to the lowest-positioned open line.
func AssignLine(s *Store, c *Customer) (LineID, error) {
	id, _, err := assign(s, c)
	return id, err
}

func assign(s *Store, c *Customer) (LineID, []lineCandidate, error) {
	candidates := eligibleLines(s, c)
	if len(candidates) == 0 {
		return noLine, nil, &NoEligibleLineError{CustomerID: c.ID, Items: c.Items, OpenLines: len(s.open)}
	}
	return shortestLine(candidates).id, candidates, nil
}

func eligibleLines(s *Store, c *Customer) []lineCandidate {
	candidates := make([]lineCandidate, 0, len(s.open))
	for pos, id := range s.open {
		line := s.lines[id]
		if !line.Kind.Accepts(c.Items) || line.Len() >= s.capacity {
			continue
		}
		candidates = append(candidates, lineCandidate{id: id, pos: pos, queued: line.Len()})
	}
	return candidates
}

// shortestLine compares on (queued, pos) so the result does not depend on
// the order candidates are listed in. Panics on an empty slice.
func shortestLine(candidates []lineCandidate) lineCandidate {
	best := candidates[0]
	for _, cand := range candidates[1:] {
		if cand.queued < best.queued || (cand.queued == best.queued && cand.pos < best.pos) {
			best = cand
		}
	}
	return best
}
