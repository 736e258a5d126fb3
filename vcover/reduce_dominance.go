package vcover

// reduceDominance implements the distilled specification's §4.4 dominance
// reduction: if N(v) ∪ {v} ⊇ N(u) ∪ {u} for some undecided neighbor u of v
// (v dominates u), fix v to 1 — v's coverage is a superset of u's,
// so including v is never worse than including u.
func (s *Solver) reduceDominance() bool {
	oldRemaining := s.remaining()

	for v := 0; v < s.n; v++ {
		if s.assign[v] != Undecided {
			continue
		}
		s.used.Clear()
		s.used.Add(v)
		for _, u := range s.adj[v] {
			if s.assign[u] == Undecided {
				s.used.Add(u)
			}
		}

	neighborLoop:
		for _, u := range s.adj[v] {
			if s.assign[u] != Undecided {
				continue
			}
			for _, w := range s.adj[u] {
				if s.assign[w] == Undecided && !s.used.Contains(w) {
					continue neighborLoop
				}
			}
			s.set(v, Included)
			break
		}
	}

	return s.remaining() != oldRemaining
}
