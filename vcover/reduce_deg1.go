package vcover

// reduceDeg1 implements the distilled specification's §4.4 deg1 reduction:
// any undecided vertex with at most one undecided neighbor is excluded from
// the cover, forcing that single neighbor (if any) in; iterated to a fixed
// point via a work queue driven by decremented degrees.
func (s *Solver) reduceDeg1() bool {
	oldRemaining := s.remaining()

	queue := make([]int, 0, s.n)
	deg := make([]int, s.n)
	inQueue := make([]bool, s.n)
	for v := 0; v < s.n; v++ {
		if s.assign[v] != Undecided {
			continue
		}
		deg[v] = s.deg(v)
		if deg[v] <= 1 {
			queue = append(queue, v)
			inQueue[v] = true
		}
	}

	for len(queue) > 0 {
		v := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if s.assign[v] != Undecided {
			continue
		}
		// v has at most one undecided neighbor; excluding v will force that
		// neighbor (if any) in, removing both from the residual graph, so
		// pre-decrement the degree of their other neighbors before set()
		// applies the cascade.
		for _, u := range s.adj[v] {
			if s.assign[u] != Undecided {
				continue
			}
			for _, w := range s.adj[u] {
				if s.assign[w] == Undecided {
					deg[w]--
					if deg[w] <= 1 && !inQueue[w] {
						queue = append(queue, w)
						inQueue[w] = true
					}
				}
			}
		}
		s.set(v, Excluded)
	}

	return s.remaining() != oldRemaining
}
