package vcover

// reduceUnconfined implements the distilled specification's §4.4 unconfined
// reduction together with its diamond extension.
//
// A confining set S is grown starting from {v}. While some u in the outer
// shell N(S)\S has exactly one neighbor outside N[S], that neighbor is
// absorbed into S and the search continues; if some u instead has zero
// neighbors outside N[S], v is unconfined and forced into the cover.
//
// If the growth stalls with |S|>=2 and v still undecided, the diamond
// extension looks for two outer-shell vertices with an identical pair of
// further neighbors and no edge between them, which also certifies v
// unconfined.
func (s *Solver) reduceUnconfined() bool {
	oldRemaining := s.remaining()
	deg := make([]int, s.n)

	for v := 0; v < s.n; v++ {
		if s.assign[v] != Undecided {
			continue
		}
		s.used.Clear()
		s.used.Add(v)

		var NS []int
		for _, u := range s.adj[v] {
			if s.assign[u] == Undecided {
				s.used.Add(u)
				NS = append(NS, u)
				deg[u] = 1
			}
		}

		p := 1
		fixed := false

	growLoop:
		for {
			progressed := false
			for i := 0; i < len(NS); i++ {
				u := NS[i]
				if deg[u] != 1 {
					continue
				}
				z := -1
				for _, w := range s.adj[u] {
					if s.assign[w] == Undecided && !s.used.Contains(w) {
						if z >= 0 {
							z = -2
							break
						}
						z = w
					}
				}
				switch {
				case z == -1:
					s.addPackingConstraint(1, s.undecidedNeighbors(v))
					s.set(v, Included)
					fixed = true
					break growLoop
				case z >= 0:
					progressed = true
					p++
					s.used.Add(z)
					for _, w := range s.adj[z] {
						if s.assign[w] == Undecided {
							if s.used.Add(w) {
								NS = append(NS, w)
								deg[w] = 1
							} else {
								deg[w]++
							}
						}
					}
				}
			}
			if !progressed {
				break
			}
		}

		if fixed {
			continue
		}
		if s.assign[v] == Undecided && p >= 2 {
			s.diamondExtension(v, NS, deg)
		}
	}

	return s.remaining() != oldRemaining
}

// diamondExtension implements the outer-shell pairing check from the Java
// reference's unconfined reduction: the outer shell NS = N(S) of a stalled
// confining set S for v is examined for two members u_i, u_j that each have
// two neighbors in S and exactly two undecided neighbors outside NS, those
// pairs coinciding, and u_i, u_j not being adjacent — which also certifies
// v unconfined.
func (s *Solver) diamondExtension(v int, NS []int, deg []int) {
	s.used.Clear()
	for _, u := range NS {
		s.used.Add(u)
	}

	n := len(NS)
	pairA := make([]int, n)
	pairB := make([]int, n)
	for i, u := range NS {
		pairA[i], pairB[i] = -1, -1
		if deg[u] != 2 {
			continue
		}
		v1, v2 := -1, -1
		ok := true
		for _, w := range s.adj[u] {
			if s.assign[w] != Undecided || s.used.Contains(w) {
				continue
			}
			switch {
			case v1 < 0:
				v1 = w
			case v2 < 0:
				v2 = w
			default:
				ok = false
			}
		}
		if !ok {
			continue
		}
		if v1 > v2 {
			v1, v2 = v2, v1
		}
		pairA[i], pairB[i] = v1, v2
	}

	for i := 0; i < n; i++ {
		if pairA[i] < 0 || pairB[i] < 0 {
			continue
		}
		u := NS[i]
		s.used.Clear()
		for _, w := range s.adj[u] {
			if s.assign[w] == Undecided {
				s.used.Add(w)
			}
		}
		for j := i + 1; j < n; j++ {
			if pairA[j] == pairA[i] && pairB[j] == pairB[i] && !s.used.Contains(NS[j]) {
				s.addPackingConstraint(1, s.undecidedNeighbors(v))
				s.set(v, Included)
				return
			}
		}
	}
}
