package vcover

// reduceFold2 implements the distilled specification's §4.4 fold2
// reduction: for every undecided v with exactly two undecided neighbors
// u0, u1, if (u0,u1) is an edge then both dominate v and v is excluded;
// otherwise v is folded away, with u0 reused as the contracted
// representative and its post-fold adjacency set to
// (N(u0) ∪ N(u1)) \ {v,u0,u1}.
func (s *Solver) reduceFold2() bool {
	oldRemaining := s.remaining()

	for v := 0; v < s.n; v++ {
		if s.assign[v] != Undecided {
			continue
		}
		nb := s.undecidedNeighbors(v)
		if len(nb) != 2 {
			continue
		}
		u0, u1 := nb[0], nb[1]

		if s.adjacent(u0, u1) {
			s.set(v, Excluded)
			continue
		}
		s.fold([]int{v}, []int{u0, u1})
	}

	return s.remaining() != oldRemaining
}

// adjacent reports whether (u,v) is an edge of the current residual graph's
// static adjacency (present regardless of either endpoint's decided state).
func (s *Solver) adjacent(u, v int) bool {
	for _, w := range s.adj[u] {
		if w == v {
			return true
		}
	}
	return false
}
