package vcover

// reduceFunnel implements the distilled specification's §4.4 funnel
// reduction: a degree->=2 undecided vertex v where N(v)\{u} is a clique for
// some u in N(v) yields Alternative({v},{u}) — exactly one of v, u is in
// the cover. If v has at most one undecided neighbor it is handled by
// deg1 instead and excluded directly here as a fallback.
func (s *Solver) reduceFunnel() bool {
	oldRemaining := s.remaining()

	for v := 0; v < s.n; v++ {
		if s.assign[v] != Undecided {
			continue
		}
		nb := s.undecidedNeighbors(v)
		if len(nb) <= 1 {
			s.set(v, Excluded)
			continue
		}
		u := s.funnelWitness(nb)
		if u < 0 {
			continue
		}
		s.alternative([]int{v}, []int{u})
	}

	return s.remaining() != oldRemaining
}

// funnelWitness returns a u in nb such that nb minus u is a clique, or -1.
func (s *Solver) funnelWitness(nb []int) int {
	for _, u := range nb {
		if s.cliqueExcluding(nb, u) {
			return u
		}
	}
	return -1
}

// cliqueExcluding reports whether nb\{exclude} forms a clique.
func (s *Solver) cliqueExcluding(nb []int, exclude int) bool {
	for i := range nb {
		if nb[i] == exclude {
			continue
		}
		for j := i + 1; j < len(nb); j++ {
			if nb[j] == exclude {
				continue
			}
			if !s.adjacent(nb[i], nb[j]) {
				return false
			}
		}
	}
	return true
}
