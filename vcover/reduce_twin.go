package vcover

import "sort"

// reduceTwin implements the distilled specification's §4.4 twin reduction:
// degree-3 undecided vertices v, w with N(v)=N(w)=S, |S|=3: if S is
// independent, fold v,w into the three vertices of S; otherwise fix both v
// and w to 0 (set() forces their three shared neighbors into the cover at
// once).
func (s *Solver) reduceTwin() bool {
	oldRemaining := s.remaining()

	for v := 0; v < s.n; v++ {
		if s.assign[v] != Undecided || s.deg(v) != 3 {
			continue
		}
		sv := s.undecidedNeighbors(v)
		sort.Ints(sv)

		w := s.findTwin(v, sv)
		if w < 0 {
			continue
		}

		if s.independent(sv) {
			s.fold([]int{v, w}, []int{sv[0], sv[1], sv[2]})
		} else {
			s.set(v, Excluded)
			s.set(w, Excluded)
		}
	}

	return s.remaining() != oldRemaining
}

// findTwin returns an undecided degree-3 vertex w != v with
// N(w) == sv (sv already sorted), or -1 if none exists.
func (s *Solver) findTwin(v int, sv []int) int {
	for _, u := range sv {
		for _, w := range s.adj[u] {
			if w == v || s.assign[w] != Undecided || s.deg(w) != 3 {
				continue
			}
			nw := s.undecidedNeighbors(w)
			if len(nw) != 3 {
				continue
			}
			sort.Ints(nw)
			if nw[0] == sv[0] && nw[1] == sv[1] && nw[2] == sv[2] {
				return w
			}
		}
	}
	return -1
}

// independent reports whether the given (small) vertex set has no edge
// between any pair of its members.
func (s *Solver) independent(vs []int) bool {
	for i := range vs {
		for j := i + 1; j < len(vs); j++ {
			if s.adjacent(vs[i], vs[j]) {
				return false
			}
		}
	}
	return true
}
