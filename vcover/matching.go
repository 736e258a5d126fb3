package vcover

// matching.go implements the LP bipartite matching of the distilled
// specification's §4.3: a Hopcroft-Karp-style layered augmentation over an
// implicit bipartite graph with left copies l_v and right copies r_v of
// every undecided vertex, edge (l_u, r_v) iff (u,v) is a residual edge.
//
// Structurally grounded on other_examples/0xsoniclabs-aida__bipartite.go's
// BFS/DFS/MaxMatching; adapted here into the incremental maintenance scheme
// the distilled spec's Design Notes require ("the matching is never
// recomputed from scratch inside the recursion — only incrementally
// maintained"): inFlow/outFlow persist in the Solver across reductions and
// branching, and updateLP only repairs edges invalidated since the last
// call before re-running blocking-flow phases.

// updateLP repairs inFlow/outFlow for vertices whose decided status changed
// since the previous call, then runs Hopcroft-Karp blocking-flow phases to
// restore a maximum matching over the current residual graph.
func (s *Solver) updateLP() {
	n := s.n

	for v := 0; v < n; v++ {
		if s.outFlow[v] >= 0 {
			vUndecided := s.assign[v] == Undecided
			uUndecided := s.assign[s.outFlow[v]] == Undecided
			if vUndecided != uUndecided {
				s.inFlow[s.outFlow[v]] = -1
				s.outFlow[v] = -1
			}
		}
	}

	level := make([]int, n)
	iter := make([]int, n)

	for {
		s.matchUsed.Clear()
		queue := make([]int, 0, n)
		for v := 0; v < n; v++ {
			if s.assign[v] == Undecided && s.outFlow[v] < 0 {
				level[v] = 0
				s.matchUsed.Add(v)
				queue = append(queue, v)
			}
		}

		ok := false
		for qi := 0; qi < len(queue); qi++ {
			v := queue[qi]
			iter[v] = len(s.adj[v]) - 1
			for _, u := range s.adj[v] {
				if s.assign[u] != Undecided || !s.matchUsed.Add(n + u) {
					continue
				}
				w := s.inFlow[u]
				if w < 0 {
					ok = true
				} else {
					level[w] = level[v] + 1
					s.matchUsed.Add(w)
					queue = append(queue, w)
				}
			}
		}
		if !ok {
			break
		}
		for v := n - 1; v >= 0; v-- {
			if s.assign[v] == Undecided && s.outFlow[v] < 0 {
				s.dinicDFS(v, level, iter)
			}
		}
	}
}

// dinicDFS attempts to extend the level graph from v into an augmenting
// path, flipping matched edges along the way.
func (s *Solver) dinicDFS(v int, level, iter []int) bool {
	for iter[v] >= 0 {
		u := s.adj[v][iter[v]]
		iter[v]--
		if s.assign[u] != Undecided {
			continue
		}
		w := s.inFlow[u]
		if w < 0 || (level[v] < level[w] && iter[w] >= 0 && s.dinicDFS(w, level, iter)) {
			s.inFlow[u] = v
			s.outFlow[v] = u
			return true
		}
	}
	return false
}

// matchedCount returns the number of currently-matched undecided vertices
// with flow going out (equivalently, the size of the current LP matching).
func (s *Solver) matchedCount() int {
	c := 0
	for v := 0; v < s.n; v++ {
		if s.assign[v] == Undecided && s.outFlow[v] >= 0 {
			c++
		}
	}
	return c
}

// dropFlowAt clears any matched edge incident to v. set() does not call it:
// a matched pair left with one decided endpoint is dropped by updateLP's
// first pass, and popModification performs the equivalent fix-up for
// folded vertices.
func (s *Solver) dropFlowAt(v int) {
	if s.outFlow[v] >= 0 {
		s.inFlow[s.outFlow[v]] = -1
		s.outFlow[v] = -1
	}
	if s.inFlow[v] >= 0 {
		s.outFlow[s.inFlow[v]] = -1
		s.inFlow[v] = -1
	}
}
