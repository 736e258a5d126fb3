package vcover

// branch.go implements the distilled specification's §4.7 branching step:
// choosing a vertex to branch on, detecting mirrors that can be forced
// alongside it, and recursing over the two-way Include/Exclude split.
//
// Grounded on VCSolver.java's branching(); the save/restore-around-each-
// child control structure follows tsp/bb.go's dfs discipline of checkpoint,
// recurse, unconditional restore.

// branch picks a branching vertex v and explores both v excluded (cascading
// its undecided neighbors included) and v included (forcing its mirrors
// included alongside it, per the mirror lemma — mirrors are only safe to
// force into the cover in the branch where v itself is in the cover:
// excluding both v and a mirror can still be part of an optimal cover),
// recursing into rec() for each and restoring all state in between.
func (s *Solver) branch() {
	v := s.selectBranchVertex()
	if v < 0 {
		return
	}
	mirrors := s.findMirrors(v)
	oldLB, oldLBType := s.lb, s.lbType

	// Left child: v excluded (cascades to including all of v's undecided
	// neighbors). No mirror is forced here. When no mirrors were found, the
	// Java reference additionally derives per-neighbor packing constraints
	// from v's neighborhood before recursing.
	s.withCheckpoint(func() {
		oldP := len(s.packing)
		if len(mirrors) == 0 {
			s.addMirrorlessPackingConstraints(v)
		}
		s.set(v, Excluded)
		s.rec()
		s.packing = s.packing[:oldP]
		s.lb, s.lbType = oldLB, oldLBType
	})
	if s.deadlineExceeded() {
		return
	}

	// Right child: v included, forcing every mirror included alongside it.
	// The Java reference also pushes a bound=2 (if mirrors were found) or
	// bound=1 (otherwise) packing constraint over N(v) before recursing.
	s.withCheckpoint(func() {
		oldP := len(s.packing)
		bound := 1
		if len(mirrors) > 0 {
			bound = 2
		}
		s.addPackingConstraint(bound, s.undecidedNeighbors(v))
		s.set(v, Included)
		for _, m := range mirrors {
			if s.assign[m] == Undecided {
				s.set(m, Included)
			}
		}
		s.rec()
		s.packing = s.packing[:oldP]
		s.lb, s.lbType = oldLB, oldLBType
	})
}

// selectBranchVertex picks the next vertex to branch on according to
// Options.BranchRule, or -1 if no undecided vertex remains.
func (s *Solver) selectBranchVertex() int {
	best := -1
	switch s.opts.BranchRule {
	case BranchRandom:
		var candidates []int
		for v := 0; v < s.n; v++ {
			if s.assign[v] == Undecided {
				candidates = append(candidates, v)
			}
		}
		if len(candidates) == 0 {
			return -1
		}
		return candidates[s.rnd.Intn(len(candidates))]

	case BranchMinDegree:
		bestDeg := -1
		for v := 0; v < s.n; v++ {
			if s.assign[v] != Undecided {
				continue
			}
			d := s.deg(v)
			if best < 0 || d < bestDeg {
				best, bestDeg = v, d
			}
		}
		return best

	default: // BranchMaxDegree
		bestDeg, bestEdges := -1, -1
		for v := 0; v < s.n; v++ {
			if s.assign[v] != Undecided {
				continue
			}
			d := s.deg(v)
			if d < bestDeg {
				continue
			}
			e := s.neighborhoodEdgeCount(v)
			if d > bestDeg || e < bestEdges {
				best, bestDeg, bestEdges = v, d, e
			}
		}
		return best
	}
}

// neighborhoodEdgeCount counts edges among v's undecided neighbors, used as
// a max-degree tiebreak (fewer internal edges means a sparser, more
// branch-friendly neighborhood).
func (s *Solver) neighborhoodEdgeCount(v int) int {
	s.used.Clear()
	for _, u := range s.adj[v] {
		if s.assign[u] == Undecided {
			s.used.Add(u)
		}
	}
	count := 0
	for _, u := range s.adj[v] {
		if s.assign[u] != Undecided {
			continue
		}
		for _, w := range s.adj[u] {
			if s.assign[w] == Undecided && s.used.Contains(w) && w > u {
				count++
			}
		}
	}
	return count
}

// findMirrors returns the mirrors of v, which branch() forces included
// alongside v in the child where v itself is included: a
// neighbor-of-a-neighbor w (at distance 2 from v) such that N(v)\N[w] is a
// clique, so that whenever v is in the cover some minimum cover of that
// branch also contains w.
func (s *Solver) findMirrors(v int) []int {
	s.used.Clear()
	s.used.Add(v)
	for _, u := range s.adj[v] {
		if s.assign[u] == Undecided {
			s.used.Add(u)
		}
	}

	var mirrors []int
	seen := make(map[int]bool)

	for _, u := range s.adj[v] {
		if s.assign[u] != Undecided {
			continue
		}
		for _, w := range s.adj[u] {
			if s.assign[w] != Undecided || s.used.Contains(w) || seen[w] {
				continue
			}
			seen[w] = true

			// w qualifies as a mirror iff N(v)\N[w] forms a clique: the
			// non-neighbors of w within N(v) must be pairwise adjacent.
			outside := make(map[int]bool)
			for _, x := range s.adj[w] {
				if s.assign[x] == Undecided {
					outside[x] = true
				}
			}
			var rest []int
			for _, x := range s.adj[v] {
				if s.assign[x] == Undecided && x != w && !outside[x] {
					rest = append(rest, x)
				}
			}
			clique := true
		restCheck:
			for i := 0; i < len(rest) && clique; i++ {
				for j := i + 1; j < len(rest); j++ {
					if !s.adjacent(rest[i], rest[j]) {
						clique = false
						break restCheck
					}
				}
			}
			if clique {
				mirrors = append(mirrors, w)
			}
		}
	}
	return mirrors
}

// addMirrorlessPackingConstraints derives "at most one" packing constraints
// among v's neighbors for the branch where v is excluded, when no mirror was
// found for v: for each undecided neighbor u of v whose other undecided
// neighbors (outside v) form a clique, excluding v (and so covering the edge
// v-u through u) commits the solver to including at most one of that clique,
// recorded so later reductions can exploit it.
func (s *Solver) addMirrorlessPackingConstraints(v int) {
	for _, u := range s.adj[v] {
		if s.assign[u] != Undecided {
			continue
		}
		var rest []int
		for _, w := range s.adj[u] {
			if s.assign[w] == Undecided && w != v {
				rest = append(rest, w)
			}
		}
		if len(rest) < 2 {
			continue
		}
		clique := true
	check:
		for i := 0; i < len(rest); i++ {
			for j := i + 1; j < len(rest); j++ {
				if !s.adjacent(rest[i], rest[j]) {
					clique = false
					break check
				}
			}
		}
		if clique {
			s.addPackingConstraint(1, rest)
		}
	}
}
