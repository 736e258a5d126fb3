package vcover

// driver.go implements the distilled specification's §4.2 top-level
// recursive driver: check the deadline, reduce, bound, decompose or branch.
//
// Grounded on VCSolver.java's rec(); the one-time INITIAL_REDUCTION/tiered-
// disable block at the top of the Java reference's solve() is out of scope
// per the "Preprocess mode / tiered disabling" Open Question decision in
// DESIGN.md.
func (s *Solver) rec() {
	if s.deadlineExceeded() {
		return
	}

	if float64(s.remainingVertices) <= float64(s.n)*s.opts.ReductionSizeThreshold {
		if s.reduce() {
			// A packing constraint was violated: this branch is infeasible,
			// prune without recording a solution.
			return
		}
	}

	if s.isLeaf() {
		if s.currentValue < s.optimalValue {
			s.commitSolution()
		}
		return
	}

	s.computeLowerBound()
	if s.lb >= s.optimalValue {
		s.stats.NumLeftCuts++
		return
	}

	if s.decompose() {
		return
	}

	// OnlyRoot is handled once, at run()'s entry, for the whole recursion
	// (Options is immutable per solve, so checking it again on every
	// recursive rec() call would be dead weight).
	s.stats.NumBranches++
	s.branch()
}
