package vcover

// reduce.go implements the distilled specification's §4.4 fixed-priority
// reduction dispatcher: apply the cheapest-first reduction that makes
// progress, restart from the top whenever one does, and stop once a full
// pass makes no progress at all (or a packing constraint is violated).
//
// Grounded on VCSolver.java's reduce(); gated only by Options' per-reduction
// Enable* flags — the Java reference's density/DV/OC gating is dead code in
// the original (see DESIGN.md) and is not ported.
func (s *Solver) reduce() (infeasible bool) {
	for {
		progressed := false

		if s.opts.EnableDeg1 && s.reduceDeg1() {
			progressed = true
		} else if s.opts.EnableFold2 && s.reduceFold2() {
			progressed = true
		} else if s.opts.EnableTwin && s.reduceTwin() {
			progressed = true
		} else if s.opts.EnableDesk && s.reduceDesk() {
			progressed = true
		} else if s.opts.EnableDominance && s.reduceDominance() {
			progressed = true
		} else if s.opts.EnableUnconfined && s.reduceUnconfined() {
			progressed = true
		} else if s.opts.EnableLP && s.reduceLP() {
			progressed = true
		} else {
			result := packingNoProgress
			if s.opts.EnablePacking {
				result = s.reducePacking()
			}
			switch {
			case result == packingInfeasible:
				return true
			case result == packingProgress:
				progressed = true
			case s.opts.EnableFunnel && s.reduceFunnel():
				progressed = true
			}
		}

		if !progressed {
			return false
		}
	}
}
