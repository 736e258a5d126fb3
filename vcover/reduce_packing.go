package vcover

// reversedAssignment returns the current assignment with every folded vertex
// resolved to a concrete Excluded/Included value, as of the root vertex
// numbering. The result must not be mutated by callers.
//
// This is recomputed fresh on every call: distinct search nodes routinely
// share remainingVertices with entirely different assignments, so a cache
// keyed on remainingVertices alone (as an earlier version of this function
// used) returns a stale vector from an unrelated node, corrupting later
// packing checks. reducePacking calls this once per pass and reuses the
// result across its own member loop, which is the only reuse that is safe.
func (s *Solver) reversedAssignment() []Assignment {
	sol := append([]Assignment(nil), s.assign...)
	s.reverseInto(sol)
	return sol
}

// addPackingConstraint records "at most bound of members may be included",
// derived by unconfined/diamond/packing itself as a side effect of fixing
// some other vertex. members is a snapshot of currently-undecided vertices;
// it is evaluated against reversedAssignment() on every later packing pass,
// so it tolerates members later being folded away.
func (s *Solver) addPackingConstraint(bound int, members []int) {
	c := make([]int, 1+len(members))
	c[0] = bound
	copy(c[1:], members)
	s.packing = append(s.packing, c)
}

// packingResult is the three-way outcome of a single reducePacking pass,
// mirroring the distilled specification's "cut / progress / no-op" contract
// for this reduction.
type packingResult int

const (
	packingNoProgress packingResult = iota
	packingProgress
	packingInfeasible
)

// reducePacking implements the distilled specification's §4.4 packing
// reduction: every recorded constraint (bound, members) is checked against
// the root-resolved assignment. A constraint already violated cuts the
// branch; one exactly saturated forces every still-undecided member to 0 and
// derives fresh constraints for neighbors touched by exactly one of them; one
// that would be oversaturated if all its undecided members were included
// instead looks for a member-adjacent vertex whose inclusion is forced by
// counting.
func (s *Solver) reducePacking() packingResult {
	oldRemaining := s.remaining()
	sol := s.reversedAssignment()
	count := make([]int, s.n)

	for i := 0; i < len(s.packing); i++ {
		constraint := s.packing[i]
		bound, members := constraint[0], constraint[1:]
		max := len(members) - bound
		sum := 0
		var S []int
		for _, v := range members {
			switch sol[v] {
			case Undecided:
				S = append(S, v)
			case Included:
				sum++
			}
		}

		switch {
		case sum > max:
			return packingInfeasible

		case sum == max && len(S) > 0:
			s.used.Clear()
			for _, v := range S {
				s.used.Add(v)
				count[v] = -1
			}
			for _, v := range S {
				for _, u := range s.adj[v] {
					if s.assign[u] != Undecided {
						continue
					}
					if s.used.Add(u) {
						count[u] = 1
					} else if count[u] < 0 {
						return packingInfeasible
					} else {
						count[u]++
					}
				}
			}
			for _, v := range S {
				for _, u := range s.adj[v] {
					if s.assign[u] == Undecided && count[u] == 1 {
						var tmp []int
						for _, w := range s.adj[u] {
							if s.assign[w] == Undecided && !s.used.Contains(w) {
								tmp = append(tmp, w)
							}
						}
						s.addPackingConstraint(1, tmp)
					}
				}
			}
			for _, v := range S {
				if s.assign[v] != Undecided {
					continue
				}
				s.set(v, Excluded)
			}

		case sum+len(S) > max:
			s.used.Clear()
			for _, v := range S {
				s.used.Add(v)
			}
			for _, v := range s.adj[S[0]] {
				if s.assign[v] != Undecided || s.used.Contains(v) {
					continue
				}
				p := 0
				for _, u := range s.adj[v] {
					if s.used.Contains(u) {
						p++
					}
				}
				if sum+p > max {
					var members2 []int
					for _, u := range s.adj[v] {
						if s.assign[u] == Undecided {
							members2 = append(members2, u)
						}
					}
					s.addPackingConstraint(2, members2)
					s.set(v, Included)
					break
				}
			}
		}
	}

	if s.remaining() != oldRemaining {
		return packingProgress
	}
	return packingNoProgress
}
