package vcover

// reduceLP implements the distilled specification's §4.3/§4.4 LP reduction.
//
// After updateLP() settles the matching, matchUsed holds exactly the final
// BFS frontier: l_v is present iff v is reachable from some exposed
// undecided left vertex along the matching's alternating-path residual
// graph, and r_v is present iff the same holds for v's right copy. Per the
// Nemhauser-Trotter persistency argument, any undecided v with l_v reachable
// and r_v not is safely excluded.
//
// The remainder performs a Kosaraju-style two-pass traversal of the wider
// implication digraph (l_v -> r_u for every residual edge (v,u); r_u -> l_v
// only along the matching edge) to find vertices whose right copy's
// strongly connected component never contains the left copy — those are
// excluded too.
func (s *Solver) reduceLP() bool {
	oldRemaining := s.remaining()
	n := s.n

	s.updateLP()

	for v := 0; v < n; v++ {
		if s.assign[v] == Undecided && s.matchUsed.Contains(v) && !s.matchUsed.Contains(n+v) {
			s.set(v, Excluded)
		}
	}

	s.matchUsed.Clear()
	iter := make([]int, n)
	order := make([]int, 0, 2*n)

	for root := 0; root < n; root++ {
		if s.assign[root] != Undecided || !s.matchUsed.Add(root) {
			continue
		}
		stack := []int{root}
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			u := -1
			if v < n {
				for iter[v] < len(s.adj[v]) {
					cand := n + s.adj[v][iter[v]]
					iter[v]++
					if s.assign[cand-n] == Undecided && s.matchUsed.Add(cand) {
						u = cand
						break
					}
				}
			} else if w := s.inFlow[v-n]; w >= 0 && s.matchUsed.Add(w) {
				// The only edge out of a right copy is its matching edge;
				// an exposed right copy (w < 0) has no successor at all.
				u = w
			}
			if u >= 0 {
				stack = append(stack, u)
			} else {
				order = append(order, v)
				stack = stack[:len(stack)-1]
			}
		}
	}

	s.matchUsed.Clear()
	for i := len(order) - 1; i >= 0; i-- {
		root := order[i]
		if !s.matchUsed.Add(root) {
			continue
		}
		comp := []int{root}
		ok := true
		for qi := 0; qi < len(comp); qi++ {
			v := comp[qi]
			opp := v + n
			if v >= n {
				opp = v - n
			}
			if s.matchUsed.Contains(opp) {
				ok = false
			}
			if v >= n {
				for _, u := range s.adj[v-n] {
					if s.assign[u] == Undecided && s.matchUsed.Add(u) {
						comp = append(comp, u)
					}
				}
			} else if s.outFlow[v] >= 0 && s.matchUsed.Add(n+s.outFlow[v]) {
				comp = append(comp, n+s.outFlow[v])
			}
		}
		if ok {
			for _, v := range comp {
				if v >= n {
					s.set(v-n, Excluded)
				}
			}
		}
	}

	return s.remaining() != oldRemaining
}
