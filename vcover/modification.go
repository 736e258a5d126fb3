package vcover

import "sort"

// modKind tags a modification as one of the two reduction-contraction
// shapes, per the Design Notes' recommendation of a tagged variant over a
// small virtual hierarchy.
type modKind uint8

const (
	kindFold modKind = iota
	kindAlternative
)

// modification is a reversible record of a single fold or alternative
// contraction, pushed onto Solver.modifications and undone in LIFO order by
// restoreTo/popModification, or resolved onto a solution vector by reverse.
type modification struct {
	kind    modKind
	add     int
	removed []int
	vs      []int
	oldAdj  [][]int
	k       int // Alternative only: len(A-side) within vs
}

// applyModification pushes a new modification: increments currentValue by
// add, marks removed as Folded, rebinds adj[vs[i]] to newAdj[i] (saving the
// prior adjacency for restore), and records a single pop-marker on the
// restore stack.
func (s *Solver) applyModification(kind modKind, add int, removed, vs []int, newAdj [][]int, k int) *modification {
	m := &modification{
		kind:    kind,
		add:     add,
		removed: removed,
		vs:      vs,
		oldAdj:  make([][]int, len(vs)),
		k:       k,
	}
	s.currentValue += add
	for _, v := range removed {
		s.assign[v] = Folded
		s.remainingVertices--
	}
	s.restore.Push(popMarker)
	s.modifications = append(s.modifications, m)
	for i, vi := range vs {
		m.oldAdj[i] = s.adj[vi]
		s.adj[vi] = newAdj[i]
	}
	return m
}

// popModification undoes the most recently applied modification.
func (s *Solver) popModification() {
	m := s.modifications[len(s.modifications)-1]
	s.modifications = s.modifications[:len(s.modifications)-1]

	s.currentValue -= m.add
	s.remainingVertices += len(m.removed)
	for _, v := range m.removed {
		s.assign[v] = Undecided
	}
	for i, vi := range m.vs {
		s.adj[vi] = m.oldAdj[i]
		inF, outF := s.inFlow[vi], s.outFlow[vi]
		for _, u := range s.adj[vi] {
			if u == inF {
				inF = -1
			}
			if u == outF {
				outF = -1
			}
		}
		if inF >= 0 {
			s.outFlow[s.inFlow[vi]] = -1
			s.inFlow[vi] = -1
		}
		if outF >= 0 {
			s.inFlow[s.outFlow[vi]] = -1
			s.outFlow[vi] = -1
		}
	}
}

// reverse resolves m onto sol, a full-length solution vector already
// populated for every non-Folded vertex, assigning final 0/1 values to
// m.removed based on the reduced-graph status of m.vs.
func (m *modification) reverse(sol []Assignment) {
	switch m.kind {
	case kindFold:
		m.reverseFold(sol)
	case kindAlternative:
		m.reverseAlternative(sol)
	}
}

// reverseFold: vs[0] is the contracted representative. If it ended up
// Excluded, the "inner" half of removed (the original reduced vertex, e.g.
// the degree-2 vertex v in fold2) goes to Included and the "outer" half
// (e.g. u1) goes to Excluded; if vs[0] ended up Included, the assignment is
// flipped.
func (m *modification) reverseFold(sol []Assignment) {
	k := len(m.removed) / 2
	switch sol[m.vs[0]] {
	case Excluded:
		for i := 0; i < k; i++ {
			sol[m.removed[i]] = Included
		}
		for i := 0; i < k; i++ {
			sol[m.removed[k+i]] = Excluded
		}
	case Included:
		for i := 0; i < k; i++ {
			sol[m.removed[i]] = Excluded
		}
		for i := 0; i < k; i++ {
			sol[m.removed[k+i]] = Included
		}
	}
}

// reverseAlternative inspects the reduced-graph status of the A-side
// (vs[0:k]) and B-side (vs[k:]) introduced neighborhoods to determine which
// of the two symmetric removed-halves (A-originals, B-originals) is fully
// included: A1 means every A-side introduced neighbor is Included (so A's
// originals must be Excluded, forcing B's in); A0 means some A-side
// neighbor is Excluded (so A's originals must be Included). B mirrors A.
func (m *modification) reverseAlternative(sol []Assignment) {
	a0, a1 := false, true
	for i := 0; i < m.k; i++ {
		if sol[m.vs[i]] == Excluded {
			a0 = true
		}
		if sol[m.vs[i]] != Included {
			a1 = false
		}
	}
	b0, b1 := false, true
	for i := m.k; i < len(m.vs); i++ {
		if sol[m.vs[i]] == Excluded {
			b0 = true
		}
		if sol[m.vs[i]] != Included {
			b1 = false
		}
	}
	half := len(m.removed) / 2
	if a1 || b0 {
		for i := 0; i < half; i++ {
			sol[m.removed[i]] = Excluded
		}
		for i := half; i < len(m.removed); i++ {
			sol[m.removed[i]] = Included
		}
	} else if b1 || a0 {
		for i := 0; i < half; i++ {
			sol[m.removed[i]] = Included
		}
		for i := half; i < len(m.removed); i++ {
			sol[m.removed[i]] = Excluded
		}
	}
}

// fold contracts the neighbors of S (|S|=k) and NS (|NS|=k+1, NS[0] is the
// vertex reused as the contracted representative) into a single new
// vertex, per the distilled specification's fold2/twin reductions.
func (s *Solver) fold(S, NS []int) {
	removed := make([]int, 0, len(S)+len(NS)-1)
	removed = append(removed, S...)
	removed = append(removed, NS[1:]...)
	rep := NS[0]

	s.used.Clear()
	for _, v := range S {
		s.used.Add(v)
	}
	var others []int
	for _, v := range NS {
		for _, u := range s.adj[v] {
			if s.assign[u] == Undecided && s.used.Add(u) {
				others = append(others, u)
			}
		}
	}
	sort.Ints(others)

	vs := make([]int, len(others)+1)
	vs[0] = rep
	copy(vs[1:], others)

	s.used.Clear()
	for _, v := range S {
		s.used.Add(v)
	}
	for _, v := range NS {
		s.used.Add(v)
	}

	newAdj := make([][]int, len(vs))
	newAdj[0] = append([]int(nil), others...)
	for i, v := range others {
		var t []int
		for _, u := range s.adj[v] {
			if s.assign[u] == Undecided && !s.used.Contains(u) {
				t = append(t, u)
			}
		}
		t = append(t, rep)
		sort.Ints(t)
		newAdj[1+i] = t
	}

	s.applyModification(kindFold, len(S), removed, vs, newAdj, 0)
}

// alternative encodes "exactly one of A, B is in the cover" for two
// equal-size vertex sets A, B with disjoint-enough neighborhoods, per the
// funnel/desk reductions. Any undecided vertex adjacent to both an A member
// and a B member is immediately forced Included, since it would otherwise
// be left uncovered by whichever side is excluded.
func (s *Solver) alternative(A, B []int) {
	s.used.Clear()
	for _, b := range B {
		for _, u := range s.adj[b] {
			if s.assign[u] == Undecided {
				s.used.Add(u)
			}
		}
	}
	for _, a := range A {
		for _, u := range s.adj[a] {
			if s.assign[u] == Undecided && s.used.Contains(u) {
				s.set(u, Included)
			}
		}
	}

	s.used.Clear()
	for _, b := range B {
		s.used.Add(b)
	}
	var a2 []int
	for _, a := range A {
		for _, u := range s.adj[a] {
			if s.assign[u] == Undecided && s.used.Add(u) {
				a2 = append(a2, u)
			}
		}
	}
	sort.Ints(a2)

	s.used.Clear()
	for _, a := range A {
		s.used.Add(a)
	}
	var b2 []int
	for _, b := range B {
		for _, u := range s.adj[b] {
			if s.assign[u] == Undecided && s.used.Add(u) {
				b2 = append(b2, u)
			}
		}
	}
	sort.Ints(b2)

	removed := make([]int, 0, len(A)+len(B))
	removed = append(removed, A...)
	removed = append(removed, B...)

	vs := make([]int, 0, len(a2)+len(b2))
	vs = append(vs, a2...)
	vs = append(vs, b2...)

	s.used.Clear()
	for _, a := range A {
		s.used.Add(a)
	}
	for _, b := range B {
		s.used.Add(b)
	}

	newAdj := make([][]int, len(vs))
	for i, v := range vs {
		opposite := b2
		if i >= len(a2) {
			opposite = a2
		}
		var t []int
		for _, u := range s.adj[v] {
			if s.assign[u] == Undecided && !s.used.Contains(u) {
				t = append(t, u)
			}
		}
		for _, c := range opposite {
			if !s.used.Contains(c) {
				t = append(t, c)
			}
		}
		newAdj[i] = dedupSorted(t)
	}

	s.applyModification(kindAlternative, len(removed)/2, removed, vs, newAdj, len(a2))
}

// dedupSorted sorts t and removes adjacent duplicates.
func dedupSorted(t []int) []int {
	sort.Ints(t)
	out := t[:0]
	var prev int
	havePrev := false
	for _, v := range t {
		if havePrev && v == prev {
			continue
		}
		out = append(out, v)
		prev, havePrev = v, true
	}
	return out
}
