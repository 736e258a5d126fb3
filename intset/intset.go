// Package intset provides a fixed-universe integer set with O(1)
// add, remove, contains and clear, backed by a generation-counter array.
//
// Membership of v in [0,n) is tested by comparing used[v] against the
// current generation id. clear() only bumps the generation instead of
// zeroing the backing array, so a full clear is also O(1) except for the
// rare generation-overflow case.
//
// Complexity:
//
//	– Time:  O(1) for Add, Remove, Contains, Clear (amortized).
//	– Space: O(n).
package intset

// Set is a dense, fixed-universe set of integers in [0,n).
// The zero value is not usable; construct with New.
type Set struct {
	used []int32
	gen  int32
}

// New returns a Set over the universe [0,n), initially empty.
func New(n int) *Set {
	return &Set{
		used: make([]int32, n),
		gen:  1,
	}
}

// Len returns the size of the universe this Set was constructed over.
func (s *Set) Len() int {
	return len(s.used)
}

// Clear empties the set in O(1) amortized time by advancing the generation
// counter. On the rare int32 overflow, the backing array is rezeroed.
func (s *Set) Clear() {
	s.gen++
	if s.gen < 0 {
		for i := range s.used {
			s.used[i] = 0
		}
		s.gen = 1
	}
}

// Add inserts v and reports whether v was not already a member.
func (s *Set) Add(v int) bool {
	wasNew := s.used[v] != s.gen
	s.used[v] = s.gen
	return wasNew
}

// Remove deletes v from the set. It is a no-op if v is not a member.
func (s *Set) Remove(v int) {
	s.used[v] = s.gen - 1
}

// Contains reports whether v is currently a member.
func (s *Set) Contains(v int) bool {
	return s.used[v] == s.gen
}
