package vcover

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestSolver(t *testing.T, n int, edges [][2]int) *Solver {
	t.Helper()
	g := mustGraph(t, n, edges)
	return newRootSolver(g, DefaultOptions())
}

func TestReduceDeg1_IsolatedVertexExcluded(t *testing.T) {
	s := newTestSolver(t, 3, [][2]int{{0, 1}})
	require.True(t, s.reduceDeg1())
	require.Equal(t, Excluded, s.assign[2])
}

func TestReduceDeg1_PendantForcesNeighborIncluded(t *testing.T) {
	s := newTestSolver(t, 3, [][2]int{{0, 1}, {1, 2}})
	require.True(t, s.reduceDeg1())
	// vertices 0 and 2 both have degree 1; excluding either forces their
	// shared neighbor 1 into the cover.
	included := 0
	for _, a := range s.assign {
		if a == Included {
			included++
		}
	}
	require.GreaterOrEqual(t, included, 1)
}

func TestReduceDeg1_NoProgressOnTriangle(t *testing.T) {
	s := newTestSolver(t, 3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	require.False(t, s.reduceDeg1())
	for _, a := range s.assign {
		require.Equal(t, Undecided, a)
	}
}

func TestRestoreTo_UndoesSetCompletely(t *testing.T) {
	s := newTestSolver(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	cp := s.checkpoint()

	s.set(1, Excluded) // forces 0 and 2 included
	require.Less(t, s.remainingVertices, 4)

	s.restoreTo(cp)
	require.Equal(t, 4, s.remainingVertices)
	require.Equal(t, 0, s.currentValue)
	for _, a := range s.assign {
		require.Equal(t, Undecided, a)
	}
}

func TestWithCheckpoint_RestoresOnEarlyReturn(t *testing.T) {
	s := newTestSolver(t, 2, [][2]int{{0, 1}})
	s.withCheckpoint(func() {
		s.set(0, Included)
		return
	})
	require.Equal(t, 2, s.remainingVertices)
	require.Equal(t, 0, s.currentValue)
}

func TestPacking_InfeasibleWhenOverBound(t *testing.T) {
	s := newTestSolver(t, 3, nil)
	s.addPackingConstraint(1, []int{0, 1, 2})
	s.set(0, Included)
	s.set(1, Included)
	s.set(2, Included) // 3 included, bound allows only len(members)-1 = 2
	require.Equal(t, packingInfeasible, s.reducePacking())
}

func TestCheckInvariants_CatchesDoublyExcludedEdge(t *testing.T) {
	s := newTestSolver(t, 2, [][2]int{{0, 1}})
	s.assign[0] = Excluded
	s.assign[1] = Excluded
	s.remainingVertices = 0
	require.Error(t, s.checkInvariants())
}

func TestFindComponents_SplitsDisjointPieces(t *testing.T) {
	s := newTestSolver(t, 5, [][2]int{{0, 1}, {1, 2}, {3, 4}})
	comps := s.findComponents()
	require.Len(t, comps, 2)
}

func TestFindComponents_SingleComponent(t *testing.T) {
	s := newTestSolver(t, 3, [][2]int{{0, 1}, {1, 2}})
	comps := s.findComponents()
	require.Len(t, comps, 1)
}
