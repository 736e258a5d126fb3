package vcover

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCliqueLowerBound_Triangle(t *testing.T) {
	s := newTestSolver(t, 3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	require.Equal(t, 2, s.cliqueLowerBound())
}

func TestCliqueLowerBound_EmptyGraph(t *testing.T) {
	s := newTestSolver(t, 3, nil)
	require.Equal(t, 0, s.cliqueLowerBound())
}

func TestLPLowerBound_SingleEdge(t *testing.T) {
	s := newTestSolver(t, 2, [][2]int{{0, 1}})
	require.Equal(t, 1, s.lpLowerBound())
}

func TestComputeLowerBound_NeverDecreases(t *testing.T) {
	s := newTestSolver(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	opts := DefaultOptions()
	s.opts = opts
	s.computeLowerBound()
	first := s.lb
	s.lb = first + 5
	s.computeLowerBound()
	require.GreaterOrEqual(t, s.lb, first+5)
}
