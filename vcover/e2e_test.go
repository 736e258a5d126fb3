package vcover

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arbkov/vcreduce/vcgraph"
)

func mustGraph(t *testing.T, n int, edges [][2]int) *vcgraph.Graph {
	t.Helper()
	g, err := vcgraph.NewGraph(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

func solveExact(t *testing.T, g *vcgraph.Graph) Result {
	t.Helper()
	res, err := Solve(context.Background(), g, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, StatusNormal, res.Status)
	return res
}

// assertValidCover checks that res.Assignment is a vertex cover of g whose
// size matches res.Value, and that the cover size equals want.
func assertValidCover(t *testing.T, g *vcgraph.Graph, res Result, want int) {
	t.Helper()
	require.Equal(t, want, res.Value)
	require.Len(t, res.Assignment, g.N)

	size := 0
	for _, a := range res.Assignment {
		require.Contains(t, []Assignment{Excluded, Included}, a)
		if a == Included {
			size++
		}
	}
	require.Equal(t, want, size)

	for u := 0; u < g.N; u++ {
		for _, v := range g.Adj[u] {
			require.True(t, res.Assignment[u] == Included || res.Assignment[v] == Included,
				"edge (%d,%d) uncovered", u, v)
		}
	}
}

func TestSolve_SingleEdge(t *testing.T) {
	g := mustGraph(t, 2, [][2]int{{0, 1}})
	res := solveExact(t, g)
	assertValidCover(t, g, res, 1)
}

func TestSolve_Triangle(t *testing.T) {
	g := mustGraph(t, 3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	res := solveExact(t, g)
	assertValidCover(t, g, res, 2)
}

func TestSolve_PathP4(t *testing.T) {
	g := mustGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	res := solveExact(t, g)
	assertValidCover(t, g, res, 2)
}

func TestSolve_K33(t *testing.T) {
	var edges [][2]int
	for u := 0; u < 3; u++ {
		for v := 3; v < 6; v++ {
			edges = append(edges, [2]int{u, v})
		}
	}
	g := mustGraph(t, 6, edges)
	res := solveExact(t, g)
	assertValidCover(t, g, res, 3)
}

func TestSolve_CycleC5(t *testing.T) {
	g := mustGraph(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}})
	res := solveExact(t, g)
	assertValidCover(t, g, res, 3)
}

func TestSolve_PetersenGraph(t *testing.T) {
	// Outer 5-cycle 0-4, inner 5-cycle (pentagram) 5-9, spokes i -> i+5.
	edges := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0},
		{5, 7}, {7, 9}, {9, 6}, {6, 8}, {8, 5},
		{0, 5}, {1, 6}, {2, 7}, {3, 8}, {4, 9},
	}
	g := mustGraph(t, 10, edges)
	res := solveExact(t, g)
	assertValidCover(t, g, res, 6)
}

func TestSolve_EmptyGraph(t *testing.T) {
	g := mustGraph(t, 4, nil)
	res := solveExact(t, g)
	assertValidCover(t, g, res, 0)
}

func TestSolve_NilGraph(t *testing.T) {
	_, err := Solve(context.Background(), nil, DefaultOptions())
	require.ErrorIs(t, err, ErrNilGraph)
}

func TestSolve_InvalidOptions(t *testing.T) {
	g := mustGraph(t, 2, [][2]int{{0, 1}})
	opts := DefaultOptions()
	opts.BranchRule = BranchRule(99)
	_, err := Solve(context.Background(), g, opts)
	require.ErrorIs(t, err, ErrInvalidBranchRule)
}

func TestSolve_DisconnectedComponents(t *testing.T) {
	// A triangle plus a disjoint edge: components must be solved and folded
	// back together correctly.
	edges := [][2]int{
		{0, 1}, {1, 2}, {0, 2}, // triangle, cover size 2
		{3, 4}, // edge, cover size 1
	}
	g := mustGraph(t, 5, edges)
	res := solveExact(t, g)
	assertValidCover(t, g, res, 3)
}
