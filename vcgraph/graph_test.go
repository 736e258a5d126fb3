package vcgraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGraph_RejectsNegative(t *testing.T) {
	_, err := NewGraph(-1)
	require.ErrorIs(t, err, ErrNegativeVertexCount)
}

func TestAddEdge_DedupAndSelfLoop(t *testing.T) {
	g, err := NewGraph(3)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 0)) // duplicate, different order
	require.Len(t, g.Adj[0], 1)
	require.Len(t, g.Adj[1], 1)

	require.ErrorIs(t, g.AddEdge(2, 2), ErrSelfLoop)
	require.ErrorIs(t, g.AddEdge(5, 0), ErrVertexOutOfRange)
}

func TestComponents_Triangle(t *testing.T) {
	g, _ := NewGraph(3)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(0, 2))

	comps := g.Components()
	require.Len(t, comps, 1)
	require.Equal(t, []int{0, 1, 2}, comps[0])
}

func TestComponents_Disjoint(t *testing.T) {
	g, _ := NewGraph(4)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(2, 3))

	comps := g.Components()
	require.Len(t, comps, 2)
	require.Equal(t, []int{0, 1}, comps[0])
	require.Equal(t, []int{2, 3}, comps[1])
}

func TestClone_Independent(t *testing.T) {
	g, _ := NewGraph(2)
	require.NoError(t, g.AddEdge(0, 1))
	clone := g.Clone()
	clone.Adj[0] = append(clone.Adj[0], 1)
	require.NotEqual(t, len(g.Adj[0]), len(clone.Adj[0]))
}
