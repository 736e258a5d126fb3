package vcover

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arbkov/vcreduce/vcgraph"
)

// bruteForceMinCover returns the minimum vertex cover size of g by trying
// every subset, for small n only. Used as an oracle against the solver.
func bruteForceMinCover(g *vcgraph.Graph) int {
	n := g.N
	best := n
	for mask := 0; mask < (1 << n); mask++ {
		covers := true
	edgeCheck:
		for u := 0; u < n && covers; u++ {
			for _, v := range g.Adj[u] {
				if v <= u {
					continue
				}
				uIn := mask&(1<<u) != 0
				vIn := mask&(1<<v) != 0
				if !uIn && !vIn {
					covers = false
					break edgeCheck
				}
			}
		}
		if !covers {
			continue
		}
		size := 0
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				size++
			}
		}
		if size < best {
			best = size
		}
	}
	return best
}

func randomGraph(rnd *rand.Rand, n int, edgeProb float64) *vcgraph.Graph {
	g, _ := vcgraph.NewGraph(n)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rnd.Float64() < edgeProb {
				_ = g.AddEdge(u, v)
			}
		}
	}
	return g
}

func TestSolve_MatchesBruteForceOnRandomSmallGraphs(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for trial := 0; trial < 40; trial++ {
		n := 3 + trial%6 // 3..8 vertices
		g := randomGraph(rnd, n, 0.35+0.1*float64(trial%4))

		want := bruteForceMinCover(g)
		res, err := Solve(context.Background(), g, DefaultOptions())
		require.NoError(t, err)
		require.Equal(t, StatusNormal, res.Status)
		require.Equalf(t, want, res.Value, "graph n=%d adj=%v", n, g.Adj)
		assertValidCover(t, g, res, want)
	}
}

func TestSolve_BranchRulesAgree(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	rules := []BranchRule{BranchRandom, BranchMinDegree, BranchMaxDegree}

	for trial := 0; trial < 10; trial++ {
		n := 4 + trial%5
		g := randomGraph(rnd, n, 0.4)
		want := bruteForceMinCover(g)

		for _, rule := range rules {
			opts := DefaultOptions()
			opts.BranchRule = rule
			res, err := Solve(context.Background(), g, opts)
			require.NoError(t, err)
			require.Equal(t, want, res.Value)
		}
	}
}

func TestSolve_ReductionTogglesAgree(t *testing.T) {
	rnd := rand.New(rand.NewSource(99))
	for trial := 0; trial < 10; trial++ {
		n := 4 + trial%5
		g := randomGraph(rnd, n, 0.4)
		want := bruteForceMinCover(g)

		opts := DefaultOptions()
		opts.EnableUnconfined = false
		opts.EnableFunnel = false
		opts.EnableDesk = false
		res, err := Solve(context.Background(), g, opts)
		require.NoError(t, err)
		require.Equal(t, want, res.Value)
	}
}
