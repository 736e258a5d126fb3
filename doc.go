// Package vcreduce computes exact minimum vertex covers via the
// Akiba-Iwata branch-and-reduce algorithm.
//
// The solver lives in the vcover subpackage, operating over graphs built
// with vcgraph and a fast fixed-universe integer set from intset:
//
//	g, err := vcgraph.NewGraph(n)
//	err = g.AddEdge(0, 1)
//	res, err := vcover.Solve(context.Background(), g, vcover.DefaultOptions())
//
// Parsing input formats, CLI argument handling, and reporting are left to
// callers; this module is a library, not a program.
package vcreduce
