// Package vcover computes an exact minimum vertex cover of an undirected
// simple graph via the Akiba-Iwata branch-and-reduce algorithm: a suite of
// polynomial-time reductions, four lower bounds, max-degree branching with
// mirror detection, connected-component decomposition, and a recursive
// driver with deadline-based cancellation.
//
// Errors:
//
//	ErrNilGraph             - Solve was given a nil *vcgraph.Graph.
//	ErrCycleRequiresLP      - Options enables the cycle lower bound without LP reduction.
//	ErrInvalidBranchRule    - Options.BranchRule is outside the defined enum.
//	ErrInvariantViolation   - an internal consistency check failed (debug/StrictInvariants only).
package vcover

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

// Sentinel errors returned by Options.Validate and Solve.
var (
	// ErrNilGraph indicates Solve was called with a nil graph.
	ErrNilGraph = errors.New("vcover: graph is nil")

	// ErrCycleRequiresLP indicates the cycle lower bound was enabled without
	// the LP reduction, which the cycle bound depends on (it reuses out_flow).
	ErrCycleRequiresLP = errors.New("vcover: cycle lower bound requires LP reduction to be enabled")

	// ErrInvalidBranchRule indicates Options.BranchRule is not one of the
	// defined BranchRule constants.
	ErrInvalidBranchRule = errors.New("vcover: invalid branch rule")

	// ErrInvariantViolation indicates an internal consistency check failed.
	ErrInvariantViolation = errors.New("vcover: invariant violation")

	// errInfeasible names the infeasible-branch outcome. reduce() and
	// reducePacking report that outcome through their return values (true
	// and packingInfeasible) rather than by returning this error, so it
	// never escapes the package.
	errInfeasible = errors.New("vcover: infeasible branch")
)

// wrapException attaches a stack trace to err via github.com/pkg/errors,
// for the Exception status kind (invariant violations, recovered panics).
func wrapException(err error, msg string) error {
	return pkgerrors.Wrap(err, msg)
}
