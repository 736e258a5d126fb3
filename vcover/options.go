package vcover

import "time"

// Options configures the branch-and-reduce search.
//
// Enables      – toggle individual reductions. All default to true.
// LowerBounds  – toggle individual lower bounds. All default to true.
// BranchRule   – vertex-selection strategy for branching. Default BranchMaxDegree.
// Seed         – PRNG seed for BranchRandom, for reproducible runs.
// TimeLimit    – wall-clock budget; zero means no limit.
// OnlyRoot     – run only the reduction suite at the root, skip branching
//
//	entirely and report the reduced lower bound as Value.
//
// ReductionSizeThreshold
//
//	residual-size cutoff for running reduce() inside rec().
//
// OCLPThreshold, DVDDThreshold, MinDensity, MaxDensity, Shrink, ComponentMinN
//
//	numeric thresholds named in the distilled specification's §6; the
//	solver does not read them, so they have no effect on a solve.
type Options struct {
	EnableDeg1       bool
	EnableDominance  bool
	EnableFold2      bool
	EnableLP         bool
	EnableUnconfined bool
	EnableTwin       bool
	EnableFunnel     bool
	EnableDesk       bool
	EnablePacking    bool

	CliqueLowerBound bool
	LPLowerBound     bool
	CycleLowerBound  bool

	BranchRule BranchRule
	Seed       int64

	TimeLimit time.Duration
	OnlyRoot  bool

	// OCLPThreshold is the odd-cycle-ratio threshold for LP gating; not read
	// by the solver (reduce() applies no such gate).
	OCLPThreshold float64
	// DVDDThreshold is the degree-variance threshold; not read by the solver.
	DVDDThreshold float64
	// MinDensity/MaxDensity bound a density band; not read by the solver.
	MinDensity float64
	MaxDensity float64
	// ReductionSizeThreshold scales n to a residual-size cutoff below which
	// reduce() is still attempted inside rec().
	ReductionSizeThreshold float64
	// Shrink is the residual-shrinkage ratio (distilled spec's SHRINK). It is
	// not read by the solver: decompose() spawns sub-solvers only when the
	// residual graph has more than one connected component.
	Shrink float64
	// ComponentMinN is the instance-size floor paired with Shrink; likewise
	// not read by the solver.
	ComponentMinN int

	// StrictInvariants enables expensive internal consistency checks,
	// intended for tests and debugging, not production solves.
	StrictInvariants bool
}

// DefaultOptions returns an Options value with every reduction and lower
// bound enabled, max-degree branching, and no time limit.
func DefaultOptions() Options {
	return Options{
		EnableDeg1:       true,
		EnableDominance:  true,
		EnableFold2:      true,
		EnableLP:         true,
		EnableUnconfined: true,
		EnableTwin:       true,
		EnableFunnel:     true,
		EnableDesk:       true,
		EnablePacking:    true,

		CliqueLowerBound: true,
		LPLowerBound:     true,
		CycleLowerBound:  true,

		BranchRule: BranchMaxDegree,
		Seed:       1,

		TimeLimit: 0,
		OnlyRoot:  false,

		OCLPThreshold:           1.0,
		DVDDThreshold:           0.0,
		MinDensity:              0.0,
		MaxDensity:              1.0,
		ReductionSizeThreshold:  1.0,
		Shrink:                  0.5,
		ComponentMinN:           100,
		StrictInvariants:        false,
	}
}

// Validate checks cross-field constraints not expressible as independent
// zero-value defaults.
func (o Options) Validate() error {
	if o.BranchRule != BranchRandom && o.BranchRule != BranchMinDegree && o.BranchRule != BranchMaxDegree {
		return ErrInvalidBranchRule
	}
	if o.CycleLowerBound && !o.EnableLP {
		return ErrCycleRequiresLP
	}
	return nil
}
