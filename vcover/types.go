package vcover

import "time"

// Assignment is the value domain of a vertex's entry in the solution vector.
type Assignment int8

const (
	// Undecided marks a vertex still part of the residual graph.
	Undecided Assignment = -1
	// Excluded marks a vertex placed outside the cover (in the independent set).
	Excluded Assignment = 0
	// Included marks a vertex placed inside the cover.
	Included Assignment = 1
	// Folded marks a vertex removed by a fold/alternative; its final value
	// is determined later by that modification's reverse() logic.
	Folded Assignment = 2
)

// BranchRule selects the branching-vertex selection strategy.
type BranchRule int

const (
	// BranchRandom picks a uniformly random undecided vertex.
	BranchRandom BranchRule = iota
	// BranchMinDegree picks an undecided vertex of minimum degree.
	BranchMinDegree
	// BranchMaxDegree picks an undecided vertex of maximum degree, breaking
	// ties by minimum neighborhood edge count. This is the default.
	BranchMaxDegree
)

// Status classifies the outcome of a Solve call, mirroring the four
// error kinds of the error-handling design.
type Status int

const (
	// StatusNormal indicates the search completed and Value is exact.
	StatusNormal Status = iota
	// StatusTimeout indicates the deadline expired; Value is an upper bound.
	StatusTimeout
	// StatusMemoryLimit indicates an allocation failure was recovered; Value
	// is the best upper bound committed before the failure.
	StatusMemoryLimit
	// StatusException indicates an internal invariant was violated or a
	// panic was recovered; the error returned alongside the Result carries
	// the wrapped diagnostic.
	StatusException
)

// String renders a human-readable status name, for diagnostics only.
func (s Status) String() string {
	switch s {
	case StatusNormal:
		return "Normal"
	case StatusTimeout:
		return "Timeout"
	case StatusMemoryLimit:
		return "MemoryLimit"
	case StatusException:
		return "Exception"
	default:
		return "Unknown"
	}
}

// ReductionKind indexes Stats.Reductions.
type ReductionKind int

const (
	ReductionDeg1 ReductionKind = iota
	ReductionDominance
	ReductionFold2
	ReductionLP
	ReductionTwin
	ReductionDesk
	ReductionUnconfined
	ReductionFunnel
	ReductionPacking
	numReductionKinds
)

func (k ReductionKind) String() string {
	switch k {
	case ReductionDeg1:
		return "deg1"
	case ReductionDominance:
		return "dominance"
	case ReductionFold2:
		return "fold2"
	case ReductionLP:
		return "lp"
	case ReductionTwin:
		return "twin"
	case ReductionDesk:
		return "desk"
	case ReductionUnconfined:
		return "unconfined"
	case ReductionFunnel:
		return "funnel"
	case ReductionPacking:
		return "packing"
	default:
		return "unknown"
	}
}

// LowerBoundKind records which lower bound was the tightest at a cut point.
type LowerBoundKind int

const (
	LBTrivial LowerBoundKind = iota
	LBClique
	LBLP
	LBCycle
)

func (k LowerBoundKind) String() string {
	switch k {
	case LBTrivial:
		return "trivial"
	case LBClique:
		return "clique"
	case LBLP:
		return "lp"
	case LBCycle:
		return "cycle"
	default:
		return "unknown"
	}
}

// ReductionStat holds the effectiveness counters for one reduction kind.
type ReductionStat struct {
	// Count is the number of undecided vertices removed or folded.
	Count int64
	// Calls is the number of times this reduction made progress.
	Calls int64
	// AllCalls is the number of times this reduction was attempted,
	// including no-op attempts.
	AllCalls int64
	// Time is the cumulative wall-clock time spent in this reduction.
	Time time.Duration
}

// Stats accumulates solver-wide counters, threaded through recursion and
// merged across component sub-solvers on completion. The solver does not
// write Reductions or RootLB; they stay zero.
type Stats struct {
	Reductions [numReductionKinds]ReductionStat

	NumBranches  int64
	NumLeftCuts  int64
	RootLB       int

	TrivialLBCount int64
	CliqueLBCount  int64
	LPLBCount      int64
	CycleLBCount   int64

	CliqueLBTime time.Duration
	CycleLBTime  time.Duration
}

// Merge folds o's counters into s, used when a component sub-solver
// finishes and its stats are combined into the parent's.
func (s *Stats) Merge(o *Stats) {
	if o == nil {
		return
	}
	for k := range s.Reductions {
		s.Reductions[k].Count += o.Reductions[k].Count
		s.Reductions[k].Calls += o.Reductions[k].Calls
		s.Reductions[k].AllCalls += o.Reductions[k].AllCalls
		s.Reductions[k].Time += o.Reductions[k].Time
	}
	s.NumBranches += o.NumBranches
	s.NumLeftCuts += o.NumLeftCuts
	s.TrivialLBCount += o.TrivialLBCount
	s.CliqueLBCount += o.CliqueLBCount
	s.LPLBCount += o.LPLBCount
	s.CycleLBCount += o.CycleLBCount
	s.CliqueLBTime += o.CliqueLBTime
	s.CycleLBTime += o.CycleLBTime
}

// Result is the outcome of a Solve call.
type Result struct {
	Status Status

	// Value is the minimum vertex cover size (exact iff Status == StatusNormal).
	Value int

	// Assignment holds one Assignment value per original vertex index;
	// nil if the solver did not reach a committed solution (e.g. an
	// immediate timeout before any leaf was found).
	Assignment []Assignment

	Stats   Stats
	Runtime time.Duration
}
