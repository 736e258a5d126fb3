package vcover

import (
	"context"
	"fmt"
	"math/rand"
	"runtime/debug"
	"sort"
	"strings"
	"time"

	"github.com/emirpasic/gods/stacks/arraystack"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/arbkov/vcreduce/intset"
	"github.com/arbkov/vcreduce/vcgraph"
)

// Solver owns one branch-and-reduce search over a residual graph. A fresh
// Solver is constructed per top-level Solve call; component decomposition
// spawns one child Solver per connected component.
type Solver struct {
	opts   Options
	log    *logrus.Logger
	stats  Stats
	rnd    *rand.Rand

	n   int // local vertex count (size of adj)
	N   int // assignment-vector size; always n (no constant-0/1 slots are allocated)
	adj [][]int

	constZero int // index of the constant-0 sentinel slot, or -1 if none
	constOne  int // index of the constant-1 sentinel slot, or -1 if none

	assign            []Assignment
	currentValue      int
	remainingVertices int

	restore       *arraystack.Stack // entries: int (vertex id) or sentinel popMarker
	modifications []*modification

	inFlow  []int
	outFlow []int

	packing [][]int

	lb     int
	lbType LowerBoundKind

	depth int

	initialReductionDone bool

	optimalValue    int
	optimalSolution []Assignment

	deadline    time.Time
	hasDeadline bool
	timedOut    bool

	// err aggregates exceptions recovered from component sub-solvers; a
	// non-nil value turns a structurally-normal result into StatusException
	// once control returns to run().
	err error

	// used is shared scratch space for the construction of fold/alternative
	// contractions and for the twin/unconfined reductions' neighbor-set
	// comparisons. It is always Clear()-ed before use and never expected to
	// carry state across calls. Sized n (vertex universe).
	used *intset.Set

	// matchUsed is BFS-level scratch space for updateLP, sized 2n to cover
	// both left copies [0,n) and right copies [n,2n) of the matching graph.
	matchUsed *intset.Set
}

// popMarker is pushed onto the restore stack in place of a vertex id to
// mean "pop one modification instead", per the data model.
const popMarker = -1

// Solve computes an exact minimum vertex cover of g under opts.
//
// ctx, if it carries a deadline, is translated once at entry into the
// solver's internal deadline field (checked at every recursive entry);
// ctx is not otherwise polled during the search, matching the
// single-threaded, cooperative concurrency model.
func Solve(ctx context.Context, g *vcgraph.Graph, opts Options) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	start := time.Now()
	s := newRootSolver(g, opts)
	if opts.TimeLimit > 0 {
		s.deadline, s.hasDeadline = start.Add(opts.TimeLimit), true
	}
	if dl, ok := ctx.Deadline(); ok {
		if !s.hasDeadline || dl.Before(s.deadline) {
			s.deadline, s.hasDeadline = dl, true
		}
	}

	result, err := s.solveRecovered()
	result.Runtime = time.Since(start)
	return result, err
}

// solveRecovered wraps the search in a panic classifier, per the error
// handling design: an allocation-failure-shaped panic becomes
// StatusMemoryLimit, any other panic becomes StatusException.
func (s *Solver) solveRecovered() (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprint(r)
			if strings.Contains(msg, "out of memory") || strings.Contains(msg, "makeslice") || strings.Contains(msg, "cannot allocate memory") {
				res = s.partialResult(StatusMemoryLimit)
				return
			}
			res = s.partialResult(StatusException)
			err = wrapException(fmt.Errorf("%v", r), "vcover: recovered panic during solve")
			s.log.WithError(err).Error("solver panicked")
		}
	}()
	res, err = s.run()
	return res, err
}

func (s *Solver) partialResult(status Status) Result {
	res := Result{
		Status: status,
		Value:  s.optimalValue,
		Stats:  s.stats,
	}
	if s.optimalValue <= s.n {
		res.Assignment = append([]Assignment(nil), s.optimalSolution...)
	}
	return res
}

func (s *Solver) run() (Result, error) {
	if s.opts.OnlyRoot {
		infeasible := s.reduce()
		status := StatusNormal
		if s.timedOut {
			status = StatusTimeout
		}
		value := s.currentValue + s.lowerBoundRemainder()
		if infeasible {
			value = s.currentValue
		}
		return Result{Status: status, Value: value, Stats: s.stats}, nil
	}

	s.optimalValue = s.n + 1 // sentinel: worse than any real cover
	s.rec()

	if s.err != nil {
		return s.partialResult(StatusException), wrapException(s.err, "vcover: component sub-solver failed")
	}

	status := StatusNormal
	if s.timedOut {
		status = StatusTimeout
	}
	if s.opts.StrictInvariants {
		if err := s.checkInvariants(); err != nil {
			return s.partialResult(StatusException), wrapException(fmt.Errorf("%w: %v", ErrInvariantViolation, err), "vcover: invariant check failed")
		}
	}
	return s.partialResult(status), nil
}

// lowerBoundRemainder is used only by the OnlyRoot short-circuit path.
func (s *Solver) lowerBoundRemainder() int {
	s.computeLowerBound()
	return s.lb - s.currentValue
}

func newRootSolver(g *vcgraph.Graph, opts Options) *Solver {
	// Branching recursion depth can reach n; raise the default per-process
	// stack ceiling so a deep instance does not overflow a goroutine stack.
	debug.SetMaxStack(1 << 33)

	n := g.N
	adj := make([][]int, n)
	for v := range g.Adj {
		adj[v] = append([]int(nil), g.Adj[v]...)
	}

	s := &Solver{
		opts:      opts,
		log:       newLogger(opts),
		n:         n,
		N:         n,
		adj:       adj,
		constZero: -1,
		constOne:  -1,
		assign:    make([]Assignment, n),
		restore:   arraystack.New(),
		inFlow:    make([]int, n),
		outFlow:   make([]int, n),
	}
	for v := 0; v < n; v++ {
		s.assign[v] = Undecided
		s.inFlow[v] = -1
		s.outFlow[v] = -1
	}
	s.remainingVertices = n
	s.optimalSolution = make([]Assignment, n)
	s.rnd = rand.New(rand.NewSource(opts.Seed))
	s.used = intset.New(n)
	s.matchUsed = intset.New(2 * n)
	return s
}

func newLogger(opts Options) *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}

// deg returns the number of currently-undecided neighbors of v.
func (s *Solver) deg(v int) int {
	d := 0
	for _, u := range s.adj[v] {
		if s.assign[u] == Undecided {
			d++
		}
	}
	return d
}

// undecidedNeighbors returns the undecided neighbors of v.
func (s *Solver) undecidedNeighbors(v int) []int {
	var out []int
	for _, u := range s.adj[v] {
		if s.assign[u] == Undecided {
			out = append(out, u)
		}
	}
	return out
}

// set assigns a (0 or 1) to v and, when a==0, force-sets every still-undecided
// neighbor of v to 1 (an excluded vertex forces all its neighbors into the
// cover to keep every incident edge covered).
func (s *Solver) set(v int, a Assignment) {
	s.currentValue += int(a)
	s.assign[v] = a
	s.remainingVertices--
	s.restore.Push(v)

	if a == Excluded {
		for _, u := range s.adj[v] {
			if s.assign[u] == Undecided {
				s.assign[u] = Included
				s.currentValue++
				s.remainingVertices--
				s.restore.Push(u)
			}
		}
	}
}

// commitVertex assigns v directly, without the Excluded-cascade set()
// performs, and records it on the restore stack like set() does. Used by
// decompose() to fold an already-fully-solved component's solution into the
// parent's assignment one vertex at a time.
func (s *Solver) commitVertex(v int, a Assignment) {
	s.currentValue += int(a)
	s.assign[v] = a
	s.remainingVertices--
	s.restore.Push(v)
}

// checkpoint returns the current remainingVertices, to be passed later to
// restoreTo for a scoped undo.
func (s *Solver) checkpoint() int {
	return s.remainingVertices
}

// restoreTo pops restore-stack entries (vertex assignments and whole
// modifications) until remainingVertices returns to target.
func (s *Solver) restoreTo(target int) {
	for s.remainingVertices < target {
		top, _ := s.restore.Peek()
		s.restore.Pop()
		v := top.(int)
		if v != popMarker {
			s.currentValue -= int(s.assign[v])
			s.assign[v] = Undecided
			s.remainingVertices++
		} else {
			s.popModification()
		}
	}
}

// withCheckpoint runs fn, guaranteeing a restore back to the pre-call
// remainingVertices even if fn panics or returns early, per the Design
// Notes' scoped-guard recommendation.
func (s *Solver) withCheckpoint(fn func()) {
	cp := s.checkpoint()
	defer s.restoreTo(cp)
	fn()
}

// remaining reports the number of currently-undecided vertices.
func (s *Solver) remaining() int {
	return s.remainingVertices
}

// isLeaf reports whether the residual graph is empty.
func (s *Solver) isLeaf() bool {
	return s.remainingVertices == 0
}

// deadlineExceeded checks the wall clock with a direct time.Now() on every
// call (no sparse counter as in tsp/bb.go's deadlineCheck): vertex-cover
// recursion depth is small enough relative to branch fan-out that this is
// cheap.
func (s *Solver) deadlineExceeded() bool {
	if !s.hasDeadline {
		return false
	}
	if s.timedOut {
		return true
	}
	if time.Now().After(s.deadline) {
		s.timedOut = true
		return true
	}
	return false
}

// commitSolution records the current assignment as the new best, applying
// Reverse() across the modification stack to recover values for folded
// vertices, then writes optimalSolution in original (root) indexing.
func (s *Solver) commitSolution() {
	s.optimalValue = s.currentValue
	sol := append([]Assignment(nil), s.assign...)
	s.reverseInto(sol)
	copy(s.optimalSolution, sol[:s.n])
}

// reverseInto applies every modification's reverse() to sol, in LIFO order.
func (s *Solver) reverseInto(sol []Assignment) {
	for i := len(s.modifications) - 1; i >= 0; i-- {
		s.modifications[i].reverse(sol)
	}
}

func (s *Solver) checkInvariants() error {
	for v := 0; v < s.n; v++ {
		if s.assign[v] != Excluded {
			continue
		}
		for _, u := range s.adj[v] {
			if s.assign[u] == Excluded {
				return fmt.Errorf("edge (%d,%d) has both endpoints excluded", v, u)
			}
		}
	}
	wantRemaining := 0
	for v := 0; v < s.n; v++ {
		if s.assign[v] == Undecided {
			wantRemaining++
		}
	}
	if wantRemaining != s.remainingVertices {
		return fmt.Errorf("remainingVertices=%d but %d vertices are undecided", s.remainingVertices, wantRemaining)
	}
	for _, constraint := range s.packing {
		bound, members := constraint[0], constraint[1:]
		cnt := 0
		for _, m := range members {
			if s.valueOf(m) == Included {
				cnt++
			}
		}
		if cnt > bound {
			return pkgerrors.Errorf("packing constraint %v violated: %d fixed to 1 > bound %d", constraint, cnt, bound)
		}
	}
	return nil
}

// valueOf returns the assignment of v, resolving constant sentinel slots.
func (s *Solver) valueOf(v int) Assignment {
	if v == s.constZero {
		return Excluded
	}
	if v == s.constOne {
		return Included
	}
	return s.assign[v]
}

// sortByDegreeAscending sorts vs by (degree, id) ascending, mirroring
// VCSolver.java's packed deg<<32|id sort key; used by the clique lower bound.
func (s *Solver) sortByDegreeAscending(vs []int) {
	sort.Slice(vs, func(i, j int) bool {
		di, dj := s.deg(vs[i]), s.deg(vs[j])
		if di != dj {
			return di < dj
		}
		return vs[i] < vs[j]
	})
}

