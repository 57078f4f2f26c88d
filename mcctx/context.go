package mcctx

import (
	"github.com/katalvlaran/mc-eval/bitset"
	"github.com/katalvlaran/mc-eval/chain"
	"github.com/katalvlaran/mc-eval/compare"
	"github.com/katalvlaran/mc-eval/rng"
)

// SteadyMode selects how steady-state/long-run simulation reaches its
// accepting-BSCC verdict.
type SteadyMode int

const (
	// Hybrid calls the statistical engine with a numerical unbounded-until
	// callback and a BSCC-accepting-states callback.
	Hybrid SteadyMode = iota
	// Pure calls the statistical engine with existential/always reachability
	// callbacks and a BSCC-accepting-states callback.
	Pure
)

// StateSpace is the "Sparse matrix / state space" external collaborator:
// row-sum accessor and state counts.
type StateSpace interface {
	NumStates() int
	NumStatesMDPI() int
	RowSums() []float64
}

// Labeling is the ".lab" external collaborator: named state
// sets, looked up by label.
type Labeling interface {
	NumStates() int
	Label(name string) (*bitset.Set, bool)
}

// Kernels is the numerical-kernel external collaborator. Every
// method may return a nil vector to signal kernel failure, which the
// dispatcher (formula package, C6) treats as fatal.
type Kernels interface {
	// Until computes the until-probability vector. form is Unbounded or
	// Interval; extraLump enables non-standard lumping (used for the
	// hybrid steady-state numerical callback).
	Until(phi, psi *bitset.Set, form OpForm, t1, t2 float64, extraLump bool) ([]float64, error)
	Next(phi *bitset.Set, form OpForm, t1, t2 float64) ([]float64, error)
	NextRewards(phi *bitset.Set, t1, t2, r1, r2 float64) ([]float64, error)
	// UntilRewards additionally returns a per-state error vector.
	UntilRewards(phi, psi *bitset.Set, t1, t2, r1, r2 float64, flag bool) (vals, errPerState []float64, err error)
	Steady(phi *bitset.Set) ([]float64, error)
	EF(epoch int, phi *bitset.Set) ([]float64, error)
	CF(epoch int, phi *bitset.Set) ([]float64, error)
	YF(epoch int, phi *bitset.Set) ([]float64, error)
}

// OpForm distinguishes the unbounded/time/time-reward node-kind variants
// shared by Next and Until.
type OpForm int

const (
	Unbounded OpForm = iota
	Interval
	IntervalReward
)

// ReachabilityFunc reports whether state i satisfies a reachability
// predicate (the get_exist_until / get_always_until callbacks).
type ReachabilityFunc func(state int) bool

// BSCCFunc returns the set of states belonging to an accepting bottom SCC.
type BSCCFunc func() (*bitset.Set, error)

// UntilNumericFunc is the "numerical unbounded-until callback" the hybrid
// steady-state dispatch builds from Kernels.Until with non-standard lumping.
type UntilNumericFunc func(phi, psi *bitset.Set) ([]float64, error)

// StatResult is what a statistical engine call returns: a two-set verdict
// plus confidence-interval bounds and the observation budget actually used.
type StatResult struct {
	Yes, No        *bitset.Set
	CILeft, CIRight []float64
	MaxObs         int
}

// StatEngines is the statistical-engine external collaborator:
// the four named engines, each parameterized by the comparator it must
// satisfy and (optionally) a single fixed initial state.
type StatEngines interface {
	UnboundedUntil(phi, psi *bitset.Set, cmp compare.Spec, initState int, singleInit bool) (*StatResult, error)
	TimeIntervalUntil(phi, psi *bitset.Set, t1, t2 float64, cmp compare.Spec, initState int, singleInit bool) (*StatResult, error)
	SteadyStateHybrid(phi *bitset.Set, numericUntil UntilNumericFunc, bscc BSCCFunc, cmp compare.Spec, initState int, singleInit bool) (*StatResult, error)
	SteadyStatePure(phi *bitset.Set, exist, always ReachabilityFunc, bscc BSCCFunc, cmp compare.Spec, initState int, singleInit bool) (*StatResult, error)
}

// Context bundles everything the evaluator needs besides the formula tree
// itself. It is built once per run and passed down through the walker,
// keeping run state out of package-level globals.
type Context struct {
	RunMode        chain.Kind
	ErrorBound     float64
	Confidence     float64
	SteadyMode     SteadyMode
	SimHere        bool // whether statistical evaluation is requested at all
	InitialState   int
	SingleInitOnly bool

	Space    StateSpace
	Labels   Labeling
	Kernels  Kernels
	Stats    StatEngines
	RNG      rng.Source

	// BSCC returns the accepting bottom-SCC state set for the current phi,
	// supplied by the sccomp collaborator; wired once per run.
	BSCC BSCCFunc

	// ExistUntil/AlwaysUntil build the "pure" steady-state reachability
	// callbacks (get_exist_until / get_always_until) for a given phi set.
	ExistUntil  func(phi *bitset.Set) ReachabilityFunc
	AlwaysUntil func(phi *bitset.Set) ReachabilityFunc

	// OnModeMismatch, if set, is invoked with the operator name and run
	// mode whenever the dispatcher degrades an operator to a zero vector,
	// so callers can log it, count it by operator, or both. Defaults to
	// a no-op.
	OnModeMismatch func(op, runMode string)
}

// Warn reports a recoverable mode-mismatch through OnModeMismatch, if set.
func (c *Context) Warn(op, runMode string) {
	if c.OnModeMismatch != nil {
		c.OnModeMismatch(op, runMode)
	}
}
