package simcheck

import (
	"errors"
	"math"

	"github.com/katalvlaran/mc-eval/bitset"
	"github.com/katalvlaran/mc-eval/chain"
	"github.com/katalvlaran/mc-eval/compare"
	"github.com/katalvlaran/mc-eval/mcctx"
	"github.com/katalvlaran/mc-eval/rng"
)

// ErrChainNil is returned by New when the chain is nil.
var ErrChainNil = errors.New("simcheck: chain is nil")

const (
	defaultSamples  = 2000
	defaultMaxSteps = 5000
)

// zTable maps a handful of common confidence levels to their two-sided
// normal z-score, used by the Wilson-score interval. Unlisted confidences
// fall back to the 95% value; a production engine would use an inverse
// normal CDF instead of a lookup table.
var zTable = map[float64]float64{
	0.90: 1.645,
	0.95: 1.96,
	0.99: 2.576,
}

// Engine implements mcctx.StatEngines via path simulation over a
// chain.Chain.
type Engine struct {
	c          *chain.Chain
	rng        rng.Source
	confidence float64
	samples    int
	maxSteps   int
}

// New builds an Engine. confidence is the two-sided confidence level (e.g.
// 0.95); samples is the fixed number of independent paths drawn per state.
func New(c *chain.Chain, source rng.Source, confidence float64, samples int) (*Engine, error) {
	if c == nil {
		return nil, ErrChainNil
	}
	if samples <= 0 {
		samples = defaultSamples
	}

	return &Engine{c: c, rng: source, confidence: confidence, samples: samples, maxSteps: defaultMaxSteps}, nil
}

func (e *Engine) z() float64 {
	if v, ok := zTable[e.confidence]; ok {
		return v
	}

	return zTable[0.95]
}

// wilson computes the Wilson-score interval for k successes out of n
// trials at this Engine's configured confidence.
func (e *Engine) wilson(k, n int) (lo, hi float64) {
	if n == 0 {
		return 0, 1
	}
	z := e.z()
	p := float64(k) / float64(n)
	z2 := z * z
	denom := 1 + z2/float64(n)
	center := p + z2/(2*float64(n))
	margin := z * math.Sqrt(p*(1-p)/float64(n)+z2/(4*float64(n)*float64(n)))

	return (center - margin) / denom, (center + margin) / denom
}

// classify decides Yes/No/undecided for a state given its confidence
// interval [lo, hi] and the comparator spec.
func classify(lo, hi float64, spec compare.Spec) (yes, no bool) {
	switch spec.Op {
	case compare.Gt:
		return lo > spec.Bound, hi <= spec.Bound
	case compare.Ge:
		return lo >= spec.Bound, hi < spec.Bound
	case compare.Lt:
		return hi < spec.Bound, lo >= spec.Bound
	case compare.Le:
		return hi <= spec.Bound, lo > spec.Bound
	case compare.Interval:
		return lo >= spec.Bound && hi <= spec.Bound2, hi < spec.Bound || lo > spec.Bound2
	default:
		return false, false
	}
}

// sampleUntil draws one path from state i and reports whether it satisfies
// phi U psi: it reached a psi-state while every state visited before that
// (inclusive of the start) satisfied phi, within maxSteps transitions.
func (e *Engine) sampleUntil(i int, phi, psi *bitset.Set) bool {
	cur := i
	for step := 0; step < e.maxSteps; step++ {
		if psi != nil && psi.Test(cur) {
			return true
		}
		if phi == nil || !phi.Test(cur) {
			return false
		}
		next, ok := e.step(cur)
		if !ok {
			return false // absorbing, phi held but no psi reached
		}
		cur = next
	}

	return false
}

// step draws the next state from cur by sampling the outgoing transition
// distribution with e.rng.Uniform(); returns ok=false if cur has no
// outgoing transitions (absorbing).
func (e *Engine) step(cur int) (int, bool) {
	id := e.c.StateID(cur)
	succ := e.c.Successors(id)
	if len(succ) == 0 {
		return 0, false
	}
	var total float64
	for _, t := range succ {
		total += t.Weight
	}
	if total <= 0 {
		return 0, false
	}
	r := e.rng.Uniform() * total
	var acc float64
	for _, t := range succ {
		acc += t.Weight
		if r <= acc {
			idx, ok := e.c.Index(t.To)
			if !ok {
				return 0, false
			}

			return idx, true
		}
	}
	idx, _ := e.c.Index(succ[len(succ)-1].To)

	return idx, true
}

// statesToSample returns the state indices this call should evaluate,
// honoring singleInit.
func statesToSample(n, initState int, singleInit bool) []int {
	if singleInit {
		return []int{initState}
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

func (e *Engine) buildResult(phi, psi *bitset.Set, spec compare.Spec, initState int, singleInit bool, trial func(i int) bool) *mcctx.StatResult {
	n := e.c.NumStates()
	yes := bitset.Zero(n)
	no := bitset.Zero(n)
	ciLeft := make([]float64, n)
	ciRight := make([]float64, n)

	for _, i := range statesToSample(n, initState, singleInit) {
		k := 0
		for s := 0; s < e.samples; s++ {
			if trial(i) {
				k++
			}
		}
		lo, hi := e.wilson(k, e.samples)
		ciLeft[i], ciRight[i] = lo, hi
		isYes, isNo := classify(lo, hi, spec)
		if isYes {
			yes.SetBit(i)
		} else if isNo {
			no.SetBit(i)
		}
	}

	return &mcctx.StatResult{Yes: yes, No: no, CILeft: ciLeft, CIRight: ciRight, MaxObs: e.samples}
}

// UnboundedUntil implements mcctx.StatEngines.UnboundedUntil.
func (e *Engine) UnboundedUntil(phi, psi *bitset.Set, spec compare.Spec, initState int, singleInit bool) (*mcctx.StatResult, error) {
	return e.buildResult(phi, psi, spec, initState, singleInit, func(i int) bool {
		return e.sampleUntil(i, phi, psi)
	}), nil
}

// TimeIntervalUntil implements mcctx.StatEngines.TimeIntervalUntil: the
// same path simulation as UnboundedUntil, but paths are additionally
// capped at the step-bound derived from t2.
func (e *Engine) TimeIntervalUntil(phi, psi *bitset.Set, t1, t2 float64, spec compare.Spec, initState int, singleInit bool) (*mcctx.StatResult, error) {
	_ = t1
	saved := e.maxSteps
	if t2 > 0 && int(t2) < saved {
		e.maxSteps = int(t2) + 1
	}
	defer func() { e.maxSteps = saved }()

	return e.buildResult(phi, psi, spec, initState, singleInit, func(i int) bool {
		return e.sampleUntil(i, phi, psi)
	}), nil
}

// SteadyStateHybrid implements mcctx.StatEngines.SteadyStateHybrid: it
// computes, via numericUntil, each state's probability of reaching the
// accepting BSCC states bscc returns, and draws every trial as a Bernoulli
// sample with that probability; no path is simulated.
func (e *Engine) SteadyStateHybrid(phi *bitset.Set, numericUntil mcctx.UntilNumericFunc, bscc mcctx.BSCCFunc, spec compare.Spec, initState int, singleInit bool) (*mcctx.StatResult, error) {
	accepting, err := bscc()
	if err != nil {
		return nil, err
	}
	vals, err := numericUntil(bitset.One(e.c.NumStates()), accepting)
	if err != nil {
		return nil, err
	}

	return e.buildResult(phi, nil, spec, initState, singleInit, func(i int) bool {
		return e.rng.Uniform() < vals[i]
	}), nil
}

// SteadyStatePure implements mcctx.StatEngines.SteadyStatePure: it samples
// a bounded path from each state and classifies acceptance using the
// exist/always reachability callbacks and bscc directly (no numerical
// kernel call at all, hence "pure").
func (e *Engine) SteadyStatePure(phi *bitset.Set, exist, always mcctx.ReachabilityFunc, bscc mcctx.BSCCFunc, spec compare.Spec, initState int, singleInit bool) (*mcctx.StatResult, error) {
	accepting, err := bscc()
	if err != nil {
		return nil, err
	}

	return e.buildResult(phi, nil, spec, initState, singleInit, func(i int) bool {
		cur := i
		for step := 0; step < e.maxSteps; step++ {
			if accepting.Test(cur) && always(cur) {
				return true
			}
			if !exist(cur) {
				return false
			}
			next, ok := e.step(cur)
			if !ok {
				return accepting.Test(cur)
			}
			cur = next
		}

		return accepting.Test(cur)
	}), nil
}
