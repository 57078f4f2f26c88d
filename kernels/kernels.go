package kernels

import (
	"errors"
	"math"

	"github.com/katalvlaran/mc-eval/bitset"
	"github.com/katalvlaran/mc-eval/chain"
	"github.com/katalvlaran/mc-eval/mcctx"
	"github.com/katalvlaran/mc-eval/ratematrix"
)

// ErrChainNil is returned by New when the chain is nil.
var ErrChainNil = errors.New("kernels: chain is nil")

const (
	defaultTolerance = 1e-9
	defaultMaxIters  = 10000
)

// Engine implements mcctx.Kernels over a single frozen chain.Chain. It
// holds the chain's uniformized embedded DTMC (for CTMC/CMRM) or its
// native transition matrix (for DTMC/DMRM), built once at construction.
type Engine struct {
	c         *chain.Chain
	embedded  *ratematrix.Matrix
	lambda    float64
	tolerance float64
	maxIters  int
}

// New builds an Engine for c. For CTMC/CMRM chains the embedded DTMC is
// derived via uniformization at c.UniformizationRate(); for DTMC/DMRM the
// native matrix is used directly.
func New(c *chain.Chain) (*Engine, error) {
	if c == nil {
		return nil, ErrChainNil
	}
	m, err := ratematrix.Build(c)
	if err != nil {
		return nil, err
	}

	e := &Engine{c: c, tolerance: defaultTolerance, maxIters: defaultMaxIters}
	switch c.Kind() {
	case chain.CTMC, chain.CMRM:
		lambda := c.UniformizationRate()
		if lambda == 0 {
			lambda = 1
		}
		u, err := m.Uniformized(lambda)
		if err != nil {
			return nil, err
		}
		e.embedded, e.lambda = u, lambda
	default:
		e.embedded, e.lambda = m, 0
	}

	return e, nil
}

// Until implements mcctx.Kernels.Until via value iteration on the embedded
// DTMC: x(i) = 1 for psi-states, 0 for states outside phi∪psi, and the
// Jacobi fixed point sum_j P(i,j)x(j) for the remaining phi-only states.
// form == mcctx.Unbounded iterates to convergence; mcctx.Interval runs a
// number of steps derived from t2 and the uniformization rate (CTMC/CMRM)
// or from t2 directly (DTMC/DMRM step count).
func (e *Engine) Until(phi, psi *bitset.Set, form mcctx.OpForm, t1, t2 float64, extraLump bool) ([]float64, error) {
	_ = extraLump
	n := e.embedded.N
	x := make([]float64, n)
	fixed := make([]bool, n)
	for i := 0; i < n; i++ {
		switch {
		case psi != nil && psi.Test(i):
			x[i] = 1
			fixed[i] = true
		case phi == nil || !phi.Test(i):
			x[i] = 0
			fixed[i] = true
		}
	}

	steps := e.maxIters
	if form == mcctx.Interval {
		steps = e.boundedSteps(t2)
	}

	for k := 0; k < steps; k++ {
		next, err := e.embedded.MatVec(x)
		if err != nil {
			return nil, err
		}
		maxDelta := 0.0
		for i := 0; i < n; i++ {
			if fixed[i] {
				continue
			}
			delta := math.Abs(next[i] - x[i])
			if delta > maxDelta {
				maxDelta = delta
			}
			x[i] = next[i]
		}
		if form == mcctx.Unbounded && maxDelta < e.tolerance {
			break
		}
	}

	return x, nil
}

// boundedSteps converts a time bound t2 into an iteration count: for a
// uniformized CTMC/CMRM chain, lambda*t2 Poisson-arrival steps; for
// DTMC/DMRM, t2 itself truncated to an integer step count.
func (e *Engine) boundedSteps(t2 float64) int {
	if e.lambda > 0 {
		steps := int(math.Ceil(e.lambda * t2))
		if steps < 1 {
			steps = 1
		}

		return steps
	}
	steps := int(t2)
	if steps < 1 {
		steps = 1
	}

	return steps
}

// Next implements mcctx.Kernels.Next: the one-step probability of landing
// in a phi-state, (P * 1_phi)(i).
func (e *Engine) Next(phi *bitset.Set, form mcctx.OpForm, t1, t2 float64) ([]float64, error) {
	_ = form
	_ = t1
	_ = t2
	n := e.embedded.N
	ind := make([]float64, n)
	for i := 0; i < n; i++ {
		if phi != nil && phi.Test(i) {
			ind[i] = 1
		}
	}

	return e.embedded.MatVec(ind)
}

// NextRewards implements mcctx.Kernels.NextRewards: the one-step expected
// reward of landing in a phi-state, weighted by the destination's state
// reward. Like Next, this is single-step regardless of t1/t2 — a one-step
// operator has no time interval to bound — and transition/impulse rewards
// r1/r2 are not separately modeled; see DESIGN.md.
func (e *Engine) NextRewards(phi *bitset.Set, t1, t2, r1, r2 float64) ([]float64, error) {
	_ = t1
	_ = t2
	_ = r1
	_ = r2
	n := e.embedded.N
	weighted := make([]float64, n)
	for i := 0; i < n; i++ {
		if phi != nil && phi.Test(i) {
			weighted[i] = e.c.StateReward(e.c.StateID(i))
		}
	}

	return e.embedded.MatVec(weighted)
}

// UntilRewards implements mcctx.Kernels.UntilRewards: the time- and
// reward-bounded Until reward accumulation, via the same value-iteration
// schedule as Until but accumulating state reward at every step instead of
// propagating a 0/1 indicator. Returns a per-state error vector holding the
// same uniformization truncation estimate (poissonTailBound) for every state.
func (e *Engine) UntilRewards(phi, psi *bitset.Set, t1, t2, r1, r2 float64, flag bool) ([]float64, []float64, error) {
	_ = t1
	_ = r1
	_ = r2
	_ = flag
	n := e.embedded.N
	v := make([]float64, n)
	steps := e.boundedSteps(t2)

	for k := 0; k < steps; k++ {
		next, err := e.embedded.MatVec(v)
		if err != nil {
			return nil, nil, err
		}
		for i := 0; i < n; i++ {
			switch {
			case psi != nil && psi.Test(i):
				next[i] = 0
			case phi == nil || !phi.Test(i):
				next[i] = 0
			default:
				next[i] += e.c.StateReward(e.c.StateID(i))
			}
		}
		v = next
	}

	errPerState := make([]float64, n)
	truncErr := poissonTailBound(e.lambda, t2, steps)
	for i := range errPerState {
		errPerState[i] = truncErr
	}

	return v, errPerState, nil
}

// poissonTailBound approximates the Poisson truncation error of cutting a
// uniformization series at `steps` terms for rate lambda over duration t2.
// It returns the Poisson(lambda*t2) probability of exactly `steps` arrivals
// (1.0 when steps is below the mean), not the full tail sum; with lambda
// unset (DTMC/DMRM, no uniformization series) it returns 0.
func poissonTailBound(lambda, t2 float64, steps int) float64 {
	if lambda <= 0 || steps <= 0 {
		return 0
	}
	mean := lambda * t2
	if float64(steps) < mean {
		return 1.0
	}

	return math.Exp(-mean) * math.Pow(mean, float64(steps)) / factorial(steps)
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}

	return f
}

// Steady implements mcctx.Kernels.Steady: for each initial state i, the
// long-run probability of occupying a phi-state, computed by power
// iteration of the embedded DTMC's row distribution starting from a point
// mass at i.
func (e *Engine) Steady(phi *bitset.Set) ([]float64, error) {
	n := e.embedded.N
	out := make([]float64, n)

	for i := 0; i < n; i++ {
		dist := make([]float64, n)
		dist[i] = 1
		for k := 0; k < e.maxIters; k++ {
			next := e.rowVecMul(dist)
			maxDelta := 0.0
			for j := 0; j < n; j++ {
				d := math.Abs(next[j] - dist[j])
				if d > maxDelta {
					maxDelta = d
				}
			}
			dist = next
			if maxDelta < e.tolerance {
				break
			}
		}
		var p float64
		for j := 0; j < n; j++ {
			if phi != nil && phi.Test(j) {
				p += dist[j]
			}
		}
		out[i] = p
	}

	return out, nil
}

// rowVecMul computes x * P (row-vector times matrix), the dual of MatVec.
func (e *Engine) rowVecMul(x []float64) []float64 {
	m := e.embedded
	out := make([]float64, m.N)
	for i := 0; i < m.N; i++ {
		if x[i] == 0 {
			continue
		}
		for k := m.RowStart[i]; k < m.RowStart[i+1]; k++ {
			out[m.Col[k]] += x[i] * m.Val[k]
		}
	}

	return out
}

// EF implements mcctx.Kernels.EF: expected cumulative reward over `epoch`
// steps, restricted to phi-states, via value iteration v(i) = r(i)*phi(i)
// + sum_j P(i,j) v(j), seeded at zero and iterated `epoch` times. epoch ==
// 0 is treated as the long-run average reward rate: the sum over phi-states
// j of Steady's long-run occupancy of j times j's state reward.
func (e *Engine) EF(epoch int, phi *bitset.Set) ([]float64, error) {
	n := e.embedded.N
	if epoch == 0 {
		out := make([]float64, n)
		for j := 0; j < n; j++ {
			r := e.c.StateReward(e.c.StateID(j))
			if r == 0 || phi == nil || !phi.Test(j) {
				continue
			}
			single := bitset.Zero(n)
			single.SetBit(j)
			occ, err := e.Steady(single)
			if err != nil {
				return nil, err
			}
			for i := 0; i < n; i++ {
				out[i] += occ[i] * r
			}
		}

		return out, nil
	}

	v := make([]float64, n)
	for k := 0; k < epoch; k++ {
		next, err := e.embedded.MatVec(v)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			if phi != nil && phi.Test(i) {
				next[i] += e.c.StateReward(e.c.StateID(i))
			}
		}
		v = next
	}

	return v, nil
}

// CF implements mcctx.Kernels.CF: the expected instantaneous reward at
// exactly step `epoch`, (P^epoch * r)(i) where r is the phi-restricted
// state-reward vector.
func (e *Engine) CF(epoch int, phi *bitset.Set) ([]float64, error) {
	n := e.embedded.N
	r := make([]float64, n)
	for i := 0; i < n; i++ {
		if phi != nil && phi.Test(i) {
			r[i] = e.c.StateReward(e.c.StateID(i))
		}
	}

	v := r
	for k := 0; k < epoch; k++ {
		next, err := e.embedded.MatVec(v)
		if err != nil {
			return nil, err
		}
		v = next
	}

	return v, nil
}

// YF implements mcctx.Kernels.YF: the expected average reward over
// 0..epoch, the Cesaro mean of CF at each intermediate step. For epoch <= 0
// it returns Steady(phi), the long-run phi-occupancy probability, with no
// reward weighting.
func (e *Engine) YF(epoch int, phi *bitset.Set) ([]float64, error) {
	n := e.embedded.N
	if epoch <= 0 {
		return e.Steady(phi)
	}

	sum := make([]float64, n)
	r := make([]float64, n)
	for i := 0; i < n; i++ {
		if phi != nil && phi.Test(i) {
			r[i] = e.c.StateReward(e.c.StateID(i))
		}
	}
	v := r
	for k := 0; k <= epoch; k++ {
		for i := 0; i < n; i++ {
			sum[i] += v[i]
		}
		next, err := e.embedded.MatVec(v)
		if err != nil {
			return nil, err
		}
		v = next
	}
	for i := range sum {
		sum[i] /= float64(epoch + 1)
	}

	return sum, nil
}
