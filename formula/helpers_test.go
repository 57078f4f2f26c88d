package formula_test

import (
	"github.com/katalvlaran/mc-eval/bitset"
	"github.com/katalvlaran/mc-eval/chain"
	"github.com/katalvlaran/mc-eval/compare"
	"github.com/katalvlaran/mc-eval/mcctx"
)

// fakeSpace is a fixed-size StateSpace stub.
type fakeSpace struct {
	n, mdpiN int
}

func (f *fakeSpace) NumStates() int     { return f.n }
func (f *fakeSpace) NumStatesMDPI() int { return f.mdpiN }
func (f *fakeSpace) RowSums() []float64 { return make([]float64, f.n) }

// fakeLabels is a map-backed Labeling stub.
type fakeLabels struct {
	n   int
	set map[string]*bitset.Set
}

func (f *fakeLabels) NumStates() int { return f.n }
func (f *fakeLabels) Label(name string) (*bitset.Set, bool) {
	b, ok := f.set[name]

	return b, ok
}

func bitsOf(n int, idx ...int) *bitset.Set {
	b := bitset.Zero(n)
	for _, i := range idx {
		b.SetBit(i)
	}

	return b
}

// fakeKernels stubs every mcctx.Kernels method with a canned response,
// overridable per test via the function fields.
type fakeKernels struct {
	untilFn        func(phi, psi *bitset.Set, form mcctx.OpForm, t1, t2 float64, extraLump bool) ([]float64, error)
	nextFn         func(phi *bitset.Set, form mcctx.OpForm, t1, t2 float64) ([]float64, error)
	nextRewardsFn  func(phi *bitset.Set, t1, t2, r1, r2 float64) ([]float64, error)
	untilRewardsFn func(phi, psi *bitset.Set, t1, t2, r1, r2 float64, flag bool) ([]float64, []float64, error)
	steadyFn       func(phi *bitset.Set) ([]float64, error)
	efFn           func(epoch int, phi *bitset.Set) ([]float64, error)
	cfFn           func(epoch int, phi *bitset.Set) ([]float64, error)
	yfFn           func(epoch int, phi *bitset.Set) ([]float64, error)
}

func (f *fakeKernels) Until(phi, psi *bitset.Set, form mcctx.OpForm, t1, t2 float64, extraLump bool) ([]float64, error) {
	return f.untilFn(phi, psi, form, t1, t2, extraLump)
}
func (f *fakeKernels) Next(phi *bitset.Set, form mcctx.OpForm, t1, t2 float64) ([]float64, error) {
	return f.nextFn(phi, form, t1, t2)
}
func (f *fakeKernels) NextRewards(phi *bitset.Set, t1, t2, r1, r2 float64) ([]float64, error) {
	return f.nextRewardsFn(phi, t1, t2, r1, r2)
}
func (f *fakeKernels) UntilRewards(phi, psi *bitset.Set, t1, t2, r1, r2 float64, flag bool) ([]float64, []float64, error) {
	return f.untilRewardsFn(phi, psi, t1, t2, r1, r2, flag)
}
func (f *fakeKernels) Steady(phi *bitset.Set) ([]float64, error) { return f.steadyFn(phi) }
func (f *fakeKernels) EF(epoch int, phi *bitset.Set) ([]float64, error) { return f.efFn(epoch, phi) }
func (f *fakeKernels) CF(epoch int, phi *bitset.Set) ([]float64, error) { return f.cfFn(epoch, phi) }
func (f *fakeKernels) YF(epoch int, phi *bitset.Set) ([]float64, error) { return f.yfFn(epoch, phi) }

// fakeStats stubs mcctx.StatEngines, returning a canned StatResult.
type fakeStats struct {
	result *mcctx.StatResult
	err    error
}

func (f *fakeStats) UnboundedUntil(phi, psi *bitset.Set, cmp compare.Spec, initState int, singleInit bool) (*mcctx.StatResult, error) {
	return f.result, f.err
}
func (f *fakeStats) TimeIntervalUntil(phi, psi *bitset.Set, t1, t2 float64, cmp compare.Spec, initState int, singleInit bool) (*mcctx.StatResult, error) {
	return f.result, f.err
}
func (f *fakeStats) SteadyStateHybrid(phi *bitset.Set, numericUntil mcctx.UntilNumericFunc, bscc mcctx.BSCCFunc, cmp compare.Spec, initState int, singleInit bool) (*mcctx.StatResult, error) {
	return f.result, f.err
}
func (f *fakeStats) SteadyStatePure(phi *bitset.Set, exist, always mcctx.ReachabilityFunc, bscc mcctx.BSCCFunc, cmp compare.Spec, initState int, singleInit bool) (*mcctx.StatResult, error) {
	return f.result, f.err
}

func baseCtx(n int, mode chain.Kind) *mcctx.Context {
	return &mcctx.Context{
		RunMode: mode,
		Space:   &fakeSpace{n: n, mdpiN: n},
		Labels:  &fakeLabels{n: n, set: map[string]*bitset.Set{}},
	}
}
