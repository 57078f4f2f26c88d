package formula_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mc-eval/bitset"
	"github.com/katalvlaran/mc-eval/chain"
	"github.com/katalvlaran/mc-eval/compare"
	"github.com/katalvlaran/mc-eval/formula"
	"github.com/katalvlaran/mc-eval/mcctx"
)

// Mode mismatch degrades to a zero vector and emits
// a warning; a subsequent strict `> 0` comparison at eps=0 yields empty.
func TestModeMismatchDegradesToZeroVector(t *testing.T) {
	ctx := baseCtx(4, chain.CTMC)
	var op, runMode string
	ctx.OnModeMismatch = func(o, m string) { op, runMode = o, m }

	e := &formula.PureRewardNode{Kind: formula.KindExpectedRR, Epoch: 1, Child: &formula.AtomicNode{Kind: formula.KindTT}}
	cmp := &formula.ComparatorNode{Spec: compare.Spec{Op: compare.Gt, Bound: 0}, Child: e}

	require.NoError(t, formula.Eval(ctx, cmp))
	require.NotEmpty(t, op)
	require.Equal(t, "CTMC", runMode)
	require.Equal(t, 4, e.Result().Size)
	for _, v := range e.Result().ProbReward {
		require.Equal(t, 0.0, v)
	}
	require.Equal(t, 0, cmp.Result().Yes.Count())
}

func TestUntilNumericDispatch(t *testing.T) {
	ctx := baseCtx(3, chain.DTMC)
	ctx.ErrorBound = 0.01
	ctx.Labels = &fakeLabels{n: 3, set: map[string]*bitset.Set{
		"p": bitsOf(3, 0, 1),
		"q": bitsOf(3, 2),
	}}
	ctx.Kernels = &fakeKernels{
		untilFn: func(phi, psi *bitset.Set, form mcctx.OpForm, t1, t2 float64, extraLump bool) ([]float64, error) {
			return []float64{0.1, 0.2, 1.0}, nil
		},
	}

	until := &formula.UntilNode{
		Kind: formula.KindUntilUnb,
		Phi:  &formula.AtomicNode{Kind: formula.KindAP, Label: "p"},
		Psi:  &formula.AtomicNode{Kind: formula.KindAP, Label: "q"},
	}

	require.NoError(t, formula.Eval(ctx, until))
	require.Equal(t, []float64{0.1, 0.2, 1.0}, until.Result().ProbReward)
	require.Equal(t, ctx.ErrorBound, until.Result().ErrorScalar)
}

func TestUntilKernelNilIsFatal(t *testing.T) {
	ctx := baseCtx(2, chain.DTMC)
	ctx.Labels = &fakeLabels{n: 2, set: map[string]*bitset.Set{}}
	ctx.Kernels = &fakeKernels{
		untilFn: func(phi, psi *bitset.Set, form mcctx.OpForm, t1, t2 float64, extraLump bool) ([]float64, error) {
			return nil, nil
		},
	}

	until := &formula.UntilNode{
		Kind: formula.KindUntilUnb,
		Phi:  &formula.AtomicNode{Kind: formula.KindTT},
		Psi:  &formula.AtomicNode{Kind: formula.KindFF},
	}

	err := formula.Eval(ctx, until)
	require.Error(t, err)
	var kernelErr *formula.KernelError
	require.ErrorAs(t, err, &kernelErr)
}
