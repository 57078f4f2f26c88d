package formula_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mc-eval/bitset"
	"github.com/katalvlaran/mc-eval/chain"
	"github.com/katalvlaran/mc-eval/formula"
)

// Boolean atomics: TT, FF, AP lookup.
func TestBooleanScenario(t *testing.T) {
	ctx := baseCtx(4, chain.DTMC)
	ctx.Labels = &fakeLabels{n: 4, set: map[string]*bitset.Set{
		"a": bitsOf(4, 0, 2),
		"b": bitsOf(4, 2, 3),
	}}

	a := &formula.AtomicNode{Kind: formula.KindAP, Label: "a"}
	b := &formula.AtomicNode{Kind: formula.KindAP, Label: "b"}

	and := &formula.BinaryBoolNode{Kind: formula.KindAnd, Left: a, Right: b}
	require.NoError(t, formula.Eval(ctx, and))
	require.Equal(t, []int{2}, setBits(and.Result().Yes))

	a2 := &formula.AtomicNode{Kind: formula.KindAP, Label: "a"}
	b2 := &formula.AtomicNode{Kind: formula.KindAP, Label: "b"}
	or := &formula.BinaryBoolNode{Kind: formula.KindOr, Left: a2, Right: b2}
	require.NoError(t, formula.Eval(ctx, or))
	require.Equal(t, []int{0, 2, 3}, setBits(or.Result().Yes))

	a3 := &formula.AtomicNode{Kind: formula.KindAP, Label: "a"}
	b3 := &formula.AtomicNode{Kind: formula.KindAP, Label: "b"}
	impl := &formula.BinaryBoolNode{Kind: formula.KindImplies, Left: a3, Right: b3}
	require.NoError(t, formula.Eval(ctx, impl))
	require.Equal(t, []int{1, 2, 3}, setBits(impl.Result().Yes))
}

func TestAtomicUnknownLabelIsEmpty(t *testing.T) {
	ctx := baseCtx(3, chain.DTMC)
	n := &formula.AtomicNode{Kind: formula.KindAP, Label: "missing"}
	require.NoError(t, formula.Eval(ctx, n))
	require.Equal(t, 0, n.Result().Yes.Count())
}

func TestAtomicTTFF(t *testing.T) {
	ctx := baseCtx(5, chain.DTMC)
	tt := &formula.AtomicNode{Kind: formula.KindTT}
	require.NoError(t, formula.Eval(ctx, tt))
	require.Equal(t, 5, tt.Result().Yes.Count())

	ff := &formula.AtomicNode{Kind: formula.KindFF}
	require.NoError(t, formula.Eval(ctx, ff))
	require.Equal(t, 0, ff.Result().Yes.Count())
}

func setBits(b *bitset.Set) []int {
	var out []int
	for i := 0; i < b.Len(); i++ {
		if b.Test(i) {
			out = append(out, i)
		}
	}

	return out
}
