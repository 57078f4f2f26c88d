package formula_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mc-eval/chain"
	"github.com/katalvlaran/mc-eval/compare"
	"github.com/katalvlaran/mc-eval/formula"
)

// Comparator adoption.
func TestComparatorAdoption(t *testing.T) {
	ctx := baseCtx(3, chain.CTMC)

	child := &fixedNode{res: formula.Result{
		Yes: bitsOf(3, 0), No: bitsOf(3, 2), SimHere: true, Size: 3,
	}}
	cmp := &formula.ComparatorNode{Spec: compare.Spec{Op: compare.Ge, Bound: 0.5}, Child: child}

	require.NoError(t, formula.Eval(ctx, cmp))

	require.Equal(t, []int{0}, setBits(cmp.Result().Yes))
	require.Equal(t, []int{2}, setBits(cmp.Result().No))
	require.Nil(t, child.Result().Yes)
	require.Nil(t, child.Result().No)
}

// Adoption is pointer-identical, not a copy.
func TestComparatorAdoptionIsPointerTransfer(t *testing.T) {
	ctx := baseCtx(2, chain.CTMC)

	yes := bitsOf(2, 0)
	no := bitsOf(2, 1)
	child := &fixedNode{res: formula.Result{Yes: yes, No: no, SimHere: true, Size: 2}}
	cmp := &formula.ComparatorNode{Spec: compare.Spec{Op: compare.Ge, Bound: 0.5}, Child: child}

	require.NoError(t, formula.Eval(ctx, cmp))

	require.True(t, cmp.Result().Yes == yes)
	require.True(t, cmp.Result().No == no)
}
