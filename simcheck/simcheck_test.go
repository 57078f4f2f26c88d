package simcheck_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mc-eval/bitset"
	"github.com/katalvlaran/mc-eval/chain"
	"github.com/katalvlaran/mc-eval/compare"
	"github.com/katalvlaran/mc-eval/rng"
	"github.com/katalvlaran/mc-eval/simcheck"
)

func buildAbsorbing(t *testing.T) *chain.Chain {
	t.Helper()
	c := chain.NewChain(chain.DTMC)
	require.NoError(t, c.AddState("a", 0))
	require.NoError(t, c.AddState("b", 0))
	require.NoError(t, c.AddTransition("a", "b", 1.0, 0, ""))
	require.NoError(t, c.AddTransition("b", "b", 1.0, 0, ""))
	require.NoError(t, c.Freeze())

	return c
}

func TestUnboundedUntilAlwaysTrueClassifiesYes(t *testing.T) {
	c := buildAbsorbing(t)
	src := rng.NewBuiltin(42)
	e, err := simcheck.New(c, src, 0.95, 200)
	require.NoError(t, err)

	phi := bitset.One(2)
	psi := bitset.Zero(2)
	bIdx, _ := c.Index("b")
	psi.SetBit(bIdx)

	res, err := e.UnboundedUntil(phi, psi, compare.Spec{Op: compare.Ge, Bound: 0.5}, 0, false)
	require.NoError(t, err)
	require.Equal(t, 2, res.Yes.Count())
	require.Equal(t, 0, res.No.Count())
}

func TestSingleInitRestrictsSampling(t *testing.T) {
	c := buildAbsorbing(t)
	src := rng.NewBuiltin(7)
	e, err := simcheck.New(c, src, 0.95, 100)
	require.NoError(t, err)

	phi := bitset.One(2)
	psi := bitset.Zero(2)
	bIdx, _ := c.Index("b")
	psi.SetBit(bIdx)

	aIdx, _ := c.Index("a")
	res, err := e.UnboundedUntil(phi, psi, compare.Spec{Op: compare.Ge, Bound: 0.5}, aIdx, true)
	require.NoError(t, err)
	require.True(t, res.Yes.Test(aIdx))
	require.False(t, res.Yes.Test(bIdx))
	require.False(t, res.No.Test(bIdx))
}
