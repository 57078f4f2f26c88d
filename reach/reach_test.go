package reach_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mc-eval/bitset"
	"github.com/katalvlaran/mc-eval/chain"
	"github.com/katalvlaran/mc-eval/reach"
)

func buildChain(t *testing.T) *chain.Chain {
	t.Helper()
	c := chain.NewChain(chain.CTMC)
	for _, s := range []string{"a", "b", "c", "d"} {
		require.NoError(t, c.AddState(s, 0))
	}
	require.NoError(t, c.AddTransition("a", "b", 1, 0, ""))
	require.NoError(t, c.AddTransition("b", "c", 1, 0, ""))
	require.NoError(t, c.AddTransition("c", "c", 1, 0, ""))
	require.NoError(t, c.AddTransition("d", "d", 1, 0, ""))
	require.NoError(t, c.Freeze())

	return c
}

func TestExistReachesThroughChain(t *testing.T) {
	c := buildChain(t)
	target := bitset.Zero(4)
	cIdx, _ := c.Index("c")
	target.SetBit(cIdx)

	res, err := reach.Exist(c, target)
	require.NoError(t, err)

	aIdx, _ := c.Index("a")
	dIdx, _ := c.Index("d")
	require.True(t, res.Test(aIdx))
	require.True(t, res.Test(cIdx))
	require.False(t, res.Test(dIdx))
}

func TestAlwaysReachesOnlyWhenNoEscape(t *testing.T) {
	c := buildChain(t)
	target := bitset.Zero(4)
	cIdx, _ := c.Index("c")
	target.SetBit(cIdx)

	res, err := reach.Always(c, target)
	require.NoError(t, err)

	aIdx, _ := c.Index("a")
	dIdx, _ := c.Index("d")
	require.True(t, res.Test(aIdx)) // a -> b -> c -> c forever
	require.True(t, res.Test(cIdx)) // c itself is target
	require.False(t, res.Test(dIdx))
}
