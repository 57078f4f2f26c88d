package sccomp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mc-eval/bitset"
	"github.com/katalvlaran/mc-eval/chain"
	"github.com/katalvlaran/mc-eval/sccomp"
)

func buildChain(t *testing.T, kind chain.Kind, states []string, edges [][3]interface{}) *chain.Chain {
	t.Helper()
	c := chain.NewChain(kind)
	for _, s := range states {
		require.NoError(t, c.AddState(s, 0))
	}
	for _, e := range edges {
		require.NoError(t, c.AddTransition(e[0].(string), e[1].(string), e[2].(float64), 0, ""))
	}
	require.NoError(t, c.Freeze())

	return c
}

func TestDecomposeSingleCycle(t *testing.T) {
	c := buildChain(t, chain.CTMC, []string{"a", "b", "c"}, [][3]interface{}{
		{"a", "b", 1.0}, {"b", "c", 1.0}, {"c", "a", 1.0},
	})

	comps, err := sccomp.Decompose(c)
	require.NoError(t, err)
	require.Len(t, comps, 1)
	require.ElementsMatch(t, []int{0, 1, 2}, comps[0].States)
}

func TestDecomposeTransientPlusSink(t *testing.T) {
	// a -> b -> b (self-loop, sink BSCC); a is transient.
	c := buildChain(t, chain.CTMC, []string{"a", "b"}, [][3]interface{}{
		{"a", "b", 1.0}, {"b", "b", 1.0},
	})

	bsccs, err := sccomp.BSCCs(c)
	require.NoError(t, err)
	require.Len(t, bsccs, 1)
	bIdx, _ := c.Index("b")
	require.Equal(t, []int{bIdx}, bsccs[0].States)
}

func TestBSCCsMultipleSinks(t *testing.T) {
	// a -> b, a -> c; b,c each self-loop: two singleton BSCCs, a transient.
	c := buildChain(t, chain.CTMC, []string{"a", "b", "c"}, [][3]interface{}{
		{"a", "b", 1.0}, {"a", "c", 1.0}, {"b", "b", 1.0}, {"c", "c", 1.0},
	})

	bsccs, err := sccomp.BSCCs(c)
	require.NoError(t, err)
	require.Len(t, bsccs, 2)
}

func TestAcceptingStatesRequiresWholeComponent(t *testing.T) {
	// b,c form a BSCC together (b->c->b); label only b as phi, so the
	// component should NOT count as accepting.
	c := buildChain(t, chain.CTMC, []string{"a", "b", "c"}, [][3]interface{}{
		{"a", "b", 1.0}, {"b", "c", 1.0}, {"c", "b", 1.0},
	})
	bIdx, _ := c.Index("b")
	phi := bitset.Zero(c.NumStates())
	phi.SetBit(bIdx)

	accepting, err := sccomp.AcceptingStates(c, phi)
	require.NoError(t, err)
	require.Equal(t, 0, accepting.Count())
}
