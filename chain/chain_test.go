package chain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mc-eval/chain"
)

func threeStateDTMC(t *testing.T) *chain.Chain {
	t.Helper()
	c := chain.NewChain(chain.DTMC)
	require.NoError(t, c.AddState("s0", 0))
	require.NoError(t, c.AddState("s1", 0))
	require.NoError(t, c.AddState("s2", 0))
	require.NoError(t, c.AddTransition("s0", "s1", 0.5, 0, ""))
	require.NoError(t, c.AddTransition("s0", "s2", 0.5, 0, ""))
	require.NoError(t, c.AddTransition("s1", "s1", 1.0, 0, ""))
	require.NoError(t, c.AddTransition("s2", "s2", 1.0, 0, ""))

	return c
}

func TestAddStateDuplicate(t *testing.T) {
	c := chain.NewChain(chain.CTMC)
	require.NoError(t, c.AddState("a", 0))
	require.ErrorIs(t, c.AddState("a", 0), chain.ErrDuplicateState)
}

func TestAddTransitionUnknownState(t *testing.T) {
	c := chain.NewChain(chain.CTMC)
	require.NoError(t, c.AddState("a", 0))
	require.ErrorIs(t, c.AddTransition("a", "b", 1, 0, ""), chain.ErrStateNotFound)
}

func TestFreezeAssignsDeterministicIndex(t *testing.T) {
	c := threeStateDTMC(t)
	require.NoError(t, c.Freeze())
	require.Equal(t, 3, c.NumStates())

	i0, ok := c.Index("s0")
	require.True(t, ok)
	i1, _ := c.Index("s1")
	i2, _ := c.Index("s2")
	require.Equal(t, 0, i0)
	require.Equal(t, 1, i1)
	require.Equal(t, 2, i2)
	require.Equal(t, "s0", c.StateID(0))
}

func TestFreezeRejectsBadProbabilitySum(t *testing.T) {
	c := chain.NewChain(chain.DTMC)
	require.NoError(t, c.AddState("a", 0))
	require.NoError(t, c.AddState("b", 0))
	require.NoError(t, c.AddTransition("a", "b", 0.4, 0, ""))
	require.ErrorIs(t, c.Freeze(), chain.ErrBadProbability)
}

func TestRowSums(t *testing.T) {
	c := threeStateDTMC(t)
	require.NoError(t, c.Freeze())
	sums := c.RowSums()
	for _, s := range sums {
		require.InDelta(t, 1.0, s, 1e-9)
	}
}

func TestUniformizationRate(t *testing.T) {
	c := chain.NewChain(chain.CTMC)
	require.NoError(t, c.AddState("a", 0))
	require.NoError(t, c.AddState("b", 0))
	require.NoError(t, c.AddTransition("a", "b", 3.5, 0, ""))
	require.NoError(t, c.AddTransition("b", "a", 1.0, 0, ""))
	require.NoError(t, c.Freeze())
	require.Equal(t, 3.5, c.UniformizationRate())
}

func TestCTMDPIStateCount(t *testing.T) {
	c := chain.NewChain(chain.CTMDPI)
	require.NoError(t, c.AddState("s0", 0))
	require.NoError(t, c.AddState("s1", 0))
	require.NoError(t, c.AddTransition("s0", "s1", 1, 0, "act1"))
	require.NoError(t, c.AddTransition("s0", "s1", 2, 0, "act2"))
	require.NoError(t, c.Freeze())
	require.Equal(t, 2, c.NumStates())
	// s0 contributes one MDPI slot per action (2); s1 has no outgoing choice
	// but still occupies a single degenerate slot.
	require.Equal(t, 3, c.NumStatesMDPI())
}
