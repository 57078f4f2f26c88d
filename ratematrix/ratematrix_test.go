package ratematrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mc-eval/chain"
	"github.com/katalvlaran/mc-eval/ratematrix"
)

func TestBuildAndMatVec(t *testing.T) {
	c := chain.NewChain(chain.DTMC)
	require.NoError(t, c.AddState("a", 0))
	require.NoError(t, c.AddState("b", 0))
	require.NoError(t, c.AddTransition("a", "b", 1.0, 0, ""))
	require.NoError(t, c.AddTransition("b", "a", 0.5, 0, ""))
	require.NoError(t, c.AddTransition("b", "b", 0.5, 0, ""))
	require.NoError(t, c.Freeze())

	m, err := ratematrix.Build(c)
	require.NoError(t, err)

	y, err := m.MatVec([]float64{1, 1})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 1}, y, 1e-9)
}

func TestMatVecDimMismatch(t *testing.T) {
	c := chain.NewChain(chain.CTMC)
	require.NoError(t, c.AddState("a", 0))
	require.NoError(t, c.Freeze())

	m, err := ratematrix.Build(c)
	require.NoError(t, err)

	_, err = m.MatVec([]float64{1, 2, 3})
	require.ErrorIs(t, err, ratematrix.ErrDimMismatch)
}

func TestUniformized(t *testing.T) {
	c := chain.NewChain(chain.CTMC)
	require.NoError(t, c.AddState("a", 0))
	require.NoError(t, c.AddState("b", 0))
	require.NoError(t, c.AddTransition("a", "b", 2.0, 0, ""))
	require.NoError(t, c.Freeze())

	m, err := ratematrix.Build(c)
	require.NoError(t, err)

	u, err := m.Uniformized(2.0)
	require.NoError(t, err)
	require.Equal(t, 2, u.N)
}
