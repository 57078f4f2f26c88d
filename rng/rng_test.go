package rng_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mc-eval/rng"
)

func TestBuiltinUniformRange(t *testing.T) {
	b := rng.NewBuiltin(1)
	for i := 0; i < 1000; i++ {
		u := b.Uniform()
		require.GreaterOrEqual(t, u, 0.0)
		require.Less(t, u, 1.0)
	}
}

func TestBuiltinDeterministicWithSeed(t *testing.T) {
	a := rng.NewBuiltin(42)
	b := rng.NewBuiltin(42)
	for i := 0; i < 10; i++ {
		require.Equal(t, a.Uniform(), b.Uniform())
	}
}

func TestBuiltinSeedResets(t *testing.T) {
	a := rng.NewBuiltin(1)
	first := a.Uniform()
	a.Seed(1)
	require.Equal(t, first, a.Uniform())
}

func TestGSLStyleUniformRange(t *testing.T) {
	g := rng.NewGSLStyle(7)
	for i := 0; i < 1000; i++ {
		u := g.Uniform()
		require.GreaterOrEqual(t, u, 0.0)
		require.Less(t, u, 1.0)
	}
}

func TestExponentialPositive(t *testing.T) {
	var sources []rng.Source = []rng.Source{rng.NewBuiltin(3), rng.NewGSLStyle(3)}
	for _, s := range sources {
		for i := 0; i < 100; i++ {
			require.Greater(t, s.Exponential(2.0), 0.0)
		}
	}
}
