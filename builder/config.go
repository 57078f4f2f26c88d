package builder

import "math/rand"

// idScheme is the default deterministic vertex-ID generator: idx -> "s0",
// "s1", .... chain.Freeze sorts IDs as strings, so its index order matches
// idx only for chains of at most 10 states ("s10" sorts before "s2").
func idScheme(idx int) string {
	digits := []byte("0123456789")
	if idx == 0 {
		return "s0"
	}
	buf := make([]byte, 0, 8)
	n := idx
	for n > 0 {
		buf = append([]byte{digits[n%10]}, buf...)
		n /= 10
	}

	return "s" + string(buf)
}

// defaultWeightFn returns a fixed unit weight; stochastic constructors
// normally override this via WithWeightFn to vary weights per edge.
func defaultWeightFn(r *rand.Rand) float64 { return 1.0 }

// builderConfig holds every knob a Constructor may consult. It is built
// once by newBuilderConfig from a BuilderOption slice and passed by value to
// each Constructor, so no Constructor can mutate another's view of it.
type builderConfig struct {
	idFn     func(int) string
	rng      *rand.Rand
	weightFn func(*rand.Rand) float64
	edgeProb float64 // RandomSparse: probability of an edge between any ordered pair
	prefixA  string  // Bipartite: label prefix for the first partition
	prefixB  string  // Bipartite: label prefix for the second partition
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     idScheme,
		rng:      rand.New(rand.NewSource(1)),
		weightFn: defaultWeightFn,
		edgeProb: 0.3,
		prefixA:  "a",
		prefixB:  "b",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
