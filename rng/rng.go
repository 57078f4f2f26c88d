package rng

import (
	"math"
	"math/rand"
)

// Source produces the two distributions the statistical engines need:
// a uniform deviate in [0,1) for path-sampling decisions, and an
// exponentially distributed holding time for CTMC transitions.
type Source interface {
	// Uniform returns a uniform random number in [0,1).
	Uniform() float64
	// Exponential returns an Exp(lambda)-distributed random number.
	// lambda must be > 0 (the total exit rate of the current state).
	Exponential(lambda float64) float64
	// Seed reseeds the generator deterministically.
	Seed(seed int64)
}

// Builtin wraps math/rand.Rand, mirroring MRMC's default ("ymer"-style)
// internal generator: a single seeded stream, no external dependency.
type Builtin struct {
	r *rand.Rand
}

// NewBuiltin constructs a Builtin generator seeded with seed.
func NewBuiltin(seed int64) *Builtin {
	return &Builtin{r: rand.New(rand.NewSource(seed))}
}

// Uniform returns r.Float64(), a uniform deviate in [0,1).
func (b *Builtin) Uniform() float64 {
	return b.r.Float64()
}

// Exponential draws Exp(lambda) via inverse-CDF sampling over Uniform().
func (b *Builtin) Exponential(lambda float64) float64 {
	return -math.Log(1-b.r.Float64()) / lambda
}

// Seed reseeds the underlying stream.
func (b *Builtin) Seed(seed int64) {
	b.r = rand.New(rand.NewSource(seed))
}

// GSLStyle implements Source with a distinct linear-congruential stream,
// standing in for MRMC's GSL-backed generator (RANLUX/LFG/TAUS methods)
// without a cgo dependency. It exists so simulation runs can be
// repeated under an independently-seeded stream for cross-validation.
type GSLStyle struct {
	state uint64
}

// gslMultiplier and gslIncrement are Knuth's MMIX 64-bit LCG constants; they exist only to give GSLStyle a stream distinguishable from
// Builtin's math/rand-derived one, not to match any particular GSL method
// bit-for-bit.
const (
	gslMultiplier = 6364136223846793005
	gslIncrement  = 1442695040888963407
)

// NewGSLStyle constructs a GSLStyle generator seeded with seed.
func NewGSLStyle(seed int64) *GSLStyle {
	g := &GSLStyle{}
	g.Seed(seed)

	return g
}

// Seed reseeds the LCG stream.
func (g *GSLStyle) Seed(seed int64) {
	g.state = uint64(seed) ^ gslIncrement
}

// next advances the LCG and returns its raw 64-bit output.
func (g *GSLStyle) next() uint64 {
	g.state = g.state*gslMultiplier + gslIncrement

	return g.state
}

// Uniform returns a uniform deviate in [0,1) derived from the top 53 bits
// of the LCG stream (matching float64's mantissa precision).
func (g *GSLStyle) Uniform() float64 {
	return float64(g.next()>>11) / float64(1<<53)
}

// Exponential draws Exp(lambda) via inverse-CDF sampling over Uniform().
func (g *GSLStyle) Exponential(lambda float64) float64 {
	return -math.Log(1-g.Uniform()) / lambda
}
