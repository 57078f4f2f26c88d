// Package rng wraps random-number generation behind one Source interface so
// the statistical engines never depend on a concrete generator — mirroring
// the original MRMC tool's split between a built-in generator and a
// GSL-backed one (include/algorithms/random_numbers/rng_gsl.h). Builtin
// wraps math/rand; GSLStyle implements the same distributions with an
// independent algorithm so results can be cross-checked, without requiring
// an actual cgo binding to GSL.
package rng
