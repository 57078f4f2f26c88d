// Package bitset adapts github.com/bits-and-blooms/bitset into the C1
// "State-set primitives" contract used throughout the formula evaluator:
// fixed-length, freshly-owned bitsets with fresh (And/Or/Not) and in-place
// (AndInto/OrInto) variants, a Set bit mutator, and a length query.
//
// Every state set in one evaluation has length N (or, for CTMDPI chains,
// the MDPI state count); callers are responsible for keeping that length
// consistent, as this package performs no implicit resizing.
package bitset
