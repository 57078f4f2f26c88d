package bitset

import (
	bb "github.com/bits-and-blooms/bitset"
)

// Set is a fixed-length bitset of satisfying/non-satisfying states. The
// zero value is not usable; construct with Zero or One.
type Set struct {
	n   int
	raw *bb.BitSet
}

// Zero returns a freshly owned, all-zero Set of length n.
func Zero(n int) *Set {
	return &Set{n: n, raw: bb.New(uint(n))}
}

// One returns a freshly owned, all-one Set of length n.
func One(n int) *Set {
	s := Zero(n)
	for i := 0; i < n; i++ {
		s.raw.Set(uint(i))
	}

	return s
}

// Len returns the set's declared length, N.
func (s *Set) Len() int {
	return s.n
}

// Test reports whether bit i is set.
func (s *Set) Test(i int) bool {
	return s.raw.Test(uint(i))
}

// SetBit sets bit i to 1, mutating s in place.
func (s *Set) SetBit(i int) {
	s.raw.Set(uint(i))
}

// ClearBit sets bit i to 0, mutating s in place.
func (s *Set) ClearBit(i int) {
	s.raw.Clear(uint(i))
}

// Count returns the number of set bits.
func (s *Set) Count() int {
	return int(s.raw.Count())
}

// Copy copies src's bits into dst in place. Both must share the same length.
func Copy(dst, src *Set) {
	dst.raw = src.raw.Clone()
}

// Clone returns a freshly owned deep copy of s.
func (s *Set) Clone() *Set {
	return &Set{n: s.n, raw: s.raw.Clone()}
}

// Not returns a freshly owned bitwise complement of b, truncated to b's
// declared length (the underlying library has no bounded-length NOT).
func Not(b *Set) *Set {
	out := Zero(b.n)
	for i := 0; i < b.n; i++ {
		if !b.raw.Test(uint(i)) {
			out.raw.Set(uint(i))
		}
	}

	return out
}

// And returns a freshly owned intersection of a and b.
func And(a, b *Set) *Set {
	return &Set{n: a.n, raw: a.raw.Intersection(b.raw)}
}

// Or returns a freshly owned union of a and b.
func Or(a, b *Set) *Set {
	return &Set{n: a.n, raw: a.raw.Union(b.raw)}
}

// AndInto computes b := a AND b in place, mutating only b.
func AndInto(a, b *Set) {
	b.raw.InPlaceIntersection(a.raw)
}

// OrInto computes b := a OR b in place, mutating only b.
func OrInto(a, b *Set) {
	b.raw.InPlaceUnion(a.raw)
}
