// Package ratematrix builds a compressed sparse row (CSR) view of a
// chain.Chain's transition weights — rates for CTMC/CMRM, probabilities for
// DTMC/DMRM — and exposes the linear-algebra primitive the numerical
// kernels (package kernels) are built on: MatVec, the sparse matrix-vector
// product used by every iteration of uniformization-based transient
// analysis.
//
// Complexity:
//
//   - Build: Time O(V + E), Memory O(E)
//   - MatVec: Time O(E), Memory O(V)
package ratematrix
