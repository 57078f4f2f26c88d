// Package kernels implements mcctx.Kernels: reference numerical routines
// for Next, Until, Steady-state, and the pure-reward operators E/C/Y, built
// on ratematrix's sparse matrix-vector product.
//
// These are reference implementations of an external collaborator the
// formula evaluator only ever calls through an interface; a
// production deployment could swap in a faster or more accurate solver
// (sparse LU, Krylov methods, adaptive uniformization) without touching
// the evaluator. Until uses fixed-point (Jacobi) iteration and Steady power
// iteration, both to a fixed built-in tolerance (1e-9) rather than a direct
// solve, trading a small
// amount of numerical precision for an implementation simple enough to
// read in one sitting; see DESIGN.md for the tradeoffs this makes against
// the error-bound guidance for numerical kernels.
//
// Complexity:
//
//   - Until: Time O(iterations * E), Memory O(V)
//   - Steady: Time O(V * iterations * E), Memory O(V)
//   - Next: Time O(E), Memory O(V)
//   - EF/CF/YF: Time O(epoch * E), Memory O(V)
package kernels
