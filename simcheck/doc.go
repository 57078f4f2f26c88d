// Package simcheck implements mcctx.StatEngines: Monte Carlo simulation
// engines for Until and Steady-state, each producing a two-set verdict
// (disjoint Yes/No state sets) plus a Wilson-score confidence interval per
// state instead of a single probability vector.
//
// Every engine draws independent sample paths per state with an Engine's
// rng.Source, estimates a Wilson-score interval at the configured
// confidence level, and classifies a state as Yes when the interval lies
// entirely on the satisfying side of the comparator's bound, No when it
// lies entirely on the other side, and otherwise leaves it undecided
// (absent from both sets) — the indeterminate region the "two-set" regime
// exists to represent.
//
// Complexity:
//
//   - Time:   O(states * samples * path length)
//   - Memory: O(states)
package simcheck
