// Package formula implements the branching-time formula evaluator: a
// post-order walker over a typed formula tree that materializes state sets
// for atomic propositions, combines sub-results under Boolean connectives,
// dispatches probabilistic operators (Next, Until, Steady/Long-run, and the
// pure-reward operators E/C/Y) to numerical or statistical engines, and
// folds the resulting probability/reward vectors through an error-tolerant
// threshold comparator.
//
// This package is the evaluator's core; every numerical kernel, statistical
// engine, labeling service, and state-space accessor it uses arrives as an
// interface value on mcctx.Context (see that package) — formula never
// imports a concrete kernel or chain implementation.
//
// Evaluation is single-threaded, non-suspending, and strictly post-order:
// children are evaluated left-before-right before their parent, matching
// the ordering constraints of the statistical engines and RNG stream they
// may consume (mcctx.Context is not safe for concurrent evaluation of two
// trees that share one RNG).
package formula
