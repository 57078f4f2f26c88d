// Package mcctx holds the runtime state the formula evaluator threads
// through every node instead of reaching for process-wide globals: the run
// mode, error bound, confidence level, steady-state simulation strategy,
// and the external collaborators the evaluator consumes as services: state
// space, labeling, row sums, numerical kernels, statistical engines, RNG.
//
// The formula walker takes a *Context as an explicit argument rather than
// reading global state; this is what makes two independent formula trees
// safe to evaluate one after another (or, with separate Contexts,
// concurrently) instead of only ever one at a time. Kernels and statistical
// engines do not receive the Context: the evaluator calls them with the
// bitsets, bounds and settings they need as plain parameters.
package mcctx
