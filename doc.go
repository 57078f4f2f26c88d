// Package mceval is a probabilistic model checker for DTMC, CTMC, DMRM, and
// CMRM chains (with partial CTMDPI support), evaluating PCTL/CSL/PRCTL/CSRL
// formulas either numerically or by Monte Carlo simulation.
//
// The module is organized as:
//
//	chain/      — the state space: a directed, weighted multigraph doubling
//	              as a DTMC/CTMC/DMRM/CMRM/CTMDPI depending on Kind
//	bitset/     — fixed-size state-set primitive (C1)
//	compare/    — comparator fold/threshold logic shared by formula and mcctx (C3)
//	mcctx/      — the evaluation Context and every external-collaborator
//	              interface the formula package depends on
//	formula/    — the formula tree and its evaluator: Boolean combinator (C4),
//	              atomic evaluator (C5), operator dispatcher (C6), and the
//	              post-order tree walker (C7)
//	mcparse/    — compiles formula text into a formula.Node tree
//	kernels/    — reference numerical kernels (value iteration, uniformization)
//	simcheck/   — reference Monte Carlo statistical engines (Wilson-score CIs)
//	sccomp/     — Tarjan SCC/BSCC decomposition for the steady-state operator
//	reach/      — existential/universal reachability for the "pure" steady-state mode
//	ratematrix/ — sparse CSR transition matrix and uniformization
//	label/      — named state-set storage (.lab semantics)
//	builder/    — topology generators for constructing test chains
//	mcio/       — .tra/.lab/.rew file I/O
//	mccfg/      — YAML run configuration
//	mcmetrics/  — Prometheus metrics for an mcstat run
//	cmd/mcstat/ — the CLI driver wiring all of the above together
package mceval
