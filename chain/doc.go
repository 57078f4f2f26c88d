// Package chain defines the state space shared by every model-checking run:
// a directed, weighted multigraph of states and transitions that doubles as
// a DTMC, CTMC, DMRM, or CMRM depending on Kind.
//
// A Chain is the concrete "Sparse matrix / state space" collaborator named
// in the formula evaluator's external-interfaces contract: it exposes a
// stable state index (0..N), a row-sum accessor, and (for CTMDPI chains) a
// separate MDPI state count. All mutation happens before the chain is
// frozen for evaluation; algorithms in kernels, sccomp, reach and simcheck
// only ever read from it.
//
// Thread-safety follows a single-lock discipline: a sync.RWMutex guards
// state and transition storage, so a Chain can
// be built from multiple goroutines (e.g. a streaming .tra parser) but is
// ordinarily treated as read-only once construction finishes.
package chain
