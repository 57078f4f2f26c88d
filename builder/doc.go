// Package builder assembles chain.Chain instances from named topology
// Constructor funcs: BuildChain resolves a builderConfig from functional
// options, then runs each Constructor against it in order.
//
// Only RandomSparse draws its edge set from cfg.rng; the other topologies
// (Cycle, Path, Complete, Star, Bipartite, Grid) have a fixed edge set. On
// CTMC/CMRM/CTMDPI chains every topology draws edge rates from
// cfg.weightFn, so reproducing a run only requires WithSeed (or WithRand)
// to carry over.
package builder
