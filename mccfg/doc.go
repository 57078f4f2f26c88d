// Package mccfg loads the YAML configuration that drives one mcstat run:
// which model/label/reward files to parse, which chain Kind they encode,
// the statistical-engine knobs (confidence, sample count, RNG seed)
// threaded into simcheck.Engine and the RNG, and the numerical tolerance
// used as the evaluator's error bound.
package mccfg
