// Package compare implements the threshold-comparator fold (component C3):
// turning a probability or reward vector, a comparator operator and
// bound(s), and an error bound (uniform or per-state) into a yes-set.
//
// It is factored out of formula (which owns the Comparator *node* and the
// adoption/short-circuit rule around it) so that mcctx's statistical-engine
// interfaces can describe the same operator/bound pair without importing
// formula, and so the fold itself — pure arithmetic over []float64 — is
// unit-testable without a formula tree.
package compare
