package formula

import "github.com/katalvlaran/mc-eval/bitset"

// Result is the per-node storage of evaluation outputs. Every node variant embeds one. Bitsets and vectors are owned by
// the node that produced them and released on the normal post-order
// schedule, except when a Comparator adopts a simulated child's Yes/No
// (§4.4) — that is the only ownership transfer in the tree.
type Result struct {
	// Yes is the bitset of satisfying states. Non-nil after evaluation for
	// every node except the CTMDPI degenerate case.
	Yes *bitset.Set

	// No is the bitset of definitely-not-satisfying states. Present only
	// under statistical mode (SimHere or SimBelow set); see invariant 2/3.
	No *bitset.Set

	// ProbReward is the owned probability or reward vector, length Size.
	ProbReward []float64

	// Size is len(ProbReward), equal to N (or MDPI N for the CTMDPI case).
	Size int

	// ErrorScalar is the uniform numerical/statistical error bound.
	ErrorScalar float64

	// ErrorPerState, when present, has length Size (invariant 5); it is
	// populated only for time- and reward-bounded Until under
	// Qureshi–Sanders-style uniformization (kernels.UntilRewards).
	ErrorPerState []float64

	// CILeft, CIRight are per-state confidence-interval bounds (statistical
	// mode only).
	CILeft, CIRight []float64

	// MaxObs is the maximum number of statistical observations actually used.
	MaxObs int

	// SimHere is true when this node itself was evaluated statistically.
	SimHere bool

	// SimBelow is true when some descendant was evaluated statistically
	// (invariant 4: OR over SimHere/SimBelow of all descendants).
	SimBelow bool

	// Confidence is the requested confidence level for this node's
	// statistical evaluation, if any.
	Confidence float64

	// InitialState/OneInitState record whether statistical evaluation was
	// restricted to a single initial state.
	InitialState int
	OneInitState bool

	// consumed marks that a parent has adopted this Result's Yes/No via the
	// comparator adoption rule (the Evaluated -> Consumed transition); Yes/No
	// are nil from then on. Nothing in the package reads the flag.
	consumed bool
}

// adopt transfers ownership of r's Yes/No to the caller and nulls them in r,
// implementing the comparator-adoption move and the
// Evaluated -> Consumed transition.
func (r *Result) adopt() (yes, no *bitset.Set) {
	yes, no = r.Yes, r.No
	r.Yes, r.No = nil, nil
	r.consumed = true

	return yes, no
}

// sim reports whether r was evaluated statistically, directly or in a
// descendant — the "two-set mode" predicate used throughout C4/C6.
func (r *Result) sim() bool {
	return r.SimHere || r.SimBelow
}
