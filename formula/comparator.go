package formula

import (
	"github.com/katalvlaran/mc-eval/compare"
	"github.com/katalvlaran/mc-eval/mcctx"
)

// evalComparator implements C3 plus the adoption short-circuit: if the
// wrapped sub-result was evaluated statistically (SimHere),
// the comparator adopts its already-computed Yes/No by pointer transfer
// (nulling them in the child) instead of folding — the statistical engine
// has already performed the thresholded decision. Otherwise it folds
// ProbReward through the threshold, using the per-state error vector when
// present and the uniform scalar error (with its 0/1 exact-endpoint bypass)
// otherwise.
func evalComparator(ctx *mcctx.Context, n *ComparatorNode) error {
	_ = ctx
	if n.Child == nil {
		return ErrNilChild
	}
	child := n.Child.Result()
	n.Res.Size = child.Size

	if child.SimHere {
		yes, no := child.adopt()
		n.Res.Yes, n.Res.No = yes, no
		n.Res.SimBelow = true
		n.Res.CILeft, n.Res.CIRight = child.CILeft, child.CIRight
		n.Res.MaxObs = child.MaxObs
		n.Res.Confidence = child.Confidence

		return nil
	}

	spec := n.Spec
	if child.ErrorPerState != nil {
		n.Res.Yes = compare.FoldPerState(child.ProbReward, spec, child.ErrorPerState)
	} else {
		n.Res.Yes = compare.FoldUniform(child.ProbReward, spec, child.ErrorScalar)
	}
	n.Res.SimBelow = child.sim()

	return nil
}
