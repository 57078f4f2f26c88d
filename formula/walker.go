package formula

import "github.com/katalvlaran/mc-eval/mcctx"

// Eval walks the formula tree post-order (C7): every child is fully
// evaluated before its parent is visited, since every operator's result
// depends on its children's. It dispatches on the
// concrete node type, filling in n's own Result record in place.
//
// Eval is not re-entrant on a single node: a node's Result is computed
// exactly once. Calling Eval twice on the same tree re-walks every node and
// overwrites their Result records, which is safe but wasteful; callers
// evaluate a tree once per run.
func Eval(ctx *mcctx.Context, n Node) error {
	switch t := n.(type) {
	case *AtomicNode:
		return evalAtomic(ctx, t)

	case *UnaryBoolNode:
		if t.Child == nil {
			return ErrNilChild
		}
		if err := Eval(ctx, t.Child); err != nil {
			return err
		}

		return evalUnary(ctx, t)

	case *BinaryBoolNode:
		if t.Left == nil || t.Right == nil {
			return ErrNilChild
		}
		if err := Eval(ctx, t.Left); err != nil {
			return err
		}
		if err := Eval(ctx, t.Right); err != nil {
			return err
		}

		return evalBinary(ctx, t)

	case *NextNode:
		if t.Child == nil {
			return ErrNilChild
		}
		if err := Eval(ctx, t.Child); err != nil {
			return err
		}

		return evalNext(ctx, t)

	case *UntilNode:
		if t.Phi == nil || t.Psi == nil {
			return ErrNilChild
		}
		if err := Eval(ctx, t.Phi); err != nil {
			return err
		}
		if err := Eval(ctx, t.Psi); err != nil {
			return err
		}

		return evalUntil(ctx, t)

	case *LongSteadyNode:
		if t.Child == nil {
			return ErrNilChild
		}
		if err := Eval(ctx, t.Child); err != nil {
			return err
		}

		return evalLongSteady(ctx, t)

	case *PureRewardNode:
		if t.Child == nil {
			return ErrNilChild
		}
		if err := Eval(ctx, t.Child); err != nil {
			return err
		}

		return evalPureReward(ctx, t)

	case *ComparatorNode:
		if t.Child == nil {
			return ErrNilChild
		}
		// The Comparator's child is a probabilistic operator, not wired
		// through the Comparator itself (the Until/LongSteady nodes carry a
		// back-pointer to their enclosing Comparator — Cmp — so they can
		// read its Spec during statistical dispatch; see evalUntilStatistical
		// and evalLongSteady). Evaluating the child here still triggers the
		// normal post-order recursion.
		if err := Eval(ctx, t.Child); err != nil {
			return err
		}

		return evalComparator(ctx, t)

	default:
		return ErrUnknownKind
	}
}
