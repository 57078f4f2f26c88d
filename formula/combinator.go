package formula

import (
	"github.com/katalvlaran/mc-eval/bitset"
	"github.com/katalvlaran/mc-eval/mcctx"
)

// evalUnary implements C4's unary rules: NEG and PAREN, in both evaluation
// modes.
func evalUnary(ctx *mcctx.Context, n *UnaryBoolNode) error {
	_ = ctx
	c := n.Child.Result()
	n.Res.Size = c.Size

	if c.sim() {
		switch n.Kind {
		case KindNeg:
			// NEG swaps yes and no, making fresh copies.
			n.Res.Yes = c.No.Clone()
			n.Res.No = c.Yes.Clone()
		case KindParen:
			n.Res.Yes = c.Yes.Clone()
			n.Res.No = c.No.Clone()
		default:
			return ErrUnknownKind
		}
		n.Res.SimBelow = true

		return nil
	}

	switch n.Kind {
	case KindNeg:
		n.Res.Yes = bitset.Not(c.Yes)
	case KindParen:
		n.Res.Yes = c.Yes.Clone()
	default:
		return ErrUnknownKind
	}

	return nil
}

// evalBinary implements C4's AND/OR/IMPLIES, selecting the numerical
// (single-set) or statistical (two-set) path.
func evalBinary(ctx *mcctx.Context, n *BinaryBoolNode) error {
	_ = ctx
	l := n.Left.Result()
	r := n.Right.Result()
	n.Res.Size = l.Size

	simL, simR := l.sim(), r.sim()
	if simL || simR {
		var yes, no *bitset.Set
		var err error
		switch n.Kind {
		case KindAnd:
			yes, no, err = twoSetAnd(l, r, simL, simR)
		case KindOr:
			yes, no, err = twoSetOr(l, r, simL, simR)
		case KindImplies:
			yes, no, err = twoSetImplies(l, r, simL, simR)
		default:
			return ErrUnknownKind
		}
		if err != nil {
			return err
		}
		n.Res.Yes, n.Res.No = yes, no
		n.Res.SimBelow = true

		return nil
	}

	switch n.Kind {
	case KindAnd:
		n.Res.Yes = bitset.And(l.Yes, r.Yes)
	case KindOr:
		n.Res.Yes = bitset.Or(l.Yes, r.Yes)
	case KindImplies:
		// ¬L ∨ R, built without an extra allocation: tmp := ¬L, then
		// tmp := R ∨ tmp via OrInto(R, tmp).
		tmp := bitset.Not(l.Yes)
		bitset.OrInto(r.Yes, tmp)
		n.Res.Yes = tmp
	default:
		return ErrUnknownKind
	}

	return nil
}

// twoSetOr implements the statistical OR rule.
func twoSetOr(l, r *Result, simL, simR bool) (yes, no *bitset.Set, err error) {
	if !simL && !simR {
		return nil, nil, ErrTwoSetBothUnsimulated
	}
	yes = bitset.Or(l.Yes, r.Yes)
	switch {
	case simL && simR:
		no = bitset.And(l.No, r.No)
	case simL:
		no = bitset.Not(r.Yes)
		bitset.AndInto(l.No, no)
	case simR:
		no = bitset.Not(l.Yes)
		bitset.AndInto(r.No, no)
	}

	return yes, no, nil
}

// twoSetAnd implements the statistical AND rule: the dual of
// twoSetOr — intersect yes-sets, union no-sets.
func twoSetAnd(l, r *Result, simL, simR bool) (yes, no *bitset.Set, err error) {
	if !simL && !simR {
		return nil, nil, ErrTwoSetBothUnsimulated
	}
	yes = bitset.And(l.Yes, r.Yes)
	switch {
	case simL && simR:
		no = bitset.Or(l.No, r.No)
	case simL:
		no = bitset.Not(r.Yes)
		bitset.OrInto(l.No, no)
	case simR:
		no = bitset.Not(l.Yes)
		bitset.OrInto(r.No, no)
	}

	return yes, no, nil
}

// twoSetImplies implements IMPLIES as ¬L ∨ R:
// build ¬L's yes/no via the unary negation rule, then apply the two-set OR
// rule to (¬L, R). The temporary ¬L no-set is simply left to the garbage
// collector once twoSetOr has consumed it.
func twoSetImplies(l, r *Result, simL, simR bool) (yes, no *bitset.Set, err error) {
	var notL Result
	if simL {
		notL.Yes = l.No.Clone()
		notL.No = l.Yes.Clone()
	} else {
		notL.Yes = bitset.Not(l.Yes)
	}

	return twoSetOr(&notL, r, simL, simR)
}
