package formula

import (
	"github.com/katalvlaran/mc-eval/bitset"
	"github.com/katalvlaran/mc-eval/mcctx"
)

// evalAtomic implements C5: TT / FF / AP(label) into a yes-set.
//
// TT is an all-ones bitset of length N; FF is all-zeros; AP(label) is a
// *copy* of the label service's bitset (never a borrow, so the node can be freed on the normal post-order schedule). An unknown
// label yields an empty set, never an error.
func evalAtomic(ctx *mcctx.Context, n *AtomicNode) error {
	size := ctx.Space.NumStates()

	switch n.Kind {
	case KindTT:
		n.Res.Yes = bitset.One(size)
	case KindFF:
		n.Res.Yes = bitset.Zero(size)
	case KindAP:
		if b, ok := ctx.Labels.Label(n.Label); ok {
			n.Res.Yes = b.Clone()
		} else {
			n.Res.Yes = bitset.Zero(size)
		}
	default:
		return ErrUnknownKind
	}
	n.Res.Size = size

	return nil
}
