package compare

import "github.com/katalvlaran/mc-eval/bitset"

// Op names a comparator operator. Interval carries both Bound and Bound2;
// all others use Bound alone.
type Op int

const (
	Lt Op = iota
	Le
	Gt
	Ge
	Interval
)

// String renders Op for diagnostics (error messages, logging).
func (o Op) String() string {
	switch o {
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	case Ge:
		return ">="
	case Interval:
		return "INTERVAL"
	default:
		return "UNKNOWN"
	}
}

// Spec is a comparator operator plus its bound(s): Bound alone for Lt/Le/Gt/Ge,
// [Bound, Bound2] for Interval.
type Spec struct {
	Op     Op
	Bound  float64
	Bound2 float64 // interval upper bound; unused otherwise
}

// isExact reports whether v is exactly 0.0 or 1.0.
func isExact(v float64) bool {
	return v == 0.0 || v == 1.0
}

// shifted returns the adjustment-rule-widened bound(s) for spec Op against
// error eps: > and >= shift down by eps, < and <= shift up by eps, and an
// interval widens on both ends.
func shifted(s Spec, eps float64) Spec {
	switch s.Op {
	case Gt, Ge:
		return Spec{Op: s.Op, Bound: s.Bound - eps}
	case Lt, Le:
		return Spec{Op: s.Op, Bound: s.Bound + eps}
	case Interval:
		return Spec{Op: s.Op, Bound: s.Bound - eps, Bound2: s.Bound2 + eps}
	default:
		return s
	}
}

// holds evaluates s (already shifted or not) against v.
func holds(s Spec, v float64) bool {
	switch s.Op {
	case Lt:
		return v < s.Bound
	case Le:
		return v <= s.Bound
	case Gt:
		return v > s.Bound
	case Ge:
		return v >= s.Bound
	case Interval:
		return v >= s.Bound && v <= s.Bound2
	default:
		return false
	}
}

// FoldUniform folds vector v through Spec using a single scalar error eps,
// applying the exact-0/1 bypass: values exactly equal to 0.0 or 1.0 are
// compared against the unshifted bound even when eps > 0; all other values
// use the eps-shifted bound. eps == 0 always uses the unshifted bound.
// Returns the yes-set of length len(v).
func FoldUniform(v []float64, s Spec, eps float64) *bitset.Set {
	out := bitset.Zero(len(v))
	wide := shifted(s, eps)
	for i, val := range v {
		var use Spec
		if eps > 0 && isExact(val) {
			use = s
		} else if eps == 0 {
			use = s
		} else {
			use = wide
		}
		if holds(use, val) {
			out.SetBit(i)
		}
	}

	return out
}

// FoldPerState folds vector v through Spec using a per-state error vector
// epsPerState (same length as v). Every state always uses the shifted bound,
// with no exact-0/1 bypass.
func FoldPerState(v []float64, s Spec, epsPerState []float64) *bitset.Set {
	out := bitset.Zero(len(v))
	for i, val := range v {
		use := shifted(s, epsPerState[i])
		if holds(use, val) {
			out.SetBit(i)
		}
	}

	return out
}
