package formula

import (
	"github.com/katalvlaran/mc-eval/bitset"
	"github.com/katalvlaran/mc-eval/chain"
	"github.com/katalvlaran/mc-eval/compare"
	"github.com/katalvlaran/mc-eval/mcctx"
)

// opName returns a human-readable operator name for error messages and
// KernelError's contextual naming.
func opName(kind NodeKind) string {
	switch kind {
	case KindNextUnb:
		return "Next(UNB)"
	case KindNextTime:
		return "Next(TIME)"
	case KindNextTimeReward:
		return "Next(TIME_REWARD)"
	case KindUntilUnb:
		return "Until(UNB)"
	case KindUntilTime:
		return "Until(TIME)"
	case KindUntilTimeReward:
		return "Until(TIME_REWARD)"
	case KindLongRun:
		return "LongRun(L)"
	case KindSteadyState:
		return "Steady(S)"
	case KindExpectedRR:
		return "E"
	case KindInstantR:
		return "C"
	case KindExpectedAR:
		return "Y"
	default:
		return "?"
	}
}

// validModes is the run-mode validity matrix.
var validModes = map[NodeKind]map[chain.Kind]bool{
	KindNextUnb:         {chain.DTMC: true, chain.CTMC: true, chain.DMRM: true, chain.CMRM: true},
	KindNextTime:        {chain.CTMC: true, chain.CMRM: true},
	KindNextTimeReward:  {chain.CMRM: true},
	KindUntilUnb:        {chain.DTMC: true, chain.CTMC: true, chain.DMRM: true, chain.CMRM: true},
	KindUntilTime:       {chain.DTMC: true, chain.CTMC: true, chain.DMRM: true, chain.CMRM: true, chain.CTMDPI: true},
	KindUntilTimeReward: {chain.DMRM: true, chain.CMRM: true},
	KindSteadyState:     {chain.CTMC: true, chain.CMRM: true},
	KindLongRun:         {chain.DTMC: true, chain.DMRM: true, chain.CTMC: true, chain.CMRM: true},
	KindExpectedRR:      {chain.DMRM: true},
	KindInstantR:        {chain.DMRM: true},
	KindExpectedAR:      {chain.DMRM: true},
}

func isValidMode(kind NodeKind, mode chain.Kind) bool {
	return validModes[kind][mode]
}

// degrade installs the "degraded-but-total" zero-vector result
// for an operator invoked in an incompatible run mode: it records a
// user-visible mode-mismatch message and installs a zero vector of length
// size so downstream combinators still see a well-formed result and the
// walk continues.
func degrade(ctx *mcctx.Context, kind NodeKind, size int) *Result {
	ctx.Warn(opName(kind), ctx.RunMode.String())

	return &Result{
		ProbReward:  make([]float64, size),
		Size:        size,
		ErrorScalar: 0,
	}
}

// evalNext implements C6 dispatch for the Next operator.
func evalNext(ctx *mcctx.Context, n *NextNode) error {
	if n.Child == nil {
		return ErrNilChild
	}
	size := ctx.Space.NumStates()
	if !isValidMode(n.Kind, ctx.RunMode) {
		res := degrade(ctx, n.Kind, size)
		n.Res = *res

		return nil
	}

	phi := n.Child.Result().Yes

	if n.Kind == KindNextTimeReward {
		vec, err := ctx.Kernels.NextRewards(phi, n.T1, n.T2, n.R1, n.R2)
		if vec == nil {
			return wrapKernelNil(err, "Next(TIME_REWARD)", size, n.T1, n.T2, n.R1, n.R2)
		}
		n.Res.ProbReward = vec
		n.Res.Size = size
		n.Res.ErrorScalar = ctx.ErrorBound

		return nil
	}

	form := mcctx.Unbounded
	if n.Kind == KindNextTime {
		form = mcctx.Interval
	}
	vec, err := ctx.Kernels.Next(phi, form, n.T1, n.T2)
	if vec == nil {
		return wrapKernelNil(err, opName(n.Kind), size, n.T1, n.T2, 0, 0)
	}
	n.Res.ProbReward = vec
	n.Res.Size = size
	n.Res.ErrorScalar = ctx.ErrorBound

	return nil
}

// evalUntil implements C6 dispatch for the Until operator, including the
// CTMDPI Φ=tt restriction and the
// statistical/numerical mode split.
func evalUntil(ctx *mcctx.Context, n *UntilNode) error {
	if n.Phi == nil || n.Psi == nil {
		return ErrNilChild
	}
	size := ctx.Space.NumStates()

	if ctx.RunMode == chain.CTMDPI {
		size = ctx.Space.NumStatesMDPI()
	}

	if !isValidMode(n.Kind, ctx.RunMode) {
		res := degrade(ctx, n.Kind, size)
		n.Res = *res

		return nil
	}

	phi := n.Phi.Result().Yes
	psi := n.Psi.Result().Yes

	if ctx.RunMode == chain.CTMDPI {
		if n.Kind != KindUntilTime || !isAtomicTT(n.Phi) {
			n.Res.ProbReward = make([]float64, size)
			n.Res.Size = size
			n.Res.ErrorScalar = 0

			return nil
		}
	}

	if ctx.SimHere && n.Kind != KindUntilTimeReward {
		return evalUntilStatistical(ctx, n, phi, psi, size)
	}

	return evalUntilNumeric(ctx, n, phi, psi, size)
}

func isAtomicTT(n Node) bool {
	a, ok := n.(*AtomicNode)

	return ok && a.Kind == KindTT
}

func evalUntilStatistical(ctx *mcctx.Context, n *UntilNode, phi, psi *bitset.Set, size int) error {
	var spec compare.Spec
	if n.Cmp != nil {
		spec = n.Cmp.Spec
	}

	var (
		res *mcctx.StatResult
		err error
	)
	switch n.Kind {
	case KindUntilUnb:
		res, err = ctx.Stats.UnboundedUntil(phi, psi, spec, ctx.InitialState, ctx.SingleInitOnly)
	case KindUntilTime:
		res, err = ctx.Stats.TimeIntervalUntil(phi, psi, n.T1, n.T2, spec, ctx.InitialState, ctx.SingleInitOnly)
	default:
		return ErrUnknownKind
	}
	if err != nil || res == nil {
		return &KernelError{Op: opName(n.Kind), Sizes: []int{size}, T1: n.T1, T2: n.T2}
	}

	n.Res.Yes, n.Res.No = res.Yes, res.No
	n.Res.CILeft, n.Res.CIRight = res.CILeft, res.CIRight
	n.Res.MaxObs = res.MaxObs
	n.Res.Size = size
	n.Res.SimHere = true
	n.Res.Confidence = ctx.Confidence

	return nil
}

func evalUntilNumeric(ctx *mcctx.Context, n *UntilNode, phi, psi *bitset.Set, size int) error {
	switch n.Kind {
	case KindUntilTimeReward:
		vec, errPerState, err := ctx.Kernels.UntilRewards(phi, psi, n.T1, n.T2, n.R1, n.R2, false)
		if vec == nil {
			return wrapKernelNil(err, opName(n.Kind), size, n.T1, n.T2, n.R1, n.R2)
		}
		n.Res.ProbReward = vec
		n.Res.ErrorPerState = errPerState
		n.Res.ErrorScalar = ctx.ErrorBound
	default:
		form := mcctx.Unbounded
		if n.Kind == KindUntilTime {
			form = mcctx.Interval
		}
		vec, err := ctx.Kernels.Until(phi, psi, form, n.T1, n.T2, false)
		if vec == nil {
			return wrapKernelNil(err, opName(n.Kind), size, n.T1, n.T2, 0, 0)
		}
		n.Res.ProbReward = vec
		n.Res.ErrorScalar = ctx.ErrorBound
	}
	n.Res.Size = size

	return nil
}

// evalLongSteady implements C6 dispatch for Steady(S) and LongRun(L),
// including the hybrid/pure steady-state mode selection.
// A statistical engine call never
// overwrites ErrorScalar — its confidence interval is assumed to already
// absorb the internal numerical error.
func evalLongSteady(ctx *mcctx.Context, n *LongSteadyNode) error {
	if n.Child == nil {
		return ErrNilChild
	}
	size := ctx.Space.NumStates()
	if !isValidMode(n.Kind, ctx.RunMode) {
		res := degrade(ctx, n.Kind, size)
		n.Res = *res

		return nil
	}

	phi := n.Child.Result().Yes
	statEligible := ctx.RunMode == chain.CTMC || ctx.RunMode == chain.CMRM

	if ctx.SimHere && statEligible {
		var spec compare.Spec
		if n.Cmp != nil {
			spec = n.Cmp.Spec
		}

		if ctx.BSCC == nil || (ctx.SteadyMode == mcctx.Pure && (ctx.ExistUntil == nil || ctx.AlwaysUntil == nil)) {
			return &KernelError{Op: opName(n.Kind), Sizes: []int{size}}
		}

		var (
			res *mcctx.StatResult
			err error
		)
		switch ctx.SteadyMode {
		case mcctx.Hybrid:
			numericUntil := func(p, q *bitset.Set) ([]float64, error) {
				return ctx.Kernels.Until(p, q, mcctx.Unbounded, 0, 0, true)
			}
			res, err = ctx.Stats.SteadyStateHybrid(phi, numericUntil, bsccCallback(ctx), spec, ctx.InitialState, ctx.SingleInitOnly)
		case mcctx.Pure:
			exist, always := reachabilityCallbacks(ctx, phi)
			res, err = ctx.Stats.SteadyStatePure(phi, exist, always, bsccCallback(ctx), spec, ctx.InitialState, ctx.SingleInitOnly)
		}
		if err != nil || res == nil {
			return &KernelError{Op: opName(n.Kind), Sizes: []int{size}}
		}
		n.Res.Yes, n.Res.No = res.Yes, res.No
		n.Res.CILeft, n.Res.CIRight = res.CILeft, res.CIRight
		n.Res.MaxObs = res.MaxObs
		n.Res.Size = size
		n.Res.SimHere = true
		n.Res.Confidence = ctx.Confidence

		return nil
	}

	vec, err := ctx.Kernels.Steady(phi)
	if vec == nil {
		return wrapKernelNil(err, opName(n.Kind), size, 0, 0, 0, 0)
	}
	n.Res.ProbReward = vec
	n.Res.Size = size
	n.Res.ErrorScalar = ctx.ErrorBound

	return nil
}

// bsccCallback and reachabilityCallbacks read the callbacks from the
// Context fields; when those are absent (a caller configuration error),
// evalLongSteady reports a kernel failure before reaching here rather than
// panicking on a nil function.
func bsccCallback(ctx *mcctx.Context) mcctx.BSCCFunc {
	return ctx.BSCC
}

func reachabilityCallbacks(ctx *mcctx.Context, phi *bitset.Set) (mcctx.ReachabilityFunc, mcctx.ReachabilityFunc) {
	return ctx.ExistUntil(phi), ctx.AlwaysUntil(phi)
}

// evalPureReward implements C6 dispatch for E/C/Y.
func evalPureReward(ctx *mcctx.Context, n *PureRewardNode) error {
	if n.Child == nil {
		return ErrNilChild
	}
	size := ctx.Space.NumStates()
	if !isValidMode(n.Kind, ctx.RunMode) {
		res := degrade(ctx, n.Kind, size)
		n.Res = *res

		return nil
	}

	phi := n.Child.Result().Yes

	var (
		vec []float64
		err error
	)
	switch n.Kind {
	case KindExpectedRR:
		vec, err = ctx.Kernels.EF(n.Epoch, phi)
	case KindInstantR:
		vec, err = ctx.Kernels.CF(n.Epoch, phi)
	case KindExpectedAR:
		vec, err = ctx.Kernels.YF(n.Epoch, phi)
	default:
		return ErrUnknownKind
	}
	if vec == nil {
		return wrapKernelNil(err, opName(n.Kind), size, 0, 0, 0, 0)
	}
	n.Res.ProbReward = vec
	n.Res.Size = size
	n.Res.ErrorScalar = ctx.ErrorBound

	return nil
}

func wrapKernelNil(cause error, op string, size int, t1, t2, r1, r2 float64) error {
	_ = cause

	return &KernelError{Op: op, Sizes: []int{size}, T1: t1, T2: t2, R1: r1, R2: r2}
}
