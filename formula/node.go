package formula

import "github.com/katalvlaran/mc-eval/compare"

// NodeKind tags every concrete node variant.
type NodeKind int

const (
	KindTT NodeKind = iota
	KindFF
	KindAP
	KindNeg
	KindParen
	KindAnd
	KindOr
	KindImplies
	KindNextUnb
	KindNextTime
	KindNextTimeReward
	KindUntilUnb
	KindUntilTime
	KindUntilTimeReward
	KindLongRun
	KindSteadyState
	KindExpectedRR // E
	KindInstantR   // C
	KindExpectedAR // Y
	KindComparator
)

// Node is any formula-tree node. Result returns a mutable pointer to this
// node's own Result record: every variant embeds one, so callers never
// need type-specific accessors to read or write a node's outputs.
type Node interface {
	Result() *Result
	NodeKind() NodeKind
}

// AtomicNode is TT / FF / AP(label).
type AtomicNode struct {
	Res   Result
	Kind  NodeKind // KindTT, KindFF, or KindAP
	Label string   // populated only for KindAP
}

func (n *AtomicNode) Result() *Result      { return &n.Res }
func (n *AtomicNode) NodeKind() NodeKind    { return n.Kind }

// UnaryBoolNode is NEG or PAREN.
type UnaryBoolNode struct {
	Res   Result
	Kind  NodeKind // KindNeg or KindParen
	Child Node
}

func (n *UnaryBoolNode) Result() *Result   { return &n.Res }
func (n *UnaryBoolNode) NodeKind() NodeKind { return n.Kind }

// BinaryBoolNode is AND, OR, or IMPLIES.
type BinaryBoolNode struct {
	Res         Result
	Kind        NodeKind // KindAnd, KindOr, or KindImplies
	Left, Right Node
}

func (n *BinaryBoolNode) Result() *Result   { return &n.Res }
func (n *BinaryBoolNode) NodeKind() NodeKind { return n.Kind }

// NextNode is the Next operator: UNB / TIME / TIME_REWARD.
type NextNode struct {
	Res    Result
	Kind   NodeKind // KindNextUnb, KindNextTime, or KindNextTimeReward
	Child  Node
	T1, T2 float64
	R1, R2 float64
}

func (n *NextNode) Result() *Result   { return &n.Res }
func (n *NextNode) NodeKind() NodeKind { return n.Kind }

// UntilNode is the Until operator: UNB / TIME / TIME_REWARD. Cmp
// is the enclosing Comparator that supplies the probability threshold
// needed for statistical evaluation.
type UntilNode struct {
	Res      Result
	Kind     NodeKind // KindUntilUnb, KindUntilTime, or KindUntilTimeReward
	Phi, Psi Node
	T1, T2   float64
	R1, R2   float64
	Cmp      *ComparatorNode
}

func (n *UntilNode) Result() *Result   { return &n.Res }
func (n *UntilNode) NodeKind() NodeKind { return n.Kind }

// LongSteadyNode is LONG_RUN or STEADY_STATE.
type LongSteadyNode struct {
	Res   Result
	Kind  NodeKind // KindLongRun or KindSteadyState
	Child Node
	Cmp   *ComparatorNode
}

func (n *LongSteadyNode) Result() *Result   { return &n.Res }
func (n *LongSteadyNode) NodeKind() NodeKind { return n.Kind }

// PureRewardNode is E, C, or Y. Epoch is the integer reward
// epoch (0 meaning long-run rate for E).
type PureRewardNode struct {
	Res   Result
	Kind  NodeKind // KindExpectedRR, KindInstantR, or KindExpectedAR
	Child Node
	Epoch int
}

func (n *PureRewardNode) Result() *Result   { return &n.Res }
func (n *PureRewardNode) NodeKind() NodeKind { return n.Kind }

// ComparatorNode wraps a probabilistic sub-operator with a threshold or
// interval.
type ComparatorNode struct {
	Res   Result
	Spec  compare.Spec
	Child Node
}

func (n *ComparatorNode) Result() *Result    { return &n.Res }
func (n *ComparatorNode) NodeKind() NodeKind { return KindComparator }
