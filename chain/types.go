package chain

import (
	"errors"
	"sync"
)

// Sentinel errors for chain construction and lookup.
var (
	// ErrEmptyStateID indicates a state was added with an empty identifier.
	ErrEmptyStateID = errors.New("chain: state ID is empty")

	// ErrStateNotFound indicates an operation referenced a non-existent state.
	ErrStateNotFound = errors.New("chain: state not found")

	// ErrDuplicateState indicates AddState was called twice for the same ID.
	ErrDuplicateState = errors.New("chain: duplicate state")

	// ErrNegativeRate indicates a transition was added with a negative rate
	// or probability, which is never meaningful for a Markov chain.
	ErrNegativeRate = errors.New("chain: negative rate or probability")

	// ErrBadProbability indicates a DTMC/DMRM chain's outgoing probabilities
	// do not sum to (approximately) 1 once Freeze validates the chain.
	ErrBadProbability = errors.New("chain: outgoing probabilities do not sum to 1")
)

// Kind names the model class a Chain represents. The evaluator's run-mode
// validity matrix (formula package, C6) is keyed by this type.
type Kind int

const (
	// DTMC is a discrete-time Markov chain: Weight holds a transition
	// probability, and each state's outgoing probabilities must sum to 1.
	DTMC Kind = iota
	// CTMC is a continuous-time Markov chain: Weight holds a transition rate.
	CTMC
	// DMRM is a DTMC extended with per-state and per-transition rewards.
	DMRM
	// CMRM is a CTMC extended with per-state and per-transition rewards.
	CMRM
	// CTMDPI is a CTMC with internal nondeterminism: states additionally
	// branch over named Actions, each action carrying its own outgoing rates.
	CTMDPI
)

// String renders the Kind the way log fields and error messages expect.
func (k Kind) String() string {
	switch k {
	case DTMC:
		return "DTMC"
	case CTMC:
		return "CTMC"
	case DMRM:
		return "DMRM"
	case CMRM:
		return "CMRM"
	case CTMDPI:
		return "CTMDPI"
	default:
		return "UNKNOWN"
	}
}

// State is a single state of the chain. Reward is meaningful only for DMRM
// and CMRM chains (state/impulse reward used by the E/C/Y operators).
type State struct {
	ID     string
	Reward float64
}

// Transition is a directed edge between two states. Weight is a transition
// probability for DTMC/DMRM chains or a rate for CTMC/CMRM chains. Action is
// empty except on CTMDPI chains, where it names the nondeterministic choice
// this transition belongs to; Reward is the transition (impulse) reward for
// DMRM/CMRM chains.
type Transition struct {
	From   string
	To     string
	Weight float64
	Reward float64
	Action string
}

// Chain is the state space for one model-checking run. It is built with
// AddState/AddTransition and then Freeze'd, which assigns a deterministic
// 0..N-1 index to every state (ascending by ID, for deterministic
// iteration) and caches row sums so RowSums() only copies them afterwards.
type Chain struct {
	mu   sync.RWMutex
	kind Kind

	states      map[string]*State
	outgoing    map[string][]*Transition
	frozen      bool
	index       map[string]int // state ID -> 0..N-1, valid after Freeze
	order       []string       // index -> state ID
	rowSums     []float64
	mdpiActions map[string][]string // state ID -> sorted distinct actions, CTMDPI only
	mdpiCount   int
}

// NewChain constructs an empty Chain of the given Kind.
func NewChain(kind Kind) *Chain {
	return &Chain{
		kind:     kind,
		states:   make(map[string]*State),
		outgoing: make(map[string][]*Transition),
	}
}

// Kind returns the chain's model class.
func (c *Chain) Kind() Kind {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.kind
}
