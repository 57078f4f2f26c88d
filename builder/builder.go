package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mc-eval/chain"
)

// Sentinel errors returned by Constructors and BuildChain.
var (
	// ErrTooFewStates indicates a topology was asked for fewer states than
	// it needs to be well-defined (e.g. Cycle(2)).
	ErrTooFewStates = errors.New("builder: too few states")

	// ErrConstructFailed wraps a nil Constructor passed to BuildChain.
	ErrConstructFailed = errors.New("builder: nil constructor")
)

// Constructor mutates a fresh chain.Chain according to cfg. BuildChain runs
// each Constructor in order and freezes the result once every Constructor
// has returned without error.
type Constructor func(c *chain.Chain, cfg builderConfig) error

// BuildChain creates a chain.Chain of the given kind, resolves opts into a
// builderConfig, runs every Constructor against it in order, and freezes
// the chain before returning it.
func BuildChain(kind chain.Kind, opts []BuilderOption, cons ...Constructor) (*chain.Chain, error) {
	c := chain.NewChain(kind)
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildChain: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(c, cfg); err != nil {
			return nil, fmt.Errorf("BuildChain: %w", err)
		}
	}

	if err := c.Freeze(); err != nil {
		return nil, fmt.Errorf("BuildChain: %w", err)
	}

	return c, nil
}

// emitEdges adds one outgoing transition from `from` to each state in `tos`,
// in order. For DTMC/DMRM chains, Freeze requires each state's outgoing
// weights to sum to 1, so the edges split a uniform distribution; for
// CTMC/CMRM/CTMDPI chains each edge instead draws an independent rate from
// cfg.weightFn, since Freeze places no sum constraint on those kinds.
func emitEdges(c *chain.Chain, cfg builderConfig, from string, tos []string) error {
	if len(tos) == 0 {
		return nil
	}
	if c.Kind() == chain.DTMC || c.Kind() == chain.DMRM {
		p := 1.0 / float64(len(tos))
		for _, to := range tos {
			if err := c.AddTransition(from, to, p, 0, ""); err != nil {
				return err
			}
		}

		return nil
	}
	for _, to := range tos {
		if err := c.AddTransition(from, to, cfg.weightFn(cfg.rng), 0, ""); err != nil {
			return err
		}
	}

	return nil
}
