package builder

import (
	"fmt"

	"github.com/katalvlaran/mc-eval/chain"
)

const (
	methodCycle = "Cycle"
	methodPath  = "Path"
	minNodes    = 2
)

// Cycle returns a Constructor building an n-state simple cycle: state i
// transitions to state (i+1)%n. n must be at least 2.
func Cycle(n int) Constructor {
	return func(c *chain.Chain, cfg builderConfig) error {
		if n < minNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minNodes, ErrTooFewStates)
		}
		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			if err := c.AddState(ids[i], 0); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			if err := emitEdges(c, cfg, ids[i], []string{ids[(i+1)%n]}); err != nil {
				return err
			}
		}

		return nil
	}
}

// Path returns a Constructor building an n-state path 0 -> 1 -> ... -> n-1,
// where the final state is absorbing (self-loop). n must be at least 2.
func Path(n int) Constructor {
	return func(c *chain.Chain, cfg builderConfig) error {
		if n < minNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minNodes, ErrTooFewStates)
		}
		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			if err := c.AddState(ids[i], 0); err != nil {
				return err
			}
		}
		for i := 0; i < n-1; i++ {
			if err := emitEdges(c, cfg, ids[i], []string{ids[i+1]}); err != nil {
				return err
			}
		}
		if err := emitEdges(c, cfg, ids[n-1], []string{ids[n-1]}); err != nil {
			return err
		}

		return nil
	}
}
