package builder

import (
	"fmt"

	"github.com/katalvlaran/mc-eval/chain"
)

const methodRandomSparse = "RandomSparse"

// RandomSparse returns a Constructor building an n-state chain where every
// ordered pair (i,j), i != j, gets an edge independently with probability
// cfg.edgeProb, drawn from cfg.rng. A state left with no outgoing edge gets
// a self-loop so Freeze's DTMC/DMRM row-sum check never sees an empty row.
// n must be at least 2; reproducing a run requires carrying over WithSeed.
func RandomSparse(n int) Constructor {
	return func(c *chain.Chain, cfg builderConfig) error {
		if n < minNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minNodes, ErrTooFewStates)
		}
		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			if err := c.AddState(ids[i], 0); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			tos := make([]string, 0, n-1)
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if cfg.rng.Float64() < cfg.edgeProb {
					tos = append(tos, ids[j])
				}
			}
			if len(tos) == 0 {
				tos = []string{ids[i]}
			}
			if err := emitEdges(c, cfg, ids[i], tos); err != nil {
				return err
			}
		}

		return nil
	}
}
