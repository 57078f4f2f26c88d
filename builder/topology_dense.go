package builder

import (
	"fmt"

	"github.com/katalvlaran/mc-eval/chain"
)

const (
	methodComplete  = "Complete"
	methodStar      = "Star"
	methodBipartite = "Bipartite"
	minStarNodes    = 2
	minBipartNodes  = 1
)

// Complete returns a Constructor building the complete digraph K_n: every
// state transitions to every other state (no self-loops). n must be at
// least 2.
func Complete(n int) Constructor {
	return func(c *chain.Chain, cfg builderConfig) error {
		if n < minNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minNodes, ErrTooFewStates)
		}
		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			if err := c.AddState(ids[i], 0); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			others := make([]string, 0, n-1)
			for j := 0; j < n; j++ {
				if j != i {
					others = append(others, ids[j])
				}
			}
			if err := emitEdges(c, cfg, ids[i], others); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor building a star with one hub (index 0) and
// n-1 leaves: the hub transitions to every leaf and every leaf transitions
// back to the hub. n must be at least 2.
func Star(n int) Constructor {
	return func(c *chain.Chain, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewStates)
		}
		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			if err := c.AddState(ids[i], 0); err != nil {
				return err
			}
		}
		hub := ids[0]
		leaves := ids[1:]
		if err := emitEdges(c, cfg, hub, leaves); err != nil {
			return err
		}
		for _, leaf := range leaves {
			if err := emitEdges(c, cfg, leaf, []string{hub}); err != nil {
				return err
			}
		}

		return nil
	}
}

// Bipartite returns a Constructor building the complete bipartite digraph
// K_{m,n}: every state in partition A (labeled cfg.prefixA+i) transitions to
// every state in partition B (labeled cfg.prefixB+j), and vice versa. m and
// n must each be at least 1.
func Bipartite(m, n int) Constructor {
	return func(c *chain.Chain, cfg builderConfig) error {
		if m < minBipartNodes || n < minBipartNodes {
			return fmt.Errorf("%s: m=%d n=%d < min=%d: %w", methodBipartite, m, n, minBipartNodes, ErrTooFewStates)
		}
		as := make([]string, m)
		bs := make([]string, n)
		for i := 0; i < m; i++ {
			as[i] = fmt.Sprintf("%s%d", cfg.prefixA, i)
			if err := c.AddState(as[i], 0); err != nil {
				return err
			}
		}
		for j := 0; j < n; j++ {
			bs[j] = fmt.Sprintf("%s%d", cfg.prefixB, j)
			if err := c.AddState(bs[j], 0); err != nil {
				return err
			}
		}
		for _, a := range as {
			if err := emitEdges(c, cfg, a, bs); err != nil {
				return err
			}
		}
		for _, b := range bs {
			if err := emitEdges(c, cfg, b, as); err != nil {
				return err
			}
		}

		return nil
	}
}
