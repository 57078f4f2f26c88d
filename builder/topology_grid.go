package builder

import (
	"fmt"

	"github.com/katalvlaran/mc-eval/chain"
)

const methodGrid = "Grid"

// Grid returns a Constructor building a rows x cols grid, each cell
// transitioning to its right and down neighbors (a boundary cell that has
// neither gets a self-loop). Cells are labeled by cfg.idFn(row*cols+col).
// rows and cols must each be at least 1.
func Grid(rows, cols int) Constructor {
	return func(c *chain.Chain, cfg builderConfig) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("%s: rows=%d cols=%d: %w", methodGrid, rows, cols, ErrTooFewStates)
		}
		n := rows * cols
		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			if err := c.AddState(ids[i], 0); err != nil {
				return err
			}
		}
		for r := 0; r < rows; r++ {
			for col := 0; col < cols; col++ {
				idx := r*cols + col
				var tos []string
				if col+1 < cols {
					tos = append(tos, ids[r*cols+col+1])
				}
				if r+1 < rows {
					tos = append(tos, ids[(r+1)*cols+col])
				}
				if len(tos) == 0 {
					tos = []string{ids[idx]}
				}
				if err := emitEdges(c, cfg, ids[idx], tos); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
