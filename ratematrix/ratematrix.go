package ratematrix

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/mc-eval/chain"
)

// ErrChainNil is returned by Build when c is nil.
var ErrChainNil = errors.New("ratematrix: chain is nil")

// ErrDimMismatch is returned by MatVec when the input vector's length does
// not equal the matrix's column count.
var ErrDimMismatch = errors.New("ratematrix: vector length mismatch")

// Matrix is a row-major CSR view: RowStart[i]..RowStart[i+1] indexes into
// Col/Val for state i's outgoing weights, in chain.Chain's index space.
type Matrix struct {
	N        int
	RowStart []int
	Col      []int
	Val      []float64
	RowSum   []float64
}

// Build constructs a CSR Matrix from c, which must already be frozen
// (chain.Chain.Freeze). Row i's entries are c.Successors(c.StateID(i)),
// read in insertion order.
func Build(c *chain.Chain) (*Matrix, error) {
	if c == nil {
		return nil, ErrChainNil
	}
	n := c.NumStates()

	m := &Matrix{
		N:        n,
		RowStart: make([]int, n+1),
		RowSum:   c.RowSums(),
	}

	for i := 0; i < n; i++ {
		id := c.StateID(i)
		succ := c.Successors(id)
		m.RowStart[i+1] = m.RowStart[i] + len(succ)
		for _, tr := range succ {
			j, ok := c.Index(tr.To)
			if !ok {
				return nil, fmt.Errorf("ratematrix: transition to unknown state %q", tr.To)
			}
			m.Col = append(m.Col, j)
			m.Val = append(m.Val, tr.Weight)
		}
	}

	return m, nil
}

// MatVec computes y = M * x, where M is this sparse matrix and x has
// length N.
func (m *Matrix) MatVec(x []float64) ([]float64, error) {
	if len(x) != m.N {
		return nil, fmt.Errorf("ratematrix: MatVec: %w (want %d, got %d)", ErrDimMismatch, m.N, len(x))
	}
	y := make([]float64, m.N)
	for i := 0; i < m.N; i++ {
		var sum float64
		for k := m.RowStart[i]; k < m.RowStart[i+1]; k++ {
			sum += m.Val[k] * x[m.Col[k]]
		}
		y[i] = sum
	}

	return y, nil
}

// Uniformized returns the embedded DTMC P = I + Q/lambda of this rate
// matrix under uniformization rate lambda (must be >= the maximum row
// sum). Used by kernels for CTMC/CMRM transient analysis.
func (m *Matrix) Uniformized(lambda float64) (*Matrix, error) {
	if lambda <= 0 {
		return nil, fmt.Errorf("ratematrix: Uniformized: non-positive lambda %v", lambda)
	}

	out := &Matrix{N: m.N, RowStart: make([]int, m.N+1)}
	for i := 0; i < m.N; i++ {
		diag := 1.0 - m.RowSum[i]/lambda
		rowVals := map[int]float64{i: diag}
		for k := m.RowStart[i]; k < m.RowStart[i+1]; k++ {
			rowVals[m.Col[k]] += m.Val[k] / lambda
		}
		cols := make([]int, 0, len(rowVals))
		for j := range rowVals {
			cols = append(cols, j)
		}
		sort.Ints(cols)
		for _, j := range cols {
			out.Col = append(out.Col, j)
			out.Val = append(out.Val, rowVals[j])
		}
		out.RowStart[i+1] = len(out.Col)
	}

	return out, nil
}
