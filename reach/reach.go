package reach

import (
	"errors"

	"github.com/katalvlaran/mc-eval/bitset"
	"github.com/katalvlaran/mc-eval/chain"
)

// ErrChainNil is returned when c is nil.
var ErrChainNil = errors.New("reach: chain is nil")

// Exist computes, for every state, whether some path exists from it to a
// state in target (BFS over reversed edges from target, "can eventually
// reach").
func Exist(c *chain.Chain, target *bitset.Set) (*bitset.Set, error) {
	if c == nil {
		return nil, ErrChainNil
	}
	n := c.NumStates()
	out := bitset.Zero(n)

	// Reverse BFS from every target state marks everything that can reach it.
	rev := reverseEdges(c)
	visited := make([]bool, n)
	var queue []int
	for i := 0; i < n; i++ {
		if target != nil && target.Test(i) {
			visited[i] = true
			out.SetBit(i)
			queue = append(queue, i)
		}
	}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, u := range rev[v] {
			if !visited[u] {
				visited[u] = true
				out.SetBit(u)
				queue = append(queue, u)
			}
		}
	}

	return out, nil
}

// Always computes, for every state, whether every path from it eventually
// reaches target (i.e. no path avoids target forever). It is computed as a
// least fixpoint: a state satisfies Always if it is in target, or if it is
// non-absorbing and every successor satisfies Always.
func Always(c *chain.Chain, target *bitset.Set) (*bitset.Set, error) {
	if c == nil {
		return nil, ErrChainNil
	}
	n := c.NumStates()
	result := bitset.Zero(n)
	for i := 0; i < n; i++ {
		if target != nil && target.Test(i) {
			result.SetBit(i)
		}
	}

	// Iterate to a fixpoint: a state not yet in result joins it once every
	// successor is in result and it has at least one successor.
	changed := true
	for changed {
		changed = false
		for v := 0; v < n; v++ {
			if result.Test(v) {
				continue
			}
			id := c.StateID(v)
			succ := c.Successors(id)
			if len(succ) == 0 {
				continue
			}
			all := true
			for _, tr := range succ {
				w, ok := c.Index(tr.To)
				if !ok || !result.Test(w) {
					all = false
					break
				}
			}
			if all {
				result.SetBit(v)
				changed = true
			}
		}
	}

	return result, nil
}

func reverseEdges(c *chain.Chain) [][]int {
	n := c.NumStates()
	rev := make([][]int, n)
	for v := 0; v < n; v++ {
		id := c.StateID(v)
		for _, tr := range c.Successors(id) {
			w, ok := c.Index(tr.To)
			if !ok {
				continue
			}
			rev[w] = append(rev[w], v)
		}
	}

	return rev
}

// ExistFunc and AlwaysFunc adapt Exist/Always to the mcctx.ReachabilityFunc
// signature the formula dispatcher builds for the "pure" steady-state
// engine: a per-state predicate closed over a precomputed result set.
func ExistFunc(c *chain.Chain, target *bitset.Set) (func(int) bool, error) {
	res, err := Exist(c, target)
	if err != nil {
		return nil, err
	}

	return func(state int) bool { return res.Test(state) }, nil
}

func AlwaysFunc(c *chain.Chain, target *bitset.Set) (func(int) bool, error) {
	res, err := Always(c, target)
	if err != nil {
		return nil, err
	}

	return func(state int) bool { return res.Test(state) }, nil
}
