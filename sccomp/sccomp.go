package sccomp

import (
	"errors"
	"sort"

	"github.com/katalvlaran/mc-eval/bitset"
	"github.com/katalvlaran/mc-eval/chain"
)

// ErrChainNil is returned by Decompose and BSCCs when the chain is nil.
var ErrChainNil = errors.New("sccomp: chain is nil")

// ErrNotFrozen is returned when the chain has not been frozen yet; indices
// and row sums are only valid after chain.Chain.Freeze.
var ErrNotFrozen = errors.New("sccomp: chain is not frozen")

// Component is one strongly connected component, as a sorted slice of
// 0..N-1 state indices.
type Component struct {
	States []int
}

// tarjan holds the mutable state of one Tarjan run.
type tarjan struct {
	c        *chain.Chain
	index    []int
	lowlink  []int
	onStack  []bool
	stack    []int
	counter  int
	comps    []Component
}

// Decompose runs Tarjan's algorithm over c's state graph and returns every
// strongly connected component (singleton components included), in an
// order matching the reverse topological order of the component DAG — the
// order Tarjan naturally produces.
func Decompose(c *chain.Chain) ([]Component, error) {
	if c == nil {
		return nil, ErrChainNil
	}
	n := c.NumStates()
	if n == 0 {
		return nil, ErrNotFrozen
	}

	t := &tarjan{
		c:       c,
		index:   make([]int, n),
		lowlink: make([]int, n),
		onStack: make([]bool, n),
	}
	for i := range t.index {
		t.index[i] = -1
	}

	for v := 0; v < n; v++ {
		if t.index[v] == -1 {
			t.strongconnect(v)
		}
	}

	return t.comps, nil
}

func (t *tarjan) strongconnect(v int) {
	t.index[v] = t.counter
	t.lowlink[v] = t.counter
	t.counter++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	id := t.c.StateID(v)
	for _, tr := range t.c.Successors(id) {
		w, ok := t.c.Index(tr.To)
		if !ok {
			continue
		}
		switch {
		case t.index[w] == -1:
			t.strongconnect(w)
			if t.lowlink[w] < t.lowlink[v] {
				t.lowlink[v] = t.lowlink[w]
			}
		case t.onStack[w]:
			if t.index[w] < t.lowlink[v] {
				t.lowlink[v] = t.index[w]
			}
		}
	}

	if t.lowlink[v] == t.index[v] {
		var comp []int
		for {
			w := t.stack[len(t.stack)-1]
			t.stack = t.stack[:len(t.stack)-1]
			t.onStack[w] = false
			comp = append(comp, w)
			if w == v {
				break
			}
		}
		sort.Ints(comp)
		t.comps = append(t.comps, Component{States: comp})
	}
}

// BSCCs returns the bottom strongly connected components of c: components
// with no edge leading to a state outside the component. A chain with N
// states always has at least one BSCC (a finite graph cannot have every
// component lead forever outward).
func BSCCs(c *chain.Chain) ([]Component, error) {
	comps, err := Decompose(c)
	if err != nil {
		return nil, err
	}

	compOf := make(map[int]int, c.NumStates())
	for ci, comp := range comps {
		for _, v := range comp.States {
			compOf[v] = ci
		}
	}

	isBottom := make([]bool, len(comps))
	for i := range isBottom {
		isBottom[i] = true
	}
	for ci, comp := range comps {
		for _, v := range comp.States {
			id := c.StateID(v)
			for _, tr := range c.Successors(id) {
				w, ok := c.Index(tr.To)
				if !ok {
					continue
				}
				if compOf[w] != ci {
					isBottom[ci] = false
				}
			}
		}
	}

	var out []Component
	for ci, comp := range comps {
		if isBottom[ci] {
			out = append(out, comp)
		}
	}

	return out, nil
}

// AcceptingStates unions every BSCC all of whose states satisfy the atomic
// predicate phi — the standard CSL/PCTL steady-state semantics: a run
// "accepts" only once it settles into a bottom component that entirely
// satisfies phi, not merely touches it. This is the BSCCFunc the
// steady-state hybrid dispatch (formula package, C6) wires into the
// statistical engine.
func AcceptingStates(c *chain.Chain, phi *bitset.Set) (*bitset.Set, error) {
	bsccs, err := BSCCs(c)
	if err != nil {
		return nil, err
	}

	out := bitset.Zero(c.NumStates())
	for _, comp := range bsccs {
		all := true
		if phi != nil {
			for _, v := range comp.States {
				if !phi.Test(v) {
					all = false
					break
				}
			}
		}
		if all {
			for _, v := range comp.States {
				out.SetBit(v)
			}
		}
	}

	return out, nil
}
