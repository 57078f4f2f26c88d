// Package sccomp decomposes a chain.Chain's state graph into strongly
// connected components and identifies its bottom SCCs (BSCCs): components
// with no outgoing edge to any other component. BSCCs are the states a
// DTMC/CTMC eventually gets trapped in forever; cmd/mcstat turns them into
// the BSCC callback the steady-state statistical engines (package simcheck)
// receive.
//
// Decomposition uses Tarjan's algorithm in its recursive form (a recursive
// DFS plus Tarjan's explicit component stack), recomputed on every call; it
// does not mutate the Chain.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package sccomp
