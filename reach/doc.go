// Package reach provides breadth-first reachability queries over a
// chain.Chain's state graph: "can state i reach a target state" (Exist) and
// "does every path from i reach a target state" (Always). cmd/mcstat wraps
// them as the get_exist_until / get_always_until callbacks that the "pure"
// steady-state statistical engine (package simcheck) receives.
//
// Complexity:
//
//   - Time:   O(V + E) for Exist; O(V * (V + E)) worst case for Always's
//     fixpoint
//   - Memory: O(V)
package reach
