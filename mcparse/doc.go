// Package mcparse compiles a textual PCTL/CSL/PRCTL/CSRL formula into a
// formula.Node tree. It is a small hand-rolled recursive-descent parser
// (lexer + one descent level per Boolean connective: ->, ||, &&, then !)
// covering the grammar the formula tree's node kinds describe:
//
//	AP, TT, FF, !, &&, ||, ->, ( )
//	X phi | X[t1,t2] phi | X[t1,t2]{r1,r2} phi
//	phi U psi | phi U[t1,t2] psi | phi U[t1,t2]{r1,r2} psi
//	E(k) phi | C(k) phi | Y(k) phi
//	P><p [ ... ]  |  P[p1,p2] [ ... ]  |  S><p [ phi ]  |  L><p [ phi ]
//
// It is a reference grammar, not a compatibility layer for any specific
// tool's concrete syntax; mcstat is the only caller.
package mcparse
