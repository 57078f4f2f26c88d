package mcparse

import (
	"fmt"

	"github.com/katalvlaran/mc-eval/compare"
	"github.com/katalvlaran/mc-eval/formula"
)

// Parser consumes tokens from a lexer one at a time, keeping a single
// token of lookahead (cur), in the usual hand-rolled recursive-descent
// style.
type Parser struct {
	lex *lexer
	cur token
}

// Parse compiles a formula string into its formula.Node tree.
func Parse(src string) (formula.Node, error) {
	p := &Parser{lex: newLexer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	n, err := p.parseQuery()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokEOF {
		return nil, fmt.Errorf("mcparse: trailing input after formula")
	}

	return n, nil
}

func (p *Parser) advance() error {
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.cur = t

	return nil
}

func (p *Parser) expect(k tokenKind, what string) error {
	if p.cur.kind != k {
		return fmt.Errorf("mcparse: expected %s", what)
	}

	return p.advance()
}

// parseQuery parses a top-level or nested P/S/L query into a
// *formula.ComparatorNode; any other input is parsed as a state formula.
func (p *Parser) parseQuery() (formula.Node, error) {
	switch p.cur.kind {
	case tokP:
		return p.parseProbQuery()
	case tokSteady:
		return p.parseUnaryQuery(formula.KindSteadyState)
	case tokLongRun:
		return p.parseUnaryQuery(formula.KindLongRun)
	default:
		return p.parseStateFormula()
	}
}

func (p *Parser) parseSpec() (compare.Spec, error) {
	if p.cur.kind == tokLBracket {
		if err := p.advance(); err != nil {
			return compare.Spec{}, err
		}
		if p.cur.kind != tokNumber {
			return compare.Spec{}, fmt.Errorf("mcparse: expected lower bound")
		}
		lo := p.cur.num
		if err := p.advance(); err != nil {
			return compare.Spec{}, err
		}
		if err := p.expect(tokComma, "','"); err != nil {
			return compare.Spec{}, err
		}
		if p.cur.kind != tokNumber {
			return compare.Spec{}, fmt.Errorf("mcparse: expected upper bound")
		}
		hi := p.cur.num
		if err := p.advance(); err != nil {
			return compare.Spec{}, err
		}
		if err := p.expect(tokRBracket, "']'"); err != nil {
			return compare.Spec{}, err
		}

		return compare.Spec{Op: compare.Interval, Bound: lo, Bound2: hi}, nil
	}

	if p.cur.kind != tokOp {
		return compare.Spec{}, fmt.Errorf("mcparse: expected comparator operator")
	}
	var op compare.Op
	switch p.cur.text {
	case "<":
		op = compare.Lt
	case "<=":
		op = compare.Le
	case ">":
		op = compare.Gt
	case ">=":
		op = compare.Ge
	default:
		return compare.Spec{}, fmt.Errorf("mcparse: unknown operator %q", p.cur.text)
	}
	if err := p.advance(); err != nil {
		return compare.Spec{}, err
	}
	if p.cur.kind != tokNumber {
		return compare.Spec{}, fmt.Errorf("mcparse: expected bound after operator")
	}
	bound := p.cur.num

	return compare.Spec{Op: op, Bound: bound}, p.advance()
}

// parseProbQuery parses "P" spec "[" pathformula "]".
func (p *Parser) parseProbQuery() (formula.Node, error) {
	if err := p.advance(); err != nil { // consume 'P'
		return nil, err
	}
	spec, err := p.parseSpec()
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokLBracket, "'['"); err != nil {
		return nil, err
	}
	inner, err := p.parsePathFormula()
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokRBracket, "']'"); err != nil {
		return nil, err
	}
	cmp := &formula.ComparatorNode{Spec: spec, Child: inner}
	attachComparator(inner, cmp)

	return cmp, nil
}

// attachComparator wires the enclosing Comparator pointer into Until/Long
// Run/Steady-State nodes that need it for statistical evaluation.
func attachComparator(n formula.Node, cmp *formula.ComparatorNode) {
	switch t := n.(type) {
	case *formula.UntilNode:
		t.Cmp = cmp
	case *formula.LongSteadyNode:
		t.Cmp = cmp
	}
}

// parseUnaryQuery parses ("S"|"L") spec "[" stateformula "]".
func (p *Parser) parseUnaryQuery(kind formula.NodeKind) (formula.Node, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	spec, err := p.parseSpec()
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokLBracket, "'['"); err != nil {
		return nil, err
	}
	child, err := p.parseStateFormula()
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokRBracket, "']'"); err != nil {
		return nil, err
	}
	n := &formula.LongSteadyNode{Kind: kind, Child: child}
	cmp := &formula.ComparatorNode{Spec: spec, Child: n}
	n.Cmp = cmp

	return cmp, nil
}

// parsePathFormula parses "X" [time] stateformula | stateformula "U" [time] stateformula.
func (p *Parser) parsePathFormula() (formula.Node, error) {
	if p.cur.kind == tokNext {
		if err := p.advance(); err != nil {
			return nil, err
		}
		t1, t2, hasTime, err := p.parseOptionalTimeBracket()
		if err != nil {
			return nil, err
		}
		r1, r2, hasReward, err := p.parseOptionalRewardBrace()
		if err != nil {
			return nil, err
		}
		child, err := p.parseStateFormula()
		if err != nil {
			return nil, err
		}
		kind := formula.KindNextUnb
		if hasReward {
			kind = formula.KindNextTimeReward
		} else if hasTime {
			kind = formula.KindNextTime
		}

		return &formula.NextNode{Kind: kind, Child: child, T1: t1, T2: t2, R1: r1, R2: r2}, nil
	}

	phi, err := p.parseStateFormula()
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokUntil, "'U'"); err != nil {
		return nil, err
	}
	t1, t2, hasTime, err := p.parseOptionalTimeBracket()
	if err != nil {
		return nil, err
	}
	r1, r2, hasReward, err := p.parseOptionalRewardBrace()
	if err != nil {
		return nil, err
	}
	psi, err := p.parseStateFormula()
	if err != nil {
		return nil, err
	}
	kind := formula.KindUntilUnb
	if hasReward {
		kind = formula.KindUntilTimeReward
	} else if hasTime {
		kind = formula.KindUntilTime
	}

	return &formula.UntilNode{Kind: kind, Phi: phi, Psi: psi, T1: t1, T2: t2, R1: r1, R2: r2}, nil
}

func (p *Parser) parseOptionalTimeBracket() (t1, t2 float64, has bool, err error) {
	if p.cur.kind != tokLBracket {
		return 0, 0, false, nil
	}
	if err = p.advance(); err != nil {
		return
	}
	if p.cur.kind != tokNumber {
		return 0, 0, false, fmt.Errorf("mcparse: expected time lower bound")
	}
	t1 = p.cur.num
	if err = p.advance(); err != nil {
		return
	}
	if err = p.expect(tokComma, "','"); err != nil {
		return
	}
	if p.cur.kind != tokNumber {
		return 0, 0, false, fmt.Errorf("mcparse: expected time upper bound")
	}
	t2 = p.cur.num
	if err = p.advance(); err != nil {
		return
	}
	if err = p.expect(tokRBracket, "']'"); err != nil {
		return
	}

	return t1, t2, true, nil
}

func (p *Parser) parseOptionalRewardBrace() (r1, r2 float64, has bool, err error) {
	if p.cur.kind != tokLBrace {
		return 0, 0, false, nil
	}
	if err = p.advance(); err != nil {
		return
	}
	if p.cur.kind != tokNumber {
		return 0, 0, false, fmt.Errorf("mcparse: expected reward lower bound")
	}
	r1 = p.cur.num
	if err = p.advance(); err != nil {
		return
	}
	if err = p.expect(tokComma, "','"); err != nil {
		return
	}
	if p.cur.kind != tokNumber {
		return 0, 0, false, fmt.Errorf("mcparse: expected reward upper bound")
	}
	r2 = p.cur.num
	if err = p.advance(); err != nil {
		return
	}
	if err = p.expect(tokRBrace, "'}'"); err != nil {
		return
	}

	return r1, r2, true, nil
}

// parseStateFormula parses Boolean state formulas with the usual PCTL
// precedence: implies binds loosest, then or, then and, then not/atom.
func (p *Parser) parseStateFormula() (formula.Node, error) {
	return p.parseImplies()
}

func (p *Parser) parseImplies() (formula.Node, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.cur.kind == tokImplies {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseImplies()
		if err != nil {
			return nil, err
		}

		return &formula.BinaryBoolNode{Kind: formula.KindImplies, Left: left, Right: right}, nil
	}

	return left, nil
}

func (p *Parser) parseOr() (formula.Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokOr {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &formula.BinaryBoolNode{Kind: formula.KindOr, Left: left, Right: right}
	}

	return left, nil
}

func (p *Parser) parseAnd() (formula.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokAnd {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &formula.BinaryBoolNode{Kind: formula.KindAnd, Left: left, Right: right}
	}

	return left, nil
}

func (p *Parser) parseUnary() (formula.Node, error) {
	if p.cur.kind == tokNot {
		if err := p.advance(); err != nil {
			return nil, err
		}
		child, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return &formula.UnaryBoolNode{Kind: formula.KindNeg, Child: child}, nil
	}

	return p.parseAtom()
}

func (p *Parser) parseAtom() (formula.Node, error) {
	switch p.cur.kind {
	case tokTT:
		if err := p.advance(); err != nil {
			return nil, err
		}

		return &formula.AtomicNode{Kind: formula.KindTT}, nil
	case tokFF:
		if err := p.advance(); err != nil {
			return nil, err
		}

		return &formula.AtomicNode{Kind: formula.KindFF}, nil
	case tokIdent:
		label := p.cur.text
		if err := p.advance(); err != nil {
			return nil, err
		}

		return &formula.AtomicNode{Kind: formula.KindAP, Label: label}, nil
	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		child, err := p.parseStateFormula()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}

		return &formula.UnaryBoolNode{Kind: formula.KindParen, Child: child}, nil
	case tokE, tokC, tokY:
		return p.parseRewardOperator()
	case tokP, tokSteady, tokLongRun:
		return p.parseQuery()
	default:
		return nil, fmt.Errorf("mcparse: unexpected token in state formula")
	}
}

// parseRewardOperator parses ("E"|"C"|"Y") "(" epoch ")" stateformula,
// producing a bare PureRewardNode; no query keyword wraps it in a
// ComparatorNode.
func (p *Parser) parseRewardOperator() (formula.Node, error) {
	var kind formula.NodeKind
	switch p.cur.kind {
	case tokE:
		kind = formula.KindExpectedRR
	case tokC:
		kind = formula.KindInstantR
	case tokY:
		kind = formula.KindExpectedAR
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(tokLParen, "'('"); err != nil {
		return nil, err
	}
	if p.cur.kind != tokNumber {
		return nil, fmt.Errorf("mcparse: expected reward epoch")
	}
	epoch := int(p.cur.num)
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(tokRParen, "')'"); err != nil {
		return nil, err
	}
	child, err := p.parseStateFormula()
	if err != nil {
		return nil, err
	}

	return &formula.PureRewardNode{Kind: kind, Child: child, Epoch: epoch}, nil
}
