package mcparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mc-eval/formula"
	"github.com/katalvlaran/mc-eval/mcparse"
)

func TestParseSimpleUntil(t *testing.T) {
	n, err := mcparse.Parse("P>=0.9 [ up U down ]")
	require.NoError(t, err)
	cmp, ok := n.(*formula.ComparatorNode)
	require.True(t, ok)
	until, ok := cmp.Child.(*formula.UntilNode)
	require.True(t, ok)
	require.Equal(t, formula.KindUntilUnb, until.Kind)
	require.Same(t, cmp, until.Cmp)
}

func TestParseTimeBoundedNext(t *testing.T) {
	n, err := mcparse.Parse("P[0.1,0.9] [ X[0,10] up ]")
	require.NoError(t, err)
	cmp := n.(*formula.ComparatorNode)
	next, ok := cmp.Child.(*formula.NextNode)
	require.True(t, ok)
	require.Equal(t, formula.KindNextTime, next.Kind)
	require.Equal(t, 0.0, next.T1)
	require.Equal(t, 10.0, next.T2)
}

func TestParseBooleanPrecedence(t *testing.T) {
	n, err := mcparse.Parse("S>=0.5 [ a && b || !c ]")
	require.NoError(t, err)
	cmp := n.(*formula.ComparatorNode)
	steady := cmp.Child.(*formula.LongSteadyNode)
	or, ok := steady.Child.(*formula.BinaryBoolNode)
	require.True(t, ok)
	require.Equal(t, formula.KindOr, or.Kind)
}

func TestParseNestedQuery(t *testing.T) {
	n, err := mcparse.Parse("P>=0.9 [ X (P>=0.5 [ a U b ]) ]")
	require.NoError(t, err)
	cmp := n.(*formula.ComparatorNode)
	next := cmp.Child.(*formula.NextNode)
	paren, ok := next.Child.(*formula.UnaryBoolNode)
	require.True(t, ok)
	require.Equal(t, formula.KindParen, paren.Kind)
	_, ok = paren.Child.(*formula.ComparatorNode)
	require.True(t, ok)
}

func TestParseRejectsTrailingInput(t *testing.T) {
	_, err := mcparse.Parse("TT extra")
	require.Error(t, err)
}
