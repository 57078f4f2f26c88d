package label_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mc-eval/label"
)

func TestAddLabelAndSetBit(t *testing.T) {
	s := label.New(4)
	require.NoError(t, s.AddLabel("up"))
	require.NoError(t, s.SetBit("up", 0))
	require.NoError(t, s.SetBit("up", 2))

	b, ok := s.Label("up")
	require.True(t, ok)
	require.True(t, b.Test(0))
	require.True(t, b.Test(2))
	require.False(t, b.Test(1))
}

func TestDuplicateLabelRejected(t *testing.T) {
	s := label.New(2)
	require.NoError(t, s.AddLabel("a"))
	require.ErrorIs(t, s.AddLabel("a"), label.ErrDuplicateLabel)
}

func TestUnknownLabelRejected(t *testing.T) {
	s := label.New(2)
	require.ErrorIs(t, s.SetBit("missing", 0), label.ErrUnknownLabel)

	_, ok := s.Label("missing")
	require.False(t, ok)
}

func TestPositionOutOfRange(t *testing.T) {
	s := label.New(2)
	require.NoError(t, s.AddLabel("a"))
	require.ErrorIs(t, s.SetBit("a", 5), label.ErrPositionOutOfRange)
}

func TestNamesAreAscending(t *testing.T) {
	s := label.New(2)
	require.NoError(t, s.AddLabel("zeta"))
	require.NoError(t, s.AddLabel("alpha"))
	require.NoError(t, s.AddLabel("mu"))

	require.Equal(t, []string{"alpha", "mu", "zeta"}, s.Names())
}
