package mcio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mc-eval/chain"
	"github.com/katalvlaran/mc-eval/mcio"
)

const sampleTra = `STATES 3
TRANSITIONS 4
1 2 0.5
1 3 0.5
2 2 1.0
3 3 1.0
`

const sampleLab = `#DECLARATION
up down
#END
1 up
2 down
3 down
`

func TestReadTraBuildsFrozenableChain(t *testing.T) {
	c, err := mcio.ReadTra(strings.NewReader(sampleTra), chain.DTMC)
	require.NoError(t, err)
	require.NoError(t, c.Freeze())
	require.Equal(t, 3, c.NumStates())
	idx, ok := c.Index("1")
	require.True(t, ok)
	require.Equal(t, 0, idx)
}

func TestReadTraRejectsMismatchedCount(t *testing.T) {
	bad := strings.Replace(sampleTra, "TRANSITIONS 4", "TRANSITIONS 3", 1)
	_, err := mcio.ReadTra(strings.NewReader(bad), chain.DTMC)
	require.ErrorIs(t, err, mcio.ErrMalformedRow)
}

func TestReadLabAssignsBits(t *testing.T) {
	set, err := mcio.ReadLab(strings.NewReader(sampleLab), 3)
	require.NoError(t, err)
	up, ok := set.Label("up")
	require.True(t, ok)
	require.True(t, up.Test(0))
	require.False(t, up.Test(1))

	down, ok := set.Label("down")
	require.True(t, ok)
	require.True(t, down.Test(1))
	require.True(t, down.Test(2))
}

func TestReadRewParsesSparseRewards(t *testing.T) {
	rew := "STATES 3\n1 2.5\n3 0.75\n"
	m, err := mcio.ReadRew(strings.NewReader(rew))
	require.NoError(t, err)
	require.Equal(t, 2.5, m[1])
	require.Equal(t, 0.75, m[3])
	_, ok := m[2]
	require.False(t, ok)
}
