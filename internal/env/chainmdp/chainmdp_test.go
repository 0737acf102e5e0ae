package chainmdp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChain_ReachesEndAndTerminates(t *testing.T) {
	c := New(3)
	obs, r, term, trunc, _, err := c.Step(Right)
	require.NoError(t, err)
	require.False(t, term)
	require.False(t, trunc)
	require.Equal(t, float32(0), r)
	require.Equal(t, 1, obs)

	obs, r, term, _, _, err = c.Step(Right)
	require.NoError(t, err)
	require.True(t, term)
	require.Equal(t, float32(1), r)
	require.Equal(t, 2, obs)
}

func TestChain_LeftClampsAtStart(t *testing.T) {
	c := New(3)
	obs, _, _, _, _, err := c.Step(Left)
	require.NoError(t, err)
	require.Equal(t, 0, obs)
}
