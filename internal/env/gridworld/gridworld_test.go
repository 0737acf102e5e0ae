package gridworld

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGrid_ReachesGoal(t *testing.T) {
	g := New(2, 10)
	_, r, term, trunc, _, err := g.Step(Right)
	require.NoError(t, err)
	require.False(t, term)
	require.False(t, trunc)
	require.Equal(t, float32(0), r)

	_, r, term, trunc, _, err = g.Step(Down)
	require.NoError(t, err)
	require.True(t, term)
	require.False(t, trunc)
	require.Equal(t, float32(1), r)
}

func TestGrid_ClampsAtEdges(t *testing.T) {
	g := New(2, 10)
	obs, _, _, _, _, err := g.Step(Up)
	require.NoError(t, err)
	require.Equal(t, Observation{Row: 0, Col: 0}, obs)
}

func TestGrid_TruncatesAfterMaxSteps(t *testing.T) {
	g := New(4, 2)
	_, _, _, _, _, err := g.Step(Up)
	require.NoError(t, err)
	_, _, term, trunc, _, err := g.Step(Up)
	require.NoError(t, err)
	require.False(t, term)
	require.True(t, trunc)
}

func TestGrid_CloneIsIndependent(t *testing.T) {
	g := New(4, 10)
	_, _, _, _, _, err := g.Step(Right)
	require.NoError(t, err)

	clone, err := g.Clone()
	require.NoError(t, err)
	_, _, _, _, _, err = clone.Step(Right)
	require.NoError(t, err)

	obs, _, _, _, _, err := g.Step(Down)
	require.NoError(t, err)
	require.Equal(t, Observation{Row: 1, Col: 1}, obs)
}
