package expansion

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/torvik/mctscore/internal/tree"
)

func TestDefault_SelectsUnexpandedAction(t *testing.T) {
	n := tree.New(nil, 3, 0, nil, false, nil)
	_, err := n.AddChild(0, 0, nil, false, nil)
	require.NoError(t, err)

	rng := rand.New(rand.NewPCG(1, 1))
	d := Default{}
	for i := 0; i < 20; i++ {
		a, err := d.Select(n, rng)
		require.NoError(t, err)
		require.Contains(t, []int{1, 2}, a)
	}
}

func TestDefault_FullyExpandedErrors(t *testing.T) {
	n := tree.New(nil, 1, 0, nil, false, nil)
	_, err := n.AddChild(0, 0, nil, false, nil)
	require.NoError(t, err)

	rng := rand.New(rand.NewPCG(1, 1))
	_, err = Default{}.Select(n, rng)
	require.ErrorIs(t, err, tree.ErrFullyExpanded)
}
