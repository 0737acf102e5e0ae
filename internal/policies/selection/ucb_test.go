package selection

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/torvik/mctscore/internal/tree"
)

func TestUCB_ExpandHereWhenNotFullyExpanded(t *testing.T) {
	n := tree.New(nil, 3, 0, nil, false, nil)
	u := NewUCB(1.4)
	require.Equal(t, ExpandHere, u.Select(n))
}

func TestUCB_PrefersHigherValueChild(t *testing.T) {
	n := tree.New(nil, 2, 0, nil, false, nil)
	lo, err := n.AddChild(0, 0, nil, false, nil)
	require.NoError(t, err)
	hi, err := n.AddChild(1, 0, nil, false, nil)
	require.NoError(t, err)
	lo.RecordVisit(0)
	hi.RecordVisit(1)
	n.RecordVisit(1) // parent visits must be >= 1 for the sqrt term

	u := NewUCB(0.1) // small exploration: exploitation should dominate
	require.Equal(t, 1, u.Select(n))
}

func TestUCB_TieBreaksOnLowestActionIndex(t *testing.T) {
	n := tree.New(nil, 3, 0, nil, false, nil)
	for a := 0; a < 3; a++ {
		c, err := n.AddChild(a, 0, nil, false, nil)
		require.NoError(t, err)
		c.RecordVisit(0)
	}
	n.RecordVisit(1)

	u := NewUCB(1.0)
	require.Equal(t, 0, u.Select(n))
}
