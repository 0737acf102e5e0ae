package selection

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/torvik/mctscore/internal/tree"
)

func TestPUCT_ExpandHereWhenNotFullyExpanded(t *testing.T) {
	n := tree.New(nil, 2, 0, nil, false, nil)
	p := NewPUCT(1.0, nil)
	require.Equal(t, ExpandHere, p.Select(n))
}

func TestPUCT_PriorWeightedWithUniformPriorMatchesUCBTieBreak(t *testing.T) {
	n := tree.New(nil, 2, 0, nil, false, nil)
	n.SetPrior([]float32{0.5, 0.5})
	for a := 0; a < 2; a++ {
		c, err := n.AddChild(a, 0, nil, false, nil)
		require.NoError(t, err)
		c.RecordVisit(0)
	}
	n.RecordVisit(1)

	p := NewPUCT(1.0, nil)
	// Symmetric priors and identical child statistics: lowest index wins.
	require.Equal(t, 0, p.Select(n))
}

func TestPUCT_DominantPriorWinsSelectionGivenZeroValues(t *testing.T) {
	n := tree.New(nil, 3, 0, nil, false, nil)
	n.SetPrior([]float32{1, 0, 0})
	for a := 0; a < 3; a++ {
		c, err := n.AddChild(a, 0, nil, false, nil)
		require.NoError(t, err)
		c.RecordVisit(0)
	}
	n.RecordVisit(1)

	p := NewPUCT(1.0, nil)
	require.Equal(t, 0, p.Select(n))
}
