package evaluation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/torvik/mctscore/internal/tree"
)

func buildRootWithTwoChildren(t *testing.T, qa, qb float32) *tree.Node {
	t.Helper()
	root := tree.New(nil, 2, 0, nil, false, nil)
	a, err := root.AddChild(0, 0, nil, false, nil)
	require.NoError(t, err)
	b, err := root.AddChild(1, 0, nil, false, nil)
	require.NoError(t, err)
	a.RecordVisit(qa)
	b.RecordVisit(qb)
	return root
}

func TestQSoftmax_TemperatureZeroIsArgmax(t *testing.T) {
	root := buildRootWithTwoChildren(t, 1, 5)
	zero := float32(0)
	dist, err := QSoftmax{Temperature: &zero}.Evaluate(root)
	require.NoError(t, err)
	require.Equal(t, float32(0), dist.Probs[0])
	require.Equal(t, float32(1), dist.Probs[1])
}

func TestQSoftmax_TemperatureZeroTiesAreUniform(t *testing.T) {
	root := buildRootWithTwoChildren(t, 3, 3)
	zero := float32(0)
	dist, err := QSoftmax{Temperature: &zero}.Evaluate(root)
	require.NoError(t, err)
	require.InDelta(t, float32(0.5), dist.Probs[0], 1e-6)
	require.InDelta(t, float32(0.5), dist.Probs[1], 1e-6)
}

func TestQSoftmax_PositiveTemperatureSmoothsDistribution(t *testing.T) {
	root := buildRootWithTwoChildren(t, 1, 2)
	temp := float32(1.0)
	dist, err := QSoftmax{Temperature: &temp}.Evaluate(root)
	require.NoError(t, err)
	require.Greater(t, dist.Probs[1], dist.Probs[0])
	require.Greater(t, dist.Probs[0], float32(0))
}

func TestQSoftmax_NilTemperatureRequiresNonNegativeScores(t *testing.T) {
	root := buildRootWithTwoChildren(t, -1, 2)
	_, err := QSoftmax{Temperature: nil}.Evaluate(root)
	require.Error(t, err)
}
