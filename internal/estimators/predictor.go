package estimators

import (
	"github.com/pkg/errors"

	"github.com/torvik/mctscore/internal/env"
	"github.com/torvik/mctscore/internal/tree"
)

// LearnedPredictor calls an external env.Predictor to evaluate a node's
// observation, storing the returned prior on the node for PUCT-style
// selection to consume. No environment clone is required for evaluation
// itself, but one is still required to expand further children -- that
// requirement is enforced by the search driver, not here.
type LearnedPredictor struct {
	Predictor env.Predictor
}

// NewLearnedPredictor wraps predictor as an Estimator.
func NewLearnedPredictor(predictor env.Predictor) *LearnedPredictor {
	return &LearnedPredictor{Predictor: predictor}
}

// Evaluate implements Estimator.
func (l *LearnedPredictor) Evaluate(n *tree.Node) (float32, error) {
	if n.Terminal() {
		return 0, nil
	}
	value, prior, err := l.Predictor.Evaluate(n.Observation())
	if err != nil {
		return 0, errors.Wrap(tree.ErrPredictorFailed, err.Error())
	}
	n.SetPrior(prior)
	return value, nil
}

var _ Estimator = (*LearnedPredictor)(nil)
