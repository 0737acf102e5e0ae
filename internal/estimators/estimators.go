// Package estimators implements the value estimator variants that
// produce a scalar estimate of expected discounted future return at a
// freshly expanded node.
package estimators

import "github.com/torvik/mctscore/internal/tree"

// Estimator evaluates a freshly expanded node, returning the scalar used
// as its ValueEvaluation and as the leaf value the search driver backs
// up. Implementations that have a prior to contribute (see
// LearnedPredictor) call n.SetPrior themselves before
// returning.
type Estimator interface {
	Evaluate(n *tree.Node) (float32, error)
}

// Zero always returns 0. It is the right choice when rewards alone carry
// enough signal to avoid needing an expensive leaf estimate, e.g. a
// dense-reward environment.
type Zero struct{}

// Evaluate implements Estimator.
func (Zero) Evaluate(*tree.Node) (float32, error) { return 0, nil }

var _ Estimator = Zero{}
