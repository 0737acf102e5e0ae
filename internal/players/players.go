// Package players wires a fully configured search.Driver and
// evaluation.Policy from a parameters.Params configuration string, the
// way internal/searchers/mcts/players_params.go builds a Searcher from
// CLI-style "key=value,key2=value2" configuration.
package players

import (
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/torvik/mctscore/internal/env"
	"github.com/torvik/mctscore/internal/estimators"
	"github.com/torvik/mctscore/internal/evaluation"
	"github.com/torvik/mctscore/internal/parameters"
	"github.com/torvik/mctscore/internal/policies/expansion"
	"github.com/torvik/mctscore/internal/policies/selection"
	"github.com/torvik/mctscore/internal/policies/valuetransform"
	"github.com/torvik/mctscore/internal/search"
)

// Config bundles everything an episode loop needs: a driver to grow a
// tree with, the per-decision visit budget to grow it to, and the
// tree-evaluation policy to draw an action from the grown root.
type Config struct {
	Driver         *search.Driver
	Budget         int
	TreeEvaluation evaluation.Policy
}

// NewFromParams builds a Config from params, popping every key it
// consumes so callers can detect unrecognized leftover configuration.
// predictor may be nil; if non-nil it is used as a learned value
// estimator and switches the default expansion mode to all-children
// unless the caller explicitly set all_children.
func NewFromParams(params parameters.Params, predictor env.Predictor, rng *rand.Rand) (*Config, error) {
	selectionKind, err := parameters.PopParamOr(params, "selection", "ucb")
	if err != nil {
		return nil, err
	}
	c, err := parameters.PopParamOr(params, "c", float32(1.4))
	if err != nil {
		return nil, err
	}
	if c < 0 {
		return nil, errors.Errorf("negative exploration constant c=%f not possible", c)
	}
	discount, err := parameters.PopParamOr(params, "discount", float32(0.99))
	if err != nil {
		return nil, err
	}
	budget, err := parameters.PopParamOr(params, "budget", 200)
	if err != nil {
		return nil, err
	}
	if budget <= 0 {
		return nil, errors.Errorf("non-positive search budget %d not possible", budget)
	}
	rolloutBudget, err := parameters.PopParamOr(params, "rollout_budget", 0)
	if err != nil {
		return nil, err
	}
	temperature, err := parameters.PopParamOr(params, "temperature", float32(1.0))
	if err != nil {
		return nil, err
	}
	includeSelf, err := parameters.PopParamOr(params, "include_self", false)
	if err != nil {
		return nil, err
	}
	treeEvalKind, err := parameters.PopParamOr(params, "tree_eval", "visits")
	if err != nil {
		return nil, err
	}
	allChildren, err := parameters.PopParamOr(params, "all_children", predictor != nil)
	if err != nil {
		return nil, err
	}
	if err := params.RequireConsumed(); err != nil {
		return nil, err
	}

	var sel selection.Policy
	switch selectionKind {
	case "ucb":
		sel = selection.NewUCB(c)
	case "puct":
		sel = selection.NewPUCT(c, valuetransform.Identity{})
	default:
		return nil, errors.Errorf("unknown selection policy %q", selectionKind)
	}

	var est estimators.Estimator
	switch {
	case predictor != nil:
		est = estimators.NewLearnedPredictor(predictor)
	case rolloutBudget > 0:
		est = estimators.NewRandomRollout(rolloutBudget, rng)
	default:
		est = estimators.Zero{}
	}

	var exp expansion.Policy
	if !allChildren {
		exp = expansion.Default{}
	}

	driver := search.New(sel, exp, allChildren, est, discount, rng)

	var treeEval evaluation.Policy
	switch treeEvalKind {
	case "visits":
		treeEval = evaluation.VisitCount{IncludeSelf: includeSelf}
	case "qsoftmax":
		var temperaturePtr *float32
		if temperature >= 0 {
			temperaturePtr = &temperature
		}
		treeEval = evaluation.QSoftmax{Temperature: temperaturePtr, IncludeSelf: includeSelf}
	default:
		return nil, errors.Errorf("unknown tree-evaluation policy %q", treeEvalKind)
	}

	return &Config{Driver: driver, Budget: budget, TreeEvaluation: treeEval}, nil
}
