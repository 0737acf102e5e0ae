// Package evaluation implements the tree-evaluation policies that turn a
// searched root's children statistics into an action distribution (or a
// single sampled action) for the outer episode loop to act on.
package evaluation

import (
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/torvik/mctscore/internal/tree"
)

// Distribution is a categorical distribution over [0, A), optionally
// extended with one extra trailing slot (see IncludeSelf) representing
// "stop searching, use this node's own value estimate".
type Distribution struct {
	Probs       []float32
	IncludeSelf bool
}

// Sample draws one action index from the distribution using rng. If
// IncludeSelf is set, len(Probs)-1 is the "terminate search" slot.
func (d Distribution) Sample(rng *rand.Rand) int {
	r := rng.Float32()
	var cumulative float32
	for i, p := range d.Probs {
		cumulative += p
		if r <= cumulative {
			return i
		}
	}
	// Rounding error fallback: return the last slot.
	return len(d.Probs) - 1
}

// Policy turns a searched root into an action distribution.
type Policy interface {
	Evaluate(root *tree.Node) (Distribution, error)
}

// normalize scales scores in place to sum to 1. It errors if every score
// is zero (nothing to normalize) or any score is negative.
func normalize(scores []float32) error {
	var sum float32
	for _, s := range scores {
		if s < 0 {
			return errors.New("evaluation: scores must be non-negative")
		}
		sum += s
	}
	if sum == 0 {
		return errors.New("evaluation: scores sum to zero, nothing to normalize")
	}
	for i := range scores {
		scores[i] /= sum
	}
	return nil
}

// withSelfSlot appends the "terminate search, use this node's own
// estimate" slot to probs, with relative mass (sum(probs)) / (visits-1),
// then renormalizes the whole vector to sum to 1.
func withSelfSlot(root *tree.Node, probs []float32) []float32 {
	var sum float32
	for _, p := range probs {
		sum += p
	}
	denom := float32(root.Visits() - 1)
	var selfProb float32
	if denom > 0 {
		selfProb = sum / denom
	}
	withSelf := append(probs, selfProb)
	total := sum + selfProb
	if total > 0 {
		for i := range withSelf {
			withSelf[i] /= total
		}
	}
	return withSelf
}
