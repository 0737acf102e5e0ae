package evaluation

import (
	"github.com/chewxy/math32"

	"github.com/torvik/mctscore/internal/policies/valuetransform"
	"github.com/torvik/mctscore/internal/tree"
)

// QSoftmax returns an action distribution over the children's Q values
// (default-value estimates), optionally transformed, with temperature
// semantics:
//
//   - Temperature == nil: probabilities proportional to the raw
//     (transformed) scores, which must be non-negative.
//   - *Temperature == 0: argmax, with uniform tie-breaking over the
//     argmax set.
//   - otherwise: standard softmax over scores / *Temperature.
type QSoftmax struct {
	// Transform defaults to valuetransform.Identity if nil.
	Transform valuetransform.Transform

	// Temperature selects the regime described above.
	Temperature *float32

	// IncludeSelf appends the "terminate search, use this node's own
	// estimate" slot used by recursive tree evaluators.
	IncludeSelf bool
}

// Evaluate implements Policy.
func (q QSoftmax) Evaluate(root *tree.Node) (Distribution, error) {
	transform := q.Transform
	if transform == nil {
		transform = valuetransform.Identity{}
	}

	numActions := root.ActionSpaceSize()
	expanded := make([]bool, numActions)
	raw := make([]float32, numActions)
	for a := 0; a < numActions; a++ {
		if child, ok := root.Child(a); ok {
			expanded[a] = true
			v := child.DefaultValue()
			transform.Update(v)
			raw[a] = v
		}
	}
	scores := make([]float32, numActions)
	for a := range raw {
		if expanded[a] {
			scores[a] = transform.Transform(raw[a])
		}
	}

	probs, err := q.distribution(scores, expanded)
	if err != nil {
		return Distribution{}, err
	}
	if q.IncludeSelf {
		probs = withSelfSlot(root, probs)
	}
	return Distribution{Probs: probs, IncludeSelf: q.IncludeSelf}, nil
}

func (q QSoftmax) distribution(scores []float32, expanded []bool) ([]float32, error) {
	switch {
	case q.Temperature == nil:
		probs := append([]float32(nil), scores...)
		if err := normalize(probs); err != nil {
			return nil, err
		}
		return probs, nil

	case *q.Temperature == 0:
		return argmaxUniform(scores, expanded), nil

	default:
		return softmax(scores, expanded, *q.Temperature), nil
	}
}

// argmaxUniform returns a distribution uniform over the actions achieving
// the maximum score among expanded actions.
func argmaxUniform(scores []float32, expanded []bool) []float32 {
	probs := make([]float32, len(scores))
	best := float32(math32.Inf(-1))
	for a, ok := range expanded {
		if ok && scores[a] > best {
			best = scores[a]
		}
	}
	count := 0
	for a, ok := range expanded {
		if ok && scores[a] == best {
			count++
		}
	}
	if count == 0 {
		return probs
	}
	for a, ok := range expanded {
		if ok && scores[a] == best {
			probs[a] = 1 / float32(count)
		}
	}
	return probs
}

// softmax computes a numerically stable softmax of scores/temperature
// over the expanded actions only (unexpanded actions get probability 0),
// following the max-subtraction pattern used throughout the reference
// corpus for float32 softmaxes.
func softmax(scores []float32, expanded []bool, temperature float32) []float32 {
	probs := make([]float32, len(scores))
	maxLogit := float32(math32.Inf(-1))
	any := false
	for a, ok := range expanded {
		if !ok {
			continue
		}
		any = true
		logit := scores[a] / temperature
		if logit > maxLogit {
			maxLogit = logit
		}
	}
	if !any {
		return probs
	}
	var sum float32
	for a, ok := range expanded {
		if !ok {
			continue
		}
		logit := scores[a]/temperature - maxLogit
		probs[a] = math32.Exp(logit)
		sum += probs[a]
	}
	for a, ok := range expanded {
		if ok {
			probs[a] /= sum
		}
	}
	return probs
}

var _ Policy = QSoftmax{}
