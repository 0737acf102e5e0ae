package evaluation

import "github.com/torvik/mctscore/internal/tree"

// VisitCount returns an action distribution proportional to each child's
// visit count; unexpanded actions are treated as 0 and never drawn.
type VisitCount struct {
	// IncludeSelf appends the "terminate search, use this node's own
	// estimate" slot used by recursive tree evaluators.
	IncludeSelf bool
}

// Evaluate implements Policy.
func (v VisitCount) Evaluate(root *tree.Node) (Distribution, error) {
	numActions := root.ActionSpaceSize()
	probs := make([]float32, numActions)
	for a := 0; a < numActions; a++ {
		if child, ok := root.Child(a); ok {
			probs[a] = float32(child.Visits())
		}
	}
	if err := normalize(probs); err != nil {
		return Distribution{}, err
	}
	if v.IncludeSelf {
		probs = withSelfSlot(root, probs)
	}
	return Distribution{Probs: probs, IncludeSelf: v.IncludeSelf}, nil
}

var _ Policy = VisitCount{}
