// Package selection implements the MCTS selection policies: deterministic
// functions of a node's statistics that either descend into a child or
// signal that the node itself should be expanded.
package selection

import "github.com/torvik/mctscore/internal/tree"

// ExpandHere is the sentinel action index returned by a Policy when the
// given node should be expanded rather than descended into.
const ExpandHere = -1

// Policy chooses, given a node, either an action index to descend into or
// ExpandHere. A policy must return ExpandHere when the node is not fully
// expanded, unless it is documented to be a Q-only policy that tolerates
// unexpanded actions (neither reference policy below does).
type Policy interface {
	Select(n *tree.Node) int
}

// argmaxByAction returns the expanded action with the highest score,
// breaking ties by the lowest action index. actions must be non-empty.
func argmaxByAction(n *tree.Node, score func(action int, child *tree.Node) float32) int {
	best := -1
	var bestScore float32
	first := true
	for action := 0; action < n.ActionSpaceSize(); action++ {
		child, ok := n.Child(action)
		if !ok {
			continue
		}
		s := score(action, child)
		if first || s > bestScore {
			best = action
			bestScore = s
			first = false
		}
	}
	return best
}
