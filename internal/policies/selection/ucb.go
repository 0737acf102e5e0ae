package selection

import (
	"github.com/chewxy/math32"

	"github.com/torvik/mctscore/internal/tree"
)

// UCB is the classic upper-confidence-bound selection policy:
//
//	score(a) = child.DefaultValue() + c * sqrt(parent.Visits() / child.Visits())
//
// c > 0 controls the exploration/exploitation trade-off. Every expanded
// child is guaranteed to have Visits() >= 1 by the time UCB scores it,
// since the driver evaluates and backs up every child as soon as it
// creates it.
type UCB struct {
	C float32
}

// NewUCB returns a UCB policy with the given exploration constant.
func NewUCB(c float32) *UCB {
	return &UCB{C: c}
}

// Select implements Policy.
func (u *UCB) Select(n *tree.Node) int {
	if !n.IsFullyExpanded() {
		return ExpandHere
	}
	return argmaxByAction(n, func(_ int, child *tree.Node) float32 {
		return child.DefaultValue() + u.C*math32.Sqrt(float32(n.Visits())/float32(child.Visits()))
	})
}

var _ Policy = (*UCB)(nil)
