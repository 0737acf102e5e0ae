package selection

import (
	"github.com/chewxy/math32"

	"github.com/torvik/mctscore/internal/policies/valuetransform"
	"github.com/torvik/mctscore/internal/tree"
)

// PUCT is the prior-weighted, AlphaZero-style selection policy:
//
//	score(a) = tau(child.DefaultValue()) + c * prior[a] * sqrt(parent.Visits()) / (1 + child.Visits())
//
// c > 0 controls exploration. Transform defaults to valuetransform.Identity
// if left nil.
type PUCT struct {
	C         float32
	Transform valuetransform.Transform
}

// NewPUCT returns a PUCT policy with the given exploration constant and
// value transform. Pass nil for the identity transform.
func NewPUCT(c float32, transform valuetransform.Transform) *PUCT {
	if transform == nil {
		transform = valuetransform.Identity{}
	}
	return &PUCT{C: c, Transform: transform}
}

// Select implements Policy.
func (p *PUCT) Select(n *tree.Node) int {
	if !n.IsFullyExpanded() {
		return ExpandHere
	}
	transform := p.Transform
	if transform == nil {
		transform = valuetransform.Identity{}
	}
	prior := n.Prior()
	sqrtParentVisits := math32.Sqrt(float32(n.Visits()))
	return argmaxByAction(n, func(action int, child *tree.Node) float32 {
		transform.Update(child.DefaultValue())
		exploration := p.C * sqrtParentVisits / float32(1+child.Visits())
		if prior != nil {
			exploration *= prior[action]
		}
		return transform.Transform(child.DefaultValue()) + exploration
	})
}

var _ Policy = (*PUCT)(nil)
