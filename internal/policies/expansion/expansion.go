// Package expansion implements the expansion policies that decide which
// unexpanded action(s) of a leaf node get materialized into children.
package expansion

import (
	"math/rand/v2"

	"github.com/torvik/mctscore/internal/tree"
)

// Policy chooses one unexpanded action of n to expand next.
type Policy interface {
	Select(n *tree.Node, rng *rand.Rand) (int, error)
}

// Default picks a uniformly random action among the unexpanded set,
// consuming the caller-supplied RNG stream so expansion order stays
// reproducible given a seed.
type Default struct{}

// Select implements Policy.
func (Default) Select(n *tree.Node, rng *rand.Rand) (int, error) {
	return n.SampleUnexploredAction(rng)
}

var _ Policy = Default{}

// AllChildren is a driver-level configuration sentinel, not a Policy
// implementation: it instructs the search driver to expand every
// unexpanded action of a leaf in one iteration rather than calling a
// single-action Policy. It is used together with learned value
// estimators that provide a full action prior in one call.
type AllChildren struct{}
