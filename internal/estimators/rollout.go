package estimators

import (
	"math/rand/v2"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/torvik/mctscore/internal/tree"
)

// RandomRollout estimates a leaf's value by applying uniformly random
// actions from the node's saved environment for up to Budget steps,
// summing rewards (undiscounted inside the rollout -- the driver's
// backup applies discount as it walks back through and past the leaf).
// It stops on termination, truncation, or a misbehaving environment.
//
// Requires a cloneable environment: the node must still hold an
// EnvSnapshot, i.e. it must not have already given it up to the expansion
// of its last child.
type RandomRollout struct {
	Budget int
	Rng    *rand.Rand
}

// NewRandomRollout returns a rollout estimator with the given per-leaf
// step budget, consuming rng for action sampling.
func NewRandomRollout(budget int, rng *rand.Rand) *RandomRollout {
	return &RandomRollout{Budget: budget, Rng: rng}
}

// Evaluate implements Estimator.
func (r *RandomRollout) Evaluate(n *tree.Node) (float32, error) {
	if n.Terminal() {
		return 0, nil
	}
	snapshot := n.EnvSnapshot()
	if snapshot == nil {
		return 0, errors.Wrap(tree.ErrCloneFailed, "random rollout requires a saved environment snapshot")
	}
	sim, err := snapshot.Clone()
	if err != nil {
		return 0, errors.Wrap(tree.ErrCloneFailed, "cloning node snapshot for rollout")
	}

	var accumulated float32
	actionSpace := n.ActionSpaceSize()
	for step := 0; step < r.Budget; step++ {
		action := r.Rng.IntN(actionSpace)
		_, reward, terminated, truncated, _, err := sim.Step(action)
		if err != nil {
			// A misbehaving environment mid-rollout is treated as
			// rollout termination with the reward accumulated so far.
			klog.V(2).Infof("random rollout: environment step failed after %d steps: %v", step, err)
			break
		}
		accumulated += reward
		if terminated || truncated {
			break
		}
	}
	return accumulated, nil
}

var _ Estimator = (*RandomRollout)(nil)
