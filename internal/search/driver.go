// Package search implements the driver that orchestrates the
// selection/expansion/evaluation/backup loop and grows a search tree
// rooted at a cloned snapshot of the caller's environment.
package search

import (
	"math/rand/v2"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/torvik/mctscore/internal/env"
	"github.com/torvik/mctscore/internal/estimators"
	"github.com/torvik/mctscore/internal/policies/expansion"
	"github.com/torvik/mctscore/internal/policies/selection"
	"github.com/torvik/mctscore/internal/tree"
)

// Driver owns the policies and value estimator used to grow one search
// tree per Search call. It is not safe for concurrent use by multiple
// goroutines against the same call; independent goroutines should each
// hold their own Driver with their own Rng, per the
// core's concurrency model: no tree is shared.
type Driver struct {
	// Selection descends an already-expanded path toward a leaf.
	Selection selection.Policy

	// Expansion picks a single unexpanded action to materialize. Leave
	// nil and set AllChildren to expand every unexpanded action per
	// iteration instead (the configuration learned estimators with a
	// full prior typically want).
	Expansion expansion.Policy

	// AllChildren, when true, ignores Expansion and expands every
	// remaining unexpanded action of a leaf in one iteration.
	AllChildren bool

	// Estimator produces the scalar leaf value backed up from each newly
	// expanded (or terminal) node.
	Estimator estimators.Estimator

	// Discount is gamma in (0, 1], applied to the leaf value as it is
	// propagated back toward the root.
	Discount float32

	// Rng is consumed by the expansion policy's action sampling. Reusing
	// the same seeded Rng across identical runs makes Search
	// deterministic (see spec property: identical seed/env/budget/
	// policies yields identical visits and subtreeSum on every node).
	Rng *rand.Rand
}

// New constructs a Driver. discount must be in (0, 1].
func New(sel selection.Policy, exp expansion.Policy, allChildren bool, est estimators.Estimator, discount float32, rng *rand.Rand) *Driver {
	return &Driver{
		Selection:   sel,
		Expansion:   exp,
		AllChildren: allChildren,
		Estimator:   est,
		Discount:    discount,
		Rng:         rng,
	}
}

// Search grows a tree rooted at a deep clone of environment from the
// given observation and incoming reward, running iterations until the
// root has been visited at least budget times, then returns the root.
//
// The returned tree is valid (every invariant documented on tree.Node
// holds) after every completed iteration, so a caller that wants a
// time-based cutoff can call Search repeatedly with small budgets and
// reuse a subtree via Node.Step between calls.
func (d *Driver) Search(environment env.Environment, budget int, obs env.Observation, incomingReward float32) (*tree.Node, error) {
	actionSpaceSize := environment.ActionSpaceSize()
	if actionSpaceSize <= 0 {
		return nil, errors.Wrapf(tree.ErrInvalidActionSpace, "action space size %d", actionSpaceSize)
	}

	rootEnv, err := environment.Clone()
	if err != nil {
		return nil, errors.Wrap(tree.ErrCloneFailed, err.Error())
	}
	root := tree.New(nil, actionSpaceSize, incomingReward, obs, false, rootEnv)

	if err := d.evaluateAndBackup(root); err != nil {
		return nil, err
	}

	numIterations := 0
	for root.Visits() < budget {
		if err := d.iterate(root); err != nil {
			return nil, err
		}
		numIterations++
	}

	if klog.V(1).Enabled() {
		klog.Infof("search: %d iterations, root visits=%d, root value=%.4f", numIterations, root.Visits(), root.DefaultValue())
	}
	if klog.V(2).Enabled() {
		klog.Info(root.DebugString())
	}
	return root, nil
}

// iterate runs one selection -> expansion -> evaluation -> backup pass.
func (d *Driver) iterate(root *tree.Node) error {
	n := root
	for !n.Terminal() {
		action := d.Selection.Select(n)
		if action == selection.ExpandHere {
			break
		}
		next, err := n.Step(action)
		if err != nil {
			return errors.Wrap(tree.ErrInvariantViolation, "selection policy chose an unexpanded action")
		}
		n = next
	}

	if n.Terminal() {
		n.SetValueEvaluation(0)
		d.backup(n, 0)
		return nil
	}

	if d.AllChildren {
		// Snapshot the set of actions to expand up front: expanding one
		// child may clear n's own snapshot (the last-child move trick),
		// but never changes which actions are already expanded.
		pending := make([]int, 0, n.ActionSpaceSize()-n.NumChildren())
		for a := 0; a < n.ActionSpaceSize(); a++ {
			if _, ok := n.Child(a); !ok {
				pending = append(pending, a)
			}
		}
		for _, action := range pending {
			if err := d.expandOne(n, action); err != nil {
				return err
			}
		}
		return nil
	}

	action, err := d.Expansion.Select(n, d.Rng)
	if err != nil {
		return errors.Wrap(err, "expansion policy")
	}
	return d.expandOne(n, action)
}

// expandOne materializes the child reached by action from parent,
// evaluates it, and backs up its value. It implements the environment
// snapshot discipline from the spec: the parent's clone is moved (not
// copied) into the last child expanded, and cloned for every earlier one.
func (d *Driver) expandOne(parent *tree.Node, action int) error {
	isLastUnexpanded := parent.NumChildren() == parent.ActionSpaceSize()-1

	var childEnv env.Environment
	if isLastUnexpanded {
		childEnv = parent.TakeSnapshot()
	} else {
		parentSnapshot := parent.EnvSnapshot()
		if parentSnapshot == nil {
			return errors.Wrap(tree.ErrInvariantViolation, "expansion requested on a node with no environment snapshot")
		}
		cloned, err := parentSnapshot.Clone()
		if err != nil {
			return errors.Wrap(tree.ErrCloneFailed, err.Error())
		}
		childEnv = cloned
	}

	obs, reward, terminated, truncated, _, err := childEnv.Step(action)
	if err != nil {
		return errors.Wrapf(err, "stepping cloned environment with action %d", action)
	}
	terminal := terminated || truncated

	var snapshotForChild env.Environment
	if !terminal {
		snapshotForChild = childEnv
	}

	child, err := parent.AddChild(action, reward, obs, terminal, snapshotForChild)
	if err != nil {
		return err
	}

	return d.evaluateAndBackup(child)
}

// evaluateAndBackup runs the value estimator over a freshly created node
// (root or newly expanded child) and backs up its estimate.
func (d *Driver) evaluateAndBackup(n *tree.Node) error {
	if n.Terminal() {
		n.SetValueEvaluation(0)
		d.backup(n, 0)
		return nil
	}
	v, err := d.Estimator.Evaluate(n)
	if err != nil {
		return err
	}
	n.SetValueEvaluation(v)
	d.backup(n, v)
	return nil
}

// backup propagates leaf value v from start toward the root, discounting
// by d.Discount and prepending each ancestor's own reward, recording one
// visit per ancestor walked (including start itself).
func (d *Driver) backup(start *tree.Node, v float32) {
	g := v
	for n := start; n != nil; n = n.Parent() {
		g = d.Discount*g + n.Reward()
		n.RecordVisit(g)
	}
}
