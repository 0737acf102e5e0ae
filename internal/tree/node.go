// Package tree implements the in-memory search tree grown by the search
// driver: node statistics, parent back-references for backup, and the
// cloned-environment discipline that lets expansion simulate
// counterfactual futures without re-stepping a shared environment.
package tree

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/pkg/errors"

	"github.com/torvik/mctscore/internal/env"
	"github.com/torvik/mctscore/internal/generics"
)

// Node is one position in the search tree. It owns everything needed to
// backup through it (reward, parent) and, while it still has unexpanded
// actions, a cloned environment snapshot to expand further children from.
//
// Node is not safe for concurrent use; a Driver grows one Node tree on a
// single goroutine (see package search).
type Node struct {
	parent *Node

	// children maps an action index to the child reached by taking it.
	// A missing key means the action has not been expanded yet.
	children map[int]*Node

	actionSpaceSize int

	// reward received on the transition into this node. For a root built
	// by the search driver it is the incoming reward passed to Search, and
	// backup adds it like any other node's reward.
	reward float32

	// observation produced on entry; nil if the transition terminated
	// with no meaningful observation.
	observation env.Observation

	terminal bool

	visits int

	// subtreeSum accumulates, over every visit that passed through this
	// node, (discounted cumulative reward + discounted leaf value).
	// subtreeSum / visits is the node's current value estimate.
	subtreeSum float32

	// valueEvaluation is the scalar the value estimator produced when
	// this node was first evaluated. Immutable afterwards.
	valueEvaluation float32

	// prior is the optional per-action distribution a learned estimator
	// supplied; nil for non-learned estimators.
	prior []float32

	// envSnapshot is a clone of the environment in the state just after
	// entering this node. Present iff the node is non-terminal and still
	// has at least one unexpanded action. Consumed and cleared when the
	// last child is expanded (see Driver.expandOne in package search).
	envSnapshot env.Environment

	// scratch is per-search memoization storage for tree-evaluation
	// policies that recurse over the tree (e.g. include-self variants).
	// It is never read or written by the core itself.
	scratch any
}

// New constructs a node. actionSpaceSize must be positive; it is the
// caller's (the search driver's) responsibility to validate this before
// building a tree, since the error belongs to ErrInvalidActionSpace, not
// to node construction.
func New(parent *Node, actionSpaceSize int, reward float32, obs env.Observation, terminal bool, snapshot env.Environment) *Node {
	n := &Node{
		parent:          parent,
		actionSpaceSize: actionSpaceSize,
		reward:          reward,
		observation:     obs,
		terminal:        terminal,
		envSnapshot:     snapshot,
	}
	if !terminal {
		n.children = make(map[int]*Node, actionSpaceSize)
	}
	return n
}

// Parent returns the back-reference used during backup; nil at the root.
func (n *Node) Parent() *Node { return n.parent }

// ActionSpaceSize returns A for this node's tree.
func (n *Node) ActionSpaceSize() int { return n.actionSpaceSize }

// Reward returns the scalar received on the transition into this node.
func (n *Node) Reward() float32 { return n.reward }

// Observation returns the observation produced on entry.
func (n *Node) Observation() env.Observation { return n.observation }

// Terminal reports whether the environment reported termination or
// truncation on entry into this node.
func (n *Node) Terminal() bool { return n.terminal }

// Visits returns the number of backups that have passed through this
// node.
func (n *Node) Visits() int { return n.visits }

// SubtreeSum returns the running sum backed up through this node.
func (n *Node) SubtreeSum() float32 { return n.subtreeSum }

// ValueEvaluation returns the scalar the value estimator produced the
// first time this node was evaluated.
func (n *Node) ValueEvaluation() float32 { return n.valueEvaluation }

// Prior returns the per-action distribution supplied by a learned
// estimator, or nil if none was supplied.
func (n *Node) Prior() []float32 { return n.prior }

// EnvSnapshot returns the node's cloned environment, or nil if it has
// already been consumed by expanding the last unexpanded action, or if
// the node never held one (e.g. terminal nodes).
func (n *Node) EnvSnapshot() env.Environment { return n.envSnapshot }

// Child returns the child reached at the given action, and whether it
// exists.
func (n *Node) Child(action int) (*Node, bool) {
	c, ok := n.children[action]
	return c, ok
}

// Children returns the live child table. Callers must not mutate it;
// use AddChild.
func (n *Node) Children() map[int]*Node { return n.children }

// NumChildren returns how many actions have been expanded so far.
func (n *Node) NumChildren() int { return len(n.children) }

// SetValueEvaluation records the value estimator's output for this node.
// Only meaningful the first time a node is evaluated; callers must not
// call this more than once per node.
func (n *Node) SetValueEvaluation(v float32) { n.valueEvaluation = v }

// SetPrior records the action prior a learned estimator supplied.
func (n *Node) SetPrior(prior []float32) { n.prior = prior }

// Scratch returns per-search memoization storage for tree-evaluation
// policies; nil until first set with SetScratch.
func (n *Node) Scratch() any { return n.scratch }

// SetScratch stores per-search memoization storage.
func (n *Node) SetScratch(v any) { n.scratch = v }

// ResetVarVal clears any cached per-search scratch stored on the node, so
// a fresh tree-evaluation pass does not observe stale memoization from a
// previous pass over the same tree.
func (n *Node) ResetVarVal() { n.scratch = nil }

// Step returns the child reached by taking action. It fails with
// ErrUnexpandedAction if the action has not been expanded; it never
// mutates statistics.
func (n *Node) Step(action int) (*Node, error) {
	c, ok := n.children[action]
	if !ok {
		return nil, errors.Wrapf(ErrUnexpandedAction, "action %d", action)
	}
	return c, nil
}

// IsFullyExpanded reports whether every action in [0, A) has a child.
func (n *Node) IsFullyExpanded() bool {
	return len(n.children) == n.actionSpaceSize
}

// SampleUnexploredAction uniformly picks one action index in [0, A) that
// has no child yet, consuming randomness from rng. It fails with
// ErrFullyExpanded if none remains.
func (n *Node) SampleUnexploredAction(rng *rand.Rand) (int, error) {
	remaining := n.actionSpaceSize - len(n.children)
	if remaining <= 0 {
		return 0, ErrFullyExpanded
	}
	// Draw the position of the chosen action among the unexpanded ones,
	// then walk the actions in index order to it, so we need no auxiliary
	// slice.
	skip := rng.IntN(remaining)
	for a := 0; a < n.actionSpaceSize; a++ {
		if _, ok := n.children[a]; ok {
			continue
		}
		if skip == 0 {
			return a, nil
		}
		skip--
	}
	// Unreachable if actionSpaceSize and children are consistent.
	return 0, errors.Wrap(ErrInvariantViolation, "sample accounting mismatch")
}

// DefaultValue returns subtreeSum / visits, or 0 if the node has never
// been visited.
func (n *Node) DefaultValue() float32 {
	if n.visits == 0 {
		return 0
	}
	return n.subtreeSum / float32(n.visits)
}

// AddChild creates and records the child reached by expanding action. It
// fails with ErrInvariantViolation if a child for that action already
// exists -- expansion policies must only call this for unexpanded
// actions.
func (n *Node) AddChild(action int, reward float32, obs env.Observation, terminal bool, snapshot env.Environment) (*Node, error) {
	if _, ok := n.children[action]; ok {
		return nil, errors.Wrapf(ErrInvariantViolation, "child already expanded for action %d", action)
	}
	c := New(n, n.actionSpaceSize, reward, obs, terminal, snapshot)
	n.children[action] = c
	return c, nil
}

// RecordVisit folds one backup step into this node's statistics: g is the
// already-discounted-and-reward-prepended running return for this node
// (see Driver.backup in package search).
func (n *Node) RecordVisit(g float32) {
	n.subtreeSum += g
	n.visits++
}

// ReleaseSnapshot clears the node's cloned environment, e.g. once its
// last unexpanded action has been expanded by taking ownership of the
// snapshot instead of cloning it again.
func (n *Node) ReleaseSnapshot() {
	n.envSnapshot = nil
}

// TakeSnapshot returns and clears the node's cloned environment in one
// step, transferring ownership to the caller (the expansion of the last
// unexpanded action).
func (n *Node) TakeSnapshot() env.Environment {
	s := n.envSnapshot
	n.envSnapshot = nil
	return s
}

// DebugString renders one line per expanded child, in action order, for
// klog.V(2) tracing of a search in progress. Map iteration order in Go is
// randomized, so children are walked via generics.SortedKeys rather than
// ranged over directly.
func (n *Node) DebugString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "node(visits=%d, value=%.4f, terminal=%v)", n.visits, n.DefaultValue(), n.terminal)
	for action := range generics.SortedKeys(n.children) {
		c := n.children[action]
		fmt.Fprintf(&b, "\n  action=%d -> visits=%d value=%.4f", action, c.visits, c.DefaultValue())
	}
	return b.String()
}
