package tree

import "github.com/pkg/errors"

// Sentinel errors surfaced by Node operations and the search driver built
// on top of it. Callers may compare against these with errors.Is after
// unwrapping (github.com/pkg/errors preserves the cause through Wrapf).
var (
	// ErrUnexpandedAction is returned by Node.Step for an action that has
	// no corresponding child yet.
	ErrUnexpandedAction = errors.New("tree: action has not been expanded")

	// ErrFullyExpanded is returned by Node.SampleUnexploredAction when
	// every action already has a child.
	ErrFullyExpanded = errors.New("tree: node is fully expanded")

	// ErrInvalidActionSpace is returned when an environment reports a
	// non-positive or otherwise invalid action space size.
	ErrInvalidActionSpace = errors.New("tree: invalid action space size")

	// ErrCloneFailed wraps an environment's refusal to clone.
	ErrCloneFailed = errors.New("tree: environment clone failed")

	// ErrPredictorFailed wraps an error raised by a learned predictor.
	ErrPredictorFailed = errors.New("tree: predictor evaluation failed")

	// ErrInvariantViolation indicates an internal consistency check
	// failed -- e.g. a child already present for an action about to be
	// expanded. It signals a bug in a policy implementation, not a
	// recoverable runtime condition.
	ErrInvariantViolation = errors.New("tree: invariant violation")
)
