// Package env defines the capability set the search core requires of any
// simulatable environment, and of the external value/policy predictor it
// may consult. Both are opaque to the core: it never introspects
// observation contents, it only routes them to the predictor and back to
// the caller.
package env

// Observation is whatever an Environment produces on reset/step. The core
// never inspects it.
type Observation any

// Info carries auxiliary, environment-defined diagnostics alongside a
// step or reset. The core never inspects it.
type Info any

// Environment is the simulatable, discrete-action, episodic decision
// process the search core plans over. Implementations must support deep
// cloning so the core can explore counterfactual futures without
// disturbing the caller's environment.
type Environment interface {
	// Clone returns an independent deep copy whose future evolution
	// (Step, Reset) never affects the receiver.
	Clone() (Environment, error)

	// Step advances the environment by one discrete action and reports
	// the resulting observation, reward, and termination status.
	Step(action int) (obs Observation, reward float32, terminated, truncated bool, info Info, err error)

	// ActionSpaceSize returns A, the number of discrete actions valid at
	// every state during an episode. Constant across an episode.
	ActionSpaceSize() int

	// Reset returns the environment to its initial state, fixing the RNG
	// seed so that subsequent Step calls are reproducible.
	Reset(seed int64) (obs Observation, info Info, err error)
}

// Predictor is the external, learned value estimator collaborator. The
// core consumes only this contract; training, architecture, and batching
// strategy are the caller's concern.
type Predictor interface {
	// Evaluate returns a scalar value estimate and an action prior for
	// the given observation. prior must be non-negative and sum to 1.
	Evaluate(obs Observation) (value float32, prior []float32, err error)

	// Device is an opaque identifier for where this predictor runs; the
	// core never interprets it.
	Device() string
}
