// Package chainmdp implements the chain MDP used in the spec's end-to-end
// scenario 3: a line of Length states where only the rightmost one is
// rewarding and terminal, two actions per state (left, right).
package chainmdp

import "github.com/torvik/mctscore/internal/env"

const (
	Left = iota
	Right
	NumActions
)

// Chain is a length-N line MDP: state 0 is the start, state Length-1 is
// the only rewarding, terminal state.
type Chain struct {
	Length int

	pos int
}

// New returns a Chain of the given length, reset to state 0.
func New(length int) *Chain {
	return &Chain{Length: length}
}

// Clone implements env.Environment.
func (c *Chain) Clone() (env.Environment, error) {
	clone := *c
	return &clone, nil
}

// ActionSpaceSize implements env.Environment.
func (c *Chain) ActionSpaceSize() int { return NumActions }

// Reset implements env.Environment.
func (c *Chain) Reset(seed int64) (env.Observation, env.Info, error) {
	c.pos = 0
	return c.pos, nil, nil
}

// Step implements env.Environment.
func (c *Chain) Step(action int) (env.Observation, float32, bool, bool, env.Info, error) {
	switch action {
	case Left:
		if c.pos > 0 {
			c.pos--
		}
	case Right:
		if c.pos < c.Length-1 {
			c.pos++
		}
	}
	atEnd := c.pos == c.Length-1
	var reward float32
	if atEnd {
		reward = 1
	}
	return c.pos, reward, atEnd, false, nil, nil
}

var _ env.Environment = (*Chain)(nil)
