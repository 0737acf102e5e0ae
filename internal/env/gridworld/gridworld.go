// Package gridworld implements a tiny deterministic grid environment used
// to exercise and test the search core: an agent moves on an N x N grid
// toward a fixed goal cell, receiving reward 1 on arrival and 0
// otherwise, grounded on the end-to-end scenario of a non-slippery 4x4
// grid with a single goal.
package gridworld

import (
	"github.com/pkg/errors"

	"github.com/torvik/mctscore/internal/env"
)

// Action indices: the four cardinal moves.
const (
	Up = iota
	Down
	Left
	Right
	NumActions
)

// Observation is the agent's (row, col) position on the grid.
type Observation struct {
	Row, Col int
}

// Grid is a deterministic N x N gridworld with a single goal cell at
// (Size-1, Size-1). Reward is 1 on the step that reaches the goal, 0
// otherwise; the episode terminates on reaching the goal and truncates
// after MaxSteps steps.
type Grid struct {
	Size     int
	MaxSteps int

	row, col int
	steps    int
	done     bool
}

// New returns a Grid of the given size with the given per-episode step
// budget, reset to the top-left corner.
func New(size, maxSteps int) *Grid {
	g := &Grid{Size: size, MaxSteps: maxSteps}
	g.row, g.col = 0, 0
	return g
}

// Clone implements env.Environment.
func (g *Grid) Clone() (env.Environment, error) {
	clone := *g
	return &clone, nil
}

// ActionSpaceSize implements env.Environment.
func (g *Grid) ActionSpaceSize() int { return NumActions }

// Reset implements env.Environment. The grid is deterministic, so seed is
// accepted but otherwise unused beyond satisfying the interface.
func (g *Grid) Reset(seed int64) (env.Observation, env.Info, error) {
	g.row, g.col = 0, 0
	g.steps = 0
	g.done = false
	return Observation{Row: g.row, Col: g.col}, nil, nil
}

// Step implements env.Environment.
func (g *Grid) Step(action int) (env.Observation, float32, bool, bool, env.Info, error) {
	if g.done {
		return nil, 0, false, false, nil, errors.New("gridworld: step called after episode finished")
	}
	switch action {
	case Up:
		if g.row > 0 {
			g.row--
		}
	case Down:
		if g.row < g.Size-1 {
			g.row++
		}
	case Left:
		if g.col > 0 {
			g.col--
		}
	case Right:
		if g.col < g.Size-1 {
			g.col++
		}
	default:
		return nil, 0, false, false, nil, errors.Errorf("gridworld: invalid action %d", action)
	}
	g.steps++

	atGoal := g.row == g.Size-1 && g.col == g.Size-1
	var reward float32
	if atGoal {
		reward = 1
		g.done = true
	}
	truncated := !atGoal && g.steps >= g.MaxSteps
	if truncated {
		g.done = true
	}
	return Observation{Row: g.row, Col: g.col}, reward, atGoal, truncated, nil, nil
}

var _ env.Environment = (*Grid)(nil)
