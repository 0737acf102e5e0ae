// Package valuetransform implements the stateless-per-action value
// transforms (τ) PUCT applies to a child's default value before it enters
// the selection score, keeping the exploration term meaningfully scaled
// regardless of the raw value range.
package valuetransform

import "github.com/chewxy/math32"

// Transform is a scale-normalizing function f32 -> f32, with an optional
// Update hook that maintains whatever running statistics the transform
// needs (min/max, mean/variance). Update must be called with every value
// observed in the tree, regardless of which node it came from; Transform
// itself must not depend on anything but the value passed in and that
// running state -- never on which child is being scored.
type Transform interface {
	Transform(v float32) float32
	Update(v float32)
}

// Identity returns v unchanged and tracks no state.
type Identity struct{}

func (Identity) Transform(v float32) float32 { return v }
func (Identity) Update(float32)              {}

var _ Transform = Identity{}

// MinMax rescales v into [0, 1] using the running min/max of every value
// observed so far. Before any value has been observed (or when min ==
// max), it returns 0.
type MinMax struct {
	min, max float32
	seen     bool
}

// NewMinMax returns an empty running min-max transform.
func NewMinMax() *MinMax {
	return &MinMax{}
}

func (t *MinMax) Update(v float32) {
	if !t.seen {
		t.min, t.max = v, v
		t.seen = true
		return
	}
	if v < t.min {
		t.min = v
	}
	if v > t.max {
		t.max = v
	}
}

func (t *MinMax) Transform(v float32) float32 {
	if !t.seen || t.max == t.min {
		return 0
	}
	return (v - t.min) / (t.max - t.min)
}

var _ Transform = (*MinMax)(nil)

// ZScore rescales v by the running mean and standard deviation of every
// value observed so far, using Welford's online algorithm. Before at
// least two values have been observed, it returns v - mean (i.e. treats
// the unknown standard deviation as 1).
type ZScore struct {
	count int
	mean  float32
	m2    float32
}

// NewZScore returns an empty running z-score transform.
func NewZScore() *ZScore {
	return &ZScore{}
}

func (t *ZScore) Update(v float32) {
	t.count++
	delta := v - t.mean
	t.mean += delta / float32(t.count)
	delta2 := v - t.mean
	t.m2 += delta * delta2
}

func (t *ZScore) Transform(v float32) float32 {
	if t.count < 2 {
		return v - t.mean
	}
	variance := t.m2 / float32(t.count-1)
	std := math32.Sqrt(variance)
	if std == 0 {
		return 0
	}
	return (v - t.mean) / std
}

var _ Transform = (*ZScore)(nil)
