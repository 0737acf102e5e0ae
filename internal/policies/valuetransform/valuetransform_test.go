package valuetransform

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdentity(t *testing.T) {
	var id Identity
	require.Equal(t, float32(3.5), id.Transform(3.5))
}

func TestMinMax(t *testing.T) {
	mm := NewMinMax()
	require.Equal(t, float32(0), mm.Transform(5)) // before any Update, degenerate

	mm.Update(-1)
	mm.Update(1)
	mm.Update(0)
	require.Equal(t, float32(0), mm.Transform(-1))
	require.Equal(t, float32(1), mm.Transform(1))
	require.InDelta(t, float32(0.5), mm.Transform(0), 1e-6)
}

func TestZScore(t *testing.T) {
	z := NewZScore()
	z.Update(1)
	require.Equal(t, float32(0), z.Transform(1)) // single sample: v - mean

	z.Update(3)
	// mean=2, variance=((1-2)^2+(3-2)^2)/1=2, std=sqrt(2)
	require.InDelta(t, float32(0.7071), z.Transform(3), 1e-3)
}
