package players

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/torvik/mctscore/internal/parameters"
)

func TestNewFromParams_Defaults(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	cfg, err := NewFromParams(parameters.Params{}, nil, rng)
	require.NoError(t, err)
	require.Equal(t, 200, cfg.Budget)
	require.NotNil(t, cfg.Driver)
	require.NotNil(t, cfg.TreeEvaluation)
}

func TestNewFromParams_UnknownKeyRejected(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	params := parameters.NewFromConfigString("budget=50,discont=0.9")
	_, err := NewFromParams(params, nil, rng)
	require.Error(t, err)
	require.Contains(t, err.Error(), "discont")
}

func TestNewFromParams_UnknownSelectionRejected(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	params := parameters.NewFromConfigString("selection=minimax")
	_, err := NewFromParams(params, nil, rng)
	require.Error(t, err)
}
