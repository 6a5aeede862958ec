package ifs_test

import (
	"testing"

	"github.com/katalvlaran/fractal/ifs"
	"github.com/stretchr/testify/require"
)

func TestRefine_DepthOneIsCopy(t *testing.T) {
	def := sierpinski(t)
	got, err := ifs.Refine(def, 1)
	require.NoError(t, err)
	require.NotSame(t, def, got)
	require.Equal(t, def.Weights(), got.Weights())
	for i := 0; i < def.Len(); i++ {
		require.Equal(t, def.Map(i).String(), got.Map(i).String())
	}
}

// TestRefine_MatchesSubdivision: one round of the depth-2 system equals the
// last window of two rounds of the original, point for point.
func TestRefine_MatchesSubdivision(t *testing.T) {
	for name, def := range map[string]*ifs.Definition{"dragon": dragon(t), "sierpinski": sierpinski(t)} {
		t.Run(name, func(t *testing.T) {
			refined, err := ifs.Refine(def, 2)
			require.NoError(t, err)
			require.Equal(t, def.Len()*def.Len(), refined.Len())

			twoRounds, err := ifs.Deterministic(def, ifs.WithNumIter(2))
			require.NoError(t, err)
			oneRound, err := ifs.Deterministic(refined, ifs.WithNumIter(1))
			require.NoError(t, err)

			start, err := ifs.DeterministicLen(def.Len(), 1)
			require.NoError(t, err)
			requirePointsInDelta(t, twoRounds[start:], oneRound[1:])
		})
	}
}

func TestRefine_Weights(t *testing.T) {
	def, err := ifs.FromMaps(dragon(t).Maps(), []float64{0.25, 0.75})
	require.NoError(t, err)

	refined, err := ifs.Refine(def, 2)
	require.NoError(t, err)
	w := refined.Weights()
	require.Len(t, w, 4)
	for i, want := range []float64{0.0625, 0.1875, 0.1875, 0.5625} {
		require.InDelta(t, want, w[i], eps)
	}

	deep, err := ifs.Refine(sierpinski(t), 3)
	require.NoError(t, err)
	sum := 0.0
	for _, p := range deep.Weights() {
		sum += p
	}
	require.Equal(t, 27, deep.Len())
	require.InDelta(t, 1.0, sum, 1e-12)

	// Chaos game runs on the refined system.
	pts, err := ifs.Random(deep, ifs.WithNumPoints(100), ifs.WithSeed(3))
	require.NoError(t, err)
	require.Len(t, pts, 100)
}

func TestRefine_Unweighted(t *testing.T) {
	def, err := ifs.FromMaps(dragon(t).Maps(), nil)
	require.NoError(t, err)

	refined, err := ifs.Refine(def, 3)
	require.NoError(t, err)
	require.Equal(t, 8, refined.Len())
	require.Nil(t, refined.Weights())
}

func TestRefine_Errors(t *testing.T) {
	_, err := ifs.Refine(dragon(t), 0)
	require.ErrorIs(t, err, ifs.ErrInvalidArgument)

	_, err = ifs.Refine(dragon(t), 40)
	require.ErrorIs(t, err, ifs.ErrInvalidArgument)

	_, err = ifs.Refine(nil, 2)
	require.ErrorIs(t, err, ifs.ErrInvalidDefinition)
}
