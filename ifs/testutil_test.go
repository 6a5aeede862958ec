package ifs_test

import (
	"testing"

	"github.com/katalvlaran/fractal/ifs"
	"github.com/katalvlaran/fractal/matrix"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

// scriptedSource replays fixed draws, repeating the last one when exhausted,
// and counts how many were consumed.
type scriptedSource struct {
	draws []float64
	calls int
}

func (s *scriptedSource) Float64() float64 {
	i := s.calls
	s.calls++
	if i >= len(s.draws) {
		return s.draws[len(s.draws)-1]
	}

	return s.draws[i]
}

// dense builds a 2×2 matrix from row-major coefficients.
func dense(t *testing.T, a, b, c, d float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows([][]float64{{a, b}, {c, d}})
	require.NoError(t, err)

	return m
}

// halfMaps is a two-map system: z/2 and z/2 + (0.5, 0), weights {1,1}.
func halfMaps(t *testing.T) *ifs.Definition {
	t.Helper()
	def, err := ifs.NewDefinition(
		[]matrix.Matrix{dense(t, 0.5, 0, 0, 0.5), dense(t, 0.5, 0, 0, 0.5)},
		[][]float64{{0, 0}, {0.5, 0}},
		[]float64{1, 1},
	)
	require.NoError(t, err)

	return def
}

// sierpinski mirrors the catalog table (three half-scalings).
func sierpinski(t *testing.T) *ifs.Definition {
	t.Helper()
	def, err := ifs.FromMaps([]ifs.AffineMap{
		ifs.MustAffineMap(0.5, 0, 0, 0.5, 0, 0.5),
		ifs.MustAffineMap(0.5, 0, 0, 0.5, 0, 0),
		ifs.MustAffineMap(0.5, 0, 0, 0.5, 0.5, 0),
	}, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3})
	require.NoError(t, err)

	return def
}

// dragon mirrors the catalog Heighway dragon.
func dragon(t *testing.T) *ifs.Definition {
	t.Helper()
	def, err := ifs.FromMaps([]ifs.AffineMap{
		ifs.MustAffineMap(0.5, -0.5, 0.5, 0.5, 0, 0),
		ifs.MustAffineMap(-0.5, -0.5, 0.5, -0.5, 1, 0),
	}, []float64{0.5, 0.5})
	require.NoError(t, err)

	return def
}

// requirePointsInDelta compares point sequences element-wise.
func requirePointsInDelta(t *testing.T, want, got []ifs.Point) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDelta(t, want[i].X(), got[i].X(), eps, "point %d x", i)
		require.InDelta(t, want[i].Y(), got[i].Y(), eps, "point %d y", i)
	}
}
