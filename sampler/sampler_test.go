package sampler_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fractal/sampler"
	"github.com/stretchr/testify/require"
)

// TestSample_IndexInRange checks every draw lands in [0, L).
func TestSample_IndexInRange(t *testing.T) {
	pdf := []float64{0.01, 0.85, 0.07, 0.07}
	rng := sampler.NewRand(11)
	for i := 0; i < 10000; i++ {
		idx, err := sampler.Sample(pdf, rng)
		require.NoError(t, err)
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, len(pdf))
	}
}

// TestSample_InverseTransform pins the u → index mapping on an unnormalized vector.
// Weights {1,1,2} give cdf {0.25, 0.5, 1.0}.
func TestSample_InverseTransform(t *testing.T) {
	pdf := []float64{1, 1, 2}
	cases := []struct {
		name string
		u    float64
		want int
	}{
		{"zero", 0, 0},
		{"inside first", 0.1, 0},
		{"on first boundary", 0.25, 0},
		{"just past first", 0.2500001, 1},
		{"on second boundary", 0.5, 1},
		{"last bucket", 0.75, 2},
		{"almost one", 0.9999999, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			idx, err := sampler.Sample(pdf, constSource(tc.u))
			require.NoError(t, err)
			require.Equal(t, tc.want, idx)
		})
	}
}

// TestSample_FixedSourceIsStable repeats a draw with the same scripted value.
func TestSample_FixedSourceIsStable(t *testing.T) {
	pdf := []float64{3, 1, 4, 1, 5}
	first, err := sampler.Sample(pdf, constSource(0.42))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		idx, err := sampler.Sample(pdf, constSource(0.42))
		require.NoError(t, err)
		require.Equal(t, first, idx)
	}
}

// TestSample_Degenerate puts all mass on k and checks k is always returned,
// including for the u=0 and u=1 edge draws.
func TestSample_Degenerate(t *testing.T) {
	for k := 0; k < 4; k++ {
		pdf := make([]float64, 4)
		pdf[k] = 1
		src := &scriptedSource{draws: []float64{0, 0.3, 0.999999, 1.0}}
		for i := 0; i < 4; i++ {
			idx, err := sampler.Sample(pdf, src)
			require.NoError(t, err)
			require.Equal(t, k, idx, "draw %d", i)
		}
	}
}

// TestSample_DrawOfOneSelectsLast covers the measure-zero u == 1.0 case where
// rounding could leave every cumulative bucket below the draw.
func TestSample_DrawOfOneSelectsLast(t *testing.T) {
	pdf := []float64{0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1}
	idx, err := sampler.Sample(pdf, constSource(1.0))
	require.NoError(t, err)
	require.Equal(t, len(pdf)-1, idx)

	// Trailing zeros: the last positive-weight index is the catch-all.
	idx, err = sampler.Sample([]float64{1, 2, 0, 0}, constSource(1.0))
	require.NoError(t, err)
	require.Equal(t, 1, idx)
}

func TestSample_ZeroWeightNeverSelected(t *testing.T) {
	pdf := []float64{0, 1, 0, 1}
	rng := sampler.NewRand(3)
	for i := 0; i < 2000; i++ {
		idx, err := sampler.Sample(pdf, rng)
		require.NoError(t, err)
		require.Contains(t, []int{1, 3}, idx)
	}
}

// TestSample_ConsumesOneDraw verifies a single Float64 per call.
func TestSample_ConsumesOneDraw(t *testing.T) {
	src := &scriptedSource{draws: []float64{0.1, 0.9, 0.5}}
	_, err := sampler.Sample([]float64{1, 1}, src)
	require.NoError(t, err)
	require.Equal(t, 1, src.pos)
}

func TestSample_Errors(t *testing.T) {
	_, err := sampler.Sample(nil, constSource(0.5))
	require.ErrorIs(t, err, sampler.ErrInvalidArgument)

	_, err = sampler.Sample([]float64{1}, nil)
	require.ErrorIs(t, err, sampler.ErrInvalidArgument)

	bad := [][]float64{
		{0, 0, 0},
		{1, -1},
		{math.NaN(), 1},
		{math.Inf(1), 1},
		{math.MaxFloat64, math.MaxFloat64},
	}
	for _, pdf := range bad {
		_, err = sampler.Sample(pdf, constSource(0.5))
		require.ErrorIs(t, err, sampler.ErrInvalidDistribution, "pdf %v", pdf)
	}
}

// TestSampleValue returns the raw weight at the selected index.
func TestSampleValue(t *testing.T) {
	v, err := sampler.SampleValue([]float64{2, 6}, constSource(0.5))
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	v, err = sampler.SampleValue([]float64{2, 6}, constSource(0.1))
	require.NoError(t, err)
	require.Equal(t, 2.0, v)

	_, err = sampler.SampleValue([]float64{0}, constSource(0.1))
	require.ErrorIs(t, err, sampler.ErrInvalidDistribution)

	_, err = sampler.SampleValue([]float64{1}, nil)
	require.ErrorIs(t, err, sampler.ErrInvalidArgument)
}

func TestNew_CopiesInput(t *testing.T) {
	pdf := []float64{1, 3}
	s, err := sampler.New(pdf)
	require.NoError(t, err)
	pdf[0] = 100

	require.Equal(t, 2, s.Len())
	require.Equal(t, 1.0, s.Weight(0))
	require.InDeltaSlice(t, []float64{0.25, 0.75}, s.Probabilities(), 1e-15)
}

// TestSample_EmpiricalFrequencies checks convergence to the normalized weights.
func TestSample_EmpiricalFrequencies(t *testing.T) {
	pdf := []float64{0.05, 0.4, 0.4, 0.15}
	s, err := sampler.New(pdf)
	require.NoError(t, err)

	rng := sampler.NewRand(2024)
	got := frequencies(len(pdf), 200000, func() int { return s.Draw(rng) })
	require.InDeltaSlice(t, pdf, got, 0.01)
}

// TestNewRand_SeedPolicy pins the seed==0 ⇒ DefaultSeed rule.
func TestNewRand_SeedPolicy(t *testing.T) {
	a := sampler.NewRand(0)
	b := sampler.NewRand(sampler.DefaultSeed)
	for i := 0; i < 10; i++ {
		require.Equal(t, a.Float64(), b.Float64())
	}
}

// TestDerive_Streams checks derived streams are reproducible and distinct.
func TestDerive_Streams(t *testing.T) {
	s1 := sampler.Derive(sampler.NewRand(5), 1)
	s1again := sampler.Derive(sampler.NewRand(5), 1)
	s2 := sampler.Derive(sampler.NewRand(5), 2)

	x1, x1again, x2 := s1.Int63(), s1again.Int63(), s2.Int63()
	require.Equal(t, x1, x1again)
	require.NotEqual(t, x1, x2)

	// nil base uses the default parent and stays deterministic.
	require.Equal(t, sampler.Derive(nil, 9).Int63(), sampler.Derive(nil, 9).Int63())
}
