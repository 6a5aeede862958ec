package sampler_test

import (
	"testing"

	"github.com/katalvlaran/fractal/sampler"
	"github.com/stretchr/testify/require"
	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// randomWeights builds an unnormalized integer-valued weight vector of size n.
func randomWeights(n int, seed int64) []float64 {
	rng := sampler.NewRand(seed)
	w := make([]float64, n)
	for i := range w {
		w[i] = float64(rng.Intn(n))
	}
	w[0]++ // never all zero

	return w
}

// TestSample_AgreesWithCategorical compares empirical frequencies against
// gonum's categorical distribution on the same weights.
func TestSample_AgreesWithCategorical(t *testing.T) {
	pdf := []float64{0.01, 0.85, 0.07, 0.07}
	const n = 100000

	s, err := sampler.New(pdf)
	require.NoError(t, err)
	rng := sampler.NewRand(77)
	ours := frequencies(len(pdf), n, func() int { return s.Draw(rng) })

	cat := distuv.NewCategorical(pdf, xrand.NewSource(77))
	ref := frequencies(len(pdf), n, func() int { return int(cat.Rand()) })

	require.InDeltaSlice(t, ref, ours, 0.01)
	require.InDeltaSlice(t, s.Probabilities(), ours, 0.01)
}

// BenchmarkSample measures the one-shot path (normalization on every call).
func BenchmarkSample(b *testing.B) {
	pdf := randomWeights(1000, 1)
	rng := sampler.NewRand(1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = sampler.Sample(pdf, rng)
	}
}

// BenchmarkSamplerDraw measures draws against a precomputed CDF.
func BenchmarkSamplerDraw(b *testing.B) {
	s, err := sampler.New(randomWeights(1000, 1))
	if err != nil {
		b.Fatal(err)
	}
	rng := sampler.NewRand(1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Draw(rng)
	}
}

// BenchmarkCategorical is the gonum reference for the same distribution size.
func BenchmarkCategorical(b *testing.B) {
	cat := distuv.NewCategorical(randomWeights(1000, 1), xrand.NewSource(1))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cat.Rand()
	}
}
