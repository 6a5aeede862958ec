// Package sampler draws indices from finite discrete distributions by
// inverse-transform sampling.
//
// 🚀 What does it do?
//
//	Given L non-negative weights (not necessarily normalized), the sampler
//	normalizes them, builds the cumulative distribution, draws u ∈ [0,1)
//	from an injected Source and returns the first index whose cumulative
//	mass meets or exceeds u.
//
// ✨ Key features:
//   - explicit randomness: every call takes a Source (math/rand.Rand fits)
//   - one-shot Sample / SampleValue, or a reusable Sampler with a cached CDF
//   - zero-weight entries are never selected
//   - the final cumulative value is forced to exactly 1.0, and the last
//     positive-weight index is a catch-all, so a valid index is always returned
//
// ⚙️ Usage:
//
//	rng := sampler.NewRand(42)
//	i, err := sampler.Sample([]float64{0.01, 0.85, 0.07, 0.07}, rng)
//
// Concurrency:
//
//	A *rand.Rand is not goroutine-safe. Give each goroutine its own stream,
//	e.g. via Derive(base, workerID).
//
// Performance:
//
//   - Sample:  O(L) per call (normalization + prefix sums + scan)
//   - Draw:    O(L) scan over a precomputed CDF, one Float64 per call
package sampler
