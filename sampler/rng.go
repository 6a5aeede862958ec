// Package sampler - RNG utilities shared by the generators.
//
// Goals:
//   - Determinism: same seed ⇒ identical draws.
//   - No time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Use Derive to create independent
//     streams for parallel workers.
package sampler

import "math/rand"

// Source yields uniform draws in [0,1). *math/rand.Rand satisfies it; tests
// substitute scripted sources to pin the draw sequence.
type Source interface {
	Float64() float64
}

// DefaultSeed is the fixed seed used when callers pass seed==0.
const DefaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the provided seed verbatim.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier with a
// SplitMix64-style finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// Derive creates an independent deterministic stream from base and a stream id.
// base.Int63() is consumed once; base==nil uses DefaultSeed as the parent.
// Call during setup, not in hot loops.
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	parent := DefaultSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
