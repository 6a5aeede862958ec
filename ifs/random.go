package ifs

import (
	"fmt"

	"github.com/katalvlaran/fractal/sampler"
)

// Random — chaos-game generator.
//
// Algorithm Outline:
//  1. z[0] = (0, z0).
//  2. For k = 1 … NumPoints-1:
//     r    ← index drawn from the definition weights (one Float64 from the source)
//     z[k] = A[r]·z[k-1] + T[r]
//
// The output is a deterministic function of the source's draw sequence:
// replaying the same draws reproduces the same points. Exactly NumPoints-1
// draws are consumed.
//
// Options: WithNumPoints (default 1000), WithZ0 (default 0), WithSource or
// WithSeed (default sampler.NewRand(0)).
//
// Complexity:
//
//	Time   = O(NumPoints · L)   (L for the CDF scan per step)
//	Memory = O(NumPoints)
//
// Errors:
//   - ErrInvalidArgument     — NumPoints < 1 or > MaxPoints.
//   - ErrInvalidDefinition   — nil/empty definition, or len(weights) != len(maps).
//   - sampler.ErrInvalidDistribution (wrapped) — weights all zero, negative or non-finite.
func Random(def *Definition, opts ...Option) ([]Point, error) {
	cfg := newConfig(opts...)
	if cfg.numPoints < 1 || cfg.numPoints > MaxPoints {
		return nil, ifsErrorf(MethodRandom, fmt.Sprintf("numpoints must be in [1, %d], got %d", MaxPoints, cfg.numPoints), ErrInvalidArgument)
	}
	if err := def.validate(MethodRandom, true); err != nil {
		return nil, err
	}
	s, err := sampler.New(def.weights)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodRandom, err)
	}
	src := cfg.source()

	z := make([]Point, cfg.numPoints)
	z[0] = Point{0, cfg.seedOrdinate(DefaultRandomZ0)}
	var r int
	for k := 1; k < len(z); k++ {
		r = s.Draw(src)
		z[k] = def.maps[r].Apply(z[k-1])
	}

	return z, nil
}
