package ifs

import "fmt"

// Deterministic — exhaustive recursive subdivision.
//
// Algorithm Outline:
//  1. z = [(0, z0)]; window [i1, i2) = [0, 1) covers the points of the
//     previous round.
//  2. Repeat NumIter times:
//     batch ← buffer of exactly (i2-i1)·L points
//     for each w in z[i1:i2], for each map k in order: append A[k]·w + T[k]
//     z ← z ++ batch
//     i1, i2 ← i2, i2 + len(batch)
//  3. Return z.
//
// Growth law: round r's window holds Lʳ points, so after n rounds
// len(z) = 1 + L + L² + … + Lⁿ (see DeterministicLen). The accumulated slice
// is reserved to that size up front.
//
// Weights are not used: every map is applied to every point every round.
// For unevenly weighted systems the density of the result differs from the
// chaos game's; this is the documented behaviour, not a defect to patch here.
//
// Options: WithNumIter (default 5), WithZ0 (default 1). Other options are ignored.
//
// Complexity:
//
//	Time   = O(len(z))
//	Memory = O(len(z))   — exponential in NumIter
//
// Errors:
//   - ErrInvalidArgument    — NumIter < 0, or the output length exceeds MaxPoints.
//   - ErrInvalidDefinition  — nil or empty definition.
func Deterministic(def *Definition, opts ...Option) ([]Point, error) {
	cfg := newConfig(opts...)
	if cfg.numIter < 0 {
		return nil, ifsErrorf(MethodDeterministic, fmt.Sprintf("numiter must be ≥ 0, got %d", cfg.numIter), ErrInvalidArgument)
	}
	if err := def.validate(MethodDeterministic, false); err != nil {
		return nil, err
	}
	numMaps := len(def.maps)
	total, err := DeterministicLen(numMaps, cfg.numIter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodDeterministic, err)
	}

	z := make([]Point, 1, total)
	z[0] = Point{0, cfg.seedOrdinate(DefaultDeterministicZ0)}
	i1, i2 := 0, 1
	var batch []Point
	for round := 0; round < cfg.numIter; round++ {
		batch = make([]Point, 0, (i2-i1)*numMaps)
		for _, w := range z[i1:i2] {
			for k := range def.maps {
				batch = append(batch, def.maps[k].Apply(w))
			}
		}
		z = append(z, batch...)
		i1, i2 = i2, i2+len(batch)
	}

	return z, nil
}

// DeterministicLen returns 1 + L + L² + … + Lⁿ, the number of points
// Deterministic produces with L = numMaps maps and n rounds.
//
// Errors:
//   - ErrInvalidArgument — L < 1, n < 0, or the sum exceeds MaxPoints.
func DeterministicLen(numMaps, n int) (int, error) {
	if numMaps < 1 || n < 0 {
		return 0, ifsErrorf(MethodDeterministic, fmt.Sprintf("need L ≥ 1 and n ≥ 0, got L=%d n=%d", numMaps, n), ErrInvalidArgument)
	}
	if numMaps == 1 {
		if n >= MaxPoints {
			return 0, ifsErrorf(MethodDeterministic, fmt.Sprintf("%d rounds exceed %d points", n, MaxPoints), ErrInvalidArgument)
		}
		return n + 1, nil
	}
	total, layer := 1, 1
	for i := 0; i < n; i++ {
		// total + layer·L must stay within MaxPoints.
		if layer > (MaxPoints-total)/numMaps {
			return 0, ifsErrorf(MethodDeterministic, fmt.Sprintf("round %d exceeds %d points", i+1, MaxPoints), ErrInvalidArgument)
		}
		layer *= numMaps
		total += layer
	}

	return total, nil
}
