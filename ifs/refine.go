package ifs

import "fmt"

// Refine returns the depth-k system of def: one map per address
// (i₁, …, i_k), equal to w_{i_k} ∘ … ∘ w_{i₁}, with weight p_{i₁}·…·p_{i_k}.
// Addresses are enumerated in lexicographic order, so one Deterministic
// round of Refine(def, k) reproduces the last window of k rounds of def, and
// one chaos-game step stands for k steps of def. An unweighted def yields an
// unweighted result. depth 1 returns an equivalent copy of def.
//
// Complexity: Time O(L^k), Memory O(L^k).
//
// Errors:
//   - ErrInvalidArgument   — depth < 1, or L^k above MaxPoints.
//   - ErrInvalidDefinition — nil or empty def.
func Refine(def *Definition, depth int) (*Definition, error) {
	if depth < 1 {
		return nil, ifsErrorf(MethodRefine, fmt.Sprintf("depth must be ≥ 1, got %d", depth), ErrInvalidArgument)
	}
	if err := def.validate(MethodRefine, false); err != nil {
		return nil, err
	}
	numMaps := len(def.maps)
	count := 1
	for i := 0; i < depth; i++ {
		if count > MaxPoints/numMaps {
			return nil, ifsErrorf(MethodRefine, fmt.Sprintf("%d^%d maps exceed %d", numMaps, depth, MaxPoints), ErrInvalidArgument)
		}
		count *= numMaps
	}

	maps := make([]AffineMap, len(def.maps))
	copy(maps, def.maps)
	var weights []float64
	if def.weights != nil {
		weights = make([]float64, len(def.weights))
		copy(weights, def.weights)
	}
	for level := 1; level < depth; level++ {
		next := make([]AffineMap, 0, len(maps)*numMaps)
		var nextW []float64
		if weights != nil {
			nextW = make([]float64, 0, cap(next))
		}
		for i, prefix := range maps {
			for k, w := range def.maps {
				m, err := Compose(w, prefix)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", MethodRefine, err)
				}
				next = append(next, m)
				if weights != nil {
					nextW = append(nextW, weights[i]*def.weights[k])
				}
			}
		}
		maps, weights = next, nextW
	}

	return &Definition{maps: maps, weights: weights}, nil
}
