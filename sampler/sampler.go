package sampler

import "math"

// Sampler — inverse-transform sampling over a fixed discrete distribution.
//
// Algorithm Outline:
//  1. Validate weights: L ≥ 1, every w[i] finite and ≥ 0, Σw > 0.
//  2. Normalize p[i] = w[i] / Σw and build prefix sums cdf[i] = p[0] + … + p[i].
//  3. Force cdf[i] = 1.0 for every i ≥ last, where last is the final index
//     with positive weight (rounding can leave Σp slightly below 1).
//  4. Per draw: u ← src.Float64(); return the smallest i with cdf[i] ≥ u
//     and w[i] > 0; if none qualifies, return last.
//
// Complexity:
//
//	New  — Time O(L), Memory O(L)
//	Draw — Time O(L), Memory O(1)
type Sampler struct {
	weights []float64 // caller's weights, copied
	probs   []float64 // normalized weights
	cdf     []float64 // prefix sums of probs, cdf[last:] == 1
	last    int       // highest index with positive weight
}

// New validates pdf and precomputes its cumulative distribution.
// The input slice is copied; later mutations by the caller have no effect.
//
// Errors:
//   - ErrInvalidArgument      — len(pdf) == 0.
//   - ErrInvalidDistribution  — negative/NaN/Inf entry, or Σpdf == 0 (or overflows).
func New(pdf []float64) (*Sampler, error) {
	n := len(pdf)
	if n == 0 {
		return nil, samplerErrorf(methodNew, "empty weight vector", ErrInvalidArgument)
	}

	var sum float64
	last := -1
	for i, w := range pdf {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return nil, samplerErrorf(methodNew, "weight must be finite and non-negative", ErrInvalidDistribution)
		}
		if w > 0 {
			last = i
		}
		sum += w
	}
	if last < 0 || math.IsInf(sum, 0) {
		return nil, samplerErrorf(methodNew, "weights cannot be normalized", ErrInvalidDistribution)
	}

	s := &Sampler{
		weights: make([]float64, n),
		probs:   make([]float64, n),
		cdf:     make([]float64, n),
		last:    last,
	}
	copy(s.weights, pdf)

	var acc float64
	for i, w := range pdf {
		s.probs[i] = w / sum
		acc += s.probs[i]
		s.cdf[i] = acc
	}
	for i := last; i < n; i++ {
		s.cdf[i] = 1.0
	}

	return s, nil
}

// Len returns the number of outcomes L.
func (s *Sampler) Len() int { return len(s.weights) }

// Probabilities returns a copy of the normalized distribution.
func (s *Sampler) Probabilities() []float64 {
	out := make([]float64, len(s.probs))
	copy(out, s.probs)

	return out
}

// Weight returns the original (unnormalized) weight of outcome i.
// It panics if i is out of range, like a slice index.
func (s *Sampler) Weight(i int) float64 { return s.weights[i] }

// Draw consumes exactly one value from src and returns the selected index.
// src must be non-nil; the package-level helpers check this for you.
func (s *Sampler) Draw(src Source) int {
	return s.index(src.Float64())
}

// index maps a uniform draw to an outcome.
func (s *Sampler) index(u float64) int {
	for i, c := range s.cdf {
		if c >= u && s.weights[i] > 0 {
			return i
		}
	}

	return s.last
}

// Sample draws one index from the distribution described by pdf.
// pdf need not be normalized. Exactly one value is consumed from src.
//
// Errors:
//   - ErrInvalidArgument      — empty pdf or nil src.
//   - ErrInvalidDistribution  — see New.
//
// Example:
//
//	i, err := Sample([]float64{1, 1, 2}, NewRand(7)) // i ∈ {0,1,2}, P(2)=0.5
func Sample(pdf []float64, src Source) (int, error) {
	if src == nil {
		return 0, samplerErrorf(methodSample, "nil source", ErrInvalidArgument)
	}
	s, err := New(pdf)
	if err != nil {
		return 0, err
	}

	return s.Draw(src), nil
}

// SampleValue draws like Sample but returns the weight stored at the selected
// index instead of the index itself.
func SampleValue(pdf []float64, src Source) (float64, error) {
	if src == nil {
		return 0, samplerErrorf(methodSampleValue, "nil source", ErrInvalidArgument)
	}
	s, err := New(pdf)
	if err != nil {
		return 0, err
	}

	return s.Weight(s.Draw(src)), nil
}
