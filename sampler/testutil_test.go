package sampler_test

// scriptedSource replays a fixed list of draws and then repeats the last one.
// It pins the exact u values seen by the sampler.
type scriptedSource struct {
	draws []float64
	pos   int
}

func (s *scriptedSource) Float64() float64 {
	if s.pos >= len(s.draws) {
		return s.draws[len(s.draws)-1]
	}
	u := s.draws[s.pos]
	s.pos++

	return u
}

// constSource always returns the same draw.
type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

// frequencies counts outcomes of n draws and returns relative frequencies.
func frequencies(l, n int, draw func() int) []float64 {
	counts := make([]float64, l)
	for i := 0; i < n; i++ {
		counts[draw()]++
	}
	for i := range counts {
		counts[i] /= float64(n)
	}

	return counts
}
