// SPDX-License-Identifier: MIT
// Package: fractal/ifs
//
// types.go — Point, AffineMap and Definition.
//
// Design:
//   • AffineMap and Definition are immutable once constructed; constructors
//     copy their inputs and accessors hand out copies.
//   • Generators reference the maps of a Definition directly (no per-call copy).
//   • The linear part is kept as a *matrix.Dense for the general n×n path
//     (ApplyVec, Compose); Apply uses six cached coefficients.

package ifs

import (
	"fmt"

	"github.com/katalvlaran/fractal/matrix"
)

// Dim is the dimension every map operates on.
const Dim = 2

// Point is a 2D coordinate (x, y).
type Point [Dim]float64

// X returns the first coordinate.
func (p Point) X() float64 { return p[0] }

// Y returns the second coordinate.
func (p Point) Y() float64 { return p[1] }

// AffineMap is w(z) = A·z + T with A a 2×2 linear part and T a translation.
// The zero value is not usable; build maps with NewAffineMap.
type AffineMap struct {
	a *matrix.Dense
	t []float64
	// cached coefficients: x' = c[0]x + c[1]y + c[4], y' = c[2]x + c[3]y + c[5]
	c [6]float64
}

// NewAffineMap validates and copies (A, T).
//
// Errors (all wrap ErrInvalidDefinition, plus the matrix sentinel where one applies):
//   - A nil or not 2×2.
//   - T not of length 2.
//   - any NaN/±Inf coefficient.
func NewAffineMap(a matrix.Matrix, t []float64) (AffineMap, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return AffineMap{}, ifsErrorf(MethodNewAffineMap, err.Error(), ErrInvalidDefinition)
	}
	if a.Rows() != Dim {
		return AffineMap{}, ifsErrorf(MethodNewAffineMap, fmt.Sprintf("linear part must be %dx%d, got %dx%d", Dim, Dim, a.Rows(), a.Cols()), ErrInvalidDefinition)
	}
	if err := matrix.ValidateVecLen(t, Dim); err != nil {
		return AffineMap{}, ifsErrorf(MethodNewAffineMap, "translation: "+err.Error(), ErrInvalidDefinition)
	}
	if err := matrix.ValidateFinite(t); err != nil {
		return AffineMap{}, ifsErrorf(MethodNewAffineMap, "translation: "+err.Error(), ErrInvalidDefinition)
	}

	lin, err := matrix.NewDense(Dim, Dim)
	if err != nil {
		return AffineMap{}, ifsErrorf(MethodNewAffineMap, err.Error(), ErrInvalidDefinition)
	}
	m := AffineMap{a: lin, t: make([]float64, Dim)}
	var i, j int
	var v float64
	for i = 0; i < Dim; i++ {
		for j = 0; j < Dim; j++ {
			if v, err = a.At(i, j); err != nil {
				return AffineMap{}, ifsErrorf(MethodNewAffineMap, err.Error(), ErrInvalidDefinition)
			}
			// Set rejects NaN/Inf, so coefficients are finite past this point.
			if err = lin.Set(i, j, v); err != nil {
				return AffineMap{}, ifsErrorf(MethodNewAffineMap, err.Error(), ErrInvalidDefinition)
			}
			m.c[i*Dim+j] = v
		}
	}
	copy(m.t, t)
	m.c[4], m.c[5] = t[0], t[1]

	return m, nil
}

// MustAffineMap builds a map from row-major coefficients and panics on error.
// Intended for static tables such as the catalog.
func MustAffineMap(a, b, c, d, e, f float64) AffineMap {
	lin, err := matrix.NewDenseFromRows([][]float64{{a, b}, {c, d}})
	if err != nil {
		panic(fmt.Sprintf("ifs: MustAffineMap: %v", err))
	}
	m, err := NewAffineMap(lin, []float64{e, f})
	if err != nil {
		panic(fmt.Sprintf("ifs: MustAffineMap: %v", err))
	}

	return m
}

// Apply returns A·p + T.
func (m AffineMap) Apply(p Point) Point {
	return Point{
		m.c[0]*p[0] + m.c[1]*p[1] + m.c[4],
		m.c[2]*p[0] + m.c[3]*p[1] + m.c[5],
	}
}

// ApplyVec computes A·x + T through the general matrix kernel.
// It agrees with Apply and exists for callers holding plain vectors.
func (m AffineMap) ApplyVec(x []float64) ([]float64, error) {
	y, err := matrix.MatVec(m.a, x)
	if err != nil {
		return nil, err
	}
	for i := range y {
		y[i] += m.t[i]
	}

	return y, nil
}

// Linear returns a copy of the linear part A.
func (m AffineMap) Linear() *matrix.Dense {
	if m.a == nil {
		return nil
	}

	return m.a.Clone().(*matrix.Dense)
}

// Translation returns a copy of T.
func (m AffineMap) Translation() []float64 {
	out := make([]float64, len(m.t))
	copy(out, m.t)

	return out
}

// valid reports whether m went through NewAffineMap.
func (m AffineMap) valid() bool { return m.a != nil && len(m.t) == Dim }

// String renders the six coefficients as "[a b; c d] + [e f]".
func (m AffineMap) String() string {
	return fmt.Sprintf("[%g %g; %g %g] + [%g %g]", m.c[0], m.c[1], m.c[2], m.c[3], m.c[4], m.c[5])
}

// Compose returns f∘g, the map z ↦ f(g(z)) = Af·Ag·z + (Af·Tg + Tf).
// Composition of IFS maps yields the maps of the second-level subdivision.
func Compose(f, g AffineMap) (AffineMap, error) {
	if !f.valid() || !g.valid() {
		return AffineMap{}, ifsErrorf(MethodCompose, "uninitialized map", ErrInvalidDefinition)
	}
	lin, err := matrix.Mul(f.a, g.a)
	if err != nil {
		return AffineMap{}, ifsErrorf(MethodCompose, err.Error(), ErrInvalidDefinition)
	}
	t, err := f.ApplyVec(g.t)
	if err != nil {
		return AffineMap{}, ifsErrorf(MethodCompose, err.Error(), ErrInvalidDefinition)
	}

	return NewAffineMap(lin, t)
}

// Definition is an ordered list of affine maps with one weight per map.
// Weights need not be normalized. A Definition built without weights can
// still drive Deterministic, which ignores them, but Random rejects it.
type Definition struct {
	maps    []AffineMap
	weights []float64
}

// NewDefinition builds a Definition from the (maps, translations, probabilities)
// triple supplied by a catalog.
//
// Invariants enforced:
//   - len(as) == len(ts) ≥ 1;
//   - len(p) == len(as), or p == nil for an unweighted definition;
//   - every (as[i], ts[i]) satisfies NewAffineMap.
//
// Weight values themselves are validated by the sampler when Random runs.
func NewDefinition(as []matrix.Matrix, ts [][]float64, p []float64) (*Definition, error) {
	if len(as) == 0 {
		return nil, ifsErrorf(MethodNewDefinition, "empty map list", ErrInvalidDefinition)
	}
	if len(as) != len(ts) {
		return nil, ifsErrorf(MethodNewDefinition, fmt.Sprintf("%d maps but %d translations", len(as), len(ts)), ErrInvalidDefinition)
	}
	maps := make([]AffineMap, len(as))
	for i := range as {
		m, err := NewAffineMap(as[i], ts[i])
		if err != nil {
			return nil, fmt.Errorf("map %d: %w", i, err)
		}
		maps[i] = m
	}

	return FromMaps(maps, p)
}

// FromMaps builds a Definition from already-validated maps.
// The slices are copied.
func FromMaps(maps []AffineMap, p []float64) (*Definition, error) {
	if len(maps) == 0 {
		return nil, ifsErrorf(MethodNewDefinition, "empty map list", ErrInvalidDefinition)
	}
	if p != nil && len(p) != len(maps) {
		return nil, ifsErrorf(MethodNewDefinition, fmt.Sprintf("%d maps but %d probabilities", len(maps), len(p)), ErrInvalidDefinition)
	}
	for i, m := range maps {
		if !m.valid() {
			return nil, ifsErrorf(MethodNewDefinition, fmt.Sprintf("map %d is uninitialized", i), ErrInvalidDefinition)
		}
	}
	d := &Definition{maps: make([]AffineMap, len(maps))}
	copy(d.maps, maps)
	if p != nil {
		d.weights = make([]float64, len(p))
		copy(d.weights, p)
	}

	return d, nil
}

// Len returns the number of maps L.
func (d *Definition) Len() int { return len(d.maps) }

// Map returns map i. It panics if i is out of range, like a slice index.
func (d *Definition) Map(i int) AffineMap { return d.maps[i] }

// Maps returns a copy of the map list.
func (d *Definition) Maps() []AffineMap {
	out := make([]AffineMap, len(d.maps))
	copy(out, d.maps)

	return out
}

// Weights returns a copy of the weights, or nil for an unweighted definition.
func (d *Definition) Weights() []float64 {
	if d.weights == nil {
		return nil
	}
	out := make([]float64, len(d.weights))
	copy(out, d.weights)

	return out
}

// validate checks the structural invariants a generator relies on.
// needWeights is true for Random.
func (d *Definition) validate(method string, needWeights bool) error {
	if d == nil || len(d.maps) == 0 {
		return ifsErrorf(method, "empty map list", ErrInvalidDefinition)
	}
	if needWeights && len(d.weights) != len(d.maps) {
		return ifsErrorf(method, fmt.Sprintf("%d maps but %d probabilities", len(d.maps), len(d.weights)), ErrInvalidDefinition)
	}

	return nil
}
