// Package matrix offers the small dense linear-algebra layer behind affine maps.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - MatVec and Mul kernels with a flat-slice fast path for *Dense.
//   - Central validators (ValidateNotNil, ValidateSquare, ValidateVecLen,
//     ValidateMulCompatible, ValidateFinite) returning sentinel errors.
//
// Shapes are n×n in general; the ifs package fixes n=2 for its generators.
// Nothing here allocates behind the caller's back: every kernel returns a
// freshly allocated result and never mutates its operands.
package matrix
