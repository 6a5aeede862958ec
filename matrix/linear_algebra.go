// SPDX-License-Identifier: MIT
// Package matrix - products used by affine maps.
//
// *Dense operands are read through their backing rows; any other Matrix goes
// through At. Both paths sum in the same order, so results are identical.

package matrix

// MatVec returns m·x.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != m.Cols()).
// Complexity: Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, m.Rows())
	if d, ok := m.(*Dense); ok {
		for i := range y {
			for j, v := range d.row(i) {
				y[i] += v * x[j]
			}
		}

		return y, nil
	}
	for i := range y {
		for j, xj := range x {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			y[i] += v * xj
		}
	}

	return y, nil
}

// Mul returns a·b as a new *Dense.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols() != b.Rows()).
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out, err := NewDense(a.Rows(), b.Cols())
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		for i := 0; i < out.r; i++ {
			dst := out.row(i)
			for k, av := range da.row(i) {
				for j, bv := range db.row(k) {
					dst[j] += av * bv
				}
			}
		}

		return out, nil
	}
	for i := 0; i < out.r; i++ {
		dst := out.row(i)
		for k := 0; k < a.Cols(); k++ {
			av, err := a.At(i, k)
			if err != nil {
				return nil, matrixErrorf(opMul, err)
			}
			for j := range dst {
				bv, err := b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				dst[j] += av * bv
			}
		}
	}

	return out, nil
}
