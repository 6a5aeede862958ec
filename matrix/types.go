// SPDX-License-Identifier: MIT

package matrix

// Matrix is the minimal read/write surface shared by kernels and validators.
// Implementations must be safe for concurrent reads but need not be safe for
// concurrent writes.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i or j is out of bounds.
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// operation tags used by matrixErrorf.
const (
	opMatVec   = "MatVec"
	opMul      = "Mul"
	opFromRows = "NewDenseFromRows"
)
