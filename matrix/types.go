// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by storage, validators and reductions.
// Errors live in errors.go; concrete storage in dense.go.
package matrix

// Number is the set of element types FromRows accepts.
// Integer counts are the common case; floats cover weighted tallies.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Matrix is a read-only two-dimensional array of float64 values.
//
// Coefficients only ever read their input, so the interface deliberately
// carries no Set: an operation that receives a Matrix cannot mutate it.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}
