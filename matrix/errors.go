// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Validators return these sentinels wrapped with their tag, and tests
// MUST check them via errors.Is. No function panics on user input except the
// Must* constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Validators
// wrap with fmt.Errorf("<tag>: %w", ErrX); callers that add context must keep
// %w so errors.Is keeps matching.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape (non-square) -> negative entries -> null matrix -> size.

var (
	// ErrNilMatrix indicates that a nil Matrix argument was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadShape is returned when a requested or supplied shape is invalid
	// (rows<=0, cols<=0, or an empty nested slice).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrRaggedRows indicates nested-slice input whose rows differ in length.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value at ingestion; counts must be finite.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNegativeValue signals that some entry is negative; counts cannot be.
	ErrNegativeValue = errors.New("matrix: matrix contains negative values")

	// ErrNullMatrix signals that every entry is zero, so the grand total is 0
	// and every ratio over it is undefined.
	ErrNullMatrix = errors.New("matrix: matrix is null")

	// ErrTooSmall signals fewer categories than a coefficient needs.
	ErrTooSmall = errors.New("matrix: matrix has too few rows and columns")
)
