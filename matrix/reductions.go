// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the few reductions agreement coefficients are built from:
//     RowSums, ColSums, Total, Trace, CountZeroRows, CountZeroCols.
//   - Dense fast-paths read the row-major buffer directly; other Matrix
//     implementations fall back to At with full error propagation.
//
// Determinism:
//   - Fixed i→j traversal; the same input always yields bitwise-equal sums.
//
// None of these functions validate shape or sign; run the validators first.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opRowSums  = "RowSums"
	opColSums  = "ColSums"
	opTotal    = "Total"
	opTrace    = "Trace"
	opZeroRows = "CountZeroRows"
	opZeroCols = "CountZeroCols"
)

func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// RowSums returns vector s where s[i] = Σ_j m[i,j].
// Complexity: O(r*c) time, O(r) space.
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	r, c := m.Rows(), m.Cols()
	sums := make([]float64, r)

	var i, j int
	if d, ok := m.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c // cache row base offset
			for j = 0; j < c; j++ {
				sums[i] += d.data[base+j]
			}
		}

		return sums, nil
	}

	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opRowSums, err)
			}
			sums[i] += v
		}
	}

	return sums, nil
}

// ColSums returns vector s where s[j] = Σ_i m[i,j].
// Complexity: O(r*c) time, O(c) space.
func ColSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	r, c := m.Rows(), m.Cols()
	sums := make([]float64, c)

	var i, j int
	if d, ok := m.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				sums[j] += d.data[base+j]
			}
		}

		return sums, nil
	}

	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opColSums, err)
			}
			sums[j] += v
		}
	}

	return sums, nil
}

// Total returns the grand total Σ_i Σ_j m[i,j].
// Complexity: O(r*c).
func Total(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opTotal, err)
	}
	var total float64
	if err := each(m, func(v float64) bool {
		total += v

		return true
	}); err != nil {
		return 0, matrixErrorf(opTotal, err)
	}

	return total, nil
}

// Trace returns Σ_i m[i,i] of a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n).
func Trace(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var tr float64
	for i := 0; i < m.Rows(); i++ {
		v, err := m.At(i, i)
		if err != nil {
			return 0, matrixErrorf(opTrace, err)
		}
		tr += v
	}

	return tr, nil
}

// CountZeroRows returns how many rows contain only zeros.
// Complexity: O(r*c).
func CountZeroRows(m Matrix) (int, error) {
	sums, err := RowSums(m)
	if err != nil {
		return 0, matrixErrorf(opZeroRows, err)
	}

	return countZero(m, sums, true)
}

// CountZeroCols returns how many columns contain only zeros.
// Complexity: O(r*c).
func CountZeroCols(m Matrix) (int, error) {
	sums, err := ColSums(m)
	if err != nil {
		return 0, matrixErrorf(opZeroCols, err)
	}

	return countZero(m, sums, false)
}

// countZero counts all-zero lines. A zero sum only proves a line is null for
// non-negative input, so lines whose sum is zero are rescanned element-wise.
func countZero(m Matrix, sums []float64, byRow bool) (int, error) {
	op := opZeroCols
	length := m.Rows()
	if byRow {
		op = opZeroRows
		length = m.Cols()
	}

	count := 0
	var k, l int
	for k = 0; k < len(sums); k++ {
		if sums[k] != 0 {
			continue
		}
		null := true
		for l = 0; l < length && null; l++ {
			var v float64
			var err error
			if byRow {
				v, err = m.At(k, l)
			} else {
				v, err = m.At(l, k)
			}
			if err != nil {
				return 0, matrixErrorf(op, err)
			}
			null = v == 0
		}
		if null {
			count++
		}
	}

	return count, nil
}
