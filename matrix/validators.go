// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for the preconditions of
//     agreement coefficients.
//   - Keep coefficient code minimal by delegating nil/shape/sign/null checks here.
//   - Return sentinel errors wrapped with the validator tag so call sites can
//     match them with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Element scans are O(r*c) and stop at the first violation.
//
// Note:
//   - Each composite validator follows a fixed sequence
//     (NotNil → Square → NonNegative → NotNull); the first failure wins.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// each visits every element in row-major order and stops early when fn
// returns false. Dense inputs are scanned on the flat buffer directly.
func each(m Matrix, fn func(v float64) bool) error {
	if d, ok := m.(*Dense); ok {
		for _, v := range d.data {
			if !fn(v) {
				return nil
			}
		}

		return nil
	}

	r, c := m.Rows(), m.Cols()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			if !fn(v) {
				return nil
			}
		}
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateNonNegative checks that no entry is below zero.
// Assumes m is not nil.
// Complexity: O(r*c).
func ValidateNonNegative(m Matrix) error {
	negative := false
	if err := each(m, func(v float64) bool {
		negative = v < 0

		return !negative
	}); err != nil {
		return validatorErrorf("ValidateNonNegative", err)
	}
	if negative {
		return validatorErrorf("ValidateNonNegative", ErrNegativeValue)
	}

	return nil
}

// ValidateNotNull checks that at least one entry differs from zero.
// Assumes m is not nil.
// Complexity: O(r*c) worst case.
func ValidateNotNull(m Matrix) error {
	nonZero := false
	if err := each(m, func(v float64) bool {
		nonZero = v != 0

		return !nonZero
	}); err != nil {
		return validatorErrorf("ValidateNotNull", err)
	}
	if !nonZero {
		return validatorErrorf("ValidateNotNull", ErrNullMatrix)
	}

	return nil
}

// ValidateMinSize checks that m has at least n rows.
// Run it after ValidateAgreement, which already guarantees Rows == Cols.
// Complexity: O(1).
func ValidateMinSize(m Matrix, n int) error {
	if m.Rows() < n {
		return validatorErrorf(fmt.Sprintf("ValidateMinSize(%d)", n), ErrTooSmall)
	}

	return nil
}

// ValidateAgreement – Composite: NotNil → Square → NonNegative → NotNull.
//
// This is the precondition of every coefficient that consumes an n×n
// agreement matrix. Callers needing at least two categories follow it with
// ValidateMinSize(m, 2).
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNegativeValue, ErrNullMatrix.
// Complexity: O(n²).
func ValidateAgreement(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateAgreement", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateAgreement", err)
	}
	if err := ValidateNonNegative(m); err != nil {
		return validatorErrorf("ValidateAgreement", err)
	}
	if err := ValidateNotNull(m); err != nil {
		return validatorErrorf("ValidateAgreement", err)
	}

	return nil
}

// ValidateClassification – Composite: NotNil → NonNegative.
//
// Classification matrices (subjects × categories) are rectangular, so the
// square check is skipped.
//
// Errors: ErrNilMatrix, ErrNegativeValue.
// Complexity: O(N*k).
func ValidateClassification(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateClassification", err)
	}
	if err := ValidateNonNegative(m); err != nil {
		return validatorErrorf("ValidateClassification", err)
	}

	return nil
}
