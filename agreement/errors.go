// SPDX-License-Identifier: MIT
// Package agreement: sentinel error set and the DomainError type.
//
// Validation failures come from the matrix package and are wrapped with the
// coefficient name; everything here is specific to a coefficient's theory.

package agreement

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain matches every *DomainError via errors.Is.
	ErrDomain = errors.New("agreement: input outside the coefficient's domain")

	// ErrOutOfDomain is returned by BangdiwalaB when Σ rowSum(i)·colSum(i) is 0.
	ErrOutOfDomain = errors.New("agreement: matrix is out of the domain of the coefficient")

	// ErrDegenerateChance is returned when the chance agreement Pe equals 1,
	// which makes the kappa-type denominator 1−Pe vanish.
	ErrDegenerateChance = errors.New("agreement: chance agreement probability is 1")

	// ErrDivisionByZero is returned by YuleY when an off-diagonal cell is 0.
	ErrDivisionByZero = errors.New("agreement: some elements outside the main diagonal are 0")

	// ErrNotTwoByTwo is returned by YuleY for any matrix other than 2×2.
	ErrNotTwoByTwo = errors.New("agreement: the agreement matrix must be a 2x2-matrix")

	// ErrInconsistentRaters is returned by FleissKappa when rows of the
	// classification matrix do not all sum to the same rater count.
	ErrInconsistentRaters = errors.New("agreement: subjects were rated by different numbers of raters")

	// ErrTooFewRaters is returned by FleissKappa when fewer than two raters
	// rated each subject.
	ErrTooFewRaters = errors.New("agreement: at least two raters per subject are required")

	// ErrUnknownMeasure is returned by Compute for an unregistered Measure.
	ErrUnknownMeasure = errors.New("agreement: unknown measure")
)

// DomainError reports that a coefficient is undefined for a structurally
// valid matrix because one of its denominators is exactly zero.
type DomainError struct {
	// Measure names the coefficient that failed.
	Measure Measure

	// Err is one of ErrOutOfDomain, ErrDegenerateChance or ErrDivisionByZero.
	Err error
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %v", e.Measure, e.Err)
}

// Unwrap returns the underlying sentinel.
func (e *DomainError) Unwrap() error { return e.Err }

// Is makes every DomainError match ErrDomain.
func (e *DomainError) Is(target error) bool { return target == ErrDomain }

func domainError(measure Measure, err error) error {
	return &DomainError{Measure: measure, Err: err}
}

// measureErrorf wraps err with the coefficient name.
func measureErrorf(measure Measure, err error) error {
	return fmt.Errorf("%s: %w", measure, err)
}
