// SPDX-License-Identifier: MIT

package agreement

import (
	"math"

	"github.com/katalvlaran/agree/matrix"
)

// YuleY computes Yule's coefficient of colligation Y of a 2×2 agreement
// matrix:
//
//	OR = (a11·a22) / (a12·a21)
//	Y  = (√OR − 1) / (√OR + 1)
//
// Y ranges over [−1, 1) and is −1 when either diagonal cell is 0.
//
// Errors:
//   - validation sentinels from matrix (checked first).
//   - ErrNotTwoByTwo for any square matrix other than 2×2.
//   - *DomainError wrapping ErrDivisionByZero when a12 or a21 is 0.
func YuleY(m matrix.Matrix) (float64, error) {
	if err := matrix.ValidateAgreement(m); err != nil {
		return 0, measureErrorf(MeasureYuleY, err)
	}
	if m.Rows() != 2 {
		return 0, measureErrorf(MeasureYuleY, ErrNotTwoByTwo)
	}

	// Row-major walk: diagonal cells multiply, off-diagonal cells divide.
	oddsRatio := 1.0
	var i, j int
	for i = 0; i < 2; i++ {
		for j = 0; j < 2; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return 0, measureErrorf(MeasureYuleY, err)
			}
			if i == j {
				oddsRatio *= v
				continue
			}
			if v == 0 {
				return 0, domainError(MeasureYuleY, ErrDivisionByZero)
			}
			oddsRatio /= v
		}
	}

	root := math.Sqrt(oddsRatio)

	return (root - 1) / (root + 1), nil
}
