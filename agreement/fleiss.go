// SPDX-License-Identifier: MIT

package agreement

import (
	"fmt"
	"math"

	"github.com/katalvlaran/agree/matrix"
)

// raterTol bounds |rowSum(i) − n| when checking for a constant rater count.
// Relative to n, so weighted (float) tallies survive rounding.
const raterTol = 1e-9

// FleissKappa computes Fleiss's κ of an N×k classification matrix C, where
// C[i][j] is the number of raters who assigned subject i to category j and
// every subject was rated by the same n raters:
//
//	P0 = (Σ C[i][j]² − N·n) / (N·n·(n − 1))
//	Pe = Σ_j (colSum(j) / N·n)²
//	κ  = (P0 − Pe) / (1 − Pe)
//
// Unlike the two-rater coefficients the matrix need not be square.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNegativeValue from validation.
//   - matrix.ErrBadShape for a matrix without rows or columns.
//   - ErrInconsistentRaters when some row does not sum to n (row 0's total).
//   - ErrTooFewRaters when n < 2.
//   - *DomainError wrapping ErrDegenerateChance when Pe == 1, i.e. every
//     rating fell into one category.
//
// Complexity: O(N·k).
func FleissKappa(m matrix.Matrix) (float64, error) {
	// Stage 1 (Validate): classification matrices skip the square check.
	if err := matrix.ValidateClassification(m); err != nil {
		return 0, measureErrorf(MeasureFleissKappa, err)
	}
	subjects, classes := m.Rows(), m.Cols()
	if subjects == 0 || classes == 0 {
		return 0, measureErrorf(MeasureFleissKappa, matrix.ErrBadShape)
	}

	// Stage 2 (Raters): every subject must be rated by n = rowSum(0) raters.
	rows, err := matrix.RowSums(m)
	if err != nil {
		return 0, measureErrorf(MeasureFleissKappa, err)
	}
	raters := rows[0]
	for i, r := range rows {
		if math.Abs(r-raters) > raterTol*math.Max(1, raters) {
			return 0, measureErrorf(MeasureFleissKappa,
				fmt.Errorf("subject %d has %g ratings, subject 0 has %g: %w", i, r, raters, ErrInconsistentRaters))
		}
	}
	if raters < 2 {
		return 0, measureErrorf(MeasureFleissKappa, ErrTooFewRaters)
	}

	// Stage 3 (Execute): observed and chance agreement.
	cols, err := matrix.ColSums(m)
	if err != nil {
		return 0, measureErrorf(MeasureFleissKappa, err)
	}
	var squares float64
	var i, j int
	for i = 0; i < subjects; i++ {
		for j = 0; j < classes; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return 0, measureErrorf(MeasureFleissKappa, err)
			}
			squares += v * v
		}
	}

	ratings := float64(subjects) * raters // N·n
	p0 := (squares - ratings) / (ratings * (raters - 1))
	var pe float64
	for _, c := range cols {
		q := c / ratings
		pe += q * q
	}

	return kappaForm(MeasureFleissKappa, p0, pe)
}
