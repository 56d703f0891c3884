// SPDX-License-Identifier: MIT

package agreement

import (
	"github.com/katalvlaran/agree/infotheory"
	"github.com/katalvlaran/agree/matrix"
)

// IAEps computes the extension-by-continuity of Information Agreement
// (IAε) of an n×n agreement matrix (n ≥ 2).
//
// Let H_X and H_Y be the entropies of the column and row marginals and H_XY
// the entropy of the joint distribution, all over non-zero probabilities.
// Branches are checked in this order; the first match wins:
//
//  1. H_X == 0: every item sits in one column; result is
//     (n − number of all-zero rows) / n.
//  2. H_Y == 0: every item sits in one row; result is
//     (n − number of all-zero columns) / n.
//  3. otherwise, with the smaller marginal entropy as divisor:
//     H_X <  H_Y → 1 + (H_Y − H_XY) / H_X
//     H_X >= H_Y → 1 + (H_X − H_XY) / H_Y
//
// Ties (H_X == H_Y) take the second form. The order above is part of the
// definition and must not be rearranged.
//
// Errors: validation sentinels from matrix, including ErrTooSmall for n < 2.
// Complexity: O(n²).
func IAEps(m matrix.Matrix) (float64, error) {
	if err := matrix.ValidateAgreement(m); err != nil {
		return 0, measureErrorf(MeasureIAEps, err)
	}
	if err := matrix.ValidateMinSize(m, 2); err != nil {
		return 0, measureErrorf(MeasureIAEps, err)
	}
	n := float64(m.Rows())

	hx := infotheory.Entropy(infotheory.Refine(infotheory.ColumnProbabilities(m)))
	hy := infotheory.Entropy(infotheory.Refine(infotheory.RowProbabilities(m)))

	if hx == 0 {
		zero, err := matrix.CountZeroRows(m)
		if err != nil {
			return 0, measureErrorf(MeasureIAEps, err)
		}

		return (n - float64(zero)) / n, nil
	}
	if hy == 0 {
		zero, err := matrix.CountZeroCols(m)
		if err != nil {
			return 0, measureErrorf(MeasureIAEps, err)
		}

		return (n - float64(zero)) / n, nil
	}

	hxy := infotheory.Entropy(infotheory.Refine(infotheory.JointProbabilities(m)))
	if hx < hy {
		return 1 + (hy-hxy)/hx, nil
	}

	return 1 + (hx-hxy)/hy, nil
}
