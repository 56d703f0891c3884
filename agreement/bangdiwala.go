// SPDX-License-Identifier: MIT

package agreement

import "github.com/katalvlaran/agree/matrix"

// BangdiwalaB computes Bangdiwala's B of an n×n agreement matrix (n ≥ 1):
//
//	B = Σ diag(i)² / Σ rowSum(i)·colSum(i)
//
// B is the share of each category's "marginal rectangle" covered by the
// agreeing square, aggregated over categories.
//
// Errors:
//   - validation sentinels from matrix.
//   - *DomainError wrapping ErrOutOfDomain when the denominator is 0, e.g. when
//     no category is used by both raters.
//
// Complexity: O(n²).
func BangdiwalaB(m matrix.Matrix) (float64, error) {
	s, err := summarize(MeasureBangdiwalaB, m, 1)
	if err != nil {
		return 0, err
	}

	var pa, pe float64
	for i := 0; i < s.n; i++ {
		pa += s.diag[i] * s.diag[i]
		pe += s.rows[i] * s.cols[i]
	}
	if pe == 0 {
		return 0, domainError(MeasureBangdiwalaB, ErrOutOfDomain)
	}

	return pa / pe, nil
}
