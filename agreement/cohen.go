// SPDX-License-Identifier: MIT

package agreement

import "github.com/katalvlaran/agree/matrix"

// CohenKappa computes Cohen's κ of an n×n agreement matrix (n ≥ 2):
//
//	Pa = trace / T
//	Pe = Σ rowSum(i)·colSum(i) / T²
//	κ  = (Pa − Pe) / (1 − Pe)
//
// Errors:
//   - validation sentinels from matrix, including ErrTooSmall for n < 2.
//   - *DomainError wrapping ErrDegenerateChance when Pe == 1.
func CohenKappa(m matrix.Matrix) (float64, error) {
	s, err := summarize(MeasureCohenKappa, m, 2)
	if err != nil {
		return 0, err
	}

	pa := s.trace / s.total
	var pe float64
	for i := 0; i < s.n; i++ {
		pe += s.rows[i] * s.cols[i]
	}
	pe /= s.total * s.total

	return kappaForm(MeasureCohenKappa, pa, pe)
}
