// SPDX-License-Identifier: MIT

package agreement

import "github.com/katalvlaran/agree/matrix"

// ScottPi computes Scott's π of an n×n agreement matrix (n ≥ 2).
// Unlike Cohen's κ, the chance term pools both raters' marginals:
//
//	Pa = 2·trace / 2T
//	Pe = Σ ((rowSum(i) + colSum(i)) / 2T)²
//	π  = (Pa − Pe) / (1 − Pe)
//
// Errors:
//   - validation sentinels from matrix, including ErrTooSmall for n < 2.
//   - *DomainError wrapping ErrDegenerateChance when Pe == 1.
func ScottPi(m matrix.Matrix) (float64, error) {
	s, err := summarize(MeasureScottPi, m, 2)
	if err != nil {
		return 0, err
	}

	twiceTotal := 2 * s.total
	var pe float64
	for i := 0; i < s.n; i++ {
		q := (s.rows[i] + s.cols[i]) / twiceTotal // pooled proportion of category i
		pe += q * q
	}
	pa := 2 * s.trace / twiceTotal

	return kappaForm(MeasureScottPi, pa, pe)
}
