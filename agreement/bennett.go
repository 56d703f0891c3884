// SPDX-License-Identifier: MIT

package agreement

import "github.com/katalvlaran/agree/matrix"

// BennettS computes Bennett, Alpert and Goldstein's S of an n×n agreement
// matrix (n ≥ 2):
//
//	Pa = trace / T
//	S  = (n·Pa − 1) / (n − 1)
//
// The chance term is implicitly 1/n, as if every category were equally
// likely. S is 1 for perfect agreement and never exceeds 1.
//
// Errors: validation sentinels from matrix, including ErrTooSmall for n < 2.
// Complexity: O(n²).
func BennettS(m matrix.Matrix) (float64, error) {
	s, err := summarize(MeasureBennettS, m, 2)
	if err != nil {
		return 0, err
	}
	k := float64(s.n)
	pa := s.trace / s.total

	return (k*pa - 1) / (k - 1), nil
}
