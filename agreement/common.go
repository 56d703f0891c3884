// SPDX-License-Identifier: MIT

package agreement

import "github.com/katalvlaran/agree/matrix"

// summary holds the reductions every two-rater coefficient is built from.
// All fields are computed once per call from a validated matrix.
type summary struct {
	n     int       // number of categories
	total float64   // grand total T
	trace float64   // Σ diag(i)
	diag  []float64 // diag(i)
	rows  []float64 // rowSum(i)
	cols  []float64 // colSum(i)
}

// summarize validates m as an agreement matrix with at least minSize
// categories and collects its reductions.
//
// Stage 1 (Validate): ValidateAgreement, then ValidateMinSize.
// Stage 2 (Reduce): row sums, column sums, diagonal, trace, total.
// Complexity: O(n²) time, O(n) space.
func summarize(measure Measure, m matrix.Matrix, minSize int) (*summary, error) {
	if err := matrix.ValidateAgreement(m); err != nil {
		return nil, measureErrorf(measure, err)
	}
	if err := matrix.ValidateMinSize(m, minSize); err != nil {
		return nil, measureErrorf(measure, err)
	}

	rows, err := matrix.RowSums(m)
	if err != nil {
		return nil, measureErrorf(measure, err)
	}
	cols, err := matrix.ColSums(m)
	if err != nil {
		return nil, measureErrorf(measure, err)
	}

	s := &summary{n: m.Rows(), rows: rows, cols: cols, diag: make([]float64, m.Rows())}
	for i := 0; i < s.n; i++ {
		if s.diag[i], err = m.At(i, i); err != nil {
			return nil, measureErrorf(measure, err)
		}
		s.trace += s.diag[i]
		s.total += rows[i]
	}

	return s, nil
}

// kappaForm is the shared chance-corrected form (Pa−Pe)/(1−Pe).
// Pe == 1 is reported as ErrDegenerateChance.
func kappaForm(measure Measure, pa, pe float64) (float64, error) {
	if pe == 1 {
		return 0, domainError(measure, ErrDegenerateChance)
	}

	return (pa - pe) / (1 - pe), nil
}
