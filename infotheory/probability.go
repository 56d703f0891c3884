// SPDX-License-Identifier: MIT

package infotheory

import (
	"iter"

	"github.com/katalvlaran/agree/matrix"
)

// Tolerance is the accepted deviation of Sum(p) from 1 for any distribution
// produced by this package.
const Tolerance = 1e-9

// ColumnProbabilities yields, for each column k, Σ_i m[i,k] / S where S is
// the grand total of m.
//
// m must already satisfy matrix.ValidateAgreement (or at least have S > 0);
// a reduction error ends the sequence early.
func ColumnProbabilities(m matrix.Matrix) iter.Seq[float64] {
	return normalized(m, matrix.ColSums)
}

// RowProbabilities yields, for each row k, Σ_j m[k,j] / S.
// Same preconditions as ColumnProbabilities.
func RowProbabilities(m matrix.Matrix) iter.Seq[float64] {
	return normalized(m, matrix.RowSums)
}

// JointProbabilities yields m[i,j] / S in row-major order
// (length Rows·Cols).
func JointProbabilities(m matrix.Matrix) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		total, err := matrix.Total(m)
		if err != nil {
			return
		}
		r, c := m.Rows(), m.Cols()
		var i, j int
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				v, err := m.At(i, j)
				if err != nil {
					return
				}
				if !yield(v / total) {
					return
				}
			}
		}
	}
}

// normalized turns a marginal reduction into a probability sequence.
func normalized(m matrix.Matrix, sums func(matrix.Matrix) ([]float64, error)) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		total, err := matrix.Total(m)
		if err != nil {
			return
		}
		marginal, err := sums(m)
		if err != nil {
			return
		}
		for _, s := range marginal {
			if !yield(s / total) {
				return
			}
		}
	}
}

// Refine yields every value of seq except those equal to 0.
// Entropy requires it because log2(0) is undefined.
func Refine(seq iter.Seq[float64]) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for v := range seq {
			if v == 0 {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Sum returns the sum of all values in seq.
func Sum(seq iter.Seq[float64]) float64 {
	var s float64
	for v := range seq {
		s += v
	}

	return s
}
