// SPDX-License-Identifier: MIT

package agreement_test

import (
	"github.com/katalvlaran/agree/matrix"
)

// tol is the accepted absolute deviation from published fixture values.
const tol = 1e-7

// fixture pairs an agreement matrix with the expected coefficient value.
type fixture struct {
	name string
	m    *matrix.Dense
	want float64
}

// The nine reference tallies every two-rater coefficient is checked against.
var (
	mSequential = matrix.MustFromRows([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	mScreening  = matrix.MustFromRows([][]int{{3600, 2595}, {65, 3740}})
	mRare1      = matrix.MustFromRows([][]int{{9901, 64}, {2, 33}})
	mRare2      = matrix.MustFromRows([][]int{{9900, 86}, {1, 13}})
	mBalanced   = matrix.MustFromRows([][]int{{21, 5}, {3, 21}})
	mSkewed1    = matrix.MustFromRows([][]int{{40, 5}, {3, 2}})
	mSkewed2    = matrix.MustFromRows([][]int{{40, 2}, {3, 5}})
	mFiveClass  = matrix.MustFromRows([][]int{
		{51, 4, 0, 1, 1},
		{3, 78, 1, 0, 0},
		{0, 0, 13, 4, 0},
		{0, 1, 1, 16, 7},
		{0, 0, 0, 0, 5},
	})
	mHighAgree = matrix.MustFromRows([][]int{{136, 3}, {1, 46}})
)

// table expands the nine reference tallies with their expected values,
// given in the order of the var block above.
func table(want ...float64) []fixture {
	ms := []struct {
		name string
		m    *matrix.Dense
	}{
		{"sequential 3x3", mSequential},
		{"screening", mScreening},
		{"rare positive 1", mRare1},
		{"rare positive 2", mRare2},
		{"balanced", mBalanced},
		{"skewed 1", mSkewed1},
		{"skewed 2", mSkewed2},
		{"five classes", mFiveClass},
		{"high agreement", mHighAgree},
	}
	out := make([]fixture, len(ms))
	for i, x := range ms {
		out[i] = fixture{name: x.name, m: x.m, want: want[i]}
	}

	return out
}

// fleissRatings: 10 subjects, 5 categories, 14 raters per subject.
var fleissRatings = matrix.MustFromRows([][]int{
	{0, 0, 0, 0, 14},
	{0, 2, 6, 4, 2},
	{0, 0, 3, 5, 6},
	{0, 3, 9, 2, 0},
	{2, 2, 8, 1, 1},
	{7, 7, 0, 0, 0},
	{3, 2, 6, 3, 0},
	{2, 5, 3, 2, 2},
	{6, 5, 2, 1, 0},
	{0, 2, 2, 3, 7},
})
