// SPDX-License-Identifier: MIT

package agreement_test

import (
	"testing"

	"github.com/katalvlaran/agree/agreement"
	"github.com/katalvlaran/agree/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestMeasures(t *testing.T) {
	t.Parallel()

	all := agreement.Measures()
	require.Len(t, all, 7)
	assert.Equal(t, agreement.MeasureBennettS, all[0])
	assert.NotContains(t, agreement.AgreementMeasures(), agreement.MeasureFleissKappa)
	assert.Len(t, agreement.AgreementMeasures(), 6)

	for _, ms := range all {
		fn, err := agreement.Lookup(ms)
		require.NoError(t, err, ms)
		require.NotNil(t, fn)
	}
}

func TestCompute(t *testing.T) {
	t.Parallel()

	got, err := agreement.Compute(agreement.MeasureCohenKappa, mScreening)
	require.NoError(t, err)
	assert.InDelta(t, 0.49991210861307384, got, tol)

	got, err = agreement.Compute(agreement.MeasureFleissKappa, fleissRatings)
	require.NoError(t, err)
	assert.InDelta(t, 0.20993070442195522, got, tol)

	_, err = agreement.Compute("Krippendorff", mScreening)
	assert.ErrorIs(t, err, agreement.ErrUnknownMeasure)
}

func TestEvaluate_Defaults(t *testing.T) {
	t.Parallel()

	report, err := agreement.Evaluate(mSequential)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, report.Values[agreement.MeasureBennettS], tol)
	assert.InDelta(t, 0.1467764060356653, report.Values[agreement.MeasureBangdiwalaB], tol)
	assert.InDelta(t, 0.005631983988003131, report.Values[agreement.MeasureIAEps], tol)
	assert.NotContains(t, report.Values, agreement.MeasureFleissKappa)

	// YuleY is 2×2 only; the other measures still ran.
	require.Contains(t, report.Errors, agreement.MeasureYuleY)
	assert.ErrorIs(t, report.Errors[agreement.MeasureYuleY], agreement.ErrNotTwoByTwo)
	assert.Len(t, report.Values, 5)
}

func TestEvaluate_Selected(t *testing.T) {
	t.Parallel()

	report, err := agreement.Evaluate(mScreening, agreement.MeasureYuleY, "unknown")
	require.NoError(t, err)
	assert.InDelta(t, 0.7986777938427015, report.Values[agreement.MeasureYuleY], tol)
	assert.ErrorIs(t, report.Errors["unknown"], agreement.ErrUnknownMeasure)
}

func TestEvaluate_RejectsInvalidMatrix(t *testing.T) {
	t.Parallel()

	_, err := agreement.Evaluate(matrix.MustFromRows([][]int{{0, 0}, {0, 0}}))
	assert.ErrorIs(t, err, matrix.ErrNullMatrix)
}

// TestConcurrentUse runs every measure on one shared matrix from many
// goroutines; results must match the sequential ones.
func TestConcurrentUse(t *testing.T) {
	t.Parallel()

	want, err := agreement.Evaluate(mFiveClass)
	require.NoError(t, err)

	var g errgroup.Group
	for w := 0; w < 16; w++ {
		g.Go(func() error {
			for _, ms := range agreement.AgreementMeasures() {
				got, err := agreement.Compute(ms, mFiveClass)
				if err != nil {
					continue // YuleY on 5×5, already covered by want.Errors
				}
				if got != want.Values[ms] {
					t.Errorf("%s: got %v, want %v", ms, got, want.Values[ms])
				}
			}

			return nil
		})
	}
	require.NoError(t, g.Wait())
}
