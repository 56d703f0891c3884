// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by validator and reduction tests.
//   • Provide hide{} to force the non-*Dense fallback paths.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/agree/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// so code under test takes its At-based fallback path.
type hide struct{ matrix.Matrix }

// mustRows builds a *Dense from a nested literal or fails the test.
func mustRows[T matrix.Number](t *testing.T, rows [][]T) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// squareFixture is the sequential 3×3 tally 1..9.
func squareFixture(t *testing.T) *matrix.Dense {
	t.Helper()

	return mustRows(t, [][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
}
