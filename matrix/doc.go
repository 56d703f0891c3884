// Package matrix provides the storage and validation layer for agreement
// and classification matrices.
//
// The matrix package provides:
//
//   - Matrix, a minimal read-only view (Rows, Cols, At) accepted by every
//     coefficient in this module, so callers may plug in their own storage.
//   - Dense, a row-major float64 implementation with safe accessors and
//     FromRows/MustFromRows constructors for nested slices of any integer or
//     float type.
//   - Validators that enforce the structural preconditions of agreement
//     coefficients (square, non-negative, non-null, minimum size) and return
//     package sentinels wrapped with the validator tag.
//   - Reductions: row/column sums, total, trace and all-zero row/column counts.
//
// Everything here is deterministic and side-effect free; no function mutates
// its input matrix.
package matrix
