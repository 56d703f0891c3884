// Package agreement computes inter-rater agreement coefficients from
// matrices of categorical classification counts.
//
// 🚀 What is an agreement coefficient?
//
//	Two raters classify the same items into n categories. Tallying their
//	decisions gives an n×n agreement matrix A where A[i][j] counts the items
//	rater 1 put in category i and rater 2 put in category j. A coefficient
//	reduces A to one number: how strongly the raters agree, usually after
//	discounting the agreement expected by chance alone.
//
// ✨ Coefficients:
//   - BennettS    — chance term 1/n (uniform categories)
//   - BangdiwalaB — ratio of squared diagonal to marginal products
//   - CohenKappa  — chance term from each rater's own marginals
//   - ScottPi     — chance term from the pooled marginals
//   - YuleY       — odds-ratio based, 2×2 only
//   - FleissKappa — N subjects × k categories, any constant number of raters
//   - IAEps       — information agreement extended by continuity (entropy based)
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/agree/agreement"
//	  "github.com/katalvlaran/agree/matrix"
//	)
//
//	m := matrix.MustFromRows([][]int{{3600, 2595}, {65, 3740}})
//	kappa, err := agreement.CohenKappa(m)
//	if errors.Is(err, agreement.ErrDomain) {
//	  // chance agreement is total; kappa is undefined
//	}
//
// Every function validates its input before any arithmetic (see
// matrix.ValidateAgreement) and never mutates it, so all of them are safe to
// call concurrently on shared matrices.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNegativeValue,
//     matrix.ErrNullMatrix, matrix.ErrTooSmall — input rejected by validation.
//   - ErrOutOfDomain, ErrDegenerateChance, ErrDivisionByZero — a required
//     denominator is exactly zero; all three also match ErrDomain.
//   - ErrNotTwoByTwo, ErrInconsistentRaters, ErrTooFewRaters — shape
//     requirements specific to YuleY and FleissKappa.
package agreement
