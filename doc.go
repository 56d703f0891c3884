// Package agree measures how well raters agree when they sort the same
// items into categories.
//
// 🚀 What is agree?
//
//	A small, deterministic, zero-surprise library that brings together:
//		• Matrix primitives: a row-major Dense type, validators and reductions
//		• Information theory: lazy probability sequences and Shannon entropy
//		• Agreement coefficients: Bennett's S, Bangdiwala's B, Cohen's Kappa,
//		  Scott's Pi, Yule's Y, Fleiss's Kappa and the information agreement IAε
//
// ✨ Why choose agree?
//
//   - Sentinel errors everywhere: match failures with errors.Is, never parse strings
//   - Pure functions: inputs are never mutated, safe for concurrent use
//   - Pure Go: no cgo
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/     — Dense storage, agreement/classification validators, row/column sums
//	infotheory/ — marginal and joint probability sequences, Refine, Entropy
//	agreement/  — the coefficients and a name-based Measure registry (Compute, Evaluate)
//
// Quick example (two raters, two categories):
//
//	             B: yes   B: no
//	  A: yes        21       5
//	  A: no          3      21
//
//	m := matrix.MustFromRows([][]int{{21, 5}, {3, 21}})
//	kappa, err := agreement.CohenKappa(m) // ≈ 0.6805
//
//	go get github.com/katalvlaran/agree
package agree
