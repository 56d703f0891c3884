// Package infotheory derives probability distributions from agreement
// matrices and measures their Shannon entropy.
//
// What & Why:
//
//	Information-based agreement indexes compare the entropy of each rater's
//	marginal distribution with the entropy of their joint distribution. This
//	package exposes those building blocks separately so they can be composed
//	and tested on their own:
//	  • ColumnProbabilities / RowProbabilities — marginals, normalized by the grand total
//	  • JointProbabilities                    — per-cell probabilities, row-major
//	  • Refine                                — drops zero probabilities
//	  • Entropy                               — −Σ p·log2(p), in bits
//
// Sequences are lazy iter.Seq[float64] values: finite, restartable, and
// re-derived from the source matrix on every range, so nothing is cached.
//
// Usage:
//
//	m := matrix.MustFromRows([][]int{{3600, 2595}, {65, 3740}})
//	hx := infotheory.Entropy(infotheory.Refine(infotheory.ColumnProbabilities(m)))
//
// Complexity:
//
//	Marginals: O(r·c) per range. Joint: O(r·c). Entropy: O(len).
package infotheory
