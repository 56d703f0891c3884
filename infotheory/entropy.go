// SPDX-License-Identifier: MIT

package infotheory

import (
	"iter"
	"math"
)

// Entropy returns the Shannon entropy, in bits, of a probability sequence:
//
//	H(seq) = −Σ p·log2(p)
//
// Zero probabilities must be filtered out beforehand (see Refine): log2(0) is
// −Inf and 0·(−Inf) is NaN. The entropy of an empty sequence is 0, and so is
// the entropy of a single-mass distribution {1}. For k equal probabilities 1/k
// it reaches its maximum, log2(k).
//
// Complexity: O(len(seq)).
func Entropy(seq iter.Seq[float64]) float64 {
	var h float64
	for p := range seq {
		h -= p * math.Log2(p)
	}
	if h == 0 {
		return 0 // normalize −0 from a {1} distribution
	}

	return h
}
