// SPDX-License-Identifier: MIT
// Package logistic: variadic aggregates.
//
// Sum and Prod fold any number of values in one pass. Sum uses a single
// max shift over all log-probabilities (logexp.LogSumExpSlice) instead of
// chaining Add, which would re-enter log space once per operand.

package logistic

import "github.com/katalvlaran/logistics/logexp"

// Sum returns Σ p_i. An empty sum is Zero.
//
// Complexity:
//   - Time O(n), Space O(n) for the log-probability buffer.
func Sum[T logexp.Float](xs ...Logistic[T]) Logistic[T] {
	logs := make([]float64, len(xs))
	for i, x := range xs {
		logs[i] = x.logProb()
	}

	return fromLogProb[T](logexp.LogSumExpSlice(logs))
}

// Prod returns Π p_i. An empty product is One.
//
// Complexity:
//   - Time O(n), Space O(1).
func Prod[T logexp.Float](xs ...Logistic[T]) Logistic[T] {
	var a float64
	for _, x := range xs {
		a += x.logProb()
	}

	return fromLogProb[T](a)
}
