// SPDX-License-Identifier: MIT

package logexp

import "math"

// LogSumExp returns log(eᵃ + eᵇ) using the max-shifted form
//
//	max(a, b) + log1p(exp(min(a, b) − max(a, b)))
//
// Equal arguments short-circuit to a + ln 2, which keeps −Inf + −Inf = −Inf
// (0 + 0 = 0) and +Inf + +Inf = +Inf instead of tripping over ∞ − ∞.
// NaN in either argument yields NaN.
func LogSumExp[T Float](a, b T) T {
	return T(logSumExp(float64(a), float64(b)))
}

// LogSubExp returns log(eᵃ − eᵇ), which requires a ≥ b.
//
// Implementation:
//   - a < b → NaN: the difference of the underlying values would be negative.
//   - otherwise a + Log1mExp(b − a).
//
// Behavior highlights:
//   - a == b (finite) → −Inf (the difference is exactly zero).
//   - a == b == ±Inf → NaN, because b − a is ∞ − ∞.
func LogSubExp[T Float](a, b T) T {
	return T(logSubExp(float64(a), float64(b)))
}

// LogSumExpSlice returns log Σ exp(xs[i]) over the whole slice with a single
// max shift, which is both faster and more accurate than folding LogSumExp.
//
// Implementation:
//   - Stage 1: find the maximum m and its index; any NaN → NaN.
//   - Stage 2: m == ±Inf → m (all −Inf means log 0; +Inf dominates).
//   - Stage 3: s = Σ_{i≠argmax} exp(xs[i] − m), return m + log1p(s).
//
// Behavior highlights:
//   - Empty (or nil) input → −Inf, the log of an empty sum.
//   - The input slice is only read.
//
// Complexity:
//   - Time O(n), Space O(1).
func LogSumExpSlice[T Float](xs []T) T {
	if len(xs) == 0 {
		return T(math.Inf(-1))
	}

	// Stage 1: locate the maximum; NaN poisons the result.
	argmax, m := 0, float64(xs[0])
	for i, x := range xs {
		v := float64(x)
		if math.IsNaN(v) {
			return T(math.NaN())
		}
		if v > m {
			argmax, m = i, v
		}
	}

	// Stage 2: infinite maximum needs no shifting.
	if math.IsInf(m, 0) {
		return T(m)
	}

	// Stage 3: shifted accumulation, skipping the maximum itself.
	var s float64
	for i, x := range xs {
		if i == argmax {
			continue
		}
		s += math.Exp(float64(x) - m)
	}

	return T(m + math.Log1p(s))
}

func logSumExp(a, b float64) float64 {
	if a == b {
		return a + math.Ln2
	}
	hi, lo := a, b
	if lo > hi {
		hi, lo = lo, hi
	}

	return hi + math.Log1p(math.Exp(lo-hi))
}

func logSubExp(a, b float64) float64 {
	if a < b {
		return math.NaN()
	}

	return a + log1mExp(b-a)
}
