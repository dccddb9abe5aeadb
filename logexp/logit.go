// SPDX-License-Identifier: MIT

package logexp

import "math"

// Lower and upper edges of the band where Logit switches to the log1p form.
// Inside [logitBandLo, logitBandHi] both 2p−1 and 1−p are computed with at
// most one rounding, so log1p((2p−1)/(1−p)) stays accurate near t = 0.
const (
	logitBandLo = 0.3
	logitBandHi = 0.7
)

// Logit returns the log-odds log(p / (1 − p)); it is the inverse of Sigmoid.
//
// Implementation:
//   - Stage 1: domain guard. NaN, p < 0 or p > 1 → NaN.
//   - Stage 2: boundaries. p == 0 → −Inf, p == 1 → +Inf.
//   - Stage 3: p outside the central band → log(p / (1 − p)); the quotient
//     carries one rounding and the result is far from 0.
//   - Stage 4: p inside the band → log1p((2p − 1) / (1 − p)) to avoid
//     cancellation where the result is close to 0.
//
// Complexity:
//   - Time O(1), Space O(1).
func Logit[T Float](p T) T {
	return T(logit(float64(p)))
}

// LogitExp returns logit(eᵃ) = a − log(1 − eᵃ) without evaluating eᵃ as a
// probability first; it is the inverse of LogSigmoid.
//
// Behavior highlights:
//   - a > 0 (not a log-probability) → NaN.
//   - a == 0 → +Inf (probability one).
//   - a → −Inf: LogitExp(a) → a; LogitExp(−Inf) == −Inf.
func LogitExp[T Float](a T) T {
	return T(logitExp(float64(a)))
}

// Log1mExp returns log(1 − eˣ) for x ≤ 0.
//
// Implementation:
//   - x > −ln 2: log(−expm1(x)); 1 − eˣ is small and expm1 keeps it exact.
//   - x ≤ −ln 2: log1p(−exp(x)); eˣ ≤ ½ and log1p keeps the tiny result.
//
// Behavior highlights:
//   - x > 0 → NaN, x == 0 → −Inf, x == −Inf → 0.
func Log1mExp[T Float](x T) T {
	return T(log1mExp(float64(x)))
}

func logit(p float64) float64 {
	switch {
	case math.IsNaN(p) || p < 0 || p > 1:
		return math.NaN()
	case p == 0:
		return math.Inf(-1)
	case p == 1:
		return math.Inf(1)
	case p < logitBandLo || p > logitBandHi:
		return math.Log(p / (1 - p))
	default:
		return math.Log1p((2*p - 1) / (1 - p))
	}
}

func logitExp(a float64) float64 {
	if a > 0 {
		return math.NaN()
	}

	return a - log1mExp(a)
}

func log1mExp(x float64) float64 {
	switch {
	case x > 0:
		return math.NaN()
	case x > -math.Ln2:
		return math.Log(-math.Expm1(x))
	default:
		// NaN lands here too and propagates through Exp.
		return math.Log1p(-math.Exp(x))
	}
}
