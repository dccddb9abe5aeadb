// SPDX-License-Identifier: MIT

package logexp

import "math"

// Sigmoid returns the logistic function σ(t) = 1 / (1 + e⁻ᵗ).
//
// Implementation:
//   - t ≥ 0: 1 / (1 + exp(−t)); exp never overflows.
//   - t < 0: exp(t) / (1 + exp(t)); tiny results keep full relative precision.
//
// Behavior highlights:
//   - Sigmoid(+Inf) == 1 and Sigmoid(−Inf) == 0 exactly.
//   - NaN in, NaN out.
//
// Complexity:
//   - Time O(1), Space O(1).
func Sigmoid[T Float](t T) T {
	return T(sigmoid(float64(t)))
}

// LogSigmoid returns log(σ(t)) without forming σ(t) first.
//
// Implementation:
//   - t ≥ 0: −log1p(exp(−t)).
//   - t < 0: t − log1p(exp(t)).
//
// Behavior highlights:
//   - Approaches t itself for very negative t instead of collapsing to −Inf.
//   - Keeps full precision near t = 0 (log1p, not log(1+x)).
//   - LogSigmoid(−Inf) == −Inf, LogSigmoid(+Inf) == 0.
//
// Its inverse is LogitExp.
func LogSigmoid[T Float](t T) T {
	return T(logSigmoid(float64(t)))
}

// Log1pExp returns log(1 + eˣ) (the softplus function).
//
// Large positive x is shifted (x + log1p(e⁻ˣ)) so exp never overflows;
// otherwise log1p(eˣ) keeps precision for very negative x.
func Log1pExp[T Float](x T) T {
	return T(log1pExp(float64(x)))
}

func sigmoid(t float64) float64 {
	if t >= 0 {
		return 1 / (1 + math.Exp(-t))
	}
	e := math.Exp(t)

	return e / (1 + e)
}

func logSigmoid(t float64) float64 {
	if t >= 0 {
		return -math.Log1p(math.Exp(-t))
	}

	return t - math.Log1p(math.Exp(t))
}

func log1pExp(x float64) float64 {
	if x > 0 {
		return x + math.Log1p(math.Exp(-x))
	}

	return math.Log1p(math.Exp(x))
}
