// SPDX-License-Identifier: MIT

package logistic

import (
	"fmt"
	"math"

	"github.com/katalvlaran/logistics/logexp"
)

// FromProbability converts a probability p to its Logistic equivalent.
//
// Implementation:
//   - Stage 1: logit(p) via logexp.Logit (cancellation-free near 0, ½ and 1).
//   - Stage 2: wrap the logit.
//
// Behavior highlights:
//   - p == 0 → Zero, p == 1 → One.
//   - p outside [0, 1] or NaN → NaN-bearing value (see FromProbabilityChecked).
//   - Untyped constants default to float64: FromProbability(0.2) is a
//     Logistic[float64]; FromProbability[float32](0.2) picks single precision.
func FromProbability[T logexp.Float](p T) Logistic[T] {
	return Logistic[T]{logit: logexp.Logit(p)}
}

// FromProbabilityChecked is FromProbability with an explicit domain check.
// It returns ErrDomain (wrapped) for NaN or p outside [0, 1].
func FromProbabilityChecked[T logexp.Float](p T) (Logistic[T], error) {
	v := float64(p)
	if math.IsNaN(v) || v < 0 || v > 1 {
		return Logistic[T]{logit: T(math.NaN())}, fmt.Errorf("%s: %v: %w", opFromProbability, v, ErrDomain)
	}

	return FromProbability(p), nil
}

// Convert changes the carrier width of x. The stored logit is converted, so
// the represented probability is preserved up to the target precision.
func Convert[U, T logexp.Float](x Logistic[T]) Logistic[U] {
	return Logistic[U]{logit: U(x.logit)}
}

// Validate returns ErrNaN (wrapped) when x carries a NaN logit.
func Validate[T logexp.Float](x Logistic[T]) error {
	if x.IsNaN() {
		return fmt.Errorf("%s: %w", opValidate, ErrNaN)
	}

	return nil
}

// Logit returns the stored log-odds.
func (x Logistic[T]) Logit() T { return x.logit }

// Prob returns the represented probability σ(logit). It may be exactly 0 or
// 1 when the value is closer to the boundary than T can express.
func (x Logistic[T]) Prob() T { return T(logexp.Sigmoid(float64(x.logit))) }

// LogProb returns log(p) computed from the logit without forming p, so it
// stays finite for values whose probability underflows.
func (x Logistic[T]) LogProb() T { return T(x.logProb()) }

// IsNaN reports whether x is an undefined result.
func (x Logistic[T]) IsNaN() bool { return math.IsNaN(float64(x.logit)) }

// IsZero reports whether x is exactly the probability 0.
func (x Logistic[T]) IsZero() bool { return math.IsInf(float64(x.logit), -1) }

// IsOne reports whether x is exactly the probability 1.
func (x Logistic[T]) IsOne() bool { return math.IsInf(float64(x.logit), 1) }

// logProb evaluates the log-probability in float64 regardless of T; the
// arithmetic narrows to T exactly once, at the end.
func (x Logistic[T]) logProb() float64 {
	return logexp.LogSigmoid(float64(x.logit))
}

// fromLogProb builds a Logistic from a float64 log-probability.
func fromLogProb[T logexp.Float](a float64) Logistic[T] {
	return Logistic[T]{logit: T(logexp.LogitExp(a))}
}
