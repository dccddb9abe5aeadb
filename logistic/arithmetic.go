// SPDX-License-Identifier: MIT
// Package logistic: arithmetic.
//
// Every operation lifts its operands to log-probabilities a = log p_x,
// b = log p_y (logexp.LogSigmoid), combines them in log space and returns
// logexp.LogitExp of the result. No linear-scale probability is formed, so
// nothing underflows to 0 or rounds to 1 on the way. Domain violations
// surface as NaN logits.

package logistic

import "github.com/katalvlaran/logistics/logexp"

// Add returns p_x + p_y: LogitExp(LogSumExp(a, b)).
// A sum above 1 is not representable and yields NaN.
func (x Logistic[T]) Add(y Logistic[T]) Logistic[T] {
	return fromLogProb[T](logexp.LogSumExp(x.logProb(), y.logProb()))
}

// Sub returns p_x − p_y: LogitExp(LogSubExp(a, b)).
// p_x < p_y yields NaN; operands are never reordered or clamped.
func (x Logistic[T]) Sub(y Logistic[T]) Logistic[T] {
	return fromLogProb[T](logexp.LogSubExp(x.logProb(), y.logProb()))
}

// Mul returns p_x · p_y: LogitExp(a + b).
func (x Logistic[T]) Mul(y Logistic[T]) Logistic[T] {
	return fromLogProb[T](x.logProb() + y.logProb())
}

// Div returns p_x / p_y: LogitExp(a − b).
// A quotient above 1 is passed to LogitExp unchanged and yields NaN.
func (x Logistic[T]) Div(y Logistic[T]) Logistic[T] {
	return fromLogProb[T](x.logProb() - y.logProb())
}

// LeftDiv returns p_y / p_x, i.e. y.Div(x).
func (x Logistic[T]) LeftDiv(y Logistic[T]) Logistic[T] {
	return fromLogProb[T](y.logProb() - x.logProb())
}

// Pow returns p_xⁿ for any real n: LogitExp(n · a).
//
// Behavior highlights:
//   - n == 0 gives One for every p_x > 0; for p_x == 0 it is NaN (0 · −Inf).
//   - Negative n produces values above 1, hence NaN, unless p_x == 1.
func (x Logistic[T]) Pow(n T) Logistic[T] {
	return fromLogProb[T](float64(n) * x.logProb())
}

// Sqrt returns √p_x.
func (x Logistic[T]) Sqrt() Logistic[T] {
	return fromLogProb[T](x.logProb() / 2)
}

// Cbrt returns ∛p_x.
func (x Logistic[T]) Cbrt() Logistic[T] {
	return fromLogProb[T](x.logProb() / 3)
}

// Complement returns 1 − p_x. It is exact: σ(−t) = 1 − σ(t), so only the
// sign of the logit changes.
func (x Logistic[T]) Complement() Logistic[T] {
	return Logistic[T]{logit: -x.logit}
}
