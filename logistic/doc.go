// SPDX-License-Identifier: MIT

// Package logistic defines Logistic, a number in [0, 1] (typically a
// probability) stored by its log-odds, with arithmetic that behaves as if it
// operated on the probability while computing entirely in log space.
//
// 🚀 Why?
//
//	0.5^10000 and 0.2^4307 both underflow to 0 in float64, so their sum is
//	0 as well. As Logistic values they are logits near −6931, and the sum
//	is the logit −6930.95, exact to double precision:
//
//	  mx := logistic.Half[float64]().Pow(10000)
//	  my := logistic.FromProbability(0.2).Pow(4307)
//	  mx.Add(my) // Logistic{Float64}(-6930.949611751832) ≈ 0
//
// ✨ Operations (p_x, p_y are the represented probabilities):
//
//	x.Add(y)      p_x + p_y
//	x.Sub(y)      p_x − p_y   (NaN when p_x < p_y; never clamped)
//	x.Mul(y)      p_x · p_y
//	x.Div(y)      p_x / p_y   (NaN when the quotient exceeds 1)
//	x.LeftDiv(y)  p_y / p_x
//	x.Pow(n)      p_xⁿ for any real n; Sqrt and Cbrt are shorthands
//	x.Complement() 1 − p_x, exact (the logit changes sign)
//	Half[T]()     ½, the logit 0
//
// ⚠️ Construction is not conversion:
//
//	logistic.New(0.39)             // logit 0.39, i.e. p ≈ 0.596
//	logistic.FromProbability(0.39) // p = 0.39, logit ≈ −0.447
//
// Values are immutable and comparable by logit, which is monotonic in the
// probability. Numeric-domain failures are NaN-bearing values, not errors;
// FromProbabilityChecked and Validate exist for input boundaries.
package logistic
