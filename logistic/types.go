// SPDX-License-Identifier: MIT

package logistic

import (
	"math"

	"github.com/katalvlaran/logistics/logexp"
)

// Logistic represents a real number p in [0, 1] by its logit log(p / (1 − p)).
//
// The zero value is one half (logit 0). ±Inf logits stand for exactly 1 and
// exactly 0; a NaN logit marks an undefined result. Every operation returns
// a new value: a Logistic is never mutated and holds no references, so it
// is safe to share between goroutines.
type Logistic[T logexp.Float] struct {
	logit T
}

// New wraps a raw logit. No validation is performed: ±Inf and NaN are kept.
//
// New(0.39) is NOT the probability 0.39; use FromProbability for that.
func New[T logexp.Float](logit T) Logistic[T] {
	return Logistic[T]{logit: logit}
}

// Half returns the value one half (logit 0).
func Half[T logexp.Float]() Logistic[T] {
	return Logistic[T]{}
}

// Zero returns the probability 0 (logit −Inf).
func Zero[T logexp.Float]() Logistic[T] {
	return Logistic[T]{logit: T(math.Inf(-1))}
}

// One returns the probability 1 (logit +Inf).
func One[T logexp.Float]() Logistic[T] {
	return Logistic[T]{logit: T(math.Inf(1))}
}

// Half returns one half in the same width as x.
func (Logistic[T]) Half() Logistic[T] {
	return Half[T]()
}
