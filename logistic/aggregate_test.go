// SPDX-License-Identifier: MIT

package logistic_test

import (
	"testing"

	"github.com/katalvlaran/logistics/logistic"
	"github.com/stretchr/testify/assert"
)

// TestSum agrees with chained Add and handles the empty case.
func TestSum(t *testing.T) {
	t.Parallel()

	assert.True(t, logistic.Sum[float64]().IsZero(), "empty sum is 0")

	a := logistic.FromProbability(0.1)
	b := logistic.FromProbability(0.2)
	c := logistic.FromProbability(0.3)

	got := logistic.Sum(a, b, c)
	assert.InDelta(t, 0.6, got.Prob(), 1e-15)
	assert.InDelta(t, a.Add(b).Add(c).Logit(), got.Logit(), 1e-14)

	assert.True(t, logistic.Sum(a, logistic.FromProbability(0.95)).IsNaN(), "sum above 1")
	assert.InDelta(t, b.Logit(), logistic.Sum(b, logistic.Zero[float64]()).Logit(), 1e-14)
}

// TestSum_Extreme keeps many underflowing terms apart from zero.
func TestSum_Extreme(t *testing.T) {
	t.Parallel()

	term := logistic.New(-6931.471805599453)
	xs := make([]logistic.Logistic[float64], 1024)
	for i := range xs {
		xs[i] = term
	}

	// 1024 · 2⁻¹⁰⁰⁰⁰ = 2⁻⁸⁹⁷⁶; the logit is its log-probability to double precision.
	got := logistic.Sum(xs...)
	assert.InDelta(t, -6931.471805599453+10*0.6931471805599453, got.Logit(), 1e-9)
}

// TestProd agrees with chained Mul and handles the empty case.
func TestProd(t *testing.T) {
	t.Parallel()

	assert.True(t, logistic.Prod[float64]().IsOne(), "empty product is 1")

	h := logistic.Half[float64]()
	got := logistic.Prod(h, h, h, h)
	assert.InDelta(t, 0.0625, got.Prob(), 1e-15)
	assert.InDelta(t, h.Pow(4).Logit(), got.Logit(), 1e-14)

	assert.True(t, logistic.Prod(h, logistic.Zero[float64]()).IsZero())
}
