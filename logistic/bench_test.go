// SPDX-License-Identifier: MIT

package logistic_test

import (
	"testing"

	"github.com/katalvlaran/logistics/logistic"
)

var sink logistic.Logistic[float64]

// BenchmarkAdd measures the log-sum-exp backed addition.
func BenchmarkAdd(b *testing.B) {
	x := logistic.New(-6931.471805599453)
	y := logistic.New(-6931.84908885367)
	for i := 0; i < b.N; i++ {
		sink = x.Add(y)
	}
}

// BenchmarkMul measures the log-probability product.
func BenchmarkMul(b *testing.B) {
	x := logistic.Half[float64]()
	y := logistic.FromProbability(0.2)
	for i := 0; i < b.N; i++ {
		sink = x.Mul(y)
	}
}

// BenchmarkSum measures the single-shift aggregate on 256 operands.
func BenchmarkSum(b *testing.B) {
	xs := make([]logistic.Logistic[float64], 256)
	for i := range xs {
		xs[i] = logistic.New(-float64(i))
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		sink = logistic.Sum(xs...)
	}
}

// BenchmarkSumChained is the baseline Sum improves on.
func BenchmarkSumChained(b *testing.B) {
	xs := make([]logistic.Logistic[float64], 256)
	for i := range xs {
		xs[i] = logistic.New(-float64(i))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		acc := logistic.Zero[float64]()
		for _, x := range xs {
			acc = acc.Add(x)
		}
		sink = acc
	}
}
