// SPDX-License-Identifier: MIT

package logexp_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/logistics/logexp"
)

// ExampleLogit converts a probability to log-odds and back.
func ExampleLogit() {
	t := logexp.Logit(0.2)
	fmt.Printf("logit=%.6f\n", t)
	fmt.Printf("sigmoid=%.6f\n", logexp.Sigmoid(t))
	// Output:
	// logit=-1.386294
	// sigmoid=0.200000
}

// ExampleLogSumExp adds two probabilities that are far below the smallest
// positive float64 (0.5^10000 and 0.2^4307) without losing them to zero.
func ExampleLogSumExp() {
	a := 10000 * math.Log(0.5)
	b := 4307 * math.Log(0.2)
	fmt.Printf("naive=%v\n", math.Exp(a)+math.Exp(b))
	fmt.Printf("log-sum=%.6f\n", logexp.LogSumExp(a, b))
	// Output:
	// naive=0
	// log-sum=-6930.949612
}

// ExampleLogSigmoid shows the deep negative tail staying finite.
func ExampleLogSigmoid() {
	fmt.Println(logexp.LogSigmoid(-7000.0))
	fmt.Println(math.Log(logexp.Sigmoid(-7000.0)))
	// Output:
	// -7000
	// -Inf
}
