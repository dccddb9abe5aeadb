// SPDX-License-Identifier: MIT

// Package logexp provides numerically stable scalar kernels for moving
// between log-odds space and probability / log-probability space.
//
// 🚀 What is logexp?
//
//	A handful of pure functions that never materialize an intermediate
//	probability which could underflow to 0 or round to 1:
//	  • Sigmoid, LogSigmoid          — logit → probability, log-probability
//	  • Logit, LogitExp              — probability, log-probability → logit
//	  • LogSumExp, LogSubExp         — log(eᵃ ± eᵇ) without overflow
//	  • Log1pExp, Log1mExp           — log(1 ± eˣ) with branch-selected formulas
//	  • LogSumExpSlice               — log Σ eˣⁱ over a slice (single max shift)
//
// ✨ Key properties:
//   - generic over ~float32 and ~float64 (see Float); evaluation happens once
//     in float64 and the result is narrowed back to the caller's width;
//   - IEEE semantics: ±Inf map to the exact boundary values, NaN propagates,
//     and domain violations return NaN rather than an error or a panic;
//   - deterministic, allocation-free (LogSumExpSlice reads its input only),
//     safe for concurrent use.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/logistics/logexp"
//
//	t := logexp.Logit(0.2)         // -1.3862943611198906
//	p := logexp.Sigmoid(t)         // 0.2
//	a := logexp.LogSigmoid(-7000.) // ≈ -7000, not -Inf
//
// Branch thresholds follow Mächler, "Accurately Computing log(1 − exp(−|a|))"
// (Rmpfr vignette, 2012): log1mexp switches formulas at −ln 2.
package logexp
