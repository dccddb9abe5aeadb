// Package logistics is the root of a small toolkit for probability
// arithmetic in log-odds space.
//
// 🚀 What is logistics?
//
//	A pure-Go library that stores a probability p as its logit
//	t = log(p/(1−p)) and does arithmetic without ever forming p on a
//	linear scale:
//		• logexp/   — numerically stable kernels: Sigmoid, LogSigmoid, Logit,
//		              LogitExp, Log1mExp, Log1pExp, LogSumExp, LogSubExp
//		• logistic/ — the Logistic[T] value type (float32 or float64 carrier)
//		              with +, −, ·, ÷, powers, roots, complement, Sum, Prod,
//		              ordering, text encoding and rendering
//		• cli/      — the `logistic` command (cmd/logistic): convert, sigmoid,
//		              logit, calc and YAML batch evaluation
//
// ✨ Why log-odds?
//
//   - Tiny probabilities (2⁻¹⁰⁰⁰⁰) and probabilities near 1 keep full precision
//   - The complement 1 − p is exact: only the sign of the logit flips
//   - Values are immutable and safe to share across goroutines
//
// Quick example:
//
//	x := logistic.FromProbability(0.5)
//	y := logistic.FromProbability(0.2)
//	fmt.Println(x.Add(y)) // Logistic{Float64}(0.8472978603872037) ≈ 0.7
//
// Out-of-range results (a sum above 1, a larger probability subtracted
// from a smaller one) are NaN values rather than errors.
//
//	go get github.com/katalvlaran/logistics/logistic
package logistics
