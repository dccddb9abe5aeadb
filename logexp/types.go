// SPDX-License-Identifier: MIT

package logexp

// Float is the floating-point capability every kernel is written against:
// any type whose underlying type is an IEEE binary32 or binary64 number.
// Both carry ±Inf and NaN, which the kernels rely on for boundary values.
type Float interface {
	~float32 | ~float64
}
