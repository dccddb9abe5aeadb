// SPDX-License-Identifier: MIT

package logistic

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/katalvlaran/logistics/logexp"
)

// String renders x as
//
//	Logistic{Float64}(-1.3862943611198906) ≈ 0.2
//
// using the shortest round-trip form for the carrier width.
func (x Logistic[T]) String() string {
	return x.Render()
}

// Render renders x with the given options (see WithDigits, WithApprox).
// The type tag is Float32 or Float64 according to the carrier width;
// infinities print as +Inf / -Inf and undefined values as NaN.
func (x Logistic[T]) Render(opts ...FormatOption) string {
	o := gatherFormatOptions(opts...)
	bits := bitSize[T]()

	var sb strings.Builder
	sb.WriteString("Logistic{")
	sb.WriteString(typeTag(bits))
	sb.WriteString("}(")
	sb.WriteString(strconv.FormatFloat(float64(x.logit), 'g', o.digits, bits))
	sb.WriteByte(')')
	if o.approx {
		sb.WriteString(" ≈ ")
		sb.WriteString(strconv.FormatFloat(float64(x.Prob()), 'g', o.digits, bits))
	}

	return sb.String()
}

// bitSize reports 32 or 64 for the underlying kind of T (named types included).
func bitSize[T logexp.Float]() int {
	if reflect.TypeFor[T]().Kind() == reflect.Float32 {
		return 32
	}

	return 64
}

func typeTag(bits int) string {
	if bits == 32 {
		return "Float32"
	}

	return "Float64"
}
