// SPDX-License-Identifier: MIT

package logistic

import (
	"fmt"
	"strconv"
	"strings"
)

// MarshalText encodes the raw logit in its shortest round-trip form
// ("+Inf", "-Inf" and "NaN" for the special values). The probability is
// not written: decoding must restore the logit bit for bit.
func (x Logistic[T]) MarshalText() ([]byte, error) {
	return strconv.AppendFloat(nil, float64(x.logit), 'g', -1, bitSize[T]()), nil
}

// UnmarshalText decodes a logit written by MarshalText. Any input accepted
// by strconv.ParseFloat is valid; anything else wraps ErrSyntax.
func (x *Logistic[T]) UnmarshalText(text []byte) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(string(text)), bitSize[T]())
	if err != nil {
		return fmt.Errorf("%s: %w: %v", opUnmarshalText, ErrSyntax, err)
	}
	x.logit = T(v)

	return nil
}
