// SPDX-License-Identifier: MIT
// Package logistic: sentinel error set.
// Arithmetic never returns errors (failures are NaN-bearing values); these
// sentinels are returned only by checked construction, validation and text
// decoding. Callers match them with errors.Is.

package logistic

import "errors"

var (
	// ErrDomain is returned when a probability outside [0, 1] (or NaN) is
	// passed to a checked constructor.
	ErrDomain = errors.New("logistic: probability outside [0, 1]")

	// ErrNaN signals a value whose logit is NaN, i.e. the result of a
	// domain violation somewhere upstream (e.g. Sub with p_x < p_y).
	ErrNaN = errors.New("logistic: undefined value (NaN logit)")

	// ErrSyntax indicates that text could not be decoded as a logit.
	ErrSyntax = errors.New("logistic: invalid logit text")
)

// Operation name constants for unified error wrapping.
const (
	opFromProbability = "FromProbabilityChecked"
	opValidate        = "Validate"
	opUnmarshalText   = "UnmarshalText"
)
