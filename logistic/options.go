// SPDX-License-Identifier: MIT

// Package logistic: functional options for textual rendering.
//
// Design goals:
//   - Deterministic output: no global state, no locale.
//   - Safe by construction: panic only on nonsensical values (programmer error).
//   - Options are unexported; public entry points accept ...FormatOption.
package logistic

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDigits renders the shortest text that round-trips the value.
	DefaultDigits = -1

	// DefaultApprox appends " ≈ p" (the represented probability).
	DefaultApprox = true
)

const panicDigitsInvalid = "logistic: WithDigits: digits must be >= -1"

// FormatOption mutates internal formatting options.
type FormatOption func(*formatOptions)

type formatOptions struct {
	digits int  // significant digits for 'g' formatting; -1 = shortest
	approx bool // append the probability
}

// WithDigits sets the number of significant digits used for both the logit
// and the probability. -1 selects the shortest round-trip representation.
//
// Panics if digits < -1.
func WithDigits(digits int) FormatOption {
	if digits < -1 {
		panic(panicDigitsInvalid)
	}

	return func(o *formatOptions) { o.digits = digits }
}

// WithApprox toggles the trailing " ≈ p" probability annotation.
func WithApprox(on bool) FormatOption {
	return func(o *formatOptions) { o.approx = on }
}

// gatherFormatOptions applies opts over the documented defaults.
func gatherFormatOptions(opts ...FormatOption) formatOptions {
	o := formatOptions{digits: DefaultDigits, approx: DefaultApprox}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
