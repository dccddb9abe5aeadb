// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"

	"github.com/katalvlaran/logistics/logexp"
	"github.com/katalvlaran/logistics/logistic"
)

// Input kinds: how a plain real operand becomes a Logistic value.
const (
	inputProbability = "probability"
	inputLogit       = "logit"
)

var (
	// ErrUnknownOp is returned for an operation name outside OpNames.
	ErrUnknownOp = errors.New("cli: unknown operation")

	// ErrArity is returned when an operation gets the wrong number of operands.
	ErrArity = errors.New("cli: wrong number of operands")

	// ErrInputKind is returned for an input kind other than probability or logit.
	ErrInputKind = errors.New("cli: unknown input kind")
)

// opSpec describes how many operands an operation takes.
type opSpec struct {
	arity     int
	rawSecond bool // second operand is a plain real exponent, not a value
}

var ops = map[string]opSpec{
	"add":        {arity: 2},
	"sub":        {arity: 2},
	"mul":        {arity: 2},
	"div":        {arity: 2},
	"ldiv":       {arity: 2},
	"pow":        {arity: 2, rawSecond: true},
	"complement": {arity: 1},
	"sqrt":       {arity: 1},
	"cbrt":       {arity: 1},
	"half":       {arity: 0},
}

// OpNames returns the supported operation names in sorted order.
func OpNames() []string {
	return slices.Sorted(maps.Keys(ops))
}

// Result is the JSON form of one evaluated value. Numbers are strings so
// that ±Inf and NaN survive encoding.
type Result struct {
	Name           string `json:"name,omitempty"`
	Logit          string `json:"logit"`
	Probability    string `json:"probability"`
	LogProbability string `json:"log_probability"`
}

// KernelResult is the JSON form of a plain-real kernel evaluation.
type KernelResult struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

func lookupOp(name string, operands int) (opSpec, error) {
	spec, ok := ops[name]
	if !ok {
		return opSpec{}, fmt.Errorf("%q (want one of %v): %w", name, OpNames(), ErrUnknownOp)
	}
	if operands != spec.arity {
		return opSpec{}, fmt.Errorf("%s takes %d operand(s), got %d: %w", name, spec.arity, operands, ErrArity)
	}
	return spec, nil
}

// operand turns a plain real into a value according to kind; an empty kind
// means probability.
func operand[T logexp.Float](v float64, kind string) (logistic.Logistic[T], error) {
	switch kind {
	case inputLogit:
		return logistic.New(T(v)), nil
	case inputProbability, "":
		return logistic.FromProbabilityChecked(T(v))
	default:
		return logistic.Logistic[T]{}, fmt.Errorf("%q: %w", kind, ErrInputKind)
	}
}

// evaluate applies the named operation to plain reals.
func evaluate[T logexp.Float](name string, args []float64, kind string) (logistic.Logistic[T], error) {
	spec, err := lookupOp(name, len(args))
	if err != nil {
		return logistic.Logistic[T]{}, err
	}

	values := args
	var n T
	if spec.rawSecond {
		values, n = args[:1], T(args[1])
	}

	xs := make([]logistic.Logistic[T], len(values))
	for i, v := range values {
		if xs[i], err = operand[T](v, kind); err != nil {
			return logistic.Logistic[T]{}, err
		}
	}

	switch name {
	case "add":
		return xs[0].Add(xs[1]), nil
	case "sub":
		return xs[0].Sub(xs[1]), nil
	case "mul":
		return xs[0].Mul(xs[1]), nil
	case "div":
		return xs[0].Div(xs[1]), nil
	case "ldiv":
		return xs[0].LeftDiv(xs[1]), nil
	case "pow":
		return xs[0].Pow(n), nil
	case "complement":
		return xs[0].Complement(), nil
	case "sqrt":
		return xs[0].Sqrt(), nil
	case "cbrt":
		return xs[0].Cbrt(), nil
	default: // "half"
		return logistic.Half[T](), nil
	}
}

func parseReal(s string, bits int) (float64, error) {
	v, err := strconv.ParseFloat(s, bits)
	if err != nil {
		return math.NaN(), WrapExitError(ExitCommandError, fmt.Sprintf("invalid number %q", s), err)
	}
	return v, nil
}

func parseReals(args []string, bits int) ([]float64, error) {
	vs := make([]float64, len(args))
	for i, s := range args {
		v, err := parseReal(s, bits)
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}
	return vs, nil
}

func formatReal(v float64, digits, bits int) string {
	return strconv.FormatFloat(v, 'g', digits, bits)
}

func newResult[T logexp.Float](name string, x logistic.Logistic[T], bits int) Result {
	return Result{
		Name:           name,
		Logit:          formatReal(float64(x.Logit()), -1, bits),
		Probability:    formatReal(float64(x.Prob()), -1, bits),
		LogProbability: formatReal(float64(x.LogProb()), -1, bits),
	}
}
