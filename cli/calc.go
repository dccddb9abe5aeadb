// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/logistics/logexp"
	"github.com/katalvlaran/logistics/logistic"
)

// NewCalcCommand creates the calc command.
func NewCalcCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "calc <op> [x] [y]",
		Short: "Apply one operation to probabilities",
		Long: fmt.Sprintf(`Apply one operation and print the result.

Operations: %s.
For pow the second operand is a plain real exponent. Put -- before
negative operands so they are not read as flags.

Example:
  logistic calc add 0.5 0.2
  logistic calc pow 0.5 10000
  logistic --logit calc add -- -6931.471805599453 -6931.84908885367`, strings.Join(OpNames(), ", ")),
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if rootOpts.Precision == 32 {
				return runCalc[float32](rootOpts, cmd, args[0], args[1:])
			}
			return runCalc[float64](rootOpts, cmd, args[0], args[1:])
		},
	}
}

func runCalc[T logexp.Float](opts *RootOptions, cmd *cobra.Command, op string, args []string) error {
	out := opts.formatter(cmd)
	out.Debugf("calc %s: precision=%d input=%s", op, opts.Precision, opts.inputKind())

	vs, err := parseReals(args, opts.Precision)
	if err != nil {
		return err
	}

	x, err := evaluate[T](op, vs, opts.inputKind())
	if err != nil {
		return WrapExitError(ExitCommandError, "calc", err)
	}
	if x.IsNaN() {
		out.Debugf("calc %s: result is undefined (NaN logit)", op)
	}

	return out.Lines(
		[]string{x.Render(logistic.WithDigits(opts.Digits))},
		[]Result{newResult(op, x, opts.Precision)},
	)
}
