// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/logistics/logexp"
	"github.com/katalvlaran/logistics/logistic"
)

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <p>...",
		Short: "Convert probabilities (or logits with --logit) to Logistic values",
		Long: `Convert each operand to a Logistic value and print it.

Example:
  logistic convert 0.2 0.5
  logistic --logit convert -- -1.386`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if rootOpts.Precision == 32 {
				return runConvert[float32](rootOpts, cmd, args)
			}
			return runConvert[float64](rootOpts, cmd, args)
		},
	}
}

func runConvert[T logexp.Float](opts *RootOptions, cmd *cobra.Command, args []string) error {
	out := opts.formatter(cmd)
	out.Debugf("convert: precision=%d input=%s", opts.Precision, opts.inputKind())

	vs, err := parseReals(args, opts.Precision)
	if err != nil {
		return err
	}

	lines := make([]string, 0, len(vs))
	results := make([]Result, 0, len(vs))
	for i, v := range vs {
		x, err := operand[T](v, opts.inputKind())
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("invalid operand %q", args[i]), err)
		}
		lines = append(lines, x.Render(logistic.WithDigits(opts.Digits)))
		results = append(results, newResult(args[i], x, opts.Precision))
	}

	return out.Lines(lines, results)
}

// NewSigmoidCommand creates the sigmoid command (plain-real kernel).
func NewSigmoidCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sigmoid <t>...",
		Short: "Print the logistic function 1/(1+exp(-t)) of each real",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if rootOpts.Precision == 32 {
				return runKernel(rootOpts, cmd, args, logexp.Sigmoid[float32])
			}
			return runKernel(rootOpts, cmd, args, logexp.Sigmoid[float64])
		},
	}
}

// NewLogitCommand creates the logit command (plain-real kernel).
func NewLogitCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logit <p>...",
		Short: "Print log(p/(1-p)) of each real; NaN outside [0, 1]",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if rootOpts.Precision == 32 {
				return runKernel(rootOpts, cmd, args, logexp.Logit[float32])
			}
			return runKernel(rootOpts, cmd, args, logexp.Logit[float64])
		},
	}
}

func runKernel[T logexp.Float](opts *RootOptions, cmd *cobra.Command, args []string, kernel func(T) T) error {
	out := opts.formatter(cmd)
	out.Debugf("%s: precision=%d", cmd.Name(), opts.Precision)

	vs, err := parseReals(args, opts.Precision)
	if err != nil {
		return err
	}

	lines := make([]string, 0, len(vs))
	results := make([]KernelResult, 0, len(vs))
	for i, v := range vs {
		y := float64(kernel(T(v)))
		lines = append(lines, formatReal(y, opts.Digits, opts.Precision))
		results = append(results, KernelResult{Input: args[i], Output: formatReal(y, -1, opts.Precision)})
	}

	return out.Lines(lines, results)
}
