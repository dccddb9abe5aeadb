// SPDX-License-Identifier: MIT

// Package cli implements the logistic command-line tool: conversion between
// probabilities and logits, single operations, and YAML batch evaluation.
package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

// Defaults for the global flags.
const (
	DefaultPrecision = 64
	DefaultDigits    = 6
	DefaultFormat    = FormatText
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{FormatText, FormatJSON}

// ValidPrecisions defines the supported carrier widths in bits.
var ValidPrecisions = []int{32, 64}

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Precision int    // 32 | 64
	Logit     bool   // operands are raw logits instead of probabilities
	Digits    int    // significant digits in text output; -1 = shortest
	Format    string // "text" | "json"
	Verbose   bool
}

// NewRootCommand creates the root command for the logistic CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "logistic",
		Short: "Probability arithmetic in log-odds space",
		Long: `Evaluate probabilities stored as logits.

Operands are probabilities in [0, 1] unless --logit is given. Results are
printed as Logistic{FloatNN}(logit) ≈ probability; an undefined result
(e.g. subtracting a larger probability) prints as NaN.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return validateRootOptions(opts)
		},
	}

	// Global flags
	cmd.PersistentFlags().IntVar(&opts.Precision, "precision", DefaultPrecision, "floating-point width in bits (32|64)")
	cmd.PersistentFlags().BoolVar(&opts.Logit, "logit", false, "treat operands as raw logits")
	cmd.PersistentFlags().IntVar(&opts.Digits, "digits", DefaultDigits, "significant digits in text output (-1 = shortest)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", DefaultFormat, "output format (json|text)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	// Add subcommands
	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewSigmoidCommand(opts))
	cmd.AddCommand(NewLogitCommand(opts))
	cmd.AddCommand(NewCalcCommand(opts))
	cmd.AddCommand(NewBatchCommand(opts))

	return cmd
}

func validateRootOptions(opts *RootOptions) error {
	if !slices.Contains(ValidFormats, opts.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
	}
	if !slices.Contains(ValidPrecisions, opts.Precision) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid precision %d: must be one of %v", opts.Precision, ValidPrecisions))
	}
	if opts.Digits < -1 {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid digits %d: must be >= -1", opts.Digits))
	}

	return nil
}

// formatter builds the output formatter for a command.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

// inputKind names how operands are read, for diagnostics.
func (o *RootOptions) inputKind() string {
	if o.Logit {
		return inputLogit
	}
	return inputProbability
}
