// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/logistics/logexp"
	"github.com/katalvlaran/logistics/logistic"
)

// BatchFile is the YAML document read by the batch command.
//
//	cases:
//	  - name: sum
//	    op: add
//	    x: 0.5
//	    y: 0.2
//	  - name: tiny
//	    op: add
//	    input: logit
//	    x: -6931.471805599453
//	    y: -6931.84908885367
type BatchFile struct {
	Cases []BatchCase `yaml:"cases"`
}

// BatchCase is one operation. X and Y are optional so that arity can be
// checked; Input is "probability" (default) or "logit".
type BatchCase struct {
	Name  string   `yaml:"name"`
	Op    string   `yaml:"op"`
	X     *float64 `yaml:"x"`
	Y     *float64 `yaml:"y"`
	Input string   `yaml:"input"`
}

// LoadBatchFile reads and parses a batch YAML file, rejecting unknown fields.
func LoadBatchFile(path string) (*BatchFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var f BatchFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	for i, c := range f.Cases {
		if c.Name == "" {
			return nil, fmt.Errorf("case %d: name is required", i)
		}
		if c.Op == "" {
			return nil, fmt.Errorf("case %q: op is required", c.Name)
		}
	}

	return &f, nil
}

// operands returns the case's reals in order.
func (c BatchCase) operands() ([]float64, error) {
	switch {
	case c.X == nil && c.Y != nil:
		return nil, fmt.Errorf("y given without x: %w", ErrArity)
	case c.X == nil:
		return nil, nil
	case c.Y == nil:
		return []float64{*c.X}, nil
	default:
		return []float64{*c.X, *c.Y}, nil
	}
}

// NewBatchCommand creates the batch command.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <file.yaml>",
		Short: "Evaluate every case of a YAML file",
		Long: `Evaluate every case of a YAML file and print "name: result" lines.

Cases without an input field use --logit to decide how operands are read.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if rootOpts.Precision == 32 {
				return runBatch[float32](rootOpts, cmd, args[0])
			}
			return runBatch[float64](rootOpts, cmd, args[0])
		},
	}
}

func runBatch[T logexp.Float](opts *RootOptions, cmd *cobra.Command, path string) error {
	out := opts.formatter(cmd)

	f, err := LoadBatchFile(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "batch", err)
	}
	out.Debugf("batch: %d case(s) from %s, precision=%d", len(f.Cases), path, opts.Precision)

	lines := make([]string, 0, len(f.Cases))
	results := make([]Result, 0, len(f.Cases))
	for _, c := range f.Cases {
		kind := c.Input
		if kind == "" {
			kind = opts.inputKind()
		}

		args, err := c.operands()
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("batch: case %q", c.Name), err)
		}
		x, err := evaluate[T](c.Op, args, kind)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("batch: case %q", c.Name), err)
		}

		lines = append(lines, c.Name+": "+x.Render(logistic.WithDigits(opts.Digits)))
		results = append(results, newResult(c.Name, x, opts.Precision))
	}

	return out.Lines(lines, results)
}
