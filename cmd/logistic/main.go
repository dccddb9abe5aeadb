// SPDX-License-Identifier: MIT

// Command logistic evaluates probability arithmetic in log-odds space.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/logistics/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
