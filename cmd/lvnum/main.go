// SPDX-License-Identifier: MIT

// Command lvnum is the command-line front end of the lvnum numerical
// toolkit.
package main

import (
	"os"

	"github.com/katalvlaran/lvnum/internal/cli"
)

func main() {
	if err := cli.Execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
