// Command sortdist computes sorted L1 distances of two-column input files.
package main

import (
	"fmt"
	"os"

	"github.com/hupe1980/sortdist/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
