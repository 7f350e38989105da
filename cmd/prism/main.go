// Package main provides the prism CLI: a conformance test harness that
// drives pluggable JSON Schema validator adapters against a corpus of
// declarative test files.
package main

import (
	"fmt"
	"os"

	"github.com/schemaprism/prism/internal/cli"
	"github.com/schemaprism/prism/pkg/version"
)

type exitCoder interface {
	ExitCode() int
}

func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if coder, ok := err.(exitCoder); ok {
			return coder.ExitCode()
		}
		return 1
	}
	return 0
}

func main() {
	os.Exit(run())
}
