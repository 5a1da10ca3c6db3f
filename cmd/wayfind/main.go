package main

import (
	"errors"
	"io"
	"os"

	"github.com/katalvlaran/wayfind/navigator"
)

const (
	exitFailure      = 1
	exitInvalidInput = 2
	exitNotFound     = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	root, a := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		a.logger.Error("command failed", "error", err.Error())
		return exitCode(err)
	}
	return 0
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, navigator.ErrInvalidInput):
		return exitInvalidInput
	case errors.Is(err, navigator.ErrNotFound):
		return exitNotFound
	default:
		return exitFailure
	}
}
