// Package cli turns command line arguments into a validated filter and runs
// it over the requested inputs.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

const (
	CodeOk     = 0
	CodeFail   = 1
	CodeConfig = 2
)

// ExitError is an error carrying the exit code of the process.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

type Stdio struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func DefaultStdio() Stdio {
	return Stdio{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Execute runs cmd with args and returns the exit code of the process.
// Failures of individual inputs are not failures of the command: only a
// configuration error yields a non zero code.
func Execute(cmd *cobra.Command, args []string) int {
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return CodeOk
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s", cmd.Name(), err)
	fmt.Fprintln(cmd.ErrOrStderr())

	var exit *ExitError
	if errors.As(err, &exit) {
		return exit.Code
	}
	return CodeConfig
}

// Main is the body of the main function of every binary of the module.
func Main(build func(Stdio) *cobra.Command) {
	cmd := build(DefaultStdio())
	os.Exit(Execute(cmd, os.Args[1:]))
}
