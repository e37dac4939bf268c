package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// Exit codes.
const (
	ExitSuccess = 0 // Success, including a missing key with --ignore-null
	ExitError   = 1 // Any failure: arity, missing or malformed file, missing key, I/O
)

// ErrArity is returned when a command gets the wrong number of positional arguments.
var ErrArity = errors.New("invalid command")

// ExitCode maps the error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitError
}

// exactArgs is cobra.ExactArgs with the tool's own usage hint.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%w. get help by running '%s --help'", ErrArity, cmd.CommandPath())
		}
		return nil
	}
}
