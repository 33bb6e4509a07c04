// pkg/core/interface.go
package core

import "context"

// Runner executes an external command and reports what it printed.
//
// Implementations must return a non-nil error only when the process could not
// be started at all. A process that ran and exited non-zero is reported
// through Output.ExitCode with a nil error, so callers can tell "tool said
// no" apart from "tool could not run".
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (*Output, error)
}

// Output is what a finished command left behind
type Output struct {
	Stdout   string // Captured standard output
	Stderr   string // Captured standard error, used only for error messages
	ExitCode int    // Process exit status
}

// Success reports whether the command exited with status zero
func (o *Output) Success() bool {
	return o != nil && o.ExitCode == 0
}
