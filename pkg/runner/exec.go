// pkg/runner/exec.go
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/arc-language/prebuild/pkg/core"
)

// Exec runs commands as real subprocesses
type Exec struct {
	Dir    string       // Working directory, current directory if empty
	Logger *slog.Logger // Optional debug logging
}

var _ core.Runner = (*Exec)(nil)

// New creates an Exec runner
func New(dir string, logger *slog.Logger) *Exec {
	return &Exec{Dir: dir, Logger: logger}
}

// Run starts name with args and waits for it. A non-zero exit is returned as
// Output.ExitCode; only a failure to start the process is an error.
func (e *Exec) Run(ctx context.Context, name string, args ...string) (*core.Output, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if e.Dir != "" {
		cmd.Dir = e.Dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := &core.Output{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		out.ExitCode = exitErr.ExitCode()
	default:
		return nil, core.NewError("running", name, fmt.Errorf("%w: %v", core.ErrSpawn, err))
	}

	if e.Logger != nil {
		e.Logger.Debug("command finished",
			"cmd", name+" "+strings.Join(args, " "),
			"exit", out.ExitCode)
	}
	return out, nil
}
