// pkg/runner/fake.go
package runner

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/arc-language/prebuild/pkg/core"
)

// Fake is a scripted Runner for tests. Commands are matched on their full
// command line ("name arg1 arg2"). Unscripted commands fail to spawn, the
// same way a missing binary does.
type Fake struct {
	mu       sync.Mutex
	outputs  map[string]*core.Output
	failures map[string]error
	calls    []string
}

var _ core.Runner = (*Fake)(nil)

// NewFake creates an empty Fake
func NewFake() *Fake {
	return &Fake{
		outputs:  make(map[string]*core.Output),
		failures: make(map[string]error),
	}
}

// On scripts the output for a command line
func (f *Fake) On(cmdline, stdout string, exitCode int) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outputs[cmdline] = &core.Output{Stdout: stdout, ExitCode: exitCode}
	return f
}

// Fail scripts a spawn failure for a command line
func (f *Fake) Fail(cmdline string, err error) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[cmdline] = err
	return f
}

// Run implements core.Runner
func (f *Fake) Run(_ context.Context, name string, args ...string) (*core.Output, error) {
	cmdline := strings.TrimSpace(name + " " + strings.Join(args, " "))

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, cmdline)

	if err, ok := f.failures[cmdline]; ok {
		return nil, core.NewError("running", name, fmt.Errorf("%w: %v", core.ErrSpawn, err))
	}
	if out, ok := f.outputs[cmdline]; ok {
		cp := *out
		return &cp, nil
	}
	return nil, core.NewError("running", name, fmt.Errorf("%w: executable file not found in $PATH", core.ErrSpawn))
}

// Calls returns the command lines run so far, in order
func (f *Fake) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}
