// pkg/probe/toolchain.go
package probe

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/arc-language/prebuild/pkg/core"
)

// ToolchainProbe queries the compiler and the developer tools locator
type ToolchainProbe struct {
	runner   core.Runner
	compiler string
	locator  string
	logger   *slog.Logger
}

// NewToolchainProbe creates a toolchain probe
func NewToolchainProbe(runner core.Runner, compiler, locator string, logger *slog.Logger) *ToolchainProbe {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ToolchainProbe{
		runner:   runner,
		compiler: compiler,
		locator:  locator,
		logger:   logger,
	}
}

// CompilerVersion returns the raw output of "<compiler> --version".
// The build cannot continue without a compiler, so both a spawn failure and
// a non-zero exit are errors.
func (p *ToolchainProbe) CompilerVersion(ctx context.Context) (string, error) {
	out, err := p.runner.Run(ctx, p.compiler, "--version")
	if err != nil {
		return "", err
	}
	if !out.Success() {
		msg := strings.TrimSpace(out.Stderr)
		if msg == "" {
			msg = fmt.Sprintf("exit status %d", out.ExitCode)
		}
		return "", core.NewError("querying version of", p.compiler, fmt.Errorf("%w: %s", core.ErrCommandFailed, msg))
	}
	version := strings.TrimSpace(out.Stdout)
	p.logger.Debug("compiler version", "compiler", p.compiler, "version", version)
	return version, nil
}

// DeveloperToolsPresent runs "<locator> -p". A non-zero exit means the tools
// are not installed; failing to start the locator is an error.
func (p *ToolchainProbe) DeveloperToolsPresent(ctx context.Context) (bool, error) {
	out, err := p.runner.Run(ctx, p.locator, "-p")
	if err != nil {
		return false, err
	}
	p.logger.Debug("developer tools probed", "locator", p.locator, "exit", out.ExitCode)
	return out.Success(), nil
}
