// pkg/probe/library.go
package probe

import (
	"context"
	"log/slog"

	"github.com/arc-language/prebuild/pkg/core"
)

// LibraryProbe asks pkg-config whether a library is installed
type LibraryProbe struct {
	runner    core.Runner
	pkgConfig string
	logger    *slog.Logger
}

// NewLibraryProbe creates a library probe. pkgConfig is the discovery tool,
// "pkg-config" if empty.
func NewLibraryProbe(runner core.Runner, pkgConfig string, logger *slog.Logger) *LibraryProbe {
	if pkgConfig == "" {
		pkgConfig = "pkg-config"
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LibraryProbe{runner: runner, pkgConfig: pkgConfig, logger: logger}
}

// Probe reports whether name can be located. It never fails: if pkg-config
// itself is missing the library reads as not found.
func (p *LibraryProbe) Probe(ctx context.Context, name string) bool {
	out, err := p.runner.Run(ctx, p.pkgConfig, "--exists", name)
	if err != nil {
		p.logger.Debug("library discovery unavailable", "library", name, "err", err)
		return false
	}
	p.logger.Debug("library probed", "library", name, "exit", out.ExitCode)
	return out.Success()
}
