// Package requirements walks the fixed host checklist and turns every unmet
// requirement into a warning directive.
package requirements

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/arc-language/prebuild/pkg/core"
	"github.com/arc-language/prebuild/pkg/directive"
)

// Toolchain reports the compiler version
type Toolchain interface {
	CompilerVersion(ctx context.Context) (string, error)
}

// LibraryProber reports library presence
type LibraryProber interface {
	Probe(ctx context.Context, name string) bool
}

// Checklist is what the checker verifies, in this order: compiler version,
// TLS library, then Libraries in slice order.
type Checklist struct {
	Compiler           string
	CompilerLabel      string
	MinCompilerVersion string
	VersionMatch       string
	TLSLibrary         string
	TLSLabel           string
	Libraries          []string
}

// ChecklistFromConfig extracts the checklist from configuration
func ChecklistFromConfig(cfg *core.Config) Checklist {
	return Checklist{
		Compiler:           cfg.Compiler,
		CompilerLabel:      cfg.CompilerLabel,
		MinCompilerVersion: cfg.MinCompilerVersion,
		VersionMatch:       cfg.VersionMatch,
		TLSLibrary:         cfg.TLSLibrary,
		TLSLabel:           cfg.TLSLabel,
		Libraries:          append([]string(nil), cfg.Libraries...),
	}
}

// Outcome is what a checklist walk produced
type Outcome struct {
	Directives []directive.Directive
	Probes     []core.ProbeResult
}

// Checker runs the checklist
type Checker struct {
	toolchain Toolchain
	libraries LibraryProber
	list      Checklist
	logger    *slog.Logger
}

// NewChecker creates a checker
func NewChecker(toolchain Toolchain, libraries LibraryProber, list Checklist, logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Checker{
		toolchain: toolchain,
		libraries: libraries,
		list:      list,
		logger:    logger,
	}
}

// Check walks the checklist. Misses become warnings; the only error is a
// compiler that could not be queried.
func (c *Checker) Check(ctx context.Context) (*Outcome, error) {
	var log directive.Log
	var probes []core.ProbeResult

	version, err := c.toolchain.CompilerVersion(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking compiler: %w", err)
	}
	ok := VersionSatisfied(version, c.list.MinCompilerVersion, c.list.VersionMatch)
	probes = append(probes, core.ProbeResult{
		Subject: c.list.Compiler,
		Kind:    core.ProbeCompiler,
		Found:   ok,
		Detail:  version,
	})
	if !ok {
		c.logger.Warn("compiler version below minimum", "version", version, "min", c.list.MinCompilerVersion)
		log.Warn(fmt.Sprintf("%s %s or higher is required", label(c.list.CompilerLabel, c.list.Compiler), c.list.MinCompilerVersion))
	}

	if c.list.TLSLibrary != "" {
		found := c.libraries.Probe(ctx, c.list.TLSLibrary)
		probes = append(probes, core.ProbeResult{Subject: c.list.TLSLibrary, Kind: core.ProbeLibrary, Found: found})
		if !found {
			log.Warn(fmt.Sprintf("%s development files not found", label(c.list.TLSLabel, c.list.TLSLibrary)))
		}
	}

	for _, lib := range c.list.Libraries {
		found := c.libraries.Probe(ctx, lib)
		probes = append(probes, core.ProbeResult{Subject: lib, Kind: core.ProbeLibrary, Found: found})
		if !found {
			log.Warn(fmt.Sprintf("Required library %s not found", lib))
		}
	}

	c.logger.Debug("requirements checked", "probes", len(probes), "warnings", log.Len())
	return &Outcome{Directives: log.Directives(), Probes: probes}, nil
}

func label(display, name string) string {
	if display != "" {
		return display
	}
	return name
}
