package configure

import (
	"context"
	"log/slog"

	"github.com/arc-language/prebuild/pkg/directive"
	"github.com/arc-language/prebuild/pkg/platform"
)

// SecurityOptions lists the hardening bundle
type SecurityOptions struct {
	Features   []string // Feature flags, e.g. secure-memory, mtls
	LinkFlags  []string // Hardening linker/compiler flags
	Frameworks []string // Trust and credential frameworks on the supported platform
}

// SecurityConfigurator emits hardening directives
type SecurityConfigurator struct {
	tools  DevTools
	opts   SecurityOptions
	logger *slog.Logger
}

// NewSecurityConfigurator creates a security configurator
func NewSecurityConfigurator(tools DevTools, opts SecurityOptions, logger *slog.Logger) *SecurityConfigurator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SecurityConfigurator{tools: tools, opts: opts, logger: logger}
}

// Configure emits the feature flags and hardening flags unconditionally.
// On the supported platform it then runs the platform security setup.
func (c *SecurityConfigurator) Configure(ctx context.Context, id platform.Identity) ([]directive.Directive, error) {
	var log directive.Log
	for _, f := range c.opts.Features {
		log.Feature(f)
	}
	log.LinkArg(c.opts.LinkFlags...)

	if id.IsSupported() {
		if err := c.setupPlatform(ctx, &log); err != nil {
			return nil, err
		}
	}
	return log.Directives(), nil
}

func (c *SecurityConfigurator) setupPlatform(ctx context.Context, log *directive.Log) error {
	if err := checkDevTools(ctx, c.tools, log, "Xcode Command Line Tools not installed"); err != nil {
		return err
	}
	log.LinkFrameworks(c.opts.Frameworks...)
	c.logger.Debug("platform security configured", "frameworks", c.opts.Frameworks)
	return nil
}
