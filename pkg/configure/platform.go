package configure

import (
	"context"
	"log/slog"

	"github.com/arc-language/prebuild/pkg/directive"
	"github.com/arc-language/prebuild/pkg/platform"
)

// PlatformConfigurator binds native OS frameworks on the supported platform
type PlatformConfigurator struct {
	tools      DevTools
	frameworks []string
	logger     *slog.Logger
}

// NewPlatformConfigurator creates a platform configurator binding frameworks
// in the given order
func NewPlatformConfigurator(tools DevTools, frameworks []string, logger *slog.Logger) *PlatformConfigurator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &PlatformConfigurator{tools: tools, frameworks: frameworks, logger: logger}
}

// Configure emits nothing for an unsupported identity. On the supported
// platform it binds each framework, then re-checks the developer tools.
func (c *PlatformConfigurator) Configure(ctx context.Context, id platform.Identity) ([]directive.Directive, error) {
	if !id.IsSupported() {
		c.logger.Debug("platform configuration skipped", "os", id.OS)
		return nil, nil
	}

	var log directive.Log
	log.LinkFrameworks(c.frameworks...)

	if err := checkDevTools(ctx, c.tools, &log, "Xcode Command Line Tools required for development"); err != nil {
		return nil, err
	}

	c.logger.Debug("platform configured", "platform", id.String(), "frameworks", c.frameworks)
	return log.Directives(), nil
}
