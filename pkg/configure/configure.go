// Package configure emits platform-specific linker and feature directives.
package configure

import (
	"context"
	"fmt"

	"github.com/arc-language/prebuild/pkg/directive"
)

// DevTools reports whether the platform developer tools are installed
type DevTools interface {
	DeveloperToolsPresent(ctx context.Context) (bool, error)
}

// InstallHint tells the developer how to get the command line tools
const InstallHint = "install using: xcode-select --install"

// checkDevTools appends warning to log when the developer tools are missing.
// Failing to run the locator is returned as an error.
func checkDevTools(ctx context.Context, tools DevTools, log *directive.Log, warning string) error {
	ok, err := tools.DeveloperToolsPresent(ctx)
	if err != nil {
		return fmt.Errorf("checking developer tools: %w", err)
	}
	if !ok {
		log.Warn(warning + "; " + InstallHint)
	}
	return nil
}
