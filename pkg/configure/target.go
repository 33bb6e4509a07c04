package configure

import (
	"github.com/arc-language/prebuild/pkg/core"
	"github.com/arc-language/prebuild/pkg/directive"
	"github.com/arc-language/prebuild/pkg/platform"
)

// TargetFeatureName is the feature enabled when building for the supported platform
const TargetFeatureName = "macos"

// TargetFeatures branches on the target OS named by the build environment.
// The target must be set; an empty value is fatal.
func TargetFeatures(env *core.Env) ([]directive.Directive, error) {
	if env == nil || env.TargetOS == "" {
		return nil, core.NewError("reading target platform", core.TargetOSKeys[0], core.ErrMissingEnv)
	}
	id, err := platform.Resolve(env.TargetOS)
	if err != nil {
		return nil, core.NewError("reading target platform", env.TargetOS, err)
	}

	var log directive.Log
	if id.IsSupported() {
		log.Feature(TargetFeatureName)
	} else {
		log.Warn("Unsupported operating system")
	}
	return log.Directives(), nil
}
