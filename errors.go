// errors.go
package prebuild

import "github.com/arc-language/prebuild/pkg/core"

var (
	// ErrSpawn indicates a subprocess could not be started
	ErrSpawn = core.ErrSpawn

	// ErrCommandFailed indicates the compiler or git exited with an error
	ErrCommandFailed = core.ErrCommandFailed

	// ErrMissingEnv indicates a required environment variable is not set
	ErrMissingEnv = core.ErrMissingEnv

	// ErrArtifactWrite indicates a generated file could not be written
	ErrArtifactWrite = core.ErrArtifactWrite

	// ErrInvalidConfig indicates the configuration is malformed
	ErrInvalidConfig = core.ErrInvalidConfig
)

// Error wraps an error with additional context
type Error = core.Error
