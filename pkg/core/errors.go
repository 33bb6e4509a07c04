// pkg/core/errors.go
package core

import (
	"errors"
	"fmt"
)

var (
	// ErrSpawn indicates a subprocess could not be started
	ErrSpawn = errors.New("process could not be started")

	// ErrCommandFailed indicates a required command exited with a non-zero status
	ErrCommandFailed = errors.New("command failed")

	// ErrMissingEnv indicates a required environment value is not set
	ErrMissingEnv = errors.New("required environment variable not set")

	// ErrArtifactWrite indicates a generated file could not be written
	ErrArtifactWrite = errors.New("writing artifact")

	// ErrInvalidConfig indicates the configuration file is malformed
	ErrInvalidConfig = errors.New("invalid config")
)

// Error wraps a fatal error with the operation and subject it concerns
type Error struct {
	Op      string // Operation that failed
	Subject string // Tool, variable or path if applicable
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Subject != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Subject, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds an *Error. err is typically a sentinel from this package,
// optionally wrapped with more detail.
func NewError(op, subject string, err error) *Error {
	return &Error{Op: op, Subject: subject, Err: err}
}
