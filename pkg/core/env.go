// pkg/core/env.go
package core

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment keys, in lookup priority order
var (
	TargetOSKeys   = []string{"PREBUILD_TARGET_OS", "CARGO_CFG_TARGET_OS", "GOOS"}
	PkgVersionKeys = []string{"PREBUILD_PKG_VERSION", "CARGO_PKG_VERSION"}
	OutDirKeys     = []string{"OUT_DIR"}
)

// Env is the build environment handed to prebuild by the host build tool.
// It is read once at startup and passed down explicitly.
type Env struct {
	TargetOS   string // Target operating system, empty if unset
	PkgVersion string // Package version, empty if unset
	OutDir     string // Build output directory, empty if unset
}

// LookupFunc resolves a single environment key
type LookupFunc func(key string) (string, bool)

// LoadEnv reads the build environment. Values from dotenv files are used
// only for keys the process environment does not set; a key set to an empty
// value still shadows the file. Missing dotenv files are skipped.
func LoadEnv(files ...string) (*Env, error) {
	fileVars := make(map[string]string)
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		vars, err := godotenv.Read(f)
		if err != nil {
			return nil, fmt.Errorf("reading env file %s: %w", f, err)
		}
		for k, v := range vars {
			if _, ok := fileVars[k]; !ok {
				fileVars[k] = v
			}
		}
	}

	return EnvFromLookup(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}), nil
}

// EnvFromLookup builds an Env from an arbitrary key lookup
func EnvFromLookup(lookup LookupFunc) *Env {
	return &Env{
		TargetOS:   firstNonEmpty(lookup, TargetOSKeys),
		PkgVersion: firstNonEmpty(lookup, PkgVersionKeys),
		OutDir:     firstNonEmpty(lookup, OutDirKeys),
	}
}

func firstNonEmpty(lookup LookupFunc, keys []string) string {
	for _, k := range keys {
		if v, ok := lookup(k); ok {
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
	}
	return ""
}
