// pkg/core/config.go
package core

import (
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is looked up in the working directory when no --config is given
const DefaultConfigPath = "prebuild.yaml"

// Version match modes
const (
	MatchSubstring = "substring"
	MatchSemver    = "semver"
)

// VCS backends
const (
	VCSGit   = "git"    // git subprocess
	VCSGoGit = "go-git" // in-process repository read
)

// Artifact formats
const (
	FormatGo   = "go"
	FormatRust = "rust"
)

// Optional phases
const (
	PhaseSecurity       = "security"
	PhaseTargetFeatures = "target-features"
	PhaseVersionInfo    = "version-info"
)

// Config holds prebuild configuration
type Config struct {
	// Directive namespace, e.g. "cargo" in "cargo:warning=..."
	Namespace string `yaml:"namespace" hcl:"namespace,optional"`

	// Requirement checklist
	Compiler           string   `yaml:"compiler" hcl:"compiler,optional"`
	CompilerLabel      string   `yaml:"compiler_label" hcl:"compiler_label,optional"`
	MinCompilerVersion string   `yaml:"min_compiler_version" hcl:"min_compiler_version,optional"`
	VersionMatch       string   `yaml:"version_match" hcl:"version_match,optional"`
	PkgConfig          string   `yaml:"pkg_config" hcl:"pkg_config,optional"`
	TLSLibrary         string   `yaml:"tls_library" hcl:"tls_library,optional"`
	TLSLabel           string   `yaml:"tls_label" hcl:"tls_label,optional"`
	Libraries          []string `yaml:"libraries" hcl:"libraries,optional"`

	// Platform configuration
	DevToolsLocator    string   `yaml:"dev_tools_locator" hcl:"dev_tools_locator,optional"`
	Frameworks         []string `yaml:"frameworks" hcl:"frameworks,optional"`
	SecurityFrameworks []string `yaml:"security_frameworks" hcl:"security_frameworks,optional"`
	SecurityFeatures   []string `yaml:"security_features" hcl:"security_features,optional"`
	HardeningFlags     []string `yaml:"hardening_flags" hcl:"hardening_flags,optional"`

	// Invalidation triggers declared to the host build tool
	RerunIfChanged []string `yaml:"rerun_if_changed" hcl:"rerun_if_changed,optional"`

	// Version info artifact
	VCS             string `yaml:"vcs" hcl:"vcs,optional"`
	Git             string `yaml:"git" hcl:"git,optional"`
	Manifest        string `yaml:"manifest" hcl:"manifest,optional"`
	ArtifactName    string `yaml:"artifact_name" hcl:"artifact_name,optional"`
	ArtifactFormat  string `yaml:"artifact_format" hcl:"artifact_format,optional"`
	ArtifactPackage string `yaml:"artifact_package" hcl:"artifact_package,optional"`

	// Optional phases run after the default sequence
	Phases []string `yaml:"phases" hcl:"phases,optional"`

	LogLevel  string `yaml:"log_level" hcl:"log_level,optional"`
	LogFormat string `yaml:"log_format" hcl:"log_format,optional"`
	Debug     bool   `yaml:"debug" hcl:"debug,optional"`
}

// DefaultConfig returns the fixed checklist
func DefaultConfig() *Config {
	return &Config{
		Namespace:          "cargo",
		Compiler:           "rustc",
		CompilerLabel:      "Rust",
		MinCompilerVersion: "1.70",
		VersionMatch:       MatchSubstring,
		PkgConfig:          "pkg-config",
		TLSLibrary:         "openssl",
		TLSLabel:           "OpenSSL",
		Libraries:          []string{"libssl-dev", "libx11-dev", "libxcb1-dev"},
		DevToolsLocator:    "xcode-select",
		Frameworks:         []string{"Security", "CoreFoundation", "CoreGraphics"},
		SecurityFrameworks: []string{"Security", "CoreFoundation"},
		SecurityFeatures:   []string{"secure-memory", "mtls"},
		HardeningFlags:     []string{"-fstack-protector-strong", "-Wformat", "-Wformat-security"},
		RerunIfChanged:     []string{DefaultConfigPath, "Cargo.toml", "src/"},
		VCS:                VCSGit,
		Git:                "git",
		Manifest:           "Cargo.toml",
		ArtifactFormat:     FormatGo,
		ArtifactPackage:    "version",
		LogLevel:           "info",
		LogFormat:          "text",
	}
}

// LoadConfig loads configuration from file. Keys absent from the file keep
// their default values. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		if err := hclsimple.Decode(filepath.Base(path), data, nil, cfg); err != nil {
			return nil, NewError("parsing config", path, fmt.Errorf("%w: %v", ErrInvalidConfig, err))
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, NewError("parsing config", path, fmt.Errorf("%w: %v", ErrInvalidConfig, err))
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, NewError("validating config", path, err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to file as YAML
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigPath
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Validate checks enumerated fields
func (c *Config) Validate() error {
	switch c.VersionMatch {
	case MatchSubstring, MatchSemver:
	default:
		return fmt.Errorf("%w: version_match %q", ErrInvalidConfig, c.VersionMatch)
	}
	switch c.VCS {
	case VCSGit, VCSGoGit:
	default:
		return fmt.Errorf("%w: vcs %q", ErrInvalidConfig, c.VCS)
	}
	switch c.ArtifactFormat {
	case FormatGo, FormatRust:
	default:
		return fmt.Errorf("%w: artifact_format %q", ErrInvalidConfig, c.ArtifactFormat)
	}
	for _, p := range c.Phases {
		if !IsPhase(p) {
			return fmt.Errorf("%w: unknown phase %q", ErrInvalidConfig, p)
		}
	}
	if c.ArtifactFormat == FormatGo && c.ArtifactPackage != "" && !token.IsIdentifier(c.ArtifactPackage) {
		return fmt.Errorf("%w: artifact_package %q is not a Go identifier", ErrInvalidConfig, c.ArtifactPackage)
	}
	if c.Namespace == "" {
		return fmt.Errorf("%w: namespace is empty", ErrInvalidConfig)
	}
	return nil
}

// TrackConfigFile points the DefaultConfigPath rerun trigger at the config
// file in use. The trigger is dropped when that file does not exist.
func (c *Config) TrackConfigFile(path string) {
	if path == "" {
		path = DefaultConfigPath
	}
	_, err := os.Stat(path)
	exists := err == nil

	var triggers []string
	for _, p := range c.RerunIfChanged {
		if p == DefaultConfigPath {
			if !exists || slices.Contains(triggers, path) {
				continue
			}
			p = path
		}
		triggers = append(triggers, p)
	}
	c.RerunIfChanged = triggers
}

// IsPhase reports whether name is a known optional phase
func IsPhase(name string) bool {
	switch name {
	case PhaseSecurity, PhaseTargetFeatures, PhaseVersionInfo:
		return true
	}
	return false
}
