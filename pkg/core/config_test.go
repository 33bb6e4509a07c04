package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileGivesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigYAMLOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prebuild.yaml")
	data := `
namespace: build
min_compiler_version: "1.75"
version_match: semver
libraries: [libfoo-dev]
phases: [security]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "build", cfg.Namespace)
	assert.Equal(t, "1.75", cfg.MinCompilerVersion)
	assert.Equal(t, MatchSemver, cfg.VersionMatch)
	assert.Equal(t, []string{"libfoo-dev"}, cfg.Libraries)
	assert.Equal(t, []string{PhaseSecurity}, cfg.Phases)

	// Untouched keys keep their defaults
	assert.Equal(t, "rustc", cfg.Compiler)
	assert.Equal(t, "openssl", cfg.TLSLibrary)
}

func TestLoadConfigHCL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prebuild.hcl")
	data := `
compiler       = "cc"
compiler_label = "C"
tls_library    = ""
frameworks     = ["Security"]
vcs            = "go-git"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "cc", cfg.Compiler)
	assert.Equal(t, "C", cfg.CompilerLabel)
	assert.Empty(t, cfg.TLSLibrary)
	assert.Equal(t, []string{"Security"}, cfg.Frameworks)
	assert.Equal(t, VCSGoGit, cfg.VCS)
	assert.Equal(t, "cargo", cfg.Namespace)
}

func TestLoadConfigInvalid(t *testing.T) {
	cases := map[string]string{
		"bad yaml":   "libraries: [unclosed",
		"match mode": "version_match: fuzzy",
		"vcs":        "vcs: svn",
		"format":     "artifact_format: cpp",
		"phase":      "phases: [lint]",
		"empty ns":   `namespace: ""`,
		"pkg name":   "artifact_package: my-version",
		"pkg kw":     "artifact_package: func",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "prebuild.yaml")
			require.NoError(t, os.WriteFile(path, []byte(data), 0644))

			_, err := LoadConfig(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prebuild.yaml")
	cfg := DefaultConfig()
	cfg.Libraries = []string{"libz-dev"}
	cfg.Phases = []string{PhaseVersionInfo}

	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestErrorWrapping(t *testing.T) {
	err := NewError("running", "rustc", ErrSpawn)
	assert.ErrorIs(t, err, ErrSpawn)
	assert.Contains(t, err.Error(), "rustc")
}

func TestValidateAllowsAnyPackageForRust(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ArtifactFormat = FormatRust
	cfg.ArtifactPackage = "my-version"
	assert.NoError(t, cfg.Validate())
}

func TestTrackConfigFile(t *testing.T) {
	dir := t.TempDir()
	custom := filepath.Join(dir, "custom.hcl")
	require.NoError(t, os.WriteFile(custom, []byte(""), 0644))

	cfg := DefaultConfig()
	cfg.TrackConfigFile(custom)
	assert.Equal(t, []string{custom, "Cargo.toml", "src/"}, cfg.RerunIfChanged)

	cfg = DefaultConfig()
	cfg.TrackConfigFile(filepath.Join(dir, "absent.yaml"))
	assert.Equal(t, []string{"Cargo.toml", "src/"}, cfg.RerunIfChanged)

	cfg = DefaultConfig()
	cfg.RerunIfChanged = []string{"build.rs"}
	cfg.TrackConfigFile(custom)
	assert.Equal(t, []string{"build.rs"}, cfg.RerunIfChanged)
}
