package report

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arc-language/prebuild/pkg/core"
	"github.com/arc-language/prebuild/pkg/directive"
	"github.com/arc-language/prebuild/pkg/platform"
)

func sample() *Report {
	var log directive.Log
	log.RerunIfChanged("Cargo.toml")
	log.Warn("Required library libx11-dev not found")
	log.LinkFrameworks("Security")

	return New(
		time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC),
		platform.Identity{OS: "darwin", Arch: "arm64"},
		[]core.ProbeResult{
			{Subject: "rustc", Kind: core.ProbeCompiler, Found: true, Detail: "rustc 1.70.0"},
			{Subject: "libx11-dev", Kind: core.ProbeLibrary, Found: false},
		},
		log.Directives(),
	)
}

func TestNewCountsWarnings(t *testing.T) {
	r := sample()
	assert.True(t, r.Supported)
	assert.Equal(t, 1, r.Warnings)
	assert.Equal(t, []string{
		"rerun-if-changed=Cargo.toml",
		"warning=Required library libx11-dev not found",
		"rustc-link-arg=-framework",
		"rustc-link-arg=Security",
	}, r.Directives)
}

func TestWriteFileAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "prebuild.yaml")
	r := sample()
	require.NoError(t, r.WriteFile(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, r.Platform, got.Platform)
	assert.Equal(t, r.Probes, got.Probes)
	assert.Equal(t, r.Directives, got.Directives)
	assert.True(t, r.GeneratedAt.Equal(got.GeneratedAt))
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sample().WriteText(&buf))

	out := buf.String()
	assert.Contains(t, out, "Platform: darwin/arm64 [supported]")
	assert.Contains(t, out, "libx11-dev")
	assert.Contains(t, out, "missing")
	assert.Contains(t, out, "1 warning(s)")
}
