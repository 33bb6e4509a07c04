package platform

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"macos":   "darwin",
		" MacOS ": "darwin",
		"darwin":  "darwin",
		"linux":   "linux",
		"Windows": "windows",
		"":        "",
	}
	for in, want := range tests {
		assert.Equal(t, want, Normalize(in), "Normalize(%q)", in)
	}
}

func TestResolve(t *testing.T) {
	id, err := Resolve("macos")
	require.NoError(t, err)
	assert.Equal(t, "darwin", id.OS)
	assert.True(t, id.IsSupported())

	id, err = Resolve("linux")
	require.NoError(t, err)
	assert.False(t, id.IsSupported())
	assert.Equal(t, runtime.GOARCH, id.Arch)

	_, err = Resolve("  ")
	assert.Error(t, err)
}

func TestHostMatchesRuntime(t *testing.T) {
	h := Host()
	assert.Equal(t, runtime.GOOS, h.OS)
	assert.Equal(t, runtime.GOARCH, h.Arch)
	assert.Equal(t, runtime.GOOS == "darwin", h.IsSupported())
}

func TestIdentityString(t *testing.T) {
	assert.Equal(t, "linux/amd64", Identity{OS: "linux", Arch: "amd64"}.String())
	assert.Equal(t, "darwin/arm64 (macOS 15.1)", Identity{OS: "darwin", Arch: "arm64", Kernel: "macOS 15.1"}.String())
}

func TestMissingCommands(t *testing.T) {
	assert.Equal(t, []string{"prebuild-no-such-tool"}, MissingCommands("", "prebuild-no-such-tool"))
}
