package probe

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arc-language/prebuild/pkg/core"
	"github.com/arc-language/prebuild/pkg/runner"
)

func TestLibraryProbe(t *testing.T) {
	fake := runner.NewFake().
		On("pkg-config --exists openssl", "", 0).
		On("pkg-config --exists libx11-dev", "", 1)
	p := NewLibraryProbe(fake, "", nil)
	ctx := context.Background()

	assert.True(t, p.Probe(ctx, "openssl"))
	assert.False(t, p.Probe(ctx, "libx11-dev"))
}

func TestLibraryProbeNeverFails(t *testing.T) {
	// No pkg-config at all: every library reads as missing.
	p := NewLibraryProbe(runner.NewFake(), "pkg-config", nil)
	for _, name := range []string{"openssl", "zlib", "", "does-not-exist"} {
		assert.False(t, p.Probe(context.Background(), name), name)
	}
}

func TestLibraryProbeCustomTool(t *testing.T) {
	fake := runner.NewFake().On("pkgconf --exists zlib", "", 0)
	assert.True(t, NewLibraryProbe(fake, "pkgconf", nil).Probe(context.Background(), "zlib"))
}

func TestCompilerVersion(t *testing.T) {
	fake := runner.NewFake().On("rustc --version", "rustc 1.70.0 (90c541806 2023-05-31)\n", 0)
	v, err := NewToolchainProbe(fake, "rustc", "xcode-select", nil).CompilerVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "rustc 1.70.0 (90c541806 2023-05-31)", v)
}

func TestCompilerVersionUnreachableIsFatal(t *testing.T) {
	_, err := NewToolchainProbe(runner.NewFake(), "rustc", "xcode-select", nil).CompilerVersion(context.Background())
	assert.ErrorIs(t, err, core.ErrSpawn)
}

func TestCompilerVersionNonZeroExitIsFatal(t *testing.T) {
	fake := runner.NewFake().On("rustc --version", "", 101)
	_, err := NewToolchainProbe(fake, "rustc", "xcode-select", nil).CompilerVersion(context.Background())
	assert.ErrorIs(t, err, core.ErrCommandFailed)
}

func TestDeveloperToolsPresent(t *testing.T) {
	ctx := context.Background()

	present := runner.NewFake().On("xcode-select -p", "/Library/Developer/CommandLineTools\n", 0)
	ok, err := NewToolchainProbe(present, "rustc", "xcode-select", nil).DeveloperToolsPresent(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	absent := runner.NewFake().On("xcode-select -p", "", 2)
	ok, err = NewToolchainProbe(absent, "rustc", "xcode-select", nil).DeveloperToolsPresent(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	broken := runner.NewFake().Fail("xcode-select -p", errors.New("permission denied"))
	_, err = NewToolchainProbe(broken, "rustc", "xcode-select", nil).DeveloperToolsPresent(ctx)
	assert.ErrorIs(t, err, core.ErrSpawn)
}
