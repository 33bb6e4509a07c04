package directive

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoderLineGrammar(t *testing.T) {
	enc := NewEncoder(&bytes.Buffer{}, "cargo")

	tests := []struct {
		d    Directive
		want string
	}{
		{Directive{Kind: Warning, Value: "Required library libx11-dev not found"}, "cargo:warning=Required library libx11-dev not found"},
		{Directive{Kind: LinkerArg, Value: "-framework"}, "cargo:rustc-link-arg=-framework"},
		{Directive{Kind: FeatureFlag, Value: "mtls"}, `cargo:rustc-cfg=feature="mtls"`},
		{Directive{Kind: RerunTrigger, Value: "src/"}, "cargo:rerun-if-changed=src/"},
		{Directive{Kind: FeatureFlag, Value: "géo"}, `cargo:rustc-cfg=feature="géo"`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, enc.Line(tt.d))
	}
}

func TestEncoderFlattensNewlines(t *testing.T) {
	enc := NewEncoder(&bytes.Buffer{}, "cargo")
	line := enc.Line(Directive{Kind: Warning, Value: "first\nsecond\r\nthird"})
	assert.Equal(t, "cargo:warning=first second third", line)
}

func TestEncodeWritesOneLinePerDirective(t *testing.T) {
	var buf bytes.Buffer
	var log Log
	log.RerunIfChanged("Cargo.toml")
	log.LinkFrameworks("Security")
	log.Warn("careful")

	require.NoError(t, NewEncoder(&buf, "x").Encode(log.Directives()...))
	assert.Equal(t,
		"x:rerun-if-changed=Cargo.toml\n"+
			"x:rustc-link-arg=-framework\n"+
			"x:rustc-link-arg=Security\n"+
			"x:warning=careful\n",
		buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestEncodeReportsWriteError(t *testing.T) {
	err := NewEncoder(failingWriter{}, "cargo").Encode(Directive{Kind: Warning, Value: "x"})
	assert.Error(t, err)
}

func TestFrameworksAreAdjacentPairs(t *testing.T) {
	ds := Frameworks("Security", "CoreFoundation")
	require.Len(t, ds, 4)
	assert.Equal(t, []string{"-framework", "Security", "-framework", "CoreFoundation"}, Values(ds))
	assert.Equal(t, []string{"Security", "CoreFoundation"}, FrameworkPairs(ds))
}

func TestFrameworkPairsIgnoresUnrelatedArgs(t *testing.T) {
	var log Log
	log.LinkArg("-fstack-protector-strong")
	log.LinkFrameworks("CoreGraphics")
	log.Warn("-framework")
	log.LinkArg("-framework")

	assert.Equal(t, []string{"CoreGraphics"}, FrameworkPairs(log.Directives()))
}

func TestLogDirectivesIsACopy(t *testing.T) {
	var log Log
	log.Feature("mtls")
	ds := log.Directives()
	ds[0].Value = "changed"

	assert.Equal(t, "mtls", log.Directives()[0].Value)
	assert.Equal(t, 1, log.Len())
}

func TestFilter(t *testing.T) {
	var log Log
	log.Warn("a")
	log.Feature("f")
	log.Warn("b")

	assert.Equal(t, []string{"a", "b"}, Values(Filter(log.Directives(), Warning)))
	assert.Empty(t, Filter(log.Directives(), RerunTrigger))
}
