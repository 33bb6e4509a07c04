package versioninfo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arc-language/prebuild/pkg/core"
)

// DefaultArtifactName returns the file name used for a format
func DefaultArtifactName(format string) string {
	if format == core.FormatRust {
		return "version.rs"
	}
	return "version.go"
}

// Render returns the artifact text for info
func Render(info *Info, format, pkg string) string {
	var b strings.Builder
	switch format {
	case core.FormatRust:
		fmt.Fprintf(&b, "pub const VERSION: &str = %s;\n", strconv.Quote(info.Version))
		fmt.Fprintf(&b, "pub const GIT_HASH: &str = %s;\n", strconv.Quote(info.CommitHash))
		fmt.Fprintf(&b, "pub const BUILD_DATE: &str = %s;\n", strconv.Quote(info.BuildTimestamp))
	default:
		if pkg == "" {
			pkg = "version"
		}
		b.WriteString("// Code generated by prebuild. DO NOT EDIT.\n\n")
		fmt.Fprintf(&b, "package %s\n\n", pkg)
		b.WriteString("const (\n")
		fmt.Fprintf(&b, "\tVersion   = %s\n", strconv.Quote(info.Version))
		fmt.Fprintf(&b, "\tGitHash   = %s\n", strconv.Quote(info.CommitHash))
		fmt.Fprintf(&b, "\tBuildDate = %s\n", strconv.Quote(info.BuildTimestamp))
		b.WriteString(")\n")
	}
	return b.String()
}
