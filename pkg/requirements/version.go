package requirements

import (
	"regexp"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/arc-language/prebuild/pkg/core"
)

var versionPattern = regexp.MustCompile(`\d+\.\d+(?:\.\d+)?`)

// VersionSatisfied reports whether the compiler's version output meets min.
//
// In substring mode (the default) output must contain min verbatim. This is
// loose: "1.700" passes for "1.70" and "1.75.0" fails. Semver mode parses the
// first dotted version in output and compares it numerically.
func VersionSatisfied(output, min, mode string) bool {
	if mode != core.MatchSemver {
		return strings.Contains(output, min)
	}
	found := versionPattern.FindString(output)
	if found == "" {
		return false
	}
	have, want := "v"+found, "v"+strings.TrimPrefix(min, "v")
	if !semver.IsValid(have) || !semver.IsValid(want) {
		return false
	}
	return semver.Compare(have, want) >= 0
}
