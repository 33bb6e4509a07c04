// pkg/versioninfo/manifest.go
package versioninfo

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// manifest is the subset of a Cargo-style manifest we read
type manifest struct {
	Package struct {
		Version any `toml:"version"`
	} `toml:"package"`
}

// ManifestVersion reads [package].version from a TOML manifest. It returns
// "" with no error when the file does not exist or the version is inherited
// from a workspace (version.workspace = true).
func ManifestVersion(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading manifest: %w", err)
	}

	var m manifest
	if _, err := toml.Decode(string(data), &m); err != nil {
		return "", fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	v, _ := m.Package.Version.(string)
	return v, nil
}
