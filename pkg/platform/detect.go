// pkg/platform/detect.go
package platform

import (
	"fmt"
	"runtime"
	"strings"
)

// Supported is the one platform with dedicated framework and developer-tools
// configuration
const Supported = "darwin"

// Identity is the resolved platform for a run
type Identity struct {
	OS     string `yaml:"os"`               // darwin, linux, windows
	Arch   string `yaml:"arch"`             // amd64, arm64
	Kernel string `yaml:"kernel,omitempty"` // OS release when running on that OS
}

// Host returns the identity prebuild was compiled for
func Host() Identity {
	return Identity{
		OS:     runtime.GOOS,
		Arch:   runtime.GOARCH,
		Kernel: osRelease(),
	}
}

// Resolve builds an identity for a target OS name as the host build tool
// spells it. The kernel release is filled in only when target matches the
// running OS.
func Resolve(target string) (Identity, error) {
	goos := Normalize(target)
	if goos == "" {
		return Identity{}, fmt.Errorf("empty target operating system")
	}
	id := Identity{OS: goos, Arch: runtime.GOARCH}
	if goos == runtime.GOOS {
		id.Kernel = osRelease()
	}
	return id, nil
}

// Normalize maps build-tool OS names onto GOOS values
func Normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "macos", "osx", "macosx":
		return "darwin"
	default:
		return name
	}
}

// IsSupported reports whether the identity is the supported platform
func (id Identity) IsSupported() bool {
	return id.OS == Supported
}

// String returns a string representation of the platform
func (id Identity) String() string {
	if id.Kernel != "" {
		return fmt.Sprintf("%s/%s (%s)", id.OS, id.Arch, id.Kernel)
	}
	return fmt.Sprintf("%s/%s", id.OS, id.Arch)
}
