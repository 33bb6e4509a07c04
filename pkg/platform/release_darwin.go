//go:build darwin

package platform

import "golang.org/x/sys/unix"

// osRelease returns the macOS product version, or the Darwin kernel release
// if sysctl does not expose it.
func osRelease() string {
	if v, err := unix.Sysctl("kern.osproductversion"); err == nil && v != "" {
		return "macOS " + v
	}
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return ""
	}
	return "Darwin " + unix.ByteSliceToString(u.Release[:])
}
