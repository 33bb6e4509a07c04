//go:build !darwin && !linux && !freebsd && !netbsd && !openbsd

package platform

func osRelease() string { return "" }
