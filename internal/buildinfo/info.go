// Package buildinfo carries the version metadata stamped into release
// binaries.
package buildinfo

// Injected at link time via -ldflags; the zero values identify a local
// development build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
