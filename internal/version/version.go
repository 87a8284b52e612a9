// Package version exposes the CLI's own build version.
package version

// version is overridden at build time via -ldflags.
var version = "0.1.0"

// GetVersion returns the current centra version.
func GetVersion() string {
	return version
}
