// Package version provides build version information.
package version

import "fmt"

// Injected at build time via -ldflags "-X github.com/Norgate-AV/cursormon/internal/version.version=..."
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// GetVersion returns the semantic version
func GetVersion() string {
	return version
}

// GetCommit returns the git commit hash.
func GetCommit() string {
	return commit
}

// GetDate returns the build date.
func GetDate() string {
	return date
}

// IsRelease reports whether the binary was built with an injected version
func IsRelease() bool {
	return version != "dev"
}

// GetFullVersion returns version with commit and date info
func GetFullVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
}
