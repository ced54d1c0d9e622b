// Package version holds build-time version metadata for gosetsid
package version

import "fmt"

// These are set at build time via -ldflags
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Full returns a human-readable version string
func Full() string {
	return fmt.Sprintf("gosetsid %s (commit %s, built %s)", Version, Commit, Date)
}
