package version

import "fmt"

// These variables are overridden at build time using -ldflags.
// Keep sensible defaults for local development.
var (
	Version = "dev"
	Commit  = "none"
	Date    = ""
)

// String formats the build metadata for the -version flag and the startup
// log line.
func String() string {
	s := fmt.Sprintf("%s (commit %s)", Version, Commit)
	if Date != "" {
		s += " built " + Date
	}
	return s
}
