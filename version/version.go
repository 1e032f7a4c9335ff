// Package version carries the build identity stamped via ldflags.
package version

import "fmt"

// Set at build time:
//
//	-ldflags "-X github.com/tlindem/wellpath/version.Version=v1.2.0 ..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// String returns the short version
func String() string {
	return Version
}

// Full returns the version with commit and build date when available
func Full() string {
	if GitCommit == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s (%s, %s)", Version, GitCommit, BuildDate)
}
