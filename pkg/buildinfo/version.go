// Package buildinfo provides build-time version information.
//
// Variables are set via ldflags during build:
//
//	go build -ldflags "-X github.com/combcap/idcgen/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/combcap/idcgen/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/combcap/idcgen/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// The version is stamped into generated footprint headers, so two files
// can be traced back to the generator release that produced them.
package buildinfo

import "fmt"

var (
	// Version is the semantic version (e.g., "v1.2.3").
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// String returns the formatted build information.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}

// Generator returns the short generator tag written into output files,
// e.g. "idcgen dev".
func Generator() string {
	if Commit == "none" || len(Commit) < 7 {
		return "idcgen " + Version
	}
	return fmt.Sprintf("idcgen %s (%s)", Version, Commit[:7])
}
