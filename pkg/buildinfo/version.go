// Package buildinfo holds the version stamped into the epistack binary.
//
// Release builds set the variables with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/epistack/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/epistack/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/epistack/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/epistack
package buildinfo

import "fmt"

var (
	// Version is the semantic version, "dev" for local builds.
	Version = "dev"

	// Commit is the git commit the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// String returns the build information on one line, e.g.
// "v0.3.0 (commit 1a2b3c4, built 2026-01-02T03:04:05Z)".
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}

// Template returns the --version template for the root command.
func Template() string {
	return "{{.Name}} version " + String() + "\n"
}
