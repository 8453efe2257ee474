// Package version holds build metadata injected via ldflags.
// Version is also reported in the User-Agent of every API request.
package version

//nolint:revive // Set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
