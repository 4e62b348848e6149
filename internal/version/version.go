// Package version exposes build metadata for the application.
// The variables are overridden at build time via -ldflags.
package version

// Build-time variables.
//
//nolint:gochecknoglobals // These are populated by the linker via -ldflags.
var (
	// Version is the application version in semantic versioning format.
	Version = "1.0.0"
	// Commit is the git commit hash the binary was built from.
	Commit = "none"
	// BuildTime is the timestamp of when the binary was built.
	BuildTime = "unknown"
)

// Short returns the bare version string.
func Short() string {
	return Version
}

// Full returns a human-readable description of the build.
func Full() string {
	return "version: " + Version + ", commit: " + Commit + ", built at: " + BuildTime
}
