// internal/version/version.go
package version

// Version is the release version reported by --version.
// Overridable at build time: -ldflags "-X faidx/internal/version.Version=..."
var Version = "0.3.0"
