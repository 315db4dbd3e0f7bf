// Package version exposes build metadata, set at link time.
package version

import "runtime/debug"

// Set via ldflags, with VCS info as a fallback.
var (
	Version  = "dev"
	Revision = vcsRevision()
)

func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}

	return "unknown"
}
