// Package version holds the build version reported by the CLI and /version.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Set at build time with -ldflags "-X .../version.Current=v1.2.3".
var (
	Current = "dev"
	Commit  = "unknown"
)

// Normalize ensures version string has "v" prefix for semver compatibility.
// Examples: "1.2.3" -> "v1.2.3", "v1.2.3" -> "v1.2.3"
func Normalize(version string) string {
	if version == "" {
		return ""
	}
	version = strings.TrimSpace(version)
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

// IsRelease reports whether v is a semver release without a prerelease tag.
// "dev" builds are not releases.
func IsRelease(v string) bool {
	n := Normalize(v)
	return semver.IsValid(n) && semver.Prerelease(n) == ""
}

// Info is the payload of the version endpoint and `appmaster version`.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Release bool   `json:"release"`
}

func Get() Info {
	return Info{Version: Current, Commit: Commit, Release: IsRelease(Current)}
}
