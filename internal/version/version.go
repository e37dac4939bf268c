// Package version normalizes the build version injected via ldflags.
package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Info describes the running binary.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Release bool   `json:"release"`
}

// New builds Info from raw ldflags values, normalizing the version.
func New(version, commit, date string) Info {
	return Info{
		Version: Normalize(version),
		Commit:  commit,
		Date:    date,
		Release: IsRelease(version),
	}
}

// Normalize returns the canonical "vMAJOR.MINOR.PATCH[-pre][+meta]" form of
// a semver string, tolerating a leading "v" and short forms like "1.2".
// Non-semver strings such as "dev" are returned unchanged.
func Normalize(version string) string {
	v, err := parseSemver(version)
	if err != nil {
		return version
	}
	return "v" + v.String()
}

// IsRelease reports whether version is valid semver without a prerelease tag.
func IsRelease(version string) bool {
	v, err := parseSemver(version)
	if err != nil {
		return false
	}
	return v.Prerelease() == ""
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
