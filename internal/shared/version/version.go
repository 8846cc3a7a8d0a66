// Package version reports the build version of the binary.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Version is stamped at build time:
//
//	go build -ldflags "-X classicmodels/internal/shared/version.Version=1.2.0"
var Version = "dev"

// Normalize ensures a version string has the "v" prefix semver expects.
// Examples: "1.2.3" -> "v1.2.3", "v1.2.3" -> "v1.2.3"
func Normalize(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		return "v" + v
	}
	return v
}

// String returns the normalized build version, or "dev" for unstamped and
// non-semver builds.
func String() string {
	return Of(Version)
}

// Of normalizes v and falls back to "dev" when it is not valid semver.
func Of(v string) string {
	normalized := Normalize(v)
	if !semver.IsValid(normalized) {
		return "dev"
	}
	return semver.Canonical(normalized)
}
