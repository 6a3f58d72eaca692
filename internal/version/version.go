// Package version contains build metadata and container runtime version parsing.
package version

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// Version information for dockreport, set with -ldflags at build time
var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// ErrNoVersion is returned when a runtime version string holds no version number.
var ErrNoVersion = errors.New("no version number found")

// Matches the first dotted version number, e.g. "27.3.1" in
// "Docker version 27.3.1, build ce12230" or "v4.9.3" in podman output.
var runtimeVersionPattern = regexp.MustCompile(`v?\d+(\.\d+){1,2}([-+][0-9A-Za-z.-]+)?`)

// GetVersion returns the full version string
func GetVersion() string {
	return Version
}

// GetFullVersion returns version with build metadata
func GetFullVersion() string {
	return Version + " (build: " + BuildDate + ", commit: " + GitCommit + ")"
}

// ParseRuntimeVersion extracts the semantic version from the runtime's
// free-form version output.
func ParseRuntimeVersion(raw string) (*semver.Version, error) {
	match := runtimeVersionPattern.FindString(raw)
	if match == "" {
		return nil, fmt.Errorf("%w in %q", ErrNoVersion, raw)
	}
	v, err := semver.NewVersion(match)
	if err != nil {
		return nil, fmt.Errorf("parse runtime version %q: %w", match, err)
	}
	return v, nil
}

// AtLeast reports whether the runtime version in raw is >= minVersion.
func AtLeast(raw, minVersion string) (bool, error) {
	minimum, err := semver.NewVersion(minVersion)
	if err != nil {
		return false, fmt.Errorf("parse minimum version %q: %w", minVersion, err)
	}
	current, err := ParseRuntimeVersion(raw)
	if err != nil {
		return false, err
	}
	return !current.LessThan(minimum), nil
}
