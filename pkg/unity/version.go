package unity

import (
	"fmt"
	"regexp"
	"strconv"
)

// Version represents a parsed Unity editor version, such as 2021.3.1f1.
type Version struct {
	// Major is the major version (2019, 2021, 6000, …).
	Major int
	// Minor is the minor version.
	Minor int
	// Patch is the patch version.
	Patch int
	// ReleaseType is the release channel letter (a, b, f, p, x).
	ReleaseType string
	// Revision is the build revision after the release type letter.
	Revision int
}

// versionMatcher matches Unity editor version strings. The release suffix is
// optional because stripped-down version strings ("2021.3") appear in some
// project metadata.
var versionMatcher = regexp.MustCompile(`^(\d+)\.(\d+)(?:\.(\d+))?(?:([abfpx])(\d+))?$`)

// ParseVersion parses a Unity editor version string.
func ParseVersion(value string) (*Version, error) {
	// Match the version string.
	match := versionMatcher.FindStringSubmatch(value)
	if match == nil {
		return nil, fmt.Errorf("malformed Unity version: %q", value)
	}

	// Convert the numeric components. The matcher guarantees digit strings,
	// so conversion errors can only arise from overflow.
	major, err := strconv.Atoi(match[1])
	if err != nil {
		return nil, fmt.Errorf("malformed major version: %w", err)
	}
	minor, err := strconv.Atoi(match[2])
	if err != nil {
		return nil, fmt.Errorf("malformed minor version: %w", err)
	}
	var patch int
	if match[3] != "" {
		if patch, err = strconv.Atoi(match[3]); err != nil {
			return nil, fmt.Errorf("malformed patch version: %w", err)
		}
	}
	var revision int
	if match[5] != "" {
		if revision, err = strconv.Atoi(match[5]); err != nil {
			return nil, fmt.Errorf("malformed revision: %w", err)
		}
	}

	// Success.
	return &Version{
		Major:       major,
		Minor:       minor,
		Patch:       patch,
		ReleaseType: match[4],
		Revision:    revision,
	}, nil
}

// AtLeast reports whether the version is at or above the specified
// major.minor pair. A nil version reports false, which lets callers treat an
// unknown editor version as failing every gate.
func (v *Version) AtLeast(major, minor int) bool {
	if v == nil {
		return false
	}
	if v.Major != major {
		return v.Major > major
	}
	return v.Minor >= minor
}

// String provides a human-readable representation of the version.
func (v *Version) String() string {
	if v == nil {
		return "unknown"
	}
	result := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.ReleaseType != "" {
		result += fmt.Sprintf("%s%d", v.ReleaseType, v.Revision)
	}
	return result
}
