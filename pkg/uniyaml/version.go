// Package uniyaml carries project-wide version metadata.
package uniyaml

import (
	"fmt"
)

const (
	// VersionMajor represents the current major version.
	VersionMajor = 0
	// VersionMinor represents the current minor version.
	VersionMinor = 2
	// VersionPatch represents the current patch version.
	VersionPatch = 0
)

// Version provides a stringified version of the current version.
var Version = fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
