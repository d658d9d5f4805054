// Package validate holds the input validators shared by the scene
// operations: object names, GUIDs, vectors, and file-path policies.
package validate

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/identifier"
)

// Name validates an object or asset name. Unity tolerates a surprising
// amount in names, but path separators and control characters corrupt the
// serialized stream or the filesystem, so they're rejected outright.
func Name(value, label string) error {
	if value == "" {
		return fmt.Errorf("%s must not be empty", label)
	}
	if strings.ContainsAny(value, "/\\\n\r\t\x00") {
		return fmt.Errorf("%s %q contains a path separator or control character", label, value)
	}
	return nil
}

// GUID validates a Unity asset GUID: exactly 32 lowercase hexadecimal
// characters.
func GUID(value string) error {
	if !identifier.IsValidGUID(value) {
		return fmt.Errorf("invalid GUID %q: expected 32 lowercase hexadecimal characters", value)
	}
	return nil
}

// Vector3 validates a three-component vector: every component must be a
// finite number.
func Vector3(x, y, z float64) error {
	for _, component := range []float64{x, y, z} {
		if math.IsNaN(component) || math.IsInf(component, 0) {
			return fmt.Errorf("vector component %v is not finite", component)
		}
	}
	return nil
}

// FilePathMode selects the policy FilePath applies.
type FilePathMode uint8

const (
	// FilePathRead validates a path that will be read.
	FilePathRead FilePathMode = iota
	// FilePathWrite validates a path that will be written.
	FilePathWrite
)

// FilePath validates a target path against the engine's safety policies:
// URL schemes are rejected, relative paths may not traverse upward, and
// writes into the immutable Packages/ cache are refused.
func FilePath(path string, mode FilePathMode) error {
	if path == "" {
		return fmt.Errorf("path must not be empty")
	}
	if strings.HasPrefix(path, "file://") {
		return fmt.Errorf("path %q uses a URL scheme; provide a filesystem path", path)
	}
	if !filepath.IsAbs(path) {
		if strings.HasPrefix(path, "../") || strings.Contains(path, "/../") {
			return fmt.Errorf("path %q traverses outside the working tree", path)
		}
		if mode == FilePathWrite && strings.HasPrefix(path, "Packages/") {
			return fmt.Errorf("path %q is inside the immutable Packages/ cache", path)
		}
	}
	return nil
}
