package identifier

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const (
	// GUIDLength is the length of a Unity asset GUID.
	GUIDLength = 32

	// generatedFileIDMinimum is the lower bound (inclusive) for generated
	// local file identifiers.
	generatedFileIDMinimum = 1000000000
	// generatedFileIDMaximum is the upper bound (inclusive) for generated
	// local file identifiers.
	generatedFileIDMaximum = 9999999999
	// maximumFileIDAttempts is the number of draws the file identifier
	// generator performs before giving up on finding a collision-free value.
	maximumFileIDAttempts = 1000
)

// guidMatcher is a regular expression that matches Unity asset GUIDs.
var guidMatcher = regexp.MustCompile("^[0-9a-f]{32}$")

// fileIDMatcher is a regular expression that matches local file identifiers.
// Unity emits values outside the safe integer range of many runtimes, so file
// identifiers are carried as decimal strings throughout and validated (never
// parsed) here.
var fileIDMatcher = regexp.MustCompile("^-?[0-9]+$")

// NewGUID generates a new random Unity asset GUID: 32 lowercase hexadecimal
// characters.
func NewGUID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// IsValidGUID determines whether or not a string is a valid Unity asset GUID.
func IsValidGUID(value string) bool {
	return guidMatcher.MatchString(value)
}

// IsValidFileID determines whether or not a string is a plausible local file
// identifier.
func IsValidFileID(value string) bool {
	return value != "" && fileIDMatcher.MatchString(value)
}

// NewFileID generates a new local file identifier as a decimal string in the
// ten-digit generation range. The taken callback reports whether a candidate
// collides with an existing identifier; candidates that collide (or equal
// "0") are rejected and redrawn.
func NewFileID(taken func(string) bool) (string, error) {
	// Compute the size of the generation range.
	span := big.NewInt(generatedFileIDMaximum - generatedFileIDMinimum + 1)

	// Draw candidates until one is collision-free.
	for i := 0; i < maximumFileIDAttempts; i++ {
		// Create the random value.
		offset, err := rand.Int(rand.Reader, span)
		if err != nil {
			return "", fmt.Errorf("unable to read random data: %w", err)
		}

		// Compute the candidate.
		candidate := new(big.Int).Add(offset, big.NewInt(generatedFileIDMinimum)).String()

		// Reject collisions.
		if candidate == "0" || (taken != nil && taken(candidate)) {
			continue
		}

		// Success.
		return candidate, nil
	}

	// All draws collided. With a nine-billion-value range this indicates a
	// broken taken callback rather than bad luck.
	return "", errors.New("unable to find collision-free file identifier")
}
