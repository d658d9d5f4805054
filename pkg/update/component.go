package update

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/document"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/logging"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/validate"
)

// numericMatcher matches the scalar number forms Unity emits.
var numericMatcher = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)(e[-+]?\d+)?$`)

// valueShape classifies a serialized value for the write-time type
// discipline.
type valueShape uint8

const (
	shapeString valueShape = iota
	shapeNumeric
	shapeReference
	shapeInlineCompound
	shapeArray
	shapeBlockCompound
)

// classifyValue derives the shape of a serialized value.
func classifyValue(value string) valueShape {
	trimmed := strings.TrimSpace(value)
	switch {
	case strings.HasPrefix(trimmed, "{") && document.ReferenceFileID(trimmed) != "":
		return shapeReference
	case strings.HasPrefix(trimmed, "{"):
		return shapeInlineCompound
	case strings.HasPrefix(trimmed, "["):
		return shapeArray
	case strings.Contains(trimmed, "\n"):
		return shapeBlockCompound
	case numericMatcher.MatchString(trimmed):
		return shapeNumeric
	default:
		return shapeString
	}
}

// shapeName names a shape for diagnostics.
func shapeName(shape valueShape) string {
	switch shape {
	case shapeReference:
		return "a reference ({fileID: N})"
	case shapeInlineCompound:
		return "a compound value ({x: …, y: …})"
	case shapeArray:
		return "a sequence"
	case shapeBlockCompound:
		return "a compound value (edit its sub-fields with a dotted path)"
	case shapeNumeric:
		return "a number"
	default:
		return "a string"
	}
}

// shapeCompatible reports whether an incoming value may replace a current
// one. Strings accept anything (Unity's own strings are unquoted and
// free-form); every other shape requires a like-shaped replacement.
func shapeCompatible(current, incoming valueShape) bool {
	switch current {
	case shapeString:
		return true
	case shapeNumeric:
		return incoming == shapeNumeric
	case shapeReference:
		return incoming == shapeReference
	case shapeInlineCompound:
		return incoming == shapeInlineCompound || incoming == shapeReference
	case shapeArray:
		return incoming == shapeArray
	default:
		return false
	}
}

// ComponentPropertyResult is the result of EditComponentByFileID.
type ComponentPropertyResult struct {
	// Path is the edited file.
	Path string
	// FileID is the edited block's anchor.
	FileID string
	// ClassID is the edited block's class.
	ClassID int
	// Property is the property name that actually matched (after the
	// m_-prefix fallback).
	Property string
	// BytesWritten is the size of the saved document.
	BytesWritten int
}

// EditComponentByFileID edits a property on the block with the specified
// anchor. The property name is resolved with a single ordered fallback: the
// exact name first, then the m_-prefixed capitalized variant. The current
// value's serialized shape is derived before the write and the incoming
// value must match it; same-file references are verified to point at an
// existing block (or the null reference).
func EditComponentByFileID(path, fileID, property, value string, logger *logging.Logger) (*ComponentPropertyResult, error) {
	// Validate inputs.
	if err := validate.FilePath(path, validate.FilePathWrite); err != nil {
		return nil, err
	}
	if property == "" {
		return nil, fmt.Errorf("property name must not be empty")
	}

	// Load the document and resolve the block.
	doc, err := document.FromFile(path, false)
	if err != nil {
		return nil, err
	}
	block := doc.FindByFileID(fileID)
	if block == nil {
		return nil, fmt.Errorf("no object with fileID %s in %s", fileID, path)
	}
	if block.Stripped() {
		return nil, fmt.Errorf("fileID %s is a stripped prefab handle; edit the PrefabInstance's overrides instead", fileID)
	}

	// Resolve the property name: exact first, then the m_-prefixed variant.
	candidates := []string{property}
	if !strings.HasPrefix(property, "m_") {
		prefixed := "m_" + strings.ToUpper(property[:1]) + property[1:]
		candidates = append(candidates, prefixed)
	}
	var resolved string
	var current string
	for _, candidate := range candidates {
		if existing, err := block.GetProperty(candidate); err == nil {
			resolved, current = candidate, existing
			break
		}
	}
	if resolved == "" {
		return nil, fmt.Errorf("property %q not found on fileID %s; Unity serializes only non-default values; set the property in the editor once, then edit it here", property, fileID)
	}

	// Enforce the write-time type discipline.
	currentShape := classifyValue(current)
	incomingShape := classifyValue(value)
	if currentShape == shapeBlockCompound {
		return nil, &TypeMismatchError{Property: resolved, Expected: shapeName(currentShape), Got: value}
	}
	if !shapeCompatible(currentShape, incomingShape) {
		return nil, &TypeMismatchError{Property: resolved, Expected: shapeName(currentShape), Got: value}
	}

	// Same-file references must resolve (the null reference is always
	// permitted, and cross-file references carry a guid).
	if incomingShape == shapeReference && !strings.Contains(value, "guid:") {
		target := document.ReferenceFileID(value)
		if target != "0" && doc.FindByFileID(target) == nil {
			return nil, fmt.Errorf("reference target fileID %s does not exist in %s", target, path)
		}
	}

	// Apply the edit through the format-preserving setter.
	if err := block.SetProperty(resolved, value); err != nil {
		return nil, err
	}

	// Validate and persist.
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	serialized := doc.Serialize()
	if err := doc.Save(""); err != nil {
		return nil, err
	}
	logger.Debugf("set %s = %q on fileID %s in %s", resolved, value, fileID, path)

	// Success.
	return &ComponentPropertyResult{
		Path:         path,
		FileID:       fileID,
		ClassID:      block.ClassID(),
		Property:     resolved,
		BytesWritten: len(serialized),
	}, nil
}
