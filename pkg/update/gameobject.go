package update

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/document"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/logging"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/resolve"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/unity"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/validate"
)

// editableGameObjectProperties is the closed set of GameObject properties
// the edit operation accepts, keyed without the m_ prefix.
var editableGameObjectProperties = map[string]bool{
	"Name":              true,
	"TagString":         true,
	"IsActive":          true,
	"Layer":             true,
	"StaticEditorFlags": true,
	"Icon":              true,
	"NavMeshLayer":      true,
}

// GameObjectPropertyResult is the result of EditGameObjectProperty.
type GameObjectPropertyResult struct {
	// Path is the edited file.
	Path string
	// GameObjectID is the edited GameObject's anchor.
	GameObjectID string
	// BytesWritten is the size of the saved document.
	BytesWritten int
	// Warnings carries non-fatal notes.
	Warnings []string
}

// EditGameObjectProperty edits one of the closed set of GameObject
// properties (Name, TagString, IsActive, Layer, StaticEditorFlags, Icon,
// NavMeshLayer; an m_ prefix on the input is tolerated and stripped). Values
// are validated per property; booleans are normalized to Unity's 0/1 form.
// A property line Unity omitted (because it held the default) is inserted.
func EditGameObjectProperty(path, gameObject, property, value, projectPath string, settings resolve.SettingsReader, logger *logging.Logger) (*GameObjectPropertyResult, error) {
	// Validate the path.
	if err := validate.FilePath(path, validate.FilePathWrite); err != nil {
		return nil, err
	}

	// Normalize and check the property name.
	name := strings.TrimPrefix(property, "m_")
	if !editableGameObjectProperties[name] {
		return nil, fmt.Errorf("property %q is not an editable GameObject property", property)
	}

	// Validate and normalize the value.
	var warnings []string
	switch name {
	case "Name":
		if err := validate.Name(value, "GameObject name"); err != nil {
			return nil, err
		}
	case "IsActive":
		switch value {
		case "true":
			value = "1"
		case "false":
			value = "0"
		case "0", "1":
		default:
			return nil, &TypeMismatchError{Property: property, Expected: "0, 1, true, or false", Got: value}
		}
	case "Layer":
		layer, err := strconv.Atoi(value)
		if err != nil || layer < 0 || layer > 31 {
			return nil, &TypeMismatchError{Property: property, Expected: "an integer between 0 and 31", Got: value}
		}
	case "NavMeshLayer":
		if parsed, err := strconv.Atoi(value); err != nil || parsed < 0 {
			return nil, &TypeMismatchError{Property: property, Expected: "a non-negative integer", Got: value}
		}
	case "StaticEditorFlags":
		if parsed, err := strconv.Atoi(value); err != nil || parsed < 0 {
			return nil, &TypeMismatchError{Property: property, Expected: "a non-negative integer", Got: value}
		}
	case "TagString":
		if !unity.IsBuiltinTag(value) {
			if projectPath != "" && settings != nil {
				tags, err := settings.ReadTags(projectPath)
				if err != nil {
					warnings = append(warnings, fmt.Sprintf("unable to read project tags: %v", err))
				} else if !contains(tags, value) {
					return nil, fmt.Errorf("tag %q is neither built in nor registered in the project's TagManager", value)
				}
			}
			// Without a project path the custom tag is taken on faith.
		}
	}

	// Load the document and resolve the GameObject.
	doc, err := document.FromFile(path, false)
	if err != nil {
		return nil, err
	}
	target, err := doc.RequireUniqueGameObject(gameObject)
	if err != nil {
		return nil, err
	}

	// Rewrite the property line, inserting it when Unity omitted it.
	key := "m_" + name
	if target.HasProperty(key) {
		if err := target.SetProperty(key, value); err != nil {
			return nil, err
		}
	} else {
		target.AppendProperty(key, value)
	}

	// Validate and persist.
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	serialized := doc.Serialize()
	if err := doc.Save(""); err != nil {
		return nil, err
	}
	logger.Debugf("set %s = %q on GameObject %s in %s", key, value, target.FileID(), path)

	// Success.
	return &GameObjectPropertyResult{
		Path:         path,
		GameObjectID: target.FileID(),
		BytesWritten: len(serialized),
		Warnings:     warnings,
	}, nil
}

// contains reports whether a string slice contains a value.
func contains(values []string, value string) bool {
	for _, candidate := range values {
		if candidate == value {
			return true
		}
	}
	return false
}
