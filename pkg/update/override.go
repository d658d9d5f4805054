package update

import (
	"fmt"
	"strings"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/document"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/logging"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/validate"
)

// OverrideAction reports what EditPrefabOverride did.
type OverrideAction string

const (
	// OverrideAdded indicates a fresh override entry was inserted.
	OverrideAdded OverrideAction = "added"
	// OverrideUpdated indicates an existing entry was rewritten.
	OverrideUpdated OverrideAction = "updated"
)

// OverrideResult is the result of EditPrefabOverride and
// RemovePrefabOverride.
type OverrideResult struct {
	// Path is the edited file.
	Path string
	// PrefabInstanceID is the edited instance's anchor.
	PrefabInstanceID string
	// Action reports what happened (empty for removals).
	Action OverrideAction
	// BytesWritten is the size of the saved document.
	BytesWritten int
}

// renderModification renders an override entry as array-element text (the
// "- " marker is applied by the array splicer).
func renderModification(m document.Modification) string {
	objectReference := m.ObjectReference
	if objectReference == "" {
		objectReference = "{fileID: 0}"
	}
	return "target: " + m.Target + "\n" +
		"propertyPath: " + m.PropertyPath + "\n" +
		"value: " + m.Value + "\n" +
		"objectReference: " + objectReference
}

// rootProperty returns the first segment of a property path, used for
// target inference across overrides of the same compound property.
func rootProperty(propertyPath string) string {
	if index := strings.IndexAny(propertyPath, "."); index >= 0 {
		return propertyPath[:index]
	}
	return propertyPath
}

// EditPrefabOverride adds or updates an override entry on a PrefabInstance.
// An existing entry matching the property path is rewritten in place. A new
// entry needs a target reference; when the caller supplies none, it is
// inferred from other overrides that share the property path's root (the
// sub-fields of one compound property always target the same object). New
// entries land at the end of m_Modifications, just before
// m_RemovedComponents.
func EditPrefabOverride(path, instanceArg, propertyPath, value, objectReference, target string, logger *logging.Logger) (*OverrideResult, error) {
	// Validate inputs.
	if err := validate.FilePath(path, validate.FilePathWrite); err != nil {
		return nil, err
	}
	if propertyPath == "" {
		return nil, fmt.Errorf("property path must not be empty")
	}

	// Load the document and resolve the instance.
	doc, err := document.FromFile(path, false)
	if err != nil {
		return nil, err
	}
	instance, err := doc.FindPrefabInstance(instanceArg)
	if err != nil {
		return nil, err
	}

	// Look for an existing entry with this property path.
	modifications := document.ParseModifications(instance)
	action := OverrideAdded
	matched := -1
	for index, modification := range modifications {
		if modification.PropertyPath == propertyPath {
			matched = index
			break
		}
	}

	if matched >= 0 {
		// Rewrite the existing entry, preserving its target.
		entry := modifications[matched]
		entry.Value = value
		if objectReference != "" {
			entry.ObjectReference = objectReference
		}
		if target != "" {
			entry.Target = target
		}
		if err := instance.SetArrayElement("m_Modifications", matched, renderModification(entry)); err != nil {
			return nil, err
		}
		action = OverrideUpdated
	} else {
		// Infer a target when the caller supplied none.
		if target == "" {
			root := rootProperty(propertyPath)
			for _, modification := range modifications {
				if rootProperty(modification.PropertyPath) == root {
					target = modification.Target
					break
				}
			}
		}
		if target == "" {
			return nil, fmt.Errorf("no existing override shares a target for %q; provide --target with the source object's {fileID, guid, type} reference", propertyPath)
		}

		// Append the new entry.
		entry := document.Modification{
			Target:          target,
			PropertyPath:    propertyPath,
			Value:           value,
			ObjectReference: objectReference,
		}
		if err := instance.InsertArrayElement("m_Modifications", -1, renderModification(entry)); err != nil {
			return nil, err
		}
	}

	// Validate and persist.
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	serialized := doc.Serialize()
	if err := doc.Save(""); err != nil {
		return nil, err
	}
	logger.Debugf("%s override %s on PrefabInstance %s in %s", action, propertyPath, instance.FileID(), path)

	// Success.
	return &OverrideResult{
		Path:             path,
		PrefabInstanceID: instance.FileID(),
		Action:           action,
		BytesWritten:     len(serialized),
	}, nil
}

// RemovePrefabOverride removes the override entry matching the specified
// property path (and target, when supplied) from a PrefabInstance.
func RemovePrefabOverride(path, instanceArg, propertyPath, target string, logger *logging.Logger) (*OverrideResult, error) {
	// Validate inputs.
	if err := validate.FilePath(path, validate.FilePathWrite); err != nil {
		return nil, err
	}

	// Load the document and resolve the instance.
	doc, err := document.FromFile(path, false)
	if err != nil {
		return nil, err
	}
	instance, err := doc.FindPrefabInstance(instanceArg)
	if err != nil {
		return nil, err
	}

	// Locate and remove the entry.
	matched := -1
	for index, modification := range document.ParseModifications(instance) {
		if modification.PropertyPath != propertyPath {
			continue
		}
		if target != "" && modification.Target != target {
			continue
		}
		matched = index
		break
	}
	if matched < 0 {
		return nil, fmt.Errorf("no override with property path %q on PrefabInstance %s", propertyPath, instance.FileID())
	}
	if err := instance.RemoveArrayElement("m_Modifications", matched); err != nil {
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
	logger.Debugf("removed override %s from PrefabInstance %s in %s", propertyPath, instance.FileID(), path)

	// Success.
	return &OverrideResult{
		Path:             path,
		PrefabInstanceID: instance.FileID(),
		BytesWritten:     len(serialized),
	}, nil
}

// instanceLists are the PrefabInstance modification sub-arrays the
// maintenance operations may touch.
var instanceLists = map[string]bool{
	"m_RemovedComponents":  true,
	"m_RemovedGameObjects": true,
	"m_AddedGameObjects":   true,
	"m_AddedComponents":    true,
}

// InstanceListResult is the result of the sub-array maintenance operations.
type InstanceListResult struct {
	// Path is the edited file.
	Path string
	// PrefabInstanceID is the edited instance's anchor.
	PrefabInstanceID string
	// List is the touched sub-array.
	List string
	// Length is the sub-array's length after the edit.
	Length int
}

// AddInstanceListEntry appends an entry to one of a PrefabInstance's
// modification sub-arrays (m_RemovedComponents, m_RemovedGameObjects,
// m_AddedGameObjects, m_AddedComponents), converting the inline empty form
// to block form on first insert.
func AddInstanceListEntry(path, instanceArg, list, entry string, logger *logging.Logger) (*InstanceListResult, error) {
	// Validate inputs.
	if err := validate.FilePath(path, validate.FilePathWrite); err != nil {
		return nil, err
	}
	if !instanceLists[list] {
		return nil, fmt.Errorf("%q is not a PrefabInstance modification sub-array", list)
	}

	// Load, resolve, and splice.
	doc, err := document.FromFile(path, false)
	if err != nil {
		return nil, err
	}
	instance, err := doc.FindPrefabInstance(instanceArg)
	if err != nil {
		return nil, err
	}
	if err := instance.InsertArrayElement(list, -1, entry); err != nil {
		return nil, fmt.Errorf("unable to extend %s: %w", list, err)
	}
	length, err := instance.GetArrayLength(list)
	if err != nil {
		return nil, err
	}

	// Validate and persist.
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	if err := doc.Save(""); err != nil {
		return nil, err
	}
	logger.Debugf("added %s entry on PrefabInstance %s in %s", list, instance.FileID(), path)

	// Success.
	return &InstanceListResult{
		Path:             path,
		PrefabInstanceID: instance.FileID(),
		List:             list,
		Length:           length,
	}, nil
}

// RemoveInstanceListEntry removes the entry at the specified index from one
// of a PrefabInstance's modification sub-arrays. An emptied list collapses
// to [].
func RemoveInstanceListEntry(path, instanceArg, list string, index int, logger *logging.Logger) (*InstanceListResult, error) {
	// Validate inputs.
	if err := validate.FilePath(path, validate.FilePathWrite); err != nil {
		return nil, err
	}
	if !instanceLists[list] {
		return nil, fmt.Errorf("%q is not a PrefabInstance modification sub-array", list)
	}

	// Load, resolve, and splice.
	doc, err := document.FromFile(path, false)
	if err != nil {
		return nil, err
	}
	instance, err := doc.FindPrefabInstance(instanceArg)
	if err != nil {
		return nil, err
	}
	if err := instance.RemoveArrayElement(list, index); err != nil {
		return nil, err
	}
	length, err := instance.GetArrayLength(list)
	if err != nil {
		return nil, err
	}

	// Validate and persist.
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	if err := doc.Save(""); err != nil {
		return nil, err
	}
	logger.Debugf("removed %s[%d] on PrefabInstance %s in %s", list, index, instance.FileID(), path)

	// Success.
	return &InstanceListResult{
		Path:             path,
		PrefabInstanceID: instance.FileID(),
		List:             list,
		Length:           length,
	}, nil
}
