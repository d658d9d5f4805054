package remove

import (
	"strings"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/document"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/logging"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/unity"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/validate"
)

// PrefabInstanceResult is the result of DeletePrefabInstance.
type PrefabInstanceResult struct {
	// Path is the edited file.
	Path string
	// DeletedCount is the number of blocks removed.
	DeletedCount int
}

// DeletePrefabInstance deletes a PrefabInstance (resolved by fileID or by
// its m_Name modification) together with every stripped handle pointing at
// it, every object registered in m_AddedGameObjects (including those
// objects' hierarchies), and every component in m_AddedComponents. A
// parented instance is detached from its host parent's m_Children first.
func DeletePrefabInstance(path, instanceArg string, logger *logging.Logger) (*PrefabInstanceResult, error) {
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
	instanceID := instance.FileID()

	// Build the closure: the instance, its stripped handles, its added
	// objects (plus their hierarchies), and its added components.
	closure := map[string]bool{instanceID: true}
	stripped := doc.StrippedBlocksOf(instanceID)
	for _, handle := range stripped {
		closure[handle.FileID()] = true
	}
	for _, addedID := range addedObjectIDs(instance, "m_AddedGameObjects") {
		closure[addedID] = true
		if added := doc.FindByFileID(addedID); added != nil {
			for _, componentID := range added.ComponentIDs() {
				closure[componentID] = true
			}
			if transform, err := doc.RequireUniqueTransform(addedID); err == nil {
				for _, descendantID := range doc.CollectHierarchy(transform.FileID()) {
					closure[descendantID] = true
				}
			}
		}
	}
	for _, addedID := range addedObjectIDs(instance, "m_AddedComponents") {
		closure[addedID] = true
	}

	// Detach the instance's first stripped Transform from the host parent.
	if parentID := document.TransformParentID(instance); parentID != "0" {
		for _, handle := range stripped {
			if unity.IsTransformClass(handle.ClassID()) {
				if err := doc.RemoveChildFromParent(parentID, handle.FileID()); err != nil {
					return nil, err
				}
				break
			}
		}
	}

	// Remove the closure.
	removed := doc.RemoveBlocks(closure)

	// Validate and persist.
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	if err := doc.Save(""); err != nil {
		return nil, err
	}
	logger.Debugf("deleted PrefabInstance %s and %d related blocks from %s", instanceID, removed-1, path)

	// Success.
	return &PrefabInstanceResult{Path: path, DeletedCount: removed}, nil
}

// addedObjectIDs extracts the addedObject fileIDs from one of a
// PrefabInstance's added-object sub-arrays.
func addedObjectIDs(instance *document.Block, list string) []string {
	length, err := instance.GetArrayLength(list)
	if err != nil {
		return nil
	}
	var ids []string
	for index := 0; index < length; index++ {
		element, err := instance.GetArrayElement(list, index)
		if err != nil {
			continue
		}
		// Both added-object lists record the local object under an
		// addedObject key; the sibling targetCorrespondingSourceObject
		// reference points into the source prefab and must not be collected.
		for _, line := range strings.Split(element, "\n") {
			trimmed := strings.TrimSpace(line)
			if !strings.HasPrefix(trimmed, "addedObject:") {
				continue
			}
			reference := strings.TrimSpace(strings.TrimPrefix(trimmed, "addedObject:"))
			if fileID := document.ReferenceFileID(reference); fileID != "" && fileID != "0" {
				ids = append(ids, fileID)
			}
		}
	}
	return ids
}
