// Package remove implements the destructive operations: component removal,
// GameObject and PrefabInstance deletion, subtree duplication, and prefab
// unpacking. Destructive operations compute a closure of fileIDs first,
// detach the target from its parent's child list, and only then drop blocks,
// so that the document never passes through a state with dangling child
// references.
package remove

import (
	"fmt"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/document"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/logging"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/unity"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/validate"
)

// ComponentResult is the result of RemoveComponent.
type ComponentResult struct {
	// Path is the edited file.
	Path string
	// RemovedClassID is the class of the removed component.
	RemovedClassID int
}

// RemoveComponent removes a component block and its back-reference from the
// owning GameObject's m_Component list. GameObjects and Transforms are
// refused: deleting a GameObject is its own operation, and a GameObject
// without its Transform is corrupt.
func RemoveComponent(path, fileID string, logger *logging.Logger) (*ComponentResult, error) {
	// Validate inputs.
	if err := validate.FilePath(path, validate.FilePathWrite); err != nil {
		return nil, err
	}

	// Load the document and resolve the component.
	doc, err := document.FromFile(path, false)
	if err != nil {
		return nil, err
	}
	component := doc.FindByFileID(fileID)
	if component == nil {
		return nil, fmt.Errorf("no component with fileID %s in %s", fileID, path)
	}
	if component.ClassID() == unity.ClassGameObject {
		return nil, fmt.Errorf("fileID %s is a GameObject; use GameObject deletion instead", fileID)
	}
	if unity.IsTransformClass(component.ClassID()) {
		return nil, fmt.Errorf("Transforms cannot be removed; delete the GameObject instead")
	}

	// Strip the back-reference from the owning GameObject. The parsed
	// component list and the m_Component array elements share indices, and
	// the parsed form carries the bare fileID to match against.
	owner, err := doc.GameObjectOf(component)
	if err != nil {
		return nil, err
	}
	for index, componentID := range owner.ComponentIDs() {
		if componentID == fileID {
			if err := owner.RemoveArrayElement("m_Component", index); err != nil {
				return nil, err
			}
			break
		}
	}

	// Drop the component block.
	classID := component.ClassID()
	doc.RemoveBlock(fileID)

	// Validate and persist.
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	if err := doc.Save(""); err != nil {
		return nil, err
	}
	logger.Debugf("removed %s component %s from %s", unity.ClassName(classID), fileID, path)

	// Success.
	return &ComponentResult{Path: path, RemovedClassID: classID}, nil
}
