package remove

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/document"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/logging"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/validate"
)

// DuplicateResult is the result of DuplicateGameObject.
type DuplicateResult struct {
	// Path is the edited file.
	Path string
	// GameObjectID is the clone root's anchor.
	GameObjectID string
	// Name is the clone root's name.
	Name string
	// TotalDuplicated is the number of blocks cloned.
	TotalDuplicated int
	// ClonedObjects maps original anchors to clone anchors.
	ClonedObjects map[string]string
	// Warnings carries non-fatal notes (duplicate-name collisions).
	Warnings []string
}

// DuplicateGameObject clones a GameObject subtree: the target, its
// components, and every descendant, with every intra-closure reference
// rewritten through a fresh one-to-one anchor map. The clone root keeps the
// original's parent and receives the next sibling index; its name is the
// supplied one or "<original> (1)". A resulting scene-wide name collision is
// reported as a warning, not an error.
func DuplicateGameObject(path, gameObject, newName string, logger *logging.Logger) (*DuplicateResult, error) {
	// Validate inputs.
	if err := validate.FilePath(path, validate.FilePathWrite); err != nil {
		return nil, err
	}
	if newName != "" {
		if err := validate.Name(newName, "GameObject name"); err != nil {
			return nil, err
		}
	}

	// Load the document and resolve the target.
	doc, err := document.FromFile(path, false)
	if err != nil {
		return nil, err
	}
	target, err := doc.RequireUniqueGameObject(gameObject)
	if err != nil {
		return nil, err
	}

	// Compute the closure and the anchor map.
	closure, transformID, parentID := deletionClosure(doc, target)
	if parentID == "" {
		parentID = "0"
	}
	ordered := orderedClosure(doc, closure)
	mapping := make(map[string]string, len(ordered))
	for _, originalID := range ordered {
		cloneID, err := doc.GenerateFileID()
		if err != nil {
			return nil, err
		}
		// Reject collisions with anchors drawn earlier in this mapping; the
		// index only knows about anchors already in the document.
		for mappedAlready(mapping, cloneID) {
			if cloneID, err = doc.GenerateFileID(); err != nil {
				return nil, err
			}
		}
		mapping[originalID] = cloneID
	}

	// Derive the clone root's name.
	originalName, err := target.GetProperty("m_Name")
	if err != nil {
		originalName = ""
	}
	if newName == "" {
		newName = originalName + " (1)"
	}

	// Compute the clone root's sibling index under the original parent
	// before any blocks are appended.
	rootOrder, err := doc.CalculateRootOrder(parentID)
	if err != nil {
		return nil, err
	}

	// Clone every block in the closure, remapping anchors and references.
	var cloneRoot *document.Block
	for _, originalID := range ordered {
		original := doc.FindByFileID(originalID)
		if original == nil {
			continue
		}
		clone := original.Clone()
		clone.RemapFileIDs(mapping)
		if originalID == target.FileID() {
			cloneRoot = clone
			if err := clone.SetProperty("m_Name", newName); err != nil {
				return nil, err
			}
		}
		if originalID == transformID {
			if clone.HasProperty("m_RootOrder") {
				if err := clone.SetProperty("m_RootOrder", strconv.Itoa(rootOrder)); err != nil {
					return nil, err
				}
			}
		}
		doc.AppendBlock(clone)
	}
	if cloneRoot == nil {
		return nil, fmt.Errorf("clone of GameObject %s produced no root", target.FileID())
	}

	// Register the clone root's Transform under the original parent.
	cloneTransformID := mapping[transformID]
	if parentID != "" && parentID != "0" {
		if err := doc.AddChildToParent(parentID, cloneTransformID); err != nil {
			return nil, err
		}
	}

	// Warn about scene-wide name collisions: the original name plus the
	// clone's name form one family, and a family larger than the expected
	// original-plus-clone pair means the scene already carried duplicates.
	var warnings []string
	family := doc.FindGameObjectsByName(originalName)
	if newName != originalName {
		family = append(family, doc.FindGameObjectsByName(newName)...)
	}
	if len(family) > 2 {
		ids := make([]string, 0, len(family))
		for _, member := range family {
			ids = append(ids, member.FileID())
		}
		warnings = append(warnings, fmt.Sprintf("name %q now appears %d times (fileIDs %s)", originalName, len(family), strings.Join(ids, ", ")))
	}

	// Validate and persist.
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	if err := doc.Save(""); err != nil {
		return nil, err
	}
	logger.Debugf("duplicated GameObject %s as %s (%d blocks) in %s", target.FileID(), cloneRoot.FileID(), len(ordered), path)

	// Success.
	return &DuplicateResult{
		Path:            path,
		GameObjectID:    cloneRoot.FileID(),
		Name:            newName,
		TotalDuplicated: len(ordered),
		ClonedObjects:   mapping,
		Warnings:        warnings,
	}, nil
}

// orderedClosure returns the closure's anchors in document order, which
// keeps clone output deterministic and readable.
func orderedClosure(doc *document.Document, closure map[string]bool) []string {
	var ordered []string
	for _, block := range doc.Blocks() {
		if closure[block.FileID()] {
			ordered = append(ordered, block.FileID())
		}
	}
	return ordered
}

// mappedAlready reports whether an anchor is already a value in the mapping.
func mappedAlready(mapping map[string]string, candidate string) bool {
	for _, mapped := range mapping {
		if mapped == candidate {
			return true
		}
	}
	return false
}
