package update

import (
	"fmt"
	"strconv"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/document"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/logging"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/validate"
)

// ReparentResult is the result of Reparent.
type ReparentResult struct {
	// Path is the edited file.
	Path string
	// TransformID is the moved Transform's anchor.
	TransformID string
	// OldParentID and NewParentID are the Transform anchors before and
	// after ("0" denotes the scene root).
	OldParentID string
	NewParentID string
	// RootOrder is the sibling index the Transform received.
	RootOrder int
	// BytesWritten is the size of the saved document.
	BytesWritten int
}

// Reparent moves a Transform (resolved from a fileID or GameObject name)
// under a new parent; the literal parent "root" detaches it to the scene
// root. Self-parenting and any move that would close a cycle are refused
// before anything is touched.
func Reparent(path, child, newParent string, logger *logging.Logger) (*ReparentResult, error) {
	// Validate inputs.
	if err := validate.FilePath(path, validate.FilePathWrite); err != nil {
		return nil, err
	}

	// Load the document and resolve both Transforms.
	doc, err := document.FromFile(path, false)
	if err != nil {
		return nil, err
	}
	childTransform, err := doc.RequireUniqueTransform(child)
	if err != nil {
		return nil, err
	}
	newParentID := "0"
	if newParent != "root" && newParent != "0" {
		parentTransform, err := doc.RequireUniqueTransform(newParent)
		if err != nil {
			return nil, err
		}
		newParentID = parentTransform.FileID()
	}

	// Refuse self-parenting.
	if newParentID == childTransform.FileID() {
		return nil, fmt.Errorf("cannot parent Transform %s under itself", newParentID)
	}

	// Refuse cycles: walk the new parent's ancestry; meeting the child means
	// the child is an ancestor of its requested parent.
	for ancestorID := newParentID; ancestorID != "0"; {
		if ancestorID == childTransform.FileID() {
			return nil, &CircularHierarchyError{ChildID: childTransform.FileID(), ParentID: newParentID}
		}
		ancestor := doc.FindByFileID(ancestorID)
		if ancestor == nil {
			break
		}
		ancestorID = doc.ParentTransformID(ancestor)
	}

	// Detach from the old parent.
	oldParentID := doc.ParentTransformID(childTransform)
	if oldParentID == newParentID {
		return nil, fmt.Errorf("Transform %s is already parented under %s", childTransform.FileID(), newParent)
	}
	if oldParentID != "0" {
		if err := doc.RemoveChildFromParent(oldParentID, childTransform.FileID()); err != nil {
			return nil, err
		}
	}

	// Rewire the father reference.
	if err := childTransform.SetProperty("m_Father", document.Reference(newParentID)); err != nil {
		return nil, err
	}

	// Compute the new sibling index. At the root the child's own father is
	// already "0", so it counts itself and the count is decremented.
	rootOrder, err := doc.CalculateRootOrder(newParentID)
	if err != nil {
		return nil, err
	}
	if newParentID == "0" {
		rootOrder--
	}
	if childTransform.HasProperty("m_RootOrder") {
		if err := childTransform.SetProperty("m_RootOrder", strconv.Itoa(rootOrder)); err != nil {
			return nil, err
		}
	}

	// Attach to the new parent.
	if newParentID != "0" {
		if err := doc.AddChildToParent(newParentID, childTransform.FileID()); err != nil {
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
	logger.Debugf("reparented Transform %s from %s to %s in %s", childTransform.FileID(), oldParentID, newParentID, path)

	// Success.
	return &ReparentResult{
		Path:         path,
		TransformID:  childTransform.FileID(),
		OldParentID:  oldParentID,
		NewParentID:  newParentID,
		RootOrder:    rootOrder,
		BytesWritten: len(serialized),
	}, nil
}
