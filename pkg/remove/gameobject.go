package remove

import (
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/document"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/logging"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/validate"
)

// GameObjectResult is the result of DeleteGameObject.
type GameObjectResult struct {
	// Path is the edited file.
	Path string
	// DeletedCount is the number of blocks removed.
	DeletedCount int
}

// deletionClosure computes the set of fileIDs deleting a GameObject must
// remove: the GameObject itself, its components, and the hierarchies below
// its Transform. It also returns the Transform and its parent anchor.
func deletionClosure(doc *document.Document, gameObject *document.Block) (map[string]bool, string, string) {
	closure := map[string]bool{gameObject.FileID(): true}
	var transformID, parentID string
	for _, componentID := range gameObject.ComponentIDs() {
		closure[componentID] = true
	}
	if transform, err := doc.RequireUniqueTransform(gameObject.FileID()); err == nil {
		transformID = transform.FileID()
		parentID = doc.ParentTransformID(transform)
		for _, descendantID := range doc.CollectHierarchy(transformID) {
			closure[descendantID] = true
		}
	}
	return closure, transformID, parentID
}

// DeleteGameObject deletes a GameObject (resolved by name or fileID), its
// components, and its entire transform subtree. A parented target is
// detached from its parent's m_Children before removal.
func DeleteGameObject(path, gameObject string, logger *logging.Logger) (*GameObjectResult, error) {
	// Validate inputs.
	if err := validate.FilePath(path, validate.FilePathWrite); err != nil {
		return nil, err
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

	// Compute the closure and detach from the parent.
	closure, transformID, parentID := deletionClosure(doc, target)
	if parentID != "" && parentID != "0" {
		if err := doc.RemoveChildFromParent(parentID, transformID); err != nil {
			return nil, err
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
	logger.Debugf("deleted GameObject %s and %d related blocks from %s", target.FileID(), removed-1, path)

	// Success.
	return &GameObjectResult{Path: path, DeletedCount: removed}, nil
}
