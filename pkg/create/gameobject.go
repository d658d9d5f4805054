// Package create implements the creation operations: GameObjects, scenes,
// prefab variants, ScriptableObjects, meta files, and component attachment.
// Creation synthesizes block text from templates and appends it; wiring into
// the surrounding hierarchy goes through the document's child-list helpers so
// that parent/child symmetry holds by construction.
package create

import (
	"fmt"
	"strconv"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/document"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/logging"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/unity"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/validate"
)

// gameObjectTemplate is the serialized form of a freshly created GameObject.
const gameObjectTemplate = `--- !u!1 &%s
GameObject:
  m_ObjectHideFlags: 0
  m_CorrespondingSourceObject: {fileID: 0}
  m_PrefabInstance: {fileID: 0}
  m_PrefabAsset: {fileID: 0}
  serializedVersion: 6
  m_Component:
  - component: {fileID: %s}
  m_Layer: %d
  m_Name: %s
  m_TagString: Untagged
  m_Icon: {fileID: 0}
  m_NavMeshLayer: 0
  m_StaticEditorFlags: 0
  m_IsActive: 1
`

// transformTemplate is the serialized form of a freshly created Transform.
const transformTemplate = `--- !u!4 &%s
Transform:
  m_ObjectHideFlags: 0
  m_CorrespondingSourceObject: {fileID: 0}
  m_PrefabInstance: {fileID: 0}
  m_PrefabAsset: {fileID: 0}
  m_GameObject: {fileID: %s}
  m_LocalRotation: {x: 0, y: 0, z: 0, w: 1}
  m_LocalPosition: {x: 0, y: 0, z: 0}
  m_LocalScale: {x: 1, y: 1, z: 1}
  m_Children: []
  m_Father: {fileID: %s}
  m_RootOrder: %d
  m_LocalEulerAnglesHint: {x: 0, y: 0, z: 0}
`

// addedGameObjectEntry is the m_AddedGameObjects entry registered when a
// GameObject is added under a prefab instance's stripped hierarchy.
const addedGameObjectEntry = `targetCorrespondingSourceObject: %s
insertIndex: -1
addedObject: {fileID: %s}`

// GameObjectResult is the result of CreateGameObject.
type GameObjectResult struct {
	// Path is the edited file.
	Path string
	// GameObjectID and TransformID are the anchors of the new pair.
	GameObjectID string
	TransformID  string
	// PrefabInstanceID is set when the GameObject was registered as an
	// added object under a prefab instance.
	PrefabInstanceID string
	// Warnings carries non-fatal notes.
	Warnings []string
}

// CreateGameObject creates a GameObject (with its Transform) in the
// specified scene or prefab file. The parent argument may be empty (root), a
// GameObject or Transform fileID, or a GameObject name that resolves
// uniquely. In a prefab file with no parent specified, the new object
// attaches under the first stripped Transform and is registered in the
// owning PrefabInstance's m_AddedGameObjects.
func CreateGameObject(path, name, parent string, logger *logging.Logger) (*GameObjectResult, error) {
	// Validate inputs.
	if err := validate.Name(name, "GameObject name"); err != nil {
		return nil, err
	}
	if err := validate.FilePath(path, validate.FilePathWrite); err != nil {
		return nil, err
	}

	// Load the document.
	doc, err := document.FromFile(path, false)
	if err != nil {
		return nil, err
	}

	// Resolve the parent Transform.
	var parentTransform *document.Block
	var prefabInstanceID string
	if parent != "" {
		if parentTransform, err = doc.RequireUniqueTransform(parent); err != nil {
			return nil, err
		}
	} else {
		// With no parent in a prefab-instance-bearing document, attach under
		// the first stripped Transform so the object lands inside the
		// instance's hierarchy.
		for _, block := range doc.FindByClassID(unity.ClassTransform) {
			if block.Stripped() {
				parentTransform = block
				break
			}
		}
	}
	if parentTransform != nil && parentTransform.Stripped() {
		if value, err := parentTransform.GetProperty("m_PrefabInstance"); err == nil {
			prefabInstanceID = document.ReferenceFileID(value)
		}
	}

	// Generate the anchors.
	gameObjectID, err := doc.GenerateFileID()
	if err != nil {
		return nil, err
	}
	transformID, err := doc.GenerateFileID()
	if err != nil {
		return nil, err
	}
	// The second draw can't see the first one's reservation through the
	// index, so recheck directly.
	for transformID == gameObjectID {
		if transformID, err = doc.GenerateFileID(); err != nil {
			return nil, err
		}
	}

	// Compute parent wiring: the father anchor, the sibling index, and the
	// inherited layer.
	fatherID := "0"
	layer := 0
	if parentTransform != nil {
		fatherID = parentTransform.FileID()
		if !parentTransform.Stripped() {
			if owner, err := doc.GameObjectOf(parentTransform); err == nil {
				if value, err := owner.GetProperty("m_Layer"); err == nil {
					if parsed, err := strconv.Atoi(value); err == nil {
						layer = parsed
					}
				}
			}
		}
	}
	rootOrder, err := doc.CalculateRootOrder(rootOrderParent(parentTransform))
	if err != nil {
		return nil, err
	}

	// Emit the pair.
	if _, err := doc.AppendRaw(fmt.Sprintf(gameObjectTemplate, gameObjectID, transformID, layer, name)); err != nil {
		return nil, err
	}
	if _, err := doc.AppendRaw(fmt.Sprintf(transformTemplate, transformID, gameObjectID, fatherID, rootOrder)); err != nil {
		return nil, err
	}

	// Register the child. Full parents get a m_Children entry; stripped
	// parents instead register the object in the PrefabInstance's
	// m_AddedGameObjects list.
	if parentTransform != nil {
		if parentTransform.Stripped() {
			if instance := doc.FindByFileID(prefabInstanceID); instance != nil {
				source, err := parentTransform.GetProperty("m_CorrespondingSourceObject")
				if err != nil {
					source = "{fileID: 0}"
				}
				entry := fmt.Sprintf(addedGameObjectEntry, source, gameObjectID)
				if err := appendInstanceListEntry(instance, "m_AddedGameObjects", entry); err != nil {
					return nil, err
				}
			}
		} else {
			if err := doc.AddChildToParent(parentTransform.FileID(), transformID); err != nil {
				return nil, err
			}
		}
	}

	// Validate and persist.
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	if err := doc.Save(""); err != nil {
		return nil, err
	}
	logger.Debugf("created GameObject %q (%s) with Transform %s in %s", name, gameObjectID, transformID, path)

	// Success.
	return &GameObjectResult{
		Path:             path,
		GameObjectID:     gameObjectID,
		TransformID:      transformID,
		PrefabInstanceID: prefabInstanceID,
	}, nil
}

// rootOrderParent maps a resolved parent Transform to the argument
// CalculateRootOrder expects: stripped parents have no readable child list,
// so their children count as root-level for ordering purposes.
func rootOrderParent(parent *document.Block) string {
	if parent == nil || parent.Stripped() {
		return "0"
	}
	return parent.FileID()
}

// appendInstanceListEntry appends an entry to one of a PrefabInstance's
// modification sub-arrays, converting the inline empty form to block form on
// first insert.
func appendInstanceListEntry(instance *document.Block, list, entry string) error {
	if err := instance.InsertArrayElement(list, -1, entry); err != nil {
		return fmt.Errorf("unable to extend %s: %w", list, err)
	}
	return nil
}
