package create

import (
	"fmt"
	"os"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/document"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/filesystem"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/identifier"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/logging"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/meta"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/validate"
)

// prefabVariantTemplate is the serialized form of a prefab variant: a
// PrefabInstance wired to the source prefab, plus the stripped root pair
// that gives the variant's own file local handles for the source root.
const prefabVariantTemplate = `%%YAML 1.1
%%TAG !u! tag:unity3d.com,2011:
--- !u!1001 &%s
PrefabInstance:
  m_ObjectHideFlags: 0
  serializedVersion: 2
  m_Modification:
    m_TransformParent: {fileID: 0}
    m_Modifications:
    - target: {fileID: %s, guid: %s, type: 3}
      propertyPath: m_Name
      value: %s
      objectReference: {fileID: 0}
    m_RemovedComponents: []
  m_SourcePrefab: {fileID: 100100000, guid: %s, type: 3}
--- !u!4 &%s stripped
Transform:
  m_CorrespondingSourceObject: {fileID: %s, guid: %s, type: 3}
  m_PrefabInstance: {fileID: %s}
  m_PrefabAsset: {fileID: 0}
--- !u!1 &%s stripped
GameObject:
  m_CorrespondingSourceObject: {fileID: %s, guid: %s, type: 3}
  m_PrefabInstance: {fileID: %s}
  m_PrefabAsset: {fileID: 0}
`

// VariantResult is the result of CreatePrefabVariant.
type VariantResult struct {
	// Path is the created variant file.
	Path string
	// MetaPath is the companion meta file.
	MetaPath string
	// SourceGUID is the source prefab's GUID.
	SourceGUID string
	// PrefabInstanceID is the anchor of the variant's PrefabInstance.
	PrefabInstanceID string
	// Warnings carries non-fatal notes.
	Warnings []string
}

// CreatePrefabVariant creates a prefab variant of the specified source
// prefab. The variant references the source's root pair through stripped
// handles and carries a single m_Name override. Both the variant and its
// meta are written atomically; a meta failure rolls the variant back.
func CreatePrefabVariant(sourcePath, outputPath, variantName string, logger *logging.Logger) (*VariantResult, error) {
	// Validate inputs.
	if err := validate.FilePath(sourcePath, validate.FilePathRead); err != nil {
		return nil, err
	}
	if err := validate.FilePath(outputPath, validate.FilePathWrite); err != nil {
		return nil, err
	}
	if variantName != "" {
		if err := validate.Name(variantName, "variant name"); err != nil {
			return nil, err
		}
	}

	// Read the source prefab's GUID from its meta.
	sourceGUID, err := meta.ReadGUID(sourcePath + ".meta")
	if err != nil {
		return nil, fmt.Errorf("unable to resolve source prefab GUID: %w", err)
	}

	// Locate the source prefab's root pair.
	source, err := document.FromFile(sourcePath, false)
	if err != nil {
		return nil, err
	}
	rootGameObject, rootTransform, rootName, err := source.FindPrefabRoot()
	if err != nil {
		return nil, fmt.Errorf("source prefab has no root: %w", err)
	}
	if variantName == "" {
		variantName = rootName + " Variant"
	}

	// Refuse to overwrite an existing asset.
	if _, err := os.Lstat(outputPath); err == nil {
		return nil, fmt.Errorf("prefab already exists at %s", outputPath)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("unable to probe output path: %w", err)
	}

	// Draw anchors for the variant's three blocks. The variant file is new,
	// so only mutual collisions need rejecting.
	taken := map[string]bool{}
	draw := func() (string, error) {
		id, err := identifier.NewFileID(func(candidate string) bool { return taken[candidate] })
		if err != nil {
			return "", err
		}
		taken[id] = true
		return id, nil
	}
	instanceID, err := draw()
	if err != nil {
		return nil, err
	}
	strippedTransformID, err := draw()
	if err != nil {
		return nil, err
	}
	strippedGameObjectID, err := draw()
	if err != nil {
		return nil, err
	}

	// Compose and write the variant.
	content := fmt.Sprintf(prefabVariantTemplate,
		instanceID,
		rootGameObject.FileID(), sourceGUID, variantName,
		sourceGUID,
		strippedTransformID, rootTransform.FileID(), sourceGUID, instanceID,
		strippedGameObjectID, rootGameObject.FileID(), sourceGUID, instanceID,
	)
	if err := filesystem.WriteFileAtomic(outputPath, []byte(content), 0644); err != nil {
		return nil, fmt.Errorf("unable to write prefab variant: %w", err)
	}

	// Write the companion meta, rolling back on failure.
	metaPath, err := meta.Write(outputPath, meta.ImporterPrefab, identifier.NewGUID(), false)
	if err != nil {
		os.Remove(outputPath)
		return nil, err
	}
	logger.Debugf("created prefab variant %s of %s (source guid %s)", outputPath, sourcePath, sourceGUID)

	// Success.
	return &VariantResult{
		Path:             outputPath,
		MetaPath:         metaPath,
		SourceGUID:       sourceGUID,
		PrefabInstanceID: instanceID,
	}, nil
}
