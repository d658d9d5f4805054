package remove

import (
	"fmt"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/document"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/logging"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/resolve"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/unity"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/validate"
)

// UnpackResult is the result of UnpackPrefabInstance.
type UnpackResult struct {
	// Path is the edited file.
	Path string
	// UnpackedCount is the number of blocks cloned out of the source.
	UnpackedCount int
	// GameObjectID is the unpacked root GameObject's anchor.
	GameObjectID string
	// Warnings carries non-fatal notes (overrides that could not be
	// applied).
	Warnings []string
}

// UnpackPrefabInstance replaces a PrefabInstance with plain copies of its
// source prefab's objects: every source block (minus the instance's removed
// components) is cloned into the host with fresh anchors, the instance's
// overrides are applied to the clones, and the cloned root is parented where
// the instance was. The source prefab is located through the caller's
// GUID-to-path resolver.
func UnpackPrefabInstance(path, instanceArg, projectPath string, resolver resolve.PrefabResolver, logger *logging.Logger) (*UnpackResult, error) {
	// Validate inputs.
	if err := validate.FilePath(path, validate.FilePathWrite); err != nil {
		return nil, err
	}

	// Load the host document and resolve the instance.
	doc, err := document.FromFile(path, false)
	if err != nil {
		return nil, err
	}
	instance, err := doc.FindPrefabInstance(instanceArg)
	if err != nil {
		return nil, err
	}
	instanceID := instance.FileID()

	// Resolve the source prefab.
	guid := document.SourcePrefabGUID(instance)
	if guid == "" {
		return nil, fmt.Errorf("PrefabInstance %s carries no m_SourcePrefab guid", instanceID)
	}
	if resolver == nil {
		return nil, fmt.Errorf("no prefab resolver available for guid %s; run setup to build the GUID cache", guid)
	}
	sourcePath, err := resolver.ResolvePrefabByGUID(guid, projectPath)
	if err != nil {
		return nil, fmt.Errorf("unable to resolve source prefab %s: %w", guid, err)
	}
	if sourcePath == "" {
		return nil, fmt.Errorf("source prefab %s not found; pass the project path so the GUID cache can be consulted", guid)
	}
	source, err := document.FromFile(sourcePath, false)
	if err != nil {
		return nil, err
	}

	// Collect the source components the instance removed; their clones must
	// not materialize.
	removed := map[string]bool{}
	if length, err := instance.GetArrayLength("m_RemovedComponents"); err == nil {
		for index := 0; index < length; index++ {
			if element, err := instance.GetArrayElement("m_RemovedComponents", index); err == nil {
				if fileID := document.ReferenceFileID(element); fileID != "" {
					removed[fileID] = true
				}
			}
		}
	}

	// Build the anchor map from every source block to a fresh host anchor.
	mapping := map[string]string{}
	for _, block := range source.Blocks() {
		if block.FileID() == "0" || removed[block.FileID()] {
			continue
		}
		cloneID, err := doc.GenerateFileID()
		if err != nil {
			return nil, err
		}
		for mappedAlready(mapping, cloneID) {
			if cloneID, err = doc.GenerateFileID(); err != nil {
				return nil, err
			}
		}
		mapping[block.FileID()] = cloneID
	}

	// Locate the source root pair before cloning.
	_, sourceRootTransform, _, err := source.FindPrefabRoot()
	if err != nil {
		return nil, fmt.Errorf("source prefab %s has no root: %w", sourcePath, err)
	}

	// Clone the source blocks, rewriting references through the map and
	// zeroing prefab bookkeeping.
	clones := map[string]*document.Block{}
	var orderedClones []*document.Block
	for _, block := range source.Blocks() {
		if _, keep := mapping[block.FileID()]; !keep {
			continue
		}
		clone := block.Clone()
		clone.RemapFileIDs(mapping)
		for _, bookkeeping := range []string{"m_CorrespondingSourceObject", "m_PrefabInstance", "m_PrefabAsset"} {
			if clone.HasProperty(bookkeeping) {
				if err := clone.SetProperty(bookkeeping, "{fileID: 0}"); err != nil {
					return nil, err
				}
			}
		}
		clones[clone.FileID()] = clone
		orderedClones = append(orderedClones, clone)
	}

	// Apply the instance's overrides to the clones.
	var warnings []string
	for _, modification := range document.ParseModifications(instance) {
		targetID := document.ReferenceFileID(modification.Target)
		cloneID, known := mapping[targetID]
		if !known {
			continue
		}
		clone := clones[cloneID]
		value := modification.Value
		if referenceID := document.ReferenceFileID(modification.ObjectReference); referenceID != "" && referenceID != "0" {
			// Object-reference overrides carry their payload in the
			// reference, remapped when it points into the cloned closure.
			if remapped, local := mapping[referenceID]; local {
				referenceID = remapped
			}
			value = document.Reference(referenceID)
		}
		if err := clone.SetProperty(modification.PropertyPath, value); err != nil {
			warnings = append(warnings, fmt.Sprintf("override %s on fileID %s could not be applied: %v", modification.PropertyPath, targetID, err))
		}
	}

	// Parent the cloned root where the instance sat.
	hostParentID := document.TransformParentID(instance)
	cloneRootTransformID := mapping[sourceRootTransform.FileID()]
	cloneRootTransform := clones[cloneRootTransformID]
	if cloneRootTransform == nil {
		return nil, fmt.Errorf("source root Transform %s was not cloned", sourceRootTransform.FileID())
	}
	if err := cloneRootTransform.SetProperty("m_Father", document.Reference(hostParentID)); err != nil {
		return nil, err
	}

	// Remove the instance and its stripped handles, detaching stripped
	// Transforms from the host parent's child list first.
	closure := map[string]bool{instanceID: true}
	for _, handle := range doc.StrippedBlocksOf(instanceID) {
		closure[handle.FileID()] = true
		if hostParentID != "0" && unity.IsTransformClass(handle.ClassID()) {
			if err := doc.RemoveChildFromParent(hostParentID, handle.FileID()); err != nil {
				return nil, err
			}
		}
	}
	doc.RemoveBlocks(closure)

	// Append the clones and register the root under the host parent.
	for _, clone := range orderedClones {
		doc.AppendBlock(clone)
	}
	if hostParentID != "0" {
		if err := doc.AddChildToParent(hostParentID, cloneRootTransformID); err != nil {
			return nil, err
		}
	}

	// Resolve the unpacked root GameObject for the result.
	var rootGameObjectID string
	if value, err := cloneRootTransform.GetProperty("m_GameObject"); err == nil {
		rootGameObjectID = document.ReferenceFileID(value)
	}

	// Validate and persist.
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	if err := doc.Save(""); err != nil {
		return nil, err
	}
	logger.Debugf("unpacked PrefabInstance %s into %d blocks in %s", instanceID, len(orderedClones), path)

	// Success.
	return &UnpackResult{
		Path:          path,
		UnpackedCount: len(orderedClones),
		GameObjectID:  rootGameObjectID,
		Warnings:      warnings,
	}, nil
}
