package document

import (
	"testing"
)

// testSceneWithPrefab is a scene hosting one prefab instance parented under
// a full Transform, with stripped handles for the instance's root pair.
const testSceneWithPrefab = `%YAML 1.1
%TAG !u! tag:unity3d.com,2011:
--- !u!1 &100
GameObject:
  m_Component:
  - component: {fileID: 101}
  m_Name: Host
--- !u!4 &101
Transform:
  m_GameObject: {fileID: 100}
  m_Children:
  - {fileID: 7002}
  m_Father: {fileID: 0}
  m_RootOrder: 0
--- !u!1001 &7000
PrefabInstance:
  m_ObjectHideFlags: 0
  serializedVersion: 2
  m_Modification:
    m_TransformParent: {fileID: 101}
    m_Modifications:
    - target: {fileID: 11, guid: bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb, type: 3}
      propertyPath: m_Name
      value: Renamed Enemy
      objectReference: {fileID: 0}
    - target: {fileID: 12, guid: bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb, type: 3}
      propertyPath: m_LocalPosition.x
      value: 4
      objectReference: {fileID: 0}
    m_RemovedComponents: []
  m_SourcePrefab: {fileID: 100100000, guid: bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb, type: 3}
--- !u!1 &7001 stripped
GameObject:
  m_CorrespondingSourceObject: {fileID: 11, guid: bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb, type: 3}
  m_PrefabInstance: {fileID: 7000}
  m_PrefabAsset: {fileID: 0}
--- !u!4 &7002 stripped
Transform:
  m_CorrespondingSourceObject: {fileID: 12, guid: bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb, type: 3}
  m_PrefabInstance: {fileID: 7000}
  m_PrefabAsset: {fileID: 0}
`

// TestParseModifications tests override-entry parsing.
func TestParseModifications(t *testing.T) {
	doc, err := FromString(testSceneWithPrefab, true)
	if err != nil {
		t.Fatal("FromString failed:", err)
	}
	instance := doc.FindByFileID("7000")
	modifications := ParseModifications(instance)
	if len(modifications) != 2 {
		t.Fatal("modification count mismatch:", len(modifications))
	}
	first := modifications[0]
	if first.PropertyPath != "m_Name" || first.Value != "Renamed Enemy" {
		t.Error("first modification mismatch:", first)
	}
	if first.Target != "{fileID: 11, guid: bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb, type: 3}" {
		t.Error("target mismatch:", first.Target)
	}
	if first.ObjectReference != "{fileID: 0}" {
		t.Error("object reference mismatch:", first.ObjectReference)
	}
	if value, ok := FindModificationValue(instance, "m_LocalPosition.x"); !ok || value != "4" {
		t.Error("modification lookup mismatch:", value, ok)
	}
}

// TestFindPrefabInstance tests resolution by fileID and by name
// modification.
func TestFindPrefabInstance(t *testing.T) {
	doc, err := FromString(testSceneWithPrefab, false)
	if err != nil {
		t.Fatal("FromString failed:", err)
	}
	if instance, err := doc.FindPrefabInstance("7000"); err != nil || instance.FileID() != "7000" {
		t.Error("fileID resolution failed:", err)
	}
	if instance, err := doc.FindPrefabInstance("Renamed Enemy"); err != nil || instance.FileID() != "7000" {
		t.Error("name resolution failed:", err)
	}
	if _, err := doc.FindPrefabInstance("101"); err == nil {
		t.Error("expected a Transform fileID to be rejected")
	}
	if _, err := doc.FindPrefabInstance("Nobody"); err == nil {
		t.Error("expected an unknown name to fail")
	}
}

// TestStrippedBlocksAndParent tests stripped-handle enumeration and the
// instance's host parent.
func TestStrippedBlocksAndParent(t *testing.T) {
	doc, err := FromString(testSceneWithPrefab, false)
	if err != nil {
		t.Fatal("FromString failed:", err)
	}
	instance := doc.FindByFileID("7000")
	handles := doc.StrippedBlocksOf("7000")
	if len(handles) != 2 {
		t.Fatal("stripped-handle count mismatch:", len(handles))
	}
	if TransformParentID(instance) != "101" {
		t.Error("host parent mismatch:", TransformParentID(instance))
	}
	if SourcePrefabGUID(instance) != "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb" {
		t.Error("source guid mismatch:", SourcePrefabGUID(instance))
	}
}

// TestFindPrefabRootVariantFallback tests root discovery for a variant file
// whose only root pair is stripped.
func TestFindPrefabRootVariantFallback(t *testing.T) {
	variant := `%YAML 1.1
%TAG !u! tag:unity3d.com,2011:
--- !u!1001 &8000
PrefabInstance:
  m_Modification:
    m_TransformParent: {fileID: 0}
    m_Modifications:
    - target: {fileID: 11, guid: bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb, type: 3}
      propertyPath: m_Name
      value: Enemy Variant
      objectReference: {fileID: 0}
    m_RemovedComponents: []
  m_SourcePrefab: {fileID: 100100000, guid: bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb, type: 3}
--- !u!4 &8002 stripped
Transform:
  m_CorrespondingSourceObject: {fileID: 12, guid: bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb, type: 3}
  m_PrefabInstance: {fileID: 8000}
  m_PrefabAsset: {fileID: 0}
--- !u!1 &8001 stripped
GameObject:
  m_CorrespondingSourceObject: {fileID: 11, guid: bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb, type: 3}
  m_PrefabInstance: {fileID: 8000}
  m_PrefabAsset: {fileID: 0}
`
	doc, err := FromString(variant, false)
	if err != nil {
		t.Fatal("FromString failed:", err)
	}
	gameObject, transform, name, err := doc.FindPrefabRoot()
	if err != nil {
		t.Fatal("FindPrefabRoot failed:", err)
	}
	if gameObject.FileID() != "8001" || transform.FileID() != "8002" {
		t.Error("variant root pair mismatch:", gameObject.FileID(), transform.FileID())
	}
	if name != "Enemy Variant" {
		t.Error("variant name mismatch:", name)
	}
}

// TestFindPrefabRootFull tests root discovery in an ordinary prefab.
func TestFindPrefabRootFull(t *testing.T) {
	prefab := `%YAML 1.1
%TAG !u! tag:unity3d.com,2011:
--- !u!1 &11
GameObject:
  m_Component:
  - component: {fileID: 12}
  m_Name: Enemy
--- !u!4 &12
Transform:
  m_GameObject: {fileID: 11}
  m_Children: []
  m_Father: {fileID: 0}
  m_RootOrder: 0
`
	doc, err := FromString(prefab, false)
	if err != nil {
		t.Fatal("FromString failed:", err)
	}
	gameObject, transform, name, err := doc.FindPrefabRoot()
	if err != nil {
		t.Fatal("FindPrefabRoot failed:", err)
	}
	if gameObject.FileID() != "11" || transform.FileID() != "12" || name != "Enemy" {
		t.Error("root mismatch:", gameObject.FileID(), transform.FileID(), name)
	}
}
