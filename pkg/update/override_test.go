package update

import (
	"strings"
	"testing"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/document"
)

// TestEditPrefabOverrideUpdates tests in-place rewrite of an existing entry.
func TestEditPrefabOverrideUpdates(t *testing.T) {
	path := writeFixture(t, testSceneWithPrefab)
	result, err := EditPrefabOverride(path, "7000", "m_Name", "Boss", "", "", nil)
	if err != nil {
		t.Fatal("EditPrefabOverride failed:", err)
	}
	if result.Action != OverrideUpdated {
		t.Error("action mismatch:", result.Action)
	}
	doc, err := document.FromString(readFixture(t, path), true)
	if err != nil {
		t.Fatal("FromString failed:", err)
	}
	instance := doc.FindByFileID("7000")
	if value, ok := document.FindModificationValue(instance, "m_Name"); !ok || value != "Boss" {
		t.Error("override not rewritten:", value)
	}
	if len(document.ParseModifications(instance)) != 2 {
		t.Error("entry count changed on update")
	}
}

// TestEditPrefabOverrideInfersTarget tests target inference from overrides
// sharing the same root property.
func TestEditPrefabOverrideInfersTarget(t *testing.T) {
	path := writeFixture(t, testSceneWithPrefab)
	result, err := EditPrefabOverride(path, "7000", "m_LocalPosition.y", "9", "", "", nil)
	if err != nil {
		t.Fatal("EditPrefabOverride failed:", err)
	}
	if result.Action != OverrideAdded {
		t.Error("action mismatch:", result.Action)
	}
	doc, err := document.FromString(readFixture(t, path), true)
	if err != nil {
		t.Fatal("FromString failed:", err)
	}
	modifications := document.ParseModifications(doc.FindByFileID("7000"))
	if len(modifications) != 3 {
		t.Fatal("entry not appended:", len(modifications))
	}
	appended := modifications[2]
	if appended.PropertyPath != "m_LocalPosition.y" || appended.Value != "9" {
		t.Error("appended entry mismatch:", appended)
	}
	if appended.Target != modifications[1].Target {
		t.Error("target not inferred from the sibling override")
	}

	// New entries must land before m_RemovedComponents.
	raw := doc.FindByFileID("7000").Raw()
	if strings.Index(raw, "m_LocalPosition.y") > strings.Index(raw, "m_RemovedComponents") {
		t.Error("appended entry landed after m_RemovedComponents")
	}
}

// TestEditPrefabOverrideRequiresTarget tests the failure when no target can
// be inferred.
func TestEditPrefabOverrideRequiresTarget(t *testing.T) {
	path := writeFixture(t, testSceneWithPrefab)
	_, err := EditPrefabOverride(path, "7000", "m_Speed", "3", "", "", nil)
	if err == nil || !strings.Contains(err.Error(), "--target") {
		t.Error("expected target-required failure, got:", err)
	}
}

// TestRemovePrefabOverride tests entry removal by property path.
func TestRemovePrefabOverride(t *testing.T) {
	path := writeFixture(t, testSceneWithPrefab)
	if _, err := RemovePrefabOverride(path, "7000", "m_LocalPosition.x", "", nil); err != nil {
		t.Fatal("RemovePrefabOverride failed:", err)
	}
	doc, err := document.FromString(readFixture(t, path), true)
	if err != nil {
		t.Fatal("FromString failed:", err)
	}
	instance := doc.FindByFileID("7000")
	if _, ok := document.FindModificationValue(instance, "m_LocalPosition.x"); ok {
		t.Error("override survived removal")
	}
	if len(document.ParseModifications(instance)) != 1 {
		t.Error("removal count mismatch")
	}

	// Removing an absent override fails.
	if _, err := RemovePrefabOverride(path, "7000", "m_Missing", "", nil); err == nil {
		t.Error("absent override removal succeeded")
	}
}

// TestInstanceListMaintenance tests sub-array add/remove including the
// empty-form conversion and collapse.
func TestInstanceListMaintenance(t *testing.T) {
	path := writeFixture(t, testSceneWithPrefab)
	entry := "{fileID: 55, guid: bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb, type: 3}"
	result, err := AddInstanceListEntry(path, "7000", "m_RemovedComponents", entry, nil)
	if err != nil {
		t.Fatal("AddInstanceListEntry failed:", err)
	}
	if result.Length != 1 {
		t.Error("length mismatch after add:", result.Length)
	}
	if !strings.Contains(readFixture(t, path), "    m_RemovedComponents:\n    - {fileID: 55, guid: bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb, type: 3}\n") {
		t.Error("entry not spliced in block form")
	}
	result, err = RemoveInstanceListEntry(path, "7000", "m_RemovedComponents", 0, nil)
	if err != nil {
		t.Fatal("RemoveInstanceListEntry failed:", err)
	}
	if result.Length != 0 {
		t.Error("length mismatch after removal:", result.Length)
	}
	if !strings.Contains(readFixture(t, path), "    m_RemovedComponents: []\n") {
		t.Error("emptied sub-array did not collapse")
	}

	// Unknown lists are rejected.
	if _, err := AddInstanceListEntry(path, "7000", "m_Whatever", entry, nil); err == nil {
		t.Error("unknown sub-array accepted")
	}
}
