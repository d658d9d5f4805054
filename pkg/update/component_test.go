package update

import (
	"errors"
	"strings"
	"testing"
)

// TestEditComponentTypeDiscipline tests that a scalar cannot replace a
// compound value and that the file is untouched on rejection.
func TestEditComponentTypeDiscipline(t *testing.T) {
	path := writeFixture(t, testSampleScene)
	before := readFixture(t, path)

	// A scalar against an inline compound must fail.
	_, err := EditComponentByFileID(path, "301", "m_LocalPosition", "5", nil)
	var mismatch *TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatal("expected TypeMismatchError, got:", err)
	}
	if !strings.Contains(mismatch.Error(), "compound") {
		t.Error("diagnostic does not name the expected shape:", mismatch)
	}
	if readFixture(t, path) != before {
		t.Error("rejected edit touched the file")
	}

	// The dotted sub-field edit succeeds and preserves spacing.
	result, err := EditComponentByFileID(path, "301", "m_LocalPosition.x", "5", nil)
	if err != nil {
		t.Fatal("EditComponentByFileID failed:", err)
	}
	if result.ClassID != 4 {
		t.Error("class mismatch:", result.ClassID)
	}
	if !strings.Contains(readFixture(t, path), "  m_LocalPosition: {x: 5, y: 0, z: 0}\n") {
		t.Error("sub-field edit mismatch")
	}
}

// TestEditComponentNameFallback tests the exact-then-m_ ordered fallback.
func TestEditComponentNameFallback(t *testing.T) {
	path := writeFixture(t, testSampleScene)
	result, err := EditComponentByFileID(path, "102", "enabled", "0", nil)
	if err != nil {
		t.Fatal("EditComponentByFileID failed:", err)
	}
	if result.Property != "m_Enabled" {
		t.Error("fallback resolution mismatch:", result.Property)
	}
	if !strings.Contains(readFixture(t, path), "  m_Enabled: 0\n") {
		t.Error("fallback edit not applied")
	}
}

// TestEditComponentMissingProperty tests the serialized-defaults diagnostic.
func TestEditComponentMissingProperty(t *testing.T) {
	path := writeFixture(t, testSampleScene)
	_, err := EditComponentByFileID(path, "102", "m_FieldOfView", "90", nil)
	if err == nil || !strings.Contains(err.Error(), "non-default values") {
		t.Error("expected serialized-defaults diagnostic, got:", err)
	}
}

// TestEditComponentReferenceVerification tests same-file reference checks
// and null-reference acceptance.
func TestEditComponentReferenceVerification(t *testing.T) {
	path := writeFixture(t, testSampleScene)

	// A dangling same-file reference must be rejected.
	if _, err := EditComponentByFileID(path, "301", "m_GameObject", "{fileID: 999999}", nil); err == nil {
		t.Error("dangling reference accepted")
	}

	// The null reference is always permitted.
	if _, err := EditComponentByFileID(path, "301", "m_GameObject", "{fileID: 0}", nil); err != nil {
		t.Error("null reference rejected:", err)
	}
}

// TestEditComponentRejectsStripped tests the stripped-handle guidance.
func TestEditComponentRejectsStripped(t *testing.T) {
	path := writeFixture(t, testSceneWithPrefab)
	_, err := EditComponentByFileID(path, "7002", "m_RootOrder", "1", nil)
	if err == nil || !strings.Contains(err.Error(), "override") {
		t.Error("expected stripped-handle guidance, got:", err)
	}
}

// TestEditComponentNumericDiscipline tests numeric-for-numeric enforcement.
func TestEditComponentNumericDiscipline(t *testing.T) {
	path := writeFixture(t, testSampleScene)
	if _, err := EditComponentByFileID(path, "102", "m_Depth", "not-a-number", nil); err == nil {
		t.Error("non-numeric value accepted for a numeric property")
	}
	if _, err := EditComponentByFileID(path, "102", "m_Depth", "2.5", nil); err != nil {
		t.Error("numeric value rejected:", err)
	}
}

// TestApplyEditsBatch tests the one-load one-save batch path.
func TestApplyEditsBatch(t *testing.T) {
	path := writeFixture(t, testSampleScene)
	result, err := ApplyEdits(path, []Edit{
		{Target: "301", Property: "m_LocalPosition.x", Value: "7"},
		{Target: "301", Property: "m_RootOrder", Value: "5"},
		{Target: "102", Property: "m_Depth", Value: "3"},
	}, nil)
	if err != nil {
		t.Fatal("ApplyEdits failed:", err)
	}
	if result.Applied != 3 {
		t.Error("applied count mismatch:", result.Applied)
	}
	content := readFixture(t, path)
	for _, expected := range []string{"{x: 7, y: 0, z: 0}", "m_RootOrder: 5", "m_Depth: 3"} {
		if !strings.Contains(content, expected) {
			t.Error("batched edit missing:", expected)
		}
	}
}

// TestApplyEditsAtomicity tests that a failing edit leaves the file
// untouched.
func TestApplyEditsAtomicity(t *testing.T) {
	path := writeFixture(t, testSampleScene)
	before := readFixture(t, path)
	_, err := ApplyEdits(path, []Edit{
		{Target: "301", Property: "m_LocalPosition.x", Value: "7"},
		{Target: "301", Property: "m_DoesNotExist", Value: "1"},
	}, nil)
	if err == nil {
		t.Fatal("expected batch failure")
	}
	if readFixture(t, path) != before {
		t.Error("failed batch touched the file")
	}
}
