package defaults

import (
	"testing"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/unity"
)

// TestForTypePrimitives tests numeric, string, and alias handling.
func TestForTypePrimitives(t *testing.T) {
	for _, typeName := range []string{"int", "float", "bool", "Int64", "Single", "byte"} {
		if value := ForType(typeName, nil); value.Skip || value.Text != "0" {
			t.Errorf("ForType(%q) mismatch: %+v", typeName, value)
		}
	}
	if value := ForType("string", nil); value.Skip || value.Text != "" || value.Multiline {
		t.Errorf("ForType(string) mismatch: %+v", value)
	}
}

// TestForTypeNullableSkips tests that nullable fields never serialize.
func TestForTypeNullableSkips(t *testing.T) {
	if value := ForType("int?", nil); !value.Skip {
		t.Error("nullable field emitted")
	}
}

// TestForTypeSequences tests array and list handling.
func TestForTypeSequences(t *testing.T) {
	for _, typeName := range []string{"int[]", "GameObject[]", "List<Material>"} {
		if value := ForType(typeName, nil); value.Skip || value.Text != "[]" {
			t.Errorf("ForType(%q) mismatch: %+v", typeName, value)
		}
	}
}

// TestForTypeInlineStructs tests the stable inline forms.
func TestForTypeInlineStructs(t *testing.T) {
	tests := map[string]string{
		"Vector3":               "{x: 0, y: 0, z: 0}",
		"UnityEngine.Vector2":   "{x: 0, y: 0}",
		"Quaternion":            "{x: 0, y: 0, z: 0, w: 1}",
		"Color":                 "{r: 0, g: 0, b: 0, a: 0}",
		"LayerMask":             "{serializedVersion: 2, m_Bits: 0}",
	}
	for typeName, expected := range tests {
		if value := ForType(typeName, nil); value.Text != expected {
			t.Errorf("ForType(%q) mismatch: %q", typeName, value.Text)
		}
	}
}

// TestForTypeVersionGates tests Hash128 and RenderingLayerMask gating.
func TestForTypeVersionGates(t *testing.T) {
	modern, err := unity.ParseVersion("2021.3.1f1")
	if err != nil {
		t.Fatal("ParseVersion failed:", err)
	}
	ancient, err := unity.ParseVersion("2019.4.40f1")
	if err != nil {
		t.Fatal("ParseVersion failed:", err)
	}
	six, err := unity.ParseVersion("6000.0.23f1")
	if err != nil {
		t.Fatal("ParseVersion failed:", err)
	}

	if value := ForType("Hash128", modern); value.Skip {
		t.Error("Hash128 skipped on 2021.3")
	}
	if value := ForType("Hash128", ancient); !value.Skip {
		t.Error("Hash128 emitted on 2019.4")
	}
	if value := ForType("RenderingLayerMask", six); value.Skip {
		t.Error("RenderingLayerMask skipped on 6000.0")
	}
	if value := ForType("RenderingLayerMask", modern); !value.Skip {
		t.Error("RenderingLayerMask emitted on 2021.3")
	}

	// Without a version the gate fails closed with a warning.
	if value := ForType("Hash128", nil); !value.Skip || value.Warning == "" {
		t.Error("version-gated field without a version should skip with a warning")
	}
}

// TestForTypeBlockStructs tests block-style struct defaults.
func TestForTypeBlockStructs(t *testing.T) {
	value := ForType("Bounds", nil)
	if !value.Multiline || value.Text != "m_Center: {x: 0, y: 0, z: 0}\nm_Extent: {x: 0, y: 0, z: 0}" {
		t.Errorf("Bounds default mismatch: %+v", value)
	}
}

// TestForTypeReferencesAndUnknown tests the null-reference defaults,
// including the unknown-type fallback.
func TestForTypeReferencesAndUnknown(t *testing.T) {
	for _, typeName := range []string{"Material", "GameObject", "Transform", "AudioClip", "SomeCustomClass", "MyNamespace.Whatever"} {
		if value := ForType(typeName, nil); value.Text != "{fileID: 0}" {
			t.Errorf("ForType(%q) mismatch: %q", typeName, value.Text)
		}
	}
}

// TestRenderField tests body-line rendering, including multiline
// indentation.
func TestRenderField(t *testing.T) {
	if rendered, _ := RenderField("speed", "float", nil); rendered != "  speed: 0\n" {
		t.Error("scalar rendering mismatch:", rendered)
	}
	if rendered, _ := RenderField("label", "string", nil); rendered != "  label: \n" {
		t.Error("string rendering mismatch:", rendered)
	}
	expected := "  area:\n    m_Center: {x: 0, y: 0, z: 0}\n    m_Extent: {x: 0, y: 0, z: 0}\n"
	if rendered, _ := RenderField("area", "Bounds", nil); rendered != expected {
		t.Error("multiline rendering mismatch:", rendered)
	}
	if rendered, _ := RenderField("maybe", "int?", nil); rendered != "" {
		t.Error("skipped field rendered:", rendered)
	}
}
