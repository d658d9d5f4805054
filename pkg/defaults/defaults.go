// Package defaults maps C#-declared field types to the YAML forms Unity
// serializes for their default values. It feeds ScriptableObject creation and
// custom-component attachment, where a freshly emitted MonoBehaviour body
// must carry plausible serialized defaults for the script's fields.
package defaults

import (
	"strings"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/unity"
)

// Value describes the emitted default for one field type.
type Value struct {
	// Text is the serialized value. For multiline values it contains the
	// nested lines separated by newlines, unindented.
	Text string
	// Multiline indicates a block-style value that must be placed on the
	// lines below its key, indented one level.
	Multiline bool
	// Skip indicates that the field must not be emitted at all (nullables
	// and version-gated structs below their gate).
	Skip bool
	// Warning carries a non-fatal note for the caller's result object (set
	// when a version gate skipped a field because no version was supplied).
	Warning string
}

// numericTypes are the primitive types (and their .NET aliases) that
// serialize as a bare zero.
var numericTypes = map[string]bool{
	"int": true, "uint": true, "long": true, "ulong": true,
	"short": true, "ushort": true, "byte": true, "sbyte": true,
	"float": true, "double": true, "decimal": true, "char": true,
	"bool": true,
	"Int32": true, "UInt32": true, "Int64": true, "UInt64": true,
	"Int16": true, "UInt16": true, "Byte": true, "SByte": true,
	"Single": true, "Double": true, "Decimal": true, "Char": true,
	"Boolean": true,
}

// inlineStructs are the Unity structs whose serialized defaults are stable
// inline forms across every supported editor version.
var inlineStructs = map[string]string{
	"Vector2":    "{x: 0, y: 0}",
	"Vector3":    "{x: 0, y: 0, z: 0}",
	"Vector4":    "{x: 0, y: 0, z: 0, w: 0}",
	"Vector2Int": "{x: 0, y: 0}",
	"Vector3Int": "{x: 0, y: 0, z: 0}",
	"Quaternion": "{x: 0, y: 0, z: 0, w: 1}",
	"Color":      "{r: 0, g: 0, b: 0, a: 0}",
	"Color32":    "{r: 0, g: 0, b: 0, a: 0}",
	"Rect":       "{serializedVersion: 2, x: 0, y: 0, width: 0, height: 0}",
	"RectInt":    "{x: 0, y: 0, width: 0, height: 0}",
	"RectOffset": "{m_Left: 0, m_Right: 0, m_Top: 0, m_Bottom: 0}",
	"LayerMask":  "{serializedVersion: 2, m_Bits: 0}",
	"Matrix4x4": "{e00: 1, e01: 0, e02: 0, e03: 0, e10: 0, e11: 1, e12: 0, e13: 0," +
		" e20: 0, e21: 0, e22: 1, e23: 0, e30: 0, e31: 0, e32: 0, e33: 1}",
}

// blockStructs are the Unity structs Unity serializes in block style.
var blockStructs = map[string]string{
	"Bounds":    "m_Center: {x: 0, y: 0, z: 0}\nm_Extent: {x: 0, y: 0, z: 0}",
	"BoundsInt": "m_Position: {x: 0, y: 0, z: 0}\nm_Size: {x: 0, y: 0, z: 0}",
}

// referenceTypes are the engine object types that serialize as a null
// reference. The list is intentionally generous: anything deriving from
// UnityEngine.Object lands here, and the unknown-type fallback catches the
// rest.
var referenceTypes = map[string]bool{
	"Object": true, "GameObject": true, "Transform": true,
	"RectTransform": true, "Component": true, "Behaviour": true,
	"MonoBehaviour": true, "ScriptableObject": true, "Material": true,
	"Shader": true, "Texture": true, "Texture2D": true, "Texture3D": true,
	"RenderTexture": true, "Cubemap": true, "Sprite": true, "Mesh": true,
	"AudioClip": true, "AudioSource": true, "AnimationClip": true,
	"Animator": true, "RuntimeAnimatorController": true,
	"Camera": true, "Light": true, "Rigidbody": true, "Rigidbody2D": true,
	"Collider": true, "Collider2D": true, "ParticleSystem": true,
	"Font": true, "TextAsset": true, "PhysicMaterial": true,
	"Avatar": true, "Canvas": true, "Renderer": true, "MeshRenderer": true,
	"SkinnedMeshRenderer": true, "MeshFilter": true, "LineRenderer": true,
	"TrailRenderer": true, "Terrain": true, "NavMeshAgent": true,
}

// normalizeTypeName strips surrounding whitespace and the global::,
// UnityEngine. and System. qualifiers from a declared type name. Other
// namespace qualifiers are kept.
func normalizeTypeName(typeName string) string {
	typeName = strings.TrimSpace(typeName)
	typeName = strings.TrimPrefix(typeName, "global::")
	typeName = strings.TrimPrefix(typeName, "UnityEngine.")
	typeName = strings.TrimPrefix(typeName, "System.")
	return typeName
}

// ForType maps a declared field type (plus an optional editor version for
// version-gated structs) to its serialized default.
func ForType(typeName string, version *unity.Version) Value {
	typeName = normalizeTypeName(typeName)

	// Nullable fields never serialize.
	if strings.HasSuffix(typeName, "?") {
		return Value{Skip: true}
	}

	// Arrays and lists serialize as the empty inline sequence.
	if strings.HasSuffix(typeName, "[]") {
		return Value{Text: "[]"}
	}
	if strings.HasPrefix(typeName, "List<") && strings.HasSuffix(typeName, ">") {
		return Value{Text: "[]"}
	}

	// Primitives.
	if numericTypes[typeName] {
		return Value{Text: "0"}
	}
	if typeName == "string" || typeName == "String" {
		return Value{Text: ""}
	}

	// Version-stable inline structs.
	if text, ok := inlineStructs[typeName]; ok {
		return Value{Text: text}
	}

	// Version-gated structs. Without a version the gate fails closed and the
	// caller is warned that a field may have been dropped.
	if typeName == "Hash128" {
		if version.AtLeast(2021, 1) {
			return Value{Text: "{serializedVersion: 2, Hash: 00000000000000000000000000000000}"}
		}
		return gateSkip(typeName, version)
	}
	if typeName == "RenderingLayerMask" {
		if version.AtLeast(6000, 0) {
			return Value{Text: "{serializedVersion: 2, m_Bits: 1}"}
		}
		return gateSkip(typeName, version)
	}

	// Block-style structs.
	if text, ok := blockStructs[typeName]; ok {
		return Value{Text: text, Multiline: true}
	}

	// AnimationCurve is the one common engine struct with a block default.
	if typeName == "AnimationCurve" {
		return Value{
			Text:      "serializedVersion: 2\nm_Curve: []\nm_PreInfinity: 2\nm_PostInfinity: 2\nm_RotationOrder: 4",
			Multiline: true,
		}
	}

	// Known engine references.
	if referenceTypes[typeName] {
		return Value{Text: "{fileID: 0}"}
	}

	// Unknown type: unresolved custom classes and enums overwhelmingly turn
	// out to be object references in real MonoBehaviours, and an
	// incorrect-but-harmless null reference beats dropping the field (Unity
	// repairs it on the next inspection).
	return Value{Text: "{fileID: 0}"}
}

// gateSkip builds the skip result for a version-gated struct.
func gateSkip(typeName string, version *unity.Version) Value {
	result := Value{Skip: true}
	if version == nil {
		result.Warning = "field of type " + typeName + " skipped: no editor version available for its version gate"
	}
	return result
}

// RenderField renders one field's default as MonoBehaviour body lines (two
// spaces of indentation, multiline values indented one level under the key).
// It returns the rendered text (empty when the field is skipped) and any
// warning.
func RenderField(name, typeName string, version *unity.Version) (string, string) {
	value := ForType(typeName, version)
	if value.Skip {
		return "", value.Warning
	}
	if value.Multiline {
		var builder strings.Builder
		builder.WriteString("  " + name + ":\n")
		for _, line := range strings.Split(value.Text, "\n") {
			builder.WriteString("    " + line + "\n")
		}
		return builder.String(), value.Warning
	}
	if value.Text == "" {
		return "  " + name + ": \n", value.Warning
	}
	return "  " + name + ": " + value.Text + "\n", value.Warning
}
