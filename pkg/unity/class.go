package unity

import (
	"strconv"
)

// Class identifiers for the Unity object types the engine manipulates
// directly. Unity's full class taxonomy is far larger; only the types with
// structural meaning to scene editing are named here.
const (
	// ClassGameObject is the class identifier for GameObject blocks.
	ClassGameObject = 1
	// ClassTransform is the class identifier for Transform blocks.
	ClassTransform = 4
	// ClassCamera is the class identifier for Camera blocks.
	ClassCamera = 20
	// ClassMeshRenderer is the class identifier for MeshRenderer blocks.
	ClassMeshRenderer = 23
	// ClassOcclusionCullingSettings is the class identifier for the scene
	// occlusion culling settings block.
	ClassOcclusionCullingSettings = 29
	// ClassMeshFilter is the class identifier for MeshFilter blocks.
	ClassMeshFilter = 33
	// ClassRigidbody is the class identifier for Rigidbody blocks.
	ClassRigidbody = 54
	// ClassMeshCollider is the class identifier for MeshCollider blocks.
	ClassMeshCollider = 64
	// ClassBoxCollider is the class identifier for BoxCollider blocks.
	ClassBoxCollider = 65
	// ClassAudioListener is the class identifier for AudioListener blocks.
	ClassAudioListener = 81
	// ClassAudioSource is the class identifier for AudioSource blocks.
	ClassAudioSource = 82
	// ClassAnimator is the class identifier for Animator blocks.
	ClassAnimator = 95
	// ClassRenderSettings is the class identifier for the scene render
	// settings block.
	ClassRenderSettings = 104
	// ClassLight is the class identifier for Light blocks.
	ClassLight = 108
	// ClassMonoBehaviour is the class identifier for MonoBehaviour blocks.
	ClassMonoBehaviour = 114
	// ClassSphereCollider is the class identifier for SphereCollider blocks.
	ClassSphereCollider = 135
	// ClassCapsuleCollider is the class identifier for CapsuleCollider
	// blocks.
	ClassCapsuleCollider = 136
	// ClassSkinnedMeshRenderer is the class identifier for
	// SkinnedMeshRenderer blocks.
	ClassSkinnedMeshRenderer = 137
	// ClassLightmapSettings is the class identifier for the scene lightmap
	// settings block.
	ClassLightmapSettings = 157
	// ClassNavMeshSettings is the class identifier for the scene navigation
	// mesh settings block.
	ClassNavMeshSettings = 196
	// ClassRectTransform is the class identifier for RectTransform blocks.
	ClassRectTransform = 224
	// ClassTagManager is the class identifier for the project TagManager
	// settings asset.
	ClassTagManager = 78
	// ClassEditorBuildSettings is the class identifier for the project
	// EditorBuildSettings asset.
	ClassEditorBuildSettings = 1045
	// ClassPrefabInstance is the class identifier for PrefabInstance blocks.
	ClassPrefabInstance = 1001
)

// Magic file identifiers with fixed, well-known meanings.
const (
	// FileIDScriptableObjectRoot anchors the single MonoBehaviour inside a
	// ScriptableObject .asset file.
	FileIDScriptableObjectRoot = "11400000"
	// FileIDMonoScript marks MonoScript references inside MonoBehaviour
	// m_Script fields.
	FileIDMonoScript = "11500000"
	// FileIDSourcePrefab marks the source prefab reference inside a
	// PrefabInstance's m_SourcePrefab field.
	FileIDSourcePrefab = "100100000"
)

// classNames maps the class identifiers above to their serialized type names
// (the mapping key on a block's second line).
var classNames = map[int]string{
	ClassGameObject:               "GameObject",
	ClassTransform:                "Transform",
	ClassCamera:                   "Camera",
	ClassMeshRenderer:             "MeshRenderer",
	ClassOcclusionCullingSettings: "OcclusionCullingSettings",
	ClassMeshFilter:               "MeshFilter",
	ClassRigidbody:                "Rigidbody",
	ClassMeshCollider:             "MeshCollider",
	ClassBoxCollider:              "BoxCollider",
	ClassAudioListener:            "AudioListener",
	ClassAudioSource:              "AudioSource",
	ClassAnimator:                 "Animator",
	ClassRenderSettings:           "RenderSettings",
	ClassLight:                    "Light",
	ClassMonoBehaviour:            "MonoBehaviour",
	ClassSphereCollider:           "SphereCollider",
	ClassCapsuleCollider:          "CapsuleCollider",
	ClassSkinnedMeshRenderer:      "SkinnedMeshRenderer",
	ClassLightmapSettings:         "LightmapSettings",
	ClassNavMeshSettings:          "NavMeshSettings",
	ClassRectTransform:            "RectTransform",
	ClassTagManager:               "TagManager",
	ClassEditorBuildSettings:      "EditorBuildSettings",
	ClassPrefabInstance:           "PrefabInstance",
}

// ClassName returns the serialized type name for a class identifier, or a
// numeric placeholder if the class isn't one the engine knows by name.
func ClassName(classID int) string {
	if name, ok := classNames[classID]; ok {
		return name
	}
	return "Class" + strconv.Itoa(classID)
}

// IsTransformClass reports whether a class identifier denotes a Transform or
// RectTransform.
func IsTransformClass(classID int) bool {
	return classID == ClassTransform || classID == ClassRectTransform
}
