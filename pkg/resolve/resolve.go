// Package resolve defines the callback-shaped collaborators the engine
// depends on for anything outside the file being edited: script lookup,
// prefab-path resolution, and project settings. The engine never walks a
// project tree itself; callers supply these resolvers (and whatever caching
// policy suits them) instead.
package resolve

import (
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/unity"
)

// ScriptKind classifies a resolved C# type.
type ScriptKind string

const (
	// KindClass is an ordinary class.
	KindClass ScriptKind = "class"
	// KindStruct is a struct.
	KindStruct ScriptKind = "struct"
	// KindEnum is an enum, which can never back a component or asset.
	KindEnum ScriptKind = "enum"
	// KindInterface is an interface, which can never back a component or
	// asset.
	KindInterface ScriptKind = "interface"
)

// Field describes one serialized field extracted from a script's source.
type Field struct {
	// Name is the field name as declared.
	Name string
	// TypeName is the declared type (possibly namespace-qualified).
	TypeName string
	// HasSerializeField indicates a [SerializeField] attribute.
	HasSerializeField bool
	// HasSerializeReference indicates a [SerializeReference] attribute.
	HasSerializeReference bool
	// IsPublic indicates public visibility.
	IsPublic bool
	// OwnerType is the declaring type, for fields inherited from base
	// classes.
	OwnerType string
}

// Serialized reports whether Unity would serialize the field: public fields
// and [SerializeField]/[SerializeReference] fields.
func (f Field) Serialized() bool {
	return f.IsPublic || f.HasSerializeField || f.HasSerializeReference
}

// Script is the resolution result for a script identifier.
type Script struct {
	// GUID is the script asset's GUID.
	GUID string
	// Path is the script's path, when known.
	Path string
	// Kind classifies the type.
	Kind ScriptKind
	// BaseClass is the type's direct base class, when known.
	BaseClass string
	// Fields are the script's extracted fields, in source order. A nil
	// slice means extraction was unavailable, not that the script has no
	// fields.
	Fields []Field
}

// ScriptResolver resolves a script identifier — a raw 32-hex GUID, a .cs
// path, or a (possibly namespace-qualified) type name — to a Script record.
// A nil result with a nil error means the identifier resolved to nothing.
type ScriptResolver interface {
	ResolveScript(identifier, projectPath string) (*Script, error)
}

// PrefabResolver resolves an asset GUID to the absolute path of the prefab
// that carries it. An empty result with a nil error means the GUID is
// unknown.
type PrefabResolver interface {
	ResolvePrefabByGUID(guid, projectPath string) (string, error)
}

// VersionReader reads a project's editor version.
type VersionReader interface {
	ReadUnityVersion(projectPath string) (*unity.Version, error)
}

// SettingsReader reads named project settings; the engine uses it for tag
// validation.
type SettingsReader interface {
	ReadTags(projectPath string) ([]string, error)
}
