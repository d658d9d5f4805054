package create

import (
	"fmt"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/defaults"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/document"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/logging"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/resolve"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/unity"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/validate"
)

// monoBehaviourHeader is the common property prefix of an attached
// MonoBehaviour component.
const monoBehaviourHeader = `  m_ObjectHideFlags: 0
  m_CorrespondingSourceObject: {fileID: 0}
  m_PrefabInstance: {fileID: 0}
  m_PrefabAsset: {fileID: 0}
  m_GameObject: {fileID: %s}
  m_Enabled: 1
  m_EditorHideFlags: 0
  m_Script: {fileID: 11500000, guid: %s, type: 3}
  m_Name:
  m_EditorClassIdentifier:
`

// allowedBehaviourBases are the base classes a custom script may derive from
// to be attachable as a component.
var allowedBehaviourBases = map[string]bool{
	"MonoBehaviour":         true,
	"NetworkBehaviour":      true,
	"StateMachineBehaviour": true,
}

// ComponentResult is the result of AddComponent.
type ComponentResult struct {
	// Path is the edited file.
	Path string
	// ComponentID is the anchor of the new component.
	ComponentID string
	// ClassID is the new component's class.
	ClassID int
	// ScriptGUID is set for custom-script components.
	ScriptGUID string
	// Warnings carries non-fatal notes.
	Warnings []string
}

// AddComponent attaches a component to a GameObject. Built-in component
// names resolve through the class table and receive their default bodies;
// anything else resolves as a custom script through the caller's resolver
// and is emitted as a MonoBehaviour with serialized field defaults. A
// duplicate of an already attached built-in class is warned about, not
// refused: Unity itself permits most duplicates. MonoBehaviour (custom
// script) attachments are not checked for duplicates and never warn.
func AddComponent(path, gameObject, component, projectPath string, resolver resolve.ScriptResolver, versionReader resolve.VersionReader, logger *logging.Logger) (*ComponentResult, error) {
	// Validate inputs.
	if err := validate.FilePath(path, validate.FilePathWrite); err != nil {
		return nil, err
	}
	if err := validate.Name(component, "component name"); err != nil {
		return nil, err
	}

	// Load the document and resolve the target.
	doc, err := document.FromFile(path, false)
	if err != nil {
		return nil, err
	}
	target, err := doc.RequireUniqueGameObject(gameObject)
	if err != nil {
		return nil, err
	}

	// Build the component block.
	var warnings []string
	componentID, err := doc.GenerateFileID()
	if err != nil {
		return nil, err
	}
	var raw string
	var classID int
	var scriptGUID string
	if builtinClass, ok := unity.BuiltinComponentClass(component); ok {
		// Built-in component: emit its default body.
		classID = builtinClass
		body, ok := unity.ComponentBody(builtinClass, target.FileID())
		if !ok {
			return nil, fmt.Errorf("built-in component %q has no default body", component)
		}
		raw = fmt.Sprintf("--- !u!%d &%s\n%s:\n%s\n", classID, componentID, unity.ClassName(classID), body)
	} else {
		// Custom script: resolve it and emit a MonoBehaviour.
		if resolver == nil {
			return nil, fmt.Errorf("no script resolver available for %q; run setup to build the GUID cache", component)
		}
		resolved, err := resolver.ResolveScript(component, projectPath)
		if err != nil {
			return nil, fmt.Errorf("unable to resolve script %q: %w", component, err)
		}
		if resolved == nil {
			return nil, fmt.Errorf("script %q not found; run setup to build the GUID cache", component)
		}
		switch resolved.Kind {
		case resolve.KindEnum:
			return nil, fmt.Errorf("%q is an enum and cannot be attached as a component", component)
		case resolve.KindInterface:
			return nil, fmt.Errorf("%q is an interface and cannot be attached as a component", component)
		}
		if resolved.BaseClass == "" {
			warnings = append(warnings, fmt.Sprintf("base class of %q could not be determined; assuming MonoBehaviour", component))
		} else if !allowedBehaviourBases[resolved.BaseClass] {
			return nil, fmt.Errorf("%q derives from %s, not MonoBehaviour, NetworkBehaviour, or StateMachineBehaviour", component, resolved.BaseClass)
		}
		classID = unity.ClassMonoBehaviour
		scriptGUID = resolved.GUID

		// Read the editor version for version-gated field defaults.
		var version *unity.Version
		if versionReader != nil && projectPath != "" {
			if version, err = versionReader.ReadUnityVersion(projectPath); err != nil {
				warnings = append(warnings, fmt.Sprintf("unable to read editor version: %v", err))
				version = nil
			}
		}

		// Compose the body with field defaults.
		body := fmt.Sprintf(monoBehaviourHeader, target.FileID(), resolved.GUID)
		for _, field := range resolved.Fields {
			if !field.Serialized() {
				continue
			}
			rendered, warning := defaults.RenderField(field.Name, field.TypeName, version)
			if warning != "" {
				warnings = append(warnings, warning)
			}
			body += rendered
		}
		raw = fmt.Sprintf("--- !u!%d &%s\nMonoBehaviour:\n%s", classID, componentID, body)
	}

	// Warn about duplicates of an already attached built-in class.
	for _, existingID := range target.ComponentIDs() {
		if existing := doc.FindByFileID(existingID); existing != nil && existing.ClassID() == classID {
			if classID != unity.ClassMonoBehaviour {
				warnings = append(warnings, fmt.Sprintf("GameObject %s already has a %s (fileID %s)", target.FileID(), unity.ClassName(classID), existingID))
				break
			}
		}
	}

	// Append the block and register it on the GameObject.
	if _, err := doc.AppendRaw(raw); err != nil {
		return nil, err
	}
	if err := target.InsertArrayElement("m_Component", -1, "component: "+document.Reference(componentID)); err != nil {
		return nil, fmt.Errorf("unable to register component: %w", err)
	}

	// Validate and persist.
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	if err := doc.Save(""); err != nil {
		return nil, err
	}
	logger.Debugf("attached %s (%s) to GameObject %s in %s", component, componentID, target.FileID(), path)

	// Success.
	return &ComponentResult{
		Path:        path,
		ComponentID: componentID,
		ClassID:     classID,
		ScriptGUID:  scriptGUID,
		Warnings:    warnings,
	}, nil
}

// CopyComponentResult is the result of CopyComponent.
type CopyComponentResult struct {
	// Path is the edited file.
	Path string
	// ComponentID is the anchor of the cloned component.
	ComponentID string
	// ClassID is the cloned component's class.
	ClassID int
	// Warnings carries non-fatal notes.
	Warnings []string
}

// CopyComponent clones an existing component block onto another GameObject.
// GameObjects and Transforms cannot be cloned through this path: duplicating
// a GameObject is its own operation, and a second Transform would corrupt
// the hierarchy.
func CopyComponent(path, sourceID, targetGameObject string, logger *logging.Logger) (*CopyComponentResult, error) {
	// Validate inputs.
	if err := validate.FilePath(path, validate.FilePathWrite); err != nil {
		return nil, err
	}

	// Load the document and resolve both ends.
	doc, err := document.FromFile(path, false)
	if err != nil {
		return nil, err
	}
	source := doc.FindByFileID(sourceID)
	if source == nil {
		return nil, fmt.Errorf("no component with fileID %s", sourceID)
	}
	if source.ClassID() == unity.ClassGameObject {
		return nil, fmt.Errorf("fileID %s is a GameObject; use duplication instead of component copy", sourceID)
	}
	if unity.IsTransformClass(source.ClassID()) {
		return nil, fmt.Errorf("Transforms cannot be copied; every GameObject already owns exactly one")
	}
	target, err := doc.RequireUniqueGameObject(targetGameObject)
	if err != nil {
		return nil, err
	}

	// Clone, retarget, and append.
	clone := source.Clone()
	componentID, err := doc.GenerateFileID()
	if err != nil {
		return nil, err
	}
	clone.RemapFileID(sourceID, componentID)
	if err := clone.SetProperty("m_GameObject", document.Reference(target.FileID())); err != nil {
		return nil, fmt.Errorf("unable to retarget clone: %w", err)
	}
	doc.AppendBlock(clone)
	if err := target.InsertArrayElement("m_Component", -1, "component: "+document.Reference(componentID)); err != nil {
		return nil, fmt.Errorf("unable to register component: %w", err)
	}

	// Validate and persist.
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	if err := doc.Save(""); err != nil {
		return nil, err
	}
	logger.Debugf("copied component %s to %s as %s in %s", sourceID, target.FileID(), componentID, path)

	// Success.
	return &CopyComponentResult{
		Path:        path,
		ComponentID: componentID,
		ClassID:     clone.ClassID(),
		Warnings:    nil,
	}, nil
}
