package create

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/defaults"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/filesystem"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/identifier"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/logging"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/meta"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/resolve"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/unity"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/validate"
)

// scriptableObjectTemplate is the serialized form of a ScriptableObject
// asset: a single MonoBehaviour anchored at the well-known main-object
// fileID.
const scriptableObjectTemplate = `%%YAML 1.1
%%TAG !u! tag:unity3d.com,2011:
--- !u!114 &11400000
MonoBehaviour:
  m_ObjectHideFlags: 0
  m_CorrespondingSourceObject: {fileID: 0}
  m_PrefabInstance: {fileID: 0}
  m_PrefabAsset: {fileID: 0}
  m_GameObject: {fileID: 0}
  m_Enabled: 1
  m_EditorHideFlags: 0
  m_Script: {fileID: 11500000, guid: %s, type: 3}
  m_Name: %s
  m_EditorClassIdentifier:
`

// ScriptableObjectResult is the result of CreateScriptableObject.
type ScriptableObjectResult struct {
	// Path is the created asset file.
	Path string
	// MetaPath is the companion meta file.
	MetaPath string
	// ScriptGUID is the backing script's GUID.
	ScriptGUID string
	// AssetGUID is the created asset's GUID.
	AssetGUID string
	// Warnings carries non-fatal notes.
	Warnings []string
}

// CreateScriptableObject creates a .asset file backed by the specified
// script. The script identifier (GUID, path, or type name) is resolved
// through the caller's resolver; built-in Unity classes, enums, interfaces,
// and classes not deriving from ScriptableObject are rejected. Serialized
// field defaults are appended when the resolver extracted a field list.
func CreateScriptableObject(outputPath, script, projectPath string, resolver resolve.ScriptResolver, versionReader resolve.VersionReader, logger *logging.Logger) (*ScriptableObjectResult, error) {
	// Validate inputs.
	if err := validate.FilePath(outputPath, validate.FilePathWrite); err != nil {
		return nil, err
	}

	// A built-in Unity class can never back a ScriptableObject asset.
	if unity.IsBuiltinComponent(script) || script == "GameObject" || script == "Transform" {
		return nil, fmt.Errorf("%q is a built-in Unity class; ScriptableObject assets require a custom script", script)
	}

	// Resolve the script.
	if resolver == nil {
		return nil, fmt.Errorf("no script resolver available; run setup to build the GUID cache")
	}
	resolved, err := resolver.ResolveScript(script, projectPath)
	if err != nil {
		return nil, fmt.Errorf("unable to resolve script %q: %w", script, err)
	}
	if resolved == nil {
		return nil, fmt.Errorf("script %q not found; run setup to build the GUID cache", script)
	}

	// Reject unusable type kinds and base classes.
	switch resolved.Kind {
	case resolve.KindEnum:
		return nil, fmt.Errorf("%q is an enum and cannot back an asset", script)
	case resolve.KindInterface:
		return nil, fmt.Errorf("%q is an interface and cannot back an asset", script)
	}
	var warnings []string
	if resolved.BaseClass == "" {
		warnings = append(warnings, fmt.Sprintf("base class of %q could not be determined; assuming ScriptableObject", script))
	} else if resolved.BaseClass != "ScriptableObject" {
		return nil, fmt.Errorf("%q derives from %s, not ScriptableObject", script, resolved.BaseClass)
	}

	// Refuse to overwrite an existing asset.
	if _, err := os.Lstat(outputPath); err == nil {
		return nil, fmt.Errorf("asset already exists at %s", outputPath)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("unable to probe output path: %w", err)
	}

	// Read the editor version for version-gated field defaults, tolerating
	// its absence.
	var version *unity.Version
	if versionReader != nil && projectPath != "" {
		if version, err = versionReader.ReadUnityVersion(projectPath); err != nil {
			warnings = append(warnings, fmt.Sprintf("unable to read editor version: %v", err))
			version = nil
		}
	}

	// Compose the asset body.
	assetName := strings.TrimSuffix(filepath.Base(outputPath), filepath.Ext(outputPath))
	content := fmt.Sprintf(scriptableObjectTemplate, resolved.GUID, assetName)
	for _, field := range resolved.Fields {
		if !field.Serialized() {
			continue
		}
		rendered, warning := defaults.RenderField(field.Name, field.TypeName, version)
		if warning != "" {
			warnings = append(warnings, warning)
		}
		content += rendered
	}

	// Write the asset.
	if err := filesystem.WriteFileAtomic(outputPath, []byte(content), 0644); err != nil {
		return nil, fmt.Errorf("unable to write asset: %w", err)
	}

	// Write the companion meta, rolling back on failure.
	assetGUID := identifier.NewGUID()
	metaPath, err := meta.Write(outputPath, meta.ImporterNativeFormat, assetGUID, false)
	if err != nil {
		os.Remove(outputPath)
		return nil, err
	}
	logger.Debugf("created ScriptableObject %s backed by script %s", outputPath, resolved.GUID)

	// Success.
	return &ScriptableObjectResult{
		Path:       outputPath,
		MetaPath:   metaPath,
		ScriptGUID: resolved.GUID,
		AssetGUID:  assetGUID,
		Warnings:   warnings,
	}, nil
}
