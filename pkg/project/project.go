// Package project reads the on-disk Unity project metadata the engine
// consumes as pure input: the editor version, the tag table, and the build
// scene list. ProjectVersion.txt is plain YAML and goes through the YAML
// decoder; TagManager and EditorBuildSettings are Unity stream documents and
// go through the document engine.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/document"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/unity"
)

// projectVersionFile models ProjectSettings/ProjectVersion.txt.
type projectVersionFile struct {
	EditorVersion             string `yaml:"m_EditorVersion"`
	EditorVersionWithRevision string `yaml:"m_EditorVersionWithRevision"`
}

// ReadVersion reads and parses the project's editor version.
func ReadVersion(projectPath string) (*unity.Version, error) {
	// Read the version file.
	path := filepath.Join(projectPath, "ProjectSettings", "ProjectVersion.txt")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read project version: %w", err)
	}

	// Decode it.
	var content projectVersionFile
	if err := yaml.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("unable to decode project version: %w", err)
	}
	if content.EditorVersion == "" {
		return nil, fmt.Errorf("project version file %s carries no m_EditorVersion", path)
	}

	// Parse the version string.
	version, err := unity.ParseVersion(content.EditorVersion)
	if err != nil {
		return nil, err
	}

	// Success.
	return version, nil
}

// ReadTags returns the project's tag table: the built-in tags plus every
// custom tag registered in ProjectSettings/TagManager.asset. A missing
// TagManager yields just the built-in tags.
func ReadTags(projectPath string) ([]string, error) {
	tags := append([]string(nil), unity.BuiltinTags...)

	// Load the TagManager, tolerating its absence.
	path := filepath.Join(projectPath, "ProjectSettings", "TagManager.asset")
	doc, err := document.FromFile(path, false)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return tags, nil
		}
		return nil, fmt.Errorf("unable to read TagManager: %w", err)
	}

	// Collect custom tags.
	for _, block := range doc.FindByClassID(unity.ClassTagManager) {
		length, err := block.GetArrayLength("tags")
		if err != nil {
			continue
		}
		for index := 0; index < length; index++ {
			if tag, err := block.GetArrayElement("tags", index); err == nil && tag != "" {
				tags = append(tags, tag)
			}
		}
	}

	// Success.
	return tags, nil
}

// SceneEntry is one entry of the project's build scene list.
type SceneEntry struct {
	// Enabled indicates whether the scene participates in builds.
	Enabled bool
	// Path is the scene's project-relative path.
	Path string
	// GUID is the scene asset's GUID.
	GUID string
}

// ReadSceneList reads the project's build scene list from
// ProjectSettings/EditorBuildSettings.asset.
func ReadSceneList(projectPath string) ([]SceneEntry, error) {
	// Load the settings asset.
	path := filepath.Join(projectPath, "ProjectSettings", "EditorBuildSettings.asset")
	doc, err := document.FromFile(path, false)
	if err != nil {
		return nil, fmt.Errorf("unable to read EditorBuildSettings: %w", err)
	}

	// Collect scene entries.
	var entries []SceneEntry
	for _, block := range doc.FindByClassID(unity.ClassEditorBuildSettings) {
		length, err := block.GetArrayLength("m_Scenes")
		if err != nil {
			continue
		}
		for index := 0; index < length; index++ {
			element, err := block.GetArrayElement("m_Scenes", index)
			if err != nil {
				continue
			}
			entries = append(entries, parseSceneEntry(element))
		}
	}

	// Success.
	return entries, nil
}

// parseSceneEntry parses one m_Scenes element.
func parseSceneEntry(element string) SceneEntry {
	var entry SceneEntry
	var fields struct {
		Enabled int    `yaml:"enabled"`
		Path    string `yaml:"path"`
		GUID    string `yaml:"guid"`
	}
	if err := yaml.Unmarshal([]byte(unindent(element)), &fields); err == nil {
		entry.Enabled = fields.Enabled != 0
		entry.Path = fields.Path
		entry.GUID = fields.GUID
	}
	return entry
}

// unindent strips the leading indentation left on an element's continuation
// lines so that the fragment parses as a standalone YAML map.
func unindent(element string) string {
	lines := strings.Split(element, "\n")
	for index, line := range lines {
		lines[index] = strings.TrimLeft(line, " ")
	}
	return strings.Join(lines, "\n")
}

// Reader adapts the package's functions to the resolver interfaces consumed
// by the operations: it satisfies resolve.VersionReader and
// resolve.SettingsReader.
type Reader struct{}

// ReadUnityVersion implements resolve.VersionReader.
func (Reader) ReadUnityVersion(projectPath string) (*unity.Version, error) {
	return ReadVersion(projectPath)
}

// ReadTags implements resolve.SettingsReader.
func (Reader) ReadTags(projectPath string) ([]string, error) {
	return ReadTags(projectPath)
}
