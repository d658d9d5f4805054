package project

import (
	"os"
	"path/filepath"
	"testing"
)

// writeProjectFile writes a file under a synthetic project tree.
func writeProjectFile(t *testing.T, root, relative, content string) {
	t.Helper()
	path := filepath.Join(root, relative)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal("unable to create project directory:", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal("unable to write project file:", err)
	}
}

// TestReadVersion tests ProjectVersion.txt parsing.
func TestReadVersion(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "ProjectSettings/ProjectVersion.txt",
		"m_EditorVersion: 2021.3.1f1\nm_EditorVersionWithRevision: 2021.3.1f1 (c5d0dbd67ca6)\n")
	version, err := ReadVersion(root)
	if err != nil {
		t.Fatal("ReadVersion failed:", err)
	}
	if version.Major != 2021 || version.Minor != 3 || version.Patch != 1 {
		t.Error("version mismatch:", version)
	}
	if _, err := ReadVersion(t.TempDir()); err == nil {
		t.Error("missing project accepted")
	}
}

// TestReadTags tests the built-in fallback and TagManager merging.
func TestReadTags(t *testing.T) {
	// Without a TagManager, only the built-ins come back.
	tags, err := ReadTags(t.TempDir())
	if err != nil {
		t.Fatal("ReadTags failed:", err)
	}
	if len(tags) != 7 {
		t.Error("built-in tag count mismatch:", tags)
	}

	// With a TagManager, custom tags are appended.
	root := t.TempDir()
	writeProjectFile(t, root, "ProjectSettings/TagManager.asset", `%YAML 1.1
%TAG !u! tag:unity3d.com,2011:
--- !u!78 &1
TagManager:
  serializedVersion: 2
  tags:
  - Boss
  - Checkpoint
  layers:
  - Default
`)
	tags, err = ReadTags(root)
	if err != nil {
		t.Fatal("ReadTags failed:", err)
	}
	found := map[string]bool{}
	for _, tag := range tags {
		found[tag] = true
	}
	if !found["Boss"] || !found["Checkpoint"] || !found["Untagged"] {
		t.Error("tag merge mismatch:", tags)
	}
}

// TestReadSceneList tests EditorBuildSettings parsing.
func TestReadSceneList(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "ProjectSettings/EditorBuildSettings.asset", `%YAML 1.1
%TAG !u! tag:unity3d.com,2011:
--- !u!1045 &1
EditorBuildSettings:
  m_ObjectHideFlags: 0
  serializedVersion: 2
  m_Scenes:
  - enabled: 1
    path: Assets/Scenes/Main.unity
    guid: 0123456789abcdef0123456789abcdef
  - enabled: 0
    path: Assets/Scenes/Debug.unity
    guid: fedcba9876543210fedcba9876543210
  m_configObjects: {}
`)
	entries, err := ReadSceneList(root)
	if err != nil {
		t.Fatal("ReadSceneList failed:", err)
	}
	if len(entries) != 2 {
		t.Fatal("scene count mismatch:", entries)
	}
	if !entries[0].Enabled || entries[0].Path != "Assets/Scenes/Main.unity" {
		t.Error("first entry mismatch:", entries[0])
	}
	if entries[1].Enabled {
		t.Error("second entry should be disabled")
	}
}
