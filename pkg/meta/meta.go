// Package meta reads and emits Unity .meta sidecar files. Meta files are
// plain YAML (no stream directives), so reading goes through the strict YAML
// decoder; emission uses fixed templates because Unity is particular about
// importer-section ordering.
package meta

import (
	"fmt"
	"os"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/encoding"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/filesystem"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/identifier"
)

// Importer selects the importer section emitted into a meta file.
type Importer uint8

const (
	// ImporterMono is used for C# scripts.
	ImporterMono Importer = iota
	// ImporterNativeFormat is used for ScriptableObject assets.
	ImporterNativeFormat
	// ImporterPrefab is used for prefabs.
	ImporterPrefab
	// ImporterDefault is used for scenes and other natively handled assets.
	ImporterDefault
)

// ReadGUID extracts the guid from the meta file at the specified path.
func ReadGUID(path string) (string, error) {
	// Decode the meta file into a free-form map; importer sections vary too
	// much for a closed struct.
	var content map[string]interface{}
	if err := encoding.LoadAndUnmarshalYAML(path, &content); err != nil {
		return "", fmt.Errorf("unable to read meta file: %w", err)
	}

	// Extract and validate the guid.
	guid, ok := content["guid"].(string)
	if !ok {
		return "", fmt.Errorf("meta file %s carries no guid", path)
	}
	if !identifier.IsValidGUID(guid) {
		return "", fmt.Errorf("meta file %s carries malformed guid %q", path, guid)
	}

	// Success.
	return guid, nil
}

// Render produces the content of a meta file for the specified importer and
// guid.
func Render(importer Importer, guid string) string {
	switch importer {
	case ImporterMono:
		return "fileFormatVersion: 2\n" +
			"guid: " + guid + "\n" +
			"MonoImporter:\n" +
			"  externalObjects: {}\n" +
			"  serializedVersion: 2\n" +
			"  defaultReferences: []\n" +
			"  executionOrder: 0\n" +
			"  icon: {instanceID: 0}\n" +
			"  userData: \n" +
			"  assetBundleName: \n" +
			"  assetBundleVariant: \n"
	case ImporterNativeFormat:
		return "fileFormatVersion: 2\n" +
			"guid: " + guid + "\n" +
			"NativeFormatImporter:\n" +
			"  externalObjects: {}\n" +
			"  mainObjectFileID: 11400000\n" +
			"  userData: \n" +
			"  assetBundleName: \n" +
			"  assetBundleVariant: \n"
	case ImporterPrefab:
		return "fileFormatVersion: 2\n" +
			"guid: " + guid + "\n" +
			"PrefabImporter:\n" +
			"  externalObjects: {}\n" +
			"  userData: \n" +
			"  assetBundleName: \n" +
			"  assetBundleVariant: \n"
	default:
		return "fileFormatVersion: 2\n" +
			"guid: " + guid + "\n" +
			"DefaultImporter:\n" +
			"  externalObjects: {}\n" +
			"  userData: \n" +
			"  assetBundleName: \n" +
			"  assetBundleVariant: \n"
	}
}

// Write emits a meta file next to the specified asset path, returning the
// meta path. It refuses to overwrite an existing meta file when overwrite is
// false.
func Write(assetPath string, importer Importer, guid string, overwrite bool) (string, error) {
	metaPath := assetPath + ".meta"
	if !overwrite {
		if _, err := os.Lstat(metaPath); err == nil {
			return "", fmt.Errorf("meta file already exists at %s", metaPath)
		} else if !os.IsNotExist(err) {
			return "", fmt.Errorf("unable to probe meta path: %w", err)
		}
	}
	if err := filesystem.WriteFileAtomic(metaPath, []byte(Render(importer, guid)), 0644); err != nil {
		return "", fmt.Errorf("unable to write meta file: %w", err)
	}
	return metaPath, nil
}
