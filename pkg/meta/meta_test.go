package meta

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestRender tests importer-section selection.
func TestRender(t *testing.T) {
	guid := "0123456789abcdef0123456789abcdef"
	tests := []struct {
		importer Importer
		marker   string
	}{
		{ImporterMono, "MonoImporter:"},
		{ImporterNativeFormat, "NativeFormatImporter:"},
		{ImporterPrefab, "PrefabImporter:"},
		{ImporterDefault, "DefaultImporter:"},
	}
	for _, test := range tests {
		content := Render(test.importer, guid)
		if !strings.HasPrefix(content, "fileFormatVersion: 2\nguid: "+guid+"\n") {
			t.Error("meta preamble mismatch:", content)
		}
		if !strings.Contains(content, test.marker) {
			t.Errorf("importer section %q missing", test.marker)
		}
	}
	if !strings.Contains(Render(ImporterNativeFormat, guid), "mainObjectFileID: 11400000") {
		t.Error("NativeFormatImporter missing main object anchor")
	}
}

// TestWriteAndReadGUID tests the write/read round trip and overwrite
// refusal.
func TestWriteAndReadGUID(t *testing.T) {
	assetPath := filepath.Join(t.TempDir(), "Thing.asset")
	guid := "fedcba9876543210fedcba9876543210"
	metaPath, err := Write(assetPath, ImporterNativeFormat, guid, false)
	if err != nil {
		t.Fatal("Write failed:", err)
	}
	if metaPath != assetPath+".meta" {
		t.Error("meta path mismatch:", metaPath)
	}
	read, err := ReadGUID(metaPath)
	if err != nil {
		t.Fatal("ReadGUID failed:", err)
	}
	if read != guid {
		t.Error("guid round trip mismatch:", read)
	}

	// A second write must refuse to overwrite.
	if _, err := Write(assetPath, ImporterNativeFormat, guid, false); err == nil {
		t.Error("overwrite not refused")
	}
	if _, err := Write(assetPath, ImporterNativeFormat, guid, true); err != nil {
		t.Error("explicit overwrite failed:", err)
	}
}

// TestReadGUIDRejectsMalformed tests guid validation on read.
func TestReadGUIDRejectsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Broken.cs.meta")
	if err := os.WriteFile(path, []byte("fileFormatVersion: 2\nguid: nothex\n"), 0644); err != nil {
		t.Fatal("unable to seed meta:", err)
	}
	if _, err := ReadGUID(path); err == nil {
		t.Error("malformed guid accepted")
	}
	missing := filepath.Join(t.TempDir(), "Empty.cs.meta")
	if err := os.WriteFile(missing, []byte("fileFormatVersion: 2\n"), 0644); err != nil {
		t.Fatal("unable to seed meta:", err)
	}
	if _, err := ReadGUID(missing); err == nil {
		t.Error("guid-less meta accepted")
	}
}
