package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

// TestWriteFileAtomicCreates tests writing a fresh file.
func TestWriteFileAtomicCreates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh.unity")
	if err := WriteFileAtomic(path, []byte("content"), 0644); err != nil {
		t.Fatal("WriteFileAtomic failed:", err)
	}
	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatal("unable to read result:", err)
	}
	if string(contents) != "content" {
		t.Error("content mismatch:", string(contents))
	}
}

// TestWriteFileAtomicReplaces tests overwriting an existing file and
// cleaning up the backup.
func TestWriteFileAtomicReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "existing.unity")
	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatal("unable to seed file:", err)
	}
	if err := WriteFileAtomic(path, []byte("new"), 0644); err != nil {
		t.Fatal("WriteFileAtomic failed:", err)
	}
	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatal("unable to read result:", err)
	}
	if string(contents) != "new" {
		t.Error("content mismatch:", string(contents))
	}
	if _, err := os.Lstat(path + ".bak"); !os.IsNotExist(err) {
		t.Error("backup file left behind")
	}
	if _, err := os.Lstat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file left behind")
	}
}

// TestWriteFileAtomicFailedTemporaryWrite tests that a failure while writing
// the temporary file never touches the original.
func TestWriteFileAtomicFailedTemporaryWrite(t *testing.T) {
	directory := t.TempDir()
	path := filepath.Join(directory, "target.unity")
	if err := os.WriteFile(path, []byte("original"), 0644); err != nil {
		t.Fatal("unable to seed file:", err)
	}

	// Occupy the temporary path with a directory so the temp write fails
	// before the rename sequence begins.
	if err := os.Mkdir(path+".tmp", 0755); err != nil {
		t.Fatal("unable to occupy temporary path:", err)
	}
	if err := WriteFileAtomic(path, []byte("replacement"), 0644); err == nil {
		t.Fatal("expected WriteFileAtomic to fail")
	}

	// The original must be untouched.
	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatal("unable to read original:", err)
	}
	if string(contents) != "original" {
		t.Error("original bytes changed:", string(contents))
	}
}

// TestWriteFileAtomicFailedBackup tests that a failure while moving the
// original aside leaves the original file's bytes unchanged.
func TestWriteFileAtomicFailedBackup(t *testing.T) {
	directory := t.TempDir()
	path := filepath.Join(directory, "target.unity")
	if err := os.WriteFile(path, []byte("original"), 0644); err != nil {
		t.Fatal("unable to seed file:", err)
	}

	// Occupy the backup path with a non-empty directory so the backup
	// rename fails after the temporary file was written.
	if err := os.Mkdir(path+".bak", 0755); err != nil {
		t.Fatal("unable to occupy backup path:", err)
	}
	if err := os.WriteFile(filepath.Join(path+".bak", "occupant"), []byte("x"), 0644); err != nil {
		t.Fatal("unable to fill backup path:", err)
	}
	if err := WriteFileAtomic(path, []byte("replacement"), 0644); err == nil {
		t.Fatal("expected WriteFileAtomic to fail")
	}

	// The original must be untouched and the temporary cleaned up.
	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatal("unable to read original:", err)
	}
	if string(contents) != "original" {
		t.Error("original bytes changed:", string(contents))
	}
	if _, err := os.Lstat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file left behind")
	}
}
