package validate

import (
	"math"
	"testing"
)

// TestName tests name validation edges.
func TestName(t *testing.T) {
	if err := Name("Main Camera", "GameObject name"); err != nil {
		t.Error("ordinary name rejected:", err)
	}
	for _, invalid := range []string{"", "a/b", "a\\b", "a\nb", "a\tb", "a\x00b"} {
		if err := Name(invalid, "GameObject name"); err == nil {
			t.Errorf("invalid name %q accepted", invalid)
		}
	}
}

// TestGUID tests GUID validation.
func TestGUID(t *testing.T) {
	if err := GUID("0123456789abcdef0123456789abcdef"); err != nil {
		t.Error("valid GUID rejected:", err)
	}
	if err := GUID("short"); err == nil {
		t.Error("invalid GUID accepted")
	}
}

// TestVector3 tests finiteness checks.
func TestVector3(t *testing.T) {
	if err := Vector3(1, -2.5, 0); err != nil {
		t.Error("finite vector rejected:", err)
	}
	if err := Vector3(math.NaN(), 0, 0); err == nil {
		t.Error("NaN component accepted")
	}
	if err := Vector3(0, math.Inf(1), 0); err == nil {
		t.Error("infinite component accepted")
	}
}

// TestFilePath tests the path policies.
func TestFilePath(t *testing.T) {
	if err := FilePath("Assets/Scenes/Main.unity", FilePathWrite); err != nil {
		t.Error("ordinary project path rejected:", err)
	}
	if err := FilePath("file:///tmp/scene.unity", FilePathRead); err == nil {
		t.Error("URL scheme accepted")
	}
	if err := FilePath("../outside.unity", FilePathRead); err == nil {
		t.Error("upward traversal accepted")
	}
	if err := FilePath("Assets/../../outside.unity", FilePathWrite); err == nil {
		t.Error("embedded traversal accepted")
	}
	if err := FilePath("Packages/com.example/Runtime/Thing.prefab", FilePathWrite); err == nil {
		t.Error("write into Packages/ accepted")
	}
	if err := FilePath("Packages/com.example/Runtime/Thing.prefab", FilePathRead); err != nil {
		t.Error("read from Packages/ rejected:", err)
	}
}
