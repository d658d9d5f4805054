package update

import (
	"math"
	"strings"
	"testing"
)

// TestEulerToQuaternion tests the ZXY composition against known rotations.
func TestEulerToQuaternion(t *testing.T) {
	tests := []struct {
		euler      Vector3
		x, y, z, w float64
	}{
		{Vector3{0, 0, 0}, 0, 0, 0, 1},
		{Vector3{0, 90, 0}, 0, 0.7071068, 0, 0.7071068},
		{Vector3{90, 0, 0}, 0.7071068, 0, 0, 0.7071068},
		{Vector3{0, 0, 90}, 0, 0, 0.7071068, 0.7071068},
		{Vector3{0, 180, 0}, 0, 1, 0, 0},
	}
	for _, test := range tests {
		q := eulerToQuaternion(test.euler)
		for label, pair := range map[string][2]float64{
			"x": {q.x, test.x}, "y": {q.y, test.y}, "z": {q.z, test.z}, "w": {q.w, test.w},
		} {
			if math.Abs(pair[0]-pair[1]) > 1e-6 {
				t.Errorf("euler %v component %s mismatch: %v != %v", test.euler, label, pair[0], pair[1])
			}
		}
	}
}

// TestFormatScalar tests Unity-style float rendering.
func TestFormatScalar(t *testing.T) {
	tests := map[float64]string{
		0:            "0",
		1:            "1",
		-1:           "-1",
		0.5:          "0.5",
		0.70710678:   "0.7071068",
		-0.000000004: "0",
	}
	for input, expected := range tests {
		if result := formatScalar(input); result != expected {
			t.Errorf("formatScalar(%v) mismatch: %q != %q", input, result, expected)
		}
	}
}

// TestEditTransform tests position/rotation/scale editing end to end,
// including the Euler hint echo and inline-form preservation.
func TestEditTransform(t *testing.T) {
	path := writeFixture(t, testSampleScene)
	result, err := EditTransform(path, "Player",
		&Vector3{X: 1, Y: 2, Z: 3},
		&Vector3{X: 0, Y: 90, Z: 0},
		&Vector3{X: 2, Y: 2, Z: 2},
		nil,
	)
	if err != nil {
		t.Fatal("EditTransform failed:", err)
	}
	if result.TransformID != "301" {
		t.Error("transform anchor mismatch:", result.TransformID)
	}
	content := readFixture(t, path)
	if !strings.Contains(content, "  m_LocalPosition: {x: 1, y: 2, z: 3}\n") {
		t.Error("position not written")
	}
	if !strings.Contains(content, "  m_LocalRotation: {x: 0, y: 0.7071068, z: 0, w: 0.7071068}\n") {
		t.Error("rotation quaternion not written")
	}
	if !strings.Contains(content, "  m_LocalEulerAnglesHint: {x: 0, y: 90, z: 0}\n") {
		t.Error("Euler hint not echoed")
	}
	if !strings.Contains(content, "  m_LocalScale: {x: 2, y: 2, z: 2}\n") {
		t.Error("scale not written")
	}
}

// TestEditTransformRejectsNonFinite tests input validation.
func TestEditTransformRejectsNonFinite(t *testing.T) {
	path := writeFixture(t, testSampleScene)
	before := readFixture(t, path)
	if _, err := EditTransform(path, "Player", &Vector3{X: math.NaN()}, nil, nil, nil); err == nil {
		t.Fatal("expected NaN rejection")
	}
	if readFixture(t, path) != before {
		t.Error("failed edit touched the file")
	}
}

// TestEditTransformRequiresInput tests that an empty edit is refused.
func TestEditTransformRequiresInput(t *testing.T) {
	path := writeFixture(t, testSampleScene)
	if _, err := EditTransform(path, "Player", nil, nil, nil, nil); err == nil {
		t.Error("expected empty edit to be refused")
	}
}
