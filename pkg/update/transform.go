package update

import (
	"fmt"
	"math"
	"strconv"

	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/document"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/logging"
	"github.com/taconotsandwich/unity-agentic-tools-sub002/pkg/validate"
)

// Vector3 is a plain three-component vector input.
type Vector3 struct {
	X, Y, Z float64
}

// quaternion is an xyzw quaternion.
type quaternion struct {
	x, y, z, w float64
}

// multiply computes the Hamilton product a·b.
func multiply(a, b quaternion) quaternion {
	return quaternion{
		x: a.w*b.x + a.x*b.w + a.y*b.z - a.z*b.y,
		y: a.w*b.y - a.x*b.z + a.y*b.w + a.z*b.x,
		z: a.w*b.z + a.x*b.y - a.y*b.x + a.z*b.w,
		w: a.w*b.w - a.x*b.x - a.y*b.y - a.z*b.z,
	}
}

// eulerToQuaternion converts Euler angles in degrees to a quaternion using
// Unity's ZXY composition order: q = qz · qx · qy.
func eulerToQuaternion(euler Vector3) quaternion {
	halfX := euler.X * math.Pi / 360
	halfY := euler.Y * math.Pi / 360
	halfZ := euler.Z * math.Pi / 360
	sinX, cosX := math.Sincos(halfX)
	sinY, cosY := math.Sincos(halfY)
	sinZ, cosZ := math.Sincos(halfZ)
	qx := quaternion{x: sinX, w: cosX}
	qy := quaternion{y: sinY, w: cosY}
	qz := quaternion{z: sinZ, w: cosZ}
	return multiply(multiply(qz, qx), qy)
}

// formatScalar renders a float the way Unity's emitter does for inline
// struct fields: up to seven decimal places with trailing zeros trimmed, and
// negative zero normalized to zero.
func formatScalar(value float64) string {
	rounded := math.Round(value*1e7) / 1e7
	if rounded == 0 {
		rounded = 0
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// formatVector3 renders a vector as an inline xyz struct.
func formatVector3(v Vector3) string {
	return fmt.Sprintf("{x: %s, y: %s, z: %s}", formatScalar(v.X), formatScalar(v.Y), formatScalar(v.Z))
}

// formatQuaternion renders a quaternion as an inline xyzw struct.
func formatQuaternion(q quaternion) string {
	return fmt.Sprintf("{x: %s, y: %s, z: %s, w: %s}", formatScalar(q.x), formatScalar(q.y), formatScalar(q.z), formatScalar(q.w))
}

// TransformResult is the result of EditTransform.
type TransformResult struct {
	// Path is the edited file.
	Path string
	// TransformID is the edited Transform's anchor.
	TransformID string
	// BytesWritten is the size of the saved document.
	BytesWritten int
}

// EditTransform updates a Transform's local position, rotation, and scale.
// Rotation input is Euler degrees; the quaternion written to m_LocalRotation
// is composed in Unity's ZXY order and the input Euler is echoed into
// m_LocalEulerAnglesHint so that the inspector round-trips consistently.
// Nil inputs leave the corresponding property untouched.
func EditTransform(path, transform string, position, rotation, scale *Vector3, logger *logging.Logger) (*TransformResult, error) {
	// Validate inputs.
	if err := validate.FilePath(path, validate.FilePathWrite); err != nil {
		return nil, err
	}
	for _, input := range []*Vector3{position, rotation, scale} {
		if input != nil {
			if err := validate.Vector3(input.X, input.Y, input.Z); err != nil {
				return nil, err
			}
		}
	}
	if position == nil && rotation == nil && scale == nil {
		return nil, fmt.Errorf("nothing to edit: provide at least one of position, rotation, scale")
	}

	// Load the document and resolve the Transform.
	doc, err := document.FromFile(path, false)
	if err != nil {
		return nil, err
	}
	block, err := doc.RequireUniqueTransform(transform)
	if err != nil {
		return nil, err
	}
	if block.Stripped() {
		return nil, fmt.Errorf("Transform %s is a stripped prefab handle; edit the prefab override instead", block.FileID())
	}

	// Apply the edits.
	if position != nil {
		if err := block.SetProperty("m_LocalPosition", formatVector3(*position)); err != nil {
			return nil, err
		}
	}
	if rotation != nil {
		if err := block.SetProperty("m_LocalRotation", formatQuaternion(eulerToQuaternion(*rotation))); err != nil {
			return nil, err
		}
		if err := block.SetProperty("m_LocalEulerAnglesHint", formatVector3(*rotation)); err != nil {
			return nil, err
		}
	}
	if scale != nil {
		if err := block.SetProperty("m_LocalScale", formatVector3(*scale)); err != nil {
			return nil, err
		}
	}

	// Validate and persist.
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	serialized := doc.Serialize()
	if err := doc.Save(""); err != nil {
		return nil, err
	}
	logger.Debugf("edited Transform %s in %s", block.FileID(), path)

	// Success.
	return &TransformResult{
		Path:         path,
		TransformID:  block.FileID(),
		BytesWritten: len(serialized),
	}, nil
}
