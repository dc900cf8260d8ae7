package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OBB represents an Oriented Bounding Box
type OBB struct {
	Center   rl.Vector3    // World-space center
	HalfSize rl.Vector3    // Half-extents along local axes
	Axes     [3]rl.Vector3 // Local X, Y, Z axes (rotated)
}

// NewOBB creates an OBB from center, size, and euler rotation (degrees)
func NewOBB(center, size, rotation rl.Vector3) OBB {
	rx := float64(rotation.X) * math.Pi / 180
	ry := float64(rotation.Y) * math.Pi / 180
	rz := float64(rotation.Z) * math.Pi / 180

	// Same order as GameObject.WorldPosition: X, Y, Z
	rotX := rl.MatrixRotateX(float32(rx))
	rotY := rl.MatrixRotateY(float32(ry))
	rotZ := rl.MatrixRotateZ(float32(rz))
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)

	axes := [3]rl.Vector3{
		rl.Vector3Normalize(rl.Vector3{X: rotMatrix.M0, Y: rotMatrix.M1, Z: rotMatrix.M2}),
		rl.Vector3Normalize(rl.Vector3{X: rotMatrix.M4, Y: rotMatrix.M5, Z: rotMatrix.M6}),
		rl.Vector3Normalize(rl.Vector3{X: rotMatrix.M8, Y: rotMatrix.M9, Z: rotMatrix.M10}),
	}

	return OBB{
		Center:   center,
		HalfSize: halfAbs(size),
		Axes:     axes,
	}
}

// NewAABBasOBB creates an axis-aligned OBB (no rotation)
func NewAABBasOBB(center, size rl.Vector3) OBB {
	return OBB{
		Center:   center,
		HalfSize: halfAbs(size),
		Axes: [3]rl.Vector3{
			{X: 1, Y: 0, Z: 0},
			{X: 0, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 1},
		},
	}
}

// NewOBBFromBox creates an OBB from center, size, rotation, and scale
func NewOBBFromBox(center, size, rotation, scale rl.Vector3) OBB {
	scaledSize := rl.Vector3{
		X: size.X * scale.X,
		Y: size.Y * scale.Y,
		Z: size.Z * scale.Z,
	}
	return NewOBB(center, scaledSize, rotation)
}

// IntersectRay runs a slab test in the box's local frame. direction must be
// normalized. It returns the entry distance, or the exit distance when the
// origin is inside the box, and the outward face normal there.
func (o OBB) IntersectRay(origin, direction rl.Vector3, maxDistance float32) (float32, rl.Vector3, bool) {
	rel := rl.Vector3Subtract(origin, o.Center)
	half := [3]float32{o.HalfSize.X, o.HalfSize.Y, o.HalfSize.Z}

	tmin := float32(-math.MaxFloat32)
	tmax := float32(math.MaxFloat32)
	enterAxis, exitAxis := -1, -1
	var enterSign, exitSign float32

	for i, axis := range o.Axes {
		e := rl.Vector3DotProduct(axis, rel)
		f := rl.Vector3DotProduct(axis, direction)

		if absf(f) < 1e-8 {
			// Parallel to this slab: miss unless the origin is between the planes
			if e < -half[i] || e > half[i] {
				return 0, rl.Vector3{}, false
			}
			continue
		}

		t1 := (-half[i] - e) / f
		t2 := (half[i] - e) / f
		// Entering through the -axis face when moving along +axis
		sign1, sign2 := float32(-1), float32(1)
		if t1 > t2 {
			t1, t2 = t2, t1
			sign1, sign2 = sign2, sign1
		}
		if t1 > tmin {
			tmin, enterAxis, enterSign = t1, i, sign1
		}
		if t2 < tmax {
			tmax, exitAxis, exitSign = t2, i, sign2
		}
		if tmin > tmax {
			return 0, rl.Vector3{}, false
		}
	}

	if tmax < 0 {
		return 0, rl.Vector3{}, false
	}

	t, axis, sign := tmin, enterAxis, enterSign
	if t < 0 {
		t, axis, sign = tmax, exitAxis, exitSign
	}
	if t > maxDistance || axis < 0 {
		return 0, rl.Vector3{}, false
	}
	return t, rl.Vector3Scale(o.Axes[axis], sign), true
}

func halfAbs(size rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: absf(size.X) / 2, Y: absf(size.Y) / 2, Z: absf(size.Z) / 2}
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
