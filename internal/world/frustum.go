package world

import (
	"vrgaze/internal/components"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frustum is the view volume of the eye as six inward-facing planes:
// left, right, bottom, top, near, far.
type Frustum struct {
	planes [6]Plane
}

// Plane holds ax + by + cz + d = 0 with a unit normal.
type Plane struct {
	normal   rl.Vector3
	distance float32
}

// EyeFrustum builds the frustum the eye currently renders with.
func EyeFrustum(eye *components.Camera) Frustum {
	aspect := float32(1)
	if eye.Viewport.Y > 0 {
		aspect = eye.Viewport.X / eye.Viewport.Y
	}
	return ExtractFrustum(eye.GetRaylibCamera(), aspect, eye.Near, eye.Far)
}

// ExtractFrustum derives the planes from the camera's view-projection matrix
// (Gribb/Hartmann).
func ExtractFrustum(camera rl.Camera3D, aspect, near, far float32) Frustum {
	view := rl.MatrixLookAt(camera.Position, camera.Target, camera.Up)

	var proj rl.Matrix
	if camera.Projection == rl.CameraPerspective {
		proj = rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, near, far)
	} else {
		halfH := camera.Fovy / 2
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, near, far)
	}
	vp := rl.MatrixMultiply(view, proj)

	// Rows of the combined matrix; raylib stores it column-major
	rows := [4][4]float32{
		{vp.M0, vp.M4, vp.M8, vp.M12},
		{vp.M1, vp.M5, vp.M9, vp.M13},
		{vp.M2, vp.M6, vp.M10, vp.M14},
		{vp.M3, vp.M7, vp.M11, vp.M15},
	}

	var f Frustum
	for axis := 0; axis < 3; axis++ {
		f.planes[axis*2] = planeFrom(rows[3], rows[axis], 1)
		f.planes[axis*2+1] = planeFrom(rows[3], rows[axis], -1)
	}
	return f
}

// planeFrom combines w + sign*row and normalizes the result.
func planeFrom(w, row [4]float32, sign float32) Plane {
	p := Plane{
		normal: rl.Vector3{
			X: w[0] + sign*row[0],
			Y: w[1] + sign*row[1],
			Z: w[2] + sign*row[2],
		},
		distance: w[3] + sign*row[3],
	}
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	p.normal = rl.Vector3Scale(p.normal, 1/length)
	p.distance /= length
	return p
}

func (p Plane) signedDistance(point rl.Vector3) float32 {
	return rl.Vector3DotProduct(p.normal, point) + p.distance
}

// ContainsSphere reports whether any part of the sphere is inside.
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for _, p := range f.planes {
		if p.signedDistance(center) < -radius {
			return false
		}
	}
	return true
}

// ContainsPoint reports whether point is inside every plane.
func (f *Frustum) ContainsPoint(point rl.Vector3) bool {
	for _, p := range f.planes {
		if p.signedDistance(point) < 0 {
			return false
		}
	}
	return true
}
