package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// RaycastResult holds information about a raycast hit.
// Defined here to avoid circular imports with physics package.
type RaycastResult struct {
	GameObject *GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// SurfaceResult is one on-screen graphic under a screen point.
// Distance is measured from the camera to the canvas plane.
type SurfaceResult struct {
	GameObject     *GameObject
	ScreenPosition rl.Vector2
	Distance       float32
}
