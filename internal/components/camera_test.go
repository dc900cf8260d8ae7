package components

import (
	"testing"

	"vrgaze/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func assertVec3(t *testing.T, want, got rl.Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-3)
	assert.InDelta(t, want.Y, got.Y, 1e-3)
	assert.InDelta(t, want.Z, got.Z, 1e-3)
}

// newEye builds a head-tracked camera at the origin looking down -Z.
func newEye() (*engine.GameObject, *HeadPose, *Camera) {
	g := engine.NewGameObject("Eye")
	hp := NewHeadPose()
	hp.MouseLook = false
	cam := NewCamera()
	cam.Viewport = rl.Vector2{X: 1280, Y: 720}
	g.AddComponent(hp)
	g.AddComponent(cam)
	return g, hp, cam
}

func TestGazeRayFollowsHeadPose(t *testing.T) {
	_, hp, cam := newEye()

	origin, forward := cam.GazeRay()
	assertVec3(t, rl.Vector3{Y: 1.7}, origin)
	assertVec3(t, rl.Vector3{Z: -1}, forward)

	hp.Look(900, 0)
	_, forward = cam.GazeRay()
	assertVec3(t, rl.Vector3{X: 1}, forward)

	hp.Look(0, -10000)
	assert.Equal(t, float32(89), hp.Pitch, "pitch is clamped")
}

func TestGazeRayWithoutHeadPose(t *testing.T) {
	g := engine.NewGameObject("Fixed")
	g.Transform.Position = rl.Vector3{X: 1, Y: 2, Z: 3}
	g.Transform.Rotation = rl.Vector3{Y: 90}
	cam := NewCamera()
	g.AddComponent(cam)

	origin, forward := cam.GazeRay()
	assertVec3(t, g.Transform.Position, origin)
	assertVec3(t, g.Forward(), forward)
}

func TestWorldToScreen(t *testing.T) {
	_, _, cam := newEye()

	center := cam.WorldToScreen(rl.Vector3{Y: 1.7, Z: -5})
	assert.InDelta(t, 640, center.X, 1e-3)
	assert.InDelta(t, 360, center.Y, 1e-3)

	right := cam.WorldToScreen(rl.Vector3{X: 1, Y: 1.7, Z: -5})
	assert.Greater(t, right.X, float32(640))
	up := cam.WorldToScreen(rl.Vector3{Y: 2.7, Z: -5})
	assert.Less(t, up.Y, float32(360), "screen Y grows downward")

	assert.Equal(t, rl.Vector2{X: -1, Y: -1}, cam.WorldToScreen(rl.Vector3{Y: 1.7, Z: 5}))
}

func TestScreenToWorldRoundTrip(t *testing.T) {
	_, hp, cam := newEye()
	hp.Look(120, 40)

	for _, p := range []rl.Vector3{
		{X: 1, Y: 2, Z: -4},
		{X: -2, Y: 1, Z: -8},
		{X: 0.5, Y: 1.9, Z: -2},
	} {
		depth := cam.Depth(p)
		if depth <= 0 {
			continue
		}
		s := cam.WorldToScreen(p)
		assertVec3(t, p, cam.ScreenToWorld(s, depth))
	}
}

func TestDepthAlongForward(t *testing.T) {
	_, _, cam := newEye()
	assert.InDelta(t, 3, cam.Depth(rl.Vector3{X: 2, Y: 0, Z: -3}), 1e-5)
	assert.Less(t, cam.Depth(rl.Vector3{Y: 1.7, Z: 1}), float32(0))
}
