package physics

import (
	"testing"

	"vrgaze/internal/components"
	"vrgaze/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boxAt(name string, pos rl.Vector3, size float32) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	g.AddComponent(components.NewBoxCollider(rl.Vector3{X: size, Y: size, Z: size}))
	return g
}

func sphereAt(name string, pos rl.Vector3, radius float32) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	g.AddComponent(components.NewSphereCollider(radius))
	return g
}

var (
	eye     = rl.Vector3{}
	forward = rl.Vector3{Z: -1}
)

func TestRaycastClosestWins(t *testing.T) {
	w := NewWorld()
	far := boxAt("Far", rl.Vector3{Z: -10}, 1)
	near := boxAt("Near", rl.Vector3{Z: -5}, 1)
	w.AddObject(far)
	w.AddObject(near)

	res, ok := w.Raycast(eye, forward, 100, engine.NothingMask)
	require.True(t, ok)
	assert.Same(t, near, res.GameObject)
	assert.InDelta(t, 4.5, res.Distance, 1e-5)
	assertVec(t, rl.Vector3{Z: -4.5}, res.Point)
	assertVec(t, rl.Vector3{Z: 1}, res.Normal)
}

func TestRaycastSphere(t *testing.T) {
	w := NewWorld()
	ball := sphereAt("Ball", rl.Vector3{Z: -6}, 1)
	ball.Transform.Scale = rl.Vector3{X: 1, Y: 2, Z: 1}
	w.AddObject(ball)

	res, ok := w.Raycast(eye, rl.Vector3{Z: -3}, 100, engine.NothingMask)
	require.True(t, ok, "direction is normalized")
	assert.Same(t, ball, res.GameObject)
	assert.InDelta(t, 4, res.Distance, 1e-4, "radius scales with the largest axis")
	assertVec(t, rl.Vector3{Z: 1}, res.Normal)
}

func TestRaycastFilters(t *testing.T) {
	w := NewWorld()
	ghost := boxAt("Ghost", rl.Vector3{Z: -2}, 1)
	ghost.Layer = engine.LayerIgnoreRaycast
	hidden := boxAt("Hidden", rl.Vector3{Z: -3}, 1)
	hidden.Active = false
	wall := boxAt("Wall", rl.Vector3{Z: -8}, 1)
	w.AddObject(ghost)
	w.AddObject(hidden)
	w.AddObject(wall)

	res, ok := w.Raycast(eye, forward, 100, engine.MaskOf(engine.LayerIgnoreRaycast))
	require.True(t, ok)
	assert.Same(t, wall, res.GameObject)

	res, ok = w.Raycast(eye, forward, 100, engine.NothingMask)
	require.True(t, ok)
	assert.Same(t, ghost, res.GameObject)

	_, ok = w.Raycast(eye, forward, 7, engine.MaskOf(engine.LayerIgnoreRaycast))
	assert.False(t, ok, "wall is beyond the ray length")
}

func TestRaycastDegenerateInput(t *testing.T) {
	w := NewWorld()
	w.AddObject(boxAt("Box", rl.Vector3{Z: -2}, 1))

	_, ok := w.Raycast(eye, rl.Vector3{}, 100, engine.NothingMask)
	assert.False(t, ok)
	_, ok = w.Raycast(eye, forward, 0, engine.NothingMask)
	assert.False(t, ok)
	_, ok = NewWorld().Raycast(eye, forward, 100, engine.NothingMask)
	assert.False(t, ok)
}

func TestRaycastChildCollider(t *testing.T) {
	w := NewWorld()
	parent := engine.NewGameObject("Parent")
	parent.Transform.Position = rl.Vector3{Z: -4}
	child := boxAt("Child", rl.Vector3{X: 2}, 1)
	parent.AddChild(child)
	w.AddObject(parent)

	require.Len(t, w.Objects, 1, "objects without colliders are not registered")

	res, ok := w.Raycast(eye, rl.Vector3Normalize(rl.Vector3{X: 2, Z: -4}), 100, engine.NothingMask)
	require.True(t, ok)
	assert.Same(t, child, res.GameObject)
}

func TestWorldMembership(t *testing.T) {
	w := NewWorld()
	root := boxAt("Root", rl.Vector3{Z: -4}, 1)
	root.AddChild(sphereAt("Kid", rl.Vector3{Y: 2}, 0.5))

	w.AddObject(root)
	w.AddObject(root)
	assert.Len(t, w.Objects, 2, "adding twice is a no-op")

	w.RemoveObject(root)
	assert.Empty(t, w.Objects)
	_, ok := w.Raycast(eye, forward, 100, engine.NothingMask)
	assert.False(t, ok)

	s := engine.NewScene("Test")
	s.AddGameObject(root)
	w.AddScene(s)
	assert.Len(t, w.Objects, 2)
}
