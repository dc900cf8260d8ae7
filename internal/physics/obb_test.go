package physics

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func assertVec(t *testing.T, want, got rl.Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-4)
	assert.InDelta(t, want.Y, got.Y, 1e-4)
	assert.InDelta(t, want.Z, got.Z, 1e-4)
}

func TestIntersectRayAxisAligned(t *testing.T) {
	box := NewAABBasOBB(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})

	d, n, ok := box.IntersectRay(rl.Vector3{Z: 5}, rl.Vector3{Z: -1}, 100)
	assert.True(t, ok)
	assert.InDelta(t, 4, d, 1e-5)
	assertVec(t, rl.Vector3{Z: 1}, n)

	d, n, ok = box.IntersectRay(rl.Vector3{X: -5, Y: 0.5}, rl.Vector3{X: 1}, 100)
	assert.True(t, ok)
	assert.InDelta(t, 4, d, 1e-5)
	assertVec(t, rl.Vector3{X: -1}, n)
}

func TestIntersectRayMisses(t *testing.T) {
	box := NewAABBasOBB(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})

	_, _, ok := box.IntersectRay(rl.Vector3{X: 3, Z: 5}, rl.Vector3{Z: -1}, 100)
	assert.False(t, ok, "parallel ray outside the slab")

	_, _, ok = box.IntersectRay(rl.Vector3{Z: 5}, rl.Vector3{Z: 1}, 100)
	assert.False(t, ok, "box behind the origin")

	_, _, ok = box.IntersectRay(rl.Vector3{Z: 5}, rl.Vector3{Z: -1}, 3.9)
	assert.False(t, ok, "beyond max distance")
}

func TestIntersectRayFromInside(t *testing.T) {
	box := NewAABBasOBB(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})

	d, n, ok := box.IntersectRay(rl.Vector3{}, rl.Vector3{X: 1}, 100)
	assert.True(t, ok)
	assert.InDelta(t, 1, d, 1e-5)
	assertVec(t, rl.Vector3{X: 1}, n)
}

func TestIntersectRayRotated(t *testing.T) {
	// A long thin box turned to lie along Z
	box := NewOBB(rl.Vector3{}, rl.Vector3{X: 4, Y: 1, Z: 1}, rl.Vector3{Y: 90})

	d, n, ok := box.IntersectRay(rl.Vector3{Z: 10}, rl.Vector3{Z: -1}, 100)
	assert.True(t, ok)
	assert.InDelta(t, 8, d, 1e-4)
	assert.InDelta(t, 1, n.Z, 1e-4)

	_, _, ok = box.IntersectRay(rl.Vector3{X: 1.5, Z: 10}, rl.Vector3{Z: -1}, 100)
	assert.False(t, ok, "the long axis no longer spans X")

	diag := NewOBB(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2}, rl.Vector3{Y: 45})
	d, _, ok = diag.IntersectRay(rl.Vector3{Z: 5}, rl.Vector3{Z: -1}, 100)
	assert.True(t, ok)
	assert.InDelta(t, 5-math.Sqrt2, d, 1e-4, "edge of a cube turned 45 degrees")
}

func TestNewOBBFromBoxScales(t *testing.T) {
	box := NewOBBFromBox(rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1}, rl.Vector3{}, rl.Vector3{X: 2, Y: -4, Z: 1})
	assertVec(t, rl.Vector3{X: 1, Y: 2, Z: 0.5}, box.HalfSize)
}
