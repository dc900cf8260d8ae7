package physics

import (
	"math"

	"vrgaze/internal/components"
	"vrgaze/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Raycast returns the closest collider hit along the ray within maxDistance.
// Objects inactive in the hierarchy or on a layer in exclude are skipped.
// Implements gaze.WorldHitTester.
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32, exclude engine.LayerMask) (engine.RaycastResult, bool) {
	if rl.Vector3LengthSqr(direction) == 0 || maxDistance <= 0 {
		return engine.RaycastResult{}, false
	}
	direction = rl.Vector3Normalize(direction)

	var closest engine.RaycastResult
	closest.Distance = maxDistance
	hit := false

	for _, obj := range w.Objects {
		if !obj.ActiveInHierarchy() || exclude.Contains(obj.Layer) {
			continue
		}
		if box := engine.GetComponent[*components.BoxCollider](obj); box != nil {
			if res, ok := raycastBox(origin, direction, box, closest.Distance); ok && (!hit || res.Distance < closest.Distance) {
				closest = res
				closest.GameObject = obj
				hit = true
			}
		}
		if sphere := engine.GetComponent[*components.SphereCollider](obj); sphere != nil {
			if res, ok := raycastSphere(origin, direction, sphere, closest.Distance); ok && (!hit || res.Distance < closest.Distance) {
				closest = res
				closest.GameObject = obj
				hit = true
			}
		}
	}

	return closest, hit
}

func raycastBox(origin, direction rl.Vector3, box *components.BoxCollider, maxDistance float32) (engine.RaycastResult, bool) {
	g := box.GetGameObject()
	obb := NewOBBFromBox(box.GetCenter(), box.Size, g.WorldRotation(), g.WorldScale())

	t, normal, ok := obb.IntersectRay(origin, direction, maxDistance)
	if !ok {
		return engine.RaycastResult{}, false
	}
	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	return engine.RaycastResult{Point: point, Normal: normal, Distance: t}, true
}

func raycastSphere(origin, direction rl.Vector3, sphere *components.SphereCollider, maxDistance float32) (engine.RaycastResult, bool) {
	center := sphere.GetCenter()
	radius := sphere.GetWorldRadius()

	oc := rl.Vector3Subtract(origin, center)
	a := rl.Vector3DotProduct(direction, direction)
	b := 2.0 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return engine.RaycastResult{}, false
	}

	t := (-b - float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	if t < 0 {
		t = (-b + float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	}
	if t < 0 || t > maxDistance {
		return engine.RaycastResult{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))

	return engine.RaycastResult{Point: point, Normal: normal, Distance: t}, true
}
