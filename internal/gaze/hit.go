package gaze

import (
	"vrgaze/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RayHit is one candidate answer to "what is the gaze ray on".
// A negative Distance means nothing was hit.
type RayHit struct {
	Item     Interactive
	Point    rl.Vector3
	Distance float32
	Normal   rl.Vector3
	// Native is the raw world hit, forwarded to OnRaycastHit listeners.
	Native engine.RaycastResult
	// HasHit is set only for world (collider) hits.
	HasHit bool
	Object *engine.GameObject
}

// NoHit returns the "nothing hit" sentinel.
func NoHit() RayHit {
	return RayHit{Distance: -1}
}

// Valid reports whether the hit landed on something.
func (h RayHit) Valid() bool {
	return h.Distance >= 0
}

// SameHit compares target, point, distance, normal and the world-hit flag.
// Native and Object do not take part.
func SameHit(a, b RayHit) bool {
	return a.Item == b.Item &&
		a.Point == b.Point &&
		a.Distance == b.Distance &&
		a.Normal == b.Normal &&
		a.HasHit == b.HasHit
}
