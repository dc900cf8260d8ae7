package gaze

import (
	"time"

	"vrgaze/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Interactive is anything the gaze can target.
type Interactive interface {
	Enter()
	Exit()
	Press()
	Release()
	Click()
	DoubleClick()
}

// OriginSource supplies the gaze ray, usually the head camera.
type OriginSource interface {
	GazeRay() (origin, forward rl.Vector3)
}

// WorldHitTester finds the nearest collider along a ray, skipping excluded layers.
type WorldHitTester interface {
	Raycast(origin, direction rl.Vector3, maxDistance float32, exclude engine.LayerMask) (engine.RaycastResult, bool)
}

// SurfaceHitTester lists on-screen graphics under a screen point, nearest
// first. The same object may appear more than once.
type SurfaceHitTester interface {
	RaycastAll(screenPoint rl.Vector2) []engine.SurfaceResult
}

// ScreenProjector converts between world space and screen space for the
// camera the gaze ray comes from.
type ScreenProjector interface {
	WorldToScreen(point rl.Vector3) rl.Vector2
	ScreenToWorld(screenPoint rl.Vector2, depth float32) rl.Vector3
}

// CurvedSurface marks a canvas whose collider can occlude its own children.
type CurvedSurface interface {
	IsCurved() bool
}

type Reticle interface {
	SetPosition(point rl.Vector3, distance float32, normal rl.Vector3)
	SetDefaultPosition()
}

// InputKind is a discrete signal from the input device.
type InputKind int

const (
	InputClick InputKind = iota
	InputDoubleClick
	InputDown
	InputUp
	inputKindCount
)

// NumInputKinds is the number of InputKind values.
const NumInputKinds = int(inputKindCount)

func (k InputKind) String() string {
	switch k {
	case InputClick:
		return "click"
	case InputDoubleClick:
		return "double-click"
	case InputDown:
		return "down"
	case InputUp:
		return "up"
	}
	return "unknown"
}

// InputSource publishes discrete input signals.
type InputSource interface {
	Subscribe(kind InputKind, fn func()) engine.ListenerID
	Unsubscribe(kind InputKind, id engine.ListenerID)
}

// DebugSink draws the debug ray. Visualization only.
type DebugSink interface {
	DrawRay(origin, direction rl.Vector3, length float32, color rl.Color, duration time.Duration)
}

// interactiveOf resolves the Interactive capability on a hit object.
func interactiveOf(g *engine.GameObject) Interactive {
	if g == nil {
		return nil
	}
	return engine.FindComponent[Interactive](g)
}
