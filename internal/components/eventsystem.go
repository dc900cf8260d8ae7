package components

import (
	"cmp"
	"slices"

	"vrgaze/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// EventSystem hit-tests every registered canvas at a screen point.
// It implements gaze.SurfaceHitTester.
type EventSystem struct {
	Screen rl.Rectangle
	// Eye places world-space canvases. Without it they are skipped.
	Eye *Camera

	canvases []*UICanvas
}

func NewEventSystem(width, height float32) *EventSystem {
	return &EventSystem{Screen: rl.Rectangle{Width: width, Height: height}}
}

// AddCanvas registers a canvas. Duplicates are ignored.
func (e *EventSystem) AddCanvas(c *UICanvas) {
	if c == nil || slices.Contains(e.canvases, c) {
		return
	}
	e.canvases = append(e.canvases, c)
	e.sort()
}

// AddScene registers every canvas in the scene.
func (e *EventSystem) AddScene(s *engine.Scene) {
	s.Walk(func(g *engine.GameObject) bool {
		if c := engine.GetComponent[*UICanvas](g); c != nil {
			e.AddCanvas(c)
		}
		return true
	})
}

// Canvases returns the canvases in draw order.
func (e *EventSystem) Canvases() []*UICanvas {
	return e.canvases
}

func (e *EventSystem) sort() {
	slices.SortStableFunc(e.canvases, func(a, b *UICanvas) int {
		return a.SortOrder - b.SortOrder
	})
}

// RaycastAll returns graphics under point, topmost first.
func (e *EventSystem) RaycastAll(point rl.Vector2) []engine.SurfaceResult {
	var out []engine.SurfaceResult
	for _, v := range e.visible() {
		out = append(out, v.canvas.RaycastAll(point, v.frame)...)
	}
	return out
}

type framedCanvas struct {
	canvas *UICanvas
	frame  Frame
}

// visible returns this frame's canvases topmost first: higher SortOrder
// first, then nearer, then later registered.
func (e *EventSystem) visible() []framedCanvas {
	out := make([]framedCanvas, 0, len(e.canvases))
	for i := len(e.canvases) - 1; i >= 0; i-- {
		if frame, ok := e.Frame(e.canvases[i]); ok {
			out = append(out, framedCanvas{e.canvases[i], frame})
		}
	}
	slices.SortStableFunc(out, func(a, b framedCanvas) int {
		if a.canvas.SortOrder != b.canvas.SortOrder {
			return b.canvas.SortOrder - a.canvas.SortOrder
		}
		return cmp.Compare(a.frame.Depth, b.frame.Depth)
	})
	return out
}

// minCanvasFacing is the cosine of the widest angle between a world-space
// canvas's forward axis and the line of sight at which it is still framed.
const minCanvasFacing = 0.5

// Frame reports where c lands on screen this frame. ok is false for inactive
// canvases and for world-space canvases that are behind the eye or turned
// more than 60 degrees away from it.
func (e *EventSystem) Frame(c *UICanvas) (Frame, bool) {
	g := c.GetGameObject()
	if g == nil || !g.ActiveInHierarchy() {
		return Frame{}, false
	}
	if !c.WorldSpace {
		return Frame{Rect: e.Screen, Depth: c.PlaneDistance, Scale: 1}, true
	}
	if e.Eye == nil {
		return Frame{}, false
	}

	center := g.WorldPosition()
	depth := e.Eye.Depth(center)
	if depth <= e.Eye.Near {
		return Frame{}, false
	}
	origin, _ := e.Eye.GazeRay()
	sight := rl.Vector3Normalize(rl.Vector3Subtract(center, origin))
	if rl.Vector3DotProduct(g.Forward(), sight) < minCanvasFacing {
		return Frame{}, false
	}
	p := e.Eye.WorldToScreen(center)
	scale := c.PlaneDistance / depth
	w, h := c.Size.X*scale, c.Size.Y*scale
	return Frame{
		Rect:  rl.Rectangle{X: p.X - w/2, Y: p.Y - h/2, Width: w, Height: h},
		Depth: depth,
		Scale: scale,
	}, true
}

// Draw renders canvases bottom first, the reverse of hit-test order.
func (e *EventSystem) Draw() {
	visible := e.visible()
	for i := len(visible) - 1; i >= 0; i-- {
		visible[i].canvas.Draw(visible[i].frame)
	}
}
