package components

import (
	"vrgaze/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// UICanvas is the root container for UI elements.
// Attach to a GameObject and add UI element children.
// The canvas handles layout, drawing order and hit testing.
//
// A screen-space canvas covers the whole window and reports PlaneDistance as
// the hit depth. A world-space canvas is centered on its object's projected
// position and sized Size pixels when PlaneDistance away, shrinking with
// distance. Give a world-space canvas object a BoxCollider so the canvas
// itself blocks the world ray.
//
// The frame is always an upright, screen-aligned rectangle. The object's
// rotation is not applied to it, so a tilted canvas's collider and its frame
// only roughly agree; past 60 degrees from the line of sight the canvas is
// not framed at all.
type UICanvas struct {
	engine.BaseComponent

	SortOrder     int     // Higher values render on top
	PlaneDistance float32 // Distance from the eye to the canvas plane
	Curved        bool
	WorldSpace    bool
	Size          rl.Vector2
}

func NewUICanvas() *UICanvas {
	return &UICanvas{
		SortOrder:     0,
		PlaneDistance: 2,
		Size:          rl.Vector2{X: 400, Y: 300},
	}
}

// Frame is where a canvas lands on screen for one frame. Scale converts the
// canvas's pixel units to screen pixels; zero means 1.
type Frame struct {
	Rect  rl.Rectangle
	Depth float32
	Scale float32
}

func (f Frame) scale() float32 {
	if f.Scale <= 0 {
		return 1
	}
	return f.Scale
}

// IsCurved implements gaze.CurvedSurface.
func (c *UICanvas) IsCurved() bool {
	return c.Curved
}

// Draw renders all UI elements under this canvas
func (c *UICanvas) Draw(frame Frame) {
	scale := frame.scale()
	c.walk(c.GetGameObject(), frame.Rect, scale, func(g *engine.GameObject, rect rl.Rectangle) {
		drawUIElement(g, rect, scale)
	})
}

// RaycastAll returns the graphics under point, topmost first.
func (c *UICanvas) RaycastAll(point rl.Vector2, frame Frame) []engine.SurfaceResult {
	var hits []engine.SurfaceResult
	c.walk(c.GetGameObject(), frame.Rect, frame.scale(), func(g *engine.GameObject, _ rl.Rectangle) {
		if g == c.GetGameObject() || !isGraphic(g) {
			return
		}
		// isGraphic guarantees a RectTransform, laid out by walk
		if !engine.GetComponent[*RectTransform](g).ContainsPoint(point) {
			return
		}
		hits = append(hits, engine.SurfaceResult{
			GameObject:     g,
			ScreenPosition: point,
			Distance:       frame.Depth,
		})
	})
	// Later elements draw over earlier ones
	for i, j := 0, len(hits)-1; i < j; i, j = i+1, j-1 {
		hits[i], hits[j] = hits[j], hits[i]
	}
	return hits
}

// walk visits active elements in draw order with their computed rects.
func (c *UICanvas) walk(g *engine.GameObject, parentRect rl.Rectangle, scale float32, visit func(*engine.GameObject, rl.Rectangle)) {
	if g == nil || !g.Active {
		return
	}

	currentRect := parentRect
	if rt := engine.GetComponent[*RectTransform](g); rt != nil {
		rt.CalculateRect(parentRect, scale)
		currentRect = rt.GetScreenRect()
	}

	visit(g, currentRect)

	for _, child := range g.Children {
		c.walk(child, currentRect, scale, visit)
	}
}

// drawUIElement draws any UI components on one object
func drawUIElement(g *engine.GameObject, rect rl.Rectangle, scale float32) {
	if panel := engine.GetComponent[*UIPanel](g); panel != nil {
		panel.Draw(rect, scale)
	}
	if btn := engine.GetComponent[*UIButton](g); btn != nil {
		btn.Draw(rect, scale)
	}
	if field := engine.GetComponent[*UIInputField](g); field != nil {
		field.Draw(rect, scale)
	}
	if text := engine.GetComponent[*UIText](g); text != nil {
		text.Draw(rect, scale)
	}
}

// scaledFont keeps text readable on far canvases.
func scaledFont(size int32, scale float32) int32 {
	return max(int32(float32(size)*scale+0.5), 6)
}

func isGraphic(g *engine.GameObject) bool {
	if engine.GetComponent[*RectTransform](g) == nil {
		return false
	}
	return engine.GetComponent[*UIPanel](g) != nil ||
		engine.GetComponent[*UIButton](g) != nil ||
		engine.GetComponent[*UIInputField](g) != nil ||
		engine.GetComponent[*UIText](g) != nil
}

func rectContains(r rl.Rectangle, p rl.Vector2) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Serialization
func (c *UICanvas) TypeName() string { return "UICanvas" }

func (c *UICanvas) Serialize() map[string]any {
	return map[string]any{
		"sortOrder":     c.SortOrder,
		"planeDistance": c.PlaneDistance,
		"curved":        c.Curved,
		"worldSpace":    c.WorldSpace,
		"size":          []float32{c.Size.X, c.Size.Y},
	}
}

func (c *UICanvas) Deserialize(data map[string]any) {
	if v, ok := data["sortOrder"].(float64); ok {
		c.SortOrder = int(v)
	}
	if v, ok := data["planeDistance"].(float64); ok {
		c.PlaneDistance = float32(v)
	}
	if v, ok := data["curved"].(bool); ok {
		c.Curved = v
	}
	if v, ok := data["worldSpace"].(bool); ok {
		c.WorldSpace = v
	}
	if v, ok := vec2FromData(data["size"]); ok {
		c.Size = v
	}
}

func init() {
	engine.RegisterComponent("UICanvas", func() engine.Serializable {
		return NewUICanvas()
	})
}
