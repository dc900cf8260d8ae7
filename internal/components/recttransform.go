package components

import (
	"vrgaze/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// AnchorPreset names a common anchor/pivot layout.
type AnchorPreset string

const (
	AnchorTopLeft      AnchorPreset = "topLeft"
	AnchorTopCenter    AnchorPreset = "topCenter"
	AnchorTopRight     AnchorPreset = "topRight"
	AnchorMiddleLeft   AnchorPreset = "middleLeft"
	AnchorMiddleCenter AnchorPreset = "middleCenter"
	AnchorMiddleRight  AnchorPreset = "middleRight"
	AnchorBottomLeft   AnchorPreset = "bottomLeft"
	AnchorBottomCenter AnchorPreset = "bottomCenter"
	AnchorBottomRight  AnchorPreset = "bottomRight"
	AnchorStretch      AnchorPreset = "stretch"
)

// pointAnchors maps the point presets to their anchor, which is also the pivot.
var pointAnchors = map[AnchorPreset]rl.Vector2{
	AnchorTopLeft:      {X: 0, Y: 0},
	AnchorTopCenter:    {X: 0.5, Y: 0},
	AnchorTopRight:     {X: 1, Y: 0},
	AnchorMiddleLeft:   {X: 0, Y: 0.5},
	AnchorMiddleCenter: {X: 0.5, Y: 0.5},
	AnchorMiddleRight:  {X: 1, Y: 0.5},
	AnchorBottomLeft:   {X: 0, Y: 1},
	AnchorBottomCenter: {X: 0.5, Y: 1},
	AnchorBottomRight:  {X: 1, Y: 1},
}

// RectTransform places a UI element inside its parent's rect. Anchors are
// fractions of the parent (Y grows downward). When both anchors coincide the
// element is SizeDelta pixels big around AnchoredPosition; otherwise it spans
// the anchors and SizeDelta grows or shrinks that span. Pixel values are in
// canvas units and multiplied by the frame scale, so world-space canvases
// keep their layout as they recede.
type RectTransform struct {
	engine.BaseComponent

	AnchorMin        rl.Vector2
	AnchorMax        rl.Vector2
	Pivot            rl.Vector2
	AnchoredPosition rl.Vector2
	SizeDelta        rl.Vector2

	screenRect rl.Rectangle
}

func NewRectTransform() *RectTransform {
	rt := &RectTransform{SizeDelta: rl.Vector2{X: 100, Y: 30}}
	rt.SetAnchorPreset(AnchorMiddleCenter)
	return rt
}

// SetAnchorPreset applies preset and reports whether it was known.
func (rt *RectTransform) SetAnchorPreset(preset AnchorPreset) bool {
	if preset == AnchorStretch {
		rt.AnchorMin = rl.Vector2{}
		rt.AnchorMax = rl.Vector2{X: 1, Y: 1}
		rt.Pivot = rl.Vector2{X: 0.5, Y: 0.5}
		return true
	}
	a, ok := pointAnchors[preset]
	if !ok {
		return false
	}
	rt.AnchorMin, rt.AnchorMax, rt.Pivot = a, a, a
	return true
}

// GetScreenRect returns the rect from the last CalculateRect.
func (rt *RectTransform) GetScreenRect() rl.Rectangle {
	return rt.screenRect
}

// CalculateRect lays the element out inside parentRect at the given canvas
// scale.
func (rt *RectTransform) CalculateRect(parentRect rl.Rectangle, scale float32) {
	minX := parentRect.X + parentRect.Width*rt.AnchorMin.X
	minY := parentRect.Y + parentRect.Height*rt.AnchorMin.Y
	maxX := parentRect.X + parentRect.Width*rt.AnchorMax.X
	maxY := parentRect.Y + parentRect.Height*rt.AnchorMax.Y

	offset := rl.Vector2Scale(rt.AnchoredPosition, scale)
	delta := rl.Vector2Scale(rt.SizeDelta, scale)

	if rt.AnchorMin == rt.AnchorMax {
		rt.screenRect = rl.Rectangle{
			X:      minX + offset.X - delta.X*rt.Pivot.X,
			Y:      minY + offset.Y - delta.Y*rt.Pivot.Y,
			Width:  delta.X,
			Height: delta.Y,
		}
		return
	}
	rt.screenRect = rl.Rectangle{
		X:      minX + offset.X,
		Y:      minY + offset.Y,
		Width:  maxX - minX + delta.X,
		Height: maxY - minY + delta.Y,
	}
}

// ContainsPoint checks if a screen point is inside this rect
func (rt *RectTransform) ContainsPoint(point rl.Vector2) bool {
	return rectContains(rt.screenRect, point)
}

// Serialization
func (rt *RectTransform) TypeName() string { return "RectTransform" }

func (rt *RectTransform) Serialize() map[string]any {
	return map[string]any{
		"anchorMin":        []float32{rt.AnchorMin.X, rt.AnchorMin.Y},
		"anchorMax":        []float32{rt.AnchorMax.X, rt.AnchorMax.Y},
		"pivot":            []float32{rt.Pivot.X, rt.Pivot.Y},
		"anchoredPosition": []float32{rt.AnchoredPosition.X, rt.AnchoredPosition.Y},
		"sizeDelta":        []float32{rt.SizeDelta.X, rt.SizeDelta.Y},
	}
}

// Deserialize applies "preset" first so explicit anchors can refine it.
func (rt *RectTransform) Deserialize(data map[string]any) {
	if v, ok := data["preset"].(string); ok {
		rt.SetAnchorPreset(AnchorPreset(v))
	}
	if v, ok := vec2FromData(data["anchorMin"]); ok {
		rt.AnchorMin = v
	}
	if v, ok := vec2FromData(data["anchorMax"]); ok {
		rt.AnchorMax = v
	}
	if v, ok := vec2FromData(data["pivot"]); ok {
		rt.Pivot = v
	}
	if v, ok := vec2FromData(data["anchoredPosition"]); ok {
		rt.AnchoredPosition = v
	}
	if v, ok := vec2FromData(data["sizeDelta"]); ok {
		rt.SizeDelta = v
	}
}

func init() {
	engine.RegisterComponent("RectTransform", func() engine.Serializable {
		return NewRectTransform()
	})
}
