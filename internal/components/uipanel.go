package components

import (
	"vrgaze/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// UIPanel fills its rect as a backdrop for other elements.
type UIPanel struct {
	engine.BaseComponent

	Color       rl.Color
	BorderColor rl.Color
	BorderWidth int32
	Roundness   float32 // 0 sharp, 1 fully rounded ends
}

func NewUIPanel() *UIPanel {
	return &UIPanel{
		Color:       rl.NewColor(30, 30, 40, 200),
		BorderColor: rl.NewColor(60, 60, 75, 255),
		BorderWidth: 1,
	}
}

// Draw fills rect; the border width follows the canvas scale.
func (p *UIPanel) Draw(rect rl.Rectangle, scale float32) {
	border := float32(0)
	if p.BorderWidth > 0 {
		border = max(float32(p.BorderWidth)*scale, 1)
	}
	if p.Roundness <= 0 {
		rl.DrawRectangleRec(rect, p.Color)
		if border > 0 {
			rl.DrawRectangleLinesEx(rect, border, p.BorderColor)
		}
		return
	}
	roundness := min(p.Roundness, 1)
	rl.DrawRectangleRounded(rect, roundness, 8, p.Color)
	if border > 0 {
		rl.DrawRectangleRoundedLinesEx(rect, roundness, 8, border, p.BorderColor)
	}
}

// Serialization
func (p *UIPanel) TypeName() string { return "UIPanel" }

func (p *UIPanel) Serialize() map[string]any {
	return map[string]any{
		"color":       colorToSlice(p.Color),
		"borderColor": colorToSlice(p.BorderColor),
		"borderWidth": p.BorderWidth,
		"roundness":   p.Roundness,
	}
}

func (p *UIPanel) Deserialize(data map[string]any) {
	if c, ok := colorFromData(data["color"]); ok {
		p.Color = c
	}
	if c, ok := colorFromData(data["borderColor"]); ok {
		p.BorderColor = c
	}
	if v, ok := data["borderWidth"].(float64); ok {
		p.BorderWidth = int32(v)
	}
	if v, ok := data["roundness"].(float64); ok {
		p.Roundness = float32(v)
	}
}

func init() {
	engine.RegisterComponent("UIPanel", func() engine.Serializable {
		return NewUIPanel()
	})
}
