package components

import (
	"vrgaze/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TextAlignment controls horizontal placement inside the rect.
type TextAlignment int

const (
	TextAlignLeft TextAlignment = iota
	TextAlignCenter
	TextAlignRight
)

var alignmentNames = [...]string{"left", "center", "right"}

func (a TextAlignment) String() string {
	if a < 0 || int(a) >= len(alignmentNames) {
		return alignmentNames[0]
	}
	return alignmentNames[a]
}

func parseAlignment(raw any) (TextAlignment, bool) {
	switch v := raw.(type) {
	case string:
		for i, name := range alignmentNames {
			if name == v {
				return TextAlignment(i), true
			}
		}
	case float64:
		if v >= 0 && int(v) < len(alignmentNames) {
			return TextAlignment(v), true
		}
	}
	return TextAlignLeft, false
}

// UIText is a single line label, vertically centered in its rect. Its text
// is also what a keyboard key types into an input field.
type UIText struct {
	engine.BaseComponent

	Text      string
	FontSize  int32
	Color     rl.Color
	Alignment TextAlignment
}

func NewUIText() *UIText {
	return &UIText{
		Text:     "Text",
		FontSize: 20,
		Color:    rl.White,
	}
}

func (t *UIText) Draw(rect rl.Rectangle, scale float32) {
	if t.Text == "" {
		return
	}
	size := scaledFont(t.FontSize, scale)
	width := float32(rl.MeasureText(t.Text, size))

	x := rect.X
	switch t.Alignment {
	case TextAlignCenter:
		x += (rect.Width - width) / 2
	case TextAlignRight:
		x += rect.Width - width
	}
	y := rect.Y + (rect.Height-float32(size))/2

	rl.DrawText(t.Text, int32(x), int32(y), size, t.Color)
}

// Serialization
func (t *UIText) TypeName() string { return "UIText" }

func (t *UIText) Serialize() map[string]any {
	return map[string]any{
		"text":      t.Text,
		"fontSize":  t.FontSize,
		"color":     colorToSlice(t.Color),
		"alignment": t.Alignment.String(),
	}
}

// Deserialize accepts alignment by name or by index.
func (t *UIText) Deserialize(data map[string]any) {
	if v, ok := data["text"].(string); ok {
		t.Text = v
	}
	if v, ok := data["fontSize"].(float64); ok {
		t.FontSize = int32(v)
	}
	if c, ok := colorFromData(data["color"]); ok {
		t.Color = c
	}
	if a, ok := parseAlignment(data["alignment"]); ok {
		t.Alignment = a
	}
}

func init() {
	engine.RegisterComponent("UIText", func() engine.Serializable {
		return NewUIText()
	})
}
