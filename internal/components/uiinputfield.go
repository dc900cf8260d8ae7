package components

import (
	"unicode/utf8"

	"vrgaze/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// UIInputField is a single-line text box edited through its helper methods,
// typically from on-screen keyboard buttons.
type UIInputField struct {
	engine.BaseComponent

	Text           string
	Placeholder    string
	CharacterLimit int // 0 = unlimited
	FontSize       int32
	TextColor      rl.Color
	Background     rl.Color

	OnValueChanged engine.EventWithArg[string]
}

func NewUIInputField() *UIInputField {
	return &UIInputField{
		Placeholder: "Enter text...",
		FontSize:    20,
		TextColor:   rl.White,
		Background:  rl.NewColor(20, 20, 28, 230),
	}
}

func (f *UIInputField) setText(text string) {
	if f.CharacterLimit > 0 && utf8.RuneCountInString(text) > f.CharacterLimit {
		runes := []rune(text)
		text = string(runes[:f.CharacterLimit])
	}
	if text == f.Text {
		return
	}
	f.Text = text
	f.OnValueChanged.Invoke(text)
}

// AppendText adds text to the end of the field.
func (f *UIInputField) AppendText(text string) {
	f.setText(f.Text + text)
}

// AppendUIText adds the contents of a text element. Nil is ignored.
func (f *UIInputField) AppendUIText(t *UIText) {
	if t == nil {
		return
	}
	f.AppendText(t.Text)
}

// RemoveLastCharacter deletes the final rune. Empty fields are left alone.
func (f *UIInputField) RemoveLastCharacter() {
	if f.Text == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(f.Text)
	f.setText(f.Text[:len(f.Text)-size])
}

// Clear empties the field.
func (f *UIInputField) Clear() {
	f.setText("")
}

// Draw renders the field background and its text or placeholder
func (f *UIInputField) Draw(rect rl.Rectangle, scale float32) {
	rl.DrawRectangleRec(rect, f.Background)
	rl.DrawRectangleLinesEx(rect, 1, rl.Gray)

	text, color := f.Text, f.TextColor
	if text == "" {
		text, color = f.Placeholder, rl.Gray
	}
	size := scaledFont(f.FontSize, scale)
	y := rect.Y + (rect.Height-float32(size))/2
	rl.DrawText(text, int32(rect.X+8*scale), int32(y), size, color)
}

// Serialization
func (f *UIInputField) TypeName() string { return "UIInputField" }

func (f *UIInputField) Serialize() map[string]any {
	return map[string]any{
		"text":           f.Text,
		"placeholder":    f.Placeholder,
		"characterLimit": f.CharacterLimit,
		"fontSize":       f.FontSize,
		"textColor":      colorToSlice(f.TextColor),
		"background":     colorToSlice(f.Background),
	}
}

func (f *UIInputField) Deserialize(data map[string]any) {
	if v, ok := data["text"].(string); ok {
		f.Text = v
	}
	if v, ok := data["placeholder"].(string); ok {
		f.Placeholder = v
	}
	if v, ok := data["characterLimit"].(float64); ok {
		f.CharacterLimit = int(v)
	}
	if v, ok := data["fontSize"].(float64); ok {
		f.FontSize = int32(v)
	}
	if c, ok := colorFromData(data["textColor"]); ok {
		f.TextColor = c
	}
	if c, ok := colorFromData(data["background"]); ok {
		f.Background = c
	}
}

func init() {
	engine.RegisterComponent("UIInputField", func() engine.Serializable {
		return NewUIInputField()
	})
}
