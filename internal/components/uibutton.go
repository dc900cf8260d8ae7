package components

import (
	"log"

	"vrgaze/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ButtonState tracks the current visual state of a button
type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonHovered
	ButtonPressed
	ButtonDisabled
)

// UIButton is an interactive button element
type UIButton struct {
	engine.BaseComponent

	// Visual colors for each state
	NormalColor   rl.Color
	HoverColor    rl.Color
	PressedColor  rl.Color
	DisabledColor rl.Color

	// Border
	BorderColor rl.Color
	BorderWidth int32

	// Current state
	State    ButtonState
	Disabled bool

	// Fired when the gaze clicks the button
	OnClick engine.Event

	item    *InteractiveItem
	handles [5]engine.ListenerID
}

func NewUIButton() *UIButton {
	return &UIButton{
		NormalColor:   rl.NewColor(60, 60, 70, 255),
		HoverColor:    rl.NewColor(80, 80, 95, 255),
		PressedColor:  rl.NewColor(100, 100, 120, 255),
		DisabledColor: rl.NewColor(40, 40, 45, 255),
		BorderColor:   rl.NewColor(100, 100, 115, 255),
		BorderWidth:   1,
		State:         ButtonNormal,
	}
}

// Draw renders the button background
func (b *UIButton) Draw(rect rl.Rectangle, scale float32) {
	var color rl.Color

	if b.Disabled {
		color = b.DisabledColor
	} else {
		switch b.State {
		case ButtonHovered:
			color = b.HoverColor
		case ButtonPressed:
			color = b.PressedColor
		default:
			color = b.NormalColor
		}
	}

	// Draw background
	rl.DrawRectangleRec(rect, color)

	// Draw border
	if b.BorderWidth > 0 {
		rl.DrawRectangleLinesEx(rect, max(float32(b.BorderWidth)*scale, 1), b.BorderColor)
	}
}

// Start binds the button to the InteractiveItem on the same object,
// adding one if missing, so the gaze drives it.
func (b *UIButton) Start() {
	g := b.GetGameObject()
	if g == nil {
		return
	}
	item := engine.GetComponent[*InteractiveItem](g)
	if item == nil {
		item = NewInteractiveItem()
		g.AddComponent(item)
	}
	b.Bind(item)
}

// Bind subscribes to item's events. A previous binding is released first.
func (b *UIButton) Bind(item *InteractiveItem) {
	b.Unbind()
	b.item = item
	b.handles = [5]engine.ListenerID{
		item.OnEnter.AddListener(b.handleEnter),
		item.OnExit.AddListener(b.handleExit),
		item.OnDown.AddListener(b.handleDown),
		item.OnUp.AddListener(b.handleUp),
		item.OnClick.AddListener(b.handleClick),
	}
}

// Unbind removes the listeners added by Bind.
func (b *UIButton) Unbind() {
	if b.item == nil {
		return
	}
	b.item.OnEnter.RemoveListener(b.handles[0])
	b.item.OnExit.RemoveListener(b.handles[1])
	b.item.OnDown.RemoveListener(b.handles[2])
	b.item.OnUp.RemoveListener(b.handles[3])
	b.item.OnClick.RemoveListener(b.handles[4])
	b.item = nil
	b.handles = [5]engine.ListenerID{}
}

func (b *UIButton) handleEnter() {
	if b.Disabled {
		b.State = ButtonDisabled
		return
	}
	b.State = ButtonHovered
	if g := b.GetGameObject(); g != nil {
		log.Printf("UI: gaze over %s", g.Name)
	}
}

func (b *UIButton) handleExit() {
	if b.Disabled {
		b.State = ButtonDisabled
		return
	}
	b.State = ButtonNormal
}

func (b *UIButton) handleDown() {
	if b.Disabled {
		return
	}
	b.State = ButtonPressed
}

func (b *UIButton) handleUp() {
	if b.Disabled {
		return
	}
	if b.item != nil && b.item.IsOver() {
		b.State = ButtonHovered
	} else {
		b.State = ButtonNormal
	}
}

func (b *UIButton) handleClick() {
	if b.Disabled {
		return
	}
	b.OnClick.Invoke()
}

// Serialization
func (b *UIButton) TypeName() string { return "UIButton" }

func (b *UIButton) Serialize() map[string]any {
	return map[string]any{
		"normalColor":   colorToSlice(b.NormalColor),
		"hoverColor":    colorToSlice(b.HoverColor),
		"pressedColor":  colorToSlice(b.PressedColor),
		"disabledColor": colorToSlice(b.DisabledColor),
		"borderColor":   colorToSlice(b.BorderColor),
		"borderWidth":   b.BorderWidth,
		"disabled":      b.Disabled,
	}
}

func (b *UIButton) Deserialize(data map[string]any) {
	if c, ok := colorFromData(data["normalColor"]); ok {
		b.NormalColor = c
	}
	if c, ok := colorFromData(data["hoverColor"]); ok {
		b.HoverColor = c
	}
	if c, ok := colorFromData(data["pressedColor"]); ok {
		b.PressedColor = c
	}
	if c, ok := colorFromData(data["disabledColor"]); ok {
		b.DisabledColor = c
	}
	if c, ok := colorFromData(data["borderColor"]); ok {
		b.BorderColor = c
	}
	if v, ok := data["borderWidth"].(float64); ok {
		b.BorderWidth = int32(v)
	}
	if v, ok := data["disabled"].(bool); ok {
		b.Disabled = v
	}
}

func init() {
	engine.RegisterComponent("UIButton", func() engine.Serializable {
		return NewUIButton()
	})
}
