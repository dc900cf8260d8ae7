package scripts

import (
	"log"

	"vrgaze/internal/components"
	"vrgaze/internal/engine"
)

// KeyAction is what a KeyboardKey does to its input field.
type KeyAction string

const (
	KeyAppend    KeyAction = "append"
	KeyBackspace KeyAction = "backspace"
	KeyClear     KeyAction = "clear"
)

// KeyboardKey turns a gazeable UIButton into an on-screen keyboard key that
// edits an input field. Append keys type Text, or the button's own label
// when Text is empty.
type KeyboardKey struct {
	engine.BaseComponent
	Field  engine.GameObjectRef
	Action KeyAction
	Text   string

	field *components.UIInputField
	label *components.UIText
}

func (k *KeyboardKey) Start() {
	g := k.GetGameObject()
	if g == nil {
		return
	}
	if obj := k.Field.Get(g.Scene); obj != nil {
		k.field = engine.GetComponent[*components.UIInputField](obj)
	}
	if k.field == nil {
		log.Printf("KeyboardKey: %s has no input field to edit", g.Name)
		return
	}
	k.label = engine.GetComponent[*components.UIText](g)

	button := engine.GetComponent[*components.UIButton](g)
	if button == nil {
		log.Printf("KeyboardKey: %s has no UIButton", g.Name)
		return
	}
	button.OnClick.AddListener(k.Press)
}

// Press applies the key's action to the field.
func (k *KeyboardKey) Press() {
	if k.field == nil {
		return
	}
	switch k.Action {
	case KeyBackspace:
		k.field.RemoveLastCharacter()
	case KeyClear:
		k.field.Clear()
	default:
		if k.Text != "" {
			k.field.AppendText(k.Text)
		} else {
			k.field.AppendUIText(k.label)
		}
	}
}

func init() {
	engine.RegisterScript("KeyboardKey", keyboardKeyFactory, keyboardKeySerializer)
}

func keyboardKeyFactory(props map[string]any) engine.Component {
	k := &KeyboardKey{
		Field:  engine.RefFromProps(props, "field"),
		Action: KeyAppend,
	}
	if v, ok := props["action"].(string); ok {
		k.Action = KeyAction(v)
	}
	if v, ok := props["text"].(string); ok {
		k.Text = v
	}
	return k
}

func keyboardKeySerializer(c engine.Component) map[string]any {
	k, ok := c.(*KeyboardKey)
	if !ok {
		return nil
	}
	return map[string]any{
		"field":  refProp(k.Field),
		"action": string(k.Action),
		"text":   k.Text,
	}
}
