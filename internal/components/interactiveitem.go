package components

import "vrgaze/internal/engine"

func init() {
	engine.RegisterComponent("InteractiveItem", func() engine.Serializable {
		return NewInteractiveItem()
	})
}

// InteractiveItem marks an object the gaze can target and fans the
// resolver's lifecycle calls out to listeners.
type InteractiveItem struct {
	engine.BaseComponent

	OnEnter       engine.Event
	OnExit        engine.Event
	OnDown        engine.Event
	OnUp          engine.Event
	OnClick       engine.Event
	OnDoubleClick engine.Event

	over bool
	down bool
}

func NewInteractiveItem() *InteractiveItem {
	return &InteractiveItem{}
}

// IsOver reports whether the gaze is on this item.
func (i *InteractiveItem) IsOver() bool { return i.over }

// IsDown reports whether the button went down on this item and has not come up.
func (i *InteractiveItem) IsDown() bool { return i.down }

func (i *InteractiveItem) Enter() {
	i.over = true
	i.OnEnter.Invoke()
}

func (i *InteractiveItem) Exit() {
	i.over = false
	i.down = false
	i.OnExit.Invoke()
}

func (i *InteractiveItem) Press() {
	i.down = true
	i.OnDown.Invoke()
}

func (i *InteractiveItem) Release() {
	i.down = false
	i.OnUp.Invoke()
}

func (i *InteractiveItem) Click() {
	i.OnClick.Invoke()
}

func (i *InteractiveItem) DoubleClick() {
	i.OnDoubleClick.Invoke()
}

func (i *InteractiveItem) TypeName() string { return "InteractiveItem" }

func (i *InteractiveItem) Serialize() map[string]any { return map[string]any{} }

func (i *InteractiveItem) Deserialize(data map[string]any) {}
