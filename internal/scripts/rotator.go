package scripts

import (
	"vrgaze/internal/components"
	"vrgaze/internal/engine"
)

// Rotator spins its object around the Y axis in degrees per second. With
// PauseOnGaze it holds still while the gaze rests on the object so it is
// easier to click.
type Rotator struct {
	engine.BaseComponent
	Speed       float32
	PauseOnGaze bool

	item *components.InteractiveItem
}

func (r *Rotator) Start() {
	if g := r.GetGameObject(); g != nil && r.PauseOnGaze {
		r.item = interactiveItem(g)
	}
}

func (r *Rotator) Update(deltaTime float32) {
	g := r.GetGameObject()
	if g == nil || r.Paused() {
		return
	}
	y := g.Transform.Rotation.Y + r.Speed*deltaTime
	for y >= 360 {
		y -= 360
	}
	for y < 0 {
		y += 360
	}
	g.Transform.Rotation.Y = y
}

// Paused reports whether the gaze is currently holding the rotation.
func (r *Rotator) Paused() bool {
	return r.item != nil && r.item.IsOver()
}

func init() {
	engine.RegisterScript("Rotator", rotatorFactory, rotatorSerializer)
}

func rotatorFactory(props map[string]any) engine.Component {
	r := &Rotator{Speed: 90}
	if v, ok := props["speed"].(float64); ok {
		r.Speed = float32(v)
	}
	if v, ok := props["pauseOnGaze"].(bool); ok {
		r.PauseOnGaze = v
	}
	return r
}

func rotatorSerializer(c engine.Component) map[string]any {
	r, ok := c.(*Rotator)
	if !ok {
		return nil
	}
	return map[string]any{
		"speed":       r.Speed,
		"pauseOnGaze": r.PauseOnGaze,
	}
}
