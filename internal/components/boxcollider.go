package components

import (
	"vrgaze/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (b *BoxCollider) GetCenter() rl.Vector3 {
	g := b.GetGameObject()
	if g == nil {
		return b.Offset
	}
	return rl.Vector3Add(g.WorldPosition(), b.Offset)
}

// GetWorldSize returns Size scaled by the object's world scale
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	g := b.GetGameObject()
	if g == nil {
		return b.Size
	}
	s := g.WorldScale()
	return rl.Vector3{X: b.Size.X * s.X, Y: b.Size.Y * s.Y, Z: b.Size.Z * s.Z}
}

func (b *BoxCollider) TypeName() string { return "BoxCollider" }

func (b *BoxCollider) Serialize() map[string]any {
	return map[string]any{
		"size":   vec3ToSlice(b.Size),
		"offset": vec3ToSlice(b.Offset),
	}
}

func (b *BoxCollider) Deserialize(data map[string]any) {
	if v, ok := vec3FromData(data["size"]); ok {
		b.Size = v
	}
	if v, ok := vec3FromData(data["offset"]); ok {
		b.Offset = v
	}
}

func init() {
	engine.RegisterComponent("BoxCollider", func() engine.Serializable {
		return NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1})
	})
}
