package components

import (
	"vrgaze/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type SphereCollider struct {
	engine.BaseComponent
	Radius float32
	Offset rl.Vector3
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{
		Radius: radius,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (s *SphereCollider) GetCenter() rl.Vector3 {
	g := s.GetGameObject()
	if g == nil {
		return s.Offset
	}
	return rl.Vector3Add(g.WorldPosition(), s.Offset)
}

// GetWorldRadius scales Radius by the largest world scale axis
func (s *SphereCollider) GetWorldRadius() float32 {
	g := s.GetGameObject()
	if g == nil {
		return s.Radius
	}
	sc := g.WorldScale()
	m := max(absf(sc.X), absf(sc.Y), absf(sc.Z))
	return s.Radius * m
}

func (s *SphereCollider) TypeName() string { return "SphereCollider" }

func (s *SphereCollider) Serialize() map[string]any {
	return map[string]any{
		"radius": s.Radius,
		"offset": vec3ToSlice(s.Offset),
	}
}

func (s *SphereCollider) Deserialize(data map[string]any) {
	if v, ok := data["radius"].(float64); ok {
		s.Radius = float32(v)
	}
	if v, ok := vec3FromData(data["offset"]); ok {
		s.Offset = v
	}
}

func init() {
	engine.RegisterComponent("SphereCollider", func() engine.Serializable {
		return NewSphereCollider(0.5)
	})
}
