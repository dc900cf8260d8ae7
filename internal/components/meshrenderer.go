package components

import (
	"log"

	"vrgaze/internal/assets"
	"vrgaze/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
	MeshPlane
)

type MeshRenderer struct {
	engine.BaseComponent
	MeshType MeshType
	Color    rl.Color
	Size     rl.Vector3

	// Material is the file Color and Highlight came from, if any.
	Material  string
	Highlight rl.Color
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Color:    color,
		Size:     size,
	}
}

var meshTypeNames = map[string]MeshType{
	"cube":   MeshCube,
	"sphere": MeshSphere,
	"plane":  MeshPlane,
}

func (t MeshType) String() string {
	for name, v := range meshTypeNames {
		if v == t {
			return name
		}
	}
	return "unknown"
}

// Draw must be called inside BeginMode3D.
func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.ActiveInHierarchy() {
		return
	}

	pos := g.WorldPosition()
	scale := g.WorldScale()
	size := rl.Vector3{X: m.Size.X * scale.X, Y: m.Size.Y * scale.Y, Z: m.Size.Z * scale.Z}

	switch m.MeshType {
	case MeshCube:
		rl.DrawCubeV(pos, size, m.Color)
		rl.DrawCubeWiresV(pos, size, rl.Fade(rl.Black, 0.4))
	case MeshSphere:
		rl.DrawSphere(pos, size.X, m.Color)
	case MeshPlane:
		rl.DrawPlane(pos, rl.Vector2{X: size.X, Y: size.Z}, m.Color)
	}
}

func (m *MeshRenderer) TypeName() string { return "MeshRenderer" }

func (m *MeshRenderer) Serialize() map[string]any {
	data := map[string]any{
		"mesh": m.MeshType.String(),
		"size": vec3ToSlice(m.Size),
	}
	if m.Material != "" {
		data["material"] = m.Material
	} else {
		data["color"] = colorToSlice(m.Color)
	}
	return data
}

func (m *MeshRenderer) Deserialize(data map[string]any) {
	if v, ok := data["mesh"].(string); ok {
		if t, ok := meshTypeNames[v]; ok {
			m.MeshType = t
		}
	}
	if c, ok := colorFromData(data["color"]); ok {
		m.Color = c
	}
	if v, ok := vec3FromData(data["size"]); ok {
		m.Size = v
	}
	if path, ok := data["material"].(string); ok && path != "" {
		mat, err := assets.LoadMaterial(path)
		if err != nil {
			log.Printf("MeshRenderer: %v", err)
			return
		}
		m.Material = path
		m.Color = mat.Color
		m.Highlight = mat.Highlight
	}
}

func init() {
	engine.RegisterComponent("MeshRenderer", func() engine.Serializable {
		return NewMeshRenderer(MeshCube, rl.LightGray, rl.Vector3{X: 1, Y: 1, Z: 1})
	})
}
