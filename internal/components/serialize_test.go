package components

import (
	"encoding/json"
	"testing"

	"vrgaze/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// viaJSON rebuilds c the way a scene file load would.
func viaJSON(t *testing.T, c engine.Serializable) engine.Serializable {
	t.Helper()
	raw, err := json.Marshal(c.Serialize())
	require.NoError(t, err)
	var data map[string]any
	require.NoError(t, json.Unmarshal(raw, &data))
	out := engine.CreateComponent(c.TypeName(), data)
	require.NotNil(t, out, c.TypeName())
	return out
}

func TestComponentsSurviveSceneFiles(t *testing.T) {
	canvas := NewUICanvas()
	canvas.SortOrder = 3
	canvas.Curved = true
	canvas.WorldSpace = true
	canvas.Size = rl.Vector2{X: 320, Y: 200}
	assert.Equal(t, canvas, viaJSON(t, canvas))

	reticle := NewReticle()
	reticle.DefaultDistance = 7
	reticle.UseNormal = false
	reticle.Color = rl.NewColor(10, 20, 30, 40)
	got := viaJSON(t, reticle).(*Reticle)
	assert.Equal(t, float32(7), got.DefaultDistance)
	assert.False(t, got.UseNormal)
	assert.Equal(t, reticle.Color, got.Color, "colors are written as arrays")

	box := NewBoxCollider(rl.Vector3{X: 1, Y: 2, Z: 3})
	box.Offset = rl.Vector3{Y: 0.5}
	assert.Equal(t, box, viaJSON(t, box))

	hp := NewHeadPose()
	hp.EyeHeight = 1.2
	hp.MouseLook = false
	assert.Equal(t, hp, viaJSON(t, hp))
}

func TestColorByName(t *testing.T) {
	m := engine.CreateComponent("MeshRenderer", map[string]any{"color": "Gold", "mesh": "sphere"}).(*MeshRenderer)
	assert.Equal(t, rl.Gold, m.Color)
	assert.Equal(t, MeshSphere, m.MeshType)

	m = engine.CreateComponent("MeshRenderer", map[string]any{"color": "NoSuchColor"}).(*MeshRenderer)
	assert.Equal(t, rl.LightGray, m.Color, "unknown names keep the default")
}

func TestMeshRendererMissingMaterial(t *testing.T) {
	m := engine.CreateComponent("MeshRenderer", map[string]any{
		"color":    []any{1.0, 2.0, 3.0, 255.0},
		"material": "does/not/exist.json",
	}).(*MeshRenderer)
	assert.Equal(t, rl.NewColor(1, 2, 3, 255), m.Color)
	assert.Empty(t, m.Material)
}

func TestFloatsFromData(t *testing.T) {
	_, ok := vec3FromData([]any{1.0, 2.0})
	assert.False(t, ok, "too short")
	_, ok = vec3FromData([]any{1.0, "x", 3.0})
	assert.False(t, ok)
	v, ok := vec3FromData([]float32{1, 2, 3})
	assert.True(t, ok)
	assert.Equal(t, rl.Vector3{X: 1, Y: 2, Z: 3}, v)
}
