package world

import (
	"os"
	"path/filepath"
	"testing"

	"vrgaze/internal/components"
	"vrgaze/internal/engine"
	"vrgaze/internal/scripts"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleScene = `{
  "name": "Sample",
  "objects": [
    {
      "name": "Cube",
      "tags": ["target"],
      "position": [1, 2, 3],
      "rotation": [0, 45, 0],
      "components": [
        {"type": "BoxCollider", "size": [1, 1, 1]},
        {"type": "MeshRenderer", "mesh": "cube", "color": "Red"},
        {"type": "InteractiveItem"},
        {"type": "Script", "name": "GazeHighlight", "props": {"color": "Gold"}}
      ],
      "children": [
        {"name": "Ghost", "layer": 2, "active": false, "scale": [2, 2, 2],
         "components": [{"type": "SphereCollider", "radius": 0.5}]}
      ]
    }
  ]
}`

func TestLoadSceneData(t *testing.T) {
	w := New(1280, 720)
	require.NoError(t, w.LoadSceneData([]byte(sampleScene)))

	assert.Equal(t, "Sample", w.Scene.Name)
	require.Len(t, w.Scene.GameObjects, 1)
	cube := w.Scene.GameObjects[0]
	assert.Equal(t, []string{"target"}, cube.Tags)
	assert.Equal(t, rl.Vector3{X: 1, Y: 2, Z: 3}, cube.Transform.Position)
	assert.Equal(t, rl.Vector3{X: 1, Y: 1, Z: 1}, cube.Transform.Scale, "zero scale defaults to one")
	assert.NotNil(t, engine.GetComponent[*components.InteractiveItem](cube))
	assert.Equal(t, rl.Red, engine.GetComponent[*components.MeshRenderer](cube).Color)
	assert.Equal(t, rl.Gold, engine.GetComponent[*scripts.GazeHighlight](cube).Color)

	require.Len(t, cube.Children, 1)
	ghost := cube.Children[0]
	assert.Equal(t, engine.LayerIgnoreRaycast, ghost.Layer)
	assert.False(t, ghost.Active)
	assert.Equal(t, rl.Vector3{X: 2, Y: 2, Z: 2}, ghost.Transform.Scale)
	assert.Same(t, w.Scene, ghost.Scene)
}

func TestLoadSceneErrors(t *testing.T) {
	cases := map[string]string{
		"bad json":       `{"objects": [`,
		"unknown type":   `{"objects": [{"name": "A", "components": [{"type": "Teleporter"}]}]}`,
		"unknown script": `{"objects": [{"name": "A", "components": [{"type": "Script", "name": "Nope"}]}]}`,
		"bad layer":      `{"objects": [{"name": "A", "layer": 40}]}`,
		"bad child":      `{"objects": [{"name": "A", "children": [{"name": "B", "components": [{"type": "Nope"}]}]}]}`,
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			w := New(1280, 720)
			assert.Error(t, w.LoadSceneData([]byte(data)))
			assert.Empty(t, w.Scene.GameObjects, "nothing is added on failure")
		})
	}

	w := New(1280, 720)
	assert.Error(t, w.LoadScene(filepath.Join(t.TempDir(), "missing.json")))
}

func TestSceneRoundTrip(t *testing.T) {
	w := New(1280, 720)
	require.NoError(t, w.LoadSceneData([]byte(sampleScene)))

	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, w.SaveScene(path))

	again := New(1280, 720)
	require.NoError(t, again.LoadScene(path))

	first, err := w.MarshalScene()
	require.NoError(t, err)
	second, err := again.MarshalScene()
	require.NoError(t, err)
	assert.JSONEq(t, string(first), string(second))

	cube := again.Scene.GameObjects[0]
	assert.Equal(t, rl.Red, engine.GetComponent[*components.MeshRenderer](cube).Color)
	assert.False(t, cube.Children[0].Active)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"name": "GazeHighlight"`)
}
