package game

import (
	"testing"
	"time"

	"vrgaze/internal/components"
	"vrgaze/internal/config"
	"vrgaze/internal/engine"
	"vrgaze/internal/scripts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScene = `{
  "name": "Test",
  "objects": [
    {
      "name": "Eye",
      "components": [
        {"type": "HeadPose", "yaw": -90, "eyeHeight": 1.7, "mouseLook": false},
        {"type": "Camera", "fov": 60, "isMain": true}
      ]
    },
    {
      "name": "Ghost",
      "layer": 2,
      "position": [0, 1.7, -2],
      "components": [{"type": "BoxCollider", "size": [0.5, 0.5, 0.5]}]
    },
    {
      "name": "Keyboard",
      "position": [0, 1.7, -3],
      "components": [
        {"type": "UICanvas", "planeDistance": 3, "curved": true, "worldSpace": true, "size": [400, 240]},
        {"type": "BoxCollider", "size": [1.92, 1.15, 0.05]}
      ],
      "children": [
        {
          "name": "Field",
          "components": [
            {"type": "RectTransform", "anchorMin": [0, 0], "anchorMax": [1, 0.2]},
            {"type": "UIInputField"}
          ]
        },
        {
          "name": "Key A",
          "components": [
            {"type": "RectTransform", "anchorMin": [0.3, 0.3], "anchorMax": [0.7, 0.7]},
            {"type": "UIButton"},
            {"type": "UIText", "text": "A"},
            {"type": "Script", "name": "KeyboardKey", "props": {"field": "Field"}}
          ]
        }
      ]
    },
    {
      "name": "Cube",
      "position": [0, 1.7, -6],
      "components": [
        {"type": "BoxCollider", "size": [1, 1, 1]},
        {"type": "InteractiveItem"},
        {"type": "Script", "name": "ClickCounter"}
      ]
    }
  ]
}`

func testConfig(mode config.Mode) config.Config {
	return config.Config{
		RayLength:        500,
		ExcludedLayers:   []int{int(engine.LayerIgnoreRaycast)},
		ReticleDistance:  5,
		ReticleUseNormal: true,
		DoubleClick:      300 * time.Millisecond,
		Mode:             mode,
		WindowWidth:      1280,
		WindowHeight:     720,
	}
}

func newTestGame(t *testing.T, mode config.Mode) *Game {
	t.Helper()
	g := New(testConfig(mode))
	require.NoError(t, g.World.LoadSceneData([]byte(testScene)))
	require.NoError(t, g.Setup())
	t.Cleanup(g.Shutdown)
	return g
}

func object(t *testing.T, g *Game, name string) *engine.GameObject {
	t.Helper()
	obj := g.World.Scene.FindByName(name)
	require.NotNil(t, obj, name)
	return obj
}

// click presses and releases the select button across two frames.
func click(g *Game, at time.Time) {
	g.Step(0.016, true, at)
	g.Step(0.016, false, at.Add(50*time.Millisecond))
}

func TestCombinedModeTargetsCanvasKey(t *testing.T) {
	g := newTestGame(t, config.ModeCombined)
	key := object(t, g, "Key A")
	field := engine.GetComponent[*components.UIInputField](object(t, g, "Field"))

	g.Step(0.016, false, time.Unix(0, 0))

	item := engine.GetComponent[*components.InteractiveItem](key)
	require.NotNil(t, item)
	assert.Same(t, item, g.Resolver.Current(), "the key inside the curved canvas wins over the canvas collider")
	assert.True(t, item.IsOver())
	assert.InDelta(t, 2.975, g.World.Reticle.Scale, 1e-4, "reticle sits at the canvas collider")

	click(g, time.Unix(1, 0))
	assert.Equal(t, "A", field.Text)
}

func TestWorldModeIgnoresCanvasElements(t *testing.T) {
	g := newTestGame(t, config.ModeWorld)

	g.Step(0.016, false, time.Unix(0, 0))

	assert.Nil(t, g.Resolver.Current(), "the canvas collider is not interactive")
	assert.Equal(t, "Keyboard", g.hud.lastHit.GameObject.Name, "ghost on the ignored layer is skipped")
	assert.Equal(t, 1, g.hud.hits)
}

func TestClickCountsOnWorldTarget(t *testing.T) {
	g := newTestGame(t, config.ModeCombined)
	object(t, g, "Keyboard").Active = false
	cube := object(t, g, "Cube")

	g.Step(0.016, false, time.Unix(0, 0))
	item := engine.GetComponent[*components.InteractiveItem](cube)
	assert.Same(t, item, g.Resolver.Current())

	click(g, time.Unix(1, 0))
	click(g, time.Unix(2, 0))

	counter := engine.GetComponent[*scripts.ClickCounter](cube)
	require.NotNil(t, counter)
	assert.Equal(t, 2, counter.Count)
	assert.Contains(t, g.hud.lines(string(config.ModeCombined)), "Target: Cube")
}

func TestHUDLines(t *testing.T) {
	var h hudState
	assert.Equal(t, []string{"Mode: world"}, h.lines("world"))

	g := newTestGame(t, config.ModeCombined)
	object(t, g, "Keyboard").Active = false
	g.Step(0.016, false, time.Unix(0, 0))

	lines := g.hud.lines("combined")
	require.Len(t, lines, 4)
	assert.Equal(t, "Target: Cube", lines[1])
	assert.Equal(t, "World hit: Cube @ 5.50", lines[2])
}

func TestShutdownReleasesInput(t *testing.T) {
	g := New(testConfig(config.ModeCombined))
	require.NoError(t, g.World.LoadSceneData([]byte(testScene)))
	require.NoError(t, g.Setup())

	assert.True(t, g.Resolver.Active())
	g.Shutdown()
	assert.False(t, g.Resolver.Active())
	assert.Zero(t, g.Input.Listeners(0))
}
