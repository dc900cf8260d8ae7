package scripts

import (
	"vrgaze/internal/assets"
	"vrgaze/internal/components"
	"vrgaze/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// GazeHighlight tints the object's mesh while the gaze is on it. Without an
// explicit Color it uses the mesh material's highlight, then gold.
type GazeHighlight struct {
	engine.BaseComponent
	Color rl.Color

	renderer *components.MeshRenderer
	original rl.Color
	tint     rl.Color
}

func (h *GazeHighlight) Start() {
	g := h.GetGameObject()
	if g == nil {
		return
	}
	h.renderer = engine.GetComponent[*components.MeshRenderer](g)
	if h.renderer == nil {
		return
	}
	h.original = h.renderer.Color
	h.tint = h.Color
	if h.tint == (rl.Color{}) {
		h.tint = rl.Gold
		if h.renderer.Material != "" {
			h.tint = h.renderer.Highlight
		}
	}

	item := interactiveItem(g)
	item.OnEnter.AddListener(h.onEnter)
	item.OnExit.AddListener(h.onExit)
}

func (h *GazeHighlight) onEnter() {
	h.renderer.Color = h.tint
}

func (h *GazeHighlight) onExit() {
	h.renderer.Color = h.original
}

func init() {
	engine.RegisterScript("GazeHighlight", gazeHighlightFactory, gazeHighlightSerializer)
}

func gazeHighlightFactory(props map[string]any) engine.Component {
	h := &GazeHighlight{}
	switch v := props["color"].(type) {
	case string:
		h.Color, _ = assets.LookupColor(v)
	case []any:
		if len(v) >= 4 {
			c := [4]uint8{}
			for i := range c {
				f, _ := v[i].(float64)
				c[i] = uint8(f)
			}
			h.Color = rl.NewColor(c[0], c[1], c[2], c[3])
		}
	}
	return h
}

func gazeHighlightSerializer(c engine.Component) map[string]any {
	h, ok := c.(*GazeHighlight)
	if !ok {
		return nil
	}
	props := map[string]any{}
	if h.Color != (rl.Color{}) {
		props["color"] = []int{int(h.Color.R), int(h.Color.G), int(h.Color.B), int(h.Color.A)}
	}
	return props
}
