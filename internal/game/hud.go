package game

import (
	"fmt"

	"vrgaze/internal/components"
	"vrgaze/internal/engine"
	"vrgaze/internal/gaze"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Theme colors
var (
	colorBgDark        = rl.NewColor(10, 10, 15, 255)
	colorBgPanel       = rl.NewColor(18, 18, 24, 220)
	colorBgElement     = rl.NewColor(28, 28, 38, 255)
	colorBgHover       = rl.NewColor(38, 38, 52, 255)
	colorAccent        = rl.NewColor(108, 99, 255, 255)
	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
)

// initHUDStyle sets up the indigo dark theme
func initHUDStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// hudState remembers the last published world hit.
type hudState struct {
	resolver *gaze.Resolver
	lastHit  engine.RaycastResult
	hits     int
}

func (h *hudState) attach(r *gaze.Resolver) {
	h.resolver = r
	r.OnRaycastHit.AddListener(func(hit engine.RaycastResult) {
		h.lastHit = hit
		h.hits++
	})
}

// targetName names the object behind the current Interactive.
func targetName(item gaze.Interactive) string {
	if item == nil {
		return "none"
	}
	if ii, ok := item.(*components.InteractiveItem); ok {
		if g := ii.GetGameObject(); g != nil {
			return g.Name
		}
	}
	return fmt.Sprintf("%T", item)
}

// lines returns the HUD text, one entry per row.
func (h *hudState) lines(mode string) []string {
	out := []string{fmt.Sprintf("Mode: %s", mode)}
	if h.resolver == nil {
		return out
	}
	out = append(out, fmt.Sprintf("Target: %s", targetName(h.resolver.Current())))
	if h.lastHit.GameObject != nil {
		p := h.lastHit.Point
		out = append(out,
			fmt.Sprintf("World hit: %s @ %.2f", h.lastHit.GameObject.Name, h.lastHit.Distance),
			fmt.Sprintf("Point: (%.2f, %.2f, %.2f)", p.X, p.Y, p.Z),
		)
	}
	return out
}

func (g *Game) DrawUI() {
	lines := g.hud.lines(string(g.Config.Mode))

	panel := rl.Rectangle{X: 10, Y: 10, Width: 300, Height: float32(24*len(lines) + 90)}
	rl.DrawRectangleRec(panel, colorBgPanel)
	rl.DrawRectangleLinesEx(panel, 1, colorAccent)

	y := panel.Y + 8
	for _, line := range lines {
		gui.Label(rl.Rectangle{X: panel.X + 10, Y: y, Width: panel.Width - 20, Height: 20}, line)
		y += 24
	}

	// Controls only respond while the cursor is free (Tab)
	show := g.Resolver.Config().ShowDebugRay
	if next := gui.CheckBox(rl.Rectangle{X: panel.X + 10, Y: y + 4, Width: 16, Height: 16}, "Debug ray", show); next != show {
		g.Resolver.SetShowDebugRay(next)
	}
	reticle := g.World.Reticle
	reticle.UseNormal = gui.CheckBox(rl.Rectangle{X: panel.X + 10, Y: y + 28, Width: 16, Height: 16}, "Align reticle to surface", reticle.UseNormal)

	rl.DrawText("Mouse: look  Click/Space: select  Tab: free cursor  F1: stats", 10, int32(rl.GetScreenHeight())-26, 16, rl.LightGray)

	if g.DebugMode {
		rl.DrawFPS(int32(rl.GetScreenWidth())-90, 10)
		rl.DrawText(fmt.Sprintf("Update: %.2f ms", g.updateMs), int32(rl.GetScreenWidth())-170, 34, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Draw:   %.2f ms", g.drawMs), int32(rl.GetScreenWidth())-170, 54, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Hits:   %d", g.hud.hits), int32(rl.GetScreenWidth())-170, 74, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Colliders: %d", len(g.World.CollidableObjects())), int32(rl.GetScreenWidth())-170, 94, 16, rl.Green)
	}
}
