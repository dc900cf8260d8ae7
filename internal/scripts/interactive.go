package scripts

import (
	"vrgaze/internal/components"
	"vrgaze/internal/engine"
)

// interactiveItem returns the InteractiveItem on g, adding one if missing.
func interactiveItem(g *engine.GameObject) *components.InteractiveItem {
	item := engine.GetComponent[*components.InteractiveItem](g)
	if item == nil {
		item = components.NewInteractiveItem()
		g.AddComponent(item)
	}
	return item
}
