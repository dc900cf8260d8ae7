package scripts

import (
	"fmt"
	"log"

	"vrgaze/internal/components"
	"vrgaze/internal/engine"
)

// ClickCounter counts gaze clicks on its object and shows the total on a
// UIText. A double click resets the count.
type ClickCounter struct {
	engine.BaseComponent
	Label  engine.GameObjectRef
	Format string

	Count int
	label *components.UIText
}

func (c *ClickCounter) Start() {
	g := c.GetGameObject()
	if g == nil {
		return
	}
	if obj := c.Label.Get(g.Scene); obj != nil {
		c.label = engine.GetComponent[*components.UIText](obj)
	} else if c.Label.IsValid() {
		log.Printf("ClickCounter: label reference on %s is broken", g.Name)
	}

	item := interactiveItem(g)
	item.OnClick.AddListener(c.onClick)
	item.OnDoubleClick.AddListener(c.onDoubleClick)
	c.refresh()
}

func (c *ClickCounter) onClick() {
	c.Count++
	c.refresh()
}

func (c *ClickCounter) onDoubleClick() {
	c.Count = 0
	c.refresh()
}

func (c *ClickCounter) refresh() {
	if c.label != nil {
		c.label.Text = fmt.Sprintf(c.Format, c.Count)
	}
}

func init() {
	engine.RegisterScript("ClickCounter", clickCounterFactory, clickCounterSerializer)
}

func clickCounterFactory(props map[string]any) engine.Component {
	c := &ClickCounter{
		Label:  engine.RefFromProps(props, "label"),
		Format: "Clicks: %d",
	}
	if v, ok := props["format"].(string); ok {
		c.Format = v
	}
	return c
}

func clickCounterSerializer(comp engine.Component) map[string]any {
	c, ok := comp.(*ClickCounter)
	if !ok {
		return nil
	}
	return map[string]any{
		"label":  refProp(c.Label),
		"format": c.Format,
	}
}

// refProp stores a reference the way RefFromProps reads it back. Names are
// preferred because UIDs are not stable across runs.
func refProp(r engine.GameObjectRef) any {
	if r.Name != "" {
		return r.Name
	}
	if r.UID != 0 {
		return float64(r.UID)
	}
	return nil
}
