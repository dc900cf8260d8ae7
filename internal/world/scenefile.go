package world

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"vrgaze/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// --- JSON types ---

type SceneFile struct {
	Name    string      `json:"name,omitempty"`
	Objects []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	Name       string           `json:"name"`
	Tags       []string         `json:"tags,omitempty"`
	Layer      engine.Layer     `json:"layer,omitempty"`
	Active     *bool            `json:"active,omitempty"`
	Position   [3]float32       `json:"position"`
	Rotation   [3]float32       `json:"rotation"`
	Scale      [3]float32       `json:"scale"`
	Components []map[string]any `json:"components,omitempty"`
	Children   []ObjectDef      `json:"children,omitempty"`
}

const scriptType = "Script"

// --- Loading ---

// LoadScene reads a scene file into w.Scene.
func (w *World) LoadScene(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}
	if err := w.LoadSceneData(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// LoadSceneData parses scene JSON and adds its objects to w.Scene.
func (w *World) LoadSceneData(data []byte) error {
	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parse scene: %w", err)
	}
	if sf.Name != "" {
		w.Scene.Name = sf.Name
	}

	objects := make([]*engine.GameObject, 0, len(sf.Objects))
	for _, def := range sf.Objects {
		g, err := buildObject(def)
		if err != nil {
			return err
		}
		objects = append(objects, g)
	}
	for _, g := range objects {
		w.Scene.AddGameObject(g)
	}

	log.Printf("World: loaded scene %q (%d root objects)", w.Scene.Name, len(objects))
	return nil
}

func buildObject(def ObjectDef) (*engine.GameObject, error) {
	if def.Layer >= engine.MaxLayers {
		return nil, fmt.Errorf("object %q: layer %d out of range", def.Name, def.Layer)
	}

	g := engine.NewGameObject(def.Name)
	g.Tags = def.Tags
	g.Layer = def.Layer
	if def.Active != nil {
		g.Active = *def.Active
	}
	g.Transform.Position = rl.Vector3{X: def.Position[0], Y: def.Position[1], Z: def.Position[2]}
	g.Transform.Rotation = rl.Vector3{X: def.Rotation[0], Y: def.Rotation[1], Z: def.Rotation[2]}

	// Default scale to 1 if zero
	if def.Scale == [3]float32{} {
		g.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
	} else {
		g.Transform.Scale = rl.Vector3{X: def.Scale[0], Y: def.Scale[1], Z: def.Scale[2]}
	}

	for _, data := range def.Components {
		c, err := buildComponent(data)
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", def.Name, err)
		}
		g.AddComponent(c)
	}

	for _, childDef := range def.Children {
		child, err := buildObject(childDef)
		if err != nil {
			return nil, err
		}
		g.AddChild(child)
	}
	return g, nil
}

func buildComponent(data map[string]any) (engine.Component, error) {
	typ, _ := data["type"].(string)
	if typ == scriptType {
		name, _ := data["name"].(string)
		props, _ := data["props"].(map[string]any)
		if c := engine.CreateScript(name, props); c != nil {
			return c, nil
		}
		return nil, fmt.Errorf("unknown script %q", name)
	}
	if c := engine.CreateComponent(typ, data); c != nil {
		return c, nil
	}
	return nil, fmt.Errorf("unknown component type %q", typ)
}

// --- Saving ---

// SaveScene writes w.Scene back out. Components that are neither registered
// built-ins nor scripts are skipped.
func (w *World) SaveScene(path string) error {
	data, err := w.MarshalScene()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	return nil
}

func (w *World) MarshalScene() ([]byte, error) {
	sf := SceneFile{Name: w.Scene.Name}
	for _, g := range w.Scene.GameObjects {
		sf.Objects = append(sf.Objects, objectDef(g))
	}
	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal scene: %w", err)
	}
	return data, nil
}

func objectDef(g *engine.GameObject) ObjectDef {
	def := ObjectDef{
		Name:     g.Name,
		Tags:     g.Tags,
		Layer:    g.Layer,
		Position: [3]float32{g.Transform.Position.X, g.Transform.Position.Y, g.Transform.Position.Z},
		Rotation: [3]float32{g.Transform.Rotation.X, g.Transform.Rotation.Y, g.Transform.Rotation.Z},
		Scale:    [3]float32{g.Transform.Scale.X, g.Transform.Scale.Y, g.Transform.Scale.Z},
	}
	if !g.Active {
		inactive := false
		def.Active = &inactive
	}
	for _, c := range g.Components() {
		if data := serializeComponent(c); data != nil {
			def.Components = append(def.Components, data)
		}
	}
	for _, child := range g.Children {
		def.Children = append(def.Children, objectDef(child))
	}
	return def
}

func serializeComponent(c engine.Component) map[string]any {
	if s, ok := c.(engine.Serializable); ok {
		data := s.Serialize()
		data["type"] = s.TypeName()
		return data
	}
	if name, props, ok := engine.SerializeScript(c); ok {
		return map[string]any{"type": scriptType, "name": name, "props": props}
	}
	return nil
}
