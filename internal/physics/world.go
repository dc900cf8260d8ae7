package physics

import (
	"log"

	"vrgaze/internal/components"
	"vrgaze/internal/engine"
)

// World holds every object carrying a collider. It only answers ray queries.
type World struct {
	Objects []*engine.GameObject
	members map[*engine.GameObject]struct{}
}

func NewWorld() *World {
	return &World{members: make(map[*engine.GameObject]struct{})}
}

// AddObject registers obj and its descendants that carry a collider.
// Objects already registered are ignored.
func (w *World) AddObject(obj *engine.GameObject) {
	if obj == nil {
		return
	}
	if hasCollider(obj) {
		if _, ok := w.members[obj]; !ok {
			w.members[obj] = struct{}{}
			w.Objects = append(w.Objects, obj)
		}
	}
	for _, child := range obj.Children {
		w.AddObject(child)
	}
}

// RemoveObject unregisters obj and its descendants.
func (w *World) RemoveObject(obj *engine.GameObject) {
	if obj == nil {
		return
	}
	if _, ok := w.members[obj]; ok {
		delete(w.members, obj)
		for i, o := range w.Objects {
			if o == obj {
				w.Objects = append(w.Objects[:i], w.Objects[i+1:]...)
				break
			}
		}
	}
	for _, child := range obj.Children {
		w.RemoveObject(child)
	}
}

// AddScene registers every collider in the scene.
func (w *World) AddScene(s *engine.Scene) {
	for _, g := range s.GameObjects {
		w.AddObject(g)
	}
	log.Printf("Physics: %d colliders registered from scene %q", len(w.Objects), s.Name)
}

func hasCollider(obj *engine.GameObject) bool {
	return engine.GetComponent[*components.BoxCollider](obj) != nil ||
		engine.GetComponent[*components.SphereCollider](obj) != nil
}
