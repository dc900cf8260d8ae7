package engine

// Scene holds root GameObjects. Children are reached through their parents
// but every object in the hierarchy is indexed by UID.
type Scene struct {
	Name        string
	GameObjects []*GameObject
	uidMap      map[uint64]*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      make(map[uint64]*GameObject),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	s.GameObjects = append(s.GameObjects, g)
	s.index(g)
}

// index registers g and its descendants with the scene.
func (s *Scene) index(g *GameObject) {
	g.Scene = s
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*GameObject)
	}
	s.uidMap[g.UID] = g
	for _, child := range g.Children {
		s.index(child)
	}
}

func (s *Scene) unindex(g *GameObject) {
	delete(s.uidMap, g.UID)
	g.Scene = nil
	for _, child := range g.Children {
		s.unindex(child)
	}
}

func (s *Scene) RemoveGameObject(g *GameObject) {
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			s.unindex(g)
			return
		}
	}
}

// detachRoot drops g from the root list without unindexing it.
func (s *Scene) detachRoot(g *GameObject) {
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			return
		}
	}
}

func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.uidMap[uid]
}

// FindByName searches the whole hierarchy depth-first.
func (s *Scene) FindByName(name string) *GameObject {
	var found *GameObject
	s.Walk(func(g *GameObject) bool {
		if g.Name == name {
			found = g
			return false
		}
		return true
	})
	return found
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	s.Walk(func(g *GameObject) bool {
		if g.HasTag(tag) {
			result = append(result, g)
		}
		return true
	})
	return result
}

// Walk visits every object depth-first, parents before children.
// Returning false from visit stops the walk.
func (s *Scene) Walk(visit func(g *GameObject) bool) {
	var walk func(g *GameObject) bool
	walk = func(g *GameObject) bool {
		if !visit(g) {
			return false
		}
		for _, child := range g.Children {
			if !walk(child) {
				return false
			}
		}
		return true
	}
	for _, g := range s.GameObjects {
		if !walk(g) {
			return
		}
	}
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}
