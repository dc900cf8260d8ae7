package engine

// GameObjectRef points at a GameObject by UID or, for references authored in
// scene files before UIDs exist, by name. UID wins when both are set.
//
// Example:
//
//	type KeyboardKey struct {
//	    engine.BaseComponent
//	    Field engine.GameObjectRef
//	}
//
//	func (k *KeyboardKey) Start() {
//	    if obj := k.Field.Get(k.GetGameObject().Scene); obj != nil {
//	        // Use the field...
//	    }
//	}
type GameObjectRef struct {
	UID  uint64 // 0 = none
	Name string
}

// Get resolves the reference to the actual GameObject.
// Returns nil if the reference is empty or if the GameObject doesn't exist.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if scene == nil {
		return nil
	}
	if r.UID != 0 {
		return scene.FindByUID(r.UID)
	}
	if r.Name != "" {
		return scene.FindByName(r.Name)
	}
	return nil
}

// IsValid returns true if the reference points to something.
// Note: This doesn't check if the GameObject actually exists in the scene.
func (r GameObjectRef) IsValid() bool {
	return r.UID != 0 || r.Name != ""
}

// Set sets the reference to point to the given GameObject.
// Pass nil to clear the reference.
func (r *GameObjectRef) Set(g *GameObject) {
	if g == nil {
		r.Clear()
		return
	}
	r.UID = g.UID
	r.Name = g.Name
}

func (r *GameObjectRef) Clear() {
	r.UID = 0
	r.Name = ""
}

// RefFromProps reads a reference from script props: a number is a UID,
// a string is an object name.
func RefFromProps(props map[string]any, key string) GameObjectRef {
	switch v := props[key].(type) {
	case float64:
		return GameObjectRef{UID: uint64(v)}
	case string:
		return GameObjectRef{Name: v}
	}
	return GameObjectRef{}
}
