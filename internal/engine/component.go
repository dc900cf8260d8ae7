package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// Component is behaviour attached to a GameObject. Start runs once when the
// scene starts; Update runs every frame before the gaze is resolved.
type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// LookProvider steers the eye. The Camera on the same object or an ancestor
// casts the gaze along GetLookDirection.
type LookProvider interface {
	GetLookDirection() rl.Vector3
	GetEyeHeight() float32
}

// BaseComponent provides no-op lifecycle methods and the owner link.
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}
