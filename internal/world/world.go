package world

import (
	"log"

	"vrgaze/internal/components"
	"vrgaze/internal/engine"
	"vrgaze/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const FloorSize = 40.0

// World owns the scene and the hit-test providers built from it.
type World struct {
	Scene   *engine.Scene
	Physics *physics.World
	UI      *components.EventSystem
	Camera  *components.Camera
	Reticle *components.Reticle
	Debug   *components.DebugLines

	ShowFloor bool
}

func New(width, height int) *World {
	return &World{
		Scene:     engine.NewScene("Main"),
		Physics:   physics.NewWorld(),
		UI:        components.NewEventSystem(float32(width), float32(height)),
		Debug:     components.NewDebugLines(),
		ShowFloor: true,
	}
}

// Initialize finds the main camera and reticle, registers colliders and
// canvases, and starts the scene. A camera is created when the scene has none.
func (w *World) Initialize() {
	w.Camera = w.findCamera()
	if w.Camera == nil {
		eye := engine.NewGameObject("Eye")
		eye.AddComponent(components.NewHeadPose())
		w.Camera = components.NewCamera()
		w.Camera.IsMain = true
		eye.AddComponent(w.Camera)
		w.Scene.AddGameObject(eye)
		log.Println("World: no camera in scene, created a default eye")
	}
	w.Camera.Viewport = rl.Vector2{X: w.UI.Screen.Width, Y: w.UI.Screen.Height}
	w.UI.Eye = w.Camera

	w.Scene.Walk(func(g *engine.GameObject) bool {
		if r := engine.GetComponent[*components.Reticle](g); r != nil && w.Reticle == nil {
			w.Reticle = r
		}
		return true
	})
	if w.Reticle == nil {
		w.Reticle = components.NewReticle()
		w.Camera.GetGameObject().AddComponent(w.Reticle)
	}

	w.Physics.AddScene(w.Scene)
	w.UI.AddScene(w.Scene)

	w.Scene.Start()
}

func (w *World) findCamera() *components.Camera {
	var first, main *components.Camera
	w.Scene.Walk(func(g *engine.GameObject) bool {
		cam := engine.GetComponent[*components.Camera](g)
		if cam == nil {
			return true
		}
		if first == nil {
			first = cam
		}
		if cam.IsMain {
			main = cam
			return false
		}
		return true
	})
	if main != nil {
		return main
	}
	return first
}

// Resize keeps the projection and UI layout in step with the window.
func (w *World) Resize(width, height int) {
	w.UI.Screen = rl.Rectangle{Width: float32(width), Height: float32(height)}
	if w.Camera != nil {
		w.Camera.Viewport = rl.Vector2{X: float32(width), Y: float32(height)}
	}
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
	w.Debug.Update(deltaTime)
}

// Draw renders the 3D pass then the UI overlay.
func (w *World) Draw() {
	frustum := EyeFrustum(w.Camera)

	rl.BeginMode3D(w.Camera.GetRaylibCamera())
	if w.ShowFloor {
		rl.DrawPlane(rl.Vector3{}, rl.Vector2{X: FloorSize, Y: FloorSize}, rl.DarkGray)
		rl.DrawGrid(int32(FloorSize), 1)
	}
	w.Scene.Walk(func(g *engine.GameObject) bool {
		if m := engine.GetComponent[*components.MeshRenderer](g); m != nil {
			if frustum.ContainsSphere(g.WorldPosition(), boundingRadius(g, m)) {
				m.Draw()
			}
		}
		return true
	})
	w.Debug.Draw()
	w.Reticle.Draw()
	rl.EndMode3D()

	w.UI.Draw()

	// The overlay hides the 3D reticle when the gaze is on a canvas
	if frustum.ContainsPoint(w.Reticle.Position) {
		rl.DrawCircleLinesV(w.Camera.WorldToScreen(w.Reticle.Position), 5, w.Reticle.Color)
	}
}

func boundingRadius(g *engine.GameObject, m *components.MeshRenderer) float32 {
	s := g.WorldScale()
	size := rl.Vector3{X: m.Size.X * s.X, Y: m.Size.Y * s.Y, Z: m.Size.Z * s.Z}
	return rl.Vector3Length(size)
}

// CollidableObjects returns every object registered with the physics world.
func (w *World) CollidableObjects() []*engine.GameObject {
	return w.Physics.Objects
}
