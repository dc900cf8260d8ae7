package components

import (
	"math"

	"vrgaze/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("Camera", func() engine.Serializable {
		return NewCamera()
	})
}

// Camera is the player's eye. It supplies the gaze ray and maps between world
// and screen coordinates for a perspective projection of the given viewport.
type Camera struct {
	engine.BaseComponent
	FOV      float32 // vertical, degrees
	Near     float32
	Far      float32
	IsMain   bool
	Viewport rl.Vector2
}

func NewCamera() *Camera {
	return &Camera{
		FOV:      60.0,
		Near:     0.1,
		Far:      1000.0,
		IsMain:   false,
		Viewport: rl.Vector2{X: 1280, Y: 720},
	}
}

// TypeName implements engine.Serializable
func (c *Camera) TypeName() string {
	return "Camera"
}

// Serialize implements engine.Serializable
func (c *Camera) Serialize() map[string]any {
	return map[string]any{
		"fov":    c.FOV,
		"near":   c.Near,
		"far":    c.Far,
		"isMain": c.IsMain,
	}
}

// Deserialize implements engine.Serializable
func (c *Camera) Deserialize(data map[string]any) {
	if f, ok := data["fov"].(float64); ok {
		c.FOV = float32(f)
	}
	if n, ok := data["near"].(float64); ok {
		c.Near = float32(n)
	}
	if f, ok := data["far"].(float64); ok {
		c.Far = float32(f)
	}
	if m, ok := data["isMain"].(bool); ok {
		c.IsMain = m
	}
}

// lookProvider searches this object and its parents.
func (c *Camera) lookProvider() engine.LookProvider {
	for obj := c.GetGameObject(); obj != nil; obj = obj.Parent {
		if lp := engine.FindComponent[engine.LookProvider](obj); lp != nil {
			return lp
		}
	}
	return nil
}

// GazeRay implements gaze.OriginSource. forward is normalized.
func (c *Camera) GazeRay() (origin, forward rl.Vector3) {
	g := c.GetGameObject()
	if g == nil {
		return rl.Vector3{}, rl.Vector3{Z: -1}
	}

	origin = g.WorldPosition()
	lp := c.lookProvider()
	if lp == nil {
		return origin, g.Forward()
	}

	// Camera on the same object as the controller sits at eye height
	if engine.FindComponent[engine.LookProvider](g) != nil {
		origin.Y += lp.GetEyeHeight()
	}
	return origin, rl.Vector3Normalize(lp.GetLookDirection())
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	origin, forward := c.GazeRay()
	return rl.Camera3D{
		Position:   origin,
		Target:     rl.Vector3Add(origin, forward),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: rl.CameraPerspective,
	}
}

// basis returns the camera's orthonormal frame.
func (c *Camera) basis() (origin, forward, right, up rl.Vector3) {
	origin, forward = c.GazeRay()
	worldUp := rl.Vector3{Y: 1}
	if absf(rl.Vector3DotProduct(forward, worldUp)) > 0.999 {
		worldUp = rl.Vector3{Z: -1}
	}
	right = rl.Vector3Normalize(rl.Vector3CrossProduct(forward, worldUp))
	up = rl.Vector3CrossProduct(right, forward)
	return origin, forward, right, up
}

func (c *Camera) frustum() (tanHalf, aspect float32) {
	tanHalf = float32(math.Tan(float64(c.FOV) * math.Pi / 360))
	aspect = 1
	if c.Viewport.Y > 0 {
		aspect = c.Viewport.X / c.Viewport.Y
	}
	return tanHalf, aspect
}

// WorldToScreen implements gaze.ScreenProjector. Points behind the camera
// map to (-1, -1).
func (c *Camera) WorldToScreen(p rl.Vector3) rl.Vector2 {
	origin, forward, right, up := c.basis()
	tanHalf, aspect := c.frustum()

	v := rl.Vector3Subtract(p, origin)
	z := rl.Vector3DotProduct(v, forward)
	if z <= 0 {
		return rl.Vector2{X: -1, Y: -1}
	}
	ndcX := rl.Vector3DotProduct(v, right) / (z * tanHalf * aspect)
	ndcY := rl.Vector3DotProduct(v, up) / (z * tanHalf)

	return rl.Vector2{
		X: (ndcX + 1) / 2 * c.Viewport.X,
		Y: (1 - ndcY) / 2 * c.Viewport.Y,
	}
}

// ScreenToWorld implements gaze.ScreenProjector. depth is measured along the
// camera's forward axis.
func (c *Camera) ScreenToWorld(s rl.Vector2, depth float32) rl.Vector3 {
	origin, forward, right, up := c.basis()
	tanHalf, aspect := c.frustum()

	var ndcX, ndcY float32
	if c.Viewport.X > 0 && c.Viewport.Y > 0 {
		ndcX = s.X/c.Viewport.X*2 - 1
		ndcY = 1 - s.Y/c.Viewport.Y*2
	}

	dir := forward
	dir = rl.Vector3Add(dir, rl.Vector3Scale(right, ndcX*tanHalf*aspect))
	dir = rl.Vector3Add(dir, rl.Vector3Scale(up, ndcY*tanHalf))
	return rl.Vector3Add(origin, rl.Vector3Scale(dir, depth))
}

// Depth returns how far p lies in front of the camera along its forward axis.
func (c *Camera) Depth(p rl.Vector3) float32 {
	origin, forward := c.GazeRay()
	return rl.Vector3DotProduct(rl.Vector3Subtract(p, origin), forward)
}
