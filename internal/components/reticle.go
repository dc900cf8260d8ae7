package components

import (
	"math"

	"vrgaze/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("Reticle", func() engine.Serializable {
		return NewReticle()
	})
}

// gazeSource is the part of Camera the reticle needs.
type gazeSource interface {
	GazeRay() (origin, forward rl.Vector3)
}

// Reticle marks the gaze point. It is scaled by its distance from the eye so
// it covers the same angle wherever it lands.
type Reticle struct {
	engine.BaseComponent

	DefaultDistance float32
	UseNormal       bool
	Radius          float32 // at distance 1
	Color           rl.Color

	// Eye defaults to the Camera on this object or a parent.
	Eye gazeSource

	Position rl.Vector3
	Normal   rl.Vector3 // facing direction
	Scale    float32
}

func NewReticle() *Reticle {
	return &Reticle{
		DefaultDistance: 5,
		UseNormal:       true,
		Radius:          0.01,
		Color:           rl.White,
		Scale:           1,
	}
}

func (r *Reticle) Start() {
	if r.Eye != nil {
		return
	}
	for obj := r.GetGameObject(); obj != nil; obj = obj.Parent {
		if cam := engine.GetComponent[*Camera](obj); cam != nil {
			r.Eye = cam
			return
		}
	}
}

// SetPosition implements gaze.Reticle.
func (r *Reticle) SetPosition(point rl.Vector3, distance float32, normal rl.Vector3) {
	r.Position = point
	r.Scale = distance
	if r.UseNormal && rl.Vector3LengthSqr(normal) > 0 {
		r.Normal = rl.Vector3Normalize(normal)
		return
	}
	r.faceEye()
}

// SetDefaultPosition implements gaze.Reticle: DefaultDistance along the gaze.
func (r *Reticle) SetDefaultPosition() {
	if r.Eye == nil {
		return
	}
	origin, forward := r.Eye.GazeRay()
	r.Position = rl.Vector3Add(origin, rl.Vector3Scale(forward, r.DefaultDistance))
	r.Scale = r.DefaultDistance
	r.Normal = rl.Vector3Negate(forward)
}

func (r *Reticle) faceEye() {
	if r.Eye == nil {
		r.Normal = rl.Vector3{Z: 1}
		return
	}
	_, forward := r.Eye.GazeRay()
	r.Normal = rl.Vector3Negate(forward)
}

// WorldRadius is the drawn radius at the current position.
func (r *Reticle) WorldRadius() float32 {
	return r.Radius * r.Scale
}

// Draw renders the reticle as a ring. Must be called inside BeginMode3D.
func (r *Reticle) Draw() {
	g := r.GetGameObject()
	if g != nil && !g.ActiveInHierarchy() {
		return
	}
	axis, angle := rotationFromZ(r.Normal)
	// Lift off the surface to avoid z-fighting
	center := rl.Vector3Add(r.Position, rl.Vector3Scale(r.Normal, 0.002*r.Scale))
	rl.DrawCircle3D(center, r.WorldRadius(), axis, angle, r.Color)
	rl.DrawCircle3D(center, r.WorldRadius()*0.5, axis, angle, r.Color)
}

// rotationFromZ returns the axis and angle (degrees) turning +Z onto n.
func rotationFromZ(n rl.Vector3) (rl.Vector3, float32) {
	z := rl.Vector3{Z: 1}
	if rl.Vector3LengthSqr(n) == 0 {
		return rl.Vector3{Y: 1}, 0
	}
	n = rl.Vector3Normalize(n)
	dot := rl.Vector3DotProduct(z, n)
	if dot > 0.9999 {
		return rl.Vector3{Y: 1}, 0
	}
	if dot < -0.9999 {
		return rl.Vector3{Y: 1}, 180
	}
	axis := rl.Vector3Normalize(rl.Vector3CrossProduct(z, n))
	return axis, float32(math.Acos(float64(dot)) * 180 / math.Pi)
}

func (r *Reticle) TypeName() string { return "Reticle" }

func (r *Reticle) Serialize() map[string]any {
	return map[string]any{
		"defaultDistance": r.DefaultDistance,
		"useNormal":       r.UseNormal,
		"radius":          r.Radius,
		"color":           colorToSlice(r.Color),
	}
}

func (r *Reticle) Deserialize(data map[string]any) {
	if v, ok := data["defaultDistance"].(float64); ok {
		r.DefaultDistance = float32(v)
	}
	if v, ok := data["useNormal"].(bool); ok {
		r.UseNormal = v
	}
	if v, ok := data["radius"].(float64); ok {
		r.Radius = float32(v)
	}
	if c, ok := colorFromData(data["color"]); ok {
		r.Color = c
	}
}
