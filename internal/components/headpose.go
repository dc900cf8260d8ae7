package components

import (
	"math"

	"vrgaze/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("HeadPose", func() engine.Serializable {
		return NewHeadPose()
	})
}

// HeadPose stands in for a headset: the mouse turns the head.
// Yaw -90 looks down -Z.
type HeadPose struct {
	engine.BaseComponent
	Yaw       float32
	Pitch     float32
	LookSpeed float32
	EyeHeight float32
	MouseLook bool
}

func NewHeadPose() *HeadPose {
	return &HeadPose{
		Yaw:       -90.0,
		Pitch:     0,
		LookSpeed: 0.1,
		EyeHeight: 1.7,
		MouseLook: true,
	}
}

func (h *HeadPose) Update(deltaTime float32) {
	if !h.MouseLook {
		return
	}
	d := rl.GetMouseDelta()
	h.Look(d.X, d.Y)
}

// Look turns the head by a mouse delta in pixels.
func (h *HeadPose) Look(dx, dy float32) {
	h.Yaw += dx * h.LookSpeed
	h.Pitch -= dy * h.LookSpeed

	// Clamp pitch
	if h.Pitch > 89 {
		h.Pitch = 89
	}
	if h.Pitch < -89 {
		h.Pitch = -89
	}
}

func (h *HeadPose) GetLookDirection() rl.Vector3 {
	yawRad := float64(h.Yaw) * math.Pi / 180
	pitchRad := float64(h.Pitch) * math.Pi / 180
	return rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
}

func (h *HeadPose) GetEyeHeight() float32 {
	return h.EyeHeight
}

func (h *HeadPose) TypeName() string { return "HeadPose" }

func (h *HeadPose) Serialize() map[string]any {
	return map[string]any{
		"yaw":       h.Yaw,
		"pitch":     h.Pitch,
		"lookSpeed": h.LookSpeed,
		"eyeHeight": h.EyeHeight,
		"mouseLook": h.MouseLook,
	}
}

func (h *HeadPose) Deserialize(data map[string]any) {
	if v, ok := data["yaw"].(float64); ok {
		h.Yaw = float32(v)
	}
	if v, ok := data["pitch"].(float64); ok {
		h.Pitch = float32(v)
	}
	if v, ok := data["lookSpeed"].(float64); ok {
		h.LookSpeed = float32(v)
	}
	if v, ok := data["eyeHeight"].(float64); ok {
		h.EyeHeight = float32(v)
	}
	if v, ok := data["mouseLook"].(bool); ok {
		h.MouseLook = v
	}
}
