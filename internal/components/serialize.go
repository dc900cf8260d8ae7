package components

import (
	"vrgaze/internal/assets"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// JSON decodes numbers as float64 and arrays as []any; Serialize output
// may also be fed back directly, so typed slices are accepted too.

func vec3ToSlice(v rl.Vector3) []float32 {
	return []float32{v.X, v.Y, v.Z}
}

func vec3FromData(raw any) (rl.Vector3, bool) {
	f, ok := floatsFromData(raw, 3)
	if !ok {
		return rl.Vector3{}, false
	}
	return rl.Vector3{X: f[0], Y: f[1], Z: f[2]}, true
}

func vec2FromData(raw any) (rl.Vector2, bool) {
	f, ok := floatsFromData(raw, 2)
	if !ok {
		return rl.Vector2{}, false
	}
	return rl.Vector2{X: f[0], Y: f[1]}, true
}

// colorToSlice uses ints so JSON writes an array rather than base64.
func colorToSlice(c rl.Color) []int {
	return []int{int(c.R), int(c.G), int(c.B), int(c.A)}
}

// colorFromData accepts an RGBA array or a color name such as "Gold".
func colorFromData(raw any) (rl.Color, bool) {
	if name, ok := raw.(string); ok {
		return assets.LookupColor(name)
	}
	if v, ok := raw.([]int); ok && len(v) >= 4 {
		return rl.NewColor(uint8(v[0]), uint8(v[1]), uint8(v[2]), uint8(v[3])), true
	}
	f, ok := floatsFromData(raw, 4)
	if !ok {
		return rl.Color{}, false
	}
	return rl.NewColor(uint8(f[0]), uint8(f[1]), uint8(f[2]), uint8(f[3])), true
}

func floatsFromData(raw any, n int) ([]float32, bool) {
	out := make([]float32, n)
	switch v := raw.(type) {
	case []float32:
		if len(v) < n {
			return nil, false
		}
		copy(out, v)
	case []any:
		if len(v) < n {
			return nil, false
		}
		for i := 0; i < n; i++ {
			f, ok := v[i].(float64)
			if !ok {
				return nil, false
			}
			out[i] = float32(f)
		}
	default:
		return nil, false
	}
	return out, true
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
