package gaze

import (
	"time"

	"vrgaze/internal/engine"
)

const (
	DefaultRayLength        float32 = 500
	DefaultDebugRayLength   float32 = 5
	DefaultDebugRayDuration         = time.Second
)

// Config is set once before the resolver is built and never changed after.
type Config struct {
	Origin         OriginSource
	ExcludedLayers engine.LayerMask
	RayLength      float32

	ShowDebugRay     bool
	DebugRayLength   float32
	DebugRayDuration time.Duration
}

// DefaultConfig returns a config casting from origin with the stock lengths.
func DefaultConfig(origin OriginSource) Config {
	return Config{
		Origin:           origin,
		RayLength:        DefaultRayLength,
		DebugRayLength:   DefaultDebugRayLength,
		DebugRayDuration: DefaultDebugRayDuration,
	}
}
