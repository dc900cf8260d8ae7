// Package config reads the demo's settings from the environment.
package config

import (
	"log"
	"time"

	"vrgaze/internal/engine"
	"vrgaze/internal/gaze"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Mode selects which resolver the demo runs.
type Mode string

const (
	ModeCombined Mode = "combined"
	ModeWorld    Mode = "world"
)

var (
	ErrInvalidMode   = errors.New("invalid mode")
	ErrInvalidLayer  = errors.New("invalid layer")
	ErrInvalidWindow = errors.New("invalid window size")
	ErrInvalidValue  = errors.New("invalid value")
)

type Config struct {
	RayLength        float32       `env:"VRGAZE_RAY_LENGTH"          envDefault:"500"`
	ExcludedLayers   []int         `env:"VRGAZE_EXCLUDED_LAYERS"     envDefault:"2" envSeparator:","`
	ShowDebugRay     bool          `env:"VRGAZE_SHOW_DEBUG_RAY"      envDefault:"false"`
	DebugRayLength   float32       `env:"VRGAZE_DEBUG_RAY_LENGTH"    envDefault:"5"`
	DebugRayDuration time.Duration `env:"VRGAZE_DEBUG_RAY_DURATION"  envDefault:"1s"`
	ReticleDistance  float32       `env:"VRGAZE_RETICLE_DISTANCE"    envDefault:"5"`
	ReticleUseNormal bool          `env:"VRGAZE_RETICLE_USE_NORMAL"  envDefault:"true"`
	DoubleClick      time.Duration `env:"VRGAZE_DOUBLE_CLICK"        envDefault:"300ms"`
	Mode             Mode          `env:"VRGAZE_MODE"                envDefault:"combined"`
	Scene            string        `env:"VRGAZE_SCENE"               envDefault:"assets/scenes/gaze.json"`
	WindowWidth      int           `env:"VRGAZE_WINDOW_WIDTH"        envDefault:"1280"`
	WindowHeight     int           `env:"VRGAZE_WINDOW_HEIGHT"       envDefault:"720"`
	Audio            bool          `env:"VRGAZE_AUDIO"               envDefault:"true"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Mode {
	case ModeCombined, ModeWorld:
	default:
		return errors.Wrapf(ErrInvalidMode, "%q", c.Mode)
	}
	for _, l := range c.ExcludedLayers {
		if l < 0 || l >= engine.MaxLayers {
			return errors.Wrapf(ErrInvalidLayer, "%d not in [0, %d)", l, engine.MaxLayers)
		}
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return errors.Wrapf(ErrInvalidWindow, "%dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.RayLength <= 0 {
		return errors.Wrapf(ErrInvalidValue, "ray length %v", c.RayLength)
	}
	if c.DebugRayLength < 0 || c.DebugRayDuration < 0 || c.ReticleDistance < 0 || c.DoubleClick < 0 {
		return errors.WithStack(ErrInvalidValue)
	}
	return nil
}

// ExclusionMask builds the layer mask the world ray ignores.
func (c Config) ExclusionMask() engine.LayerMask {
	layers := make([]engine.Layer, 0, len(c.ExcludedLayers))
	for _, l := range c.ExcludedLayers {
		layers = append(layers, engine.Layer(l))
	}
	return engine.MaskOf(layers...)
}

// Gaze builds the resolver configuration for origin.
func (c Config) Gaze(origin gaze.OriginSource) gaze.Config {
	g := gaze.DefaultConfig(origin)
	g.RayLength = c.RayLength
	g.ExcludedLayers = c.ExclusionMask()
	g.ShowDebugRay = c.ShowDebugRay
	g.DebugRayLength = c.DebugRayLength
	g.DebugRayDuration = c.DebugRayDuration
	return g
}

// LogSummary prints the effective settings.
func (c Config) LogSummary() {
	log.Printf("Config: mode=%s scene=%s ray=%.0f excluded=%v window=%dx%d audio=%v",
		c.Mode, c.Scene, c.RayLength, c.ExcludedLayers, c.WindowWidth, c.WindowHeight, c.Audio)
}
