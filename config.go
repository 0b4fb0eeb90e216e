package pinchcam

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// Position is a YAML-friendly world position.
type Position struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Vec3 converts the position to an mgl64 vector.
func (p Position) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, p.Z}
}

// Config holds the controller's tunables.
type Config struct {
	// MinDepth and MaxDepth bound the camera Z produced by pinch zoom.
	MinDepth float64 `yaml:"min_depth"`
	MaxDepth float64 `yaml:"max_depth"`

	// FOV is the camera's vertical field of view in degrees.
	FOV  float64 `yaml:"fov"`
	Near float64 `yaml:"near"`
	Far  float64 `yaml:"far"`

	// Home is the initial camera position and the ResetView target.
	Home Position `yaml:"home"`

	// Width and Height are the initial viewport size in pixels.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Debug bool `yaml:"debug"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		MinDepth: defaultMinDepth,
		MaxDepth: defaultMaxDepth,
		FOV:      75,
		Near:     0.1,
		Far:      1000,
		Home:     Position{Z: 5},
		Width:    640,
		Height:   480,
	}
}

// LoadConfig parses YAML (or JSON) on top of DefaultConfig and validates the
// result. Keys missing from data keep their default values.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case !(c.MinDepth > 0):
		return fmt.Errorf("config: min_depth must be positive, got %v", c.MinDepth)
	case !(c.MaxDepth > c.MinDepth) || !isFinite(c.MaxDepth):
		return fmt.Errorf("config: max_depth must be finite and greater than min_depth (%v), got %v", c.MinDepth, c.MaxDepth)
	case !(c.FOV > 0 && c.FOV < 180):
		return fmt.Errorf("config: fov must be in (0, 180), got %v", c.FOV)
	case !(c.Near > 0) || !(c.Far > c.Near):
		return fmt.Errorf("config: need 0 < near < far, got near=%v far=%v", c.Near, c.Far)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("config: viewport must be positive, got %dx%d", c.Width, c.Height)
	case !finiteVec3(c.Home.Vec3()) || c.Home.Z <= 0:
		return fmt.Errorf("config: home must be finite with positive z, got %+v", c.Home)
	}
	return nil
}
