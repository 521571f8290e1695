package core

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/chewxy/math32"
	"github.com/pelletier/go-toml/v2"
)

// Config is the viewer configuration, read from a TOML file.
//
//	[window]
//	width = 1280
//	height = 720
//
//	[cylinder]
//	segments = 20
//	height = 3.0
type Config struct {
	Window   WindowConfig   `toml:"window"`
	Cylinder CylinderConfig `toml:"cylinder"`
	Camera   CameraConfig   `toml:"camera"`
	Axes     AxesConfig     `toml:"axes"`
	Log      LogConfig      `toml:"log"`
}

type CylinderConfig struct {
	Segments int     `toml:"segments"`
	Height   float32 `toml:"height"`
}

// CameraConfig places a fixed camera looking at the origin. Angles are in degrees.
type CameraConfig struct {
	FOV       float32 `toml:"fov"`
	Near      float32 `toml:"near"`
	Far       float32 `toml:"far"`
	Distance  float32 `toml:"distance"`
	Elevation float32 `toml:"elevation"`
}

// AxesConfig controls the coordinate axes drawn next to the barrel.
type AxesConfig struct {
	Visible bool    `toml:"visible"`
	Length  float32 `toml:"length"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

func DefaultConfig() Config {
	return Config{
		Window: DefaultWindowConfig(),
		Cylinder: CylinderConfig{
			Segments: 20,
			Height:   3,
		},
		Camera: CameraConfig{
			FOV:       60,
			Near:      0.1,
			Far:       10,
			Distance:  5,
			Elevation: 20,
		},
		Axes: AxesConfig{Visible: true, Length: 4},
		Log:  LogConfig{Level: "info"},
	}
}

// LoadConfig reads path on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	cfg, err := DecodeConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// DecodeConfig decodes TOML from r on top of DefaultConfig. Unknown keys are
// an error so that typos do not silently fall back to defaults.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the viewer cannot run with. The mesh builder
// itself accepts any segment count; fewer than three segments only make
// sense when exporting, so the viewer refuses them.
func (c Config) Validate() error {
	for name, v := range c.floats() {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidConfig, name, v)
		}
	}
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Cylinder.Segments < 3:
		return fmt.Errorf("%w: cylinder.segments must be at least 3, got %d", ErrInvalidConfig, c.Cylinder.Segments)
	case c.Cylinder.Height == 0:
		return fmt.Errorf("%w: cylinder.height must be non-zero", ErrInvalidConfig)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("%w: camera.fov %v out of (0, 180)", ErrInvalidConfig, c.Camera.FOV)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: camera clip range [%v, %v]", ErrInvalidConfig, c.Camera.Near, c.Camera.Far)
	case c.Camera.Distance <= 0:
		return fmt.Errorf("%w: camera.distance must be positive", ErrInvalidConfig)
	case c.Axes.Visible && c.Axes.Length <= 0:
		return fmt.Errorf("%w: axes.length must be positive", ErrInvalidConfig)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c Config) floats() map[string]float32 {
	bg := c.Window.Background
	return map[string]float32{
		"window.background.r": bg.R,
		"window.background.g": bg.G,
		"window.background.b": bg.B,
		"window.background.a": bg.A,
		"cylinder.height":     c.Cylinder.Height,
		"camera.fov":          c.Camera.FOV,
		"camera.near":         c.Camera.Near,
		"camera.far":          c.Camera.Far,
		"camera.distance":     c.Camera.Distance,
		"camera.elevation":    c.Camera.Elevation,
		"axes.length":         c.Axes.Length,
	}
}
