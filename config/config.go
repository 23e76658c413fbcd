// Package config holds the viewer settings read from a YAML file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Model formats.
const (
	FormatSimple = "simple"
	FormatOBJ    = "obj"
)

type Config struct {
	Window   Window  `yaml:"window"`
	Model    Model   `yaml:"model"`
	Shaders  Shaders `yaml:"shaders"`
	Pose     Pose    `yaml:"pose"`
	LogLevel string  `yaml:"log_level"`
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Model selects the geometry to draw. An empty Path uses the embedded
// sample model.
type Model struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"`
}

// Shaders are paths to GLSL ES sources; empty paths use the embedded pair.
type Shaders struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

type Pose struct {
	Fov  float32 `yaml:"fov"`
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
	// Distance of the camera from the marker; 0 derives it from the model
	// bounds.
	Distance float32 `yaml:"distance"`
	// Automatic orbit speed in radians per second.
	Speed float32 `yaml:"speed"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:  800,
			Height: 600,
			Title:  "QR model",
		},
		Model: Model{
			Format: FormatSimple,
		},
		Pose: Pose{
			Fov:   45,
			Near:  0.1,
			Far:   100,
			Speed: 0.5,
		},
		LogLevel: "info",
	}
}

// Load reads path on top of the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	switch c.Model.Format {
	case FormatSimple, FormatOBJ:
	default:
		errs = append(errs, fmt.Errorf("unknown model format %q", c.Model.Format))
	}
	if c.Pose.Fov <= 0 || c.Pose.Fov >= 180 {
		errs = append(errs, fmt.Errorf("fov must be in (0, 180), got %v", c.Pose.Fov))
	}
	if c.Pose.Near <= 0 || c.Pose.Near >= c.Pose.Far {
		errs = append(errs, fmt.Errorf("need 0 < near < far, got near=%v far=%v", c.Pose.Near, c.Pose.Far))
	}
	if c.Pose.Distance < 0 {
		errs = append(errs, fmt.Errorf("distance must not be negative, got %v", c.Pose.Distance))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ParseLevel maps a log level name to its slog level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return 0, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}
