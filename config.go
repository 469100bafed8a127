package lunar

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type CameraConfig struct {
	TranslateSpeed float32 `yaml:"translate_speed"`
	RotateSpeed    float32 `yaml:"rotate_speed"`
	FovYDegrees    float32 `yaml:"fov_y_degrees"`
	Near           float32 `yaml:"near"`
	Far            float32 `yaml:"far"`
	ViewDistance   float32 `yaml:"view_distance"`
}

type FleetEntry struct {
	Position   [3]float32 `yaml:"position"`
	Rotation   [3]float32 `yaml:"rotation"`
	TimeOffset float32    `yaml:"time_offset"`
}

type LogConfig struct {
	Prefix string `yaml:"prefix"`
	Debug  bool   `yaml:"debug"`
}

type Config struct {
	Window WindowConfig `yaml:"window"`
	Camera CameraConfig `yaml:"camera"`
	Fleet  []FleetEntry `yaml:"fleet"`
	Log    LogConfig    `yaml:"log"`
}

func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{Width: 800, Height: 600},
		Camera: CameraConfig{
			TranslateSpeed: 25,
			RotateSpeed:    1,
			FovYDegrees:    60,
			Near:           1,
			Far:            1000,
			ViewDistance:   75,
		},
		Fleet: defaultFleetEntries(),
		Log:   LogConfig{Prefix: "lunar"},
	}
}

func defaultFleetEntries() []FleetEntry {
	rot := [3]float32{0, 0.7, 0.4}
	return []FleetEntry{
		{Position: [3]float32{0, 0, 50}, Rotation: rot, TimeOffset: 0},
		{Position: [3]float32{0, 0, 0}, Rotation: rot, TimeOffset: 0},
		{Position: [3]float32{0, 0, 0}, Rotation: rot, TimeOffset: 0.75},
		{Position: [3]float32{0, 0, 0}, Rotation: rot, TimeOffset: 1.5},
		{Position: [3]float32{0, 10, 0}, Rotation: rot, TimeOffset: 1.5},
		{Position: [3]float32{0, 0, 0}, Rotation: rot, TimeOffset: 2.25},
		{Position: [3]float32{0, 0, 0}, Rotation: rot, TimeOffset: 3},
		{Position: [3]float32{0, 10, 0}, Rotation: rot, TimeOffset: 3},
	}
}

// ParseConfig overlays YAML data on DefaultConfig. A fleet given in data
// replaces the default fleet.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	cfg.Fleet = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse config")
	}
	if cfg.Fleet == nil {
		cfg.Fleet = defaultFleetEntries()
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %q", path)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %q", path)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Camera.TranslateSpeed <= 0 || c.Camera.RotateSpeed <= 0 {
		return errors.Errorf("camera speeds must be positive, got translate=%v rotate=%v",
			c.Camera.TranslateSpeed, c.Camera.RotateSpeed)
	}
	if c.Camera.FovYDegrees <= 0 || c.Camera.FovYDegrees >= 180 {
		return errors.Errorf("camera fov must be in (0, 180), got %v", c.Camera.FovYDegrees)
	}
	if c.Camera.Near <= 0 || c.Camera.Near >= c.Camera.Far {
		return errors.Errorf("camera clip planes must satisfy 0 < near < far, got near=%v far=%v",
			c.Camera.Near, c.Camera.Far)
	}
	return nil
}
