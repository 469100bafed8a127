package lunar

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, WindowConfig{Width: 800, Height: 600}, cfg.Window)
	assert.Equal(t, float32(75), cfg.Camera.ViewDistance)
	assert.Len(t, cfg.Fleet, 8)
}

func TestParseConfig_Overlay(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
window:
  width: 1280
camera:
  translate_speed: 40
log:
  debug: true
`))
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height, "unset fields keep their defaults")
	assert.Equal(t, float32(40), cfg.Camera.TranslateSpeed)
	assert.Equal(t, float32(1), cfg.Camera.RotateSpeed)
	assert.True(t, cfg.Log.Debug)
	assert.Equal(t, "lunar", cfg.Log.Prefix)
	assert.Equal(t, defaultFleetEntries(), cfg.Fleet)
}

func TestParseConfig_FleetReplacesDefault(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
fleet:
  - position: [1, 2, 3]
    rotation: [0, 0.5, 0]
    time_offset: 1.25
`))
	require.NoError(t, err)

	require.Len(t, cfg.Fleet, 1)
	assert.Equal(t, FleetEntry{
		Position:   [3]float32{1, 2, 3},
		Rotation:   [3]float32{0, 0.5, 0},
		TimeOffset: 1.25,
	}, cfg.Fleet[0])
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":      "window: [",
		"zero width":    "window: {width: 0}",
		"near past far": "camera: {near: 10, far: 5}",
		"zero speed":    "camera: {rotate_speed: 0}",
		"wide fov":      "camera: {fov_y_degrees: 180}",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseConfig([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lunar.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: {width: 640, height: 480}\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, WindowConfig{Width: 640, Height: 480}, cfg.Window)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("window: {height: -1}\n"), 0o644))
	_, err = LoadConfig(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yaml")
}
