package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubestate"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "", cfg.DBPath)
	assert.False(t, cfg.Validate)
	assert.Equal(t, DefaultRenderSize, cfg.Render.Size)
	assert.Equal(t, DefaultRenderElevation, cfg.Render.Elevation)
	assert.Equal(t, DefaultRenderAzimuth, cfg.Render.Azimuth)
	assert.Empty(t, cfg.Render.Palette)
	assert.False(t, cfg.Log.Verbose)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
db_path: /tmp/cubes.db
validate: true
render:
  size: 800
  elevation: 35
  azimuth: -45
  palette:
    white: "#EEEEEE"
    green: "#00AA00"
log:
  verbose: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/cubes.db", cfg.DBPath)
	assert.True(t, cfg.Validate)
	assert.Equal(t, 800, cfg.Render.Size)
	assert.Equal(t, 35.0, cfg.Render.Elevation)
	assert.Equal(t, -45.0, cfg.Render.Azimuth)
	assert.True(t, cfg.Log.Verbose)

	assert.Equal(t, map[cubestate.Color]string{
		cubestate.White: "#EEEEEE",
		cubestate.Green: "#00AA00",
	}, cfg.PaletteOverrides())
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "render:\n  size: 800\n")
	t.Setenv("CUBESTATE_RENDER_SIZE", "320")
	t.Setenv("CUBESTATE_DB_PATH", "/var/lib/cubes.db")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 320, cfg.Render.Size)
	assert.Equal(t, "/var/lib/cubes.db", cfg.DBPath)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero size", "render:\n  size: 0\n"},
		{"unknown color", "render:\n  palette:\n    purple: \"#800080\"\n"},
		{"bad hex", "render:\n  palette:\n    red: red\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "render: [unterminated\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}
