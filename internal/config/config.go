// Package config loads cubestate settings from a YAML file, the environment
// and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/viper"

	"github.com/SeamusWaldron/cubestate"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "CUBESTATE"

	// Config keys
	KeyDBPath          = "db_path"
	KeyValidate        = "validate"
	KeyRenderSize      = "render.size"
	KeyRenderElevation = "render.elevation"
	KeyRenderAzimuth   = "render.azimuth"
	KeyRenderPalette   = "render.palette"
	KeyLogVerbose      = "log.verbose"
)

// Defaults
const (
	DefaultRenderSize      = 480
	DefaultRenderElevation = 20.0
	DefaultRenderAzimuth   = 30.0
)

// ErrInvalidConfig is returned when a loaded value is out of range.
var ErrInvalidConfig = errors.New("config: invalid value")

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Config holds all settings.
type Config struct {
	DBPath   string `mapstructure:"db_path"`
	Validate bool   `mapstructure:"validate"`
	Render   Render `mapstructure:"render"`
	Log      Log    `mapstructure:"log"`
}

// Render holds drawing settings.
type Render struct {
	Size      int     `mapstructure:"size"`
	Elevation float64 `mapstructure:"elevation"`
	Azimuth   float64 `mapstructure:"azimuth"`
	// Palette overrides sticker colors, keyed by color name ("white", ...).
	Palette map[string]string `mapstructure:"palette"`
}

// Log holds logging settings.
type Log struct {
	Verbose bool `mapstructure:"verbose"`
}

// DefaultDir returns ~/.cubestate.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".cubestate"), nil
}

// Load reads the configuration. An empty path searches ~/.cubestate for
// config.yaml; a missing file there is not an error. An explicit path must
// exist. Environment variables such as CUBESTATE_DB_PATH or
// CUBESTATE_RENDER_SIZE override file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		if dir, err := DefaultDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyDBPath, "")
	v.SetDefault(KeyValidate, false)
	v.SetDefault(KeyRenderSize, DefaultRenderSize)
	v.SetDefault(KeyRenderElevation, DefaultRenderElevation)
	v.SetDefault(KeyRenderAzimuth, DefaultRenderAzimuth)
	v.SetDefault(KeyRenderPalette, map[string]string{})
	v.SetDefault(KeyLogVerbose, false)
}

func (c *Config) validate() error {
	if c.Render.Size <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, KeyRenderSize, c.Render.Size)
	}
	for name, hex := range c.Render.Palette {
		if _, err := cubestate.ParseColor(name); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, KeyRenderPalette, err)
		}
		if !hexColor.MatchString(hex) {
			return fmt.Errorf("%w: %s.%s: %q is not a #RRGGBB color", ErrInvalidConfig, KeyRenderPalette, name, hex)
		}
	}
	return nil
}

// PaletteOverrides returns the palette overrides keyed by Color.
func (c *Config) PaletteOverrides() map[cubestate.Color]string {
	out := make(map[cubestate.Color]string, len(c.Render.Palette))
	for name, hex := range c.Render.Palette {
		color, err := cubestate.ParseColor(name)
		if err != nil {
			continue
		}
		out[color] = hex
	}
	return out
}
