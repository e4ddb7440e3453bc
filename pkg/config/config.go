// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/user/ogimage/pkg/adapters/photofetch"
	"github.com/user/ogimage/pkg/composer"
	"github.com/user/ogimage/pkg/ports"
)

// Config represents the full configuration for ogimage.
type Config struct {
	Fonts       FontsConfig       `yaml:"fonts"`
	Photo       PhotoConfig       `yaml:"photo"`
	Output      OutputConfig      `yaml:"output"`
	Decorations DecorationsConfig `yaml:"decorations"`
	Theme       ThemeConfig       `yaml:"theme"`
	Log         LogConfig         `yaml:"log"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// FontsConfig points at TrueType files. Empty paths use the embedded Go fonts.
type FontsConfig struct {
	Regular string `yaml:"regular"`
	Bold    string `yaml:"bold"`
}

// PhotoConfig controls product photo loading.
type PhotoConfig struct {
	TimeoutMs int    `yaml:"timeout_ms"`
	Retries   int    `yaml:"retries"`
	UserAgent string `yaml:"user_agent"`
	MaxBytes  int64  `yaml:"max_bytes"`
}

// OutputConfig selects the card encoding.
type OutputConfig struct {
	Format  string `yaml:"format"`
	Quality int    `yaml:"quality"`
}

// DecorationsConfig controls the random dots.
type DecorationsConfig struct {
	Dots int   `yaml:"dots"`
	Seed int64 `yaml:"seed"`
}

// ThemeConfig overrides palette entries. Empty values keep the defaults.
type ThemeConfig struct {
	Primary       string `yaml:"primary"`
	PrimaryDark   string `yaml:"primary_dark"`
	Background    string `yaml:"background"`
	Text          string `yaml:"text"`
	TextSecondary string `yaml:"text_secondary"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Photo: PhotoConfig{
			TimeoutMs: 10000,
			Retries:   0,
			UserAgent: "ogimage/1.0",
			MaxBytes:  photofetch.DefaultMaxBytes,
		},
		Output: OutputConfig{
			Format:  "png",
			Quality: 90,
		},
		Decorations: DecorationsConfig{
			Dots: composer.DecorationDots,
		},
		Log: LogConfig{
			Level: "info",
		},
		DebugDir: "./debug",
	}
}

// Load parses YAML on top of Defaults.
func Load(data []byte) (Config, error) {
	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, cfg.Validate()
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(fs ports.FileSystem, path string) (Config, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return Defaults(), fmt.Errorf("read config %s: %w", path, err)
	}
	return Load(data)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, ok := ports.ParseImageFormat(c.Output.Format); !ok {
		return fmt.Errorf("output.format: unsupported format %q", c.Output.Format)
	}
	if c.Output.Quality < 1 || c.Output.Quality > 100 {
		return fmt.Errorf("output.quality: %d is outside 1-100", c.Output.Quality)
	}
	if c.Photo.TimeoutMs < 0 {
		return fmt.Errorf("photo.timeout_ms: must not be negative")
	}
	if c.Photo.Retries < 0 {
		return fmt.Errorf("photo.retries: must not be negative")
	}
	if _, err := c.ColorScheme(); err != nil {
		return err
	}
	return nil
}

// ColorScheme applies the theme overrides to the default palette.
func (c Config) ColorScheme() (composer.ColorScheme, error) {
	scheme := composer.DefaultColorScheme()
	overrides := []struct {
		key   string
		value string
		dst   *color.Color
	}{
		{"theme.primary", c.Theme.Primary, &scheme.Primary},
		{"theme.primary_dark", c.Theme.PrimaryDark, &scheme.PrimaryDark},
		{"theme.background", c.Theme.Background, &scheme.Background},
		{"theme.text", c.Theme.Text, &scheme.Text},
		{"theme.text_secondary", c.Theme.TextSecondary, &scheme.TextSecondary},
	}
	for _, o := range overrides {
		if o.value == "" {
			continue
		}
		col, err := ParseColor(o.value)
		if err != nil {
			return scheme, fmt.Errorf("%s: %w", o.key, err)
		}
		*o.dst = col
	}
	return scheme, nil
}

// ToComposerOptions converts Config to composer.Options.
func (c Config) ToComposerOptions() (composer.Options, error) {
	format, ok := ports.ParseImageFormat(c.Output.Format)
	if !ok {
		return composer.Options{}, fmt.Errorf("unsupported output format %q", c.Output.Format)
	}
	colors, err := c.ColorScheme()
	if err != nil {
		return composer.Options{}, err
	}

	dots := c.Decorations.Dots
	if dots == 0 {
		dots = -1
	}

	return composer.Options{
		Format:       format,
		Quality:      c.Output.Quality,
		PhotoTimeout: time.Duration(c.Photo.TimeoutMs) * time.Millisecond,
		Seed:         c.Decorations.Seed,
		Dots:         dots,
		Colors:       &colors,
	}, nil
}

// ToFetcherOptions converts Config to photofetch.Options.
func (c Config) ToFetcherOptions() photofetch.Options {
	return photofetch.Options{
		Retries:   c.Photo.Retries,
		UserAgent: c.Photo.UserAgent,
		MaxBytes:  c.Photo.MaxBytes,
	}
}

// ParseColor parses #RGB, #RRGGBB or #RRGGBBAA. The leading # is optional.
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}) + "ff"
	case 6:
		hex += "ff"
	case 8:
	default:
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
