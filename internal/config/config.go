// Package config holds the tunable constants of the emblem and loads
// overrides from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"emblem/internal/shapes"
)

// Renderer names.
const (
	RendererWarp    = "warp"
	RendererStretch = "stretch"
)

type Config struct {
	// Renderer selects the raster warp ("warp") or the vector stretch ("stretch").
	Renderer string `toml:"renderer" yaml:"renderer"`
	// LogoPath is an optional image used by the warp renderer instead of
	// the rasterised emblem.
	LogoPath string `toml:"logo" yaml:"logo"`
	LogFile  string `toml:"log_file" yaml:"log_file"`
	Debug    bool   `toml:"debug" yaml:"debug"`

	Warp    Warp    `toml:"warp" yaml:"warp"`
	Stretch Stretch `toml:"stretch" yaml:"stretch"`
	Layout  Layout  `toml:"layout" yaml:"layout"`
	Timing  Timing  `toml:"timing" yaml:"timing"`
	Colors  Colors  `toml:"colors" yaml:"colors"`

	Links []shapes.Link `toml:"links" yaml:"links"`
	// Shapes replace builtin shapes of the same name or add new ones.
	Shapes []shapes.Def `toml:"shapes" yaml:"shapes"`
}

type Warp struct {
	StrengthMinimized float64 `toml:"strength_minimized" yaml:"strength_minimized"`
	StrengthExpanded  float64 `toml:"strength_expanded" yaml:"strength_expanded"`
	// Window is the half-width of the hover window, in radians.
	Window          float64 `toml:"window" yaml:"window"`
	WindowFrequency float64 `toml:"window_frequency" yaml:"window_frequency"`
	Ripple          float64 `toml:"ripple" yaml:"ripple"`
	Workers         int     `toml:"workers" yaml:"workers"`
}

type Stretch struct {
	Subdivisions int     `toml:"subdivisions" yaml:"subdivisions"`
	Base         float64 `toml:"base" yaml:"base"`
	Coefficient  float64 `toml:"coefficient" yaml:"coefficient"`
}

// Layout is measured in logical units of the canvases the two renderers
// draw on.
type Layout struct {
	ArrowCount        int     `toml:"arrow_count" yaml:"arrow_count"`
	CanvasWidth       float64 `toml:"canvas_width" yaml:"canvas_width"`
	CanvasHeight      float64 `toml:"canvas_height" yaml:"canvas_height"`
	LogoSizeExpanded  float64 `toml:"logo_size_expanded" yaml:"logo_size_expanded"`
	LogoSizeMinimized float64 `toml:"logo_size_minimized" yaml:"logo_size_minimized"`
	LogoTopMinimized  float64 `toml:"logo_top_minimized" yaml:"logo_top_minimized"`
	LabelDistance     float64 `toml:"label_distance" yaml:"label_distance"`
	ButtonWidth       float64 `toml:"button_width" yaml:"button_width"`
	ButtonHeight      float64 `toml:"button_height" yaml:"button_height"`
	VectorSize        float64 `toml:"vector_size" yaml:"vector_size"`
}

type Timing struct {
	MinimizeDelay Duration `toml:"minimize_delay" yaml:"minimize_delay"`
	FrameInterval Duration `toml:"frame_interval" yaml:"frame_interval"`
}

type Colors struct {
	Fill      string `toml:"fill" yaml:"fill"`
	Highlight string `toml:"highlight" yaml:"highlight"`
	Label     string `toml:"label" yaml:"label"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Renderer: RendererWarp,
		Warp: Warp{
			StrengthMinimized: 10,
			StrengthExpanded:  0,
			Window:            math.Pi / 8,
			WindowFrequency:   8,
			Ripple:            4,
			Workers:           1,
		},
		Stretch: Stretch{Subdivisions: 100, Base: 1, Coefficient: 2},
		Layout: Layout{
			ArrowCount:        8,
			CanvasWidth:       800,
			CanvasHeight:      400,
			LogoSizeExpanded:  200,
			LogoSizeMinimized: 80,
			LogoTopMinimized:  20,
			LabelDistance:     70,
			ButtonWidth:       80,
			ButtonHeight:      30,
			VectorSize:        shapes.Size,
		},
		Timing: Timing{
			MinimizeDelay: Duration{2 * time.Second},
			FrameInterval: Duration{time.Second / 30},
		},
		Colors: Colors{Fill: "#4B0082", Highlight: "#7C3AED", Label: "#E6E6E6"},
		Links:  shapes.DefaultLinks(),
	}
}

// Load overlays the file at p onto Default. The format follows the
// extension: .toml, .yaml or .yml.
func Load(p string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(p)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(p)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("config: unsupported format %q", ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", filepath.Base(p), err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", filepath.Base(p), err)
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}
	check(c.Renderer == RendererWarp || c.Renderer == RendererStretch, "renderer %q: want %q or %q", c.Renderer, RendererWarp, RendererStretch)
	check(c.Warp.Window > 0, "warp.window must be positive")
	check(c.Warp.Workers >= 0, "warp.workers must not be negative")
	check(c.Stretch.Subdivisions > 0, "stretch.subdivisions must be positive")
	check(c.Layout.ArrowCount > 0, "layout.arrow_count must be positive")
	check(c.Layout.CanvasWidth > 0 && c.Layout.CanvasHeight > 0, "layout canvas must have an area")
	check(c.Layout.VectorSize > 0, "layout.vector_size must be positive")
	check(c.Layout.LogoSizeExpanded > 0 && c.Layout.LogoSizeMinimized > 0, "layout logo sizes must be positive")
	check(c.Timing.MinimizeDelay.Duration >= 0, "timing.minimize_delay must not be negative")
	check(c.Timing.FrameInterval.Duration > 0, "timing.frame_interval must be positive")
	check(len(c.Links) >= c.Layout.ArrowCount, "need %d links, have %d", c.Layout.ArrowCount, len(c.Links))
	for _, col := range []string{c.Colors.Fill, c.Colors.Highlight, c.Colors.Label} {
		check(isHex(col), "color %q: want #rrggbb", col)
	}
	return errors.Join(errs...)
}

func isHex(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}

// Duration reads and writes durations as strings such as "2s".
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}
