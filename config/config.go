// Package config loads particle-field settings from an optional TOML file
// Every key is optional; omitted keys keep the built-in defaults
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/particle-field/audio"
	"github.com/lixenwraith/particle-field/constants"
	"github.com/lixenwraith/particle-field/core"
	"github.com/lixenwraith/particle-field/field"
)

// Config mirrors the TOML file layout
type Config struct {
	Field   FieldSection   `toml:"field"`
	Links   LinkSection    `toml:"links"`
	Pointer LinkSection    `toml:"pointer"`
	Display DisplaySection `toml:"display"`
	Loader  LoaderSection  `toml:"loader"`
	Audio   AudioSection   `toml:"audio"`
}

type FieldSection struct {
	AreaDivisor  float64 `toml:"area_divisor"`
	MaxParticles int     `toml:"max_particles"`
	Speed        float64 `toml:"speed"`
	RadiusMin    float64 `toml:"radius_min"`
	RadiusMax    float64 `toml:"radius_max"`
	AlphaMin     float64 `toml:"alpha_min"`
	AlphaMax     float64 `toml:"alpha_max"`
	Color        string  `toml:"color"`
	Seed         uint64  `toml:"seed"` // 0 seeds from the clock
}

type LinkSection struct {
	Divisor float64 `toml:"divisor"`
	Min     float64 `toml:"min"`
	Max     float64 `toml:"max"`
	Fade    float64 `toml:"fade"`
	Width   float64 `toml:"width"`
	Color   string  `toml:"color"`
}

type DisplaySection struct {
	FPS        int     `toml:"fps"`
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`
	Background string  `toml:"background"`
	ColorMode  string  `toml:"color_mode"`
	HUD        bool    `toml:"hud"`
}

type LoaderSection struct {
	Enabled    bool `toml:"enabled"`
	DurationMS int  `toml:"duration_ms"`
}

type AudioSection struct {
	Enabled    bool    `toml:"enabled"`
	Volume     float64 `toml:"volume"`
	SampleRate int     `toml:"sample_rate"`
}

// Default returns the built-in settings
func Default() Config {
	fc := field.DefaultConfig()
	ac := audio.DefaultConfig()
	return Config{
		Field: FieldSection{
			AreaDivisor:  fc.AreaDivisor,
			MaxParticles: fc.MaxParticles,
			Speed:        fc.Speed,
			RadiusMin:    fc.RadiusMin,
			RadiusMax:    fc.RadiusMax,
			AlphaMin:     fc.AlphaMin,
			AlphaMax:     fc.AlphaMax,
			Color:        fc.Color.Hex(),
		},
		Links:   linkSection(fc.Links),
		Pointer: linkSection(fc.Pointer),
		Display: DisplaySection{
			FPS:        constants.DefaultFPS,
			CellWidth:  constants.CellWidth,
			CellHeight: constants.CellHeight,
			Background: constants.BackgroundColorHex,
			ColorMode:  "auto",
		},
		Loader: LoaderSection{
			Enabled:    true,
			DurationMS: int(constants.LoaderDuration / time.Millisecond),
		},
		Audio: AudioSection{
			Enabled:    ac.Enabled,
			Volume:     ac.Volume,
			SampleRate: ac.SampleRate,
		},
	}
}

func linkSection(r field.LinkRule) LinkSection {
	return LinkSection{
		Divisor: r.Divisor,
		Min:     r.Min,
		Max:     r.Max,
		Fade:    r.Fade,
		Width:   r.Width,
		Color:   r.Color.Hex(),
	}
}

// Load decodes path over the defaults and validates the result
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every section, collecting all problems
func (c Config) Validate() error {
	var errs []error

	if _, err := c.FieldConfig(); err != nil {
		errs = append(errs, err)
	}
	if _, err := core.ParseHex(c.Display.Background); err != nil {
		errs = append(errs, fmt.Errorf("display.background: %w", err))
	}
	if c.Display.FPS <= 0 || c.Display.FPS > 240 {
		errs = append(errs, fmt.Errorf("display.fps must be in [1,240], got %d", c.Display.FPS))
	}
	if c.Display.CellWidth <= 0 || c.Display.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("display cell size must be positive, got %vx%v", c.Display.CellWidth, c.Display.CellHeight))
	}
	switch strings.ToLower(c.Display.ColorMode) {
	case "", "auto", "256", "truecolor", "true", "24bit":
	default:
		errs = append(errs, fmt.Errorf("display.color_mode: unknown mode %q", c.Display.ColorMode))
	}
	if c.Loader.DurationMS < 0 {
		errs = append(errs, fmt.Errorf("loader.duration_ms must not be negative, got %d", c.Loader.DurationMS))
	}
	if c.Audio.Volume <= 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be in (0,1], got %v", c.Audio.Volume))
	}
	if c.Audio.SampleRate < 8000 {
		errs = append(errs, fmt.Errorf("audio.sample_rate too low: %d", c.Audio.SampleRate))
	}

	return errors.Join(errs...)
}

// FieldConfig converts the field, links and pointer sections
func (c Config) FieldConfig() (field.Config, error) {
	color, err := core.ParseHex(c.Field.Color)
	if err != nil {
		return field.Config{}, fmt.Errorf("field.color: %w", err)
	}
	links, err := c.Links.rule("links")
	if err != nil {
		return field.Config{}, err
	}
	pointer, err := c.Pointer.rule("pointer")
	if err != nil {
		return field.Config{}, err
	}

	fc := field.Config{
		AreaDivisor:  c.Field.AreaDivisor,
		MaxParticles: c.Field.MaxParticles,
		Speed:        c.Field.Speed,
		RadiusMin:    c.Field.RadiusMin,
		RadiusMax:    c.Field.RadiusMax,
		AlphaMin:     c.Field.AlphaMin,
		AlphaMax:     c.Field.AlphaMax,
		Color:        color,
		Links:        links,
		Pointer:      pointer,
	}
	if err := fc.Validate(); err != nil {
		return field.Config{}, err
	}
	return fc, nil
}

func (s LinkSection) rule(name string) (field.LinkRule, error) {
	color, err := core.ParseHex(s.Color)
	if err != nil {
		return field.LinkRule{}, fmt.Errorf("%s.color: %w", name, err)
	}
	return field.LinkRule{
		Divisor: s.Divisor,
		Min:     s.Min,
		Max:     s.Max,
		Fade:    s.Fade,
		Width:   s.Width,
		Color:   color,
	}, nil
}

// AudioConfig converts the audio section
func (c Config) AudioConfig() audio.Config {
	return audio.Config{
		Enabled:    c.Audio.Enabled,
		Volume:     c.Audio.Volume,
		SampleRate: c.Audio.SampleRate,
	}
}

// Background returns the parsed background color, black if invalid
func (c Config) Background() core.RGB {
	bg, err := core.ParseHex(c.Display.Background)
	if err != nil {
		return core.RGBBlack
	}
	return bg
}

// FrameInterval returns the repaint period for the configured fps
func (c Config) FrameInterval() time.Duration {
	if c.Display.FPS <= 0 {
		return constants.FrameUpdateInterval
	}
	return time.Second / time.Duration(c.Display.FPS)
}

// LoaderDuration returns how long the intro spinner holds; zero when disabled
func (c Config) LoaderDuration() time.Duration {
	if !c.Loader.Enabled {
		return 0
	}
	return time.Duration(c.Loader.DurationMS) * time.Millisecond
}
