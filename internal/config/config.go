package config

import (
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/pendwave/internal/wave"
)

// Default tuning, matching the classic 60-second desk-toy wave.
const (
	DefaultScreenWidth      = 1800
	DefaultScreenHeight     = 1000
	DefaultCount            = 25
	DefaultTotalPeriodS     = 60.0
	DefaultBaseOscillations = 50
	DefaultMaxAmplitudeDeg  = 22.0
	DefaultBobRadius        = 12.0
	DefaultMaxVisualRatio   = 0.8
	DefaultGravity          = 9.81
	DefaultPivotY           = 50.0
	DefaultFrameRateLimit   = 120
)

// BackgroundColor is the clear color shared by both frontends.
var BackgroundColor = wave.RGB{R: 15, G: 15, B: 30}

// Config is the startup-only configuration surface. Nothing here is
// reconfigurable mid-run; changing it means rebuilding the field.
type Config struct {
	ScreenWidth      int     `yaml:"screen_width"`
	ScreenHeight     int     `yaml:"screen_height"`
	Count            int     `yaml:"count"`             // number of pendulums
	TotalPeriodS     float64 `yaml:"total_period_s"`    // re-convergence interval
	BaseOscillations int     `yaml:"base_oscillations"` // how "tight" the wave is
	MaxAmplitudeDeg  float64 `yaml:"max_amplitude_deg"` // swing angle bound
	BobRadius        float64 `yaml:"bob_radius"`
	MaxVisualRatio   float64 `yaml:"max_visual_length_ratio"`
	Gravity          float64 `yaml:"gravity"`
	PivotY           float64 `yaml:"pivot_y"`
	FrameRateLimit   int     `yaml:"frame_rate_limit"`
}

func DefaultConfig() *Config {
	return &Config{
		ScreenWidth:      DefaultScreenWidth,
		ScreenHeight:     DefaultScreenHeight,
		Count:            DefaultCount,
		TotalPeriodS:     DefaultTotalPeriodS,
		BaseOscillations: DefaultBaseOscillations,
		MaxAmplitudeDeg:  DefaultMaxAmplitudeDeg,
		BobRadius:        DefaultBobRadius,
		MaxVisualRatio:   DefaultMaxVisualRatio,
		Gravity:          DefaultGravity,
		PivotY:           DefaultPivotY,
		FrameRateLimit:   DefaultFrameRateLimit,
	}
}

// Load reads a yaml config file over the defaults, so a partial file only
// overrides the keys it names.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as yaml.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Tuning converts the surface into the immutable model constants,
// degrees to radians included. Validation lives on the tuning itself.
func (c *Config) Tuning() wave.Tuning {
	return wave.Tuning{
		Count:            c.Count,
		TotalPeriodS:     c.TotalPeriodS,
		BaseOscillations: c.BaseOscillations,
		AmplitudeRad:     c.MaxAmplitudeDeg * math.Pi / 180,
		Gravity:          c.Gravity,
		ScreenWidth:      float64(c.ScreenWidth),
		ScreenHeight:     float64(c.ScreenHeight),
		MaxVisualRatio:   c.MaxVisualRatio,
		BobRadius:        c.BobRadius,
		PivotY:           c.PivotY,
	}
}

// Validate fails fast on a configuration that cannot produce a field.
func (c *Config) Validate() error {
	return c.Tuning().Validate()
}
