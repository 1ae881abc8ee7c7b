package config

import "sort"

// Presets are named variations over the defaults. Each entry is a full
// config so presets survive changes to the defaults.
var Presets = map[string]*Config{
	"classic": DefaultConfig(),
	"tight": {
		ScreenWidth: DefaultScreenWidth, ScreenHeight: DefaultScreenHeight,
		Count: 25, TotalPeriodS: 60, BaseOscillations: 80,
		MaxAmplitudeDeg: 22, BobRadius: 12, MaxVisualRatio: 0.8,
		Gravity: DefaultGravity, PivotY: DefaultPivotY, FrameRateLimit: DefaultFrameRateLimit,
	},
	"gentle": {
		ScreenWidth: DefaultScreenWidth, ScreenHeight: DefaultScreenHeight,
		Count: 25, TotalPeriodS: 60, BaseOscillations: 50,
		MaxAmplitudeDeg: 10, BobRadius: 12, MaxVisualRatio: 0.8,
		Gravity: DefaultGravity, PivotY: DefaultPivotY, FrameRateLimit: DefaultFrameRateLimit,
	},
	"slow": {
		ScreenWidth: DefaultScreenWidth, ScreenHeight: DefaultScreenHeight,
		Count: 25, TotalPeriodS: 120, BaseOscillations: 50,
		MaxAmplitudeDeg: 22, BobRadius: 12, MaxVisualRatio: 0.8,
		Gravity: DefaultGravity, PivotY: DefaultPivotY, FrameRateLimit: DefaultFrameRateLimit,
	},
	"sparse": {
		ScreenWidth: DefaultScreenWidth, ScreenHeight: DefaultScreenHeight,
		Count: 12, TotalPeriodS: 60, BaseOscillations: 50,
		MaxAmplitudeDeg: 22, BobRadius: 18, MaxVisualRatio: 0.8,
		Gravity: DefaultGravity, PivotY: DefaultPivotY, FrameRateLimit: DefaultFrameRateLimit,
	},
}

// GetPreset returns the named preset, or nil if it does not exist.
func GetPreset(name string) *Config {
	return Presets[name]
}

// ListPresets returns the preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
