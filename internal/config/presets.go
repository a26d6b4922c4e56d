package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownPreset is returned when a preset name is not configured.
var ErrUnknownPreset = errors.New("unknown preset")

// Limits applied by Sanitize.
const (
	MinGravity  = 0.1
	MaxGravity  = 1e6
	MaxAngle    = 90.0
	MaxSpeed    = 1e6 // m/s
	MaxDistance = 1e9 // m, bounds |x0| and y0
)

// Preset is a named gravity body, optionally with launch overrides.
type Preset struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	G           float64  `yaml:"g"`
	X0          *float64 `yaml:"x0,omitempty"`
	Y0          *float64 `yaml:"y0,omitempty"`
	V0          *float64 `yaml:"v0,omitempty"`
	Deg         *float64 `yaml:"deg,omitempty"`
}

// Preset looks up a preset by name, ignoring case.
func (c Config) Preset(name string) (Preset, error) {
	for _, p := range c.Presets {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("config: %q: %w", name, ErrUnknownPreset)
}

// PresetNames returns the configured preset names in file order.
func (c Config) PresetNames() []string {
	names := make([]string, len(c.Presets))
	for i, p := range c.Presets {
		names[i] = p.Name
	}
	return names
}

// ApplyPreset overrides gravity and any launch fields the preset sets.
func ApplyPreset(cfg *Config, name string) error {
	p, err := cfg.Preset(name)
	if err != nil {
		return err
	}
	cfg.Launch = p.Apply(cfg.Launch)
	return nil
}

// Apply returns l with the preset's values applied.
func (p Preset) Apply(l LaunchConfig) LaunchConfig {
	if p.G != 0 {
		l.G = p.G
	}
	if p.X0 != nil {
		l.X0 = *p.X0
	}
	if p.Y0 != nil {
		l.Y0 = *p.Y0
	}
	if p.V0 != nil {
		l.V0 = *p.V0
	}
	if p.Deg != nil {
		l.Deg = *p.Deg
	}
	return l.Sanitize()
}

// Sanitize restricts a launch to the values the lab accepts: angle within
// [0, 90], height and speed between zero and MaxDistance and MaxSpeed,
// gravity between MinGravity and MaxGravity. NaN or infinite fields fall
// back to DefaultLaunch. Within these limits every result of the engine is
// finite.
func (l LaunchConfig) Sanitize() LaunchConfig {
	def := DefaultLaunch()

	l.X0 = clamp(finiteOr(l.X0, def.X0), -MaxDistance, MaxDistance)
	l.Y0 = clamp(finiteOr(l.Y0, def.Y0), 0, MaxDistance)
	l.V0 = clamp(finiteOr(l.V0, def.V0), 0, MaxSpeed)
	l.Deg = clamp(finiteOr(l.Deg, def.Deg), 0, MaxAngle)
	l.G = clamp(finiteOr(l.G, def.G), MinGravity, MaxGravity)
	return l
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func finiteOr(v, def float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}
