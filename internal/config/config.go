// Package config provides YAML-based configuration loading for parabola:
// launch defaults, gravity presets, sampling, plotting and server settings.
package config

import (
	"time"

	"github.com/vovakirdan/parabola/internal/core"
	"github.com/vovakirdan/parabola/internal/plot"
	"github.com/vovakirdan/parabola/internal/projectile"
)

// Config is the complete parabola configuration.
type Config struct {
	Launch   LaunchConfig   `yaml:"launch"`
	Sampling SamplingConfig `yaml:"sampling"`
	Query    QueryConfig    `yaml:"query"`
	Plot     PlotConfig     `yaml:"plot"`
	Presets  []Preset       `yaml:"presets"`
	Lab      LabConfig      `yaml:"lab"`
	Server   ServerConfig   `yaml:"server"`
}

// LaunchConfig holds the initial conditions used when no flag overrides them.
type LaunchConfig struct {
	X0  float64 `yaml:"x0"`
	Y0  float64 `yaml:"y0"`
	V0  float64 `yaml:"v0"`
	Deg float64 `yaml:"deg"`
	G   float64 `yaml:"g"`
}

// SamplingConfig controls how many points are sampled along a trajectory.
type SamplingConfig struct {
	Points    int `yaml:"points"`     // CLI and exporters
	LabPoints int `yaml:"lab_points"` // interactive plot
}

// QueryConfig controls point-on-trajectory lookups.
type QueryConfig struct {
	Tolerance float64 `yaml:"tolerance"` // agreement tolerance for multi-coordinate queries
}

// PlotConfig defines the plot layout in world metres.
type PlotConfig struct {
	GridStep      float64 `yaml:"grid_step"`
	BarrelLength  float64 `yaml:"barrel_length"`
	MinSpanX      float64 `yaml:"min_span_x"`
	MinSpanY      float64 `yaml:"min_span_y"`
	FallbackSpanX float64 `yaml:"fallback_span_x"`
	Margin        float64 `yaml:"margin"`
	CellAspect    float64 `yaml:"cell_aspect"`
}

// LabConfig defines the interactive lab behaviour.
type LabConfig struct {
	TickRate int       `yaml:"tick_rate"` // animation frames per second
	Steps    StepSizes `yaml:"steps"`
}

// StepSizes are the increments applied by one key press in the lab.
type StepSizes struct {
	Y0  float64 `yaml:"y0"`
	V0  float64 `yaml:"v0"`
	Deg float64 `yaml:"deg"`
	G   float64 `yaml:"g"`
}

// ServerConfig defines the SSH and live HTTP listeners.
type ServerConfig struct {
	SSHAddr            string `yaml:"ssh_addr"`
	HTTPAddr           string `yaml:"http_addr"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
	HostKey            string `yaml:"host_key"` // empty means ~/.parabola/host_key
}

// Launch converts the configured launch into engine input.
func (l LaunchConfig) Launch() projectile.Launch {
	return projectile.Launch{X0: l.X0, Y0: l.Y0, V0: l.V0, Deg: l.Deg, G: l.G}
}

// FromLaunch converts engine input back into a LaunchConfig.
func FromLaunch(l projectile.Launch) LaunchConfig {
	return LaunchConfig{X0: l.X0, Y0: l.Y0, V0: l.V0, Deg: l.Deg, G: l.G}
}

// Layout returns the plot viewport layout.
func (p PlotConfig) Layout() plot.Layout {
	return plot.Layout{
		MinSpanX:      p.MinSpanX,
		MinSpanY:      p.MinSpanY,
		FallbackSpanX: p.FallbackSpanX,
		Margin:        p.Margin,
		CellAspect:    p.CellAspect,
	}
}

// Options returns the plot drawing options.
func (p PlotConfig) Options() plot.Options {
	return plot.Options{
		GridStep:     p.GridStep,
		BarrelLength: p.BarrelLength,
		Labels:       true,
	}
}

// Runtime returns the terminal runtime settings for the lab.
func (l LabConfig) Runtime() core.RuntimeConfig {
	rc := core.DefaultConfig()
	if l.TickRate > 0 {
		rc.TickRate = l.TickRate
	}
	return rc
}

// IdleTimeout returns the SSH idle timeout as a duration.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}
