package config

import (
	_ "embed"
)

//go:embed defaults/parabola.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded configuration. It matches the embedded
// defaults/parabola.yaml and is used when that file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Launch: DefaultLaunch(),
		Sampling: SamplingConfig{
			Points:    80,
			LabPoints: 120,
		},
		Query: QueryConfig{
			Tolerance: 0.01,
		},
		Plot: PlotConfig{
			GridStep:      5,
			BarrelLength:  2,
			MinSpanX:      40,
			MinSpanY:      30,
			FallbackSpanX: 60,
			Margin:        5,
			CellAspect:    2,
		},
		Presets: []Preset{
			{Name: "earth", Description: "Standard Earth gravity", G: 9.81},
			{Name: "moon", Description: "Lunar surface", G: 1.62},
			{Name: "mars", Description: "Martian surface", G: 3.71},
			{Name: "jupiter", Description: "Jovian cloud tops", G: 24.79},
		},
		Lab: LabConfig{
			TickRate: 30,
			Steps: StepSizes{
				Y0:  0.5,
				V0:  1,
				Deg: 5,
				G:   0.5,
			},
		},
		Server: ServerConfig{
			SSHAddr:            ":23234",
			HTTPAddr:           ":8080",
			IdleTimeoutMinutes: 30,
		},
	}
}

// DefaultLaunch returns the launch the lab opens with.
func DefaultLaunch() LaunchConfig {
	return LaunchConfig{
		X0:  0,
		Y0:  2,
		V0:  20,
		Deg: 45,
		G:   9.81,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
