package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the user and local directories.
const FileName = "parabola.yaml"

// MinGridStep is the finest grid spacing in metres; smaller positive steps are raised to it.
const MinGridStep = 0.1

// Load loads the parabola configuration.
// Search order: customPath -> ~/.parabola/config.yaml -> ./configs/parabola.yaml -> embedded default.
// A file that exists but does not parse is an error.
// Keys missing from a file keep their default values.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory.
	// A file that exists but does not parse is an error, not a fallback.
	for _, path := range []string{UserPath("config.yaml"), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of DefaultConfig and fills any zero settings.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.normalize()
	return cfg, nil
}

// normalize replaces unusable zero or negative settings with defaults.
func (c *Config) normalize() {
	def := DefaultConfig()

	if c.Sampling.Points <= 0 {
		c.Sampling.Points = def.Sampling.Points
	}
	if c.Sampling.LabPoints <= 0 {
		c.Sampling.LabPoints = def.Sampling.LabPoints
	}
	if !(c.Query.Tolerance > 0) {
		c.Query.Tolerance = def.Query.Tolerance
	}
	if !(c.Plot.CellAspect > 0) {
		c.Plot.CellAspect = def.Plot.CellAspect
	}
	switch {
	case c.Plot.GridStep < 0:
		c.Plot.GridStep = 0
	case c.Plot.GridStep > 0 && c.Plot.GridStep < MinGridStep:
		c.Plot.GridStep = MinGridStep
	}
	if c.Lab.TickRate <= 0 {
		c.Lab.TickRate = def.Lab.TickRate
	}
	if c.Server.IdleTimeoutMinutes <= 0 {
		c.Server.IdleTimeoutMinutes = def.Server.IdleTimeoutMinutes
	}
	c.Launch = c.Launch.Sanitize()
}

// Dir returns ~/.parabola, or empty if home is unavailable.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".parabola")
}

// UserPath returns the path to a file under ~/.parabola, or empty if home is unavailable.
func UserPath(filename string) string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, filename)
}
