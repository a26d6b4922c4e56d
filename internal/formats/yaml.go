package formats

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/parabola/internal/export"
	"github.com/vovakirdan/parabola/internal/registry"
)

func init() {
	registry.Register("yaml", func() registry.Exporter { return YAML{} })
}

// YAML writes the report as a YAML document.
type YAML struct{}

func (YAML) ID() string    { return "yaml" }
func (YAML) Title() string { return "YAML" }

func (YAML) Write(w io.Writer, r export.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
