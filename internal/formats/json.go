package formats

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vovakirdan/parabola/internal/export"
	"github.com/vovakirdan/parabola/internal/registry"
)

func init() {
	registry.Register("json", func() registry.Exporter { return JSON{} })
}

// JSON writes the report as an indented JSON document. Missing range and
// time of flight are null.
type JSON struct{}

func (JSON) ID() string    { return "json" }
func (JSON) Title() string { return "JSON" }

// Write fails with export.ErrNotFinite when the report holds NaN or an
// infinity, which JSON has no encoding for.
func (JSON) Write(w io.Writer, r export.Report) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("json: %w", err)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
