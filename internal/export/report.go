// Package export assembles trajectory reports for the exporters in the
// registry and for the live server.
package export

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/parabola/internal/projectile"
)

// Unavailable is printed in place of a value that does not exist, such as
// the range of a shot that never lands.
const Unavailable = "–"

// ErrNotFinite is returned by Validate for a report holding NaN or an infinity,
// which formats such as JSON cannot represent.
var ErrNotFinite = errors.New("report has values out of range")

// Summary is the trajectory summary with nullable range and time of flight.
type Summary struct {
	Range        *float64 `json:"range" yaml:"range"`
	TimeOfFlight *float64 `json:"time_of_flight" yaml:"time_of_flight"`
	MaxHeight    float64  `json:"max_height" yaml:"max_height"`
	XAtMaxHeight float64  `json:"x_at_max_height" yaml:"x_at_max_height"`
	TAtMaxHeight float64  `json:"t_at_max_height" yaml:"t_at_max_height"`
}

// Report is everything an exporter can write about one launch.
type Report struct {
	Label    string              `json:"label,omitempty" yaml:"label,omitempty"`
	Launch   projectile.Launch   `json:"launch" yaml:"launch"`
	Velocity projectile.Velocity `json:"velocity" yaml:"velocity"`
	Summary  Summary             `json:"summary" yaml:"summary"`
	Points   []projectile.Point  `json:"points,omitempty" yaml:"points,omitempty"`
	Query    *projectile.Query   `json:"query,omitempty" yaml:"query,omitempty"`
	Point    *projectile.Point   `json:"point,omitempty" yaml:"point,omitempty"`
}

// NewReport builds a report for tr with numPoints+1 samples.
// numPoints of zero or less leaves the samples out.
func NewReport(tr projectile.Trajectory, numPoints int) Report {
	r := Report{
		Launch:   tr.Launch,
		Velocity: tr.Velocity,
		Summary: Summary{
			MaxHeight:    tr.MaxHeight,
			XAtMaxHeight: tr.XAtMaxHeight,
			TAtMaxHeight: tr.TAtMaxHeight,
		},
	}
	if tr.Lands {
		rng, tof := tr.Range, tr.TimeOfFlight
		r.Summary.Range = &rng
		r.Summary.TimeOfFlight = &tof
	}
	if numPoints > 0 {
		r.Points = tr.Sample(numPoints)
	}
	return r
}

// WithQuery attaches a point query and its answer. A query with no match
// keeps Point nil.
func (r Report) WithQuery(tr projectile.Trajectory, q projectile.Query, tol float64) Report {
	r.Query = &q
	r.Point = nil
	if p, ok := projectile.Resolve(tr, q, tol); ok {
		r.Point = &p
	}
	return r
}

// Miss reports whether the report carries a query that did not resolve.
func (r Report) Miss() bool {
	return r.Query != nil && r.Point == nil
}

// Validate returns ErrNotFinite, naming the first offending field, when any
// number in the report is NaN or infinite.
func (r Report) Validate() error {
	check := func(name string, vs ...float64) error {
		for _, v := range vs {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%s = %v: %w", name, v, ErrNotFinite)
			}
		}
		return nil
	}
	opt := func(v *float64) float64 {
		if v == nil {
			return 0
		}
		return *v
	}

	l, s := r.Launch, r.Summary
	errs := []error{
		check("launch", l.X0, l.Y0, l.V0, l.Deg, l.G),
		check("velocity", r.Velocity.VX0, r.Velocity.VY0),
		check("range", opt(s.Range)),
		check("time of flight", opt(s.TimeOfFlight)),
		check("max height", s.MaxHeight, s.XAtMaxHeight, s.TAtMaxHeight),
	}
	for _, p := range r.Points {
		errs = append(errs, check("sample", p.X, p.Y, p.T))
	}
	if r.Point != nil {
		errs = append(errs, check("point", r.Point.X, r.Point.Y, r.Point.T))
	}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Field is one labelled, formatted line of a report summary.
type Field struct {
	Name  string
	Value string
}

// Fields returns the summary lines shown by the results panel and the
// table exporter, with Unavailable for missing values.
func (r Report) Fields() []Field {
	return []Field{
		{"Distance (range)", FormatOpt(r.Summary.Range, "%.2f m")},
		{"Initial velocity", Format(r.Launch.V0, "%.1f m/s")},
		{"Max height", Format(r.Summary.MaxHeight, "%.2f m")},
		{"At x", Format(r.Summary.XAtMaxHeight, "%.2f m")},
		{"Time of flight", FormatOpt(r.Summary.TimeOfFlight, "%.2f s")},
		{"g", Format(r.Launch.G, "%.2f m/s²")},
	}
}

// Format formats v with layout, or returns Unavailable for NaN and infinities.
func Format(v float64, layout string) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Unavailable
	}
	return fmt.Sprintf(layout, v)
}

// FormatOpt is Format for optional values; nil is Unavailable.
func FormatOpt(v *float64, layout string) string {
	if v == nil {
		return Unavailable
	}
	return Format(*v, layout)
}
