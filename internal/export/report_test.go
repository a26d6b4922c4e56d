package export

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/parabola/internal/projectile"
)

func ptr(v float64) *float64 { return &v }

func TestNewReportLandingShot(t *testing.T) {
	tr := projectile.Compute(projectile.Launch{Y0: 0, V0: 20, Deg: 45, G: 9.81})
	r := NewReport(tr, 10)

	if r.Summary.Range == nil || r.Summary.TimeOfFlight == nil {
		t.Fatal("landing shot should have range and time of flight")
	}
	if math.Abs(*r.Summary.Range-40.775) > 0.001 {
		t.Errorf("Range = %v, expected 40.775", *r.Summary.Range)
	}
	if len(r.Points) != 11 {
		t.Errorf("len(Points) = %d, expected 11", len(r.Points))
	}
	if r.Velocity != tr.Velocity {
		t.Errorf("Velocity = %+v, expected %+v", r.Velocity, tr.Velocity)
	}
}

func TestNewReportNeverLands(t *testing.T) {
	tr := projectile.Compute(projectile.Launch{Y0: 5, V0: 10, Deg: 60, G: -9.81})
	r := NewReport(tr, 0)

	if r.Summary.Range != nil || r.Summary.TimeOfFlight != nil {
		t.Error("never-landing shot should have nil range and time of flight")
	}
	if r.Points != nil {
		t.Errorf("numPoints 0 should leave samples out, got %d", len(r.Points))
	}

	fields := r.Fields()
	if fields[0].Value != Unavailable || fields[4].Value != Unavailable {
		t.Errorf("missing values should print %q, got %q and %q", Unavailable, fields[0].Value, fields[4].Value)
	}
}

func TestReportWithQuery(t *testing.T) {
	tr := projectile.Compute(projectile.Launch{Y0: 2, V0: 20, Deg: 45, G: 9.81})
	base := NewReport(tr, 0)

	hit := base.WithQuery(tr, projectile.Query{T: ptr(1)}, projectile.QueryTolerance)
	if hit.Miss() || hit.Point == nil {
		t.Fatal("t = 1 should resolve")
	}
	if hit.Point.T != 1 {
		t.Errorf("Point.T = %v, expected 1", hit.Point.T)
	}

	miss := hit.WithQuery(tr, projectile.Query{X: ptr(-10)}, projectile.QueryTolerance)
	if !miss.Miss() {
		t.Error("x behind the launch should miss")
	}
	if base.Query != nil {
		t.Error("WithQuery should not modify the original report")
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		v        float64
		expected string
	}{
		{1.234, "1.23"},
		{math.NaN(), Unavailable},
		{math.Inf(1), Unavailable},
		{math.Inf(-1), Unavailable},
	}
	for _, tc := range tests {
		if got := Format(tc.v, "%.2f"); got != tc.expected {
			t.Errorf("Format(%v) = %q, expected %q", tc.v, got, tc.expected)
		}
	}
	if got := FormatOpt(nil, "%.2f"); got != Unavailable {
		t.Errorf("FormatOpt(nil) = %q, expected %q", got, Unavailable)
	}
}

func TestReportValidate(t *testing.T) {
	landing := projectile.Compute(projectile.Launch{Y0: 2, V0: 20, Deg: 45, G: 9.81})

	tests := []struct {
		name   string
		report Report
		valid  bool
	}{
		{"landing shot with samples", NewReport(landing, 20), true},
		{"never lands", NewReport(projectile.Compute(projectile.Launch{Y0: 5, V0: 10, Deg: 60, G: -9.81}), 10), true},
		{"overflowing speed", NewReport(projectile.Compute(projectile.Launch{V0: 1e200, Deg: 45, G: 9.81}), 0), false},
		{"zero gravity", NewReport(projectile.Compute(projectile.Launch{Y0: 2, V0: 10, Deg: 30, G: 0}), 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.report.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrNotFinite) {
				t.Errorf("Validate() = %v, expected ErrNotFinite", err)
			}
		})
	}
}
