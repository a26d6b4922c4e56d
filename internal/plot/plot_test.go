package plot

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/parabola/internal/core"
	"github.com/vovakirdan/parabola/internal/projectile"
)

var standard = projectile.Launch{Y0: 2, V0: 20, Deg: 45, G: 9.81}

func TestNewViewportSpan(t *testing.T) {
	tests := []struct {
		name   string
		launch projectile.Launch
		span   float64
	}{
		// range 42.685 + margin beats the minimum
		{"landing shot", standard, 42.685 + 5},
		// short lob: minimum horizontal span wins
		{"short lob", projectile.Launch{V0: 5, Deg: 45, G: 9.81}, 40},
		// never lands: fallback horizontal span
		{"never lands", projectile.Launch{Y0: 5, V0: 10, Deg: 60, G: -9.81}, 60},
		// tall drop: height plus margin wins
		{"tall drop", projectile.Launch{Y0: 80, G: 9.81}, 85},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := NewViewport(projectile.Compute(tc.launch), 80, 40, DefaultLayout())
			if math.Abs(v.Span()-tc.span) > 0.01 {
				t.Errorf("Span() = %v, expected %v", v.Span(), tc.span)
			}
		})
	}
}

func TestViewportToCell(t *testing.T) {
	tr := projectile.Compute(projectile.Launch{V0: 5, Deg: 45, G: 9.81}) // span 40

	tests := []struct {
		name         string
		w, h         int
		x, y         float64
		wantCol, row int
	}{
		{"origin", 80, 40, 0, 0, 0, 39},
		{"inside", 80, 40, 10, 5, 20, 34},
		{"wide screen pads left", 100, 40, 0, 0, 10, 39},
		{"tall screen pads bottom", 80, 60, 0, 0, 0, 49},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := NewViewport(tr, tc.w, tc.h, DefaultLayout())
			col, row := v.ToCell(tc.x, tc.y)
			if col != tc.wantCol || row != tc.row {
				t.Errorf("ToCell(%v, %v) = (%d, %d), expected (%d, %d)", tc.x, tc.y, col, row, tc.wantCol, tc.row)
			}
		})
	}
}

func TestViewportYAt(t *testing.T) {
	tr := projectile.Compute(projectile.Launch{V0: 5, Deg: 45, G: 9.81})
	v := NewViewport(tr, 80, 40, DefaultLayout())

	if y := v.YAt(39); y != 0 {
		t.Errorf("YAt(bottom) = %v, expected 0", y)
	}
	if y := v.YAt(34); math.Abs(y-5) > 1e-9 {
		t.Errorf("YAt(34) = %v, expected 5", y)
	}
	if y := v.YAt(45); y != 0 {
		t.Errorf("YAt below the ground should clamp to 0, got %v", y)
	}

	prev := -1.0
	for row := 39; row >= 0; row-- {
		y := v.YAt(row)
		if y < prev {
			t.Fatalf("YAt should grow upward: row %d gave %v after %v", row, y, prev)
		}
		if r := math.Round(y * 10); math.Abs(y*10-r) > 1e-9 {
			t.Errorf("YAt(%d) = %v is not rounded to 0.1", row, y)
		}
		prev = y
	}
}

func TestViewportDegenerateInputs(t *testing.T) {
	v := newViewport(math.NaN(), 0, 0, 0)
	if v.Span() != 1 || v.Scale() <= 0 {
		t.Errorf("degenerate viewport should fall back to a unit span, got span %v scale %v", v.Span(), v.Scale())
	}
}

func findGlyph(s *core.Screen, r rune) (int, int, bool) {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) == r {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

func TestDrawLandingShot(t *testing.T) {
	tr := projectile.Compute(standard)
	s := Render(tr, 80, 40, DefaultLayout(), DefaultOptions())
	out := s.String()

	for _, want := range []string{"Max height", "Landing", "x=42.7 t=3.0s"} {
		if !strings.Contains(out, want) {
			t.Errorf("plot should contain %q", want)
		}
	}

	v := NewViewport(tr, 80, 40, DefaultLayout())
	col, row := v.ToCell(0, 2)
	if c := s.GetCell(col, row); c.Rune != GlyphCannon {
		t.Errorf("cannon cell = %q, expected %q", c.Rune, GlyphCannon)
	}
	col, row = v.ToCell(tr.X0+tr.Range, 0)
	if c := s.GetCell(col, row); c.Rune != GlyphLanding || c.Color != core.ColorLanding {
		t.Errorf("landing cell = %+v, expected red %q", c, GlyphLanding)
	}
	if _, _, ok := findGlyph(s, GlyphApex); !ok {
		t.Error("apex marker missing")
	}
	if _, _, ok := findGlyph(s, GlyphPath); !ok {
		t.Error("trajectory path missing")
	}
}

func TestDrawNeverLands(t *testing.T) {
	tr := projectile.Compute(projectile.Launch{Y0: 5, V0: 10, Deg: 60, G: -9.81})
	s := Render(tr, 80, 40, DefaultLayout(), DefaultOptions())

	if strings.Contains(s.String(), "Landing") {
		t.Error("a shot that never lands should have no landing caption")
	}
	if _, _, ok := findGlyph(s, GlyphLanding); ok {
		t.Error("a shot that never lands should have no landing marker")
	}
}

func TestDrawBall(t *testing.T) {
	tr := projectile.Compute(standard)
	v := NewViewport(tr, 80, 40, DefaultLayout())
	opts := Options{GridStep: 5, BarrelLength: 2}

	s := core.NewScreen(80, 40)
	Draw(s, v, tr, tr.Sample(20), opts)
	if _, _, ok := findGlyph(s, GlyphBall); ok {
		t.Fatal("no ball expected when not firing")
	}

	ball := tr.PositionAt(1)
	opts.Ball = &ball
	Draw(s, v, tr, tr.Sample(20), opts)
	col, row := v.ToCell(ball.X, ball.Y)
	if s.Get(col, row) != GlyphBall {
		t.Errorf("ball should be drawn at (%d, %d)", col, row)
	}
}

func TestDrawWithoutGrid(t *testing.T) {
	tr := projectile.Compute(standard)
	s := Render(tr, 60, 30, DefaultLayout(), Options{})
	if _, _, ok := findGlyph(s, GlyphGrid); ok {
		t.Error("GridStep 0 should disable the grid")
	}
}

func TestDrawGridTinyStep(t *testing.T) {
	tr := projectile.Compute(standard)
	opts := Options{GridStep: 1e-9}

	s := Render(tr, 60, 30, DefaultLayout(), opts)
	if _, _, ok := findGlyph(s, GlyphGrid); !ok {
		t.Error("a tiny grid step should still draw a grid")
	}
}

func TestDrawGridHugeSpan(t *testing.T) {
	tr := projectile.Compute(projectile.Launch{Y0: 1e9, V0: 1e6, Deg: 45, G: 0.1})
	s := Render(tr, 60, 30, DefaultLayout(), Options{GridStep: 5})
	if _, _, ok := findGlyph(s, GlyphPath); !ok {
		t.Error("path should be drawn for a very long shot")
	}
}
