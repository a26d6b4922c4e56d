// Package plot rasterises trajectories onto a core.Screen.
//
// The world is a square of span metres on each side with the origin at the
// bottom left, fitted into the character grid. Terminal cells are taller than
// they are wide, so vertical distances are divided by the cell aspect ratio.
package plot

import (
	"math"

	"github.com/vovakirdan/parabola/internal/core"
	"github.com/vovakirdan/parabola/internal/projectile"
)

// Layout controls how much of the world a viewport shows.
type Layout struct {
	MinSpanX      float64 // smallest horizontal extent, m
	MinSpanY      float64 // smallest vertical extent, m
	FallbackSpanX float64 // horizontal extent when the shot never lands, m
	Margin        float64 // room left past the landing point and above the apex, m
	CellAspect    float64 // cell height divided by cell width
}

// DefaultLayout returns the layout of the lab.
func DefaultLayout() Layout {
	return Layout{
		MinSpanX:      40,
		MinSpanY:      30,
		FallbackSpanX: 60,
		Margin:        5,
		CellAspect:    2,
	}
}

// Viewport maps world metres to screen cells and back.
type Viewport struct {
	width  int
	height int
	aspect float64
	span   float64
	scale  float64 // columns per metre
	padX   float64 // columns left of x = 0
	padY   float64 // half-rows (in column units) below y = 0
}

// NewViewport fits the trajectory into a width x height cell area.
func NewViewport(tr projectile.Trajectory, width, height int, layout Layout) Viewport {
	spanX := layout.FallbackSpanX
	if tr.Lands {
		spanX = tr.X0 + tr.Range + layout.Margin
	}
	spanX = math.Max(layout.MinSpanX, spanX)
	spanY := math.Max(layout.MinSpanY, math.Max(tr.MaxHeight, tr.Y0)+layout.Margin)

	return newViewport(math.Max(spanX, spanY), width, height, layout.CellAspect)
}

func newViewport(span float64, width, height int, aspect float64) Viewport {
	if !(aspect > 0) {
		aspect = 1
	}
	if !(span > 0) || math.IsInf(span, 0) {
		span = 1
	}
	width, height = core.Max(width, 1), core.Max(height, 1)

	w := float64(width)
	h := float64(height) * aspect
	scale := math.Min(w, h) / span

	return Viewport{
		width:  width,
		height: height,
		aspect: aspect,
		span:   span,
		scale:  scale,
		padX:   (w - span*scale) / 2,
		padY:   (h - span*scale) / 2,
	}
}

// Span returns the side of the visible world square in metres.
func (v Viewport) Span() float64 {
	return v.span
}

// Scale returns the number of columns per metre.
func (v Viewport) Scale() float64 {
	return v.scale
}

// ToCell returns the cell containing the world point (x, y). The result may
// lie off screen; callers drawing through core.Screen get clipping for free.
func (v Viewport) ToCell(x, y float64) (col, row int) {
	col = int(math.Floor(v.padX + x*v.scale))
	row = v.height - 1 - int(math.Floor((v.padY+y*v.scale)/v.aspect))
	return col, row
}

// XAt returns the world x at the left edge of a column.
func (v Viewport) XAt(col int) float64 {
	return (float64(col) - v.padX) / v.scale
}

// YAt returns the world height at the bottom of a row, clamped at ground
// level and rounded to 0.1 m. It inverts ToCell for dragging the cannon.
func (v Viewport) YAt(row int) float64 {
	y := (float64(v.height-1-row)*v.aspect - v.padY) / v.scale
	return math.Max(0, core.RoundTo(y, 0.1))
}

// Visible reports whether the world point maps onto the cell area.
func (v Viewport) Visible(x, y float64) bool {
	col, row := v.ToCell(x, y)
	return col >= 0 && col < v.width && row >= 0 && row < v.height
}
