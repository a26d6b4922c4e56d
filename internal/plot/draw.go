package plot

import (
	"fmt"
	"math"

	"github.com/vovakirdan/parabola/internal/core"
	"github.com/vovakirdan/parabola/internal/projectile"
)

// Glyphs used on the plot.
const (
	GlyphGrid    = '·'
	GlyphGround  = '─'
	GlyphPath    = '•'
	GlyphApex    = '◆'
	GlyphLanding = '✕'
	GlyphCannon  = '●'
	GlyphBarrel  = '='
	GlyphBall    = 'o'
)

// Options controls what Draw puts on the screen.
type Options struct {
	GridStep     float64           // metres between grid lines; 0 disables the grid
	BarrelLength float64           // cannon barrel length in metres
	Labels       bool              // draw the apex and landing captions
	Ball         *projectile.Point // in-flight ball, nil when not firing
}

// DefaultOptions returns the options used by the lab.
func DefaultOptions() Options {
	return Options{
		GridStep:     5,
		BarrelLength: 2,
		Labels:       true,
	}
}

// Draw renders the trajectory onto s. Layers are painted back to front:
// grid, ground, path, markers, cannon, ball.
func Draw(s *core.Screen, v Viewport, tr projectile.Trajectory, points []projectile.Point, opts Options) {
	drawGrid(s, v, opts.GridStep)
	drawGround(s, v)
	drawPath(s, v, points)

	apex := tr.Apex()
	if core.IsFinite(apex.X) && core.IsFinite(apex.Y) {
		col, row := v.ToCell(apex.X, apex.Y)
		s.SetColored(col, row, GlyphApex, core.ColorApex)
		if opts.Labels {
			drawCaption(s, col, row, "Max height",
				fmt.Sprintf("x=%.1f y=%.1f t=%.1fs", apex.X, apex.Y, apex.T))
		}
	}

	if land, ok := tr.Landing(); ok {
		col, row := v.ToCell(land.X, land.Y)
		s.SetColored(col, row, GlyphLanding, core.ColorLanding)
		if opts.Labels {
			drawCaption(s, col, row, "Landing",
				fmt.Sprintf("x=%.1f t=%.1fs", land.X, land.T))
		}
	}

	drawCannon(s, v, tr.Launch, opts.BarrelLength)

	if opts.Ball != nil {
		col, row := v.ToCell(opts.Ball.X, opts.Ball.Y)
		s.SetColored(col, row, GlyphBall, core.ColorBall)
	}
}

// Render allocates a screen of the given size and draws the trajectory with
// DefaultSamples points onto it.
func Render(tr projectile.Trajectory, width, height int, layout Layout, opts Options) *core.Screen {
	s := core.NewScreen(width, height)
	v := NewViewport(tr, width, height, layout)
	Draw(s, v, tr, tr.Sample(projectile.DefaultSamples), opts)
	return s
}

// drawGrid draws a line every step metres. The step is widened to a multiple
// of itself so no more than one line per cell is drawn.
func drawGrid(s *core.Screen, v Viewport, step float64) {
	if !(step > 0) || !(v.Span() > 0) {
		return
	}
	maxLines := float64(core.Max(s.Width(), s.Height()))
	if lines := v.Span() / step; lines > maxLines {
		step *= math.Ceil(lines / maxLines)
	}
	for m := 0.0; m <= v.Span(); m += step {
		col, _ := v.ToCell(m, 0)
		for row := 0; row < s.Height(); row++ {
			s.SetColored(col, row, GlyphGrid, core.ColorGrid)
		}
		_, row := v.ToCell(0, m)
		for col := 0; col < s.Width(); col += 2 {
			s.SetColored(col, row, GlyphGrid, core.ColorGrid)
		}
	}
}

func drawGround(s *core.Screen, v Viewport) {
	_, row := v.ToCell(0, 0)
	for col := 0; col < s.Width(); col++ {
		if col%3 == 2 {
			continue
		}
		s.SetColored(col, row, GlyphGround, core.ColorGround)
	}
}

func drawPath(s *core.Screen, v Viewport, points []projectile.Point) {
	prevCol, prevRow, started := 0, 0, false
	for _, p := range points {
		if !core.IsFinite(p.X) || !core.IsFinite(p.Y) {
			started = false
			continue
		}
		col, row := v.ToCell(p.X, p.Y)
		if started {
			s.DrawLine(prevCol, prevRow, col, row, GlyphPath, core.ColorPath)
		} else {
			s.SetColored(col, row, GlyphPath, core.ColorPath)
		}
		prevCol, prevRow, started = col, row, true
	}
}

func drawCannon(s *core.Screen, v Viewport, l projectile.Launch, barrel float64) {
	col, row := v.ToCell(l.X0, l.Y0)
	if barrel > 0 {
		rad := l.Deg * math.Pi / 180
		mc, mr := v.ToCell(l.X0+barrel*math.Cos(rad), l.Y0+barrel*math.Sin(rad))
		s.DrawLine(col, row, mc, mr, GlyphBarrel, core.ColorBarrel)
	}
	s.SetColored(col, row, GlyphCannon, core.ColorCannon)
}

// drawCaption centres a two-line caption above a marker, or below it when the
// marker sits at the top of the screen.
func drawCaption(s *core.Screen, col, row int, title, detail string) {
	titleRow, detailRow := row-2, row-1
	if titleRow < 0 {
		titleRow, detailRow = row+1, row+2
	}
	drawCentered(s, col, titleRow, title, core.ColorCaption)
	drawCentered(s, col, detailRow, detail, core.ColorDetail)
}

func drawCentered(s *core.Screen, col, row int, text string, c core.Color) {
	n := len([]rune(text))
	x := core.Clamp(col-n/2, 0, core.Max(s.Width()-n, 0))
	s.DrawTextColored(x, row, text, c)
}
