package formats

import (
	"encoding/csv"
	"io"

	"github.com/vovakirdan/parabola/internal/export"
	"github.com/vovakirdan/parabola/internal/registry"
)

func init() {
	registry.Register("csv", func() registry.Exporter { return CSV{} })
}

// CSV writes the sampled points as t,x,y rows. A report without samples is
// written as quantity,value rows instead; unavailable values are empty.
type CSV struct{}

func (CSV) ID() string    { return "csv" }
func (CSV) Title() string { return "Comma-separated values" }

func (CSV) Write(w io.Writer, r export.Report) error {
	cw := csv.NewWriter(w)

	if len(r.Points) > 0 {
		if err := cw.Write([]string{"t", "x", "y"}); err != nil {
			return err
		}
		for _, p := range r.Points {
			if err := cw.Write([]string{num(p.T), num(p.X), num(p.Y)}); err != nil {
				return err
			}
		}
	} else {
		rows := [][]string{
			{"quantity", "value"},
			{"x0", num(r.Launch.X0)},
			{"y0", num(r.Launch.Y0)},
			{"v0", num(r.Launch.V0)},
			{"deg", num(r.Launch.Deg)},
			{"g", num(r.Launch.G)},
			{"vx0", num(r.Velocity.VX0)},
			{"vy0", num(r.Velocity.VY0)},
			{"range", optNum(r.Summary.Range)},
			{"time_of_flight", optNum(r.Summary.TimeOfFlight)},
			{"max_height", num(r.Summary.MaxHeight)},
			{"x_at_max_height", num(r.Summary.XAtMaxHeight)},
			{"t_at_max_height", num(r.Summary.TAtMaxHeight)},
		}
		if r.Query != nil {
			if r.Point != nil {
				rows = append(rows,
					[]string{"point_x", num(r.Point.X)},
					[]string{"point_y", num(r.Point.Y)},
					[]string{"point_t", num(r.Point.T)},
				)
			} else {
				rows = append(rows, []string{"point", ""})
			}
		}
		if err := cw.WriteAll(rows); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
