package projectile

// Summary holds the quantities derived from a launch.
// Range and TimeOfFlight are meaningful only when Lands is true.
type Summary struct {
	Lands        bool    `json:"lands" yaml:"lands"`
	Range        float64 `json:"range" yaml:"range"`
	TimeOfFlight float64 `json:"time_of_flight" yaml:"time_of_flight"`
	MaxHeight    float64 `json:"max_height" yaml:"max_height"`
	XAtMaxHeight float64 `json:"x_at_max_height" yaml:"x_at_max_height"`
	TAtMaxHeight float64 `json:"t_at_max_height" yaml:"t_at_max_height"`
}

// Trajectory is a launch resolved into velocity components and a summary.
// Its methods are the free functions of this package bound to the launch.
type Trajectory struct {
	Launch
	Velocity
	Summary
}

// Compute derives the full trajectory of a launch.
//
// The apex is always evaluated, even in parameter regimes where it falls after
// the computed impact; apex and impact are not cross-checked.
func Compute(l Launch) Trajectory {
	v := l.Velocity()
	tr := Trajectory{Launch: l, Velocity: v}

	if tGround, ok := TimeToHitGround(l.Y0, v.VY0, l.G); ok && tGround >= 0 {
		end := PositionAt(l.X0, l.Y0, v.VX0, v.VY0, tGround, l.G)
		tr.Lands = true
		tr.TimeOfFlight = tGround
		tr.Range = end.X - l.X0
	}

	tApex := TimeToMaxHeight(v.VY0, l.G)
	apex := PositionAt(l.X0, l.Y0, v.VX0, v.VY0, tApex, l.G)
	tr.MaxHeight = apex.Y
	tr.XAtMaxHeight = apex.X
	tr.TAtMaxHeight = tApex

	return tr
}

// PositionAt returns the position at time t.
func (tr Trajectory) PositionAt(t float64) Point {
	return PositionAt(tr.X0, tr.Y0, tr.VX0, tr.VY0, t, tr.G)
}

// TimesAtY returns the times at which the height equals y, clipped to the
// flight when the projectile lands.
func (tr Trajectory) TimesAtY(y float64) []float64 {
	return TimeAtY(tr.Y0, tr.VY0, y, tr.G, tr.flightLimit())
}

// TimeAtX returns the time at which the horizontal position equals x.
// ok is false when vx0 is zero, since x is then constant in time.
func (tr Trajectory) TimeAtX(x float64) (float64, bool) {
	if tr.VX0 == 0 {
		return 0, false
	}
	return (x - tr.X0) / tr.VX0, true
}

// YAtX returns the height at horizontal position x. ok is false when x is
// not reachable: zero horizontal velocity, a time before launch, or a time
// after landing.
func (tr Trajectory) YAtX(x float64) (float64, bool) {
	t, ok := tr.TimeAtX(x)
	if !ok || t < 0 {
		return 0, false
	}
	if tr.Lands && t > tr.TimeOfFlight {
		return 0, false
	}
	return tr.PositionAt(t).Y, true
}

// Sample samples the trajectory for drawing. See Sample.
func (tr Trajectory) Sample(numPoints int) []Point {
	return Sample(tr.X0, tr.Y0, tr.VX0, tr.VY0, numPoints, tr.G)
}

// InFlight reports whether t lies within a known flight.
func (tr Trajectory) InFlight(t float64) bool {
	return tr.Lands && t >= 0 && t <= tr.TimeOfFlight
}

// Landing returns the impact point. ok is false when the projectile never lands.
func (tr Trajectory) Landing() (Point, bool) {
	if !tr.Lands {
		return Point{}, false
	}
	return Point{X: tr.X0 + tr.Range, Y: 0, T: tr.TimeOfFlight}, true
}

// Apex returns the highest point of the trajectory.
func (tr Trajectory) Apex() Point {
	return Point{X: tr.XAtMaxHeight, Y: tr.MaxHeight, T: tr.TAtMaxHeight}
}

func (tr Trajectory) flightLimit() float64 {
	if tr.Lands {
		return tr.TimeOfFlight
	}
	return NoLimit
}
