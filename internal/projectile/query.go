package projectile

import "math"

// QueryTolerance is the default agreement tolerance when a query supplies more
// than one coordinate, in the unit of the compared coordinate.
const QueryTolerance = 0.01

// Query is a partially specified point on a trajectory. Nil fields are unknown.
type Query struct {
	X *float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y *float64 `json:"y,omitempty" yaml:"y,omitempty"`
	T *float64 `json:"t,omitempty" yaml:"t,omitempty"`
}

// Empty reports whether the query has no coordinates.
func (q Query) Empty() bool {
	return q.X == nil && q.Y == nil && q.T == nil
}

// Resolve completes a partial point on tr.
//
// A single coordinate is solved for the other two: t gives the position
// directly, x goes through t to y, and y uses the earliest in-flight crossing.
// When two or three coordinates are given they are checked for agreement with
// the motion within tol and nothing is solved. ok is false for every case
// that has no answer: nothing supplied, a point off the trajectory, or an
// unreachable coordinate.
func Resolve(tr Trajectory, q Query, tol float64) (Point, bool) {
	switch {
	case q.T != nil && q.X != nil && q.Y != nil:
		p := tr.PositionAt(*q.T)
		if !within(p.X, *q.X, tol) || !within(p.Y, *q.Y, tol) {
			return Point{}, false
		}
		return Point{X: *q.X, Y: *q.Y, T: *q.T}, true

	case q.T != nil && q.X != nil:
		p := tr.PositionAt(*q.T)
		if !within(p.X, *q.X, tol) {
			return Point{}, false
		}
		return Point{X: *q.X, Y: p.Y, T: *q.T}, true

	case q.T != nil && q.Y != nil:
		p := tr.PositionAt(*q.T)
		if !within(p.Y, *q.Y, tol) {
			return Point{}, false
		}
		return Point{X: p.X, Y: *q.Y, T: *q.T}, true

	case q.X != nil && q.Y != nil:
		t, ok := tr.TimeAtX(*q.X)
		if !ok {
			return Point{}, false
		}
		p := tr.PositionAt(t)
		if !within(p.Y, *q.Y, tol) {
			return Point{}, false
		}
		return Point{X: *q.X, Y: *q.Y, T: t}, true

	case q.T != nil:
		if !tr.InFlight(*q.T) {
			return Point{}, false
		}
		return tr.PositionAt(*q.T), true

	case q.X != nil:
		y, ok := tr.YAtX(*q.X)
		if !ok {
			return Point{}, false
		}
		t, _ := tr.TimeAtX(*q.X)
		return Point{X: *q.X, Y: y, T: t}, true

	case q.Y != nil:
		times := tr.TimesAtY(*q.Y)
		if len(times) == 0 {
			return Point{}, false
		}
		p := tr.PositionAt(times[0])
		return Point{X: p.X, Y: *q.Y, T: times[0]}, true
	}
	return Point{}, false
}

func within(got, want, tol float64) bool {
	return math.Abs(got-want) < tol
}
