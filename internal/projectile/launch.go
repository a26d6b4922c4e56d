// Package projectile implements closed-form 2D parabolic motion.
//
// Units are metres, seconds and m/s. The y axis points up and gravity g is a
// positive number acting downward. Every function is a pure computation over
// float64: nothing is validated, nothing panics, and degenerate inputs (g = 0,
// NaN) propagate as IEEE NaN/Inf values. Events that do not happen, such as a
// trajectory that never reaches the ground, are reported with an ok flag.
//
// The package holds no mutable state and is safe for concurrent use.
package projectile

import "math"

// DefaultGravity is standard Earth gravity in m/s².
const DefaultGravity = 9.81

// Launch holds the initial conditions of a shot.
type Launch struct {
	X0  float64 `json:"x0" yaml:"x0"`   // initial x, m
	Y0  float64 `json:"y0" yaml:"y0"`   // initial height, m
	V0  float64 `json:"v0" yaml:"v0"`   // initial speed, m/s
	Deg float64 `json:"deg" yaml:"deg"` // angle from horizontal, degrees (0 = right, 90 = up)
	G   float64 `json:"g" yaml:"g"`     // gravity, m/s², positive downward
}

// Velocity holds the initial velocity split into components.
type Velocity struct {
	VX0 float64 `json:"vx0" yaml:"vx0"`
	VY0 float64 `json:"vy0" yaml:"vy0"`
}

// Point is a position on the trajectory at time T.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	T float64 `json:"t" yaml:"t"`
}

// Components splits speed v0 at deg degrees into horizontal and vertical parts.
func Components(v0, deg float64) Velocity {
	rad := deg * math.Pi / 180
	return Velocity{
		VX0: v0 * math.Cos(rad),
		VY0: v0 * math.Sin(rad),
	}
}

// Velocity returns the launch velocity components.
func (l Launch) Velocity() Velocity {
	return Components(l.V0, l.Deg)
}
