package projectile

import (
	"math"
	"slices"
)

// NoLimit is the upper time bound used when a query is not clipped to a flight.
var NoLimit = math.Inf(1)

// PositionAt evaluates the equations of motion at time t.
// Any t is accepted, including negative times.
func PositionAt(x0, y0, vx0, vy0, t, g float64) Point {
	return Point{
		X: x0 + vx0*t,
		Y: y0 + vy0*t - 0.5*g*t*t,
		T: t,
	}
}

// TimeToHitGround returns the time at which the projectile reaches y = 0.
//
// A launch below ground that is not moving down, or one resting exactly on the
// ground, reports an immediate impact (0, true). A launch from ground level
// with upward speed is a real flight and goes through the quadratic, where the
// later root is its landing. Otherwise the later non-negative root of
// 0 = y0 + vy0·t − ½g·t² is returned; ok is false when the quadratic has no
// real root or no root is non-negative. The later root is always preferred:
// the earlier one, when both are non-negative, is a crossing that already lies
// behind the projectile. g = 0 is not special-cased.
func TimeToHitGround(y0, vy0, g float64) (float64, bool) {
	if vy0 >= 0 && (y0 < 0 || (y0 == 0 && vy0 == 0)) {
		return 0, true
	}
	disc := vy0*vy0 + 2*g*y0
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t1 := (vy0 + sq) / g
	t2 := (vy0 - sq) / g

	best, ok := 0.0, false
	for _, t := range [2]float64{t1, t2} {
		if t >= 0 && (!ok || t > best) {
			best, ok = t, true
		}
	}
	return best, ok
}

// TimeToMaxHeight returns the time of the apex. A projectile that starts level
// or descending is at its apex at launch.
func TimeToMaxHeight(vy0, g float64) float64 {
	if vy0 <= 0 {
		return 0
	}
	return vy0 / g
}

// TimeAtY returns the times in [0, tMax] at which the height equals yTarget,
// sorted ascending. The result holds zero, one or two values; it is empty when
// the height is never reached. Pass NoLimit for an unbounded search.
//
// The roots solve yTarget = y0 + vy0·t − ½g·t², so the discriminant is
// vy0² + 2g(y0 − yTarget); with yTarget = 0 it matches TimeToHitGround.
func TimeAtY(y0, vy0, yTarget, g, tMax float64) []float64 {
	c := y0 - yTarget
	disc := vy0*vy0 + 2*g*c
	if disc < 0 {
		return []float64{}
	}
	sq := math.Sqrt(disc)
	roots := [2]float64{(vy0 + sq) / g, (vy0 - sq) / g}

	out := make([]float64, 0, 2)
	for _, t := range roots {
		if t >= 0 && t <= tMax {
			out = append(out, t)
		}
	}
	slices.Sort(out)
	return out
}
