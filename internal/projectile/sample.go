package projectile

import "math"

// DefaultSamples is the sample count used when drawing a trajectory.
const DefaultSamples = 80

// fallbackDuration bounds the sampling window when neither the impact time nor
// the symmetric-flight estimate is usable.
const fallbackDuration = 2.0

// Sample returns numPoints+1 evenly spaced positions from t = 0 to the end of
// the flight.
//
// The window ends at the impact time when it is finite and positive, otherwise
// at 2·vy0/g, otherwise at a fixed two seconds. Sampling stops at the first
// time past the impact, so no point lies below ground. Times never decrease.
// numPoints below 1 is treated as 1.
func Sample(x0, y0, vx0, vy0 float64, numPoints int, g float64) []Point {
	if numPoints < 1 {
		numPoints = 1
	}

	tGround, lands := TimeToHitGround(y0, vy0, g)
	tEnd := sampleWindow(tGround, lands, vy0, g)

	points := make([]Point, 0, numPoints+1)
	for i := 0; i <= numPoints; i++ {
		t := float64(i) / float64(numPoints) * tEnd
		if lands && t > tGround {
			break
		}
		points = append(points, PositionAt(x0, y0, vx0, vy0, t, g))
	}
	return points
}

func sampleWindow(tGround float64, lands bool, vy0, g float64) float64 {
	if lands && tGround > 0 && !math.IsInf(tGround, 0) {
		return tGround
	}
	est := 2 * vy0 / g
	if est > 0 && !math.IsInf(est, 0) {
		return est
	}
	// 0, NaN, negative and infinite estimates all fall back.
	return fallbackDuration
}
