// Package core provides the screen buffer, geometry helpers and runtime
// settings shared by the plotter and the terminal front ends.
// It has no external dependencies (especially no Bubble Tea) so drawing code
// stays pure and testable.
package core

import "math"

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// RoundTo rounds val to the nearest multiple of step. A non-positive step
// returns val unchanged.
func RoundTo(val, step float64) float64 {
	if step <= 0 {
		return val
	}
	return math.Round(val/step) * step
}

// IsFinite reports whether f is neither NaN nor an infinity.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
