package core

import "math"

// Lerp interpolates linearly between a and b. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpClamp interpolates with t clamped to [0, 1].
func LerpClamp(a, b, t float64) float64 {
	return Lerp(a, b, Clamp01(t))
}

// Clamp01 clamps v to [0, 1].
func Clamp01(v float64) float64 {
	return ClampF(v, 0, 1)
}

// Square returns v*v.
func Square(v float64) float64 {
	return v * v
}

// MoveTowards moves from toward to by at most step without overshooting.
func MoveTowards(from, to, step float64) float64 {
	if from < to {
		return math.Min(from+step, to)
	}
	return math.Max(from-step, to)
}

// SafeDivide returns n/d, or fallback when d is zero.
func SafeDivide(n, d, fallback float64) float64 {
	if d == 0 {
		return fallback
	}
	return n / d
}

// MapRangeTo01 maps v from [from, to] onto [0, 1] without clamping.
// A degenerate range maps to 1.
func MapRangeTo01(v, from, to float64) float64 {
	return SafeDivide(v-from, to-from, 1)
}

// Map01ToArcSin remaps [0, 1] through an arcsine curve, keeping the endpoints.
func Map01ToArcSin(v float64) float64 {
	return 0.5 + math.Asin(ClampF(2*v-1, -1, 1))/math.Pi
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// SignNonZero returns -1 for negative values and 1 otherwise.
func SignNonZero(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// NormalizeAngle wraps a into [-pi, pi].
func NormalizeAngle(a float64) float64 {
	r := NormalizeAnglePositive(a)
	if r > math.Pi {
		r -= 2 * math.Pi
	}
	return r
}

// NormalizeAnglePositive wraps a into [0, 2pi).
func NormalizeAnglePositive(a float64) float64 {
	r := math.Mod(a, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	return r
}

// AngleDifference returns the signed angle from 'from' to 'to', in [-pi, pi].
func AngleDifference(to, from float64) float64 {
	return NormalizeAngle(to - from)
}

// AngleDistance returns the unsigned circular distance between two angles.
func AngleDistance(a, b float64) float64 {
	return math.Abs(AngleDifference(a, b))
}

// ClampAngle limits a to the clockwise arc from limit0 to limit1.
// Angles outside the arc snap to the nearer limit. Result is in [-pi, pi].
func ClampAngle(a, limit0, limit1 float64) float64 {
	angle := NormalizeAnglePositive(a)
	l0 := NormalizeAnglePositive(limit0)
	l1 := NormalizeAnglePositive(limit1)
	mid := (l0 + l1) / 2

	if l0 <= l1 {
		if angle < l0 || angle > l1 {
			if AngleDifference(angle, mid) < 0 {
				angle = l0
			} else {
				angle = l1
			}
		}
	} else if angle < l0 && angle > l1 {
		if AngleDifference(angle, mid) < 0 {
			angle = l1
		} else {
			angle = l0
		}
	}

	if angle > math.Pi {
		angle -= 2 * math.Pi
	}
	return angle
}

// ClampAwayFromHorizontal keeps a direction at least minAngle away from
// the horizontal axis, preserving which vertical half it points into.
func ClampAwayFromHorizontal(angle, minAngle float64) float64 {
	angle = NormalizeAngle(angle)
	if angle > 0 {
		return ClampAngle(angle, minAngle, math.Pi-minAngle)
	}
	return ClampAngle(angle, math.Pi+minAngle, 2*math.Pi-minAngle)
}
