package config

import "math"

// MaxGameSpeed caps the speed-up curve.
const MaxGameSpeed = 2.0

// SpeedCurve returns the game speed multiplier after gameTime seconds.
// Without speed-up the game runs at 1x; with it, 10% is added per full
// minute up to MaxGameSpeed.
func SpeedCurve(gameTime float64, speedUp bool) float64 {
	if !speedUp {
		return 1
	}
	return math.Min(MaxGameSpeed, 1+0.1*math.Floor(gameTime/60))
}
