package core

// RuntimeConfig contains host parameters passed to a match at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host steps per second (default 60)
	Seed     int64 // RNG seed for deterministic simulation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Frame time bounds. Steps outside this range are clamped before use.
const (
	MinFrameDT = 1.0 / 144
	MaxFrameDT = 1.0 / 20
)

// ClampDT bounds a host frame delta to [MinFrameDT, MaxFrameDT].
func ClampDT(dt float64) float64 {
	return ClampF(dt, MinFrameDT, MaxFrameDT)
}
