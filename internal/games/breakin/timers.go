package breakin

// Timer indexes one of the powerup countdowns.
type Timer int

const (
	TimerBigPaddle Timer = iota
	TimerMagnet
	TimerBigBalls
	TimerBarrier
	TimerFastBalls
	TimerSlowBalls
	TimerSmallPaddle
	TimerReverseControls
	TimerSlipperyControls
	TimerRandomizer

	numTimers
)

var timerNames = [numTimers]string{
	TimerBigPaddle:        "BigPaddle",
	TimerMagnet:           "Magnet",
	TimerBigBalls:         "BigBalls",
	TimerBarrier:          "Barrier",
	TimerFastBalls:        "FastBalls",
	TimerSlowBalls:        "SlowBalls",
	TimerSmallPaddle:      "SmallPaddle",
	TimerReverseControls:  "Reverse",
	TimerSlipperyControls: "Slippery",
	TimerRandomizer:       "Randomizer",
}

func (id Timer) String() string {
	if id < 0 || id >= numTimers {
		return "unknown"
	}
	return timerNames[id]
}

// Timers is the bank of powerup countdowns, in seconds.
// Opposing pairs (big/small paddle, fast/slow balls) resolve by the larger
// remaining value.
type Timers [numTimers]float64

// Active reports whether a countdown is running.
func (t *Timers) Active(id Timer) bool {
	return t[id] > 0
}

// Refresh sets a countdown to d seconds.
func (t *Timers) Refresh(id Timer, d float64) {
	t[id] = d
}

// Decay advances every countdown by elapsed seconds, flooring at zero.
func (t *Timers) Decay(elapsed float64) {
	for i := range t {
		t[i] = max(0, t[i]-elapsed)
	}
}

// PaddleWidth resolves the big/small paddle pair.
func (t *Timers) PaddleWidth() float64 {
	switch {
	case t[TimerSmallPaddle] > t[TimerBigPaddle]:
		return PaddleWidthSmall
	case t[TimerBigPaddle] > t[TimerSmallPaddle]:
		return PaddleWidthBig
	default:
		return PaddleWidthNormal
	}
}

// BallSpeed resolves the fast/slow ball pair.
func (t *Timers) BallSpeed() float64 {
	switch {
	case t[TimerFastBalls] > t[TimerSlowBalls]:
		return DefaultBallSpeed * 1.5
	case t[TimerSlowBalls] > t[TimerFastBalls]:
		return DefaultBallSpeed * 0.66
	default:
		return DefaultBallSpeed
	}
}

// BallRadius doubles while big balls are active.
func (t *Timers) BallRadius() float64 {
	if t.Active(TimerBigBalls) {
		return DefaultBallRadius * 2
	}
	return DefaultBallRadius
}
