package breakin

import (
	"math"

	"github.com/vovakirdan/break-in/internal/core"
)

// autopilotDeadZone is how far off-center a ball may be before the
// autopilot steers, in pixels.
const autopilotDeadZone = 6.0

// Autopilot plays the paddle side for headless runs. It steers under the
// lowest descending ball and keeps Launch held.
type Autopilot struct{}

// Input builds the paddle input for the next step of g.
func (Autopilot) Input(g *Game) core.InputFrame {
	in := core.NewInputFrame()
	in.Hold(core.ActionLaunch)

	target, ok := autopilotTarget(g)
	if !ok {
		return in
	}

	dx := target - g.paddle.Pos.X
	if math.Abs(dx) < autopilotDeadZone {
		return in
	}

	left, right := core.ActionLeft, core.ActionRight
	if g.timers.Active(TimerReverseControls) {
		left, right = right, left
	}
	if dx < 0 {
		in.Hold(left)
	} else {
		in.Hold(right)
	}
	return in
}

// autopilotTarget picks the x the paddle should center on: the lowest
// descending ball, else the lowest free ball.
func autopilotTarget(g *Game) (float64, bool) {
	bestY, bestX := math.Inf(-1), 0.0
	fallbackY, fallbackX := math.Inf(-1), 0.0
	for i := 0; i < g.balls.Len(); i++ {
		b := g.balls.At(i)
		if b.Flags.Has(BallOnPaddle) {
			continue
		}
		if b.Vel.Y > 0 && b.Pos.Y > bestY {
			bestY, bestX = b.Pos.Y, b.Pos.X
		}
		if b.Pos.Y > fallbackY {
			fallbackY, fallbackX = b.Pos.Y, b.Pos.X
		}
	}
	switch {
	case !math.IsInf(bestY, -1):
		return bestX, true
	case !math.IsInf(fallbackY, -1):
		return fallbackX, true
	}
	return 0, false
}
