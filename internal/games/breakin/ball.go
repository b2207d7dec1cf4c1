package breakin

import (
	"math"

	"github.com/vovakirdan/break-in/internal/core"
)

// BallFlags holds per-ball state bits.
type BallFlags uint8

const (
	BallOnPaddle BallFlags = 1 << iota
	BallShootRandomly
	BallInRandomizer
)

// Has reports whether every bit in f is set.
func (b BallFlags) Has(f BallFlags) bool {
	return b&f == f
}

// Ball is one ball in play.
type Ball struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
	Flags  BallFlags
	// PaddleX is the ball's offset on the paddle in [-1, 1] while held.
	PaddleX float64
}

// newServeBall returns a ball waiting on the paddle for a random launch.
func newServeBall() Ball {
	return Ball{Radius: DefaultBallRadius, Flags: BallOnPaddle | BallShootRandomly}
}

// PaddleBounceDir maps a hit position on the paddle to a unit launch
// direction. The arcsine blend pushes more of the range toward the edges.
func PaddleBounceDir(ballX float64, p *Paddle) core.Vec2 {
	t := core.ClampF((ballX-p.Pos.X)/(p.Dim.X/2), -1, 1)
	t = core.Lerp(t, -1+core.Map01ToArcSin(0.5+0.5*t)*2, 0.4)
	angle := core.Lerp(math.Pi+MinPaddleBounceAngle, 2*math.Pi-MinPaddleBounceAngle, 0.5+0.5*t)
	return core.FromAngle(1, angle)
}

// anchor snaps a held ball to its spot on the paddle.
func (b *Ball) anchor(p *Paddle) {
	b.Pos = p.Pos.Add(core.V2(b.PaddleX*p.Dim.X/2, -p.Dim.Y/2-b.Radius))
	b.Pos.X = core.ClampF(b.Pos.X, b.Radius, ViewW-b.Radius)
}

// updateHeldBalls keeps paddle-held balls attached and launches them while
// Launch is held.
func (g *Game) updateHeldBalls(in core.InputFrame) {
	for i := 0; i < g.balls.Len(); i++ {
		b := g.balls.At(i)
		if !b.Flags.Has(BallOnPaddle) {
			continue
		}
		b.anchor(&g.paddle)

		if !in.IsHeld(core.ActionLaunch) {
			b.Vel = core.Vec2{}
			continue
		}
		speed := g.timers.BallSpeed()
		if b.Flags.Has(BallShootRandomly) {
			const minAngle = 0.25 * math.Pi
			b.Vel = core.FromAngle(speed, core.Lerp(math.Pi+minAngle, 2*math.Pi-minAngle, g.rng.Float64()))
		} else {
			b.Vel = PaddleBounceDir(b.Pos.X, &g.paddle).Scale(speed)
		}
		b.Flags &^= BallOnPaddle | BallShootRandomly
		g.sound(SoundPaddle)
	}
}
