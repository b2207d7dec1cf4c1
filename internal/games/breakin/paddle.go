package breakin

import (
	"github.com/vovakirdan/break-in/internal/core"
)

// Paddle is the attacker's bat. Pos is its center.
type Paddle struct {
	Pos     core.Vec2
	Dim     core.Vec2
	XSpeed  float64
	LastDir float64 // last pressed direction, -1 or 1
}

// NewPaddle creates a paddle at rest.
func NewPaddle() Paddle {
	return Paddle{
		Pos:     PaddleRestPos,
		Dim:     core.V2(PaddleWidthNormal, PaddleH),
		LastDir: 1,
	}
}

// Box returns the paddle rectangle.
func (p *Paddle) Box() core.Box {
	return core.Box{Pos: p.Pos.Sub(p.Dim.Scale(0.5)), Dim: p.Dim}
}

// Top returns the y of the paddle's top edge.
func (p *Paddle) Top() float64 {
	return p.Pos.Y - p.Dim.Y/2
}

// steerInput resolves held left/right into a direction. With both held, a
// fresh press picks the side (right first), otherwise the last one stays.
func (p *Paddle) steerInput(in core.InputFrame, reversed bool) float64 {
	left, right := core.ActionLeft, core.ActionRight
	if reversed {
		left, right = right, left
	}

	heldL, heldR := in.IsHeld(left), in.IsHeld(right)
	switch {
	case heldL && heldR:
		if in.Has(right) {
			p.LastDir = 1
		} else if in.Has(left) {
			p.LastDir = -1
		}
	case heldR:
		p.LastDir = 1
	case heldL:
		p.LastDir = -1
	default:
		return 0
	}
	return p.LastDir
}

// Update moves the paddle for one step. k is dtMul scaled by game speed.
func (p *Paddle) Update(in core.InputFrame, timers *Timers, k float64) {
	p.Dim.X = timers.PaddleWidth()
	slippery := timers.Active(TimerSlipperyControls)
	maxSpeed := 7.0
	if slippery {
		maxSpeed = 10
	}

	dir := p.steerInput(in, timers.Active(TimerReverseControls))
	v := p.XSpeed
	switch {
	case dir == 0 && slippery:
		v = core.Lerp(core.MoveTowards(v, 0, 0.01*k), 0, 0.02*k)
	case dir == 0:
		v = core.Lerp(core.MoveTowards(v, 0, 1*k), 0, 0.3*k)
	case slippery:
		target := maxSpeed * dir
		step := core.LerpClamp(0.025, 0.5, v/target)
		v = core.Lerp(core.MoveTowards(v, target, step*k), target, 0.03*k)
	default:
		target := maxSpeed * dir
		v = core.Lerp(core.MoveTowards(v, target, 0.05*k), target, 0.1*k)
	}
	p.XSpeed = v

	lo, hi := p.Dim.X/2, ViewW-p.Dim.X/2
	p.Pos.X = core.ClampF(p.Pos.X+v*k, lo, hi)
	if (p.Pos.X == lo && v < 0) || (p.Pos.X == hi && v > 0) {
		if slippery {
			p.XSpeed *= -0.5
		} else {
			p.XSpeed = 0
		}
	}
}
