package breakin

import (
	"math"

	"github.com/vovakirdan/break-in/internal/core"
)

// DropKind is the effect carried by a falling pickup.
type DropKind int

// Good drops come first, bad drops after; the ranges are contiguous.
const (
	DropLife DropKind = iota
	DropExtraBall
	DropBigPaddle
	DropMagnet
	DropBigBalls
	DropBarrier
	DropTwoExtraBalls

	DropFastBalls
	DropSlowBalls
	DropSmallPaddle
	DropReverseControls
	DropSlipperyControls
	DropRandomizer

	numDropKinds

	firstGoodDrop = DropLife
	lastGoodDrop  = DropTwoExtraBalls
	firstBadDrop  = DropFastBalls
	lastBadDrop   = DropRandomizer
)

const (
	defaultTimerDuration = 25.0
	longTimerDuration    = 30.0
)

// dropInfo is one row of the drop table.
// Drops without a timer apply an instant effect: an extra life or balls.
type dropInfo struct {
	name     string
	glyph    rune
	timer    Timer
	duration float64
	balls    int
	life     bool
}

var dropTable = [numDropKinds]dropInfo{
	DropLife:             {name: "Life", glyph: '♥', timer: -1, life: true},
	DropExtraBall:        {name: "ExtraBall", glyph: 'o', timer: -1, balls: 1},
	DropBigPaddle:        {name: "BigPaddle", glyph: 'W', timer: TimerBigPaddle, duration: defaultTimerDuration},
	DropMagnet:           {name: "Magnet", glyph: 'U', timer: TimerMagnet, duration: longTimerDuration},
	DropBigBalls:         {name: "BigBalls", glyph: 'O', timer: TimerBigBalls, duration: longTimerDuration},
	DropBarrier:          {name: "Barrier", glyph: '=', timer: TimerBarrier, duration: defaultTimerDuration},
	DropTwoExtraBalls:    {name: "TwoExtraBalls", glyph: '8', timer: -1, balls: 2},
	DropFastBalls:        {name: "FastBalls", glyph: '>', timer: TimerFastBalls, duration: defaultTimerDuration},
	DropSlowBalls:        {name: "SlowBalls", glyph: '<', timer: TimerSlowBalls, duration: defaultTimerDuration},
	DropSmallPaddle:      {name: "SmallPaddle", glyph: 'w', timer: TimerSmallPaddle, duration: defaultTimerDuration},
	DropReverseControls:  {name: "ReverseControls", glyph: 'R', timer: TimerReverseControls, duration: defaultTimerDuration},
	DropSlipperyControls: {name: "SlipperyControls", glyph: '~', timer: TimerSlipperyControls, duration: defaultTimerDuration},
	DropRandomizer:       {name: "Randomizer", glyph: '?', timer: TimerRandomizer, duration: longTimerDuration},
}

// String returns the drop name.
func (k DropKind) String() string {
	if k < 0 || k >= numDropKinds {
		return "Unknown"
	}
	return dropTable[k].name
}

// Glyph returns the character used to draw the drop.
func (k DropKind) Glyph() rune {
	if k < 0 || k >= numDropKinds {
		return '?'
	}
	return dropTable[k].glyph
}

// Good reports whether the drop helps the paddle side.
func (k DropKind) Good() bool {
	return k >= firstGoodDrop && k <= lastGoodDrop
}

// Duration is the countdown set on capture, zero for instant drops.
func (k DropKind) Duration() float64 {
	return dropTable[k].duration
}

// AllDrops lists every drop kind in table order.
func AllDrops() []DropKind {
	out := make([]DropKind, 0, numDropKinds)
	for k := DropKind(0); k < numDropKinds; k++ {
		out = append(out, k)
	}
	return out
}

func randomGoodDrop(rng *core.Rand) DropKind {
	return DropKind(rng.IntRange(int(firstGoodDrop), int(lastGoodDrop)))
}

func randomBadDrop(rng *core.Rand) DropKind {
	return DropKind(rng.IntRange(int(firstBadDrop), int(lastBadDrop)))
}

// Drop is a falling pickup.
type Drop struct {
	Pos       core.Vec2
	Kind      DropKind
	FallSpeed float64
}

// spawnDrop adds a drop at pos. A full arena ignores the request.
func (g *Game) spawnDrop(pos core.Vec2, kind DropKind) bool {
	speed := g.rng.Range(1.3, 1.7)
	if kind.Good() {
		speed = g.rng.Range(1.7, 2.3)
	}
	return g.drops.Add(Drop{Pos: pos, Kind: kind, FallSpeed: speed})
}

// updateDrops moves pickups, applies captured effects and discards drops
// that left the window.
func (g *Game) updateDrops(dtMul float64) {
	paddle := g.paddle.Box()
	for i := 0; i < g.drops.Len(); {
		d := g.drops.At(i)
		d.Pos.Y += d.FallSpeed * dtMul * g.gameSpeed

		switch {
		case core.CircleInBox(d.Pos, DropRadius, paddle):
			kind := d.Kind
			g.drops.Remove(i)
			g.applyDrop(kind)
		case d.Pos.Y-DropRadius > WindowH:
			g.drops.Remove(i)
		default:
			i++
		}
	}
}

// applyDrop applies exactly one captured effect.
func (g *Game) applyDrop(kind DropKind) {
	info := dropTable[kind]
	switch {
	case info.life:
		g.lives++
	case info.balls > 0:
		for range info.balls {
			g.spawnExtraBall()
		}
	default:
		g.timers.Refresh(info.timer, info.duration)
	}
	g.emit(Event{Kind: EventDropCaught, Drop: kind})
}

// spawnExtraBall launches a new ball from the first free-flying ball, or
// from the paddle when every ball is held. The new direction is at least
// 0.1π from the origin ball's direction and kept away from horizontal.
// Near the paddle it always points up.
func (g *Game) spawnExtraBall() bool {
	if g.balls.Full() {
		return false
	}

	radius := g.timers.BallRadius()
	pos := g.paddle.Pos.Add(core.V2(0, -g.paddle.Dim.Y-radius))
	origin := g.rng.Range(0, 2*math.Pi)
	for i := 0; i < g.balls.Len(); i++ {
		b := g.balls.At(i)
		if !b.Flags.Has(BallOnPaddle) {
			pos = b.Pos
			origin = b.Vel.Angle()
			break
		}
	}

	up := pos.Y > g.paddle.Pos.Y-130
	angle, ok := 0.0, false
	for range extraBallTries {
		offset := g.rng.Range(extraBallMinTurn, math.Pi-extraBallMinTurn)
		if g.rng.Chance(0.5) {
			offset += math.Pi
		}
		a := core.ClampAwayFromHorizontal(origin+offset, MinPaddleBounceAngle*0.5)
		if up {
			a = -math.Abs(a)
		}
		if core.AngleDistance(a, origin) >= extraBallMinTurn {
			angle, ok = a, true
			break
		}
	}
	if !ok {
		angle = farthestLaunchAngle(origin, up)
	}

	vel := core.FromAngle(g.timers.BallSpeed(), angle)
	return g.balls.Add(Ball{Pos: pos, Vel: vel, Radius: radius})
}

const (
	extraBallMinTurn = 0.1 * math.Pi
	extraBallTries   = 8
)

// farthestLaunchAngle picks, among a few non-horizontal directions, the one
// farthest from origin. up restricts the choice to upward directions.
func farthestLaunchAngle(origin float64, up bool) float64 {
	const m = MinPaddleBounceAngle * 0.5
	candidates := []float64{-math.Pi + m, -math.Pi / 2, -m}
	if !up {
		candidates = append(candidates, m, math.Pi/2, math.Pi-m)
	}
	best, bestDist := candidates[0], -1.0
	for _, a := range candidates {
		if d := core.AngleDistance(a, origin); d > bestDist {
			best, bestDist = a, d
		}
	}
	return best
}
