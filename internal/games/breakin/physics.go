package breakin

import (
	"math"

	"github.com/vovakirdan/break-in/internal/core"
	"github.com/vovakirdan/break-in/internal/games/breakin/shape"
)

// toiIterations is the number of bisection steps in the time-of-impact search.
const toiIterations = 20

// updateBalls integrates and resolves every ball for one step.
func (g *Game) updateBalls(dtMul float64) {
	for i := 0; i < g.balls.Len(); {
		if g.updateBall(i, dtMul) {
			i++
		}
	}
}

// updateBall advances ball i. It returns false when the ball was removed
// and index i now holds a different ball.
func (g *Game) updateBall(i int, dtMul float64) bool {
	b := g.balls.At(i)
	step := dtMul * g.gameSpeed
	prev := b.Pos

	b.Pos = b.Pos.Add(b.Vel.Scale(step))
	b.Radius = g.timers.BallRadius()
	if !b.Vel.IsZero() {
		b.Vel = b.Vel.Normalize().Scale(g.timers.BallSpeed())
	}

	hit := false
	lo, hi := b.Radius, ViewW-b.Radius
	if b.Pos.X < lo {
		b.Pos.X = lo
		b.Vel.X = -b.Vel.X
		hit = true
	} else if b.Pos.X > hi {
		b.Pos.X = hi
		b.Vel.X = -b.Vel.X
		hit = true
	}

	if b.Pos.Y < 0 {
		g.endMatch(SidePaddle)
	}

	if g.timers.Active(TimerBarrier) && core.CircleInBox(b.Pos, b.Radius, barrierBox(g.paddle.Pos.Y)) {
		b.Vel.Y = -math.Abs(b.Vel.Y)
		hit = true
	}
	g.randomize(b)

	if b.Pos.Y-b.Radius > WindowH {
		return g.loseBall(i)
	}

	g.collidePaddle(b, step)
	g.collideTiles(b, prev)

	if hit {
		if g.timers.Active(TimerBigBalls) {
			g.sound(SoundHeavyBallHit)
		} else {
			g.sound(SoundBallHit)
		}
	}
	return true
}

// randomize perturbs a ball's direction once per entry into the randomizer band.
func (g *Game) randomize(b *Ball) {
	if !g.timers.Active(TimerRandomizer) || !core.CircleInBox(b.Pos, b.Radius, randomizerBox(g.paddle.Pos.Y)) {
		b.Flags &^= BallInRandomizer
		return
	}
	if b.Flags.Has(BallInRandomizer) {
		return
	}
	b.Flags |= BallInRandomizer
	if b.Vel.IsZero() {
		return
	}

	turn := g.rng.Range(0.1*math.Pi, 0.18*math.Pi) * g.rng.Sign()
	angle := core.ClampAwayFromHorizontal(b.Vel.Angle()+turn, MinPaddleBounceAngle*0.5)
	b.Vel = core.FromAngle(b.Vel.Len(), angle)
	if g.rng.Chance(0.4) {
		b.Vel.Y = -b.Vel.Y
	}
	g.sound(SoundWoot)
}

// loseBall removes ball i after it fell out of the window. The last ball
// costs a life and is replaced by a served ball, or ends the match.
func (g *Game) loseBall(i int) bool {
	g.emit(Event{Kind: EventBallLost})
	g.stats.BallsLost++
	if g.balls.Len() > 1 {
		g.balls.Remove(i)
		return false
	}

	g.sound(SoundHurt)
	if g.lives > 0 {
		g.lives--
		b := g.balls.At(i)
		*b = newServeBall()
		b.anchor(&g.paddle)
		return true
	}
	g.balls.Remove(i)
	g.endMatch(SideBricks)
	return false
}

// collidePaddle bounces a descending ball off the paddle, or catches it
// while the magnet is active.
func (g *Game) collidePaddle(b *Ball, step float64) {
	p := &g.paddle
	if b.Vel.Y <= 0 || !core.CircleInBox(b.Pos, b.Radius, p.Box()) {
		return
	}

	if g.timers.Active(TimerMagnet) {
		b.Flags |= BallOnPaddle
		b.PaddleX = core.ClampF((b.Pos.X-p.Pos.X)/(p.Dim.X/2), -1, 1)
		b.anchor(p)
		b.Vel = core.Vec2{}
		return
	}

	topLeft := core.V2(p.Pos.X-p.Dim.X/2, p.Top())
	topRight := core.V2(p.Pos.X+p.Dim.X/2, p.Top())
	n := b.Vel.Normalize().RotateMinus90()
	leftProj := n.Dot(topLeft.Sub(b.Pos))
	rightProj := n.Dot(topRight.Sub(b.Pos))

	if leftProj-b.Radius < 0 && rightProj+b.Radius > 0 {
		target := core.V2(b.Pos.X, p.Top()-b.Radius)
		if b.Vel.Y != 0 {
			target.X = b.Pos.X + (target.Y-b.Pos.Y)*b.Vel.X/b.Vel.Y
		}
		b.Pos = b.Pos.Add(target.Sub(b.Pos).LimitLength(b.Vel.Len() * step))
		b.Pos.X = core.ClampF(b.Pos.X, b.Radius, ViewW-b.Radius)
		b.Vel = PaddleBounceDir(b.Pos.X, p).Scale(g.timers.BallSpeed())
	}
	g.sound(SoundPaddle)
	g.sound(SoundPaddleHitsBall)
}

// sweptCells returns the inclusive cell range a ball may touch between two
// positions.
func sweptCells(a, b core.Vec2, r float64) (Cell, Cell) {
	cell := func(x, y float64) Cell {
		return Cell{
			X: core.Clamp(int(math.Floor(x/TileW)), 0, GridW-1),
			Y: core.Clamp(int(math.Floor(y/TileH)), 0, GridH-1),
		}
	}
	lo := cell(math.Min(a.X, b.X)-r, math.Min(a.Y, b.Y)-r)
	hi := cell(math.Max(a.X, b.X)+r, math.Max(a.Y, b.Y)+r)
	return lo, hi
}

// overlapping appends the occupied cells in [lo, hi] that the circle touches.
func (g *Game) overlapping(dst []Cell, c core.Vec2, r float64, lo, hi Cell) []Cell {
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			if g.grid.Occupied(x, y) && core.CircleInBox(c, r, TileBox(x, y)) {
				dst = append(dst, Cell{x, y})
			}
		}
	}
	return dst
}

// timeOfImpact bisects the segment from prev to cur for the last position
// that touches no brick. It returns that position and the bricks touched by
// the most recent colliding sample.
func (g *Game) timeOfImpact(prev, cur core.Vec2, r float64, lo, hi Cell) (core.Vec2, []Cell) {
	var hits, scratch []Cell
	safe := prev
	num, den := 1.0, 1.0

	for range toiIterations {
		sample := core.LerpV(prev, cur, num/den)
		num *= 2
		den *= 2

		scratch = g.overlapping(scratch[:0], sample, r, lo, hi)
		if len(scratch) > 0 {
			hits = append(hits[:0], scratch...)
			num--
			continue
		}
		safe = sample
		if num == den {
			break
		}
		num++
	}
	return safe, hits
}

// bounceNormal picks the edge with the smallest center-to-edge distance
// among the touched bricks. The first brick in scan order wins ties.
func bounceNormal(pos, vel core.Vec2, hits []Cell) core.Vec2 {
	n := vel.Scale(-1).Normalize()
	best := math.MaxFloat64
	for _, c := range hits {
		box := TileBox(c.X, c.Y)
		var dis core.Vec2
		if vel.X > 0 && pos.X < box.Pos.X {
			dis.X = pos.X - box.Pos.X
		} else if vel.X < 0 && pos.X > box.Pos.X+box.Dim.X {
			dis.X = pos.X - (box.Pos.X + box.Dim.X)
		}
		if vel.Y > 0 && pos.Y < box.Pos.Y {
			dis.Y = pos.Y - box.Pos.Y
		} else if vel.Y < 0 && pos.Y > box.Pos.Y+box.Dim.Y {
			dis.Y = pos.Y - (box.Pos.Y + box.Dim.Y)
		}

		if d := dis.Len(); d < best {
			best = d
			if math.Abs(dis.X) > math.Abs(dis.Y) {
				n = core.V2(core.SignNonZero(dis.X), 0)
			} else {
				n = core.V2(0, core.SignNonZero(dis.Y))
			}
		}
	}
	return n
}

// collideTiles moves the ball back to its time of impact, bounces it and
// breaks the touched bricks. Arrow bricks hit from below or the side
// deflect the ball instead of breaking.
func (g *Game) collideTiles(b *Ball, prev core.Vec2) {
	lo, hi := sweptCells(prev, b.Pos, b.Radius)
	pos, hits := g.timeOfImpact(prev, b.Pos, b.Radius, lo, hi)
	b.Pos = pos
	if len(hits) == 0 {
		return
	}

	n := bounceNormal(pos, b.Vel, hits)
	fromAbove := n == core.V2(0, -1)
	for _, c := range hits {
		t := g.grid.At(c.X, c.Y)
		startedInside := core.CircleInBox(pos, b.Radius, TileBox(c.X, c.Y))
		if t.Kind == shape.KindArrow && !fromAbove && !startedInside {
			if b.Vel.Y < 0 && n.X != 0 {
				b.Vel.Y = -b.Vel.Y
			}
			g.sound(SoundBounce)
			continue
		}
		g.breakTile(c)
	}
	b.Vel = b.Vel.Reflect(n)
}

// breakTile clears a brick, spawning its special drop and scoring the combo.
func (g *Game) breakTile(c Cell) {
	t := g.grid.At(c.X, c.Y)
	center := TileBox(c.X, c.Y).Center()

	if t.Visible() {
		if fn := kindTable[t.Kind].onBreak; fn != nil {
			fn(g, center)
		}
	}

	step, completed := g.combo.Register(t.Color)
	if completed {
		g.spawnDrop(center, randomGoodDrop(g.rng))
	}
	g.emit(Event{Kind: EventSound, Sound: SoundCombo, ComboStep: step, Volume: g.volume()})
	g.emit(Event{Kind: EventBrickBroken, Cell: c})
	g.grid.Clear(c.X, c.Y)
	g.stats.BricksBroken++
}
