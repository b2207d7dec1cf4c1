package breakin

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/break-in/internal/core"
	"github.com/vovakirdan/break-in/internal/games/breakin/shape"
)

// singleBrickGame returns a match with one brick at (2, 2) and one free ball.
func singleBrickGame(t *testing.T, kind shape.Kind, ball Ball) *Game {
	t.Helper()
	g := newTestGame(t)
	g.grid = Grid{}
	*g.grid.At(2, 2) = Tile{Occupied: true, Color: shape.Red, Kind: kind, Alpha: 1}
	ball.Radius = DefaultBallRadius
	*g.balls.At(0) = ball
	return g
}

func TestBrickHitFromAboveBreaksAndBounces(t *testing.T) {
	g := singleBrickGame(t, shape.KindNone, Ball{Pos: core.V2(100, 30), Vel: core.V2(0, 5)})

	require.True(t, g.updateBall(0, 1))
	b := g.balls.At(0)
	assert.LessOrEqual(t, b.Pos.Y, 32.0)
	assert.InDelta(t, 32, b.Pos.Y, 0.01)
	assert.InDelta(t, 0, b.Vel.X, 1e-9)
	assert.InDelta(t, -5, b.Vel.Y, 1e-9)
	assert.False(t, g.grid.Occupied(2, 2))
	assert.True(t, hasEvent(g.events, EventBrickBroken))
	assert.Equal(t, 1, g.stats.BricksBroken)
}

func TestArrowBrickDeflectsFromBelow(t *testing.T) {
	g := singleBrickGame(t, shape.KindArrow, Ball{Pos: core.V2(100, 66), Vel: core.V2(0, -5)})

	g.updateBall(0, 1)
	b := g.balls.At(0)
	assert.True(t, g.grid.Occupied(2, 2))
	assert.Equal(t, shape.KindArrow, g.grid.At(2, 2).Kind)
	assert.InDelta(t, 5, b.Vel.Y, 1e-9)
	assert.True(t, hasSound(g.events, SoundBounce))
	assert.False(t, hasEvent(g.events, EventBrickBroken))
}

func TestArrowBrickBreaksFromAbove(t *testing.T) {
	g := singleBrickGame(t, shape.KindArrow, Ball{Pos: core.V2(100, 30), Vel: core.V2(0, 5)})

	g.updateBall(0, 1)
	assert.False(t, g.grid.Occupied(2, 2))
}

func TestVisibleSpecialDropsOnBreak(t *testing.T) {
	g := singleBrickGame(t, shape.KindPowerup, Ball{Pos: core.V2(100, 30), Vel: core.V2(0, 5)})

	g.updateBall(0, 1)
	require.Equal(t, 1, g.drops.Len())
	d := g.drops.At(0)
	assert.True(t, d.Kind.Good())
	assert.Equal(t, TileBox(2, 2).Center(), d.Pos)
}

func TestFadedInSpecialDoesNotDrop(t *testing.T) {
	g := singleBrickGame(t, shape.KindBadPowerup, Ball{Pos: core.V2(100, 30), Vel: core.V2(0, 5)})
	g.grid.At(2, 2).Alpha = 0.4

	g.updateBall(0, 1)
	assert.False(t, g.grid.Occupied(2, 2))
	assert.Zero(t, g.drops.Len())
}

func TestWallBounceClampsAndReflects(t *testing.T) {
	g := newTestGame(t)
	g.grid = Grid{}
	*g.balls.At(0) = Ball{Pos: core.V2(8, 300), Vel: core.V2(-3, -4), Radius: DefaultBallRadius}

	g.updateBall(0, 1)
	b := g.balls.At(0)
	assert.Equal(t, DefaultBallRadius, b.Pos.X)
	assert.Positive(t, b.Vel.X)
	assert.True(t, hasSound(g.events, SoundBallHit))
}

func TestPaddleBounceSendsBallUp(t *testing.T) {
	g := newTestGame(t)
	g.grid = Grid{}
	top := g.paddle.Top()
	*g.balls.At(0) = Ball{Pos: core.V2(g.paddle.Pos.X+20, top-8), Vel: core.V2(0, 5), Radius: DefaultBallRadius}

	g.updateBall(0, 1)
	b := g.balls.At(0)
	assert.Negative(t, b.Vel.Y)
	assert.Positive(t, b.Vel.X, "right half of the paddle bounces right")
	assert.InDelta(t, DefaultBallSpeed, b.Vel.Len(), 1e-9)
	assert.True(t, hasSound(g.events, SoundPaddleHitsBall))
}

func TestMagnetCatchesBall(t *testing.T) {
	g := newTestGame(t)
	g.grid = Grid{}
	g.timers.Refresh(TimerMagnet, 10)
	*g.balls.At(0) = Ball{Pos: core.V2(g.paddle.Pos.X-20, g.paddle.Top()-8), Vel: core.V2(0, 5), Radius: DefaultBallRadius}

	g.updateBall(0, 1)
	b := g.balls.At(0)
	assert.True(t, b.Flags.Has(BallOnPaddle))
	assert.True(t, b.Vel.IsZero())
	assert.Negative(t, b.PaddleX)
	assert.InDelta(t, g.paddle.Top()-b.Radius, b.Pos.Y, 1e-9)
}

func TestBarrierReflectsUpward(t *testing.T) {
	g := newTestGame(t)
	g.grid = Grid{}
	g.timers.Refresh(TimerBarrier, 10)
	y := g.paddle.Pos.Y + barrierOffset
	*g.balls.At(0) = Ball{Pos: core.V2(20, y-5), Vel: core.V2(0, 5), Radius: DefaultBallRadius}

	g.updateBall(0, 1)
	assert.Negative(t, g.balls.At(0).Vel.Y)
}

func TestRandomizerIsEdgeTriggered(t *testing.T) {
	g := newTestGame(t)
	g.timers.Refresh(TimerRandomizer, 10)
	y := g.paddle.Pos.Y * 0.6
	b := &Ball{Pos: core.V2(200, y), Vel: core.V2(0, -5), Radius: DefaultBallRadius}

	g.randomize(b)
	require.True(t, b.Flags.Has(BallInRandomizer))
	assert.True(t, hasSound(g.events, SoundWoot))
	assert.InDelta(t, 5, b.Vel.Len(), 1e-9)

	vel := b.Vel
	g.randomize(b)
	assert.Equal(t, vel, b.Vel)

	b.Pos.Y = 50
	g.randomize(b)
	assert.False(t, b.Flags.Has(BallInRandomizer))
}

func TestRandomizerTurnBounds(t *testing.T) {
	const margin = MinPaddleBounceAngle * 0.5
	tests := []struct {
		name  string
		angle float64
		// clampFree marks start angles where any turn stays clear of
		// horizontal, so the turn size can be checked exactly.
		clampFree bool
	}{
		{"straight up", -0.5 * math.Pi, true},
		{"steep down", 0.45 * math.Pi, true},
		{"shallow up", -0.1 * math.Pi, false},
		{"shallow down", 0.95 * math.Pi, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flipped := 0
			for seed := int64(0); seed < 200; seed++ {
				g := newTestGame(t)
				g.Reset(seed)
				g.timers.Refresh(TimerRandomizer, 10)
				b := &Ball{
					Pos:    core.V2(200, g.paddle.Pos.Y*0.6),
					Vel:    core.FromAngle(5, tt.angle),
					Radius: DefaultBallRadius,
				}
				g.randomize(b)

				assert.InDelta(t, 5, b.Vel.Len(), 1e-9)
				a := b.Vel.Angle()
				fromHorizontal := math.Min(core.AngleDistance(a, 0), core.AngleDistance(a, math.Pi))
				require.GreaterOrEqual(t, fromHorizontal, margin-1e-9, "seed %d", seed)

				if !tt.clampFree {
					continue
				}
				// The vertical flip mirrors the angle, so undo it when the
				// ball ended up in the other half.
				turned := a
				if math.Signbit(math.Sin(a)) != math.Signbit(math.Sin(tt.angle)) {
					turned = -a
					flipped++
				}
				turn := core.AngleDistance(turned, tt.angle)
				require.GreaterOrEqual(t, turn, 0.1*math.Pi-1e-9, "seed %d", seed)
				require.LessOrEqual(t, turn, 0.18*math.Pi+1e-9, "seed %d", seed)
			}
			if tt.clampFree {
				assert.Positive(t, flipped)
				assert.Less(t, flipped, 200)
			}
		})
	}
}

func TestSweptCellsCoverPath(t *testing.T) {
	lo, hi := sweptCells(core.V2(10, 10), core.V2(200, 100), 6)
	assert.Equal(t, Cell{0, 0}, lo)
	assert.Equal(t, Cell{5, 5}, hi)

	lo, hi = sweptCells(core.V2(-50, -50), core.V2(1000, 1000), 6)
	assert.Equal(t, Cell{0, 0}, lo)
	assert.Equal(t, Cell{GridW - 1, GridH - 1}, hi)
}

func TestBounceNormalPicksNearestEdge(t *testing.T) {
	box := TileBox(4, 4)
	pos := core.V2(box.Pos.X-6, box.Center().Y)
	n := bounceNormal(pos, core.V2(5, 1), []Cell{{4, 4}})
	assert.Equal(t, core.V2(-1, 0), n)

	pos = core.V2(box.Center().X, box.Pos.Y+box.Dim.Y+6)
	n = bounceNormal(pos, core.V2(1, -5), []Cell{{4, 4}})
	assert.Equal(t, core.V2(0, 1), n)
}

func TestComboCompletionSpawnsGoodDrop(t *testing.T) {
	g := newTestGame(t)
	g.combo = Combo{Max: 2}
	g.grid = Grid{}
	for x := 0; x < 2; x++ {
		*g.grid.At(x, 5) = Tile{Occupied: true, Color: shape.Green}
	}

	g.breakTile(Cell{0, 5})
	assert.Zero(t, g.drops.Len())
	g.breakTile(Cell{1, 5})
	require.Equal(t, 1, g.drops.Len())
	assert.True(t, g.drops.At(0).Kind.Good())

	var steps []int
	for _, e := range g.events {
		if e.Kind == EventSound && e.Sound == SoundCombo {
			steps = append(steps, e.ComboStep)
		}
	}
	assert.Equal(t, []int{1, ComboSteps - 1}, steps)
}

func TestPaddleBounceDirRange(t *testing.T) {
	p := NewPaddle()
	for x := p.Pos.X - 60; x <= p.Pos.X+60; x += 5 {
		dir := PaddleBounceDir(x, &p)
		assert.InDelta(t, 1, dir.Len(), 1e-9)
		assert.Negative(t, dir.Y)
		angle := math.Abs(math.Atan2(-dir.Y, math.Abs(dir.X)))
		assert.GreaterOrEqual(t, angle, MinPaddleBounceAngle-1e-9)
	}
	center := PaddleBounceDir(p.Pos.X, &p)
	assert.InDelta(t, 0, center.X, 1e-9)
}
