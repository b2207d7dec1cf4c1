package breakin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/break-in/internal/config"
	"github.com/vovakirdan/break-in/internal/core"
	"github.com/vovakirdan/break-in/internal/games/breakin/shape"
)

const frameDT = 1.0 / 60

func newTestGame(t *testing.T) *Game {
	t.Helper()
	cfg := config.DefaultBreakinConfig()
	cfg.Match.AIAutoplace = false
	return New(cfg, 12345)
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func hasSound(events []Event, s Sound) bool {
	for _, e := range events {
		if e.Kind == EventSound && e.Sound == s {
			return true
		}
	}
	return false
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := New(config.DefaultBreakinConfig(), 777)
		for i := 0; i < 1200; i++ {
			in := core.NewInputFrame()
			in.Hold(core.ActionLaunch)
			switch {
			case i%90 < 40:
				in.Hold(core.ActionLeft)
			case i%90 < 80:
				in.Hold(core.ActionRight)
			}
			if g.Step(in, frameDT).State.Ended {
				break
			}
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, a.Stats, b.Stats)
	assert.Positive(t, a.GameTime)
}

func TestNewMatchState(t *testing.T) {
	g := newTestGame(t)
	st := g.State()

	assert.Equal(t, 3, st.Lives)
	assert.Equal(t, 1, st.Balls)
	assert.Equal(t, 6*GridW, st.Bricks)
	assert.Equal(t, 1.0, st.GameSpeed)
	assert.False(t, st.Ended)

	ball := g.balls.At(0)
	assert.True(t, ball.Flags.Has(BallOnPaddle|BallShootRandomly))
	assert.InDelta(t, g.paddle.Top()-ball.Radius, ball.Pos.Y, 1e-9)

	for _, s := range g.slots.Available {
		assert.False(t, s.Occupied)
	}
	for _, s := range g.slots.Next {
		assert.True(t, s.Occupied)
	}
}

func TestStepClampsDT(t *testing.T) {
	g := newTestGame(t)
	g.Step(core.NewInputFrame(), 1)
	assert.InDelta(t, core.MaxFrameDT, g.State().GameTime, 1e-12)

	g.Step(core.NewInputFrame(), 0)
	assert.InDelta(t, core.MaxFrameDT+core.MinFrameDT, g.State().GameTime, 1e-12)
}

func TestPauseFreezesMatch(t *testing.T) {
	g := newTestGame(t)
	g.Step(core.NewInputFrame(), frameDT)
	before := g.State().GameTime

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	res := g.Step(pause, frameDT)
	require.True(t, res.State.Paused)

	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame(), frameDT)
	}
	assert.Equal(t, before, g.State().GameTime)

	res = g.Step(pause, frameDT)
	assert.False(t, res.State.Paused)
	assert.Greater(t, g.State().GameTime, before)
}

func TestLaunchReleasesHeldBall(t *testing.T) {
	g := newTestGame(t)
	in := core.NewInputFrame()
	in.Set(core.ActionLaunch)

	res := g.Step(in, frameDT)
	ball := g.balls.At(0)
	assert.False(t, ball.Flags.Has(BallOnPaddle))
	assert.Negative(t, ball.Vel.Y)
	assert.InDelta(t, DefaultBallSpeed, ball.Vel.Len(), 1e-9)
	assert.True(t, hasSound(res.Events, SoundPaddle))
}

func TestBallSpeedStaysConstant(t *testing.T) {
	g := New(config.DefaultBreakinConfig(), 99)
	for i := 0; i < 2000 && !g.State().Ended; i++ {
		in := core.NewInputFrame()
		in.Hold(core.ActionLaunch)
		g.Step(in, frameDT)

		speed := g.timers.BallSpeed()
		g.EachBall(func(b Ball) {
			if b.Flags.Has(BallOnPaddle) {
				return
			}
			assert.InDelta(t, speed, b.Vel.Len(), 1e-6)
		})
	}
}

func TestBallReachingTopEndsMatch(t *testing.T) {
	g := newTestGame(t)
	g.grid = Grid{}
	*g.balls.At(0) = Ball{Pos: core.V2(100, 3), Vel: core.V2(0, -5), Radius: DefaultBallRadius}

	g.updateBall(0, 1)
	st := g.State()
	assert.True(t, st.Ended)
	assert.Equal(t, SidePaddle, st.Winner)
	assert.True(t, hasEvent(g.events, EventMatchEnded))
	assert.True(t, hasSound(g.events, SoundWinPaddle))

	// a second crossing does not re-announce
	g.events = nil
	g.endMatch(SideBricks)
	assert.Equal(t, SidePaddle, g.State().Winner)
	assert.Empty(t, g.events)
}

func TestEndedMatchIgnoresInput(t *testing.T) {
	g := newTestGame(t)
	g.endMatch(SideBricks)
	before := g.Snapshot()

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	in.Hold(core.ActionLaunch)
	res := g.Step(in, frameDT)

	after := g.Snapshot()
	assert.Equal(t, before.Hash(), after.Hash())
	assert.False(t, res.State.Paused)
	assert.Empty(t, res.Events)
}

func TestLosingLastBallCostsLife(t *testing.T) {
	g := newTestGame(t)
	*g.balls.At(0) = Ball{Pos: core.V2(100, 460), Vel: core.V2(0, 5), Radius: DefaultBallRadius}

	g.updateBalls(1)
	require.Equal(t, 1, g.balls.Len())
	assert.Equal(t, 2, g.lives)
	assert.True(t, g.balls.At(0).Flags.Has(BallOnPaddle))
	assert.True(t, hasSound(g.events, SoundHurt))
	assert.Equal(t, 1, g.stats.BallsLost)
	assert.False(t, g.ended)
}

func TestLosingLastBallWithoutLivesEndsMatch(t *testing.T) {
	g := newTestGame(t)
	g.lives = 0
	*g.balls.At(0) = Ball{Pos: core.V2(100, 460), Vel: core.V2(0, 5), Radius: DefaultBallRadius}

	g.updateBalls(1)
	assert.Zero(t, g.balls.Len())
	assert.True(t, g.ended)
	assert.Equal(t, SideBricks, g.winner)
}

func TestLosingExtraBallKeepsLives(t *testing.T) {
	g := newTestGame(t)
	*g.balls.At(0) = Ball{Pos: core.V2(100, 200), Vel: core.V2(0, -5), Radius: DefaultBallRadius}
	g.balls.Add(Ball{Pos: core.V2(300, 460), Vel: core.V2(0, 5), Radius: DefaultBallRadius})
	g.grid = Grid{}

	g.updateBalls(1)
	assert.Equal(t, 1, g.balls.Len())
	assert.Equal(t, 3, g.lives)
	assert.False(t, hasSound(g.events, SoundHurt))
}

func TestHumanDragPlacesShape(t *testing.T) {
	g := newTestGame(t)
	g.slots.Available[0] = Slot{Shape: shape.New(shape.Red, 0x80), Occupied: true}
	target := ViewPos.Add(TileBox(5, 8).Center())

	press := core.NewInputFrame()
	press.Mouse = core.MouseState{Pos: SlotBox(0).Center(), Down: true, Pressed: true}
	g.Step(press, frameDT)
	require.Equal(t, 0, g.Drag().Slot)

	hold := core.NewInputFrame()
	hold.Mouse = core.MouseState{Pos: target, Down: true}
	g.Step(hold, frameDT)
	drag := g.Drag()
	assert.Equal(t, Cell{5, 8}, drag.Origin)
	assert.True(t, drag.Valid)

	release := core.NewInputFrame()
	release.Mouse = core.MouseState{Pos: target, Released: true}
	res := g.Step(release, frameDT)

	assert.True(t, g.grid.Occupied(5, 8))
	assert.False(t, g.slots.Available[0].Occupied)
	assert.Equal(t, -1, g.Drag().Slot)
	assert.True(t, hasSound(res.Events, SoundPlace))
	for _, e := range res.Events {
		if e.Kind == EventBrickPlaced {
			assert.False(t, e.ByAI)
		}
	}
}

func TestHumanDragRejectedOnOccupiedCells(t *testing.T) {
	g := newTestGame(t)
	g.slots.Available[1] = Slot{Shape: shape.New(shape.Blue, 0xC0, 0xC0), Occupied: true}
	before := g.grid
	target := ViewPos.Add(TileBox(3, 1).Center())

	press := core.NewInputFrame()
	press.Mouse = core.MouseState{Pos: SlotBox(1).Center(), Down: true, Pressed: true}
	g.Step(press, frameDT)

	release := core.NewInputFrame()
	release.Mouse = core.MouseState{Pos: target, Released: true}
	res := g.Step(release, frameDT)

	assert.Equal(t, before, g.grid)
	assert.True(t, g.slots.Available[1].Occupied)
	assert.True(t, hasSound(res.Events, SoundCantPlace))
	assert.True(t, hasEvent(res.Events, EventPlacementRejected))
}

func TestDragWheelRotatesShape(t *testing.T) {
	g := newTestGame(t)
	g.slots.Available[0] = Slot{Shape: shape.New(shape.Yellow, 0xF0), Occupied: true}

	press := core.NewInputFrame()
	press.Mouse = core.MouseState{Pos: SlotBox(0).Center(), Down: true, Pressed: true}
	g.Step(press, frameDT)

	wheel := core.NewInputFrame()
	wheel.Mouse = core.MouseState{Pos: SlotBox(0).Center(), Down: true, Wheel: -1}
	g.Step(wheel, frameDT)

	assert.Equal(t, shape.Dim{W: 1, H: 4}, g.slots.Available[0].Shape.Dim)
}

func TestDragCancelledByPause(t *testing.T) {
	g := newTestGame(t)
	g.slots.Available[0] = Slot{Shape: shape.New(shape.Red, 0x80), Occupied: true}

	press := core.NewInputFrame()
	press.Mouse = core.MouseState{Pos: SlotBox(0).Center(), Down: true, Pressed: true}
	g.Step(press, frameDT)
	require.Equal(t, 0, g.Drag().Slot)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause, frameDT)
	assert.Equal(t, -1, g.Drag().Slot)
	assert.True(t, g.slots.Available[0].Occupied)
}

func TestSoundsCarryMasterVolume(t *testing.T) {
	cfg := config.DefaultBreakinConfig()
	cfg.Audio.MasterVolume = 0.25
	g := New(cfg, 1)

	in := core.NewInputFrame()
	in.Set(core.ActionLaunch)
	res := g.Step(in, frameDT)
	for _, e := range res.Events {
		if e.Kind == EventSound {
			assert.Equal(t, 0.25, e.Volume)
		}
	}
}

func TestRenderDrawsMatch(t *testing.T) {
	g := newTestGame(t)
	scr := core.NewScreen(80, 30)
	g.Render(scr)

	assert.Contains(t, scr.Row(0), "BREAK-IN")
	assert.Contains(t, scr.Row(1), "Lives 3")
	assert.Equal(t, '█', scr.Get(2, 1))
	assert.Equal(t, core.ColorRed, scr.GetCell(2, 1).Color)
	assert.Equal(t, core.ColorMagenta, scr.GetCell(2, 6).Color)

	row := pxToRow(g.paddle.Pos.Y)
	assert.Equal(t, '▀', scr.Get(pxToCol(g.paddle.Box().Pos.X), row))
	assert.Equal(t, '●', scr.Get(pxToCol(g.paddle.Pos.X), row))
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t)
	scr := core.NewScreen(20, 10)
	g.Render(scr)
	assert.Contains(t, scr.String(), "Window too small")
}

func TestScreenToWindowRoundTrip(t *testing.T) {
	for _, c := range []Cell{{0, 0}, {5, 8}, {11, 11}} {
		p := ScreenToWindow(1+c.X*cellCols+1, 1+c.Y)
		origin, ok := dragOrigin(p, shape.New(shape.Red, 0x80))
		require.True(t, ok)
		assert.Equal(t, c, origin)
	}

	for i := 0; i < 4; i++ {
		x, y := slotCell(i)
		assert.True(t, SlotBox(i).Contains(ScreenToWindow(x+1, y+1)))
	}
	assert.False(t, viewBox.Contains(ScreenToWindow(MinScreenW+5, 0)))
}
