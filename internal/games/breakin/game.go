// Package breakin implements the Break-In match simulation: a paddle side
// trying to break through to the top of the screen and a brick side placing
// polyomino shapes to stop it.
//
// The simulation is single-threaded and frame-stepped. All randomness comes
// from one seeded generator owned by the Game, so a seed and an input
// sequence fully determine a match.
package breakin

import (
	"github.com/vovakirdan/break-in/internal/config"
	"github.com/vovakirdan/break-in/internal/core"
	"github.com/vovakirdan/break-in/internal/games/breakin/shape"
)

// State is the match status reported after every step.
type State struct {
	GameTime  float64
	GameSpeed float64
	Lives     int
	Balls     int
	Bricks    int
	Paused    bool
	Ended     bool
	Winner    Side
}

// Stats counts match activity for summaries.
type Stats struct {
	BricksBroken int
	BallsLost    int
	Placements   int
	Rejections   int
}

// StepResult is returned by Step.
type StepResult struct {
	State  State
	Events []Event
}

// Drag describes a shape being dragged by the human brick player.
type Drag struct {
	Slot   int // available slot index, -1 when idle
	Origin Cell
	OnGrid bool // shape fits inside the grid at Origin
	Valid  bool // shape can be placed at Origin
}

// Game is the match context. Every component works on it by reference.
type Game struct {
	cfg  config.BreakinConfig
	seed int64
	rng  *core.Rand

	grid   Grid
	slots  Slots
	paddle Paddle
	balls  Arena[Ball]
	drops  Arena[Drop]
	timers Timers
	combo  Combo
	lives  int

	gameTime  float64
	gameSpeed float64
	paused    bool
	ended     bool
	winner    Side

	drag   Drag
	events []Event
	stats  Stats
}

// New creates a match with the given configuration and seed.
func New(cfg config.BreakinConfig, seed int64) *Game {
	g := &Game{
		cfg:   cfg,
		balls: NewArena[Ball](MaxBalls),
		drops: NewArena[Drop](MaxDrops),
	}
	g.Reset(seed)
	return g
}

// Reset starts a new match with the stored configuration.
func (g *Game) Reset(seed int64) {
	m := g.cfg.Match
	g.seed = seed
	g.rng = core.NewRand(seed)

	g.grid.Reset(shape.Palette)
	g.slots = NewSlots(m.SpawnShapeTime, m.SpecialBrickChance)
	g.slots.Reset(g.rng)
	g.paddle = NewPaddle()
	g.balls.Reset()
	g.drops.Reset()
	g.timers = Timers{}
	g.combo = Combo{Max: m.ComboMax}
	g.lives = m.Lives

	g.gameTime = 0
	g.gameSpeed = 1
	g.paused = false
	g.ended = false
	g.winner = SideNone
	g.drag = Drag{Slot: -1}
	g.events = nil
	g.stats = Stats{}

	ball := newServeBall()
	ball.anchor(&g.paddle)
	g.balls.Add(ball)
}

// Seed returns the seed of the current match.
func (g *Game) Seed() int64 {
	return g.seed
}

// Step advances the match by dt seconds of host time. dt is clamped to
// [core.MinFrameDT, core.MaxFrameDT]. While paused or ended only the pause
// toggle is processed.
func (g *Game) Step(in core.InputFrame, dt float64) StepResult {
	g.events = nil
	dt = core.ClampDT(dt)

	if in.Has(core.ActionPause) && !g.ended {
		g.paused = !g.paused
	}
	if g.paused || g.ended {
		g.drag = Drag{Slot: -1}
		return StepResult{State: g.State(), Events: g.events}
	}

	dtMul := dt * 60
	prevTime := g.gameTime
	g.gameTime += dt
	g.gameSpeed = config.SpeedCurve(g.gameTime, g.cfg.Match.SpeedUp)
	g.timers.Decay(dt * g.gameSpeed)

	g.paddle.Update(in, &g.timers, dtMul*g.gameSpeed)
	g.slots.Advance(g.rng, dt*g.gameSpeed)
	g.updatePlacement(in)
	g.updateHeldBalls(in)
	g.updateDrops(dtMul)
	g.updateBalls(dtMul)
	g.grid.tickSpecials(g.rng, dt, g.gameSpeed, prevTime, g.gameTime)

	return StepResult{State: g.State(), Events: g.events}
}

// State returns the current match status.
func (g *Game) State() State {
	return State{
		GameTime:  g.gameTime,
		GameSpeed: g.gameSpeed,
		Lives:     g.lives,
		Balls:     g.balls.Len(),
		Bricks:    g.grid.Count(),
		Paused:    g.paused,
		Ended:     g.ended,
		Winner:    g.winner,
	}
}

// Stats returns the activity counters of the current match.
func (g *Game) Stats() Stats {
	return g.stats
}

// Grid exposes the brick field for rendering.
func (g *Game) Grid() *Grid {
	return &g.grid
}

// Slots exposes the shape pipeline for rendering.
func (g *Game) Slots() *Slots {
	return &g.slots
}

// Paddle returns a copy of the paddle.
func (g *Game) Paddle() Paddle {
	return g.paddle
}

// Timers returns a copy of the powerup countdowns.
func (g *Game) Timers() Timers {
	return g.timers
}

// Drag returns the current drag state.
func (g *Game) Drag() Drag {
	return g.drag
}

// EachBall calls fn for every ball.
func (g *Game) EachBall(fn func(Ball)) {
	for i := 0; i < g.balls.Len(); i++ {
		fn(*g.balls.At(i))
	}
}

// EachDrop calls fn for every falling drop.
func (g *Game) EachDrop(fn func(Drop)) {
	for i := 0; i < g.drops.Len(); i++ {
		fn(*g.drops.At(i))
	}
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

func (g *Game) volume() float64 {
	return g.cfg.Audio.MasterVolume
}

func (g *Game) sound(s Sound) {
	g.emit(Event{Kind: EventSound, Sound: s, Volume: g.volume()})
}

// endMatch records the first winner. Later calls are ignored.
func (g *Game) endMatch(winner Side) {
	if g.ended {
		return
	}
	g.ended = true
	g.winner = winner
	if winner == SidePaddle {
		g.sound(SoundWinPaddle)
	} else {
		g.sound(SoundWinBricks)
	}
	g.emit(Event{Kind: EventMatchEnded, Winner: winner})
}
