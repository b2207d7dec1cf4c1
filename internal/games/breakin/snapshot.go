package breakin

import "math"

// Snapshot is a flat copy of the match state used for determinism checks
// and match summaries. Floats are stored as their IEEE-754 bits so equal
// snapshots hash equally.
type Snapshot struct {
	Seed     int64
	GameTime float64
	Lives    int
	Ended    bool
	Winner   Side
	PaddleX  float64

	// Each tile is 3 values: occupied, kind, alpha bits.
	TileData []uint64

	// Each ball is 5 values: x, y, vx, vy, flags.
	BallData []uint64

	// Each drop is 3 values: kind, x, y.
	DropData []uint64

	Timers Timers
	Stats  Stats
}

// Snapshot captures the current match state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Seed:     g.seed,
		GameTime: g.gameTime,
		Lives:    g.lives,
		Ended:    g.ended,
		Winner:   g.winner,
		PaddleX:  g.paddle.Pos.X,
		TileData: make([]uint64, 0, len(g.grid.tiles)*3),
		BallData: make([]uint64, 0, g.balls.Len()*5),
		DropData: make([]uint64, 0, g.drops.Len()*3),
		Timers:   g.timers,
		Stats:    g.stats,
	}

	for _, t := range g.grid.tiles {
		occupied := uint64(0)
		if t.Occupied {
			occupied = 1
		}
		snap.TileData = append(snap.TileData, occupied, uint64(t.Kind), math.Float64bits(t.Alpha)) //#nosec G115 -- hash input
	}
	for i := 0; i < g.balls.Len(); i++ {
		b := g.balls.At(i)
		snap.BallData = append(snap.BallData,
			math.Float64bits(b.Pos.X), math.Float64bits(b.Pos.Y),
			math.Float64bits(b.Vel.X), math.Float64bits(b.Vel.Y),
			uint64(b.Flags))
	}
	for i := 0; i < g.drops.Len(); i++ {
		d := g.drops.At(i)
		snap.DropData = append(snap.DropData, uint64(d.Kind), math.Float64bits(d.Pos.X), math.Float64bits(d.Pos.Y)) //#nosec G115 -- hash input
	}
	return snap
}

// Hash folds the snapshot into a single value for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Seed) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.GameTime)
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	if snap.Ended {
		h = h*31 + 1
	}
	h = h*31 + uint64(snap.Winner) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PaddleX)

	for _, v := range snap.TileData {
		h = h*31 + v
	}
	for _, v := range snap.BallData {
		h = h*31 + v
	}
	for _, v := range snap.DropData {
		h = h*31 + v
	}
	for _, v := range snap.Timers {
		h = h*31 + math.Float64bits(v)
	}
	return h
}
