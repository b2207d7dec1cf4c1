package breakin

import (
	"github.com/vovakirdan/break-in/internal/core"
	"github.com/vovakirdan/break-in/internal/games/breakin/shape"
)

// aiTrials is the number of random candidates the autoplacer scores per step.
const aiTrials = 25

var neighborOffsets = [4]Cell{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// candidate is a scored placement.
type candidate struct {
	shape  shape.Shape
	origin Cell
	score  float64
}

// findEmergency looks for a column that is open from the top rows all the
// way down, which gives the ball a clear path to the top. Columns are
// scanned from a random start.
func findEmergency(grid *Grid, rng *core.Rand) (int, bool) {
	start := rng.IntRange(0, GridW-1)
	for top := 0; top <= 1; top++ {
		for i := 0; i < GridW; i++ {
			x := (start + i) % GridW
			open := true
			for y := top; y < GridH; y++ {
				if grid.Occupied(x, y) {
					open = false
					break
				}
			}
			if open {
				return x, true
			}
		}
	}
	return 0, false
}

// cellFull classifies a neighbor cell for compactness scoring. Below the
// grid is open; the side walls and the top count as full.
func cellFull(grid *Grid, x, y int) bool {
	if y >= GridH {
		return false
	}
	if InBounds(x, y) {
		return grid.Occupied(x, y)
	}
	return true
}

// placementScore evaluates a fitting placement. base is the heuristic in
// [0, 1] before the special blend; blended applies the special kind's
// preference.
func placementScore(grid *Grid, sh shape.Shape, origin Cell, timePressure, emergency float64) (base, blended float64) {
	inShape := func(x, y int) bool {
		return x >= 0 && y >= 0 && x < sh.Dim.W && y < sh.Dim.H && sh.Cells.Occupied(x, y)
	}

	full, free := 0, 0
	specialSum, specials := 0.0, 0
	info := kindTable[sh.Kind]

	sh.Each(func(x, y int, special bool) {
		var ctx placementContext
		for _, off := range neighborOffsets {
			nx, ny := x+off.X, y+off.Y
			if inShape(nx, ny) {
				continue
			}
			if cellFull(grid, origin.X+nx, origin.Y+ny) {
				ctx.full++
			} else {
				ctx.free++
			}
		}
		full += ctx.full
		free += ctx.free

		if !special || info.score == nil {
			return
		}
		gx, gy := origin.X+x, origin.Y+y
		ctx.column = gx
		ctx.belowFree = gy+1 >= GridH || (!grid.Occupied(gx, gy+1) && !inShape(x, y+1))
		ctx.aboveFree = gy-1 >= 0 && !grid.Occupied(gx, gy-1) && !inShape(x, y-1)
		specialSum += info.score(ctx)
		specials++
	})

	adjacency := core.Square(core.SafeDivide(float64(full), float64(full+free), 1))
	yPos := core.Square(core.MapRangeTo01(float64(origin.Y), float64(GridH-sh.Dim.H), 0))
	base = core.Clamp01(0.4*adjacency + 0.3*yPos + 0.1*timePressure + 0.8*emergency)

	if specials == 0 {
		return base, base
	}
	special := core.Clamp01(specialSum / float64(specials))
	return base, core.Lerp(base, special, info.strength)
}

// bestPlacement runs the random trials for one slot shape.
func (g *Game) bestPlacement(sh shape.Shape) (candidate, bool) {
	emergencyX, emergency := findEmergency(&g.grid, g.rng)
	timePressure := core.Square(core.SafeDivide(g.slots.Timer, g.slots.Period, 0))

	var best candidate
	found := false
	for range aiTrials {
		try := sh
		for r := g.rng.IntRange(0, 3); r > 0; r-- {
			try = try.RotateCCW()
		}
		maxX, maxY := GridW-try.Dim.W, GridH-try.Dim.H
		origin := Cell{g.rng.IntRange(0, maxX), g.rng.IntRange(0, maxY)}

		bonus := 0.0
		if emergency {
			if g.rng.Chance(0.6) {
				origin.X = core.Clamp(emergencyX-g.rng.IntRange(0, try.Dim.W-1), 0, maxX)
				bonus += 0.7
			}
			if g.rng.Chance(0.4) {
				origin.Y = core.Clamp(int(5*core.Square(core.Square(g.rng.Float64()))), 0, maxY)
			}
			bonus += 0.3 * core.Square(1-core.Clamp01(float64(origin.Y)/4))
		}

		if !g.grid.Fits(try, origin) {
			continue
		}
		_, score := placementScore(&g.grid, try, origin, timePressure, bonus)
		if score > best.score {
			best = candidate{shape: try, origin: origin, score: score}
			found = true
		}
	}
	return best, found
}

// autoPlace lets the autoplacer consider one available shape. It commits
// the best candidate with probability score squared.
func (g *Game) autoPlace() {
	n := len(g.slots.Available)
	preferred := g.rng.IntRange(0, n-1)
	idx := -1
	for i := 0; i < n; i++ {
		j := (preferred + i) % n
		if g.slots.Available[j].Occupied {
			idx = j
			break
		}
	}
	if idx < 0 {
		return
	}

	best, ok := g.bestPlacement(g.slots.Available[idx].Shape)
	if !ok || !g.rng.Chance(best.score*best.score) {
		return
	}
	if g.grid.TryPlace(best.shape, best.origin) {
		g.slots.Take(idx)
		g.sound(SoundPlace)
		g.emit(Event{Kind: EventBrickPlaced, Cell: best.origin, ByAI: true})
		g.stats.Placements++
	}
}
