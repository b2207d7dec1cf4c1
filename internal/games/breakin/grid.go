package breakin

import (
	"github.com/vovakirdan/break-in/internal/core"
	"github.com/vovakirdan/break-in/internal/games/breakin/shape"
)

// Tile is one brick cell.
type Tile struct {
	Occupied bool
	Color    core.RGBA
	Kind     shape.Kind
	Age      float64 // seconds since a momentary special was placed
	Alpha    float64 // special fade-in, in [0, 1]
}

// Visible reports whether the special is opaque enough to drop on break.
func (t Tile) Visible() bool {
	return t.Kind != shape.KindNone && t.Alpha > 0.5
}

// DisplayAlpha combines the fade-in with the end-of-life fade-out.
func (t Tile) DisplayAlpha() float64 {
	if t.Kind == shape.KindNone {
		return 0
	}
	if !kindTable[t.Kind].fades {
		return t.Alpha
	}
	out := core.Lerp(0.15, 1, core.Clamp01(core.MapRangeTo01(t.Age, specialLifetime, specialLifetime-specialFadeWindow)))
	return t.Alpha * out
}

// Grid is the row-major brick field.
type Grid struct {
	tiles [GridW * GridH]Tile
}

// InBounds reports whether (x, y) is a grid cell.
func InBounds(x, y int) bool {
	return x >= 0 && x < GridW && y >= 0 && y < GridH
}

// At returns the tile at (x, y). The cell must be in bounds.
func (g *Grid) At(x, y int) *Tile {
	if !InBounds(x, y) {
		panic("breakin: tile out of bounds")
	}
	return &g.tiles[y*GridW+x]
}

// Occupied reports whether (x, y) holds a brick. Out-of-bounds cells are empty.
func (g *Grid) Occupied(x, y int) bool {
	return InBounds(x, y) && g.tiles[y*GridW+x].Occupied
}

// Count returns the number of bricks.
func (g *Grid) Count() int {
	n := 0
	for _, t := range g.tiles {
		if t.Occupied {
			n++
		}
	}
	return n
}

// Reset empties the grid and fills the top rows with one palette color each.
func (g *Grid) Reset(palette []core.RGBA) {
	g.tiles = [GridW * GridH]Tile{}
	for y, color := range palette {
		if y >= GridH {
			break
		}
		for x := 0; x < GridW; x++ {
			g.tiles[y*GridW+x] = Tile{Occupied: true, Color: color}
		}
	}
}

// Fits reports whether s can be placed with its top-left at origin.
func (g *Grid) Fits(s shape.Shape, origin Cell) bool {
	fits := true
	s.Each(func(x, y int, _ bool) {
		cx, cy := origin.X+x, origin.Y+y
		if !InBounds(cx, cy) || g.tiles[cy*GridW+cx].Occupied {
			fits = false
		}
	})
	return fits
}

// TryPlace writes s into the grid if it fits. A rejected placement leaves
// the grid untouched.
func (g *Grid) TryPlace(s shape.Shape, origin Cell) bool {
	if !g.Fits(s, origin) {
		return false
	}
	s.Each(func(x, y int, special bool) {
		t := Tile{Occupied: true, Color: s.Color}
		if special {
			t.Kind = s.Kind
			if kindTable[s.Kind].opaque {
				t.Alpha = 1
			}
		}
		g.tiles[(origin.Y+y)*GridW+origin.X+x] = t
	})
	return true
}

// Clear empties a cell.
func (g *Grid) Clear(x, y int) {
	*g.At(x, y) = Tile{}
}

// tickSpecials runs spawners when the match clock crosses a spawn boundary
// and ages momentary specials.
func (g *Grid) tickSpecials(rng *core.Rand, dt, gameSpeed, prevTime, time float64) {
	spawn := int(time/spawnerInterval) != int(prevTime/spawnerInterval)

	for y := 0; y < GridH; y++ {
		for x := 0; x < GridW; x++ {
			t := &g.tiles[y*GridW+x]
			if !t.Occupied || t.Kind == shape.KindNone {
				continue
			}
			t.Alpha = min(1, t.Alpha+specialFadeInRate*dt*gameSpeed)

			if !kindTable[t.Kind].fades {
				if t.Kind == shape.KindSpawner && spawn {
					g.spawnAround(rng, x, y, t.Color)
				}
				continue
			}
			t.Age += dt
			if t.Age >= specialLifetime {
				t.Kind = shape.KindNone
				t.Age = 0
			}
		}
	}
}

// spawnAround converts one random empty cell near (cx, cy) into a brick.
func (g *Grid) spawnAround(rng *core.Rand, cx, cy int, color core.RGBA) {
	x0, x1 := max(0, cx-spawnerRadius), min(GridW-1, cx+spawnerRadius)
	y0, y1 := max(0, cy-spawnerRadius), min(GridH-1, cy+spawnerRadius)

	empty := 0
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !g.tiles[y*GridW+x].Occupied {
				empty++
			}
		}
	}
	if empty == 0 {
		return
	}

	pick := rng.Intn(empty)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if g.tiles[y*GridW+x].Occupied {
				continue
			}
			if pick == 0 {
				g.tiles[y*GridW+x] = Tile{Occupied: true, Color: color}
				return
			}
			pick--
		}
	}
}
