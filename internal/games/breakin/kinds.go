package breakin

import (
	"math"

	"github.com/vovakirdan/break-in/internal/core"
	"github.com/vovakirdan/break-in/internal/games/breakin/shape"
)

// Special brick lifetimes, in seconds.
const (
	spawnerInterval   = 5.0
	specialLifetime   = 60.0
	specialFadeWindow = 15.0
	specialFadeInRate = 1.3
	spawnerRadius     = 2
)

// placementContext describes the surroundings of one special cell in a
// candidate placement.
type placementContext struct {
	full, free int
	aboveFree  bool
	belowFree  bool
	column     int
}

func (c placementContext) fullFraction() float64 {
	return core.SafeDivide(float64(c.full), float64(c.full+c.free), 1)
}

func (c placementContext) freeFraction() float64 {
	return core.SafeDivide(float64(c.free), float64(c.full+c.free), 1)
}

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// kindInfo is one row of the special brick table.
type kindInfo struct {
	glyph rune
	// weight is the categorical draw weight when a shape gets a special.
	weight   float64
	minCells int
	maxCells int
	// fades marks momentary specials that revert to plain bricks.
	fades  bool
	opaque bool
	// onBreak runs when a visible special of this kind is broken at pos.
	onBreak func(g *Game, pos core.Vec2)
	// strength blends score into the autoplacer heuristic.
	strength float64
	score    func(c placementContext) float64
}

var kindTable = map[shape.Kind]kindInfo{
	shape.KindNone: {glyph: ' '},
	shape.KindPowerup: {
		glyph: '+', weight: 0.30, minCells: 1, maxCells: 1, fades: true,
		onBreak: func(g *Game, pos core.Vec2) {
			g.spawnDrop(pos, randomGoodDrop(g.rng))
		},
		strength: 0.3,
		score: func(c placementContext) float64 {
			return 0.7*core.Square(c.fullFraction()) + 0.3*(1-b2f(c.belowFree))
		},
	},
	shape.KindBadPowerup: {
		glyph: '-', weight: 0.30, minCells: 1, maxCells: 1, fades: true, opaque: true,
		onBreak: func(g *Game, pos core.Vec2) {
			g.spawnDrop(pos, randomBadDrop(g.rng))
		},
		strength: 0.3,
		score: func(c placementContext) float64 {
			const half = GridW / 2.0
			centered := 1 - math.Abs(float64(c.column)+0.5-half)/half
			return 0.5*c.freeFraction() + 0.3*centered + 0.2*b2f(c.belowFree)
		},
	},
	shape.KindArrow: {
		glyph: 'v', weight: 0.25, minCells: 2, maxCells: 3, fades: true,
		strength: 0.4,
		score: func(c placementContext) float64 {
			return 0.66*b2f(c.aboveFree) + 0.33*(1-b2f(c.belowFree))
		},
	},
	shape.KindSpawner: {
		glyph: '*', weight: 0.15, minCells: 1, maxCells: 1,
		onBreak: func(g *Game, pos core.Vec2) {
			kind := randomBadDrop(g.rng)
			if g.rng.Chance(0.5) {
				kind = randomGoodDrop(g.rng)
			}
			g.sound(SoundPreerw)
			g.spawnDrop(pos, kind)
		},
		strength: 0.5,
		score: func(c placementContext) float64 {
			return 0.6*core.Square(c.fullFraction()) + 0.4*(1-b2f(c.belowFree))
		},
	},
}

// specialKinds is the draw order for the categorical special pick.
var specialKinds = []shape.Kind{shape.KindArrow, shape.KindSpawner, shape.KindPowerup, shape.KindBadPowerup}

// drawSpecialKind picks a special kind by table weight.
func drawSpecialKind(rng *core.Rand) shape.Kind {
	total := 0.0
	for _, k := range specialKinds {
		total += kindTable[k].weight
	}
	u := rng.Float64() * total
	for _, k := range specialKinds {
		u -= kindTable[k].weight
		if u < 0 {
			return k
		}
	}
	return specialKinds[len(specialKinds)-1]
}

// KindGlyph returns the character drawn over a special brick.
func KindGlyph(k shape.Kind) rune {
	return kindTable[k].glyph
}

// SpecialKinds lists the special brick kinds in draw order.
func SpecialKinds() []shape.Kind {
	return append([]shape.Kind(nil), specialKinds...)
}
