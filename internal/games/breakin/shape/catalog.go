package shape

import "github.com/vovakirdan/break-in/internal/core"

// Brick palette.
var (
	Red    = core.RGB(1, 0.2, 0.2)
	Orange = core.RGB(1, 0.5, 0.1)
	Yellow = core.RGB(0.92, 0.85, 0.06)
	Green  = core.RGB(0.25, 0.85, 0.1)
	Blue   = core.RGB(0.4, 0.3, 1)
	Purple = core.RGB(0.8, 0.4, 1)
)

// Palette lists the brick colors in starting-row order.
var Palette = []core.RGBA{Red, Orange, Yellow, Green, Blue, Purple}

var catalog = []Shape{
	New(Yellow, 0xF0),       // line
	New(Blue, 0xC0, 0xC0),   // square
	New(Green, 0xC0, 0x60),  // stairs
	New(Orange, 0x40, 0xE0), // triangle
	New(Purple, 0xF0, 0x10), // L
	New(Red, 0xC0),          // two blocks
	New(Yellow, 0x80),       // one block
}

// Catalog returns a copy of the base shapes.
func Catalog() []Shape {
	out := make([]Shape, len(catalog))
	copy(out, catalog)
	return out
}

// Random picks a catalog entry in one of its 8 orientations.
func Random(rng *core.Rand) Shape {
	s := catalog[rng.Intn(len(catalog))]
	return s.Orient(rng.Bool(), rng.Bool(), rng.Bool())
}
