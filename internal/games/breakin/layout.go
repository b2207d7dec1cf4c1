package breakin

import (
	"math"

	"github.com/vovakirdan/break-in/internal/core"
)

// Arena geometry in view pixel space. The view is the playfield; the window
// adds a side region holding the shape slots.
const (
	GridW = 12
	GridH = 12

	TileW = 37.0
	TileH = 19.0

	ViewW   = TileW * GridW
	ViewH   = 440.0
	WindowW = 800.0
	WindowH = 450.0

	PaddleH           = 10.0
	PaddleWidthSmall  = 50.0
	PaddleWidthNormal = 90.0
	PaddleWidthBig    = 130.0

	DefaultBallRadius = 6.0
	DefaultBallSpeed  = 5.0
	DropRadius        = 15.0

	MaxBalls = 10
	MaxDrops = 20

	SlotSize    = 75.0
	slotSpacing = SlotSize + 10

	barrierOffset  = 16.0
	barrierHeight  = 8.0
	randomizerBand = 20.0
)

// MinPaddleBounceAngle is the smallest launch angle from horizontal off the paddle.
const MinPaddleBounceAngle = 0.3 * math.Pi / 2

// ViewPos is the top-left of the playfield inside the window.
var ViewPos = core.V2((WindowW-ViewW)/2, (WindowH-ViewH)/2)

// PaddleRestPos is where the paddle center starts.
var PaddleRestPos = core.V2(ViewW/2, ViewH-30)

// TileBox returns the view-space box of a grid cell.
func TileBox(x, y int) core.Box {
	return core.BoxAt(float64(x)*TileW, float64(y)*TileH, TileW, TileH)
}

// SlotBox returns the window-space box of slot i, counting available slots
// first and next slots after them.
func SlotBox(i int) core.Box {
	regionX := ViewPos.X + ViewW
	x := regionX + (WindowW-regionX)/2 - SlotSize/2
	return core.BoxAt(x, 30+slotSpacing*float64(i), SlotSize, SlotSize)
}

func barrierBox(paddleY float64) core.Box {
	return core.BoxAt(0, paddleY+barrierOffset, WindowW, barrierHeight)
}

func randomizerBox(paddleY float64) core.Box {
	return core.BoxAt(0, paddleY*0.6-randomizerBand/2, WindowW, randomizerBand)
}
