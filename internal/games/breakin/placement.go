package breakin

import (
	"github.com/vovakirdan/break-in/internal/core"
	"github.com/vovakirdan/break-in/internal/games/breakin/shape"
)

// viewBox is the playfield in window space.
var viewBox = core.Box{Pos: ViewPos, Dim: core.V2(ViewW, ViewH)}

// dragOrigin maps a window-space pointer to the grid cell where the
// dragged shape's top-left would land, centering the shape on the pointer.
func dragOrigin(mouse core.Vec2, sh shape.Shape) (Cell, bool) {
	if !viewBox.Contains(mouse) {
		return Cell{}, false
	}
	tile := core.V2(TileW, TileH)
	half := core.V2(float64(sh.Dim.W), float64(sh.Dim.H)).Mul(tile).Scale(0.5)
	p := mouse.Sub(ViewPos).Add(tile.Scale(0.5)).Sub(half)
	origin := Cell{X: int(p.X / TileW), Y: int(p.Y / TileH)}

	onGrid := origin.X >= 0 && origin.Y >= 0 &&
		origin.X+sh.Dim.W <= GridW && origin.Y+sh.Dim.H <= GridH
	return origin, onGrid
}

// updatePlacement handles the human drag-and-drop, falling back to the
// autoplacer when no drag is in progress.
func (g *Game) updatePlacement(in core.InputFrame) {
	if g.drag.Slot < 0 {
		if in.Mouse.Pressed {
			for i := range g.slots.Available {
				if g.slots.Available[i].Occupied && SlotBox(i).Contains(in.Mouse.Pos) {
					g.drag = Drag{Slot: i}
					return
				}
			}
		}
		if g.cfg.Match.AIAutoplace {
			g.autoPlace()
		}
		return
	}

	slot := &g.slots.Available[g.drag.Slot]
	switch {
	case in.Mouse.Wheel < 0:
		slot.Shape = slot.Shape.RotateCW()
	case in.Mouse.Wheel > 0:
		slot.Shape = slot.Shape.RotateCCW()
	}

	origin, onGrid := dragOrigin(in.Mouse.Pos, slot.Shape)
	g.drag.Origin = origin
	g.drag.OnGrid = onGrid
	g.drag.Valid = onGrid && g.grid.Fits(slot.Shape, origin)

	if in.Mouse.Down {
		return
	}

	idx := g.drag.Slot
	valid := g.drag.Valid
	g.drag = Drag{Slot: -1}
	switch {
	case valid && g.grid.TryPlace(slot.Shape, origin):
		g.slots.Take(idx)
		g.sound(SoundPlace)
		g.emit(Event{Kind: EventBrickPlaced, Cell: origin})
		g.stats.Placements++
	case viewBox.Contains(in.Mouse.Pos):
		g.sound(SoundCantPlace)
		g.emit(Event{Kind: EventPlacementRejected, Cell: origin})
		g.stats.Rejections++
	}
}
