package breakin

import (
	"fmt"

	"github.com/vovakirdan/break-in/internal/core"
	"github.com/vovakirdan/break-in/internal/games/breakin/shape"
)

// Terminal layout. Each tile is cellCols characters wide and one row tall.
const (
	cellCols  = 3
	viewCols  = GridW * cellCols
	viewRows  = 23 // whole tile rows in ViewH
	panelX    = viewCols + 4
	slotCols  = 10
	slotRows  = 4
	slotRowY0 = 5
	slotRowY1 = slotRowY0 + slotRows + 2
	timersY   = slotRowY1 + slotRows + 1

	// MinScreenW and MinScreenH are the smallest screen that fits the match.
	MinScreenW = panelX + 2*slotCols + 2
	MinScreenH = viewRows + 2
)

var paletteColors = map[core.RGBA]core.Color{
	shape.Red:    core.ColorRed,
	shape.Orange: core.ColorOrange,
	shape.Yellow: core.ColorYellow,
	shape.Green:  core.ColorGreen,
	shape.Blue:   core.ColorBlue,
	shape.Purple: core.ColorMagenta,
}

func termColor(c core.RGBA) core.Color {
	if tc, ok := paletteColors[core.RGB(c.R, c.G, c.B)]; ok {
		return tc
	}
	return core.ColorWhite
}

func pxToCol(x float64) int {
	return 1 + int(x/TileW*cellCols)
}

func pxToRow(y float64) int {
	return 1 + int(y/TileH)
}

// slotCell returns the top-left screen cell of slot i's preview.
func slotCell(i int) (int, int) {
	x := panelX + (i%2)*slotCols
	if i < 2 {
		return x, slotRowY0
	}
	return x, slotRowY1
}

// ScreenToWindow maps a terminal cell to window space so pointer input can
// be fed to Step. Cells over the playfield map to the matching view point
// and cells over a slot preview map to that slot's center. Anything else
// maps outside the window.
func ScreenToWindow(col, row int) core.Vec2 {
	if col >= 1 && col <= viewCols && row >= 1 && row <= viewRows {
		x := (float64(col-1) + 0.5) * TileW / cellCols
		y := (float64(row-1) + 0.5) * TileH
		return ViewPos.Add(core.V2(x, y))
	}
	for i := 0; i < 4; i++ {
		x, y := slotCell(i)
		if col >= x && col < x+slotCols && row >= y && row < y+slotRows {
			return SlotBox(i).Center()
		}
	}
	return core.V2(-1, -1)
}

// Render draws the match into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	dst.SetPen(core.ColorGray)
	dst.DrawBox(core.NewRect(0, 0, viewCols+2, viewRows+2))

	g.renderZones(dst)
	g.renderTiles(dst)
	g.renderDrag(dst)
	g.renderDrops(dst)
	g.renderPaddle(dst)
	g.renderBalls(dst)
	g.renderPanel(dst)
	g.renderOverlay(dst)
}

func (g *Game) renderZones(dst *core.Screen) {
	if g.timers.Active(TimerBarrier) {
		dst.SetPen(core.ColorCyan)
		row := pxToRow(g.paddle.Pos.Y + barrierOffset)
		for x := 1; x <= viewCols; x++ {
			dst.Set(x, row, '═')
		}
	}
	if g.timers.Active(TimerRandomizer) {
		dst.SetPen(core.ColorMagenta)
		row := pxToRow(g.paddle.Pos.Y * 0.6)
		for x := 1; x <= viewCols; x++ {
			dst.Set(x, row, '·')
		}
	}
}

func (g *Game) renderTiles(dst *core.Screen) {
	for y := 0; y < GridH; y++ {
		for x := 0; x < GridW; x++ {
			t := g.grid.At(x, y)
			if !t.Occupied {
				continue
			}
			col, row := 1+x*cellCols, 1+y
			c := termColor(t.Color)
			dst.SetCell(col, row, core.Cell{Rune: '▐', Color: c})
			dst.SetCell(col+1, row, core.Cell{Rune: '█', Color: c})
			dst.SetCell(col+2, row, core.Cell{Rune: '▌', Color: c})
			if t.Kind != shape.KindNone && t.DisplayAlpha() > 0.3 {
				dst.SetCell(col+1, row, core.Cell{Rune: KindGlyph(t.Kind), Color: core.ColorBrightWhite})
			}
		}
	}
}

// renderDrag previews the dragged shape where it would land.
func (g *Game) renderDrag(dst *core.Screen) {
	if g.drag.Slot < 0 || !g.drag.OnGrid {
		return
	}
	pen := core.ColorBrightRed
	if g.drag.Valid {
		pen = core.ColorBrightGreen
	}
	dst.SetPen(pen)
	g.slots.Available[g.drag.Slot].Shape.Each(func(x, y int, _ bool) {
		col, row := 1+(g.drag.Origin.X+x)*cellCols, 1+g.drag.Origin.Y+y
		for i := 0; i < cellCols; i++ {
			dst.Set(col+i, row, '░')
		}
	})
}

func (g *Game) renderDrops(dst *core.Screen) {
	for i := 0; i < g.drops.Len(); i++ {
		d := g.drops.At(i)
		if d.Pos.Y > ViewH {
			continue
		}
		pen := core.ColorBrightRed
		if d.Kind.Good() {
			pen = core.ColorBrightGreen
		}
		dst.SetCell(pxToCol(d.Pos.X), pxToRow(d.Pos.Y), core.Cell{Rune: d.Kind.Glyph(), Color: pen})
	}
}

func (g *Game) renderPaddle(dst *core.Screen) {
	box := g.paddle.Box()
	row := pxToRow(g.paddle.Pos.Y)
	dst.SetPen(core.ColorBrightWhite)
	if g.timers.Active(TimerMagnet) {
		dst.SetPen(core.ColorBrightCyan)
	}
	for col := pxToCol(box.Pos.X); col <= pxToCol(box.Pos.X+box.Dim.X-1); col++ {
		if col >= 1 && col <= viewCols {
			dst.Set(col, row, '▀')
		}
	}
}

func (g *Game) renderBalls(dst *core.Screen) {
	glyph := '●'
	if g.timers.Active(TimerBigBalls) {
		glyph = '◉'
	}
	dst.SetPen(core.ColorBrightWhite)
	for i := 0; i < g.balls.Len(); i++ {
		b := g.balls.At(i)
		if b.Pos.Y > ViewH {
			continue
		}
		dst.Set(pxToCol(b.Pos.X), max(1, pxToRow(b.Pos.Y)), glyph)
	}
}

func (g *Game) renderPanel(dst *core.Screen) {
	dst.SetPen(core.ColorBrightYellow)
	dst.DrawText(panelX, 0, "BREAK-IN")
	dst.SetPen(core.ColorDefault)
	dst.DrawText(panelX, 1, fmt.Sprintf("Lives %d  Balls %d", g.lives, g.balls.Len()))
	dst.DrawText(panelX, 2, fmt.Sprintf("Time %5.1fs  x%.2f", g.gameTime, g.gameSpeed))

	dst.SetPen(core.ColorGray)
	dst.DrawText(panelX, slotRowY0-1, fmt.Sprintf("Shapes  next in %.1fs", max(0, g.slots.Period-g.slots.Timer)))
	dst.DrawText(panelX, slotRowY1-1, "Queue")
	for i := 0; i < 4; i++ {
		slot := g.slots.Available[i%2]
		if i >= 2 {
			slot = g.slots.Next[i%2]
		}
		if !slot.Occupied || (i < 2 && g.drag.Slot == i) {
			continue
		}
		x0, y0 := slotCell(i)
		c := termColor(slot.Shape.Color)
		slot.Shape.Each(func(x, y int, special bool) {
			r := '█'
			if special {
				r = KindGlyph(slot.Shape.Kind)
			}
			dst.SetCell(x0+x*2, y0+y, core.Cell{Rune: r, Color: c})
			dst.SetCell(x0+x*2+1, y0+y, core.Cell{Rune: '█', Color: c})
		})
	}

	row := timersY
	for id := Timer(0); id < numTimers; id++ {
		if !g.timers.Active(id) || row >= dst.Height() {
			continue
		}
		dst.SetPen(core.ColorCyan)
		dst.DrawText(panelX, row, fmt.Sprintf("%-11s %4.1fs", id, g.timers[id]))
		row++
	}
}

func (g *Game) renderOverlay(dst *core.Screen) {
	mid := viewRows / 2
	switch {
	case g.ended:
		dst.SetPen(core.ColorBrightYellow)
		msg := "BRICKS WIN"
		if g.winner == SidePaddle {
			msg = "PADDLE WINS"
		}
		drawCenteredInView(dst, mid, msg)
		dst.SetPen(core.ColorDefault)
		drawCenteredInView(dst, mid+2, "R restart  Q quit")
	case g.paused:
		dst.SetPen(core.ColorBrightYellow)
		drawCenteredInView(dst, mid, "PAUSED")
	}
}

func drawCenteredInView(dst *core.Screen, row int, text string) {
	n := len([]rune(text))
	dst.DrawText(1+(viewCols-n)/2, row, text)
}
