// Package shape implements the polyomino bitboards placed by the brick side.
//
// A Bitboard is two 8x8 planes: occupancy and special. Each row is one byte
// with bit 7 as the leftmost column. All transforms are value-returning.
package shape

import "math/bits"

// Size is the side length of a bitboard.
const Size = 8

const (
	planeOccupied = 0
	planeSpecial  = 1
)

// Bitboard is an 8x8 two-plane bit matrix.
type Bitboard struct {
	planes [2][Size]uint8
}

// Dim is a bounding size in cells.
type Dim struct {
	W, H int
}

// FromRows builds a bitboard whose occupancy rows start at row 0.
// Extra rows past Size are ignored.
func FromRows(rows ...uint8) Bitboard {
	var b Bitboard
	for y := 0; y < len(rows) && y < Size; y++ {
		b.planes[planeOccupied][y] = rows[y]
	}
	return b
}

func mask(x int) uint8 {
	return 1 << (Size - 1 - x)
}

func inside(x, y int) bool {
	return x >= 0 && x < Size && y >= 0 && y < Size
}

// Occupied reports whether cell (x, y) is part of the shape.
func (b Bitboard) Occupied(x, y int) bool {
	return inside(x, y) && b.planes[planeOccupied][y]&mask(x) != 0
}

// Special reports whether cell (x, y) carries the special marker.
func (b Bitboard) Special(x, y int) bool {
	return inside(x, y) && b.planes[planeSpecial][y]&mask(x) != 0
}

// WithSpecial returns a copy with (x, y) marked special.
// Marking a cell that is not occupied is a no-op.
func (b Bitboard) WithSpecial(x, y int) Bitboard {
	if b.Occupied(x, y) {
		b.planes[planeSpecial][y] |= mask(x)
	}
	return b
}

// Count returns the number of occupied cells.
func (b Bitboard) Count() int {
	n := 0
	for _, row := range b.planes[planeOccupied] {
		n += bits.OnesCount8(row)
	}
	return n
}

// SpecialCount returns the number of special cells.
func (b Bitboard) SpecialCount() int {
	n := 0
	for _, row := range b.planes[planeSpecial] {
		n += bits.OnesCount8(row)
	}
	return n
}

// Empty reports whether no cell is occupied.
func (b Bitboard) Empty() bool {
	return b.Count() == 0
}

// FlipHorizontal mirrors both planes left to right.
func (b Bitboard) FlipHorizontal() Bitboard {
	for p := range b.planes {
		for y := range b.planes[p] {
			b.planes[p][y] = bits.Reverse8(b.planes[p][y])
		}
	}
	return b
}

// FlipVertical mirrors both planes top to bottom.
func (b Bitboard) FlipVertical() Bitboard {
	for p := range b.planes {
		rows := &b.planes[p]
		for y := 0; y < Size/2; y++ {
			rows[y], rows[Size-1-y] = rows[Size-1-y], rows[y]
		}
	}
	return b
}

// Transpose swaps cell (x, y) with (y, x) in both planes.
func (b Bitboard) Transpose() Bitboard {
	var out Bitboard
	for p := range b.planes {
		for y := 0; y < Size; y++ {
			for x := 0; x < Size; x++ {
				if b.planes[p][y]&mask(x) != 0 {
					out.planes[p][x] |= mask(y)
				}
			}
		}
	}
	return out
}

// RotateCW rotates a quarter turn clockwise (screen space, y down).
func (b Bitboard) RotateCW() Bitboard {
	return b.FlipVertical().Transpose()
}

// RotateCCW rotates a quarter turn counter-clockwise.
func (b Bitboard) RotateCCW() Bitboard {
	return b.FlipHorizontal().Transpose()
}

// Normalize shifts both planes so the shape touches row 0 and column 0 and
// returns the tight bounding size. Normalizing an empty board panics.
func (b Bitboard) Normalize() (Bitboard, Dim) {
	occ := b.planes[planeOccupied]

	top, bottom := -1, -1
	var union uint8
	for y, row := range occ {
		if row == 0 {
			continue
		}
		if top < 0 {
			top = y
		}
		bottom = y
		union |= row
	}
	if top < 0 {
		panic("shape: normalize of empty bitboard")
	}

	left := bits.LeadingZeros8(union)
	right := Size - 1 - bits.TrailingZeros8(union)

	var out Bitboard
	for p := range b.planes {
		for y := top; y <= bottom; y++ {
			out.planes[p][y-top] = b.planes[p][y] << left
		}
	}
	return out, Dim{W: right - left + 1, H: bottom - top + 1}
}
