package shape

import "github.com/vovakirdan/break-in/internal/core"

// Kind is the special behavior layered on some cells of a shape.
type Kind int

const (
	KindNone Kind = iota
	KindPowerup
	KindBadPowerup
	KindArrow
	KindSpawner
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindPowerup:
		return "Powerup"
	case KindBadPowerup:
		return "BadPowerup"
	case KindArrow:
		return "Arrow"
	case KindSpawner:
		return "Spawner"
	default:
		return "Unknown"
	}
}

// Shape is a normalized bitboard with its color and special kind.
type Shape struct {
	Cells Bitboard
	Dim   Dim
	Color core.RGBA
	Kind  Kind
}

// New builds a normalized shape from occupancy rows.
func New(color core.RGBA, rows ...uint8) Shape {
	cells, dim := FromRows(rows...).Normalize()
	return Shape{Cells: cells, Dim: dim, Color: color}
}

func (s Shape) with(b Bitboard) Shape {
	s.Cells, s.Dim = b.Normalize()
	return s
}

// FlipHorizontal mirrors the shape left to right.
func (s Shape) FlipHorizontal() Shape { return s.with(s.Cells.FlipHorizontal()) }

// FlipVertical mirrors the shape top to bottom.
func (s Shape) FlipVertical() Shape { return s.with(s.Cells.FlipVertical()) }

// Transpose reflects the shape along its main diagonal.
func (s Shape) Transpose() Shape { return s.with(s.Cells.Transpose()) }

// RotateCW rotates the shape a quarter turn clockwise.
func (s Shape) RotateCW() Shape { return s.with(s.Cells.RotateCW()) }

// RotateCCW rotates the shape a quarter turn counter-clockwise.
func (s Shape) RotateCCW() Shape { return s.with(s.Cells.RotateCCW()) }

// Orient applies the selected flips, then the transpose, and normalizes.
func (s Shape) Orient(flipX, flipY, transpose bool) Shape {
	b := s.Cells
	if flipX {
		b = b.FlipHorizontal()
	}
	if flipY {
		b = b.FlipVertical()
	}
	if transpose {
		b = b.Transpose()
	}
	return s.with(b)
}

// Each calls fn for every occupied cell in row-major order.
func (s Shape) Each(fn func(x, y int, special bool)) {
	for y := 0; y < s.Dim.H; y++ {
		for x := 0; x < s.Dim.W; x++ {
			if s.Cells.Occupied(x, y) {
				fn(x, y, s.Cells.Special(x, y))
			}
		}
	}
}
