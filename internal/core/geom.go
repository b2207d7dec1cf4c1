// Package core holds the math, input and screen types shared by the
// simulation and the terminal host. It imports no terminal packages.
package core

import "cmp"

// Rect is a box of character cells. X and Y are the top-left cell.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect builds a Rect.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the box.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the box.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether cell (x, y) is inside r. Right and bottom edges
// are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp limits v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// ClampF is Clamp for float64.
func ClampF(v, lo, hi float64) float64 {
	return Clamp(v, lo, hi)
}
