// Package core provides fundamental types and utilities for the snake engine.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Point is a position on the board in board units (pixels).
// Positions used by the game are always multiples of the cell size.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of two points.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsPoint is Contains for a Point.
func (r Rect) ContainsPoint(p Point) bool {
	return r.Contains(p.X, p.Y)
}

// SnapToCell rounds value to a multiple of cell, rounding up only when the
// remainder is more than half a cell.
func SnapToCell(cell, value int) int {
	snapped := (value / cell) * cell
	if value%cell > cell/2 {
		snapped += cell
	}
	return snapped
}

// Wrap maps value into [lo, hi) with toroidal semantics: stepping past hi
// re-enters at lo and stepping below lo re-enters just under hi.
// hi must be greater than lo.
func Wrap(lo, hi, value int) int {
	span := hi - lo
	m := (value - lo) % span
	if m < 0 {
		m += span
	}
	return lo + m
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
