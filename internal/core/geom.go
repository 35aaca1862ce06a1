// Package core provides fundamental types and utilities for the trainer.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation logic pure and testable.
package core

import "math"

// Vec2 is a 2D point or vector in arena (world) units.
// All operations return new values; nothing is mutated in place.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Length returns the magnitude of v.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the length of v - o.
func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Length()
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalized returns the unit vector pointing along v.
// A zero-length vector has no direction: the result is (0,0) and ok is false,
// and the caller decides what to substitute.
func (v Vec2) Normalized() (unit Vec2, ok bool) {
	l := v.Length()
	if l == 0 {
		return Vec2{}, false
	}
	return Vec2{X: v.X / l, Y: v.Y / l}, true
}

// Size is a width/height pair in arena units.
type Size struct {
	W, H float64
}

// Rect represents an axis-aligned box of screen cells.
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

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks the rectangle by n cells on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: max(0, r.W-2*n), H: max(0, r.H-2*n)}
}

// Viewport maps the continuous arena onto a rectangle of screen cells.
// Each cell covers Arena.W/Cells.W by Arena.H/Cells.H world units, so the
// two axes scale independently (terminal cells are not square).
type Viewport struct {
	Arena Size
	Cells Rect
}

// CellSize returns the world extent of one cell.
func (v Viewport) CellSize() (float64, float64) {
	if v.Cells.W <= 0 || v.Cells.H <= 0 {
		return 0, 0
	}
	return v.Arena.W / float64(v.Cells.W), v.Arena.H / float64(v.Cells.H)
}

// ToCell returns the cell containing world point p, clamped to the viewport.
func (v Viewport) ToCell(p Vec2) (int, int) {
	cw, ch := v.CellSize()
	if cw == 0 || ch == 0 {
		return v.Cells.X, v.Cells.Y
	}
	cx := int(math.Floor(p.X / cw))
	cy := int(math.Floor(p.Y / ch))
	return v.Cells.X + Clamp(cx, 0, v.Cells.W-1), v.Cells.Y + Clamp(cy, 0, v.Cells.H-1)
}

// ToWorld returns the world point at the center of cell (x, y).
// Cells outside the viewport are clamped to its edge.
func (v Viewport) ToWorld(x, y int) Vec2 {
	cw, ch := v.CellSize()
	cx := Clamp(x-v.Cells.X, 0, max(0, v.Cells.W-1))
	cy := Clamp(y-v.Cells.Y, 0, max(0, v.Cells.H-1))
	return Vec2{X: (float64(cx) + 0.5) * cw, Y: (float64(cy) + 0.5) * ch}
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
