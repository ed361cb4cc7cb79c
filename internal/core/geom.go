// Package core provides fundamental types and utilities shared by the simulation
// and the terminal host. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in world units. +Y points toward the top of the screen.
type Vec2 struct {
	X, Y float64
}

// Common unit vectors.
var (
	VecZero = Vec2{}
	VecX    = Vec2{X: 1}
	VecY    = Vec2{Y: 1}
)

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Box is an axis-aligned bounding box centered on Center.
// Size holds the full width and height.
type Box struct {
	Center Vec2
	Size   Vec2
}

// NewBox creates a box centered at (x, y) with the given full width and height.
func NewBox(x, y, w, h float64) Box {
	return Box{Center: Vec2{X: x, Y: y}, Size: Vec2{X: w, Y: h}}
}

// Min returns the lower-left corner.
func (b Box) Min() Vec2 {
	return b.Center.Sub(b.Size.Scale(0.5))
}

// Max returns the upper-right corner.
func (b Box) Max() Vec2 {
	return b.Center.Add(b.Size.Scale(0.5))
}

// Overlaps reports whether the two boxes intersect on both axes.
// Touching edges count as an overlap.
func (b Box) Overlaps(other Box) bool {
	bMin, bMax := b.Min(), b.Max()
	oMin, oMax := other.Min(), other.Max()

	if bMax.X < oMin.X || oMax.X < bMin.X {
		return false
	}
	if bMax.Y < oMin.Y || oMax.Y < bMin.Y {
		return false
	}
	return true
}

// Rect represents an integer axis-aligned rectangle in screen cells.
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

// Intersects returns true if this rectangle overlaps with another.
// Adjacent cells do not overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Clip returns the part of r inside bounds. The result has zero size when
// the rectangles do not intersect.
func (r Rect) Clip(bounds Rect) Rect {
	x0, y0 := Max(r.X, bounds.X), Max(r.Y, bounds.Y)
	x1, y1 := min(r.Right(), bounds.Right()), min(r.Bottom(), bounds.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
