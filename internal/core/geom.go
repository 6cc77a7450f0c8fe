// Package core provides fundamental types and utilities shared by the game
// and the terminal platform. It has no external dependencies (especially no
// Bubble Tea) so the simulation stays pure and testable.
package core

import (
	"cmp"
	"math"
)

// Rect is an integer axis-aligned rectangle in cell space.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is a floating-point axis-aligned box in level units.
type Box struct {
	Pos  Vector
	Size Vector
}

// Overlaps reports whether two boxes overlap on both axes.
// Boxes that only touch along an edge do not overlap.
func (b Box) Overlaps(other Box) bool {
	return b.Pos.X+b.Size.X > other.Pos.X &&
		b.Pos.X < other.Pos.X+other.Size.X &&
		b.Pos.Y+b.Size.Y > other.Pos.Y &&
		b.Pos.Y < other.Pos.Y+other.Size.Y
}

// Normalized returns the same region with a non-negative size. A negative
// width or height extends the box left or up from Pos.
func (b Box) Normalized() Box {
	if b.Size.X < 0 {
		b.Pos.X, b.Size.X = b.Pos.X+b.Size.X, -b.Size.X
	}
	if b.Size.Y < 0 {
		b.Pos.Y, b.Size.Y = b.Pos.Y+b.Size.Y, -b.Size.Y
	}
	return b
}

// Cells returns the integer cell range [floor(x), ceil(x+w)) x [floor(y), ceil(y+h))
// covered by the normalized box.
func (b Box) Cells() Rect {
	b = b.Normalized()
	x0 := int(math.Floor(b.Pos.X))
	y0 := int(math.Floor(b.Pos.Y))
	x1 := int(math.Ceil(b.Pos.X + b.Size.X))
	y1 := int(math.Ceil(b.Pos.Y + b.Size.Y))
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Project scales the box by (sx, sy) and returns the covering cell rectangle.
// A box with non-zero size always covers at least one cell.
func (b Box) Project(sx, sy float64) Rect {
	scaled := Box{
		Pos:  Vector{X: b.Pos.X * sx, Y: b.Pos.Y * sy},
		Size: Vector{X: b.Size.X * sx, Y: b.Size.Y * sy},
	}
	r := scaled.Cells()
	if r.W < 1 {
		r.W = 1
	}
	if r.H < 1 {
		r.H = 1
	}
	return r
}

// Clamp restricts val to [lo, hi]. When hi < lo, lo wins.
func Clamp[T cmp.Ordered](val, lo, hi T) T {
	return max(lo, min(val, hi))
}
