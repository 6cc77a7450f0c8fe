package core

import "math"

// Vector is an immutable 2D value used for positions, sizes and velocities
// in level units (one unit = one tile).
type Vector struct {
	X, Y float64
}

// V is shorthand for constructing a Vector.
func V(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Plus returns the component-wise sum of v and other.
func (v Vector) Plus(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// Times returns v scaled by factor.
func (v Vector) Times(factor float64) Vector {
	return Vector{X: v.X * factor, Y: v.Y * factor}
}

// IsNaN reports whether either component is NaN.
func (v Vector) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}

// ApproxEqual reports whether both components differ by at most eps.
func (v Vector) ApproxEqual(other Vector, eps float64) bool {
	return math.Abs(v.X-other.X) <= eps && math.Abs(v.Y-other.Y) <= eps
}
