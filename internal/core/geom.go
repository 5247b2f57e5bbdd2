// Package core provides fundamental types and utilities shared by the game
// simulation and its frontends. It contains no terminal or window dependencies
// so game logic stays pure and testable.
package core

import "math"

// Rect represents an axis-aligned bounding box used for collision detection.
// Coordinates are surface units: x grows to the right, y grows downwards.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Rectangles that only share an edge do not overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Wrap returns v modulo m. The result keeps the sign of v, so it lies in
// (-m, m). m must be non-zero.
func Wrap(v, m float64) float64 {
	return math.Mod(v, m)
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// FitWidth returns the surface width that keeps the aspect ratio of an
// outW×outH container when the surface height is fixed at surfaceH.
func FitWidth(outW, outH int, surfaceH float64) float64 {
	if outW <= 0 || outH <= 0 || surfaceH <= 0 {
		return 0
	}
	return float64(outW) * surfaceH / float64(outH)
}
