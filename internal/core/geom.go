// Package core provides fundamental types shared by the simulation and the
// platform layer: court geometry, input state and a character canvas.
// It has no dependency on Bubble Tea so game logic stays pure and testable.
package core

import "math"

// Vec is a point or displacement in court units.
// The court uses a y-up coordinate system with the origin at the bottom-left.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Size is a width/height pair in court units.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned box anchored at its bottom-left corner.
type Rect struct {
	X, Y float64 // Bottom-left corner
	W, H float64
}

// NewRect creates a rectangle from its bottom-left corner and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAt creates a rectangle at pos with the given size.
func RectAt(pos Vec, size Size) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: size.W, H: size.H}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Y + r.H
}

// Overlaps reports whether the two rectangles share any point.
// Edges touching count as overlap; collision checks rely on that.
func (r Rect) Overlaps(other Rect) bool {
	if r.Right() < other.X || other.Right() < r.X {
		return false
	}
	if r.Top() < other.Y || other.Top() < r.Y {
		return false
	}
	return true
}

// Contains returns true if p lies inside the rectangle (edges inclusive).
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Top()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Circle is a circle in court units.
type Circle struct {
	Center Vec
	Radius float64
}

// Bounds returns the smallest rectangle enclosing the circle.
func (c Circle) Bounds() Rect {
	return Rect{
		X: c.Center.X - c.Radius,
		Y: c.Center.Y - c.Radius,
		W: c.Radius * 2,
		H: c.Radius * 2,
	}
}

// CosDeg returns the cosine of an angle given in degrees.
func CosDeg(deg float64) float64 {
	return math.Cos(deg * math.Pi / 180)
}

// SinDeg returns the sine of an angle given in degrees.
func SinDeg(deg float64) float64 {
	return math.Sin(deg * math.Pi / 180)
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
