// Package core provides fundamental types and utilities for the planner.
// It contains no external dependencies so arena math stays pure and testable.
package core

import "math"

// Position is a point in arena-image pixel space.
// Heading is optional and carried for persistence only.
type Position struct {
	X       float64  `json:"x" yaml:"x"`
	Y       float64  `json:"y" yaml:"y"`
	Heading *float64 `json:"heading,omitempty" yaml:"heading,omitempty"`
}

// P creates a position without a heading.
func P(x, y float64) Position {
	return Position{X: x, Y: y}
}

// SamePoint reports whether two positions share coordinates, ignoring heading.
func (p Position) SamePoint(o Position) bool {
	return p.X == o.X && p.Y == o.Y
}

// Calibration holds the scalars that convert pixel space into real-world time.
// Ratios are pixels per real-world unit, independent per axis.
type Calibration struct {
	Velocity float64 // real-world units per second
	XRatio   float64 // horizontal pixels per unit
	YRatio   float64 // vertical pixels per unit
}

// Ready reports whether every scalar is strictly positive and finite.
// A calibration that is not ready means "not yet computable", not an error.
func (c Calibration) Ready() bool {
	return PositiveFinite(c.Velocity) && PositiveFinite(c.XRatio) && PositiveFinite(c.YRatio)
}

// PositiveFinite reports whether v is a usable rate or duration.
// NaN fails the comparison.
func PositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// RealDistance returns the Euclidean distance between two pixel positions in
// real-world units, scaling each axis by its own ratio.
func RealDistance(a, b Position, cal Calibration) float64 {
	dx := (b.X - a.X) / cal.XRatio
	dy := (b.Y - a.Y) / cal.YRatio
	return math.Sqrt(dx*dx + dy*dy)
}

// TravelSeconds returns how long a straight-line move between a and b takes.
func TravelSeconds(a, b Position, cal Calibration) float64 {
	return RealDistance(a, b, cal) / cal.Velocity
}

// Lerp interpolates between a and b. t=0 yields a, t=1 yields b exactly.
func Lerp(a, b Position, t float64) Position {
	if t >= 1 {
		return P(b.X, b.Y)
	}
	return P(a.X+(b.X-a.X)*t, a.Y+(b.Y-a.Y)*t)
}

// Rect represents an axis-aligned box in screen cells.
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
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
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
