// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned rectangle on the character grid.
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

// Box is an axis-aligned bounding box in world units, used for collision detection.
type Box struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// BoxAround returns a box of the given size centered on (cx, cy).
func BoxAround(cx, cy, w, h float64) Box {
	return Box{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 {
	return b.X
}

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 {
	return b.Y
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// CenterX returns the horizontal center.
func (b Box) CenterX() float64 {
	return b.X + b.W/2
}

// CenterY returns the vertical center.
func (b Box) CenterY() float64 {
	return b.Y + b.H/2
}

// Intersects returns true if this box overlaps with another.
// Boxes that only share an edge do not intersect.
func (b Box) Intersects(other Box) bool {
	if b.X >= other.Right() || other.X >= b.Right() {
		return false
	}
	if b.Y >= other.Bottom() || other.Y >= b.Bottom() {
		return false
	}
	return true
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
