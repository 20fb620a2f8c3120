// Package core provides the small shared types of the arena: runtime
// settings, input actions, a truecolor cell screen, geometry and value
// clamping. It has no external dependencies (especially no Bubble Tea).
package core

import "cmp"

// Rect represents an axis-aligned rectangle of screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// FitSquare returns the largest rectangle of cells, centered in a w x h area,
// that shows a square image when every cell is aspect pixels tall per pixel
// of width. Half-block rendering uses aspect 2: one cell, two pixel rows.
func FitSquare(w, h, aspect int) Rect {
	if w <= 0 || h <= 0 || aspect <= 0 {
		return Rect{}
	}
	side := min(w, h*aspect)
	rows := side / aspect
	return NewRect((w-side)/2, (h-rows)/2, side, rows)
}

// Clamp restricts val to [lo, hi]. A NaN val maps to lo.
func Clamp[T cmp.Ordered](val, lo, hi T) T {
	if cmp.Less(val, lo) {
		return lo
	}
	if cmp.Less(hi, val) {
		return hi
	}
	return val
}
