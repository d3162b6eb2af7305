// Package core provides the screen buffer, styles, input frames and
// runtime settings shared by games and the terminal platform. It has no
// external dependencies (especially no Bubble Tea) so game logic stays
// pure and testable.
package core

// Rect is an axis-aligned area of the screen in cells.
type Rect struct {
	X, Y int // Top-left cell
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// ScreenRect covers a whole w x h screen.
func ScreenRect(w, h int) Rect {
	return Rect{W: w, H: h}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Fits reports whether a w x h area fits inside r.
func (r Rect) Fits(w, h int) bool {
	return w <= r.W && h <= r.H
}

// Centered returns a w x h rectangle centered within r.
// Odd leftover space goes to the right and bottom.
func (r Rect) Centered(w, h int) Rect {
	return Rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
}
