// Package core provides the geometry, input and screen types shared by the
// shooter simulation and the terminal platform. It has no external
// dependencies so the simulation stays pure and testable.
package core

// Rect is an axis-aligned bounding box in logical playfield pixels.
// X and Y are the top-left corner; the box covers [X, X+W) x [Y, Y+H).
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromCenter creates a rectangle of size w x h whose Center is (cx, cy).
func RectFromCenter(cx, cy, w, h int) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// CenterX returns the horizontal center.
func (r Rect) CenterX() int {
	return r.X + r.W/2
}

// CenterY returns the vertical center.
func (r Rect) CenterY() int {
	return r.Y + r.H/2
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.CenterX(), r.CenterY()
}

// Intersects reports whether two rectangles overlap.
// Touching edges do not count as an overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Translate moves the rectangle by (dx, dy) in place.
func (r *Rect) Translate(dx, dy int) {
	r.X += dx
	r.Y += dy
}

// ClampX keeps the rectangle horizontally inside [0, width).
// A rectangle wider than width is pinned to x = 0.
func (r *Rect) ClampX(width int) {
	r.X = Clamp(r.X, 0, Max(0, width-r.W))
}

// ScaleTo maps the rectangle from a srcW x srcH space into a dstW x dstH
// grid. Any non-empty rectangle covers at least one destination cell.
func (r Rect) ScaleTo(srcW, srcH, dstW, dstH int) Rect {
	if srcW <= 0 || srcH <= 0 {
		return Rect{}
	}
	x0 := floorDiv(r.X*dstW, srcW)
	y0 := floorDiv(r.Y*dstH, srcH)
	x1 := ceilDiv(r.Right()*dstW, srcW)
	y1 := ceilDiv(r.Bottom()*dstH, srcH)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
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
