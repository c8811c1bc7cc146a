// Package core provides fundamental types shared by the puzzle model and the
// front-ends. It has no external dependencies so game logic stays pure and
// testable.
package core

// Point is a position in board pixel space.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Cell is a logical grid coordinate: Col is the column, Row the row.
type Cell struct {
	Col, Row int
}

// Distance returns the Manhattan distance between two cells.
func (c Cell) Distance(other Cell) int {
	return Abs(c.Col-other.Col) + Abs(c.Row-other.Row)
}

// Adjacent reports whether two cells share a row or column and are one step
// apart on the other axis.
func (c Cell) Adjacent(other Cell) bool {
	return c.Distance(other) == 1
}

// Rect represents an axis-aligned rectangle in pixel space.
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

// Min returns the top-left corner.
func (r Rect) Min() Point {
	return Point{X: r.X, Y: r.Y}
}

// Contains returns true if the point is inside this rectangle.
// Right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// MoveTo returns a copy of the rectangle with its top-left corner at p.
func (r Rect) MoveTo(p Point) Rect {
	r.X, r.Y = p.X, p.Y
	return r
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1 matching the sign of x.
func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
