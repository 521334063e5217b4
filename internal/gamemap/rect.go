package gamemap

import "fmt"

// Point is a cell position on a floor.
type Point struct {
	X, Y int
}

// Coord locates a floor in the world. Y is depth (0 is the surface), X is a
// lateral branch index.
type Coord struct {
	X, Y int
}

// Depth returns the floor depth.
func (c Coord) Depth() int { return c.Y }

// Below returns the coordinate one floor down.
func (c Coord) Below() Coord { return Coord{c.X, c.Y + 1} }

// Above returns the coordinate one floor up.
func (c Coord) Above() Coord { return Coord{c.X, c.Y - 1} }

func (c Coord) String() string { return fmt.Sprintf("%d,%d", c.X, c.Y) }

// Rect is an axis-aligned room. X2 and Y2 are the far wall lines, so a room
// of width w starting at x has X2 = x+w.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect builds a room from its top-left corner and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// CenterPoint is Center as a Point.
func (r Rect) CenterPoint() Point {
	x, y := r.Center()
	return Point{x, y}
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// EachInner calls fn for every interior cell: [X1+1, X2-1] x [Y1+1, Y2-1].
func (r Rect) EachInner(fn func(x, y int)) {
	for y := r.Y1 + 1; y < r.Y2; y++ {
		for x := r.X1 + 1; x < r.X2; x++ {
			fn(x, y)
		}
	}
}

// EachOuter calls fn for every cell of the room including its wall line:
// [X1, X2] x [Y1, Y2].
func (r Rect) EachOuter(fn func(x, y int)) {
	for y := r.Y1; y <= r.Y2; y++ {
		for x := r.X1; x <= r.X2; x++ {
			fn(x, y)
		}
	}
}

// Chebyshev returns the king-move distance between the two room centers.
func (r Rect) Chebyshev(other Rect) int {
	ax, ay := r.Center()
	bx, by := other.Center()
	return max(abs(ax-bx), abs(ay-by))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
