// Package display models the monitor layout in virtual-screen coordinates
// and answers the questions the transfer engine asks of it: which display
// holds a point, which display comes next, and where its center is.
package display

import "fmt"

// Point is a position in virtual-screen coordinates
type Point struct {
	X int32
	Y int32
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect is an axis-aligned rectangle. Right and Bottom are exclusive,
// matching the Win32 RECT convention.
type Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// RectFromSize builds a Rect from an origin and a size
func RectFromSize(x, y, width, height int32) Rect {
	return Rect{Left: x, Top: y, Right: x + width, Bottom: y + height}
}

func (r Rect) Width() int32  { return r.Right - r.Left }
func (r Rect) Height() int32 { return r.Bottom - r.Top }

// Empty reports whether the rectangle encloses no points
func (r Rect) Empty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Contains reports whether p lies inside r. The left and top edges are
// inside, the right and bottom edges are not.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Center returns the midpoint, rounding towards the top-left corner
func (r Rect) Center() Point {
	return Point{
		X: r.Left + r.Width()/2,
		Y: r.Top + r.Height()/2,
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.Left, r.Top, r.Width(), r.Height())
}

// Region is one monitor as reported by the OS. ID is the ordinal position
// in the enumeration that produced it.
type Region struct {
	ID     int
	Bounds Rect
}

func (r Region) String() string {
	return fmt.Sprintf("display %d %s", r.ID, r.Bounds)
}
