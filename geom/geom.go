/*
Package geom holds the small set of geometric value types used throughout
inline layout.

All coordinates are given in layout units (CSS pixels). Y grows downwards.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package geom

import "fmt"

// Point is a position or an offset.
type Point struct {
	X, Y float64
}

// Pt is a shortcut for creating a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%.2f,%.2f)", p.X, p.Y)
}

// Size is a width/height pair.
type Size struct {
	W, H float64
}

func (s Size) String() string {
	return fmt.Sprintf("%.2f×%.2f", s.W, s.H)
}

// Rect is an axis-aligned rectangle given by its top-left corner and its size.
type Rect struct {
	TopLeft Point
	Size    Size
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.TopLeft.X + r.Size.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.TopLeft.Y + r.Size.H
}
