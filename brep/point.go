package brep

import (
	"fmt"
	"math"
)

// Point is a location in 3D space.
type Point struct {
	X, Y, Z float64
}

// Pt is shorthand for Point{x, y, z}.
func Pt(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	dx, dy, dz := p.X-q.X, p.Y-q.Y, p.Z-q.Z

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// IsEqual reports whether p and q coincide within tol (distance <= tol).
func (p Point) IsEqual(q Point, tol float64) bool {
	return p.Distance(q) <= tol
}

// Lerp returns the point at fraction s along the segment p→q.
func (p Point) Lerp(q Point, s float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*s,
		Y: p.Y + (q.Y-p.Y)*s,
		Z: p.Z + (q.Z-p.Z)*s,
	}
}

// String renders p as "(x, y, z)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}
