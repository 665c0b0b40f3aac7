package mesh

import (
	"math"

	"github.com/katalvlaran/seamfix/brep"
)

// Polyline is a piecewise-linear curve through its points. Its parameter
// range is [0, len-1]; integer parameters hit the points exactly.
type Polyline []brep.Point

// Value evaluates the polyline at t, clamping t to the parameter range.
func (p Polyline) Value(t float64) brep.Point {
	n := len(p)
	switch {
	case n == 0:
		return brep.Point{}
	case n == 1 || t <= 0:
		return p[0]
	case t >= float64(n-1):
		return p[n-1]
	}
	i := int(math.Floor(t))

	return p[i].Lerp(p[i+1], t-float64(i))
}
