package stitch

import (
	"github.com/katalvlaran/seamfix/brep"
)

// Midpoint evaluates e's curve at the mean of its parameter range.
// ok is false when e is nil or carries no curve.
func Midpoint(g brep.Geometry, e brep.Edge) (p brep.Point, ok bool) {
	if e == nil {
		return brep.Point{}, false
	}
	c, first, last := g.Curve(e)
	if c == nil {
		return brep.Point{}, false
	}

	return c.Value((first + last) / 2), true
}

// MidpointsMatch reports whether the curve midpoints of e1 and e2 lie within
// tol of each other. A missing edge or curve on either side never matches.
func MidpointsMatch(g brep.Geometry, e1, e2 brep.Edge, tol float64) bool {
	p1, ok := Midpoint(g, e1)
	if !ok {
		return false
	}
	p2, ok := Midpoint(g, e2)
	if !ok {
		return false
	}

	return p1.IsEqual(p2, tol)
}

// Synthesize produces the edge connecting the two faces of c between v1 and v2.
//
// It first asks the kernel for a common edge. If that fails, it takes the
// closing seam edge of each face and accepts the first face's seam only when
// both midpoints agree within tol. The result is nil when neither path gives
// a trustworthy edge; viaSeam reports which path succeeded.
func Synthesize(k brep.Kernel, c Candidate, v1, v2 brep.Vertex, tol float64) (e brep.Edge, viaSeam bool) {
	// 1) Primary: direct construction
	if e = k.CreateCommonEdge(c.FirstFace, c.SecondFace, v1, v2); e != nil {
		return e, false
	}

	// 2) Fallback: seam edges of both faces must describe the same curve
	e = k.ClosingSeamEdge(c.FirstFace, c.FirstWire)
	other := k.ClosingSeamEdge(c.SecondFace, c.SecondWire)
	if !MidpointsMatch(k, e, other, tol) {
		return nil, false
	}

	return e, true
}
