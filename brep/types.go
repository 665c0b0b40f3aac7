// SPDX-License-Identifier: MIT

package brep

// Entity is a topological handle owned by a geometry kernel.
//
// IsSame reports whether other denotes the same underlying entity, ignoring
// orientation and any other per-use attributes. HashCode must agree with
// IsSame: same entities hash identically.
type Entity interface {
	IsSame(other Entity) bool
	HashCode() uint64
}

// Vertex is a topological point.
type Vertex interface{ Entity }

// Edge is a bounded curve segment between two vertices (possibly equal).
type Edge interface{ Entity }

// Wire is an ordered sequence of edges. Partial wires are open: their two
// endpoints are distinct.
type Wire interface{ Entity }

// Face is a bounded surface patch with one outer wire.
type Face interface{ Entity }

// Curve is a parametric 3D curve.
type Curve interface {
	// Value evaluates the curve at parameter t.
	Value(t float64) Point
}

// Topology answers read-only structural queries.
type Topology interface {
	// WireEndpoints returns the free ends of w: the first vertex of its first
	// edge and the last vertex of its last edge.
	WireEndpoints(w Wire) (first, last Vertex)

	// EdgeVertices returns the two vertices bounding e.
	EdgeVertices(e Edge) (first, last Vertex)

	// OuterWire returns the outer boundary of f, or nil.
	OuterWire(f Face) Wire

	// WireEdges returns the edges of w in order.
	WireEdges(w Wire) []Edge
}

// Geometry gives access to edge curves.
type Geometry interface {
	// Curve returns the underlying curve of e and its parameter range.
	// c is nil when e carries no 3D curve.
	Curve(e Edge) (c Curve, first, last float64)
}

// Builder constructs new entities. Every method returns nil when the kernel
// cannot satisfy the request.
type Builder interface {
	// CreateCommonEdge builds an edge lying on both faces between v1 and v2.
	CreateCommonEdge(f1, f2 Face, v1, v2 Vertex) Edge

	// ClosingSeamEdge extracts the edge of f lying on its closing parameter
	// seam that joins the endpoints of w.
	ClosingSeamEdge(f Face, w Wire) Edge

	// MergeWires joins two open wires sharing both endpoints into one closed wire.
	MergeWires(w1, w2 Wire) Wire

	// SplitFace builds the face region of f bounded by w and e.
	SplitFace(f Face, w Wire, e Edge) Face
}

// Kernel is the full adapter consumed by the stitching algorithm.
type Kernel interface {
	Topology
	Geometry
	Builder
}

// Same reports whether a and b are the same entity. It is false when either
// is nil.
func Same(a, b Entity) bool {
	if a == nil || b == nil {
		return false
	}

	return a.IsSame(b)
}
