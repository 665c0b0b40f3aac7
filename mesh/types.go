// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Entity handles (Vertex, Edge, Wire, Face), sentinel errors, kernel and
//       face options.

package mesh

import (
	"errors"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/seamfix/brep"
)

// Sentinel errors for mesh registry operations.
var (
	// ErrDuplicateID indicates an entity of the same kind already uses the ID.
	ErrDuplicateID = errors.New("mesh: duplicate id")

	// ErrUnknownVertex indicates a referenced vertex ID is not registered.
	ErrUnknownVertex = errors.New("mesh: unknown vertex")

	// ErrUnknownEdge indicates a referenced edge ID is not registered.
	ErrUnknownEdge = errors.New("mesh: unknown edge")

	// ErrNilEntity indicates a nil or zero-value handle was passed in.
	ErrNilEntity = errors.New("mesh: nil entity")

	// ErrEmptyWire indicates a wire was built from zero edges.
	ErrEmptyWire = errors.New("mesh: wire has no edges")

	// ErrDisconnectedWire indicates two consecutive wire edges do not share a vertex.
	ErrDisconnectedWire = errors.New("mesh: consecutive wire edges do not connect")

	// ErrForeignEntity indicates a handle created by a different Kernel.
	ErrForeignEntity = errors.New("mesh: entity belongs to another kernel")
)

// Vertex is a named point.
type Vertex struct {
	id    string
	hash  uint64
	owner *Kernel
	Point brep.Point
}

// ID returns the vertex identifier.
func (v *Vertex) ID() string { return v.id }

// IsSame reports pointer identity.
func (v *Vertex) IsSame(o brep.Entity) bool {
	ov, ok := o.(*Vertex)
	return ok && ov == v
}

// HashCode returns xxhash of the ID.
func (v *Vertex) HashCode() uint64 { return v.hash }

// String returns the ID.
func (v *Vertex) String() string { return v.id }

// edgeData is the shared, orientation-free part of an edge.
type edgeData struct {
	id     string
	hash   uint64
	owner  *Kernel
	from   *Vertex
	to     *Vertex
	points []brep.Point // from, via..., to
}

// Edge is an oriented handle on an edge. The zero Edge is null.
type Edge struct {
	d        *edgeData
	reversed bool
}

// ID returns the edge identifier, or "" for the null edge.
func (e Edge) ID() string {
	if e.d == nil {
		return ""
	}

	return e.d.id
}

// IsNull reports whether e refers to no edge.
func (e Edge) IsNull() bool { return e.d == nil }

// Reversed reports whether e is used against its stored direction.
func (e Edge) Reversed() bool { return e.reversed }

// Reverse returns the same edge with opposite orientation.
func (e Edge) Reverse() Edge { return Edge{d: e.d, reversed: !e.reversed} }

// First returns the start vertex in the handle's orientation, or nil for the
// null edge.
func (e Edge) First() *Vertex {
	if e.d == nil {
		return nil
	}
	if e.reversed {
		return e.d.to
	}

	return e.d.from
}

// Last returns the end vertex in the handle's orientation, or nil for the
// null edge.
func (e Edge) Last() *Vertex {
	if e.d == nil {
		return nil
	}
	if e.reversed {
		return e.d.from
	}

	return e.d.to
}

// IsSame reports whether o refers to the same edge data, ignoring orientation.
func (e Edge) IsSame(o brep.Entity) bool {
	oe, ok := o.(Edge)
	return ok && e.d != nil && oe.d == e.d
}

// HashCode returns xxhash of the ID; both orientations hash identically.
func (e Edge) HashCode() uint64 {
	if e.d == nil {
		return 0
	}

	return e.d.hash
}

// String returns the ID, prefixed with "-" when reversed.
func (e Edge) String() string {
	if e.reversed {
		return "-" + e.ID()
	}

	return e.ID()
}

// Wire is an ordered list of connected, oriented edges.
type Wire struct {
	id    string
	hash  uint64
	owner *Kernel
	edges []Edge
}

// ID returns the wire identifier.
func (w *Wire) ID() string { return w.id }

// Edges returns a copy of the wire's edges.
func (w *Wire) Edges() []Edge {
	if w == nil {
		return nil
	}

	return append([]Edge(nil), w.edges...)
}

// Closed reports whether the wire ends where it starts. A nil or edgeless
// wire is not closed.
func (w *Wire) Closed() bool {
	if w == nil || len(w.edges) == 0 {
		return false
	}

	return w.edges[0].First() == w.edges[len(w.edges)-1].Last()
}

// IsSame reports pointer identity.
func (w *Wire) IsSame(o brep.Entity) bool {
	ow, ok := o.(*Wire)
	return ok && ow == w
}

// HashCode returns xxhash of the ID.
func (w *Wire) HashCode() uint64 { return w.hash }

// String returns the ID.
func (w *Wire) String() string { return w.id }

// Face is a surface patch with one outer wire.
type Face struct {
	id       string
	hash     uint64
	owner    *Kernel
	outer    *Wire
	seam     Edge
	periodic bool
}

// ID returns the face identifier.
func (f *Face) ID() string { return f.id }

// Outer returns the outer wire.
func (f *Face) Outer() *Wire { return f.outer }

// Seam returns the closing seam edge; it is null when the face has none.
func (f *Face) Seam() Edge { return f.seam }

// Periodic reports whether the face's surface is closed in a parametric direction.
func (f *Face) Periodic() bool { return f.periodic }

// IsSame reports pointer identity.
func (f *Face) IsSame(o brep.Entity) bool {
	of, ok := o.(*Face)
	return ok && of == f
}

// HashCode returns xxhash of the ID.
func (f *Face) HashCode() uint64 { return f.hash }

// String returns the ID.
func (f *Face) String() string { return f.id }

// Option configures a Kernel before creation.
type Option func(k *Kernel)

// WithoutIntersections makes CreateCommonEdge always fail, forcing callers
// onto their fallback path.
func WithoutIntersections() Option {
	return func(k *Kernel) { k.intersect = false }
}

// FaceOption configures a face when added.
type FaceOption func(f *Face)

// WithSeam sets the face's closing seam edge.
func WithSeam(e Edge) FaceOption {
	return func(f *Face) { f.seam = e }
}

// WithPeriodic marks the face as lying on a periodic surface.
func WithPeriodic() FaceOption {
	return func(f *Face) { f.periodic = true }
}

func hashID(id string) uint64 {
	return xxhash.Sum64String(id)
}
