// Package mesh is an in-memory reference kernel implementing brep.Kernel with
// polyline edge geometry.
//
// It exists so the stitching algorithm can be exercised end to end without a
// full CAD kernel: tests, examples and the seamfix CLI build small models with
// it, either programmatically or through package scene.
//
// Model:
//
//   - Vertex: a named point. Identity is the *Vertex pointer.
//   - Edge: a value handle {data, reversed}. Two handles referring to the same
//     edge data are IsSame regardless of orientation, but differ as Go values
//     when their orientation differs.
//   - Wire: an ordered list of oriented edges; consecutive edges must connect.
//   - Face: an outer wire, an optional closing seam edge and a periodic flag.
//
// Geometry:
//
//	An edge from A to B via points P1..Pk is the polyline A,P1..Pk,B with
//	parameter range [0, k+1]. Value(t) interpolates linearly on segment ⌊t⌋.
//
// Constructions (brep.Builder):
//
//   - CreateCommonEdge builds a straight edge v1→v2, unless intersections are
//     disabled (WithoutIntersections), either face is periodic, or v1 is v2.
//   - ClosingSeamEdge returns the face's seam edge when it joins the wire's
//     endpoints.
//   - MergeWires appends the second wire, reversed if needed, to close a loop.
//   - SplitFace builds a new face bounded by the wire and the edge.
//
// Identifiers:
//
//	IDs are unique per entity kind. An empty ID is replaced by a generated
//	one ("e-<uuid>", "w-<uuid>", ...). HashCode is xxhash of the ID.
//
// Concurrency:
//
//	A Kernel is safe for concurrent use; the registry is guarded by a
//	sync.RWMutex. Entities are immutable after creation.
//
// Errors:
//
//	ErrDuplicateID, ErrUnknownVertex, ErrUnknownEdge, ErrNilEntity,
//	ErrEmptyWire, ErrDisconnectedWire, ErrForeignEntity.
package mesh
