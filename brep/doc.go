// Package brep declares the boundary-representation contract consumed by
// seamfix: opaque topological handles (Vertex, Edge, Wire, Face), curve
// evaluation, and the small set of kernel queries and constructions the
// stitching algorithm needs.
//
// What:
//
//   - Entity: identity-based comparison (IsSame) plus a hash that is consistent
//     with it. Two handles may be unequal as Go values (for example, the same
//     edge used with opposite orientation) and still be the same entity.
//   - Topology: read-only structure queries (wire endpoints, edge vertices,
//     outer wire of a face, edges of a wire).
//   - Geometry: curve of an edge with its parameter range.
//   - Builder: constructions (common edge between two faces, closing seam
//     edge, wire merge, face split).
//   - Kernel: all three together.
//
// Absence:
//
//	"No edge" or "no face" is the nil interface value. Implementations must
//	return an untyped nil, never a typed nil pointer wrapped in the interface.
//	Same(a, b) is false when either side is nil.
//
// The package holds no state and implements no kernel; see package mesh for an
// in-memory reference implementation.
package brep
