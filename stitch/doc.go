// Package stitch detects and repairs multi-face holes: gaps in a solid's
// boundary whose rim is split across two adjacent faces, so that each face
// only carries an open partial loop of it.
//
// What:
//
//   - VertexPair: an unordered endpoint pair with symmetric Equal and a
//     commutative (XOR) Hash; the grouping key for partial wires.
//   - EdgeInWire / WireInFace: identity-based containment on a face's outer
//     boundary. A pair whose wire already lies on the other face's boundary is
//     a loop inside one face, not a cross-face hole.
//   - SharedRim: the structural proof of a two-face hole. Besides their own
//     partial wires, both faces must have exactly one boundary edge at each
//     hole endpoint, and those edges must be the same entities.
//   - Synthesize: the connecting edge. Direct construction first; otherwise
//     the closing seam edges of both faces, accepted only when their curve
//     midpoints coincide within the tolerance (DefaultTolerance = 1e-7).
//   - FillHoles: the single-pass driver that emits two mirrored HoleRecords
//     per confirmed stitch.
//
// Why:
//
//	After defeaturing or healing, a hole straddling the seam between two
//	surface patches leaves one open rim on each patch. Neither rim is a
//	closed loop, so single-face hole filling cannot see it; pairing the rims
//	by their shared endpoints recovers the hole.
//
// Equality:
//
//	Every comparison goes through brep.Entity.IsSame. Coincident but distinct
//	entities are never merged.
//
// Not handled:
//
//   - single-face holes bounded by one closed loop;
//   - holes shared by three or more faces: groups with more members are only
//     evaluated pairwise.
//
// Errors:
//
//	ErrNilKernel     kernel is nil
//	ErrNilEntity     nil face or wire in the input
//	ErrBadTolerance  tolerance negative, NaN or infinite
//
// Rejected candidates are not errors; see Reason and Options.OnReject.
//
// Concurrency:
//
//	FillHoles is synchronous and keeps all state local to one call. It makes
//	no concurrent kernel calls.
package stitch
