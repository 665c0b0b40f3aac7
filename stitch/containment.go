package stitch

import "github.com/katalvlaran/seamfix/brep"

// EdgeInWire reports whether e is the same entity as one of w's edges.
// Complexity: O(edges in w).
func EdgeInWire(t brep.Topology, e brep.Edge, w brep.Wire) bool {
	if w == nil || e == nil {
		return false
	}
	for _, we := range t.WireEdges(w) {
		if brep.Same(we, e) {
			return true
		}
	}

	return false
}

// WireInFace reports whether every edge of w lies on f's outer wire.
// A wire with no edges is vacuously contained.
// Complexity: O(|w|·|outer(f)|).
func WireInFace(t brep.Topology, w brep.Wire, f brep.Face) bool {
	var outer brep.Wire
	if f != nil {
		outer = t.OuterWire(f)
	}
	if w == nil {
		return true
	}
	for _, e := range t.WireEdges(w) {
		if !EdgeInWire(t, e, outer) {
			return false
		}
	}

	return true
}
