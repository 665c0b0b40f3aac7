package stitch

import "github.com/katalvlaran/seamfix/brep"

// rimSlots holds, per face, the boundary edge found at each hole endpoint and
// how many edges claimed that slot.
type rimSlots struct {
	edge  [2]brep.Edge
	count [2]int
}

// SharedRim reports whether faces f1 and f2 share one boundary edge at each
// end of the hole bounded by partial wires w1 (on f1) and w2 (on f2).
//
// The endpoints V1, V2 are taken from w1. For each face, every outer-wire edge
// that is not part of the face's own partial wire is tested: touching V1 it
// claims slot V1, otherwise touching V2 it claims slot V2. Each face must claim
// each slot exactly once, and the two faces' slot edges must be the same
// entities.
//
// Complexity: O(|outer(f1)|·|w1| + |outer(f2)|·|w2|).
func SharedRim(t brep.Topology, f1, f2 brep.Face, w1, w2 brep.Wire) bool {
	v1, v2 := t.WireEndpoints(w1)
	if v1 == nil || v2 == nil {
		return false
	}

	faces := [2]brep.Face{f1, f2}
	wires := [2]brep.Wire{w1, w2}
	var slots [2]rimSlots

	for i := 0; i < 2; i++ {
		// 1) Scan the outer wire, skipping the face's own rim
		for _, e := range t.WireEdges(t.OuterWire(faces[i])) {
			if EdgeInWire(t, e, wires[i]) {
				continue
			}
			a, b := t.EdgeVertices(e)
			switch {
			case brep.Same(a, v1) || brep.Same(b, v1):
				slots[i].edge[0] = e
				slots[i].count[0]++
			case brep.Same(a, v2) || brep.Same(b, v2):
				slots[i].edge[1] = e
				slots[i].count[1]++
			}
		}

		// 2) Exactly one edge per endpoint
		if slots[i].count[0] != 1 || slots[i].count[1] != 1 {
			return false
		}
	}

	// 3) Both faces must hold the very same edges
	return brep.Same(slots[0].edge[0], slots[1].edge[0]) &&
		brep.Same(slots[0].edge[1], slots[1].edge[1])
}
