package mesh

import "github.com/katalvlaran/seamfix/brep"

// CreateCommonEdge implements brep.Builder with a straight edge v1→v2.
// It returns nil when intersections are disabled, either face is periodic,
// or v1 and v2 are the same vertex.
func (k *Kernel) CreateCommonEdge(f1, f2 brep.Face, v1, v2 brep.Vertex) brep.Edge {
	if !k.intersect {
		return nil
	}
	mf1, ok1 := asFace(f1)
	mf2, ok2 := asFace(f2)
	if !ok1 || !ok2 || mf1.periodic || mf2.periodic {
		return nil
	}
	a, ok1 := asVertex(v1)
	b, ok2 := asVertex(v2)
	if !ok1 || !ok2 || a == b {
		return nil
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	e, err := k.newEdgeLocked("", a, b, nil)
	if err != nil {
		return nil
	}

	return e
}

// ClosingSeamEdge implements brep.Builder: the face's seam edge, if it joins
// the endpoints of w in either direction.
func (k *Kernel) ClosingSeamEdge(f brep.Face, w brep.Wire) brep.Edge {
	mf, ok := asFace(f)
	if !ok || mf.seam.IsNull() {
		return nil
	}
	mw, ok := asWire(w)
	if !ok {
		return nil
	}
	a, b := mw.edges[0].First(), mw.edges[len(mw.edges)-1].Last()
	s := mf.seam
	if (s.First() == a && s.Last() == b) || (s.First() == b && s.Last() == a) {
		return s
	}

	return nil
}

// MergeWires implements brep.Builder. The second wire is appended in
// whichever direction continues the first; nil if neither does.
func (k *Kernel) MergeWires(w1, w2 brep.Wire) brep.Wire {
	a, ok1 := asWire(w1)
	b, ok2 := asWire(w2)
	if !ok1 || !ok2 {
		return nil
	}
	end := a.edges[len(a.edges)-1].Last()

	edges := make([]Edge, 0, len(a.edges)+len(b.edges))
	edges = append(edges, a.edges...)
	switch {
	case b.edges[0].First() == end:
		edges = append(edges, b.edges...)
	case b.edges[len(b.edges)-1].Last() == end:
		edges = append(edges, reversedEdges(b.edges)...)
	default:
		return nil
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	w, err := k.newWireLocked("", edges)
	if err != nil {
		return nil
	}

	return w
}

// SplitFace implements brep.Builder: a new face whose outer wire is w closed
// by e. The new face keeps f's periodic flag and has no seam.
func (k *Kernel) SplitFace(f brep.Face, w brep.Wire, e brep.Edge) brep.Face {
	mf, ok := asFace(f)
	if !ok {
		return nil
	}
	mw, ok := asWire(w)
	if !ok {
		return nil
	}
	me, ok := asEdge(e)
	if !ok {
		return nil
	}
	end := mw.edges[len(mw.edges)-1].Last()
	switch end {
	case me.First():
	case me.Last():
		me = me.Reverse()
	default:
		return nil
	}

	edges := make([]Edge, 0, len(mw.edges)+1)
	edges = append(edges, mw.edges...)
	edges = append(edges, me)

	k.mu.Lock()
	defer k.mu.Unlock()

	outer, err := k.newWireLocked("", edges)
	if err != nil {
		return nil
	}
	nf, err := k.storeFaceLocked("", &Face{outer: outer, periodic: mf.periodic})
	if err != nil {
		return nil
	}

	return nf
}

// reversedEdges returns edges in reverse order with each orientation flipped.
func reversedEdges(edges []Edge) []Edge {
	out := make([]Edge, len(edges))
	for i, e := range edges {
		out[len(edges)-1-i] = e.Reverse()
	}

	return out
}
