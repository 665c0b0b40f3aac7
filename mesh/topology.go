package mesh

import "github.com/katalvlaran/seamfix/brep"

// Handles of foreign types, or nil handles, resolve to "absent": queries on
// them return nil results rather than panicking.

func asVertex(v brep.Vertex) (*Vertex, bool) {
	mv, ok := v.(*Vertex)
	return mv, ok && mv != nil
}

func asEdge(e brep.Edge) (Edge, bool) {
	me, ok := e.(Edge)
	return me, ok && !me.IsNull()
}

func asWire(w brep.Wire) (*Wire, bool) {
	mw, ok := w.(*Wire)
	return mw, ok && mw != nil && len(mw.edges) > 0
}

func asFace(f brep.Face) (*Face, bool) {
	mf, ok := f.(*Face)
	return mf, ok && mf != nil
}

// WireEndpoints implements brep.Topology.
func (k *Kernel) WireEndpoints(w brep.Wire) (brep.Vertex, brep.Vertex) {
	mw, ok := asWire(w)
	if !ok {
		return nil, nil
	}

	return mw.edges[0].First(), mw.edges[len(mw.edges)-1].Last()
}

// EdgeVertices implements brep.Topology. Vertices follow the handle's orientation.
func (k *Kernel) EdgeVertices(e brep.Edge) (brep.Vertex, brep.Vertex) {
	me, ok := asEdge(e)
	if !ok {
		return nil, nil
	}

	return me.First(), me.Last()
}

// OuterWire implements brep.Topology.
func (k *Kernel) OuterWire(f brep.Face) brep.Wire {
	mf, ok := asFace(f)
	if !ok || mf.outer == nil {
		return nil
	}

	return mf.outer
}

// WireEdges implements brep.Topology.
func (k *Kernel) WireEdges(w brep.Wire) []brep.Edge {
	mw, ok := asWire(w)
	if !ok {
		return nil
	}
	out := make([]brep.Edge, len(mw.edges))
	for i, e := range mw.edges {
		out[i] = e
	}

	return out
}

// Curve implements brep.Geometry. The curve ignores the handle's orientation.
func (k *Kernel) Curve(e brep.Edge) (brep.Curve, float64, float64) {
	me, ok := asEdge(e)
	if !ok || len(me.d.points) < 2 {
		return nil, 0, 0
	}

	return Polyline(me.d.points), 0, float64(len(me.d.points) - 1)
}
