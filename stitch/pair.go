package stitch

import "github.com/katalvlaran/seamfix/brep"

// VertexPair is an unordered pair of vertices identifying an open wire by its
// two free ends.
type VertexPair struct {
	First, Second brep.Vertex
}

// NewVertexPair returns the pair {a, b}. Order is irrelevant to Equal and Hash.
func NewVertexPair(a, b brep.Vertex) VertexPair {
	return VertexPair{First: a, Second: b}
}

// Equal reports whether p and o hold the same two vertices in either order.
func (p VertexPair) Equal(o VertexPair) bool {
	direct := brep.Same(p.First, o.First) && brep.Same(p.Second, o.Second)
	swapped := brep.Same(p.First, o.Second) && brep.Same(p.Second, o.First)

	return direct || swapped
}

// Hash combines the two vertex hashes with XOR so that swapped pairs collide.
// Every degenerate pair {v, v} hashes to 0; Equal still separates them.
func (p VertexPair) Hash() uint64 {
	return hashOf(p.First) ^ hashOf(p.Second)
}

// Degenerate reports whether both ends are the same vertex.
func (p VertexPair) Degenerate() bool {
	return brep.Same(p.First, p.Second)
}

func hashOf(e brep.Entity) uint64 {
	if e == nil {
		return 0
	}

	return e.HashCode()
}

// member is one (face, wire) entry of a group.
type member struct {
	face brep.Face
	wire brep.Wire
}

// group collects every member sharing one endpoint pair.
type group struct {
	key     VertexPair
	members []member
}

// pairIndex groups members by VertexPair, keeping groups in first-seen order.
// buckets maps Hash to the indices of groups with that hash.
type pairIndex struct {
	buckets map[uint64][]int
	groups  []*group
}

func newPairIndex() *pairIndex {
	return &pairIndex{buckets: make(map[uint64][]int)}
}

// add appends m to the group keyed by key, creating the group if needed.
// Complexity: O(1) expected, O(collisions) worst case.
func (x *pairIndex) add(key VertexPair, m member) {
	h := key.Hash()
	for _, gi := range x.buckets[h] {
		if x.groups[gi].key.Equal(key) {
			x.groups[gi].members = append(x.groups[gi].members, m)
			return
		}
	}
	x.buckets[h] = append(x.buckets[h], len(x.groups))
	x.groups = append(x.groups, &group{key: key, members: []member{m}})
}

// Group is one endpoint-pair group: Faces[i] owns Wires[i].
type Group struct {
	Pair  VertexPair
	Faces []brep.Face
	Wires []brep.Wire
}

// GroupByEndpoints groups the input wires by unordered endpoint pair, the way
// FillHoles does, in first-seen order. Nil faces and wires are skipped.
func GroupByEndpoints(t brep.Topology, input []FaceWires) []Group {
	idx := newPairIndex()
	for _, fw := range input {
		if fw.Face == nil {
			continue
		}
		for _, w := range fw.Wires {
			if w == nil {
				continue
			}
			v1, v2 := t.WireEndpoints(w)
			idx.add(NewVertexPair(v1, v2), member{face: fw.Face, wire: w})
		}
	}

	out := make([]Group, 0, len(idx.groups))
	for _, g := range idx.groups {
		og := Group{Pair: g.key}
		for _, m := range g.members {
			og.Faces = append(og.Faces, m.face)
			og.Wires = append(og.Wires, m.wire)
		}
		out = append(out, og)
	}

	return out
}
