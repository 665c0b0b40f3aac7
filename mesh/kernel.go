// SPDX-License-Identifier: MIT
//
// File: kernel.go
// Role: Kernel registry: construction, entity creation and lookups.
// Determinism:
//   - Faces() and Stats() are independent of insertion order.
// Concurrency:
//   - Mutations under mu write lock; lookups under mu read lock.

package mesh

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/seamfix/brep"
)

// Kernel is the in-memory entity registry and brep.Kernel implementation.
type Kernel struct {
	mu sync.RWMutex // guards all maps

	intersect bool // CreateCommonEdge enabled

	vertices map[string]*Vertex
	edges    map[string]*edgeData
	wires    map[string]*Wire
	faces    map[string]*Face
}

// Stats is a snapshot of registry sizes.
type Stats struct {
	Vertices int
	Edges    int
	Wires    int
	Faces    int
}

// compile-time check
var _ brep.Kernel = (*Kernel)(nil)

// NewKernel creates an empty Kernel. By default CreateCommonEdge is enabled.
// Complexity: O(len(opts))
func NewKernel(opts ...Option) *Kernel {
	k := &Kernel{
		intersect: true,
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*edgeData),
		wires:     make(map[string]*Wire),
		faces:     make(map[string]*Face),
	}
	for _, opt := range opts {
		opt(k)
	}

	return k
}

// AddVertex registers a vertex at p. An empty id is replaced by a generated one.
func (k *Kernel) AddVertex(id string, p brep.Point) (*Vertex, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if id == "" {
		id = newID("v")
	}
	if _, ok := k.vertices[id]; ok {
		return nil, fmt.Errorf("AddVertex(%q): %w", id, ErrDuplicateID)
	}
	v := &Vertex{id: id, hash: hashID(id), owner: k, Point: p}
	k.vertices[id] = v

	return v, nil
}

// AddEdge registers an edge from→to passing through via. The returned handle
// is forward-oriented.
func (k *Kernel) AddEdge(id, from, to string, via ...brep.Point) (Edge, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	a, ok := k.vertices[from]
	if !ok {
		return Edge{}, fmt.Errorf("AddEdge(%q): from %q: %w", id, from, ErrUnknownVertex)
	}
	b, ok := k.vertices[to]
	if !ok {
		return Edge{}, fmt.Errorf("AddEdge(%q): to %q: %w", id, to, ErrUnknownVertex)
	}

	return k.newEdgeLocked(id, a, b, via)
}

// AddWire registers a wire made of edges in order.
//
// Steps:
//  1. Reject an empty list and null or foreign handles.
//  2. Check that each edge starts where the previous one ends.
//  3. Store the wire under id (generated when empty).
func (k *Kernel) AddWire(id string, edges ...Edge) (*Wire, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	return k.newWireLocked(id, edges)
}

// AddFace registers a face bounded by outer.
func (k *Kernel) AddFace(id string, outer *Wire, opts ...FaceOption) (*Face, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if outer == nil {
		return nil, fmt.Errorf("AddFace(%q): outer wire: %w", id, ErrNilEntity)
	}
	if outer.owner != k {
		return nil, fmt.Errorf("AddFace(%q): outer wire: %w", id, ErrForeignEntity)
	}
	f := &Face{outer: outer}
	for _, opt := range opts {
		opt(f)
	}
	if !f.seam.IsNull() && f.seam.d.owner != k {
		return nil, fmt.Errorf("AddFace(%q): seam: %w", id, ErrForeignEntity)
	}

	return k.storeFaceLocked(id, f)
}

// Vertex looks up a vertex by ID.
func (k *Kernel) Vertex(id string) (*Vertex, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	v, ok := k.vertices[id]

	return v, ok
}

// Edge looks up an edge by ID and returns its forward handle.
func (k *Kernel) Edge(id string) (Edge, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	d, ok := k.edges[id]
	if !ok {
		return Edge{}, false
	}

	return Edge{d: d}, true
}

// EdgeRef resolves an oriented edge reference: "E1" is the forward handle of
// edge E1, "-E1" the reversed one.
func (k *Kernel) EdgeRef(ref string) (Edge, error) {
	id, reversed := strings.CutPrefix(ref, "-")
	e, ok := k.Edge(id)
	if !ok {
		return Edge{}, fmt.Errorf("edge %q: %w", ref, ErrUnknownEdge)
	}
	if reversed {
		e = e.Reverse()
	}

	return e, nil
}

// Wire looks up a wire by ID.
func (k *Kernel) Wire(id string) (*Wire, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	w, ok := k.wires[id]

	return w, ok
}

// Face looks up a face by ID.
func (k *Kernel) Face(id string) (*Face, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	f, ok := k.faces[id]

	return f, ok
}

// Faces returns all faces sorted by ID.
// Complexity: O(F·log F)
func (k *Kernel) Faces() []*Face {
	k.mu.RLock()
	defer k.mu.RUnlock()

	out := make([]*Face, 0, len(k.faces))
	for _, f := range k.faces {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })

	return out
}

// Stats returns the current registry sizes.
func (k *Kernel) Stats() Stats {
	k.mu.RLock()
	defer k.mu.RUnlock()

	return Stats{
		Vertices: len(k.vertices),
		Edges:    len(k.edges),
		Wires:    len(k.wires),
		Faces:    len(k.faces),
	}
}

func (k *Kernel) newEdgeLocked(id string, a, b *Vertex, via []brep.Point) (Edge, error) {
	if id == "" {
		id = newID("e")
	}
	if _, ok := k.edges[id]; ok {
		return Edge{}, fmt.Errorf("AddEdge(%q): %w", id, ErrDuplicateID)
	}
	pts := make([]brep.Point, 0, len(via)+2)
	pts = append(pts, a.Point)
	pts = append(pts, via...)
	pts = append(pts, b.Point)

	d := &edgeData{id: id, hash: hashID(id), owner: k, from: a, to: b, points: pts}
	k.edges[id] = d

	return Edge{d: d}, nil
}

func (k *Kernel) newWireLocked(id string, edges []Edge) (*Wire, error) {
	// 1) Validate handles
	if len(edges) == 0 {
		return nil, fmt.Errorf("AddWire(%q): %w", id, ErrEmptyWire)
	}
	for i, e := range edges {
		if e.IsNull() {
			return nil, fmt.Errorf("AddWire(%q): edge %d: %w", id, i, ErrNilEntity)
		}
		if e.d.owner != k {
			return nil, fmt.Errorf("AddWire(%q): edge %d: %w", id, i, ErrForeignEntity)
		}
	}

	// 2) Connectivity
	for i := 1; i < len(edges); i++ {
		if edges[i-1].Last() != edges[i].First() {
			return nil, fmt.Errorf("AddWire(%q): %s then %s: %w",
				id, edges[i-1], edges[i], ErrDisconnectedWire)
		}
	}

	// 3) Store
	if id == "" {
		id = newID("w")
	}
	if _, ok := k.wires[id]; ok {
		return nil, fmt.Errorf("AddWire(%q): %w", id, ErrDuplicateID)
	}
	w := &Wire{id: id, hash: hashID(id), owner: k, edges: append([]Edge(nil), edges...)}
	k.wires[id] = w

	return w, nil
}

func (k *Kernel) storeFaceLocked(id string, f *Face) (*Face, error) {
	if id == "" {
		id = newID("f")
	}
	if _, ok := k.faces[id]; ok {
		return nil, fmt.Errorf("AddFace(%q): %w", id, ErrDuplicateID)
	}
	f.id, f.hash, f.owner = id, hashID(id), k
	k.faces[id] = f

	return f, nil
}

// newID returns prefix + "-" + a random UUID.
func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
