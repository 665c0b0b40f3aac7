package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seamfix/brep"
	"github.com/katalvlaran/seamfix/mesh"
)

// lens builds two rims p→q (upper, lower), a seam p→q, and a face per rim.
type lens struct {
	k            *mesh.Kernel
	p, q         *mesh.Vertex
	upper, lower mesh.Edge
	seam         mesh.Edge
	wu, wl       *mesh.Wire
	fu, fl       *mesh.Face
}

func newLens(t *testing.T, periodic bool, opts ...mesh.Option) *lens {
	t.Helper()
	k := mesh.NewKernel(opts...)
	p, err := k.AddVertex("p", brep.Pt(0, 0, 0))
	require.NoError(t, err)
	q, err := k.AddVertex("q", brep.Pt(2, 0, 0))
	require.NoError(t, err)
	upper, err := k.AddEdge("upper", "p", "q", brep.Pt(1, 1, 0))
	require.NoError(t, err)
	lower, err := k.AddEdge("lower", "p", "q", brep.Pt(1, -1, 0))
	require.NoError(t, err)
	seam, err := k.AddEdge("seam", "p", "q")
	require.NoError(t, err)

	wu := mustWire(t, k, upper)
	wl := mustWire(t, k, lower)
	var fo []mesh.FaceOption
	if periodic {
		fo = append(fo, mesh.WithPeriodic())
	}
	fu, err := k.AddFace("fu", mustWire(t, k, upper, lower.Reverse()), append(fo, mesh.WithSeam(seam))...)
	require.NoError(t, err)
	fl, err := k.AddFace("fl", mustWire(t, k, lower, upper.Reverse()), fo...)
	require.NoError(t, err)

	return &lens{k: k, p: p, q: q, upper: upper, lower: lower, seam: seam, wu: wu, wl: wl, fu: fu, fl: fl}
}

func TestCreateCommonEdge(t *testing.T) {
	l := newLens(t, false)

	e := l.k.CreateCommonEdge(l.fu, l.fl, l.p, l.q)
	require.NotNil(t, e)
	a, b := l.k.EdgeVertices(e)
	assert.True(t, brep.Same(a, l.p))
	assert.True(t, brep.Same(b, l.q))

	assert.Nil(t, l.k.CreateCommonEdge(l.fu, l.fl, l.p, l.p), "same vertex")
	assert.Nil(t, l.k.CreateCommonEdge(nil, l.fl, l.p, l.q))
	assert.Nil(t, l.k.CreateCommonEdge(l.fu, l.fl, nil, l.q))
}

func TestCreateCommonEdge_Refused(t *testing.T) {
	assert.Nil(t, newLens(t, true).k.CreateCommonEdge(nil, nil, nil, nil))

	periodic := newLens(t, true)
	assert.Nil(t, periodic.k.CreateCommonEdge(periodic.fu, periodic.fl, periodic.p, periodic.q))

	disabled := newLens(t, false, mesh.WithoutIntersections())
	assert.Nil(t, disabled.k.CreateCommonEdge(disabled.fu, disabled.fl, disabled.p, disabled.q))
}

func TestClosingSeamEdge(t *testing.T) {
	l := newLens(t, false)

	assert.Equal(t, l.seam, l.k.ClosingSeamEdge(l.fu, l.wu))
	// Direction of the wire does not matter.
	back := mustWire(t, l.k, l.upper.Reverse())
	assert.Equal(t, l.seam, l.k.ClosingSeamEdge(l.fu, back))
	// fl has no seam.
	assert.Nil(t, l.k.ClosingSeamEdge(l.fl, l.wl))

	// A wire with other endpoints does not match the seam.
	r, err := l.k.AddVertex("r", brep.Pt(3, 0, 0))
	require.NoError(t, err)
	qr, err := l.k.AddEdge("qr", "q", r.ID())
	require.NoError(t, err)
	assert.Nil(t, l.k.ClosingSeamEdge(l.fu, mustWire(t, l.k, l.upper, qr)))
}

func TestMergeWires(t *testing.T) {
	l := newLens(t, false)

	loop := l.k.MergeWires(l.wu, l.wl)
	require.NotNil(t, loop)
	mw := loop.(*mesh.Wire)
	assert.True(t, mw.Closed())
	assert.Equal(t, []mesh.Edge{l.upper, l.lower.Reverse()}, mw.Edges())

	// Second wire already continuing the first is appended as is.
	back := mustWire(t, l.k, l.lower.Reverse())
	mw = l.k.MergeWires(l.wu, back).(*mesh.Wire)
	assert.Equal(t, []mesh.Edge{l.upper, l.lower.Reverse()}, mw.Edges())

	// Disjoint wires cannot be merged.
	r, err := l.k.AddVertex("r", brep.Pt(3, 0, 0))
	require.NoError(t, err)
	s, err := l.k.AddVertex("s", brep.Pt(4, 0, 0))
	require.NoError(t, err)
	rs, err := l.k.AddEdge("rs", r.ID(), s.ID())
	require.NoError(t, err)
	assert.Nil(t, l.k.MergeWires(l.wu, mustWire(t, l.k, rs)))
	assert.Nil(t, l.k.MergeWires(nil, l.wu))
}

func TestSplitFace(t *testing.T) {
	l := newLens(t, true)

	nf := l.k.SplitFace(l.fu, l.wu, l.seam)
	require.NotNil(t, nf)
	f := nf.(*mesh.Face)
	assert.True(t, f.Periodic(), "periodic flag carries over")
	assert.True(t, f.Seam().IsNull())
	assert.True(t, f.Outer().Closed())
	assert.Equal(t, []mesh.Edge{l.upper, l.seam.Reverse()}, f.Outer().Edges())

	assert.Nil(t, l.k.SplitFace(nil, l.wu, l.seam))
	assert.Nil(t, l.k.SplitFace(l.fu, nil, l.seam))
	assert.Nil(t, l.k.SplitFace(l.fu, l.wu, nil))

	// An edge not touching the wire's end cannot close it.
	r, err := l.k.AddVertex("r", brep.Pt(3, 0, 0))
	require.NoError(t, err)
	s, err := l.k.AddVertex("s", brep.Pt(4, 0, 0))
	require.NoError(t, err)
	rs, err := l.k.AddEdge("rs", r.ID(), s.ID())
	require.NoError(t, err)
	assert.Nil(t, l.k.SplitFace(l.fu, l.wu, rs))
}
