package stitch_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seamfix/brep"
	"github.com/katalvlaran/seamfix/mesh"
	"github.com/katalvlaran/seamfix/stitch"
)

// twoFace is a hole straddling the line y=0 between F1 (y ≥ 0) and F2 (y ≤ 0).
//
//	D─────────────C
//	│      M1     │      F1
//	│     ╱  ╲    │
//	A──V1 ‥‥‥ V2──B      S1 = A→V1, S2 = V2→B shared by both faces
//	│     ╲  ╱    │
//	│      R2     │      F2
//	G─────────────E
//
// W1 = R1a,R1b (V1→M1→V2) is F1's partial rim, W2 = R2 (V1→V2 via (0,-1,0))
// is F2's. Both faces optionally carry closing seam edges K1, K2 joining V1
// and V2 through (0,0,0) and (0,0,SeamOffset).
type twoFace struct {
	K        *mesh.Kernel
	F1, F2   *mesh.Face
	W1, W2   *mesh.Wire
	V1, V2   *mesh.Vertex
	S1, S2   mesh.Edge
	R1a, R1b mesh.Edge
	R2       mesh.Edge
}

type fixtureConfig struct {
	kernelOpts []mesh.Option
	periodic   bool
	seams      bool
	seamOffset float64
}

type fixtureOption func(*fixtureConfig)

func withKernelOptions(opts ...mesh.Option) fixtureOption {
	return func(c *fixtureConfig) { c.kernelOpts = append(c.kernelOpts, opts...) }
}

// withSeams gives both faces seam edges whose midpoints are offset apart,
// and marks both faces periodic so direct construction fails.
func withSeams(offset float64) fixtureOption {
	return func(c *fixtureConfig) {
		c.seams, c.periodic, c.seamOffset = true, true, offset
	}
}

func newTwoFace(t *testing.T, opts ...fixtureOption) *twoFace {
	t.Helper()
	var cfg fixtureConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	k := mesh.NewKernel(cfg.kernelOpts...)
	for _, v := range []struct {
		id string
		p  brep.Point
	}{
		{"A", brep.Pt(-2, 0, 0)}, {"V1", brep.Pt(-1, 0, 0)}, {"V2", brep.Pt(1, 0, 0)},
		{"B", brep.Pt(2, 0, 0)}, {"C", brep.Pt(2, 2, 0)}, {"D", brep.Pt(-2, 2, 0)},
		{"E", brep.Pt(2, -2, 0)}, {"G", brep.Pt(-2, -2, 0)}, {"M1", brep.Pt(0, 1, 0)},
	} {
		_, err := k.AddVertex(v.id, v.p)
		require.NoError(t, err)
	}

	edge := func(id, from, to string, via ...brep.Point) mesh.Edge {
		e, err := k.AddEdge(id, from, to, via...)
		require.NoError(t, err)
		return e
	}
	s1, s2 := edge("S1", "A", "V1"), edge("S2", "V2", "B")
	r1a, r1b := edge("R1a", "V1", "M1"), edge("R1b", "M1", "V2")
	r2 := edge("R2", "V1", "V2", brep.Pt(0, -1, 0))
	t1, t2, t3 := edge("T1", "B", "C"), edge("T2", "C", "D"), edge("T3", "D", "A")
	u1, u2, u3 := edge("U1", "B", "E"), edge("U2", "E", "G"), edge("U3", "G", "A")

	wire := func(id string, edges ...mesh.Edge) *mesh.Wire {
		w, err := k.AddWire(id, edges...)
		require.NoError(t, err)
		return w
	}
	outer1 := wire("O1", s1, r1a, r1b, s2, t1, t2, t3)
	outer2 := wire("O2", u3.Reverse(), u2.Reverse(), u1.Reverse(), s2.Reverse(), r2.Reverse(), s1.Reverse())

	var fo1, fo2 []mesh.FaceOption
	if cfg.periodic {
		fo1 = append(fo1, mesh.WithPeriodic())
		fo2 = append(fo2, mesh.WithPeriodic())
	}
	if cfg.seams {
		fo1 = append(fo1, mesh.WithSeam(edge("K1", "V1", "V2", brep.Pt(0, 0, 0))))
		fo2 = append(fo2, mesh.WithSeam(edge("K2", "V1", "V2", brep.Pt(0, 0, cfg.seamOffset))))
	}
	f1, err := k.AddFace("F1", outer1, fo1...)
	require.NoError(t, err)
	f2, err := k.AddFace("F2", outer2, fo2...)
	require.NoError(t, err)

	v1, _ := k.Vertex("V1")
	v2, _ := k.Vertex("V2")

	return &twoFace{
		K: k, F1: f1, F2: f2,
		W1: wire("W1", r1a, r1b), W2: wire("W2", r2),
		V1: v1, V2: v2,
		S1: s1, S2: s2, R1a: r1a, R1b: r1b, R2: r2,
	}
}

// input returns the standard two-entry input.
func (tf *twoFace) input() []stitch.FaceWires {
	return []stitch.FaceWires{
		{Face: tf.F1, Wires: []brep.Wire{tf.W1}},
		{Face: tf.F2, Wires: []brep.Wire{tf.W2}},
	}
}

// addThirdFace adds F3, a triangle V1→V2→Q→V1 whose partial rim W3 (R3)
// shares V1,V2 but whose other boundary edges are its own.
func (tf *twoFace) addThirdFace(t *testing.T) (*mesh.Face, *mesh.Wire) {
	t.Helper()
	k := tf.K
	_, err := k.AddVertex("Q", brep.Pt(0, 3, 3))
	require.NoError(t, err)
	r3, err := k.AddEdge("R3", "V1", "V2", brep.Pt(0, 0, 1))
	require.NoError(t, err)
	q1, err := k.AddEdge("Q1", "V2", "Q")
	require.NoError(t, err)
	q2, err := k.AddEdge("Q2", "Q", "V1")
	require.NoError(t, err)
	outer, err := k.AddWire("O3", r3, q1, q2)
	require.NoError(t, err)
	f3, err := k.AddFace("F3", outer)
	require.NoError(t, err)
	w3, err := k.AddWire("W3", r3)
	require.NoError(t, err)

	return f3, w3
}

// failingSplit wraps a kernel whose SplitFace always fails.
type failingSplit struct {
	*mesh.Kernel
}

func (failingSplit) SplitFace(brep.Face, brep.Wire, brep.Edge) brep.Face { return nil }

// failingSecondSplit wraps a kernel whose SplitFace fails for one face.
type failingSecondSplit struct {
	*mesh.Kernel
	second brep.Face
}

func (f failingSecondSplit) SplitFace(face brep.Face, w brep.Wire, e brep.Edge) brep.Face {
	if brep.Same(face, f.second) {
		return nil
	}

	return f.Kernel.SplitFace(face, w, e)
}
