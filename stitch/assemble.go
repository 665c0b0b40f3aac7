// SPDX-License-Identifier: MIT
//
// File: assemble.go
// Role: FillHoles: group partial wires by endpoint pair, test every pair in a
//       group, stitch the confirmed ones and emit mirrored hole records.
// Determinism:
//   - Groups are visited in first-seen order of the input; pairs (i, j) with
//     i < j in member order. Records therefore follow the input order.

package stitch

import (
	"fmt"
	"math"

	"github.com/katalvlaran/seamfix/brep"
)

// FillHoles finds pairs of partial wires on different faces that bound the
// same two-face hole, builds the connecting edge and the two new faces, and
// returns two HoleRecords per stitch.
//
// Steps:
//  1. Validate kernel, input entries and options.
//  2. Group every (face, wire) by the wire's unordered endpoint pair.
//  3. Skip groups of one member.
//  4. For each pair (i < j) in a group, reject when the first wire is closed,
//     either wire lies on the other face's boundary, or the faces share no rim.
//  5. Synthesize the connecting edge; reject when none is trustworthy.
//  6. Split both faces, merge the wires and emit the mirrored records.
//
// Rejections are not errors: they are counted in Result.Rejected and reported
// through OnReject. FillHoles never removes entities: a candidate rejected
// with ReasonSplitFailed keeps whatever the kernel built before the failure
// (the connecting edge, a first split face) and gets no records. The only
// errors are API misuse (ErrNilKernel, ErrNilEntity, ErrBadTolerance) and
// context cancellation.
//
// Complexity: O(N) grouping for N input wires, plus O(m²) candidates per group
// of m members, each costing O(boundary sizes) kernel queries.
func FillHoles(k brep.Kernel, input []FaceWires, opts ...Option) (*Result, error) {
	// 1) Validation
	if k == nil {
		return nil, ErrNilKernel
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if math.IsNaN(o.Tolerance) || math.IsInf(o.Tolerance, 0) || o.Tolerance < 0 {
		return nil, ErrBadTolerance
	}

	// 2) Grouping
	idx := newPairIndex()
	for i, fw := range input {
		if fw.Face == nil {
			return nil, fmt.Errorf("FillHoles: input[%d]: %w", i, ErrNilEntity)
		}
		for j, w := range fw.Wires {
			if w == nil {
				return nil, fmt.Errorf("FillHoles: input[%d].Wires[%d]: %w", i, j, ErrNilEntity)
			}
			v1, v2 := k.WireEndpoints(w)
			idx.add(NewVertexPair(v1, v2), member{face: fw.Face, wire: w})
		}
	}

	res := &Result{Rejected: make(map[Reason]int)}
	a := assembler{k: k, opts: o, res: res}

	for _, g := range idx.groups {
		// 3) Trivial groups
		if len(g.members) < 2 {
			continue
		}
		if err := o.Ctx.Err(); err != nil {
			return nil, fmt.Errorf("FillHoles: %w", err)
		}
		res.Groups++
		a.group(g)
	}

	return res, nil
}

// assembler carries per-call state for FillHoles.
type assembler struct {
	k    brep.Kernel
	opts Options
	res  *Result
}

// group examines every unordered pair of members of g.
func (a *assembler) group(g *group) {
	for i := 0; i < len(g.members); i++ {
		first := g.members[i]
		v1, v2 := a.k.WireEndpoints(first.wire)
		degenerate := v1 == nil || brep.Same(v1, v2)

		for j := i + 1; j < len(g.members); j++ {
			second := g.members[j]
			c := Candidate{
				FirstFace:  first.face,
				FirstWire:  first.wire,
				SecondFace: second.face,
				SecondWire: second.wire,
			}
			a.res.Candidates++

			if degenerate {
				a.reject(c, ReasonDegenerateLoop)
				continue
			}
			a.pair(c, v1, v2)
		}
	}
}

// pair runs steps 4 to 6 for one candidate.
func (a *assembler) pair(c Candidate, v1, v2 brep.Vertex) {
	k := a.k

	// 4) Structural filters
	if WireInFace(k, c.FirstWire, c.SecondFace) || WireInFace(k, c.SecondWire, c.FirstFace) {
		a.reject(c, ReasonWireInFace)
		return
	}
	if !SharedRim(k, c.FirstFace, c.SecondFace, c.FirstWire, c.SecondWire) {
		a.reject(c, ReasonNoSharedRim)
		return
	}

	// 5) Connecting edge
	edge, viaSeam := Synthesize(k, c, v1, v2, a.opts.Tolerance)
	if edge == nil {
		a.reject(c, ReasonNoEdge)
		return
	}

	// 6) Close the hole on both sides; merge only once both splits exist
	newFirst := k.SplitFace(c.FirstFace, c.FirstWire, edge)
	if newFirst == nil {
		a.reject(c, ReasonSplitFailed)
		return
	}
	newSecond := k.SplitFace(c.SecondFace, c.SecondWire, edge)
	if newSecond == nil {
		a.reject(c, ReasonSplitFailed)
		return
	}
	loop := k.MergeWires(c.FirstWire, c.SecondWire)
	if loop == nil {
		a.reject(c, ReasonSplitFailed)
		return
	}

	a.res.Records = append(a.res.Records,
		HoleRecord{Wire: loop, PartWire: c.FirstWire, BaseFace: c.FirstFace, NewFaces: [2]brep.Face{newFirst, newSecond}},
		HoleRecord{Wire: loop, PartWire: c.SecondWire, BaseFace: c.SecondFace, NewFaces: [2]brep.Face{newSecond, newFirst}},
	)
	a.res.Stitched++
	if viaSeam {
		a.res.ViaSeam++
	}
	if a.opts.OnStitch != nil {
		a.opts.OnStitch(c, edge, viaSeam)
	}
}

func (a *assembler) reject(c Candidate, r Reason) {
	a.res.Rejected[r]++
	if a.opts.OnReject != nil {
		a.opts.OnReject(c, r)
	}
}
