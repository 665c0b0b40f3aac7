// Package stitch defines types and options for multi-face hole stitching:
// input entries, candidate pairs, hole records, rejection reasons, and the
// hooks and tolerance that tune FillHoles.
package stitch

import (
	"context"
	"errors"

	"github.com/katalvlaran/seamfix/brep"
)

// DefaultTolerance is the absolute distance under which two seam-edge
// midpoints are considered the same point.
const DefaultTolerance = 1e-7

var (
	// ErrNilKernel is returned when FillHoles receives a nil kernel.
	ErrNilKernel = errors.New("stitch: kernel is nil")

	// ErrNilEntity indicates a nil face or wire in the input.
	ErrNilEntity = errors.New("stitch: nil face or wire in input")

	// ErrBadTolerance indicates a tolerance that is negative, NaN or infinite.
	ErrBadTolerance = errors.New("stitch: tolerance must be finite and non-negative")
)

// Reason classifies why a candidate pair was not stitched.
type Reason int

const (
	// ReasonDegenerateLoop: the first wire's endpoints are the same vertex.
	ReasonDegenerateLoop Reason = iota
	// ReasonWireInFace: one wire lies wholly on the other face's outer boundary.
	ReasonWireInFace
	// ReasonNoSharedRim: the faces do not share one boundary edge at each endpoint.
	ReasonNoSharedRim
	// ReasonNoEdge: neither direct construction nor the seam fallback gave an edge.
	ReasonNoEdge
	// ReasonSplitFailed: the kernel could not split a face or merge the wires.
	// Entities built for the candidate before the failure stay in the kernel.
	ReasonSplitFailed
)

// String returns a short lower-case label.
func (r Reason) String() string {
	switch r {
	case ReasonDegenerateLoop:
		return "degenerate loop"
	case ReasonWireInFace:
		return "wire in face"
	case ReasonNoSharedRim:
		return "no shared rim"
	case ReasonNoEdge:
		return "no edge"
	case ReasonSplitFailed:
		return "split failed"
	default:
		return "unknown"
	}
}

// FaceWires is one input entry: a face and the open partial wires left on it.
type FaceWires struct {
	Face  brep.Face
	Wires []brep.Wire
}

// Candidate is a pair of (face, wire) members of one endpoint group under test.
type Candidate struct {
	FirstFace  brep.Face
	FirstWire  brep.Wire
	SecondFace brep.Face
	SecondWire brep.Wire
}

// HoleRecord describes one side of a confirmed stitch.
type HoleRecord struct {
	// Wire is the closed loop merged from both partial wires.
	Wire brep.Wire

	// PartWire is this side's own partial wire.
	PartWire brep.Wire

	// BaseFace is the face PartWire came from.
	BaseFace brep.Face

	// NewFaces holds this side's new face first and the other side's second.
	NewFaces [2]brep.Face
}

// Option configures optional behavior of FillHoles.
type Option func(*Options)

// Options holds configurable parameters for FillHoles.
type Options struct {
	// Ctx allows cancellation between groups; defaults to context.Background().
	Ctx context.Context

	// Tolerance bounds the midpoint distance accepted by the seam fallback.
	Tolerance float64

	// OnReject, if non-nil, is called for every candidate that is not stitched.
	OnReject func(c Candidate, r Reason)

	// OnStitch, if non-nil, is called with the connecting edge of every
	// confirmed stitch; viaSeam reports whether the fallback produced it.
	OnStitch func(c Candidate, e brep.Edge, viaSeam bool)
}

// DefaultOptions returns Options with:
//   - Background context
//   - Tolerance = DefaultTolerance
//   - No hooks
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Tolerance: DefaultTolerance,
	}
}

// WithContext sets the context checked between groups.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTolerance overrides DefaultTolerance.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		o.Tolerance = tol
	}
}

// WithOnReject installs fn as the rejection hook.
func WithOnReject(fn func(c Candidate, r Reason)) Option {
	return func(o *Options) {
		o.OnReject = fn
	}
}

// WithOnStitch installs fn as the stitch hook.
func WithOnStitch(fn func(c Candidate, e brep.Edge, viaSeam bool)) Option {
	return func(o *Options) {
		o.OnStitch = fn
	}
}

// Result captures the outcome of FillHoles.
type Result struct {
	// Records holds two mirrored records per confirmed stitch, in group order.
	Records []HoleRecord

	// Groups counts endpoint groups with at least two members.
	Groups int

	// Candidates counts pairs examined.
	Candidates int

	// Stitched counts confirmed stitches; len(Records) == 2*Stitched.
	Stitched int

	// ViaSeam counts stitches whose edge came from the seam fallback.
	ViaSeam int

	// Rejected counts rejected candidates per reason.
	Rejected map[Reason]int
}
