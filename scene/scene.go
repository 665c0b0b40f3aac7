// Package scene loads small B-rep models for seamfix from YAML or TOML scene
// descriptions and builds them into a mesh.Kernel plus the stitching input.
//
// A scene lists vertices, edges (with optional interior "via" points) and
// faces. Each face names its outer wire and partial rims as lists of edge
// references; "-E1" uses edge E1 reversed.
//
//	tolerance: 1.0e-7
//	intersections: true
//	vertices:
//	  - {id: V1, at: [-1, 0, 0]}
//	edges:
//	  - {id: R1, from: V1, to: V2, via: [[0, 1, 0]]}
//	faces:
//	  - id: F1
//	    outer: [S1, R1, S2, T1]
//	    seam: K1
//	    periodic: false
//	    partial: [[R1]]
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/seamfix/brep"
	"github.com/katalvlaran/seamfix/mesh"
	"github.com/katalvlaran/seamfix/stitch"
)

var (
	// ErrUnknownFormat indicates a file extension other than .yaml, .yml or .toml.
	ErrUnknownFormat = errors.New("scene: unknown format")

	// ErrBadPoint indicates a coordinate list that does not have three numbers.
	ErrBadPoint = errors.New("scene: point must have 3 coordinates")
)

// Format selects the scene decoder.
type Format int

const (
	// YAML decodes with gopkg.in/yaml.v3.
	YAML Format = iota
	// TOML decodes with github.com/pelletier/go-toml/v2.
	TOML
)

// String returns "yaml" or "toml".
func (f Format) String() string {
	if f == TOML {
		return "toml"
	}

	return "yaml"
}

// File is the decoded scene description.
type File struct {
	// Tolerance for the seam fallback; absent means stitch.DefaultTolerance.
	// An explicit 0 asks for exact midpoint equality.
	Tolerance *float64 `yaml:"tolerance" toml:"tolerance"`

	// Intersections enables direct common-edge construction; default true.
	Intersections *bool `yaml:"intersections" toml:"intersections"`

	Vertices []VertexSpec `yaml:"vertices" toml:"vertices"`
	Edges    []EdgeSpec   `yaml:"edges" toml:"edges"`
	Faces    []FaceSpec   `yaml:"faces" toml:"faces"`
}

// VertexSpec declares one vertex.
type VertexSpec struct {
	ID string    `yaml:"id" toml:"id"`
	At []float64 `yaml:"at" toml:"at"`
}

// EdgeSpec declares one edge from→to through optional via points.
type EdgeSpec struct {
	ID   string      `yaml:"id" toml:"id"`
	From string      `yaml:"from" toml:"from"`
	To   string      `yaml:"to" toml:"to"`
	Via  [][]float64 `yaml:"via" toml:"via"`
}

// FaceSpec declares one face, its seam and its partial rims.
type FaceSpec struct {
	ID       string     `yaml:"id" toml:"id"`
	Outer    []string   `yaml:"outer" toml:"outer"`
	Seam     string     `yaml:"seam" toml:"seam"`
	Periodic bool       `yaml:"periodic" toml:"periodic"`
	Partial  [][]string `yaml:"partial" toml:"partial"`
}

// Model is a built scene, ready for stitch.FillHoles.
type Model struct {
	Kernel    *mesh.Kernel
	Input     []stitch.FaceWires
	Tolerance float64
}

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return 0, fmt.Errorf("%q: %w", path, ErrUnknownFormat)
	}
}

// Load reads and decodes the scene at path.
func Load(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %q: %w", path, err)
	}

	return Parse(data, format)
}

// Parse decodes data in the given format. Unknown keys are rejected.
func Parse(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document is an empty scene.
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("scene: decode yaml: %w", err)
		}
	case TOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("scene: decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("format %d: %w", format, ErrUnknownFormat)
	}

	return &f, nil
}

// Build creates a kernel holding every declared entity and the stitching
// input, one entry per face that declares partial rims, in declaration order.
//
// Wire IDs are derived from the face: "<face>.outer" and "<face>.rim<N>"
// (N from 1).
func (f *File) Build() (*Model, error) {
	var opts []mesh.Option
	if f.Intersections != nil && !*f.Intersections {
		opts = append(opts, mesh.WithoutIntersections())
	}
	k := mesh.NewKernel(opts...)

	// 1) Vertices
	for _, vs := range f.Vertices {
		p, err := point(vs.At)
		if err != nil {
			return nil, fmt.Errorf("scene: vertex %q: %w", vs.ID, err)
		}
		if _, err = k.AddVertex(vs.ID, p); err != nil {
			return nil, fmt.Errorf("scene: %w", err)
		}
	}

	// 2) Edges
	for _, es := range f.Edges {
		via := make([]brep.Point, 0, len(es.Via))
		for i, raw := range es.Via {
			p, err := point(raw)
			if err != nil {
				return nil, fmt.Errorf("scene: edge %q via[%d]: %w", es.ID, i, err)
			}
			via = append(via, p)
		}
		if _, err := k.AddEdge(es.ID, es.From, es.To, via...); err != nil {
			return nil, fmt.Errorf("scene: %w", err)
		}
	}

	// 3) Faces and their rims
	var input []stitch.FaceWires
	for _, fs := range f.Faces {
		fw, err := buildFace(k, fs)
		if err != nil {
			return nil, fmt.Errorf("scene: face %q: %w", fs.ID, err)
		}
		if len(fw.Wires) > 0 {
			input = append(input, fw)
		}
	}

	tol := stitch.DefaultTolerance
	if f.Tolerance != nil {
		tol = *f.Tolerance
	}

	return &Model{Kernel: k, Input: input, Tolerance: tol}, nil
}

func buildFace(k *mesh.Kernel, fs FaceSpec) (stitch.FaceWires, error) {
	outer, err := buildWire(k, fs.ID+".outer", fs.Outer)
	if err != nil {
		return stitch.FaceWires{}, err
	}
	var fo []mesh.FaceOption
	if fs.Periodic {
		fo = append(fo, mesh.WithPeriodic())
	}
	if fs.Seam != "" {
		seam, err := k.EdgeRef(fs.Seam)
		if err != nil {
			return stitch.FaceWires{}, fmt.Errorf("seam: %w", err)
		}
		fo = append(fo, mesh.WithSeam(seam))
	}
	face, err := k.AddFace(fs.ID, outer, fo...)
	if err != nil {
		return stitch.FaceWires{}, err
	}

	fw := stitch.FaceWires{Face: face}
	for i, refs := range fs.Partial {
		w, err := buildWire(k, fmt.Sprintf("%s.rim%d", fs.ID, i+1), refs)
		if err != nil {
			return stitch.FaceWires{}, err
		}
		fw.Wires = append(fw.Wires, w)
	}

	return fw, nil
}

func buildWire(k *mesh.Kernel, id string, refs []string) (*mesh.Wire, error) {
	edges := make([]mesh.Edge, 0, len(refs))
	for _, ref := range refs {
		e, err := k.EdgeRef(ref)
		if err != nil {
			return nil, fmt.Errorf("wire %q: %w", id, err)
		}
		edges = append(edges, e)
	}

	return k.AddWire(id, edges...)
}

func point(c []float64) (brep.Point, error) {
	if len(c) != 3 {
		return brep.Point{}, fmt.Errorf("got %d: %w", len(c), ErrBadPoint)
	}

	return brep.Pt(c[0], c[1], c[2]), nil
}
