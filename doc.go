// Package seamfix closes holes in boundary-representation (B-rep) models
// whose rim is split across two adjacent faces.
//
// 🚀 What is seamfix?
//
//	A small, kernel-agnostic library that:
//		• Groups open partial wires by their unordered pair of end vertices
//		• Confirms that two faces really bound the same hole (shared rim test)
//		• Builds the connecting edge, falling back to matching closing seams
//		• Merges the two rims into one loop and splits both faces
//		• Emits two mirrored hole records per stitch
//
// Everything talks to the modelling kernel through the small interfaces in
// brep/, so any kernel can be plugged in by implementing brep.Kernel.
//
//	brep/          Entity, Topology, Geometry, Builder and Kernel contracts, Point
//	stitch/        VertexPair, containment predicates, SharedRim, Synthesize, FillHoles
//	mesh/          in-memory polyline kernel implementing brep.Kernel
//	scene/         YAML/TOML scene files built into a mesh kernel
//	cmd/seamfix/   CLI: stitch and inspect
//
// Quick ASCII example:
//
//	D───────C
//	│  ╭─╮  │   F1 owns the upper rim P→Q
//	A─P   Q─B   AP and QB lie on both faces
//	│  ╰─╯  │   F2 owns the lower rim P→Q
//	G───────E
//
// FillHoles pairs the two rims, creates the edge P→Q and returns one record
// for F1 and one for F2.
//
//	go install github.com/katalvlaran/seamfix/cmd/seamfix@latest
package seamfix
