package stitch_test

import (
	"fmt"

	"github.com/katalvlaran/seamfix/brep"
	"github.com/katalvlaran/seamfix/mesh"
	"github.com/katalvlaran/seamfix/stitch"
)

// ExampleFillHoles stitches a hole split between two square faces that meet
// along the x axis.
//
//	D───────C
//	│  ╭─╮  │  F1: rim P→(0,1)→Q
//	A─P   Q─B  shared edges AP, QB
//	│  ╰─╯  │  F2: rim P→(0,-1)→Q
//	G───────E
func ExampleFillHoles() {
	k := mesh.NewKernel()
	for id, p := range map[string]brep.Point{
		"A": brep.Pt(-2, 0, 0), "P": brep.Pt(-1, 0, 0), "Q": brep.Pt(1, 0, 0), "B": brep.Pt(2, 0, 0),
		"C": brep.Pt(2, 2, 0), "D": brep.Pt(-2, 2, 0), "E": brep.Pt(2, -2, 0), "G": brep.Pt(-2, -2, 0),
	} {
		_, _ = k.AddVertex(id, p)
	}
	// Errors are ignored for brevity; every reference below is valid.
	ap, _ := k.AddEdge("AP", "A", "P")
	qb, _ := k.AddEdge("QB", "Q", "B")
	top, _ := k.AddEdge("top", "P", "Q", brep.Pt(0, 1, 0))
	bot, _ := k.AddEdge("bot", "P", "Q", brep.Pt(0, -1, 0))
	bc, _ := k.AddEdge("BC", "B", "C")
	cd, _ := k.AddEdge("CD", "C", "D")
	da, _ := k.AddEdge("DA", "D", "A")
	be, _ := k.AddEdge("BE", "B", "E")
	eg, _ := k.AddEdge("EG", "E", "G")
	ga, _ := k.AddEdge("GA", "G", "A")

	o1, _ := k.AddWire("O1", ap, top, qb, bc, cd, da)
	o2, _ := k.AddWire("O2", ap, bot, qb, be, eg, ga)
	f1, _ := k.AddFace("F1", o1)
	f2, _ := k.AddFace("F2", o2)
	rim1, _ := k.AddWire("rim1", top)
	rim2, _ := k.AddWire("rim2", bot)

	res, err := stitch.FillHoles(k, []stitch.FaceWires{
		{Face: f1, Wires: []brep.Wire{rim1}},
		{Face: f2, Wires: []brep.Wire{rim2}},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, r := range res.Records {
		fmt.Printf("base=%s part=%s\n", r.BaseFace, r.PartWire)
	}
	fmt.Printf("stitched=%d records=%d\n", res.Stitched, len(res.Records))

	// Output:
	// base=F1 part=rim1
	// base=F2 part=rim2
	// stitched=1 records=2
}
