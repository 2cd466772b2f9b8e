package main

import (
	"fmt"
	"log"
	"os"

	polylla "github.com/WinterNacho/Polylla-Unified"
)

func check(err error) {
	if err != nil {
		log.Fatalln(err)
	}
}

func main() {
	path := "testdata/lshape.off"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	mesh, err := polylla.LoadOFF(path)
	check(err)
	fmt.Printf("mesh loaded: %d verts, %d faces\n", len(mesh.Verts), len(mesh.Polys))

	b := polylla.NewBuilder(polylla.NewSettings())
	for i, poly := range mesh.Polys {
		kv := b.Kernel(poly, mesh.Verts)
		if len(kv) == 0 {
			fmt.Printf("face %d: empty kernel\n", i)
			continue
		}
		ratio := polylla.Area(kv) / polylla.PolyArea(poly, mesh.Verts)
		fmt.Printf("face %d: kernel %v, area ratio %.3f\n", i, kv, ratio)
	}
}
