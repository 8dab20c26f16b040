package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/realm/core"
	"github.com/katalvlaran/realm/dfs"
	"github.com/katalvlaran/realm/geo"
)

// ExampleFindCycle finds the triangle hanging off a short road.
//
//	S ── A ── B
//	      \  /
//	       C
func ExampleFindCycle() {
	r := core.New()
	_ = r.AddTown("S", "spur", geo.Coord{X: -4, Y: 0}, 0)
	_ = r.AddTown("A", "apex", geo.Coord{X: 0, Y: 0}, 0)
	_ = r.AddTown("B", "bend", geo.Coord{X: 6, Y: 0}, 0)
	_ = r.AddTown("C", "crag", geo.Coord{X: 3, Y: -4}, 0)

	_ = r.AddRoad("S", "A")
	_ = r.AddRoad("A", "B")
	_ = r.AddRoad("B", "C")
	_ = r.AddRoad("C", "A")

	cycle, _ := dfs.FindCycle(r, "S")
	fmt.Println(cycle)

	_ = r.RemoveRoad("C", "A")
	cycle, _ = dfs.FindCycle(r, "S")
	fmt.Println(len(cycle))

	// Output:
	// [S A B C A]
	// 0
}
