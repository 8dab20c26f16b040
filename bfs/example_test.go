package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/realm/bfs"
	"github.com/katalvlaran/realm/core"
	"github.com/katalvlaran/realm/geo"
)

// ExampleFewestRoads finds the route with the fewest roads on a small square
// with one diagonal.
func ExampleFewestRoads() {
	r := core.New()
	_ = r.AddTown("NW", "north-west", geo.Coord{X: 0, Y: 10}, 0)
	_ = r.AddTown("NE", "north-east", geo.Coord{X: 10, Y: 10}, 0)
	_ = r.AddTown("SE", "south-east", geo.Coord{X: 10, Y: 0}, 0)
	_ = r.AddTown("SW", "south-west", geo.Coord{X: 0, Y: 0}, 0)

	_ = r.AddRoad("NW", "NE")
	_ = r.AddRoad("NE", "SE")
	_ = r.AddRoad("SE", "SW")
	_ = r.AddRoad("SW", "NW")
	_ = r.AddRoad("NE", "SW")

	route, _ := bfs.FewestRoads(r, "NE", "SW")
	fmt.Println(route)

	route, _ = bfs.FewestRoads(r, "NW", "SE")
	fmt.Println(route)

	// Output:
	// [NE SW]
	// [NW NE SE]
}
