package terrain_test

import (
	"fmt"

	"isles/internal/core"
	"isles/internal/spatial"
	"isles/internal/terrain"
	prng "isles/pkg/core"
)

// ExamplePartition splits two separate blocks of land into components.
func ExamplePartition() {
	var coords []core.Coordinate
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			coords = append(coords, core.C(x, y), core.C(x+10, y))
		}
	}
	comps := terrain.Partition(spatial.Build(coords), core.Conn8)
	for i, comp := range comps {
		fmt.Printf("component %d: %d points, bounds x %d..%d\n", i, comp.Len(), comp.Bounds().XMin, comp.Bounds().XMax)
	}
	// Output:
	// component 0: 4 points, bounds x 0..1
	// component 1: 4 points, bounds x 10..11
}

// ExampleDerive runs the full pipeline on a 15x15 block of land.
func ExampleDerive() {
	var coords []core.Coordinate
	for y := 0; y < 15; y++ {
		for x := 0; x < 15; x++ {
			coords = append(coords, core.C(x, y))
		}
	}
	lm := terrain.New(0, coords, prng.NewRNG(1))
	if err := terrain.Derive(lm, prng.NewRNG(1), terrain.DefaultParams(), nil); err != nil {
		fmt.Println(err)
		return
	}
	beach, _ := lm.Beach()
	fmt.Println("coastal points:", len(lm.CoastalPoints()))
	fmt.Println("beach size:", len(beach.Points))
	fmt.Println("highest:", lm.HighestDistanceToWater)
	fmt.Println("mountain ranges:", len(lm.Mountains))
	// Output:
	// coastal points: 56
	// beach size: 56
	// highest: 7
	// mountain ranges: 1
}
