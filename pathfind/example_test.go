package pathfind_test

import (
	"fmt"

	"github.com/katalvlaran/floorpath/layout"
	"github.com/katalvlaran/floorpath/pathfind"
)

// ExampleThetaStar shows the any-angle search cutting across a floor with a
// blocked band.
func ExampleThetaStar() {
	f, err := layout.ParseFloor(0,
		"OOOOXXX",
		"OOOXOOO",
		"OOOOOXX",
		"XXOOOXO",
		"OOOOOOO",
		"XXXXOOO",
		"XOOOOOO",
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := pathfind.NewThetaStar().FindPath(f, layout.At(5, 2, 0), layout.At(1, 6, 0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Cost)
	// Output: [(5,2,0) (4,3,0) (4,6,0) (1,6,0)] 48
}

// ExampleAStar finds a minimum-cost path with the Octile heuristic.
func ExampleAStar() {
	f, _ := layout.ParseFloor(0,
		"OOOO",
		"OOOO",
	)
	res, _ := pathfind.NewAStar(pathfind.WithHeuristic(pathfind.Octile)).
		FindPath(f, layout.At(0, 0, 0), layout.At(3, 1, 0))
	fmt.Println(len(res.Path), res.Cost)
	// Output: 4 34
}

// ExampleLineOfSight checks visibility across a wall.
func ExampleLineOfSight() {
	f, _ := layout.ParseFloor(0,
		"OOO",
		"OXO",
		"OOO",
	)
	fmt.Println(pathfind.LineOfSight(f, layout.At(0, 0, 0), layout.At(2, 0, 0)))
	fmt.Println(pathfind.LineOfSight(f, layout.At(0, 1, 0), layout.At(2, 1, 0)))
	// Output:
	// true
	// false
}
