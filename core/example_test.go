package core_test

import (
	"fmt"

	"github.com/katalvlaran/metro/core"
)

// ExampleNetwork shows the lenient mutation policy and its outcomes.
func ExampleNetwork() {
	n := core.NewNetwork()
	fmt.Println(n.AddStation("Central", "Blue", 1, 12.97, 77.59))
	fmt.Println(n.AddStation("Central", "Red", 2, 0, 0))
	fmt.Println(n.AddStation("Harbour", "Blue", 2, 12.95, 77.60))
	fmt.Println(n.AddEdge("Central", "Harbour", 2.5))
	fmt.Println(n.AddEdge("Central", "Nowhere", 1))

	s, _ := n.Station("Central")
	fmt.Println(s.Line, n.StationCount(), n.EdgeCount())
	// Output:
	// added
	// duplicate
	// added
	// added
	// missing
	// Blue 2 1
}
