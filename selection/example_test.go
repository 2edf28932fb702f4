package selection_test

import (
	"fmt"

	"github.com/katalvlaran/gdsgo/builder"
	"github.com/katalvlaran/gdsgo/selection"
)

// ExampleSelect ranks a star by degree: the hub always wins.
func ExampleSelect() {
	g, _ := builder.BuildGraph(nil, nil, builder.Star(6))
	s, _ := selection.NewRandomDegree(0.2, 0, 1)
	pivots, _ := selection.Select(g, s)
	fmt.Println(pivots)
	// Output:
	// [0]
}
