package core_test

import (
	"fmt"

	"github.com/katalvlaran/gdsgo/core"
)

// ExampleBuilder builds a small undirected square A-B-D-C-A with dense ids.
func ExampleBuilder() {
	b := core.NewBuilder(4)
	_ = b.AddEdge(0, 1, 0)
	_ = b.AddEdge(1, 3, 0)
	_ = b.AddEdge(3, 2, 0)
	_ = b.AddEdge(2, 0, 0)

	g, err := b.Build()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for v := 0; v < g.NodeCount(); v++ {
		fmt.Println(v, g.Neighbors(v))
	}
	// Output:
	// 0 [1 2]
	// 1 [0 3]
	// 2 [0 3]
	// 3 [1 2]
}
