package graphio_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/gdsgo/graphio"
)

func ExampleReadEdgeList() {
	in := `# who follows whom
ann bob 2
bob cid
`
	el, err := graphio.ReadEdgeList(strings.NewReader(in))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(el.Labels, el.Graph.Weights(1))

	_ = graphio.WriteEdgeList(os.Stdout, el.Graph)
	// Output:
	// [ann bob cid] [2 1]
	// 0 1 2
	// 1 2 1
}
