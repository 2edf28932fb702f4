package memory_test

import (
	"fmt"

	"github.com/katalvlaran/gdsgo/memory"
)

func ExampleEstimate_Render() {
	perWorker := memory.Sum("worker",
		memory.Fixed("local scores", memory.SizeOfFloat64Array(1000)),
		memory.Fixed("queue", memory.SizeOfIntArray(1000)),
	)
	est := memory.Sum("betweenness",
		memory.Fixed("result", memory.SizeOfFloat64Array(1000)),
		memory.Times("workers", 2, perWorker),
	)
	fmt.Print(est.Render())
	// Output:
	// betweenness: 39 KiB
	// ├── result: 7.8 KiB
	// └── workers (x2): 31 KiB
	//     └── worker: 16 KiB
	//         ├── local scores: 7.8 KiB
	//         └── queue: 7.8 KiB
}
