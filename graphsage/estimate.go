// SPDX-License-Identifier: MIT

package graphsage

import (
	"strconv"

	"github.com/katalvlaran/gdsgo/memory"
)

// EstimateMemory predicts the peak footprint of Embed over a graph of nodes
// nodes for requested output rows, with batchSize nodes per batch and
// concurrency batches in flight.
//
// A batch's computation tree holds at most batch·Π(1+sampleSize) distinct
// nodes per level (capped by nodes); each keeps one vector of the level's
// width plus its sampled ids. The output matrix and the weights are counted once.
func EstimateMemory(nodes, requested, batchSize, concurrency, inputDim int, layers []LayerConfig) memory.Estimate {
	if batchSize < 1 {
		batchSize = DefaultBatchSize
	}
	if concurrency < 1 {
		concurrency = 1
	}
	outDim := inputDim
	if len(layers) > 0 {
		outDim = layers[len(layers)-1].OutputDim
	}

	// 1) One batch, top level down.
	rows := min(batchSize, requested)
	inFlight := min(concurrency, (requested+batchSize-1)/batchSize)
	perLevel := make([]memory.Estimate, 0, len(layers)+1)
	perLevel = append(perLevel, memory.Fixed("output vectors", vectors(rows, outDim)))
	for l := len(layers) - 1; l >= 0; l-- {
		width := inputDim
		if l > 0 {
			width = layers[l-1].OutputDim
		}
		sampled := rows * layers[l].SampleSize
		rows = min(nodes, rows*(1+layers[l].SampleSize))
		perLevel = append(perLevel, memory.Sum(levelName(l),
			memory.Fixed("vectors", vectors(rows, width)),
			memory.Fixed("sampled ids", memory.SizeOfIntArray(sampled)),
		))
	}
	batch := memory.Sum("batch", perLevel...)

	// 2) Weights.
	weights := make([]memory.Estimate, 0, len(layers))
	in := inputDim
	for l, c := range layers {
		// Pool holds three matrices and a bias; Mean holds one matrix.
		lo := matrix(c.OutputDim, in)
		hi := matrix(c.OutputDim, in)*2 + matrix(c.OutputDim, c.OutputDim) + matrix(c.OutputDim, 1)
		weights = append(weights, memory.Between(levelName(l), lo, hi))
		in = c.OutputDim
	}

	return memory.Sum(algorithm,
		memory.Fixed("embedding matrix", matrix(requested, outDim)),
		memory.Sum("weights", weights...),
		memory.Times("batches in flight", inFlight, batch),
	)
}

func levelName(l int) string {
	return "layer " + strconv.Itoa(l)
}

// vectors is rows separate []float64 of the given width plus their headers.
func vectors(rows, width int) uint64 {
	return memory.SizeOfObjectArray(rows) + uint64(max(rows, 0))*memory.Float64Size*uint64(max(width, 0))
}

// matrix is one dense rows×cols float64 block.
func matrix(rows, cols int) uint64 {
	return memory.SizeOfFloat64Array(max(rows, 0) * max(cols, 0))
}
