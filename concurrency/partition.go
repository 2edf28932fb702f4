// SPDX-License-Identifier: MIT

package concurrency

// Range is the half-open index interval [Start, End).
type Range struct {
	Start, End int
}

// Len returns the number of indices in r.
func (r Range) Len() int {
	return r.End - r.Start
}

// clampParts bounds the partition count to [1, n].
func clampParts(n, workers int) int {
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	return workers
}

// Partitions splits [0, n) into min(workers, n) contiguous ranges whose sizes
// differ by at most one; larger ranges come first. n ≤ 0 yields nil.
func Partitions(n, workers int) []Range {
	if n <= 0 {
		return nil
	}
	parts := clampParts(n, workers)
	base, extra := n/parts, n%parts

	out := make([]Range, 0, parts)
	start := 0
	for i := 0; i < parts; i++ {
		size := base
		if i < extra {
			size++
		}
		out = append(out, Range{Start: start, End: start + size})
		start += size
	}

	return out
}

// WeightedPartitions splits [0, n) into min(workers, n) non-empty contiguous
// ranges of roughly equal total weight, cutting greedily at prefix-sum
// thresholds. Each item counts weight(i)+1, so zero-weight items still cost.
// Complexity: O(n).
func WeightedPartitions(n, workers int, weight func(i int) int) []Range {
	if n <= 0 {
		return nil
	}
	parts := clampParts(n, workers)
	if parts == 1 {
		return []Range{{Start: 0, End: n}}
	}

	w := make([]int64, n)
	var total int64
	for i := range w {
		w[i] = int64(weight(i)) + 1
		total += w[i]
	}

	out := make([]Range, 0, parts)
	start := 0
	var acc int64
	for i := 0; i < n; i++ {
		acc += w[i]
		partsLeft := parts - len(out) - 1
		if partsLeft == 0 {
			break
		}
		itemsLeft := n - i - 1
		if acc*int64(parts) >= total*int64(len(out)+1) || itemsLeft == partsLeft {
			out = append(out, Range{Start: start, End: i + 1})
			start = i + 1
		}
	}

	return append(out, Range{Start: start, End: n})
}

// Batches splits [0, n) into consecutive ranges of at most size items.
// size < 1 is treated as n.
func Batches(n, size int) []Range {
	if n <= 0 {
		return nil
	}
	if size < 1 || size > n {
		size = n
	}
	out := make([]Range, 0, (n+size-1)/size)
	for start := 0; start < n; start += size {
		out = append(out, Range{Start: start, End: min(start+size, n)})
	}

	return out
}
