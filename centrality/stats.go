// SPDX-License-Identifier: MIT

package centrality

import "math"

// ComputeStats reduces values to min, max and sum in one pass.
// An empty slice yields the identities {+Inf, -Inf, 0}.
// Complexity: O(len(values)).
func ComputeStats(values []float64) Stats {
	s := Stats{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, v := range values {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		s.Sum += v
	}

	return s
}

// Empty reports whether s describes a run over zero nodes.
func (s Stats) Empty() bool {
	return math.IsInf(s.Min, 1) && math.IsInf(s.Max, -1)
}
