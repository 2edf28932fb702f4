// SPDX-License-Identifier: MIT

package graphsage

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/gdsgo/core"
	"github.com/katalvlaran/gdsgo/errkind"
)

// sampleKey identifies a sample: Sample is pure in these inputs for a fixed graph.
type sampleKey struct {
	node   int
	state  int64
	size   int
	policy IsolatedPolicy
}

// SampleCache is a bounded LRU of neighbourhood samples, safe for concurrent
// use. Cached slices are shared and must not be modified.
type SampleCache struct {
	entries *lru.Cache[sampleKey, []int]
}

// NewSampleCache returns a cache holding at most size samples.
func NewSampleCache(size int) (*SampleCache, error) {
	c, err := lru.New[sampleKey, []int](size)
	if err != nil {
		return nil, errkind.ConfigWrap(opConfigure, err)
	}

	return &SampleCache{entries: c}, nil
}

// Neighborhood is the cached form of the package-level Neighborhood.
func (c *SampleCache) Neighborhood(l Layer, g core.Graph, node int) []int {
	key := sampleKey{node: node, state: l.RandomState, size: l.SampleSize, policy: l.Sampler.Isolated}
	if ids, ok := c.entries.Get(key); ok {
		return ids
	}
	ids := Neighborhood(l, g, node)
	c.entries.Add(key, ids)

	return ids
}

// Len returns the number of cached samples.
func (c *SampleCache) Len() int {
	return c.entries.Len()
}

// Purge drops every entry, e.g. after the graph changed.
func (c *SampleCache) Purge() {
	c.entries.Purge()
}
