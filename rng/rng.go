// SPDX-License-Identifier: MIT

// Package rng centralizes deterministic random generation for the analytics
// packages.
//
// Goals:
//   - Determinism: same seed ⇒ identical streams across runs and platforms.
//   - Encapsulation: one seed policy; no time-based sources hidden anywhere.
//   - Lock-free parallelism: workers derive independent sub-seeds from
//     (parent seed, stream id) instead of sharing a *rand.Rand.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Never share one across goroutines;
//     call New(DeriveSeed(parent, id)) per worker or per call instead.
package rng

import "math/rand"

// DefaultSeed is the fixed seed used when callers pass 0.
const DefaultSeed int64 = 1

// golden is the SplitMix64 increment (2^64 / φ).
const golden uint64 = 0x9e3779b97f4a7c15

// Normalize applies the zero-seed policy: 0 ⇒ DefaultSeed, otherwise seed verbatim.
func Normalize(seed int64) int64 {
	if seed == 0 {
		return DefaultSeed
	}

	return seed
}

// New returns a deterministic *rand.Rand for seed (after Normalize).
// Complexity: O(1).
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(Normalize(seed)))
}

// mix is the SplitMix64 finalizer; see Vigna 2014 for the constants.
func mix(x uint64) uint64 {
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb

	return x ^ (x >> 31)
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed.
// Small changes in either input produce well-distributed output changes, so
// DeriveSeed(layerSeed, nodeID) gives every node its own reproducible stream.
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + golden)
	x += golden

	return int64(mix(x))
}

// Advance returns the successor of state in a SplitMix64 sequence. It is the
// only way random state moves forward: callers hold state as a plain value and
// replace it explicitly between epochs or independent runs.
func Advance(state int64) int64 {
	return int64(mix(uint64(state) + golden))
}
