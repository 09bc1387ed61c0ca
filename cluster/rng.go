// SPDX-License-Identifier: MIT

// Package cluster - RNG utilities shared by all strategies.
//
// Goals:
//   - Determinism: same seed ⇒ identical labels across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Every Cluster call builds its own stream
//     from the seed it receives, so strategies can run from parallel attempts.
package cluster

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier (typically an attempt
// index) into a new 64-bit seed with a SplitMix64 finalizer, so neighbouring
// streams are decorrelated.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	if parent == 0 {
		parent = defaultRNGSeed
	}
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
