// SPDX-License-Identifier: MIT
// Package probability - deterministic RNG factory.
//
// Goals:
//   - Determinism: same seed ⇒ identical samples across platforms.
//   - A single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use DeriveRNG to create independent streams for parallel estimators.

package probability

import "math/rand"

// DefaultSeed is used when callers pass seed == 0.
const DefaultSeed int64 = 1

// RNGFromSeed returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func RNGFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id with a SplitMix64
// finalizer, so neighbouring stream ids give uncorrelated seeds.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveRNG creates an independent deterministic stream from base and a
// stream id. base == nil uses DefaultSeed as the parent; otherwise one
// base.Int63() is consumed, so repeated derivations with the same id differ.
//
// Call during setup, not in hot loops.
func DeriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := DefaultSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
