// Package ga - RNG utilities shared by the parallel operators.
//
// Every parallel operator owns one *rand.Rand per worker, derived once at
// construction from the engine's base stream. math/rand.Rand is not
// goroutine-safe, so a stream is only ever touched by the worker that owns
// its index.
package ga

import (
	"math/rand"
	"time"
)

// rngFromSeed returns the base stream of a run.
// Policy: seed==0 ⇒ time-based seed (runs are not reproducible);
// otherwise the seed is used verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id with a SplitMix64 finalizer
// so that neighbouring stream ids yield uncorrelated seeds.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// deriveRNG creates an independent stream from base. base.Int63() is
// consumed once so repeated derivations with the same id still differ.
// A nil base falls back to a time-based parent.
//
// Complexity: O(1).
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = time.Now().UnixNano()
	} else {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// deriveStreams returns n per-worker streams derived from base.
//
// Complexity: O(n).
func deriveStreams(base *rand.Rand, n int) []*rand.Rand {
	out := make([]*rand.Rand, n)
	for i := range out {
		out[i] = deriveRNG(base, uint64(i))
	}
	return out
}
