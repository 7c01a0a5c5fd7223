// Package tensor - RNG utilities shared by all sketch-operator generation.
//
// This file centralizes deterministic random generation for the whole module.
//
// Goals:
//   - Determinism: same seed ⇒ identical sketch operators across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; only sentinel errors from tensor.go when needed.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines; use DeriveRand to create independent streams instead.
package tensor

import (
	"math"
	"math/rand"
)

// defaultRandSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRandSeed int64 = 1

// RandFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRandSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func RandFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRandSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64-style finalizer, so derived streams stay
// uncorrelated even for adjacent stream ids.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveRand creates an independent deterministic RNG stream from a base RNG
// and a stream identifier. If base==nil, defaultRandSeed is used as the
// parent. Otherwise base.Int63() is consumed once, intentionally, so reusing
// the same stream id by mistake still yields distinct children.
//
// Complexity: O(1).
func DeriveRand(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultRandSeed
	} else {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// Gaussian returns a rows×cols sketch operator with i.i.d. N(0, 1/rows)
// entries, i.e. standard normals scaled by 1/sqrt(rows). Applying it to a
// unit vector preserves the norm in expectation, which is exactly the
// Johnson–Lindenstrauss normalization.
//
// rng==nil selects the deterministic default stream (seed==0 policy).
//
// Complexity: O(rows·cols).
func Gaussian(rng *rand.Rand, rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidShape
	}
	if rng == nil {
		rng = RandFromSeed(0)
	}

	scale := 1.0 / math.Sqrt(float64(rows))
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = rng.NormFloat64() * scale
	}

	return NewDenseFrom(data, rows, cols)
}
