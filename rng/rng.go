// Package rng is the random source shared by the maze carvers.
//
// Goals:
//   - Determinism: the same seed yields the same carving, bit for bit.
//   - Injection: carvers take a Source; wall-clock seeding is only a default.
//   - Sequential use: every draw advances one stream. Do not share a Source
//     across goroutines; math/rand.Rand is not goroutine-safe.
package rng

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/labyrinth/grid"
)

// Source supplies uniform integers in [0,n) and in-place shuffles.
// *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// New returns a deterministic *rand.Rand seeded with seed verbatim.
// Complexity: O(1).
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// TimeSeed derives a seed from the wall clock.
func TimeSeed() int64 {
	return time.Now().UnixNano()
}

// NewTimeSeeded returns a source seeded from the wall clock together with
// the seed used, so a run can be reproduced later with New(seed).
func NewTimeSeeded() (*rand.Rand, int64) {
	seed := TimeSeed()
	return New(seed), seed
}

// PickIndex draws a uniform index in [0,n). n must be positive.
func PickIndex(src Source, n int) int {
	return src.Intn(n)
}

// ShufflePoints permutes pts in place using src. Slices of length ≤ 1
// consume no randomness.
// Complexity: O(n) time, O(1) extra space.
func ShufflePoints(src Source, pts []grid.Point) {
	if len(pts) <= 1 {
		return
	}
	src.Shuffle(len(pts), func(i, j int) {
		pts[i], pts[j] = pts[j], pts[i]
	})
}
