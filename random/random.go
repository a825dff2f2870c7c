// Package random exposes random number sources as task.IO capabilities, so
// code that needs a random value receives the source instead of reaching for
// a global.
package random

import (
	"math/rand/v2"

	"github.com/charmingruby/fgp-interop/task"
)

// Float64 returns an IO drawing from the process-wide source. Each invocation
// yields a fresh value in [0, 1).
func Float64() task.IO[float64] {
	return rand.Float64
}

// FromSeed returns an IO drawing from a PCG generator seeded with seed. Two
// IOs built from the same seed yield the same sequence. The returned IO is not
// safe for concurrent use.
func FromSeed(seed uint64) task.IO[float64] {
	return From(rand.New(rand.NewPCG(seed, seed)))
}

// From adapts an existing generator.
func From(r *rand.Rand) task.IO[float64] {
	return r.Float64
}

// Draw runs io n times and returns the values in order.
func Draw(io task.IO[float64], n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = io()
	}
	return out
}
