// SPDX-License-Identifier: MIT
// Package matrix - uniform random fill for benchmark operands.
//
// Design:
//   • The random source is always passed explicitly (*rand.Rand); there is no package-level RNG.
//   • NewRand(seed) gives reproducible operands; NewRandFromClock() gives a fresh stream per run.
//   • Elements are drawn independently, row-major, so the same seed and shape give the same matrix.
//
// Ranges (half-open):
//   • int32:   [0, IntUpperBound)
//   • float64: [0.0, FloatUpperBound)

package matrix

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Upper bounds of the generated element ranges (exclusive).
const (
	IntUpperBound   = 1000
	FloatUpperBound = 1000.0
)

// maxFloatBelowBound is the largest float64 strictly below FloatUpperBound.
// rng.Float64()*FloatUpperBound may round up to the bound itself.
var maxFloatBelowBound = math.Nextafter(FloatUpperBound, 0)

const (
	ctxRandomInt   = "RandomInt32"
	ctxRandomFloat = "RandomFloat64"
)

// NewRand returns a deterministic source for the given seed.
// Same seed ⇒ identical operand matrices.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewRandFromClock returns a source seeded from the wall clock (non-reproducible).
func NewRandFromClock() *rand.Rand {
	return NewRand(time.Now().UnixNano())
}

// RandomInt32 returns a rows×cols matrix with elements uniform in [0, IntUpperBound).
// MAIN DESCRIPTION:
//   - Benchmark operand generator for the integer pipeline.
//
// Implementation:
//   - Stage 1: validate rng and shape.
//   - Stage 2: fill the flat buffer in row-major order with rng.Int31n.
//
// Errors:
//   - ErrNilRand, ErrInvalidDimensions.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func RandomInt32(rng *rand.Rand, rows, cols int) (*Dense[int32], error) {
	m, err := newRandomTarget[int32](ctxRandomInt, rng, rows, cols)
	if err != nil {
		return nil, err
	}
	var k int
	for k = range m.data {
		m.data[k] = rng.Int31n(IntUpperBound)
	}

	return m, nil
}

// RandomFloat64 returns a rows×cols matrix with elements uniform in [0.0, FloatUpperBound).
// Same contract as RandomInt32; values that round up to the bound are clamped below it.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func RandomFloat64(rng *rand.Rand, rows, cols int) (*Dense[float64], error) {
	m, err := newRandomTarget[float64](ctxRandomFloat, rng, rows, cols)
	if err != nil {
		return nil, err
	}
	var (
		k int
		v float64
	)
	for k = range m.data {
		v = rng.Float64() * FloatUpperBound
		if v >= FloatUpperBound {
			v = maxFloatBelowBound
		}
		m.data[k] = v
	}

	return m, nil
}

// newRandomTarget validates generator inputs and allocates the zeroed result.
func newRandomTarget[T Element](tag string, rng *rand.Rand, rows, cols int) (*Dense[T], error) {
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", tag, ErrNilRand)
	}
	if err := ValidateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	return NewDense[T](rows, cols)
}
