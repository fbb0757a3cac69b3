// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the random operand generators.
package matrix_test

import (
	"math"
	"testing"

	"github.com/matbench/matbench/matrix"
	"github.com/stretchr/testify/require"
)

func TestRandomInt32_Range(t *testing.T) {
	m := MustRandomInt32(t, seedA, 64, 48)
	require.Equal(t, 64, m.Rows())
	require.Equal(t, 48, m.Cols())
	for k, v := range m.Data() {
		require.GreaterOrEqualf(t, v, int32(0), "cell %d", k)
		require.Lessf(t, v, int32(matrix.IntUpperBound), "cell %d", k)
	}
}

func TestRandomFloat64_Range(t *testing.T) {
	m := MustRandomFloat64(t, seedA, 64, 48)
	for k, v := range m.Data() {
		require.GreaterOrEqualf(t, v, 0.0, "cell %d", k)
		require.Lessf(t, v, matrix.FloatUpperBound, "cell %d", k)
	}
}

// TestRandom_Deterministic: same seed and shape ⇒ identical operands.
func TestRandom_Deterministic(t *testing.T) {
	a := MustRandomInt32(t, seedA, 9, 11)
	b := MustRandomInt32(t, seedA, 9, 11)
	require.Equal(t, a.Data(), b.Data())

	c := MustRandomInt32(t, seedB, 9, 11)
	require.NotEqual(t, a.Data(), c.Data())

	fa := MustRandomFloat64(t, seedB, 5, 3)
	fb := MustRandomFloat64(t, seedB, 5, 3)
	require.Equal(t, fa.Data(), fb.Data())
}

// TestRandom_SharedSourceAdvances: consecutive draws from one source differ.
func TestRandom_SharedSourceAdvances(t *testing.T) {
	rng := matrix.NewRand(seedA)
	a, err := matrix.RandomInt32(rng, 8, 8)
	require.NoError(t, err)
	b, err := matrix.RandomInt32(rng, 8, 8)
	require.NoError(t, err)
	require.NotEqual(t, a.Data(), b.Data())
}

func TestRandom_Errors(t *testing.T) {
	rng := matrix.NewRand(seedA)

	_, err := matrix.RandomInt32(nil, 2, 2)
	require.ErrorIs(t, err, matrix.ErrNilRand)
	_, err = matrix.RandomFloat64(nil, 2, 2)
	require.ErrorIs(t, err, matrix.ErrNilRand)

	for _, shape := range [][2]int{{0, 1}, {1, 0}, {-3, 2}} {
		_, err = matrix.RandomInt32(rng, shape[0], shape[1])
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
		_, err = matrix.RandomFloat64(rng, shape[0], shape[1])
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}

	_, err = matrix.RandomInt32(rng, math.MaxInt, 2)
	require.ErrorIs(t, err, matrix.ErrTooLarge)
	_, err = matrix.RandomFloat64(rng, 2, math.MaxInt)
	require.ErrorIs(t, err, matrix.ErrTooLarge)
}

func TestNewRandFromClock(t *testing.T) {
	m, err := matrix.RandomFloat64(matrix.NewRandFromClock(), 3, 3)
	require.NoError(t, err)
	require.Equal(t, 9, len(m.Data()))
}
