// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Keep all seeds fixed so failures are reproducible.

package matrix_test

import (
	"testing"

	"github.com/matbench/matbench/matrix"
	"github.com/stretchr/testify/require"
)

// Fixed seeds for reproducible operand matrices.
const (
	seedA int64 = 1337
	seedB int64 = 4242
)

// relTol is the per-cell relative tolerance for float64 comparisons.
const relTol = 1e-12

// MustDense ALLOCATES an r×c zero matrix or fails the test.
func MustDense[T matrix.Element](tb testing.TB, r, c int) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewDense[T](r, c)
	require.NoError(tb, err)

	return m
}

// MustFromRows builds a matrix from a literal or fails the test.
func MustFromRows[T matrix.Element](tb testing.TB, rows [][]T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(tb, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt[T matrix.Element](tb testing.TB, m *matrix.Dense[T], i, j int) T {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// MustMul multiplies a×b with the given order or fails the test.
func MustMul[T matrix.Element](tb testing.TB, a, b *matrix.Dense[T], order matrix.LoopOrder) *matrix.Dense[T] {
	tb.Helper()
	res, err := matrix.Mul(a, b, order)
	require.NoError(tb, err)

	return res
}

// MustRandomInt32 draws an r×c int32 operand from a fixed seed.
func MustRandomInt32(tb testing.TB, seed int64, r, c int) *matrix.Dense[int32] {
	tb.Helper()
	m, err := matrix.RandomInt32(matrix.NewRand(seed), r, c)
	require.NoError(tb, err)

	return m
}

// MustRandomFloat64 draws an r×c float64 operand from a fixed seed.
func MustRandomFloat64(tb testing.TB, seed int64, r, c int) *matrix.Dense[float64] {
	tb.Helper()
	m, err := matrix.RandomFloat64(matrix.NewRand(seed), r, c)
	require.NoError(tb, err)

	return m
}

// requireAllZero asserts every cell of m is the zero value.
func requireAllZero[T matrix.Element](tb testing.TB, m *matrix.Dense[T]) {
	tb.Helper()
	m.Do(func(i, j int, v T) bool {
		require.Zerof(tb, v, "cell [%d,%d]", i, j)
		return true
	})
}
