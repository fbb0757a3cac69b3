// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the generator, the multiplier and callers.
// This file intentionally contains ONLY domain-facing types (element
// constraint, benchmark dimensions). Errors live in errors.go, storage in dense.go.
package matrix

import (
	"fmt"
	"math"
)

// Element is the set of numeric element types a Dense may hold.
// int32 arithmetic wraps on overflow (fixed-width), float64 follows IEEE-754.
type Element interface {
	~int32 | ~float64
}

// Dims describes the three benchmark dimensions of a product A×B:
// A is RowsA×ColsA, B is ColsA×ColsB (RowsB == ColsA by construction),
// and the result is RowsA×ColsB.
type Dims struct {
	RowsA int // rows of A and of the result
	ColsA int // columns of A == rows of B (contraction length)
	ColsB int // columns of B and of the result
}

// Default benchmark dimensions reproduce the reference timing run.
const (
	DefaultRowsA = 1500
	DefaultColsA = 1300
	DefaultColsB = 1000
)

// DefaultDims returns the reference 1500×1300×1000 dimensions.
// Complexity: O(1).
func DefaultDims() Dims {
	return Dims{RowsA: DefaultRowsA, ColsA: DefaultColsA, ColsB: DefaultColsB}
}

// Validate reports ErrInvalidDimensions when any dimension is non-positive and
// ErrTooLarge when A, B or the result would hold more than math.MaxInt elements.
// Complexity: O(1).
func (d Dims) Validate() error {
	if d.RowsA <= 0 || d.ColsA <= 0 || d.ColsB <= 0 {
		return fmt.Errorf("Dims(%d,%d,%d): %w", d.RowsA, d.ColsA, d.ColsB, ErrInvalidDimensions)
	}
	if !fitsInt(d.RowsA, d.ColsA) || !fitsInt(d.ColsA, d.ColsB) || !fitsInt(d.RowsA, d.ColsB) {
		return fmt.Errorf("Dims(%d,%d,%d): %w", d.RowsA, d.ColsA, d.ColsB, ErrTooLarge)
	}

	return nil
}

// fitsInt reports whether rows*cols is representable as an int; both must be > 0.
func fitsInt(rows, cols int) bool {
	return cols <= math.MaxInt/rows
}

// MulAdds returns the number of multiply-add steps of the naive product,
// RowsA*ColsA*ColsB, independent of loop order.
// Complexity: O(1).
func (d Dims) MulAdds() int64 {
	return int64(d.RowsA) * int64(d.ColsA) * int64(d.ColsB)
}

// String renders "RowsA×ColsA·ColsA×ColsB" for diagnostics.
func (d Dims) String() string {
	return fmt.Sprintf("%dx%d*%dx%d", d.RowsA, d.ColsA, d.ColsA, d.ColsB)
}
