// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites add context with
// fmt.Errorf("ctx: %w", ErrX); callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> invalid dimensions -> too large -> dimension mismatch -> loop order.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	// Generators and constructors validate before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrTooLarge indicates positive dimensions whose element count rows*cols
	// does not fit in an int, so no backing buffer can be allocated.
	ErrTooLarge = errors.New("matrix: dimensions overflow int")

	// ErrDimensionMismatch indicates incompatible operands, i.e. Mul where a.Cols != b.Rows,
	// or an equality check between matrices of different shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilRand indicates that a generator was called without a random source.
	ErrNilRand = errors.New("matrix: nil random source")

	// ErrUnknownLoopOrder indicates a LoopOrder outside {OrderJK, OrderKJ}.
	ErrUnknownLoopOrder = errors.New("matrix: unknown loop order")

	// ErrRaggedRows indicates that FromRows received rows of unequal length.
	ErrRaggedRows = errors.New("matrix: rows have unequal length")
)
