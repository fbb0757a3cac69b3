// SPDX-License-Identifier: MIT
// Package matrix - naive dense multiplication with a selectable loop order.
//
// Purpose:
//   - Compute Result = A × B with the textbook triple loop.
//   - Keep two separate, separately timeable kernels (mulJK, mulKJ) behind one entry point.
//
// Determinism & Policy:
//   - Both kernels accumulate Result[i][j] over k in ascending order.
//   - int32 arithmetic is fixed-width and wraps on overflow; both orders agree bit for bit.
//   - float64 results of the two orders are compared within a relative tolerance.
//   - No zero-skipping, blocking or unrolling: the kernels are the baseline being measured.
//
// AI-Hints:
//   - Storage is row-major (offset i*c + j), so OrderKJ streams B and Result with stride 1
//     in the innermost loop while OrderJK strides B by B.cols.

package matrix

import "fmt"

// Operation tags (kept as constants for grep-ability).
const (
	opMul = "Mul"
)

// matrixErrorf wraps err with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the dense product a × b computed with the given loop order.
// MAIN DESCRIPTION:
//   - Result has shape a.Rows() × b.Cols(); Result[i][j] = Σ_k a[i][k]*b[k][j].
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); reject unknown orders.
//   - Stage 2: allocate a zeroed result.
//   - Stage 3: dispatch to mulJK or mulKJ.
//
// Behavior highlights:
//   - Operands are never mutated.
//   - Either completes fully or returns an error without a partial result.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrUnknownLoopOrder (all wrapped with "Mul").
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T Element](a, b *Dense[T], order LoopOrder) (*Dense[T], error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if !order.Valid() {
		return nil, matrixErrorf(opMul, fmt.Errorf("%v: %w", order, ErrUnknownLoopOrder))
	}

	// Allocate result Dense
	res, err := NewDense[T](a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	switch order {
	case OrderKJ:
		mulKJ(res.data, a.data, b.data, a.r, a.c, b.c)
	default:
		mulJK(res.data, a.data, b.data, a.r, a.c, b.c)
	}

	return res, nil
}

// mulJK is the i → j → k kernel.
// res is rows×cols, a is rows×inner, b is inner×cols; all row-major, res zeroed.
// The innermost loop reads b with stride cols.
func mulJK[T Element](res, a, b []T, rows, inner, cols int) {
	var (
		i, j, k                    int // loop iterators
		rowOffsetA, rowOffsetR, at int
	)
	for i = 0; i < rows; i++ {
		rowOffsetA = i * inner
		rowOffsetR = i * cols
		for j = 0; j < cols; j++ {
			at = rowOffsetR + j
			for k = 0; k < inner; k++ {
				res[at] += a[rowOffsetA+k] * b[k*cols+j]
			}
		}
	}
}

// mulKJ is the i → k → j kernel.
// Same contract as mulJK; the innermost loop reads b and writes res with stride 1.
func mulKJ[T Element](res, a, b []T, rows, inner, cols int) {
	var (
		i, j, k                            int // loop iterators
		rowOffsetA, rowOffsetB, rowOffsetR int
		av                                 T
	)
	for i = 0; i < rows; i++ {
		rowOffsetA = i * inner
		rowOffsetR = i * cols
		for k = 0; k < inner; k++ {
			av = a[rowOffsetA+k]
			rowOffsetB = k * cols
			for j = 0; j < cols; j++ {
				res[rowOffsetR+j] += av * b[rowOffsetB+j]
			}
		}
	}
}
