// SPDX-License-Identifier: MIT

package bench

import (
	"gonum.org/v1/gonum/mat"

	"github.com/matbench/matbench/matrix"
	"github.com/matbench/matbench/timing"
)

// otherOrder returns the loop order that was not timed.
func otherOrder(o matrix.LoopOrder) matrix.LoopOrder {
	if o == matrix.OrderJK {
		return matrix.OrderKJ
	}

	return matrix.OrderJK
}

// verifyInt32 recomputes a×b with the other loop order and requires exact equality.
func verifyInt32(a, b, got *matrix.Dense[int32], timed matrix.LoopOrder) (Check, error) {
	other := otherOrder(timed)
	want, err := matrix.Mul(a, b, other)
	if err != nil {
		return Check{}, err
	}
	ok, err := matrix.Equal(got, want)
	if err != nil {
		return Check{}, err
	}

	return Check{Kind: timing.KindInteger, Method: "order:" + other.String(), OK: ok}, nil
}

// verifyFloat64 compares got against gonum's mat.Dense product within relTol.
func verifyFloat64(a, b, got *matrix.Dense[float64], relTol float64) (Check, error) {
	want, err := gonumProduct(a, b)
	if err != nil {
		return Check{}, err
	}
	ok, err := matrix.EqualApprox(got, want, relTol)
	if err != nil {
		return Check{}, err
	}

	return Check{Kind: timing.KindDouble, Method: "gonum", OK: ok}, nil
}

// gonumProduct computes a×b with gonum and copies the result back into a Dense.
// The operand buffers are shared with gonum read-only.
func gonumProduct(a, b *matrix.Dense[float64]) (*matrix.Dense[float64], error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, err
	}
	ga := mat.NewDense(a.Rows(), a.Cols(), a.Data())
	gb := mat.NewDense(b.Rows(), b.Cols(), b.Data())

	var gc mat.Dense
	gc.Mul(ga, gb)

	out, err := matrix.NewDense[float64](a.Rows(), b.Cols())
	if err != nil {
		return nil, err
	}
	var i, j int
	data, cols := out.Data(), out.Cols()
	for i = 0; i < out.Rows(); i++ {
		for j = 0; j < cols; j++ {
			data[i*cols+j] = gc.At(i, j)
		}
	}

	return out, nil
}
