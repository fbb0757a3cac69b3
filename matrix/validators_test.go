// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/matbench/matbench/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateMulCompatible covers nil inputs, compatible and mismatched inner dimensions.
func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	dense := func(r, c int) *matrix.Dense[float64] {
		m, err := matrix.NewDense[float64](r, c)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		a, b    *matrix.Dense[float64]
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, dense(2, 2), matrix.ErrNilMatrix},
		{"second nil", dense(2, 2), nil, matrix.ErrNilMatrix},
		{"2x3 * 3x5", dense(2, 3), dense(3, 5), nil},
		{"2x3 * 4x5", dense(2, 3), dense(4, 5), matrix.ErrDimensionMismatch},
		{"1x1 * 2x1", dense(1, 1), dense(2, 1), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateMulCompatible(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

func TestValidateShape(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateShape(1, 1))
	require.ErrorIs(t, matrix.ValidateShape(0, 1), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, matrix.ValidateShape(1, -2), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, matrix.ValidateShape(math.MaxInt, 2), matrix.ErrTooLarge)
	require.NoError(t, matrix.ValidateShape(math.MaxInt, 1))
}

func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateNotNil[int32](nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(MustDense[int32](t, 1, 1)))
}
