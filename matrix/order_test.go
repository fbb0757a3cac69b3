// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/matbench/matbench/matrix"
	"github.com/stretchr/testify/require"
)

func TestParseLoopOrder(t *testing.T) {
	tests := []struct {
		in      string
		want    matrix.LoopOrder
		wantErr error
	}{
		{"jk", matrix.OrderJK, nil},
		{"IJK", matrix.OrderJK, nil},
		{" kj ", matrix.OrderKJ, nil},
		{"ikj", matrix.OrderKJ, nil},
		{"jik", 0, matrix.ErrUnknownLoopOrder},
		{"", 0, matrix.ErrUnknownLoopOrder},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := matrix.ParseLoopOrder(tc.in)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestLoopOrderStringAndValue(t *testing.T) {
	require.Equal(t, "jk", matrix.OrderJK.String())
	require.Equal(t, "kj", matrix.OrderKJ.String())
	require.Equal(t, "LoopOrder(9)", matrix.LoopOrder(9).String())
	require.False(t, matrix.LoopOrder(9).Valid())
	require.Equal(t, []matrix.LoopOrder{matrix.OrderJK, matrix.OrderKJ}, matrix.Orders())

	var o matrix.LoopOrder
	require.NoError(t, o.Set("kj"))
	require.Equal(t, matrix.OrderKJ, o)
	require.ErrorIs(t, o.Set("xyz"), matrix.ErrUnknownLoopOrder)
	require.Equal(t, matrix.OrderKJ, o)
	require.Equal(t, "order", o.Type())
}

func TestDims(t *testing.T) {
	d := matrix.DefaultDims()
	require.Equal(t, matrix.Dims{RowsA: 1500, ColsA: 1300, ColsB: 1000}, d)
	require.NoError(t, d.Validate())
	require.Equal(t, int64(1500*1300*1000), d.MulAdds())
	require.Equal(t, "1500x1300*1300x1000", d.String())

	for _, bad := range []matrix.Dims{
		{RowsA: 0, ColsA: 1, ColsB: 1},
		{RowsA: 1, ColsA: -1, ColsB: 1},
		{RowsA: 1, ColsA: 1, ColsB: 0},
	} {
		require.ErrorIs(t, bad.Validate(), matrix.ErrInvalidDimensions)
	}

	for _, huge := range []matrix.Dims{
		{RowsA: math.MaxInt, ColsA: 2, ColsB: 1},
		{RowsA: 1, ColsA: 2, ColsB: math.MaxInt},
		{RowsA: math.MaxInt / 2, ColsA: 1, ColsB: 4},
	} {
		require.ErrorIs(t, huge.Validate(), matrix.ErrTooLarge)
	}
}
