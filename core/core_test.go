package core_test

import (
	"testing"

	"github.com/katalvlaran/smallmat/core"
	"github.com/katalvlaran/smallmat/layout"
	"github.com/stretchr/testify/require"
)

// fromRows lays out logical rows into flat storage for layout l.
func fromRows(l layout.Layout, rows [][]float64) []float64 {
	out := make([]float64, l.Size())
	for i := range rows {
		for j := range rows[i] {
			out[l.At(i, j)] = rows[i][j]
		}
	}
	return out
}

// logical reads flat storage back into rows.
func logical(l layout.Layout, data []float64) [][]float64 {
	out := make([][]float64, l.Rows)
	for i := range out {
		out[i] = make([]float64, l.Cols)
		for j := range out[i] {
			out[i][j] = data[l.At(i, j)]
		}
	}
	return out
}

func TestElementwise(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{10, 20, 30, 40}
	dst := make([]float64, 4)

	core.Add(dst, a, b)
	require.Equal(t, []float64{11, 22, 33, 44}, dst)

	core.Sub(dst, dst, b) // aliasing allowed
	require.Equal(t, a, dst)

	core.Scale(dst, a, 2)
	require.Equal(t, []float64{2, 4, 6, 8}, dst)

	core.ScaleLeft(dst, -1, a)
	require.Equal(t, []float64{-1, -2, -3, -4}, dst)

	core.Neg(dst, dst)
	require.Equal(t, a, dst)

	require.Equal(t, 300.0, core.Dot(a, b))
	require.Equal(t, 10.0, core.Sum(a))
	require.Equal(t, 24.0, core.Product(a))
	require.Equal(t, 1.0, core.Product([]float64{}))

	core.Fill(dst, 2)
	require.Equal(t, []float64{2, 2, 2, 2}, dst)
	require.True(t, core.Equal(dst, []float64{2, 2, 2, 2}))
	require.False(t, core.Equal(dst, a))
}

func TestElementwiseLengthMismatchPanics(t *testing.T) {
	require.Panics(t, func() { core.Add(make([]float64, 2), make([]float64, 2), make([]float64, 3)) })
	require.Panics(t, func() { core.Dot(make([]float32, 2), make([]float32, 1)) })
}

func TestTransposeBothOrders(t *testing.T) {
	rows := [][]float64{{1, 2, 3}, {4, 5, 6}}
	for _, o := range []layout.Order{layout.RowMajor, layout.ColMajor} {
		sl := layout.Layout{Rows: 2, Cols: 3, Order: o, Origin: 1}
		dl := sl.Transposed()
		src := fromRows(sl, rows)
		dst := make([]float64, 6)
		core.Transpose(dst, dl, src, sl)
		require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, logical(dl, dst))

		back := make([]float64, 6)
		core.Transpose(back, sl, dst, dl)
		require.Equal(t, src, back) // involution
	}
}

func TestTransposeInPlace(t *testing.T) {
	l := layout.Layout{Rows: 3, Cols: 3, Order: layout.ColMajor}
	data := fromRows(l, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	core.TransposeInPlace(data, l)
	require.Equal(t, [][]float64{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}}, logical(l, data))

	require.Panics(t, func() {
		core.TransposeInPlace(make([]float64, 6), layout.Layout{Rows: 2, Cols: 3})
	})
}

func TestIdentityTrace(t *testing.T) {
	for n := 1; n <= 6; n++ {
		l := layout.Layout{Rows: n, Cols: n, Order: layout.RowMajor}
		data := make([]float64, n*n)
		core.Fill(data, 7)
		core.Identity(data, l)
		require.Equal(t, float64(n), core.Trace(data, l))
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j {
					require.Zero(t, data[l.At(i, j)])
				}
			}
		}
	}
}

func TestMatMulMixedOrders(t *testing.T) {
	aRows := [][]float64{{1, 2}, {3, 4}, {5, 6}}
	bRows := [][]float64{{7, 8, 9, 10}, {11, 12, 13, 14}}
	want := [][]float64{
		{29, 32, 35, 38},
		{65, 72, 79, 86},
		{101, 112, 123, 134},
	}
	orders := []layout.Order{layout.RowMajor, layout.ColMajor}
	for _, oa := range orders {
		for _, ob := range orders {
			for _, od := range orders {
				al := layout.Layout{Rows: 3, Cols: 2, Order: oa}
				bl := layout.Layout{Rows: 2, Cols: 4, Order: ob}
				dl := layout.Layout{Rows: 3, Cols: 4, Order: od}
				dst := make([]float64, 12)
				core.MatMul(dst, dl, fromRows(al, aRows), al, fromRows(bl, bRows), bl)
				require.Equal(t, want, logical(dl, dst))
			}
		}
	}
}

func TestMatMulNonConformingPanics(t *testing.T) {
	al := layout.Layout{Rows: 2, Cols: 3}
	bl := layout.Layout{Rows: 2, Cols: 3}
	dl := layout.Layout{Rows: 2, Cols: 3}
	require.Panics(t, func() {
		core.MatMul(make([]float64, 6), dl, make([]float64, 6), al, make([]float64, 6), bl)
	})
}

func TestFormat(t *testing.T) {
	l := layout.Layout{Rows: 2, Cols: 2, Order: layout.ColMajor}
	data := fromRows(l, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, "[1, 2]\n[3, 4]\n", core.Format(data, l))
}
