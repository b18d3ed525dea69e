package dense_test

import (
	"testing"

	"github.com/katalvlaran/smallmat/dense"
	"github.com/katalvlaran/smallmat/interchange"
	"github.com/katalvlaran/smallmat/layout"
	"github.com/stretchr/testify/require"
)

func TestNewDenseValidation(t *testing.T) {
	_, err := dense.NewDense[float64](0, 3)
	require.ErrorIs(t, err, dense.ErrInvalidDimensions)
	_, err = dense.NewDense[float64](3, -1)
	require.ErrorIs(t, err, dense.ErrInvalidDimensions)

	m, err := dense.NewDense[float32](2, 3)
	require.NoError(t, err)
	r, c := m.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 6, m.Len())
	require.Equal(t, make([]float32, 6), m.Raw())
}

func TestFromRowsAndSlice(t *testing.T) {
	m, err := dense.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.Raw())
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m.Rows2D())

	_, err = dense.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, dense.ErrInvalidDimensions)
	_, err = dense.FromRows[float64](nil)
	require.ErrorIs(t, err, dense.ErrInvalidDimensions)

	src := []float64{1, 2, 3, 4}
	s, err := dense.FromSlice(2, 2, src)
	require.NoError(t, err)
	src[0] = 99
	v, err := s.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	_, err = dense.FromSlice(2, 3, src)
	require.ErrorIs(t, err, dense.ErrInvalidDimensions)
}

func TestAtSetBounds(t *testing.T) {
	m, err := dense.NewDense[float64](2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 0, 7))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)

	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err = m.At(rc[0], rc[1])
		require.ErrorIs(t, err, dense.ErrOutOfRange)
		err = m.Set(rc[0], rc[1], 1)
		require.ErrorIs(t, err, dense.ErrOutOfRange)
	}
	require.Equal(t, []float64{0, 0, 7, 0}, m.Raw())
	_, err = m.At(2, 0)
	require.ErrorContains(t, err, "Dense.At(2,0)")
}

func TestCloneIsDeep(t *testing.T) {
	m, _ := dense.FromRows([][]float64{{1, 2}, {3, 4}}, dense.WithPartition(1, 2))
	cp := m.Clone()
	require.True(t, m.Equal(cp))
	require.NoError(t, cp.Set(0, 0, 10))
	require.False(t, m.Equal(cp))
	pr, pc := cp.Partition()
	require.Equal(t, 1, pr)
	require.Equal(t, 2, pc)
}

func TestPartitionAndBlocks(t *testing.T) {
	m, err := dense.FromSlice(3, 4, []float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
	}, dense.WithPartition(2, 3))
	require.NoError(t, err)
	br, bc := m.Blocks()
	require.Equal(t, 2, br)
	require.Equal(t, 2, bc)

	b, err := m.Block(0, 0)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2, 3}, {5, 6, 7}}, b.Rows2D())

	b, err = m.Block(1, 1) // trailing tile is clipped
	require.NoError(t, err)
	require.Equal(t, [][]float64{{12}}, b.Rows2D())

	_, err = m.Block(2, 0)
	require.ErrorIs(t, err, dense.ErrOutOfRange)

	whole, _ := dense.NewDense[float64](3, 4)
	pr, pc := whole.Partition()
	require.Equal(t, 3, pr)
	require.Equal(t, 4, pc)

	big, _ := dense.NewDense[float64](3, 4, dense.WithPartition(10, 10))
	pr, pc = big.Partition()
	require.Equal(t, 3, pr)
	require.Equal(t, 4, pc)

	require.Panics(t, func() { dense.WithPartition(-1, 1) })
}

func TestBufferAndDescriptor(t *testing.T) {
	m, _ := dense.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	buf := m.Buffer()
	require.Equal(t, 2, buf.NDim)
	require.Equal(t, 6, buf.Len)

	rm := layout.Layout{Rows: 2, Cols: 3, Order: layout.RowMajor}
	dst := make([]float64, 6)
	require.NoError(t, interchange.CopyInto(dst, rm, buf))
	require.Equal(t, m.Raw(), dst)

	rows, err := interchange.Gather[float64](m.ArrayInterface())
	require.NoError(t, err)
	require.Equal(t, m.Rows2D(), rows)

	v, _ := dense.FromSlice(1, 4, []float64{1, 2, 3, 4})
	require.Equal(t, 1, v.Buffer().NDim)
}

func TestString(t *testing.T) {
	m, _ := dense.FromRows([][]float64{{1, 2.5}, {-3, 4}})
	require.Equal(t, "[1, 2.5]\n[-3, 4]\n", m.String())
}
