package interchange_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/smallmat/dtype"
	"github.com/katalvlaran/smallmat/interchange"
	"github.com/katalvlaran/smallmat/layout"
	"github.com/stretchr/testify/require"
)

var (
	cm23 = layout.Layout{Rows: 2, Cols: 3, Order: layout.ColMajor, Origin: 1}
	rm23 = layout.Layout{Rows: 2, Cols: 3, Order: layout.RowMajor, Origin: 0}
	cv6  = layout.Layout{Rows: 6, Cols: 1, Order: layout.ColMajor, Origin: 1}
)

// TestCopyIntoPreservesSourceOrder checks raw copy without transposition.
func TestCopyIntoPreservesSourceOrder(t *testing.T) {
	src := []float64{1, 2, 3, 4, 5, 6}
	dst := make([]float64, 6)
	require.NoError(t, interchange.CopyInto(dst, cm23, interchange.NewBuffer(src, 2)))
	require.Equal(t, src, dst)

	src[0] = 100 // the copy owns its storage
	require.Equal(t, 1.0, dst[0])
}

// TestCopyIntoValidationOrder checks each failure and that they are reported in order.
func TestCopyIntoValidationOrder(t *testing.T) {
	dst := []float64{9, 9, 9, 9, 9, 9}

	// dimensionality wins over size and type
	err := interchange.CopyInto(dst, cm23, interchange.NewBuffer([]float32{1, 2}, 1))
	require.ErrorIs(t, err, interchange.ErrDimensionMismatch)
	require.ErrorContains(t, err, "want 2D, got 1D")

	// size wins over type
	err = interchange.CopyInto(dst, cm23, interchange.NewBuffer([]float32{1, 2}, 2))
	require.ErrorIs(t, err, interchange.ErrSizeMismatch)
	require.ErrorContains(t, err, "want 6 elements, got 2")

	err = interchange.CopyInto(dst, cm23, interchange.NewBuffer([]float32{1, 2, 3, 4, 5, 6}, 2))
	require.ErrorIs(t, err, interchange.ErrTypeMismatch)

	err = interchange.CopyInto(dst, cm23, interchange.Buffer{NDim: 2, Len: 6, TypeStr: dtype.TypeStr[float64]()})
	require.ErrorIs(t, err, interchange.ErrNilData)

	require.Equal(t, []float64{9, 9, 9, 9, 9, 9}, dst) // never partially written
}

// TestNewBufferLenMatchesSlice checks the safe constructor never overstates Len.
func TestNewBufferLenMatchesSlice(t *testing.T) {
	src := make([]float64, 2, 16)
	buf := interchange.NewBuffer(src, 2)
	require.Equal(t, 2, buf.Len) // length, not capacity
	dst := make([]float64, 6)
	err := interchange.CopyInto(dst, cm23, buf)
	require.ErrorIs(t, err, interchange.ErrSizeMismatch)

	empty := interchange.NewBuffer([]float64(nil), 2)
	require.Equal(t, 0, empty.Len)
	require.Nil(t, empty.Data)
}

// TestCopyIntoVectorIs1D checks vector targets demand 1-D buffers.
func TestCopyIntoVectorIs1D(t *testing.T) {
	dst := make([]float64, 6)
	err := interchange.CopyInto(dst, cv6, interchange.NewBuffer([]float64{1, 2, 3, 4, 5, 6}, 2))
	require.ErrorIs(t, err, interchange.ErrDimensionMismatch)

	require.NoError(t, interchange.CopyInto(dst, cv6, interchange.NewBuffer([]float64{1, 2, 3, 4, 5, 6}, 1)))
	require.Equal(t, 21.0, dst[0]+dst[1]+dst[2]+dst[3]+dst[4]+dst[5])
}

// TestArrayInterfaceFields checks shape/stride/type/version for both orders.
func TestArrayInterfaceFields(t *testing.T) {
	data := make([]float64, 6)

	ai := interchange.NewArrayInterface(&data[0], cm23)
	require.Equal(t, [2]int{2, 3}, ai.Shape)
	require.Equal(t, [2]int{8, 16}, ai.Strides)
	require.Equal(t, dtype.TypeStr[float64](), ai.TypeStr)
	require.Equal(t, 3, ai.Version)
	require.True(t, ai.Writable)
	require.False(t, ai.ReadOnly())
	require.Equal(t, 6, ai.Len())

	ai = interchange.NewArrayInterface(&data[0], rm23)
	require.Equal(t, [2]int{2, 3}, ai.Shape) // normalized regardless of order
	require.Equal(t, [2]int{24, 8}, ai.Strides)

	f32 := make([]float32, 6)
	ai = interchange.NewArrayInterface(&f32[0], cm23)
	require.Equal(t, [2]int{4, 8}, ai.Strides)
}

// TestGatherMatchesLogicalLayout is the descriptor consistency property for both orders.
func TestGatherMatchesLogicalLayout(t *testing.T) {
	want := [][]float64{{1, 2, 3}, {4, 5, 6}}
	for _, l := range []layout.Layout{cm23, rm23} {
		data := make([]float64, l.Size())
		for i := range want {
			for j := range want[i] {
				data[l.At(i, j)] = want[i][j]
			}
		}
		got, err := interchange.Gather[float64](interchange.NewArrayInterface(&data[0], l))
		require.NoError(t, err)
		require.Equal(t, want, got, "order %s", l.Order)
	}
}

// TestDescriptorIsABorrowedView checks the descriptor aliases, not copies.
func TestDescriptorIsABorrowedView(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	ai := interchange.NewArrayInterface(&data[0], rm23)
	data[5] = 60
	got, err := interchange.Gather[float64](ai)
	require.NoError(t, err)
	require.Equal(t, 60.0, got[1][2])
}

// TestGatherTypeMismatch ensures a wrong element type is rejected.
func TestGatherTypeMismatch(t *testing.T) {
	data := make([]float64, 6)
	_, err := interchange.Gather[float32](interchange.NewArrayInterface(&data[0], rm23))
	require.ErrorIs(t, err, interchange.ErrTypeMismatch)

	_, err = interchange.Gather[float64](interchange.ArrayInterface{TypeStr: dtype.TypeStr[float64]()})
	require.ErrorIs(t, err, interchange.ErrNilData)
}

// TestDescriptorBufferRoundTrip rebuilds storage from a descriptor.
func TestDescriptorBufferRoundTrip(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	buf := interchange.NewArrayInterface(&data[0], cm23).Buffer()
	require.Equal(t, 2, buf.NDim)
	require.Equal(t, 6, buf.Len)

	dst := make([]float64, 6)
	require.NoError(t, interchange.CopyInto(dst, cm23, buf))
	require.Equal(t, data, dst)
}

// TestMapAndJSON checks the rendered dictionary of both descriptors.
func TestMapAndJSON(t *testing.T) {
	data := make([]float64, 6)
	ai := interchange.NewArrayInterface(&data[0], rm23)
	m := ai.Map()
	require.Equal(t, []any{ai.Addr(), false}, m["data"])
	require.Equal(t, []int{2, 3}, m["shape"])
	require.Equal(t, []int{24, 8}, m["strides"])
	require.Equal(t, 3, m["version"])

	cai := interchange.NewCUDAArrayInterface(&data[0], rm23)
	require.True(t, cai.Stream.IsNone())
	cm := cai.Map()
	v, ok := cm["stream"]
	require.True(t, ok)
	require.Nil(t, v)

	raw, err := json.Marshal(cai)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	require.Contains(t, doc, "stream")
	require.Nil(t, doc["stream"])
	require.Equal(t, 3.0, doc["version"])
	require.Equal(t, []any{2.0, 3.0}, doc["shape"])
}

// TestStreamContract checks the token rules reserved for future device support.
func TestStreamContract(t *testing.T) {
	_, err := interchange.NewStream(0)
	require.ErrorIs(t, err, interchange.ErrInvalidStream)

	s, err := interchange.NewStream(interchange.PerThreadDefaultStream)
	require.NoError(t, err)
	h, ok := s.Handle()
	require.True(t, ok)
	require.Equal(t, int64(2), h)
	require.False(t, s.IsNone())

	data := make([]float64, 6)
	cai := interchange.NewCUDAArrayInterface(&data[0], rm23).WithStream(s)
	require.Equal(t, int64(2), cai.Map()["stream"])

	_, ok = interchange.NoStream.Handle()
	require.False(t, ok)
}
