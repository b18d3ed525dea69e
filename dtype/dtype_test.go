package dtype_test

import (
	"testing"

	"github.com/katalvlaran/smallmat/dtype"
	"github.com/stretchr/testify/require"
)

type meters float64

func TestKindOf(t *testing.T) {
	require.Equal(t, dtype.Float32, dtype.KindOf[float32]())
	require.Equal(t, dtype.Float64, dtype.KindOf[float64]())
	require.Equal(t, dtype.Float64, dtype.KindOf[meters]())
}

func TestKindSizeAndString(t *testing.T) {
	require.Equal(t, 4, dtype.Float32.Size())
	require.Equal(t, 8, dtype.Float64.Size())
	require.Equal(t, 0, dtype.Invalid.Size())
	require.Equal(t, "float32", dtype.Float32.String())
	require.Equal(t, "float64", dtype.Float64.String())
	require.Equal(t, "invalid", dtype.Invalid.String())
}

func TestTypeStr(t *testing.T) {
	f8 := dtype.TypeStr[float64]()
	f4 := dtype.TypeStr[float32]()
	require.Len(t, f8, 3)
	require.Contains(t, "<>", f8[:1]) // byte order marker
	require.Equal(t, "f8", f8[1:])
	require.Equal(t, "f4", f4[1:])
	require.Equal(t, f8[:1], f4[:1]) // same host order
	require.Empty(t, dtype.Invalid.TypeStr())
	require.Equal(t, 8, dtype.SizeOf[float64]())
}

func TestParse(t *testing.T) {
	k, err := dtype.Parse("float32")
	require.NoError(t, err)
	require.Equal(t, dtype.Float32, k)

	k, err = dtype.Parse("float64")
	require.NoError(t, err)
	require.Equal(t, dtype.Float64, k)

	_, err = dtype.Parse("longdouble")
	require.Error(t, err)
}
