package approx_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/smallmat/approx"
	"github.com/stretchr/testify/require"
)

func TestAlmostEqualFloat64(t *testing.T) {
	one := 1.0
	next := math.Nextafter(one, 2)
	far := one + 1e-9

	cases := []struct {
		name string
		x, y float64
		ulp  int
		want bool
	}{
		{"identical", 3.25, 3.25, 0, true},
		{"one ulp apart", one, next, 1, true},
		{"far apart", one, far, approx.DefaultULP, false},
		{"both tiny", 1e-310, -1e-310, 1, true},
		{"sign flip", 1, -1, 100, false},
		{"nan", math.NaN(), math.NaN(), 100, false},
		{"equal inf", math.Inf(1), math.Inf(1), 1, true},
		{"opposite inf", math.Inf(1), math.Inf(-1), 1, false},
		{"sum of tenths", 0.1 + 0.2, 0.3, 2, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, approx.AlmostEqual(tc.x, tc.y, tc.ulp))
		})
	}
}

func TestAlmostEqualFloat32UsesItsOwnEpsilon(t *testing.T) {
	x := float32(1)
	y := math.Nextafter32(x, 2)
	require.True(t, approx.AlmostEqual(x, y, 1))
	require.False(t, approx.AlmostEqual(x, x+1e-3, approx.DefaultULP))

	// a float64 gap this size is far beyond 2 ulp
	require.False(t, approx.Equal(1.0, 1.0+1e-7))
	require.True(t, approx.Equal(float32(1), float32(1)+1e-7))
}

func TestSliceEqual(t *testing.T) {
	require.True(t, approx.SliceEqual([]float64{0.1 + 0.2, 1}, []float64{0.3, 1}, 2))
	require.False(t, approx.SliceEqual([]float64{1}, []float64{1, 2}, 2))
	require.False(t, approx.SliceEqual([]float64{1, 2}, []float64{1, 2.1}, 2))
}
