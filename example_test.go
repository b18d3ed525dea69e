package smallmat_test

import (
	"fmt"

	"github.com/katalvlaran/smallmat"
	"github.com/katalvlaran/smallmat/interchange"
)

// ExampleMatrix6x6FSI1Float64 shows 1-based access and the scenario of a
// diagonal edit followed by a transpose.
func ExampleMatrix6x6FSI1Float64() {
	m := smallmat.NewMatrix6x6FSI1Float64()
	_ = m.Set(1, 1, 2)
	_ = m.Set(6, 6, 3)
	v, _ := m.Transpose().At(1, 1)
	fmt.Println(m.Trace(), v)

	_, err := m.At(0, 0)
	fmt.Println(err)
	// Output:
	// 5 2
	// Layout.Offset(0,0): layout: index out of range
}

// ExampleMatrix3x3CSI0Float64_ArrayInterface prints the descriptor a host
// consumer receives for a row-major type.
func ExampleMatrix3x3CSI0Float64_ArrayInterface() {
	m := smallmat.IdentityMatrix3x3CSI0Float64()
	ai := m.ArrayInterface()
	fmt.Println(ai.Shape, ai.Strides, ai.TypeStr, ai.Version, ai.Writable)

	rows, _ := interchange.Gather[float64](ai)
	fmt.Println(rows)
	// Output:
	// [3 3] [24 8] <f8 3 true
	// [[1 0 0] [0 1 0] [0 0 1]]
}

// ExampleMatrix6x1FSI1Float64 builds a column vector from a 1-D buffer.
func ExampleMatrix6x1FSI1Float64() {
	v, err := smallmat.NewMatrix6x1FSI1Float64FromBuffer(
		interchange.NewBuffer([]float64{1, 2, 3, 4, 5, 6}, 1))
	if err != nil {
		fmt.Println(err)
		return
	}
	first, _ := v.Elem(1)
	last, _ := v.Elem(6)
	fmt.Println(v.Sum(), first, last)
	fmt.Print(v.Transpose())
	// Output:
	// 21 1 6
	// [1, 2, 3, 4, 5, 6]
}
