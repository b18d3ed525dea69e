package gen_test

import (
	"go/parser"
	"go/token"
	"os"
	"strings"
	"testing"

	"github.com/katalvlaran/smallmat/gen"
	"github.com/stretchr/testify/require"
)

const repoConfig = `
package: smallmat
instances:
  - {type: float64, rows: 6, cols: 6, order: F, start_index: 1}
  - {type: float32, rows: 6, cols: 6, order: F, start_index: 1}
  - {type: float64, rows: 6, cols: 6, order: F, start_index: 1, const: true}
  - {type: float64, rows: 3, cols: 3, order: C, start_index: 0}
  - {type: float64, rows: 2, cols: 3, order: C, start_index: 0}
`

func TestParseConfigRejects(t *testing.T) {
	cases := map[string]string{
		"bad package":   "package: 1abc\ninstances: [{type: float64, rows: 1, cols: 1, order: F}]",
		"no instances":  "package: p\ninstances: []",
		"unknown key":   "package: p\ninstances: [{type: float64, rows: 1, cols: 1, order: F, colour: red}]",
		"bad type":      "package: p\ninstances: [{type: float16, rows: 1, cols: 1, order: F}]",
		"bad order":     "package: p\ninstances: [{type: float64, rows: 1, cols: 1, order: X}]",
		"zero rows":     "package: p\ninstances: [{type: float64, rows: 0, cols: 1, order: F}]",
		"too large":     "package: p\ninstances: [{type: float64, rows: 100, cols: 100, order: F}]",
		"not yaml list": "package: p\ninstances: 3",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := gen.ParseConfig([]byte(doc))
			require.ErrorIs(t, err, gen.ErrInvalidConfig)
		})
	}
}

func TestBuildExpandsTriplesAndTransposes(t *testing.T) {
	cfg, err := gen.ParseConfig([]byte(repoConfig))
	require.NoError(t, err)
	p, err := gen.Build(cfg)
	require.NoError(t, err)

	names := make([]string, 0, len(p.Types))
	for _, ty := range p.Types {
		names = append(names, ty.Name)
	}
	require.Equal(t, []string{
		"Matrix6x6FSI1Float64", "Matrix6x1FSI1Float64", "Matrix1x6FSI1Float64",
		"Matrix6x6FSI1Float32", "Matrix6x1FSI1Float32", "Matrix1x6FSI1Float32",
		"Matrix6x6FSI1Float64Const", "Matrix6x1FSI1Float64Const", "Matrix1x6FSI1Float64Const",
		"Matrix3x3CSI0Float64", "Matrix3x1FSI0Float64", "Matrix1x3FSI0Float64",
		"Matrix2x3CSI0Float64", "Matrix2x1FSI0Float64",
		"Matrix3x2CSI0Float64", "Matrix1x2FSI0Float64",
	}, names)

	m, ok := p.Lookup("Matrix6x6FSI1Float64")
	require.True(t, ok)
	require.Equal(t, "Matrix6x6FSI1Float64", m.Transpose)
	require.Equal(t, "Matrix6x1FSI1Float64", m.Column)
	require.Equal(t, "Matrix1x6FSI1Float64", m.Row)
	require.Equal(t, "Matrix6x6FSI1Float64Const", m.ConstTwin)

	row, _ := p.Lookup("Matrix1x6FSI1Float64")
	require.Equal(t, "Matrix6x6FSI1Float64", row.MulMat)
	require.Equal(t, "Matrix6x1FSI1Float64", row.Transpose)

	rect, _ := p.Lookup("Matrix2x3CSI0Float64")
	require.Empty(t, rect.Column) // not square: no cross-links
	require.Equal(t, "Matrix3x2CSI0Float64", rect.Transpose)

	shared, _ := p.Lookup("Matrix1x3FSI0Float64") // row of 3x3 and of 2x3, merged
	require.Equal(t, "Matrix3x3CSI0Float64", shared.MulMat)
}

func TestBuildRejectsAmbiguousRowVector(t *testing.T) {
	cfg, err := gen.ParseConfig([]byte(`
package: p
instances:
  - {type: float64, rows: 4, cols: 4, order: F, start_index: 0}
  - {type: float64, rows: 4, cols: 4, order: C, start_index: 0}
`))
	require.NoError(t, err)
	_, err = gen.Build(cfg)
	require.ErrorIs(t, err, gen.ErrInvalidConfig)
	require.ErrorContains(t, err, "Matrix1x4FSI0Float64 is the row vector of both")
}

func TestNegativeOriginName(t *testing.T) {
	cfg, err := gen.ParseConfig([]byte("package: p\ninstances: [{type: float32, rows: 3, cols: 1, order: F, start_index: -1, const: true}]"))
	require.NoError(t, err)
	p, err := gen.Build(cfg)
	require.NoError(t, err)
	require.Equal(t, "Matrix3x1FSIm1Float32Const", p.Types[0].Name)
}

func TestRenderProducesValidConditionalSource(t *testing.T) {
	cfg, err := gen.ParseConfig([]byte(repoConfig))
	require.NoError(t, err)
	src, err := gen.Generate(cfg)
	require.NoError(t, err)

	_, err = parser.ParseFile(token.NewFileSet(), "zz_generated.go", src, parser.AllErrors)
	require.NoError(t, err)

	code := string(src)
	require.Contains(t, code, "// Code generated by smallmatgen. DO NOT EDIT.")
	require.Contains(t, code, "func IdentityMatrix6x6FSI1Float64() Matrix6x6FSI1Float64")
	require.Contains(t, code, "func (m Matrix6x1FSI1Float64) Elem(k int) (float64, error)")
	require.Contains(t, code, "func (m Matrix1x6FSI1Float64) MulMat(o Matrix6x6FSI1Float64) Matrix1x6FSI1Float64")
	require.NotContains(t, code, "func IdentityMatrix2x3CSI0Float64")
	require.NotContains(t, code, "func (m Matrix2x3CSI0Float64) Elem(")
	require.NotContains(t, code, "func (m *Matrix6x6FSI1Float64Const) Set(")
	require.NotContains(t, code, "func (m *Matrix6x6FSI1Float64Const) TransposeInPlace(")
	require.True(t, strings.Contains(code, "var _ Matrix[float64] = (*Matrix6x6FSI1Float64Const)(nil)"))
}

// TestCheckedInOutputIsFresh guards against editing smallmat.yaml without
// re-running go generate.
func TestCheckedInOutputIsFresh(t *testing.T) {
	cfg, err := gen.LoadConfig("../smallmat.yaml")
	require.NoError(t, err)
	src, err := gen.Generate(cfg)
	require.NoError(t, err)
	onDisk, err := os.ReadFile("../zz_generated.go")
	require.NoError(t, err)
	require.Equal(t, string(onDisk), string(src))
}
