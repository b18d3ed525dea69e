// SPDX-License-Identifier: MIT

package gen

import (
	"bytes"
	_ "embed"
	"fmt"
	"go/format"
	"text/template"

	"github.com/katalvlaran/smallmat/layout"
)

//go:embed templates/types.go.tmpl
var typesTemplate string

var tmpl = template.Must(template.New("types").Parse(typesTemplate))

// Render executes the type template over p and gofmt-formats the result.
// On a formatting failure the unformatted source is returned with the error.
func Render(p *Plan) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "file", p); err != nil {
		return nil, fmt.Errorf("gen.Render: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return buf.Bytes(), fmt.Errorf("gen.Render: format: %w", err)
	}

	return src, nil
}

// Generate is Build followed by Render.
func Generate(cfg *Config) ([]byte, error) {
	p, err := Build(cfg)
	if err != nil {
		return nil, err
	}

	return Render(p)
}

// ---------- template accessors ----------

// Elem is the Go element type.
func (t *Type) Elem() string { return t.Kind.String() }

// Rows is the row extent.
func (t *Type) Rows() int { return t.Layout.Rows }

// Cols is the column extent.
func (t *Type) Cols() int { return t.Layout.Cols }

// Size is Rows*Cols.
func (t *Type) Size() int { return t.Layout.Size() }

// Origin is the start index.
func (t *Type) Origin() int { return t.Layout.Origin }

// Square reports Rows == Cols.
func (t *Type) Square() bool { return t.Layout.IsSquare() }

// Vector reports a single row or column.
func (t *Type) Vector() bool { return t.Layout.IsVector() }

// Noun names the kind of value in doc comments.
func (t *Type) Noun() string {
	switch {
	case t.Layout.Cols == 1:
		return "column vector"
	case t.Layout.Rows == 1:
		return "row vector"
	default:
		return "matrix"
	}
}

// OrderConst is the layout.Order constant spelled in Go.
func (t *Type) OrderConst() string {
	if t.Layout.Order == layout.RowMajor {
		return "layout.RowMajor"
	}

	return "layout.ColMajor"
}

// OrderWord spells the order in doc comments.
func (t *Type) OrderWord() string {
	if t.Layout.Order == layout.RowMajor {
		return "row-major (C)"
	}

	return "column-major (F)"
}

// LayoutVar is the package-level variable holding the type's layout.
func (t *Type) LayoutVar() string { return "layout" + t.Name }

// Iface is the interface the type satisfies: Matrix for const types, Mutable otherwise.
func (t *Type) Iface() string {
	if t.Const {
		return "Matrix"
	}

	return "Mutable"
}
