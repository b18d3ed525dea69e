// SPDX-License-Identifier: MIT

package gen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/smallmat/dtype"
	"github.com/katalvlaran/smallmat/layout"
)

// Shape identifies one generated type: element kind, layout and constness.
type Shape struct {
	Kind   dtype.Kind
	Layout layout.Layout
	Const  bool
}

// TypeName returns the Go type name, e.g. "Matrix6x6FSI1Float64" or
// "Matrix3x1FSIm1Float32Const" for a start index of -1.
func (s Shape) TypeName() string {
	origin := strconv.Itoa(s.Layout.Origin)
	if s.Layout.Origin < 0 {
		origin = "m" + strconv.Itoa(-s.Layout.Origin)
	}
	elem := s.Kind.String()
	name := fmt.Sprintf("Matrix%dx%d%sSI%s%s%s",
		s.Layout.Rows, s.Layout.Cols, s.Layout.Order, origin, strings.ToUpper(elem[:1]), elem[1:])
	if s.Const {
		name += "Const"
	}

	return name
}

// Transposed returns the shape of the transpose: extents swapped, order,
// origin, kind and constness kept.
func (s Shape) Transposed() Shape {
	s.Layout = s.Layout.Transposed()
	return s
}

// column and row return the companion vectors of s (always column-major).
func (s Shape) column() Shape {
	return Shape{Kind: s.Kind, Const: s.Const,
		Layout: layout.Layout{Rows: s.Layout.Rows, Cols: 1, Order: layout.ColMajor, Origin: s.Layout.Origin}}
}

func (s Shape) row() Shape {
	return Shape{Kind: s.Kind, Const: s.Const,
		Layout: layout.Layout{Rows: 1, Cols: s.Layout.Cols, Order: layout.ColMajor, Origin: s.Layout.Origin}}
}

// Type is a planned type with every name its template needs resolved.
type Type struct {
	Shape

	Name      string
	Transpose string // type returned by Transpose
	ConstTwin string // const variant with the same shape, if planned
	Column    string // companion column vector; square instances only
	Row       string // companion row vector; square instances only
	MulMat    string // square matrix this row vector multiplies; "" otherwise
}

// Plan is the ordered, deduplicated set of types to render.
type Plan struct {
	Package string
	Types   []*Type
}

// Lookup returns the planned type called name.
func (p *Plan) Lookup(name string) (*Type, bool) {
	for _, t := range p.Types {
		if t.Name == name {
			return t, true
		}
	}

	return nil, false
}

// Build expands cfg into a Plan.
// MAIN DESCRIPTION:
//   - Triples per instance, transpose closure, deduplication, cross-links.
//
// Implementation:
//   - Stage 1: for each instance in order add the matrix, its column vector and
//     its row vector unless already planned.
//   - Stage 2: walk the growing list and append every missing transpose.
//   - Stage 3: link square instances to their companions and const twins to
//     their mutable shapes.
//
// Errors:
//   - ErrInvalidConfig for invalid instances, or a row vector that two square
//     matrices would both link to.
//
// Determinism:
//   - Types appear in discovery order; identical configs render identically.
//
// Complexity:
//   - Time O(n^2) in the number of planned types (n is small), Space O(n).
func Build(cfg *Config) (*Plan, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := &Plan{Package: cfg.Package}
	index := make(map[Shape]*Type)
	add := func(s Shape) *Type {
		if t, ok := index[s]; ok {
			return t
		}
		t := &Type{Shape: s, Name: s.TypeName()}
		index[s] = t
		p.Types = append(p.Types, t)
		return t
	}

	var squares []*Type
	for _, in := range cfg.Instances {
		kind, l, _ := in.resolve()
		s := Shape{Kind: kind, Layout: l, Const: in.Const}
		m := add(s)
		col := add(s.column())
		row := add(s.row())
		if l.IsSquare() && m.Column == "" {
			m.Column, m.Row = col.Name, row.Name
			squares = append(squares, m)
		}
	}

	var i int
	for i = 0; i < len(p.Types); i++ { // p.Types grows while walking
		t := p.Types[i]
		t.Transpose = add(t.Transposed()).Name
	}

	for _, m := range squares {
		row := index[m.row()]
		if row.MulMat != "" && row.MulMat != m.Name {
			return nil, fmt.Errorf("gen: %s is the row vector of both %s and %s: %w",
				row.Name, row.MulMat, m.Name, ErrInvalidConfig)
		}
		row.MulMat = m.Name
	}
	for _, t := range p.Types {
		if t.Const {
			continue
		}
		twin := t.Shape
		twin.Const = true
		if c, ok := index[twin]; ok {
			t.ConstTwin = c.Name
		}
	}

	return p, nil
}
