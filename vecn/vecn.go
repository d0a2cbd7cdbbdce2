// Copyright 2026 The pointpack (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package vecn provides small fixed-arity numeric tuples used
// throughout pointpack: Vec for floating-point coordinates and Cell
// for integer grid coordinates.
//
// A Vec's arity is fixed by construction. Mixing arities in a binary
// operation is a programmer error and panics. Elementwise kernels are
// delegated to gonum's floats package.
package vecn

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// A Vec is an N-dimensional coordinate tuple. Arithmetic methods
// mutate the receiver in place and return it to allow chaining;
// use Clone first when the original value must survive.
type Vec []float64

// New constructs a Vec from its components.
func New(values ...float64) Vec {
	v := make(Vec, len(values))
	copy(v, values)
	return v
}

// Zero returns the origin of the given dimension.
func Zero(dim int) Vec {
	return make(Vec, dim)
}

// Repeat returns a Vec with every component equal to x.
func Repeat(x float64, dim int) Vec {
	v := make(Vec, dim)
	for i := range v {
		v[i] = x
	}
	return v
}

// Dim returns the vector's arity.
func (v Vec) Dim() int {
	return len(v)
}

// Clone returns an independent copy of v.
func (v Vec) Clone() Vec {
	w := make(Vec, len(v))
	copy(w, v)
	return w
}

// CopyFrom overwrites v's components with w's.
func (v Vec) CopyFrom(w Vec) Vec {
	v.checkDim(w)
	copy(v, w)
	return v
}

// Add adds w to v in place.
func (v Vec) Add(w Vec) Vec {
	v.checkDim(w)
	floats.Add(v, w)
	return v
}

// Sub subtracts w from v in place.
func (v Vec) Sub(w Vec) Vec {
	v.checkDim(w)
	floats.Sub(v, w)
	return v
}

// AddScaled adds alpha*w to v in place.
func (v Vec) AddScaled(alpha float64, w Vec) Vec {
	v.checkDim(w)
	floats.AddScaled(v, alpha, w)
	return v
}

// Scale multiplies every component of v by alpha in place.
func (v Vec) Scale(alpha float64) Vec {
	floats.Scale(alpha, v)
	return v
}

// Dot returns the inner product of v and w.
func (v Vec) Dot(w Vec) float64 {
	v.checkDim(w)
	return floats.Dot(v, w)
}

// Norm returns the Euclidean length of v.
func (v Vec) Norm() float64 {
	return floats.Norm(v, 2)
}

// Norm2 returns the squared Euclidean length of v.
func (v Vec) Norm2() float64 {
	return floats.Dot(v, v)
}

// Distance returns the Euclidean distance between v and w.
func (v Vec) Distance(w Vec) float64 {
	v.checkDim(w)
	return floats.Distance(v, w, 2)
}

// Normalize scales v to unit length in place. The zero vector is left
// unchanged, since it has no direction. Components are divided by the
// norm directly rather than multiplied by its reciprocal, which is one
// rounding step tighter: a 3-4-5 vector normalizes to exactly
// (0.6, 0.8).
func (v Vec) Normalize() Vec {
	n := v.Norm()
	if n != 0 {
		for i := range v {
			v[i] /= n
		}
	}
	return v
}

// Equal reports whether v and w have the same arity and identical
// components.
func (v Vec) Equal(w Vec) bool {
	return floats.Equal(v, w)
}

// String formats v as a parenthesized component list.
func (v Vec) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, x := range v {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%g", x)
	}
	sb.WriteByte(')')
	return sb.String()
}

func (v Vec) checkDim(w Vec) {
	if len(v) != len(w) {
		fmtPanic("dimension mismatch: %d != %d", len(v), len(w))
	}
}

// A Cell is an N-dimensional integer grid coordinate.
type Cell []int

// Clone returns an independent copy of c.
func (c Cell) Clone() Cell {
	d := make(Cell, len(c))
	copy(d, c)
	return d
}

// Equal reports whether c and d have the same arity and identical
// components.
func (c Cell) Equal(d Cell) bool {
	if len(c) != len(d) {
		return false
	}
	for i := range c {
		if c[i] != d[i] {
			return false
		}
	}
	return true
}
