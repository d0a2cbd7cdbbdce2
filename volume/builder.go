// Copyright 2026 The pointpack (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package volume

import "github.com/packlab/pointpack/vecn"

// A Builder accumulates polygon loops and produces a validated Polygon
// at Build. Builder methods are value methods returning a derived
// Builder, so intermediate values never alias: each step copies the
// loop it adds and the zero Builder is ready to use.
//
//	pg, err := volume.Build().
//		OuterRect(vecn.New(100, 100), vecn.New(30, 30)).
//		HoleRect(vecn.New(100, 100), vecn.New(10, 10)).
//		Build()
type Builder struct {
	outer []vecn.Vec
	holes [][]vecn.Vec
}

// Build returns an empty Builder.
func Build() Builder {
	return Builder{}
}

// Outer sets the outer boundary loop, replacing any previous one.
func (b Builder) Outer(vertices ...vecn.Vec) Builder {
	b.outer = cloneLoop(vertices)
	return b
}

// OuterRect sets the outer boundary to an axis-aligned rectangle of
// the given half-size centered on center.
func (b Builder) OuterRect(center, halfSize vecn.Vec) Builder {
	return b.Outer(rectLoop(center, halfSize)...)
}

// Hole appends a hole loop.
func (b Builder) Hole(vertices ...vecn.Vec) Builder {
	holes := make([][]vecn.Vec, len(b.holes), len(b.holes)+1)
	copy(holes, b.holes)
	b.holes = append(holes, cloneLoop(vertices))
	return b
}

// HoleRect appends an axis-aligned rectangular hole of the given
// half-size centered on center.
func (b Builder) HoleRect(center, halfSize vecn.Vec) Builder {
	return b.Hole(rectLoop(center, halfSize)...)
}

// Build validates the accumulated loops and constructs the Polygon.
func (b Builder) Build() (*Polygon, error) {
	if b.outer == nil {
		return nil, invalidErr("builder has no outer loop")
	}
	return NewPolygon(b.outer, b.holes...)
}

func rectLoop(center, halfSize vecn.Vec) []vecn.Vec {
	if center.Dim() != 2 || halfSize.Dim() != 2 {
		textPanic("rectangle center and half-size must be 2D")
	}
	return []vecn.Vec{
		vecn.New(center[0]-halfSize[0], center[1]-halfSize[1]),
		vecn.New(center[0]+halfSize[0], center[1]-halfSize[1]),
		vecn.New(center[0]+halfSize[0], center[1]+halfSize[1]),
		vecn.New(center[0]-halfSize[0], center[1]+halfSize[1]),
	}
}

func cloneLoop(loop []vecn.Vec) []vecn.Vec {
	cp := make([]vecn.Vec, len(loop))
	for i, p := range loop {
		cp[i] = p.Clone()
	}
	return cp
}
