// Copyright 2026 The pointpack (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cellgrid

import (
	"math"

	"github.com/packlab/pointpack/vecn"
)

// A Grid is a uniform-cell spatial hash over indexed points. The grid
// stores point indices only; coordinates are read back through the
// accessor supplied at construction, so the caller remains the single
// owner of point storage.
//
// Cell size must be at least the query radius used with Neighbors:
// then any point within one radius of a query point lies in the query
// point's cell or one of the 3^N adjacent cells, and no true neighbor
// is ever missed. Candidates from adjacent cells are filtered to exact
// distance before the visitor sees them.
//
// Insert, Remove, and Move mutate the grid and must not run
// concurrently with anything else. Neighbors only reads and may run in
// parallel with other Neighbors calls.
type Grid struct {
	dim      int
	cellSize float64
	at       func(i int) vecn.Vec
	cells    map[key][]int
	len      int
}

// New constructs an empty grid. at returns the current coordinates of
// the point with a given index and must stay consistent with the
// coordinates passed to Insert, Remove, and Move. Panics if dim is
// less than 1, cellSize is not a positive finite number, or at is nil.
func New(dim int, cellSize float64, at func(i int) vecn.Vec) *Grid {
	if dim < 1 {
		fmtPanic("dimension must be at least 1, got %d", dim)
	}
	if !(cellSize > 0) || math.IsInf(cellSize, 1) {
		fmtPanic("cell size must be positive and finite, got %g", cellSize)
	}
	if at == nil {
		textPanic("point accessor must not be nil")
	}
	return &Grid{
		dim:      dim,
		cellSize: cellSize,
		at:       at,
		cells:    make(map[key][]int),
	}
}

// CellSize returns the fixed edge length of the grid's cells.
func (g *Grid) CellSize() float64 {
	return g.cellSize
}

// Len returns the number of indices currently in the grid.
func (g *Grid) Len() int {
	return g.len
}

// CellOf returns the integer cell coordinate containing p.
func (g *Grid) CellOf(p vecn.Vec) vecn.Cell {
	c := make(vecn.Cell, g.dim)
	g.cellOf(p, c)
	return c
}

func (g *Grid) cellOf(p vecn.Vec, c vecn.Cell) {
	if p.Dim() != g.dim {
		fmtPanic("point dimension %d does not match grid dimension %d", p.Dim(), g.dim)
	}
	for i, x := range p {
		c[i] = int(math.Floor(x / g.cellSize))
	}
}

// Insert places index i into the bucket for p's cell. Amortized O(1).
func (g *Grid) Insert(i int, p vecn.Vec) {
	c := make(vecn.Cell, g.dim)
	g.cellOf(p, c)
	k := keyOf(c, make([]byte, 0, 8*g.dim))
	g.cells[k] = append(g.cells[k], i)
	g.len++
}

// Remove removes index i from the bucket of p's cell. p must be the
// coordinates under which i was inserted or last moved; the grid does
// not track point storage itself. Panics if i is not in that bucket,
// since that means the caller broke the index/coordinate invariant.
func (g *Grid) Remove(i int, p vecn.Vec) {
	c := make(vecn.Cell, g.dim)
	g.cellOf(p, c)
	k := keyOf(c, make([]byte, 0, 8*g.dim))
	bucket := g.cells[k]
	for j, idx := range bucket {
		if idx == i {
			bucket[j] = bucket[len(bucket)-1]
			bucket = bucket[:len(bucket)-1]
			if len(bucket) == 0 {
				delete(g.cells, k)
			} else {
				g.cells[k] = bucket
			}
			g.len--
			return
		}
	}
	fmtPanic("index %d not found in cell of %v", i, p)
}

// Move updates index i from coordinates from to coordinates to. A move
// within one cell is a no-op.
func (g *Grid) Move(i int, from, to vecn.Vec) {
	cf := make(vecn.Cell, g.dim)
	ct := make(vecn.Cell, g.dim)
	g.cellOf(from, cf)
	g.cellOf(to, ct)
	if cf.Equal(ct) {
		return
	}
	g.Remove(i, from)
	g.Insert(i, to)
}

// Neighbors visits every index whose point lies within radius of p,
// in unspecified order. radius must not exceed the grid's cell size or
// neighbors in non-adjacent cells would be missed; Neighbors panics on
// that misuse rather than silently under-reporting.
func (g *Grid) Neighbors(p vecn.Vec, radius float64, visit func(i int)) {
	g.neighbors(p, radius, -1, visit)
}

// NeighborsOf is Neighbors for the point with index i, using its
// current coordinates and never visiting i itself.
func (g *Grid) NeighborsOf(i int, radius float64, visit func(j int)) {
	g.neighbors(g.at(i), radius, i, visit)
}

func (g *Grid) neighbors(p vecn.Vec, radius float64, skip int, visit func(i int)) {
	if radius > g.cellSize {
		fmtPanic("query radius %g exceeds cell size %g", radius, g.cellSize)
	}
	center := make(vecn.Cell, g.dim)
	g.cellOf(p, center)
	adj := make(vecn.Cell, g.dim)
	buf := make([]byte, 0, 8*g.dim)
	// Enumerate the 3^dim adjacent cells by decomposing a linear
	// counter into offsets in {-1, 0, 1}.
	total := 1
	for i := 0; i < g.dim; i++ {
		total *= 3
	}
	for n := 0; n < total; n++ {
		rem := n
		for i := 0; i < g.dim; i++ {
			adj[i] = center[i] + rem%3 - 1
			rem /= 3
		}
		for _, idx := range g.cells[keyOf(adj, buf)] {
			if idx == skip {
				continue
			}
			if g.at(idx).Distance(p) <= radius {
				visit(idx)
			}
		}
	}
}
