// Copyright 2026 The pointpack (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package volume

import (
	"math"

	"github.com/packlab/pointpack/vecn"
)

// A Polygon is a 2D region bounded by one outer vertex loop, minus
// zero or more hole loops. The outer loop is stored counterclockwise
// and holes clockwise; constructors normalize winding, so callers may
// supply loops in either sense.
//
// Structural invariants are checked once at construction: every loop
// is simple (non-self-intersecting), holes lie strictly inside the
// outer loop, and holes are pairwise disjoint. Queries never re-check
// them.
type Polygon struct {
	outer []vecn.Vec
	holes [][]vecn.Vec
	loops [][]vecn.Vec // outer first, then holes
	min   vecn.Vec
	max   vecn.Vec
}

// NewPolygon constructs a polygon from an outer loop and optional hole
// loops. Loops are closed implicitly: the last vertex connects back to
// the first, with no repeated closing vertex. It returns an error
// wrapping ErrInvalidVolume if any loop is degenerate or
// self-intersecting, a hole is not strictly inside the outer loop, or
// two holes overlap.
func NewPolygon(outer []vecn.Vec, holes ...[]vecn.Vec) (*Polygon, error) {
	outer, err := normalizeLoop(outer, true)
	if err != nil {
		return nil, err
	}
	pg := &Polygon{
		outer: outer,
		holes: make([][]vecn.Vec, 0, len(holes)),
		loops: append(make([][]vecn.Vec, 0, len(holes)+1), outer),
		min:   vecn.Repeat(math.Inf(1), 2),
		max:   vecn.Repeat(math.Inf(-1), 2),
	}
	for _, p := range outer {
		pg.min[0] = min(pg.min[0], p[0])
		pg.min[1] = min(pg.min[1], p[1])
		pg.max[0] = max(pg.max[0], p[0])
		pg.max[1] = max(pg.max[1], p[1])
	}
	for i, hole := range holes {
		hole, err := normalizeLoop(hole, false)
		if err != nil {
			return nil, err
		}
		if !loopInsideLoop(hole, outer) {
			return nil, invalidErr("hole %d is not strictly inside the outer loop", i)
		}
		for j, other := range pg.holes {
			if loopsOverlap(hole, other) {
				return nil, invalidErr("holes %d and %d overlap", j, i)
			}
		}
		pg.holes = append(pg.holes, hole)
		pg.loops = append(pg.loops, hole)
	}
	return pg, nil
}

// Dim returns 2. Polygons are two-dimensional only.
func (pg *Polygon) Dim() int {
	return 2
}

// Loops returns a deep copy of the polygon's loops, outer loop first.
func (pg *Polygon) Loops() [][]vecn.Vec {
	out := make([][]vecn.Vec, len(pg.loops))
	for i, loop := range pg.loops {
		out[i] = make([]vecn.Vec, len(loop))
		for j, p := range loop {
			out[i][j] = p.Clone()
		}
	}
	return out
}

// Contains reports whether p lies strictly inside the outer loop and
// strictly outside every hole. The test is an even-odd crossing count
// over all loops; points exactly on any loop edge are not contained.
func (pg *Polygon) Contains(p vecn.Vec) bool {
	if p[0] <= pg.min[0] || p[1] <= pg.min[1] || p[0] >= pg.max[0] || p[1] >= pg.max[1] {
		return false
	}
	inside := false
	for _, loop := range pg.loops {
		b := loop[len(loop)-1]
		for _, a := range loop {
			if onSegment2(a, b, p) {
				return false
			}
			if (a[1] > p[1]) != (b[1] > p[1]) &&
				p[0] < (b[0]-a[0])*(p[1]-a[1])/(b[1]-a[1])+a[0] {
				inside = !inside
			}
			b = a
		}
	}
	return inside
}

// Bounds returns the bounding box of the outer loop. Holes cannot
// enlarge it.
func (pg *Polygon) Bounds() (min, max vecn.Vec) {
	return pg.min.Clone(), pg.max.Clone()
}

// Distance returns the signed distance from p to the nearest loop
// edge, hole edges included: negative inside the region, positive
// outside.
func (pg *Polygon) Distance(p vecn.Vec) float64 {
	dist := math.Inf(1)
	for _, loop := range pg.loops {
		b := loop[len(loop)-1]
		for _, a := range loop {
			dist = min(dist, distSegment(a, b, p))
			b = a
		}
	}
	if pg.Contains(p) {
		return -dist
	}
	return dist
}

// Nearest returns the point on the nearest loop edge, scanning the
// outer loop and every hole and keeping the global minimum.
func (pg *Polygon) Nearest(p vecn.Vec) vecn.Vec {
	dist := math.Inf(1)
	nearest := vecn.Zero(2)
	for _, loop := range pg.loops {
		b := loop[len(loop)-1]
		for _, a := range loop {
			q := projectSegment(a, b, p)
			if d := q.Distance(p); d < dist {
				dist = d
				nearest = q
			}
			b = a
		}
	}
	return nearest
}

// normalizeLoop validates a single loop and fixes its winding: outer
// loops counterclockwise, holes clockwise.
func normalizeLoop(loop []vecn.Vec, outer bool) ([]vecn.Vec, error) {
	if len(loop) < 3 {
		return nil, invalidErr("loop has %d vertices, need at least 3", len(loop))
	}
	cp := make([]vecn.Vec, len(loop))
	for i, p := range loop {
		if p.Dim() != 2 {
			return nil, invalidErr("loop vertex %d has dimension %d, polygons are 2D", i, p.Dim())
		}
		if !isFinite(p[0]) || !isFinite(p[1]) {
			return nil, invalidErr("loop vertex %d is not finite", i)
		}
		cp[i] = p.Clone()
	}
	area := signedArea2(cp)
	if area == 0 {
		return nil, invalidErr("loop has zero area")
	}
	if err := checkSimple(cp); err != nil {
		return nil, err
	}
	if outer != (area > 0) {
		reverseLoop(cp)
	}
	return cp, nil
}

// checkSimple verifies that no two non-adjacent edges of a loop share
// a point.
func checkSimple(loop []vecn.Vec) error {
	n := len(loop)
	for i := 0; i < n; i++ {
		a, b := loop[i], loop[(i+1)%n]
		for j := i + 1; j < n; j++ {
			// Skip edge pairs that share a vertex.
			if j == i || (j+1)%n == i || j == (i+1)%n {
				continue
			}
			c, d := loop[j], loop[(j+1)%n]
			if segmentsIntersect2(a, b, c, d) {
				return invalidErr("loop is self-intersecting at edges %d and %d", i, j)
			}
		}
	}
	return nil
}

// crossingInside is the bare even-odd test against a single loop, with
// no boundary handling. Used only for construction-time nesting
// checks.
func crossingInside(loop []vecn.Vec, p vecn.Vec) bool {
	inside := false
	b := loop[len(loop)-1]
	for _, a := range loop {
		if (a[1] > p[1]) != (b[1] > p[1]) &&
			p[0] < (b[0]-a[0])*(p[1]-a[1])/(b[1]-a[1])+a[0] {
			inside = !inside
		}
		b = a
	}
	return inside
}

// loopInsideLoop reports whether inner lies strictly inside out: every
// inner vertex is interior to out and no edges touch.
func loopInsideLoop(inner, out []vecn.Vec) bool {
	for _, p := range inner {
		if !crossingInside(out, p) {
			return false
		}
	}
	return !edgesTouch(inner, out)
}

// loopsOverlap reports whether two loops share any area or touch.
func loopsOverlap(a, b []vecn.Vec) bool {
	if edgesTouch(a, b) {
		return true
	}
	// No edge contact: one loop inside the other, or fully disjoint.
	return crossingInside(b, a[0]) || crossingInside(a, b[0])
}

func edgesTouch(la, lb []vecn.Vec) bool {
	b1 := la[len(la)-1]
	for _, a1 := range la {
		b2 := lb[len(lb)-1]
		for _, a2 := range lb {
			if segmentsIntersect2(a1, b1, a2, b2) {
				return true
			}
			b2 = a2
		}
		b1 = a1
	}
	return false
}
