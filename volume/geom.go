// Copyright 2026 The pointpack (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package volume

import "github.com/packlab/pointpack/vecn"

// projectSegment returns the point on the closed segment [a, b]
// nearest to p.
func projectSegment(a, b, p vecn.Vec) vecn.Vec {
	c := b.Clone().Sub(a)
	l2 := c.Norm2()
	if l2 == 0 {
		return a.Clone()
	}
	t := p.Clone().Sub(a).Dot(c) / l2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a.Clone().AddScaled(t, c)
}

// distSegment returns the distance from p to the closed segment
// [a, b].
func distSegment(a, b, p vecn.Vec) float64 {
	return projectSegment(a, b, p).Distance(p)
}

// cross2 returns the z-component of (a-o) x (b-o).
func cross2(o, a, b vecn.Vec) float64 {
	return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
}

// onSegment2 reports whether p lies on the closed 2D segment [a, b].
func onSegment2(a, b, p vecn.Vec) bool {
	if cross2(a, b, p) != 0 {
		return false
	}
	return min(a[0], b[0]) <= p[0] && p[0] <= max(a[0], b[0]) &&
		min(a[1], b[1]) <= p[1] && p[1] <= max(a[1], b[1])
}

// segmentsIntersect2 reports whether the closed 2D segments [a, b] and
// [c, d] share any point, including endpoint touches and collinear
// overlap.
func segmentsIntersect2(a, b, c, d vecn.Vec) bool {
	d1 := cross2(c, d, a)
	d2 := cross2(c, d, b)
	d3 := cross2(a, b, c)
	d4 := cross2(a, b, d)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	if d1 == 0 && onSegment2(c, d, a) {
		return true
	}
	if d2 == 0 && onSegment2(c, d, b) {
		return true
	}
	if d3 == 0 && onSegment2(a, b, c) {
		return true
	}
	if d4 == 0 && onSegment2(a, b, d) {
		return true
	}
	return false
}

// signedArea2 returns the shoelace signed area of a closed 2D loop.
// Counterclockwise loops have positive area.
func signedArea2(loop []vecn.Vec) float64 {
	var sum float64
	b := loop[len(loop)-1]
	for _, a := range loop {
		sum += b[0]*a[1] - a[0]*b[1]
		b = a
	}
	return sum / 2
}

// reverseLoop flips a loop's winding in place.
func reverseLoop(loop []vecn.Vec) {
	for i, j := 0, len(loop)-1; i < j; i, j = i+1, j-1 {
		loop[i], loop[j] = loop[j], loop[i]
	}
}
