// Copyright 2026 The pointpack (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package volume

import (
	"math"

	"github.com/packlab/pointpack/vecn"
)

// A Cuboid is an N-dimensional axis-aligned box given by its minimum
// and maximum corners.
type Cuboid struct {
	min vecn.Vec
	max vecn.Vec
}

// NewCuboid constructs a cuboid from its corner vectors. It returns an
// error wrapping ErrInvalidVolume if the corners have mismatched or
// zero dimension, contain non-finite components, or the box has zero
// width on any axis.
func NewCuboid(min, max vecn.Vec) (*Cuboid, error) {
	if min.Dim() == 0 {
		return nil, invalidErr("cuboid has dimension 0")
	}
	if min.Dim() != max.Dim() {
		return nil, invalidErr("cuboid corner dimensions differ: %d != %d", min.Dim(), max.Dim())
	}
	for i := range min {
		if !isFinite(min[i]) || !isFinite(max[i]) {
			return nil, invalidErr("cuboid corner component is not finite")
		}
		if min[i] >= max[i] {
			return nil, invalidErr("cuboid is degenerate on axis %d: min %g >= max %g", i, min[i], max[i])
		}
	}
	return &Cuboid{min: min.Clone(), max: max.Clone()}, nil
}

// NewCuboidAround constructs a cuboid of the given half-size centered
// on center.
func NewCuboidAround(center, halfSize vecn.Vec) (*Cuboid, error) {
	if center.Dim() != halfSize.Dim() {
		return nil, invalidErr("cuboid center and half-size dimensions differ: %d != %d", center.Dim(), halfSize.Dim())
	}
	return NewCuboid(center.Clone().Sub(halfSize), center.Clone().Add(halfSize))
}

// Dim returns the cuboid's dimension.
func (c *Cuboid) Dim() int {
	return c.min.Dim()
}

// Contains reports whether p lies strictly inside the cuboid.
func (c *Cuboid) Contains(p vecn.Vec) bool {
	for i := range c.min {
		if p[i] <= c.min[i] || p[i] >= c.max[i] {
			return false
		}
	}
	return true
}

// Bounds returns the cuboid's own corners.
func (c *Cuboid) Bounds() (min, max vecn.Vec) {
	return c.min.Clone(), c.max.Clone()
}

// Distance returns the signed distance from p to the cuboid's surface.
func (c *Cuboid) Distance(p vecn.Vec) float64 {
	// Standard box SDF: outside part from the clamped offset, inside
	// part from the least-deep axis.
	var outside2 float64
	inside := math.Inf(-1)
	for i := range p {
		lo := c.min[i] - p[i]
		hi := p[i] - c.max[i]
		d := max(lo, hi)
		if d > 0 {
			outside2 += d * d
		} else if d > inside {
			inside = d
		}
	}
	if outside2 > 0 {
		return math.Sqrt(outside2)
	}
	return inside
}

// Nearest returns the boundary point closest to p: the per-axis clamp
// when p is outside, or the closest face point when p is inside.
func (c *Cuboid) Nearest(p vecn.Vec) vecn.Vec {
	clamped := p.Clone()
	for i := range clamped {
		clamped[i] = min(max(clamped[i], c.min[i]), c.max[i])
	}
	if !c.Contains(p) {
		return clamped
	}
	best := math.Inf(1)
	nearest := clamped.Clone()
	for i := range clamped {
		for _, face := range [2]float64{c.min[i], c.max[i]} {
			d := math.Abs(p[i] - face)
			if d < best {
				best = d
				nearest.CopyFrom(clamped)
				nearest[i] = face
			}
		}
	}
	return nearest
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
