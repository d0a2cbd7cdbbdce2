// Copyright 2026 The pointpack (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package volume

import "github.com/packlab/pointpack/vecn"

// A Sphere is an N-dimensional ball given by its center and radius.
type Sphere struct {
	center vecn.Vec
	radius float64
}

// NewSphere constructs a sphere. It returns an error wrapping
// ErrInvalidVolume if the center has dimension 0 or non-finite
// components, or the radius is not a positive finite number.
func NewSphere(center vecn.Vec, radius float64) (*Sphere, error) {
	if center.Dim() == 0 {
		return nil, invalidErr("sphere has dimension 0")
	}
	for _, x := range center {
		if !isFinite(x) {
			return nil, invalidErr("sphere center component is not finite")
		}
	}
	if !(radius > 0) || !isFinite(radius) {
		return nil, invalidErr("sphere radius %g is not positive", radius)
	}
	return &Sphere{center: center.Clone(), radius: radius}, nil
}

// Dim returns the sphere's dimension.
func (s *Sphere) Dim() int {
	return s.center.Dim()
}

// Contains reports whether p lies strictly inside the sphere.
func (s *Sphere) Contains(p vecn.Vec) bool {
	return p.Distance(s.center) < s.radius
}

// Bounds returns the sphere's axis-aligned bounding box.
func (s *Sphere) Bounds() (min, max vecn.Vec) {
	r := vecn.Repeat(s.radius, s.Dim())
	return s.center.Clone().Sub(r), s.center.Clone().Add(r)
}

// Distance returns the signed distance from p to the sphere's surface.
func (s *Sphere) Distance(p vecn.Vec) float64 {
	return p.Distance(s.center) - s.radius
}

// Nearest returns the surface point closest to p. For p at the exact
// center every surface point is equidistant; the point on the positive
// first axis is returned.
func (s *Sphere) Nearest(p vecn.Vec) vecn.Vec {
	dir := p.Clone().Sub(s.center)
	if dir.Norm() == 0 {
		dir[0] = 1
	}
	dir.Normalize()
	return s.center.Clone().AddScaled(s.radius, dir)
}
