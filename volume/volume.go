// Copyright 2026 The pointpack (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package volume provides the geometric volumes that pointpack places
// points into: N-dimensional cuboids and spheres, and 2D polygons with
// holes.
//
// Every volume is validated once at construction and immutable
// afterwards; no query re-checks structural invariants. Containment is
// half-open: a point exactly on a volume's boundary is not contained,
// so points shared between adjacent volumes are never double-counted.
package volume

import (
	"math/rand/v2"

	"github.com/packlab/pointpack/vecn"
)

// A Volume is a bounded region of N-dimensional space. Implementations
// are Cuboid, Sphere, Polygon, and the Padded wrapper.
type Volume interface {
	// Dim returns the dimension of the space the volume lives in.
	Dim() int

	// Contains reports whether p lies strictly inside the volume.
	// Boundary points are not contained.
	Contains(p vecn.Vec) bool

	// Bounds returns the volume's tight axis-aligned bounding box.
	// The returned vectors are copies and may be mutated freely.
	Bounds() (min, max vecn.Vec)

	// Distance returns the signed distance from p to the volume's
	// boundary: negative inside, positive outside, zero on the
	// boundary.
	Distance(p vecn.Vec) float64

	// Nearest returns the point on the volume's boundary closest to
	// p. When several boundaries are equidistant the globally nearest
	// one wins; ties are broken by scan order, which is fixed per
	// volume.
	Nearest(p vecn.Vec) vecn.Vec
}

// sampleAttempts bounds the rejection draws per SampleUniform call. A
// volume filling even a thousandth of its bounding box misses this
// often with probability under 1e-28, so exhaustion means the volume
// has (next to) no interior, not bad luck.
const sampleAttempts = 1 << 16

// SampleUniform draws a uniformly distributed point inside v by
// rejection sampling: uniform draws in the bounding box are retried
// until one is contained. The expected number of draws is the ratio of
// the bounding box measure to the volume measure, which is why tight
// bounding boxes matter for thin or concave volumes.
//
// If no draw lands inside within the attempt bound, SampleUniform
// returns an error wrapping ErrInvalidVolume instead of looping
// forever. This is how an effectively empty volume, such as a thin
// ring padded past its thickness, surfaces to the caller.
func SampleUniform(v Volume, rng *rand.Rand) (vecn.Vec, error) {
	min, max := v.Bounds()
	p := vecn.Zero(v.Dim())
	for attempt := 0; attempt < sampleAttempts; attempt++ {
		for i := range p {
			p[i] = min[i] + rng.Float64()*(max[i]-min[i])
		}
		if v.Contains(p) {
			return p.Clone(), nil
		}
	}
	return nil, invalidErr("no interior found in %d draws", sampleAttempts)
}
