// Copyright 2026 The pointpack (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package volume

import "github.com/packlab/pointpack/vecn"

// A Padded volume is another volume shrunk inward by a fixed inset.
// The packing engine pads a volume by the disk radius so that disk
// centers keep a full radius of clearance from the boundary.
type Padded struct {
	base  Volume
	inset float64
}

// Pad wraps v with an inward inset. It returns an error wrapping
// ErrInvalidVolume if the inset is negative or consumes the whole
// bounding box on some axis.
func Pad(v Volume, inset float64) (*Padded, error) {
	if inset < 0 {
		return nil, invalidErr("pad inset %g is negative", inset)
	}
	bmin, bmax := v.Bounds()
	for i := range bmin {
		if bmax[i]-bmin[i] <= 2*inset {
			return nil, invalidErr("pad inset %g leaves no interior on axis %d", inset, i)
		}
	}
	return &Padded{base: v, inset: inset}, nil
}

// Dim returns the base volume's dimension.
func (pv *Padded) Dim() int {
	return pv.base.Dim()
}

// Contains reports whether p lies strictly deeper than the inset
// inside the base volume.
func (pv *Padded) Contains(p vecn.Vec) bool {
	return pv.base.Distance(p) < -pv.inset
}

// Bounds returns the base bounding box shrunk by the inset on every
// axis.
func (pv *Padded) Bounds() (min, max vecn.Vec) {
	min, max = pv.base.Bounds()
	min.Add(vecn.Repeat(pv.inset, min.Dim()))
	max.Sub(vecn.Repeat(pv.inset, max.Dim()))
	return min, max
}

// Distance returns the base signed distance shifted by the inset.
func (pv *Padded) Distance(p vecn.Vec) float64 {
	return pv.base.Distance(p) + pv.inset
}

// Nearest approximates the closest point on the inset surface: the
// nearest base surface point moved inward by the inset. Exact for
// convex smooth regions and close enough elsewhere for iterative
// reprojection, which re-queries after every step.
func (pv *Padded) Nearest(p vecn.Vec) vecn.Vec {
	q := pv.base.Nearest(p)
	inward := p.Clone().Sub(q)
	if pv.base.Distance(p) > 0 {
		inward.Scale(-1)
	}
	if inward.Norm() == 0 {
		inward[0] = 1
	}
	inward.Normalize()
	return q.AddScaled(pv.inset, inward)
}
