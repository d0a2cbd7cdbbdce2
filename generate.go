// Copyright 2026 The pointpack (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package pointpack

import (
	"math"
	"math/rand/v2"

	"github.com/packlab/pointpack/vecn"
	"github.com/packlab/pointpack/volume"
)

// GridPoints returns the points of a regular lattice with the given
// spacing that lie inside vol. The lattice is anchored half a spacing
// past the bounding box minimum, so a box whose width is an exact
// multiple of the spacing gets symmetric margins.
func GridPoints(vol volume.Volume, spacing float64) ([]vecn.Vec, error) {
	if vol == nil {
		return nil, configErr("volume is nil")
	}
	if !(spacing > 0) || math.IsInf(spacing, 1) {
		return nil, configErr("grid spacing %g must be positive and finite", spacing)
	}
	bmin, bmax := vol.Bounds()
	dim := vol.Dim()
	steps := make([]int, dim)
	for i := range steps {
		steps[i] = int(math.Ceil((bmax[i] - bmin[i]) / spacing))
	}
	var points []vecn.Vec
	idx := make([]int, dim)
	p := vecn.Zero(dim)
	// Odometer walk over the lattice covering the bounding box.
	for {
		for i := range idx {
			p[i] = bmin[i] + (float64(idx[i])+0.5)*spacing
		}
		if vol.Contains(p) {
			points = append(points, p.Clone())
		}
		i := 0
		for ; i < dim; i++ {
			idx[i]++
			if idx[i] < steps[i] {
				break
			}
			idx[i] = 0
		}
		if i == dim {
			return points, nil
		}
	}
}

// RandomPoints returns count uniformly distributed points inside vol
// ("white noise"), drawn from a PCG source seeded with seed. Identical
// arguments produce identical points.
func RandomPoints(vol volume.Volume, count int, seed uint64) ([]vecn.Vec, error) {
	if vol == nil {
		return nil, configErr("volume is nil")
	}
	if count < 0 {
		return nil, configErr("count %d is negative", count)
	}
	rng := rand.New(rand.NewPCG(seed, seed))
	points := make([]vecn.Vec, count)
	for i := range points {
		p, err := volume.SampleUniform(vol, rng)
		if err != nil {
			return nil, err
		}
		points[i] = p
	}
	return points, nil
}
