// Copyright 2026 The pointpack (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package pointpack

import (
	"math"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/packlab/pointpack/cellgrid"
	"github.com/packlab/pointpack/vecn"
	"github.com/packlab/pointpack/volume"
)

const (
	// measureSamples is the number of Monte-Carlo draws used to
	// estimate the volume measure when packing to a density target.
	measureSamples = 8192
	// seedAttempts bounds the re-draws per seed point when
	// MinSeedSpacing is set.
	seedAttempts = 30
)

// phase is the engine's lifecycle: Seeding -> Relaxing -> one of the
// terminal phases Converged or Truncated.
type phase int

const (
	phaseSeeding phase = iota
	phaseRelaxing
	phaseConverged
	phaseTruncated
)

// An engine is the mutable working state of one packing run. It is
// exclusively owned by one Pack call and never shared; concurrent Pack
// calls with independent volumes and configs are fully independent.
type engine struct {
	cfg     Config
	domain  volume.Volume
	rng     *rand.Rand
	grid    *cellgrid.Grid
	points  []vecn.Vec
	deltas  []vecn.Vec
	phase   phase
	iters   int
	overlap float64
	// nudge is the inward offset applied after boundary reprojection
	// so that reprojected points satisfy the half-open containment
	// predicate. Scaled to the domain's bounding box diagonal.
	nudge float64
}

// Pack distributes non-overlapping disks or spheres of the configured
// radius inside vol by random close packing: uniform seeding followed
// by iterative pairwise repulsion with boundary reprojection.
//
// Pack never fails due to non-convergence. A run that exhausts its
// iteration budget returns its best-effort point set with
// Result.Converged false. Configuration and geometry errors are
// detected eagerly, before any sampling.
//
// Within an iteration, every displacement is computed from the point
// positions frozen at the top of the iteration and applied only after
// all displacements are known. Results are therefore bit-identical for
// any Config.Workers value, and two runs with identical volume,
// config, and seed produce identical Results.
func Pack(vol volume.Volume, cfg Config) (*Result, error) {
	if vol == nil {
		return nil, configErr("volume is nil")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	domain := vol
	if !cfg.NoPad {
		padded, err := volume.Pad(vol, cfg.Radius)
		if err != nil {
			return nil, wrapErr("pad volume by radius", err)
		}
		domain = padded
	}
	e := &engine{
		cfg:    cfg,
		domain: domain,
		rng:    rand.New(rand.NewPCG(cfg.Seed, cfg.Seed)),
		phase:  phaseSeeding,
	}
	e.grid = cellgrid.New(domain.Dim(), 2*cfg.Radius, func(i int) vecn.Vec {
		return e.points[i]
	})
	bmin, bmax := domain.Bounds()
	e.nudge = 1e-9 * bmax.Sub(bmin).Norm()

	count := cfg.Count
	if count == 0 {
		count = int(math.Round(cfg.Density * estimateMeasure(domain, e.rng)))
	}
	if err := e.seed(count); err != nil {
		return nil, err
	}
	e.phase = phaseRelaxing
	if err := e.relax(); err != nil {
		return nil, err
	}
	return &Result{
		Points:     e.points,
		Iterations: e.iters,
		Converged:  e.phase == phaseConverged,
		MaxOverlap: e.overlap,
	}, nil
}

// estimateMeasure approximates v's measure as the bounding box measure
// times the fraction of uniform box draws that land inside v.
func estimateMeasure(v volume.Volume, rng *rand.Rand) float64 {
	bmin, bmax := v.Bounds()
	boxMeasure := 1.0
	for i := range bmin {
		boxMeasure *= bmax[i] - bmin[i]
	}
	p := vecn.Zero(v.Dim())
	hits := 0
	for s := 0; s < measureSamples; s++ {
		for i := range p {
			p[i] = bmin[i] + rng.Float64()*(bmax[i]-bmin[i])
		}
		if v.Contains(p) {
			hits++
		}
	}
	return boxMeasure * float64(hits) / measureSamples
}

// seed draws count initial points and indexes each one immediately, so
// the optional spacing check sees every earlier seed. A volume whose
// interior the sampler cannot hit, such as a thin shape eroded away by
// the boundary padding, fails here before any relaxation work.
func (e *engine) seed(count int) error {
	dim := e.domain.Dim()
	e.points = make([]vecn.Vec, 0, count)
	e.deltas = make([]vecn.Vec, 0, count)
	for i := 0; i < count; i++ {
		p, err := volume.SampleUniform(e.domain, e.rng)
		if err != nil {
			return wrapErr("seed points", err)
		}
		if e.cfg.MinSeedSpacing > 0 {
			for attempt := 0; attempt < seedAttempts; attempt++ {
				crowded := false
				e.grid.Neighbors(p, e.cfg.MinSeedSpacing, func(int) {
					crowded = true
				})
				if !crowded {
					break
				}
				if p, err = volume.SampleUniform(e.domain, e.rng); err != nil {
					return wrapErr("seed points", err)
				}
			}
		}
		e.points = append(e.points, p)
		e.deltas = append(e.deltas, vecn.Zero(dim))
		e.grid.Insert(i, p)
	}
	return nil
}

// relax runs relaxation iterations until the residual overlap reaches
// the tolerance or the iteration budget is spent.
func (e *engine) relax() error {
	tol := e.cfg.tolerance()
	for e.iters < e.cfg.MaxIterations {
		worst := e.computeDeltas()
		if worst <= tol {
			e.overlap = worst
			e.phase = phaseConverged
			return nil
		}
		if err := e.apply(); err != nil {
			return err
		}
		e.iters++
	}
	// Budget spent. The final apply may have pushed the residual under
	// the tolerance, so measure once more before flagging the run.
	e.overlap = e.computeDeltas()
	if e.overlap <= tol {
		e.phase = phaseConverged
	} else {
		e.phase = phaseTruncated
	}
	return nil
}

// computeDeltas computes every point's net repulsion displacement from
// the current position snapshot and returns the worst overlap depth
// seen. Points are mutated only later, in apply, so the work is
// partitioned across workers without synchronization beyond the final
// join.
func (e *engine) computeDeltas() float64 {
	n := len(e.points)
	w := e.cfg.workers()
	if w > n {
		w = n
	}
	if w <= 1 {
		return e.computeRange(0, n)
	}
	var g errgroup.Group
	worst := make([]float64, w)
	chunk := (n + w - 1) / w
	for k := 0; k < w; k++ {
		k, lo := k, k*chunk
		hi := min(lo+chunk, n)
		g.Go(func() error {
			worst[k] = e.computeRange(lo, hi)
			return nil
		})
	}
	_ = g.Wait() // workers never fail
	m := 0.0
	for _, x := range worst {
		m = max(m, x)
	}
	return m
}

// computeRange computes displacements for points [lo, hi) and returns
// the worst overlap depth among their neighbor pairs.
func (e *engine) computeRange(lo, hi int) float64 {
	overlapDist := 2 * e.cfg.Radius
	dir := vecn.Zero(e.domain.Dim())
	var worst float64
	for i := lo; i < hi; i++ {
		p := e.points[i]
		delta := e.deltas[i].Scale(0)
		e.grid.NeighborsOf(i, overlapDist, func(j int) {
			q := e.points[j]
			dist := p.Distance(q)
			pen := overlapDist - dist
			if pen <= 0 {
				return
			}
			if pen > worst {
				worst = pen
			}
			if dist > 0 {
				dir.CopyFrom(p).Sub(q).Scale(1 / dist)
			} else {
				// Coincident pair: no separating direction exists, so
				// split along the first axis, ordered by index to keep
				// the two halves deterministic and opposite.
				dir.Scale(0)
				if i < j {
					dir[0] = 1
				} else {
					dir[0] = -1
				}
			}
			// Each side of an overlapping pair resolves half the
			// depth; the step factor damps it at apply time.
			delta.AddScaled(pen/2, dir)
		})
	}
	return worst
}

// apply moves every displaced point, reprojects any point that left
// the domain, and keeps the grid consistent with the new coordinates.
func (e *engine) apply() error {
	step := e.cfg.stepFactor()
	old := vecn.Zero(e.domain.Dim())
	for i, p := range e.points {
		delta := e.deltas[i]
		if delta.Norm2() == 0 {
			continue
		}
		old.CopyFrom(p)
		p.AddScaled(step, delta)
		if !e.domain.Contains(p) {
			if err := e.reproject(p); err != nil {
				return err
			}
		}
		e.grid.Move(i, old, p)
	}
	return nil
}

// reproject moves p back inside the domain, onto the nearest boundary
// plus an inward nudge that satisfies the half-open containment
// predicate. When several boundaries are violated at once the globally
// nearest one wins (Volume.Nearest scans hole edges too). The nudge is
// widened geometrically if containment still fails, and as a last
// resort the point is re-drawn uniformly, which keeps the all-points-
// contained invariant unconditional.
func (e *engine) reproject(p vecn.Vec) error {
	eps := e.nudge
	for attempt := 0; attempt < 8; attempt++ {
		q := e.domain.Nearest(p)
		inward := q.Clone().Sub(p)
		if inward.Norm() == 0 {
			inward[0] = 1
		}
		inward.Normalize()
		q.AddScaled(eps, inward)
		if e.domain.Contains(q) {
			p.CopyFrom(q)
			return nil
		}
		eps *= 16
	}
	// Seeding already hit the interior, so a sampling failure here
	// would take an astronomically unlucky draw sequence.
	fresh, err := volume.SampleUniform(e.domain, e.rng)
	if err != nil {
		return wrapErr("reproject point", err)
	}
	p.CopyFrom(fresh)
	return nil
}
