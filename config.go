// Copyright 2026 The pointpack (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package pointpack

import "math"

// A Config holds the parameters of a single packing run. Construct one
// with NewConfig to get working defaults, then override fields as
// needed. A Config is read-only once handed to Pack.
type Config struct {
	// Radius is the disk/sphere radius. Two points overlap when their
	// distance is below 2*Radius. Must be positive and finite.
	Radius float64

	// Count is the number of points to place. Exactly one of Count
	// and Density must be set.
	Count int

	// Density is the target number of points per unit of volume
	// measure. The measure is estimated by Monte-Carlo rejection
	// against the bounding box using the run's own random source, so
	// a run remains deterministic per seed.
	Density float64

	// MaxIterations bounds the relaxation loop. A run that has not
	// reached Tolerance after MaxIterations returns its best-effort
	// configuration flagged as truncated. Must be positive.
	MaxIterations int

	// Tolerance is the maximum residual overlap depth below which the
	// run counts as converged. Zero means 10% of Radius, matching the
	// heuristic nature of the algorithm. Must not be negative.
	Tolerance float64

	// StepFactor damps each iteration's displacement. Each overlapping
	// pair contributes half its overlap depth, scaled by StepFactor,
	// so any value in (0, 1] keeps a point from overshooting past a
	// neighbor in one step. Zero means DefaultStepFactor.
	StepFactor float64

	// Seed seeds the run's PCG random source. Runs with identical
	// volume, config, and seed produce bit-identical results.
	Seed uint64

	// NoPad disables the boundary inset. By default the engine packs
	// centers into the volume shrunk inward by Radius, so whole disks
	// stay inside; with NoPad set, centers may sit anywhere in the
	// volume and disks may protrude.
	NoPad bool

	// MinSeedSpacing, when positive, re-draws seed points that land
	// within this distance of an already-placed seed, up to a bounded
	// number of attempts. It reduces pathological overlaps before
	// relaxation begins. Must not exceed 2*Radius.
	MinSeedSpacing float64

	// Workers is the number of goroutines computing displacements.
	// Results do not depend on it. Zero means 1.
	Workers int
}

// Default relaxation parameters used by NewConfig.
const (
	DefaultMaxIterations = 500
	DefaultStepFactor    = 0.5
)

// NewConfig returns a Config for the given radius and target count
// with default iteration budget, tolerance, and step factor.
func NewConfig(radius float64, count int) Config {
	return Config{
		Radius:        radius,
		Count:         count,
		MaxIterations: DefaultMaxIterations,
		Tolerance:     0.1 * radius,
		StepFactor:    DefaultStepFactor,
	}
}

// validate eagerly rejects malformed configs before any sampling.
func (c *Config) validate() error {
	if !(c.Radius > 0) || math.IsInf(c.Radius, 1) {
		return fmtErr("%w: radius %g must be positive and finite", ErrInvalidRadius, c.Radius)
	}
	if c.Count < 0 {
		return configErr("count %d is negative", c.Count)
	}
	if c.Density < 0 || math.IsNaN(c.Density) {
		return configErr("density %g is negative", c.Density)
	}
	if c.Count == 0 && c.Density == 0 {
		return configErr("either count or density must be set")
	}
	if c.Count > 0 && c.Density > 0 {
		return configErr("count and density are mutually exclusive")
	}
	if c.MaxIterations <= 0 {
		return configErr("iteration budget %d must be positive", c.MaxIterations)
	}
	if c.Tolerance < 0 || math.IsNaN(c.Tolerance) {
		return configErr("tolerance %g is negative", c.Tolerance)
	}
	if c.StepFactor < 0 || c.StepFactor > 1 || math.IsNaN(c.StepFactor) {
		return configErr("step factor %g is outside (0, 1]", c.StepFactor)
	}
	if c.MinSeedSpacing < 0 || c.MinSeedSpacing > 2*c.Radius {
		return configErr("minimum seed spacing %g is outside [0, 2*radius]", c.MinSeedSpacing)
	}
	if c.Workers < 0 {
		return configErr("workers %d is negative", c.Workers)
	}
	return nil
}

// tolerance returns the effective convergence tolerance.
func (c *Config) tolerance() float64 {
	if c.Tolerance == 0 {
		return 0.1 * c.Radius
	}
	return c.Tolerance
}

// stepFactor returns the effective relaxation step factor.
func (c *Config) stepFactor() float64 {
	if c.StepFactor == 0 {
		return DefaultStepFactor
	}
	return c.StepFactor
}

// workers returns the effective worker count.
func (c *Config) workers() int {
	if c.Workers < 1 {
		return 1
	}
	return c.Workers
}
