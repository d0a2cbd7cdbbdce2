// Copyright 2026 The pointpack (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package pointpack

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packlab/pointpack/vecn"
	"github.com/packlab/pointpack/volume"
)

func newTestRNG() *rand.Rand {
	return rand.New(rand.NewPCG(123, 123))
}

func mustCuboid(t *testing.T, min, max vecn.Vec) *volume.Cuboid {
	t.Helper()
	c, err := volume.NewCuboid(min, max)
	require.NoError(t, err)
	return c
}

// TestPack_CuboidScenario packs 50 disks of radius 5 into a 100x100
// box and checks the full contract: convergence within the budget,
// pairwise separation up to the tolerance, and containment of every
// point.
func TestPack_CuboidScenario(t *testing.T) {
	vol := mustCuboid(t, vecn.New(0, 0), vecn.New(100, 100))
	cfg := NewConfig(5, 50)
	cfg.Tolerance = 0.5
	cfg.Seed = 42

	result, err := Pack(vol, cfg)
	require.NoError(t, err)

	assert.True(t, result.Converged, "expected convergence within %d iterations, residual overlap %g", cfg.MaxIterations, result.MaxOverlap)
	assert.LessOrEqual(t, result.Iterations, cfg.MaxIterations)
	require.Len(t, result.Points, 50)
	for i, p := range result.Points {
		assert.True(t, vol.Contains(p), "point %d at %v is outside the volume", i, p)
	}
	for i := 0; i < len(result.Points); i++ {
		for j := i + 1; j < len(result.Points); j++ {
			d := result.Points[i].Distance(result.Points[j])
			assert.GreaterOrEqual(t, d, 2*cfg.Radius-cfg.Tolerance,
				"points %d and %d are %g apart", i, j, d)
		}
	}
}

// TestPack_PolygonWithHole packs into a 200x200 square with a 50x50
// hole in the middle and verifies no point lands in the hole.
func TestPack_PolygonWithHole(t *testing.T) {
	vol, err := volume.Build().
		OuterRect(vecn.New(100, 100), vecn.New(100, 100)).
		HoleRect(vecn.New(100, 100), vecn.New(25, 25)).
		Build()
	require.NoError(t, err)

	cfg := NewConfig(4, 80)
	cfg.Seed = 7

	result, err := Pack(vol, cfg)
	require.NoError(t, err)

	require.Len(t, result.Points, 80)
	for i, p := range result.Points {
		require.True(t, vol.Contains(p), "point %d at %v is outside the volume", i, p)
		inHole := p[0] > 75 && p[0] < 125 && p[1] > 75 && p[1] < 125
		require.False(t, inHole, "point %d at %v is inside the hole", i, p)
	}
}

func TestPack_Sphere3D(t *testing.T) {
	vol, err := volume.NewSphere(vecn.New(0, 0, 0), 30)
	require.NoError(t, err)

	cfg := NewConfig(3, 60)
	cfg.Seed = 3

	result, err := Pack(vol, cfg)
	require.NoError(t, err)

	require.Len(t, result.Points, 60)
	for i, p := range result.Points {
		assert.True(t, vol.Contains(p), "point %d at %v is outside the volume", i, p)
		// Padded packing keeps whole spheres inside.
		assert.LessOrEqual(t, p.Norm(), 30-cfg.Radius+1e-9, "point %d", i)
	}
}

func TestPack_InvalidRadius(t *testing.T) {
	vol := mustCuboid(t, vecn.New(0, 0), vecn.New(100, 100))

	result, err := Pack(vol, Config{Radius: 0, Count: 10, MaxIterations: 1})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidRadius)
}

func TestPack_InvalidConfig(t *testing.T) {
	vol := mustCuboid(t, vecn.New(0, 0), vecn.New(100, 100))

	result, err := Pack(vol, Config{Radius: 5, MaxIterations: 100})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestPack_NilVolume(t *testing.T) {
	result, err := Pack(nil, NewConfig(5, 10))

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestPack_RadiusTooLargeForVolume(t *testing.T) {
	vol := mustCuboid(t, vecn.New(0, 0), vecn.New(10, 10))

	result, err := Pack(vol, NewConfig(5, 2))

	assert.Nil(t, result)
	assert.ErrorIs(t, err, volume.ErrInvalidVolume)
}

// TestPack_RadiusErodesThinRing covers the non-convex analogue of the
// case above: a 100x100 ring of thickness 2 whose bounding box easily
// survives a radius-5 inset, but whose interior the inset erodes to
// nothing. Pack must fail instead of sampling forever.
func TestPack_RadiusErodesThinRing(t *testing.T) {
	vol, err := volume.Build().
		OuterRect(vecn.New(50, 50), vecn.New(50, 50)).
		HoleRect(vecn.New(50, 50), vecn.New(48, 48)).
		Build()
	require.NoError(t, err)

	result, err := Pack(vol, NewConfig(5, 10))

	assert.Nil(t, result)
	assert.ErrorIs(t, err, volume.ErrInvalidVolume)
}

// TestPack_Deterministic checks the reproducibility contract: two runs
// with identical volume, config, and seed are bit-identical.
func TestPack_Deterministic(t *testing.T) {
	vol := mustCuboid(t, vecn.New(0, 0), vecn.New(100, 100))
	cfg := NewConfig(5, 50)
	cfg.Seed = 42

	a, err := Pack(vol, cfg)
	require.NoError(t, err)
	b, err := Pack(vol, cfg)
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(a, b))
}

// TestPack_WorkerCountInvariant checks that the snapshot-batched
// displacement contract holds: parallel displacement computation does
// not change the result.
func TestPack_WorkerCountInvariant(t *testing.T) {
	vol := mustCuboid(t, vecn.New(0, 0), vecn.New(100, 100))
	serial := NewConfig(5, 50)
	serial.Seed = 42
	parallel := serial
	parallel.Workers = 4

	a, err := Pack(vol, serial)
	require.NoError(t, err)
	b, err := Pack(vol, parallel)
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(a, b))
}

// TestPack_Truncated overfills a small box so the run cannot converge,
// and checks that the best-effort result is still returned.
func TestPack_Truncated(t *testing.T) {
	vol := mustCuboid(t, vecn.New(0, 0), vecn.New(20, 20))
	cfg := NewConfig(5, 30)
	cfg.MaxIterations = 3
	cfg.Seed = 1

	result, err := Pack(vol, cfg)
	require.NoError(t, err)

	assert.False(t, result.Converged)
	assert.Equal(t, 3, result.Iterations)
	assert.Greater(t, result.MaxOverlap, cfg.Tolerance)
	require.Len(t, result.Points, 30)
	for i, p := range result.Points {
		assert.True(t, vol.Contains(p), "point %d at %v is outside the volume", i, p)
	}
}

func TestPack_DensityTarget(t *testing.T) {
	vol := mustCuboid(t, vecn.New(0, 0), vecn.New(100, 100))
	cfg := NewConfig(2, 0)
	cfg.Density = 0.004 // ~37 points in the padded 96x96 interior
	cfg.Seed = 9

	result, err := Pack(vol, cfg)
	require.NoError(t, err)

	assert.InDelta(t, 37, len(result.Points), 3)
	for i, p := range result.Points {
		assert.True(t, vol.Contains(p), "point %d at %v is outside the volume", i, p)
	}
}

func TestPack_MinSeedSpacing(t *testing.T) {
	vol := mustCuboid(t, vecn.New(0, 0), vecn.New(100, 100))
	cfg := NewConfig(5, 40)
	cfg.MinSeedSpacing = 8
	cfg.Seed = 5

	result, err := Pack(vol, cfg)
	require.NoError(t, err)

	assert.True(t, result.Converged)
	require.Len(t, result.Points, 40)
}

func TestPack_NoPad(t *testing.T) {
	vol := mustCuboid(t, vecn.New(0, 0), vecn.New(30, 30))
	cfg := NewConfig(5, 9)
	cfg.NoPad = true
	cfg.Seed = 11

	result, err := Pack(vol, cfg)
	require.NoError(t, err)

	require.Len(t, result.Points, 9)
	for i, p := range result.Points {
		assert.True(t, vol.Contains(p), "point %d at %v is outside the volume", i, p)
	}
}

func TestEstimateMeasure(t *testing.T) {
	vol := mustCuboid(t, vecn.New(0, 0), vecn.New(10, 10))
	rng := newTestRNG()

	assert.InDelta(t, 100, estimateMeasure(vol, rng), 0.01)

	sphere, err := volume.NewSphere(vecn.New(0, 0), 5)
	require.NoError(t, err)
	// pi/4 of the bounding box, within Monte-Carlo error.
	assert.InDelta(t, 78.5, estimateMeasure(sphere, newTestRNG()), 3)
}
