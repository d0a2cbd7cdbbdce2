// Copyright 2026 The pointpack (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package pointpack

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packlab/pointpack/vecn"
	"github.com/packlab/pointpack/volume"
)

func TestGridPoints_Cuboid(t *testing.T) {
	vol := mustCuboid(t, vecn.New(0, 0), vecn.New(10, 10))

	points, err := GridPoints(vol, 1)
	require.NoError(t, err)
	require.Len(t, points, 100)
	for _, p := range points {
		assert.True(t, vol.Contains(p))
		// Lattice sites sit half a spacing off the grid lines.
		assert.InDelta(t, 0.5, math.Mod(p[0], 1), 1e-12)
		assert.InDelta(t, 0.5, math.Mod(p[1], 1), 1e-12)
	}
}

func TestGridPoints_PolygonExcludesHole(t *testing.T) {
	vol, err := volume.Build().
		OuterRect(vecn.New(5, 5), vecn.New(5, 5)).
		HoleRect(vecn.New(5, 5), vecn.New(2, 2)).
		Build()
	require.NoError(t, err)

	points, err := GridPoints(vol, 1)
	require.NoError(t, err)
	// 10x10 outer minus the 4x4 hole.
	assert.Len(t, points, 84)
	for _, p := range points {
		assert.True(t, vol.Contains(p))
	}
}

func TestGridPoints_3D(t *testing.T) {
	vol := mustCuboid(t, vecn.New(0, 0, 0), vecn.New(4, 4, 4))

	points, err := GridPoints(vol, 2)
	require.NoError(t, err)
	assert.Len(t, points, 8)
}

func TestGridPoints_InvalidSpacing(t *testing.T) {
	vol := mustCuboid(t, vecn.New(0, 0), vecn.New(10, 10))

	for _, spacing := range []float64{0, -1, math.Inf(1), math.NaN()} {
		_, err := GridPoints(vol, spacing)
		assert.ErrorIs(t, err, ErrInvalidConfig, "spacing %g", spacing)
	}

	_, err := GridPoints(nil, 1)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRandomPoints(t *testing.T) {
	vol, err := volume.NewSphere(vecn.New(0, 0), 10)
	require.NoError(t, err)

	points, err := RandomPoints(vol, 200, 7)
	require.NoError(t, err)
	require.Len(t, points, 200)
	for _, p := range points {
		assert.True(t, vol.Contains(p))
	}

	again, err := RandomPoints(vol, 200, 7)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(points, again))

	other, err := RandomPoints(vol, 200, 8)
	require.NoError(t, err)
	assert.NotEmpty(t, cmp.Diff(points, other))
}

func TestRandomPoints_Invalid(t *testing.T) {
	vol := mustCuboid(t, vecn.New(0, 0), vecn.New(1, 1))

	_, err := RandomPoints(vol, -1, 0)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = RandomPoints(nil, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	points, err := RandomPoints(vol, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, points)
}
