// Copyright 2026 The pointpack (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package volume

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packlab/pointpack/vecn"
)

func TestSampleUniform_Contained(t *testing.T) {
	cuboid, err := NewCuboid(vecn.New(-5, 0, 10), vecn.New(5, 20, 11))
	require.NoError(t, err)
	sphere, err := NewSphere(vecn.New(3, 3), 2)
	require.NoError(t, err)
	polygon, err := NewPolygon(square(0, 10), square(4, 6))
	require.NoError(t, err)

	testCases := []struct {
		name string
		vol  Volume
	}{
		{"Cuboid3D", cuboid},
		{"Sphere", sphere},
		{"PolygonWithHole", polygon},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			rng := rand.New(rand.NewPCG(1, 1))
			for i := 0; i < 500; i++ {
				p, err := SampleUniform(testCase.vol, rng)

				require.NoError(t, err)
				require.True(t, testCase.vol.Contains(p), "sample %d: %v escaped the volume", i, p)
				require.Equal(t, testCase.vol.Dim(), p.Dim())
			}
		})
	}
}

func TestSampleUniform_Deterministic(t *testing.T) {
	vol, err := NewSphere(vecn.New(0, 0), 10)
	require.NoError(t, err)

	a, err := SampleUniform(vol, rand.New(rand.NewPCG(7, 7)))
	require.NoError(t, err)
	b, err := SampleUniform(vol, rand.New(rand.NewPCG(7, 7)))
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
}

// TestSampleUniform_EmptyInterior pads a thin ring past its thickness:
// the bounding box survives the inset so construction succeeds, but no
// point of the box is contained. The sampler must report that instead
// of retrying forever.
func TestSampleUniform_EmptyInterior(t *testing.T) {
	ring, err := NewPolygon(square(0, 100), square(2, 98))
	require.NoError(t, err)
	vol, err := Pad(ring, 5)
	require.NoError(t, err)

	p, err := SampleUniform(vol, rand.New(rand.NewPCG(1, 1)))

	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrInvalidVolume)
}
