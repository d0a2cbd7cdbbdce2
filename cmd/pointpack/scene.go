// Copyright 2026 The pointpack (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/packlab/pointpack"
	"github.com/packlab/pointpack/vecn"
	"github.com/packlab/pointpack/volume"
)

// A scene is the TOML description of one packing run: the volume to
// fill and the packing parameters.
//
//	[volume]
//	kind = "cuboid"          # or "sphere", "polygon"
//	min = [0.0, 0.0]         # cuboid corners
//	max = [100.0, 100.0]
//	# center/radius for spheres; loops for polygons, outer loop first,
//	# remaining loops are holes:
//	# [[volume.loops]]
//	# vertices = [[0.0, 0.0], [200.0, 0.0], [200.0, 200.0], [0.0, 200.0]]
//
//	[packing]
//	radius = 5.0
//	count = 50
//	seed = 42
type scene struct {
	Volume  sceneVolume  `toml:"volume"`
	Packing scenePacking `toml:"packing"`
}

type sceneVolume struct {
	Kind   string      `toml:"kind"`
	Min    []float64   `toml:"min"`
	Max    []float64   `toml:"max"`
	Center []float64   `toml:"center"`
	Radius float64     `toml:"radius"`
	Loops  []sceneLoop `toml:"loops"`
}

type sceneLoop struct {
	Vertices [][]float64 `toml:"vertices"`
}

type scenePacking struct {
	Radius         float64 `toml:"radius"`
	Count          int     `toml:"count"`
	Density        float64 `toml:"density"`
	MaxIterations  int     `toml:"max_iterations"`
	Tolerance      float64 `toml:"tolerance"`
	StepFactor     float64 `toml:"step_factor"`
	Seed           uint64  `toml:"seed"`
	NoPad          bool    `toml:"no_pad"`
	MinSeedSpacing float64 `toml:"min_seed_spacing"`
	Workers        int     `toml:"workers"`
}

func loadScene(path string) (*scene, error) {
	var s scene
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return nil, fmt.Errorf("decode scene %s: %w", path, err)
	}
	return &s, nil
}

func (sv *sceneVolume) build() (volume.Volume, error) {
	switch sv.Kind {
	case "cuboid":
		return volume.NewCuboid(vecn.New(sv.Min...), vecn.New(sv.Max...))
	case "sphere":
		return volume.NewSphere(vecn.New(sv.Center...), sv.Radius)
	case "polygon":
		if len(sv.Loops) == 0 {
			return nil, fmt.Errorf("polygon volume has no loops")
		}
		b := volume.Build().Outer(loopVecs(sv.Loops[0])...)
		for _, hole := range sv.Loops[1:] {
			b = b.Hole(loopVecs(hole)...)
		}
		return b.Build()
	default:
		return nil, fmt.Errorf("unknown volume kind %q", sv.Kind)
	}
}

func loopVecs(loop sceneLoop) []vecn.Vec {
	vs := make([]vecn.Vec, len(loop.Vertices))
	for i, v := range loop.Vertices {
		vs[i] = vecn.New(v...)
	}
	return vs
}

func (sp *scenePacking) config() pointpack.Config {
	cfg := pointpack.NewConfig(sp.Radius, sp.Count)
	cfg.Density = sp.Density
	if sp.MaxIterations != 0 {
		cfg.MaxIterations = sp.MaxIterations
	}
	if sp.Tolerance != 0 {
		cfg.Tolerance = sp.Tolerance
	}
	if sp.StepFactor != 0 {
		cfg.StepFactor = sp.StepFactor
	}
	cfg.Seed = sp.Seed
	cfg.NoPad = sp.NoPad
	cfg.MinSeedSpacing = sp.MinSeedSpacing
	cfg.Workers = sp.Workers
	return cfg
}
