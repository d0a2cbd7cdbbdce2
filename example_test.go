// Copyright 2026 The pointpack (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package pointpack_test

import (
	"fmt"

	"github.com/packlab/pointpack"
	"github.com/packlab/pointpack/vecn"
	"github.com/packlab/pointpack/volume"
)

// ExamplePack packs fifty disks of radius 3 into a 100x100 square and
// reports how many centers the relaxation placed.
func ExamplePack() {
	vol, err := volume.NewCuboid(vecn.New(0, 0), vecn.New(100, 100))
	if err != nil {
		fmt.Println(err)
		return
	}

	cfg := pointpack.NewConfig(3, 50)
	cfg.Seed = 42

	result, err := pointpack.Pack(vol, cfg)
	if err != nil {
		fmt.Println(err)
		return
	}

	inside := 0
	for _, p := range result.Points {
		if vol.Contains(p) {
			inside++
		}
	}
	fmt.Println(len(result.Points), inside == len(result.Points))
	// Output: 50 true
}

// ExampleGridPoints lays a regular lattice over an annular region built
// from a square with a square hole.
func ExampleGridPoints() {
	vol, err := volume.Build().
		OuterRect(vecn.New(0, 0), vecn.New(3, 3)).
		HoleRect(vecn.New(0, 0), vecn.New(1, 1)).
		Build()
	if err != nil {
		fmt.Println(err)
		return
	}

	points, err := pointpack.GridPoints(vol, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(points))
	// Output: 8
}
