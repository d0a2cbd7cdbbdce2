// Copyright 2026 The pointpack (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package pointpack generates sets of points distributed inside
// geometric volumes: N-dimensional cuboids and spheres, and 2D
// polygons with holes.
//
// Three placement strategies are provided. GridPoints lays points on a
// regular lattice, RandomPoints scatters uniform white noise, and Pack
// runs random close packing: an iterative relaxation that turns a
// uniform scatter into a jammed, near-non-overlapping disk or sphere
// configuration at maximal density.
//
// Volumes live in the volume subpackage and the spatial hash backing
// the packing engine lives in cellgrid.
package pointpack
