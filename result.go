// Copyright 2026 The pointpack (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package pointpack

import "github.com/packlab/pointpack/vecn"

// A Result is the outcome of a packing run. A run always produces a
// Result: random close packing is a heuristic, so a configuration that
// missed the convergence tolerance is still returned, flagged as
// truncated rather than failed.
type Result struct {
	// Points is the final point sequence, in placement order. The
	// caller owns it; the engine keeps no reference after returning.
	Points []vecn.Vec
	// Iterations is the number of relaxation iterations executed.
	Iterations int
	// Converged reports whether the residual overlap reached the
	// configured tolerance before the iteration budget ran out.
	Converged bool
	// MaxOverlap is the maximum remaining overlap depth between any
	// two points, measured in the last iteration. Zero when no pair
	// overlaps.
	MaxOverlap float64
}
