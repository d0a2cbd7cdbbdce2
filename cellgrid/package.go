// Copyright 2026 The pointpack (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package cellgrid provides the uniform-cell spatial hash used by the
// pointpack packing engine for radius-bounded neighbor queries.
//
// Although designed for packing relaxation, this package provides
// simple, reusable constructs usable wherever moving points need fast
// neighborhood lookup.
package cellgrid
