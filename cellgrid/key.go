// Copyright 2026 The pointpack (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cellgrid

import (
	"encoding/binary"

	"github.com/packlab/pointpack/vecn"
)

// A key is a cell coordinate packed into a string so it can serve as a
// map key for any dimension. Components are packed little-endian so
// keys are stable across platforms.
type key string

// keyOf packs c into a key, reusing buf as scratch space. Components
// are packed at full width: a tiny cell size over a far-from-origin
// volume can push cell coordinates past 32 bits, and truncation would
// silently alias distant cells.
func keyOf(c vecn.Cell, buf []byte) key {
	buf = buf[:0]
	for _, x := range c {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(x))
	}
	return key(buf)
}
