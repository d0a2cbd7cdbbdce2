// Copyright 2026 The pointpack (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Command pointpack generates point distributions from a TOML scene
// description and writes them as CSV, optionally with a rendered
// image.
package main

import "os"

func main() {
	if err := execute(); err != nil {
		os.Exit(1)
	}
}
