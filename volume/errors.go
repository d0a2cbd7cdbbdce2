// Copyright 2026 The pointpack (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package volume

import (
	"errors"
	"fmt"
)

// ErrInvalidVolume is returned by volume constructors when the
// requested geometry is degenerate or malformed. It is always detected
// eagerly; no invalid volume is ever handed back to the caller.
var ErrInvalidVolume = textErr("invalid volume")

const packageName = "volume: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func fmtErr(format string, a ...interface{}) error {
	return fmt.Errorf(packageName+format, a...)
}

// invalidErr wraps ErrInvalidVolume with a description of the defect.
func invalidErr(format string, a ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidVolume}, a...)...)
}

func textPanic(text string) {
	panic(packageName + text)
}

func fmtPanic(format string, a ...interface{}) {
	panic(fmt.Sprintf(packageName+format, a...))
}
