// Copyright 2026 The pointpack (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package pointpack

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRadius is returned when a packing is requested with a
	// radius that is not a positive finite number. It is detected
	// before any sampling occurs.
	ErrInvalidRadius = textErr("invalid radius")
	// ErrInvalidConfig is returned when a Config is malformed: no
	// placement target, a non-positive target, a non-positive
	// iteration budget, or an out-of-range step factor or tolerance.
	ErrInvalidConfig = textErr("invalid config")
)

const packageName = "pointpack: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func fmtErr(format string, a ...interface{}) error {
	return fmt.Errorf(packageName+format, a...)
}

func wrapErr(text string, err error, a ...interface{}) error {
	return fmt.Errorf(packageName+text+": %w", append(a, err)...)
}

// configErr wraps ErrInvalidConfig with a description of the defect.
func configErr(format string, a ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidConfig}, a...)...)
}

func textPanic(text string) {
	panic(packageName + text)
}
