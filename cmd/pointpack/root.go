// Copyright 2026 The pointpack (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Build-time version information, injected via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type loggerKey struct{}

func withLogger(ctx context.Context, logger *charmlog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

func loggerFromContext(ctx context.Context) *charmlog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*charmlog.Logger); ok {
		return logger
	}
	return charmlog.Default()
}

func newLogger(w io.Writer, level charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// execute runs the pointpack CLI and returns an error if any command
// fails. Logging defaults to info level on stderr; --verbose switches
// to debug. The logger travels through the command context.
func execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "pointpack",
		Short:        "pointpack generates point distributions inside geometric volumes",
		Long:         `pointpack fills cuboids, spheres, and polygons with points placed on a regular grid, as white noise, or by random close packing, and writes the result as CSV and optionally as an image.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("pointpack %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newPackCmd())

	return root.ExecuteContext(context.Background())
}
