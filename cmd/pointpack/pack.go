// Copyright 2026 The pointpack (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/packlab/pointpack"
	"github.com/packlab/pointpack/render"
	"github.com/packlab/pointpack/vecn"
)

func newPackCmd() *cobra.Command {
	var (
		scenePath string
		outPath   string
		plotPath  string
	)

	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Run random close packing for a TOML scene",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			s, err := loadScene(scenePath)
			if err != nil {
				return err
			}
			vol, err := s.Volume.build()
			if err != nil {
				return err
			}
			cfg := s.Packing.config()
			logger.Debug("scene loaded", "kind", s.Volume.Kind, "radius", cfg.Radius)

			result, err := pointpack.Pack(vol, cfg)
			if err != nil {
				return err
			}
			if result.Converged {
				logger.Info("packing converged",
					"points", len(result.Points),
					"iterations", result.Iterations,
					"overlap", result.MaxOverlap)
			} else {
				logger.Warn("packing truncated by iteration budget",
					"points", len(result.Points),
					"iterations", result.Iterations,
					"overlap", result.MaxOverlap)
			}

			if err := writeCSV(outPath, result.Points); err != nil {
				return err
			}
			logger.Debug("points written", "path", outPath)

			if plotPath != "" {
				if err := render.Packing(plotPath, vol, result.Points, cfg.Radius); err != nil {
					return err
				}
				logger.Debug("plot written", "path", plotPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&scenePath, "scene", "scene.toml", "TOML scene file")
	cmd.Flags().StringVar(&outPath, "out", "points.csv", "CSV output file")
	cmd.Flags().StringVar(&plotPath, "plot", "", "optional image output file (.png, .svg, .pdf)")

	return cmd
}

func writeCSV(path string, points []vecn.Vec) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	record := make([]string, 0, 3)
	for _, p := range points {
		record = record[:0]
		for _, x := range p {
			record = append(record, strconv.FormatFloat(x, 'g', -1, 64))
		}
		if err := w.Write(record); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
