// Copyright 2026 The pointpack (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package render writes 2D visualizations of packed point sets. The
// output format follows the file extension: .png, .svg, .pdf, or any
// other format gonum/plot can save.
package render

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/packlab/pointpack/vecn"
	"github.com/packlab/pointpack/volume"
)

// circleSegments is the polygon resolution used to draw each disk.
const circleSegments = 32

var (
	diskColor    = color.NRGBA{R: 0x33, G: 0x66, B: 0xcc, A: 0xb0}
	outlineColor = color.NRGBA{R: 0xcc, G: 0x33, B: 0x33, A: 0xff}
)

// Packing writes a plot of a 2D packing to path: one disk of the given
// radius per point, plus the volume's loop or bounding outline when
// vol is non-nil. Disks are drawn in data coordinates, so overlaps and
// boundary clearance are visible at true scale.
func Packing(path string, vol volume.Volume, points []vecn.Vec, radius float64) error {
	if len(points) > 0 && points[0].Dim() != 2 {
		return fmtErr("can only render 2D packings, got dimension %d", points[0].Dim())
	}
	if vol != nil && vol.Dim() != 2 {
		return fmtErr("can only render 2D volumes, got dimension %d", vol.Dim())
	}
	p := plot.New()
	p.Title.Text = "packing"
	if vol != nil {
		if err := addOutline(p, vol); err != nil {
			return err
		}
	}
	for _, pt := range points {
		disk, err := plotter.NewPolygon(circleXYs(pt, radius))
		if err != nil {
			return wrapErr("build disk", err)
		}
		disk.Color = diskColor
		disk.LineStyle.Width = 0
		p.Add(disk)
	}
	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return wrapErr("save plot", err)
	}
	return nil
}

// addOutline draws the volume boundary: every loop for polygons, the
// circle for spheres, the box for everything else.
func addOutline(p *plot.Plot, vol volume.Volume) error {
	var loops []plotter.XYs
	switch v := vol.(type) {
	case *volume.Polygon:
		for _, loop := range v.Loops() {
			xys := make(plotter.XYs, 0, len(loop)+1)
			for _, pt := range loop {
				xys = append(xys, plotter.XY{X: pt[0], Y: pt[1]})
			}
			xys = append(xys, xys[0])
			loops = append(loops, xys)
		}
	case *volume.Sphere:
		bmin, bmax := v.Bounds()
		center := bmin.Clone().Add(bmax).Scale(0.5)
		loops = append(loops, circleXYs(center, (bmax[0]-bmin[0])/2))
	default:
		bmin, bmax := vol.Bounds()
		loops = append(loops, plotter.XYs{
			{X: bmin[0], Y: bmin[1]},
			{X: bmax[0], Y: bmin[1]},
			{X: bmax[0], Y: bmax[1]},
			{X: bmin[0], Y: bmax[1]},
			{X: bmin[0], Y: bmin[1]},
		})
	}
	for _, xys := range loops {
		line, err := plotter.NewLine(xys)
		if err != nil {
			return wrapErr("build outline", err)
		}
		line.Color = outlineColor
		p.Add(line)
	}
	return nil
}

func circleXYs(center vecn.Vec, radius float64) plotter.XYs {
	xys := make(plotter.XYs, circleSegments+1)
	for i := range xys {
		a := 2 * math.Pi * float64(i) / circleSegments
		xys[i] = plotter.XY{
			X: center[0] + radius*math.Cos(a),
			Y: center[1] + radius*math.Sin(a),
		}
	}
	return xys
}
