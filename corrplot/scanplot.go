/*
 * scanplot.go, part of oercorr.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package corrplot plots the results of temperature scans obtained with
//oercorr, using the gonum plot library.
package corrplot

import (
	"fmt"
	"image/color"
	"math"

	corr "github.com/rmera/oercorr"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Plot size, in cm.
const (
	defwidth  = 12
	defheight = 9
)

func basicScanPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "T (K)"
	p.Y.Label.Text = "ZPE - TS_vib + ΔU (eV)"
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	return p
}

//ScanPlot plots the total correction against the temperature for each scan
//in scans, one line (and color) per adsorbate, and saves the plot in filename.
//The format is taken from the extension of filename (png, svg, pdf, eps...).
func ScanPlot(scans []*corr.Scan, title, filename string) error {
	if len(scans) == 0 {
		return fmt.Errorf("oercorr/corrplot: ScanPlot: no scans to plot")
	}
	p := basicScanPlot(title)
	for i, v := range scans {
		if v == nil || v.Len() == 0 {
			return fmt.Errorf("oercorr/corrplot: ScanPlot: empty scan in position %d", i)
		}
		l, s, err := plotter.NewLinePoints(v)
		if err != nil {
			return fmt.Errorf("oercorr/corrplot: ScanPlot: can't plot scan for %s: %w", v.Name, err)
		}
		r, g, b := colors(i, len(scans))
		col := color.RGBA{R: r, G: g, B: b, A: 255}
		l.LineStyle.Color = col
		s.GlyphStyle.Color = col
		s.GlyphStyle.Radius = vg.Points(2)
		p.Add(l, s)
		p.Legend.Add(v.Name, l, s)
	}
	return p.Save(defwidth*vg.Centimeter, defheight*vg.Centimeter, filename)
}

//takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHSV2RGB(h, s, v float64) (uint8, uint8, uint8) {
	maxcolor := 255.0
	if s == 0.0 {
		return uint8(maxcolor * v), uint8(maxcolor * v), uint8(maxcolor * v)
	}
	h = h / 60
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	var r, g, b float64
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default: //case 5
		r, g, b = v, p, q
	}
	return uint8(r * maxcolor), uint8(g * maxcolor), uint8(b * maxcolor)
}

//colors returns a color for the key-th of steps series. The hues are spread
//between red and violet, skipping the yellows, which are hard to see on white.
func colors(key, steps int) (r, g, b uint8) {
	norm := 260.0 / float64(steps)
	hp := (float64(key) * norm) + 20.0
	var h float64
	if hp < 55 {
		h = hp - 20.0
	} else {
		h = hp + 20.0
	}
	return iHSV2RGB(h, 1.0, 0.9)
}
