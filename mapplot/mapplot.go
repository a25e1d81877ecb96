/*
 * mapplot.go, part of gochem.
 *
 * Copyright 2025 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 * Gochem is developed at the laboratory for instruction in Swedish, Department of Chemistry,
 * University of Helsinki, Finland.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

//Package mapplot draws density maps: heat maps of sections of the map, and
//histograms of the density values.
package mapplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	xtal "github.com/pslacerda1/pymol-open-source"
)

//Size of the saved plots
const (
	width  = 12 * vg.Centimeter
	height = 10 * vg.Centimeter
)

//Number of colors in the heat-map palette
const colors = 64

//section is a plane of a density map, perpendicular to one of its axes.
//It implements plotter.GridXYZ.
type section struct {
	m     *xtal.DensityMap
	axis  int
	index int
	c, r  int //the map axes taken as columns and rows
}

func newSection(m *xtal.DensityMap, axis, index int) (*section, error) {
	shape := m.Shape()
	if axis < 0 || axis > 2 {
		return nil, fmt.Errorf("invalid axis %d", axis)
	}
	if index < 0 || index >= shape[axis] {
		return nil, fmt.Errorf("section %d out of the map, which has %d points along axis %d", index, shape[axis], axis)
	}
	s := &section{m: m, axis: axis, index: index}
	s.c, s.r = (axis+1)%3, (axis+2)%3
	if s.c > s.r {
		s.c, s.r = s.r, s.c
	}
	return s, nil
}

func (s *section) Dims() (int, int) {
	shape := s.m.Shape()
	return shape[s.c], shape[s.r]
}

func (s *section) Z(c, r int) float64 {
	var idx [3]int
	idx[s.axis] = s.index
	idx[s.c] = c
	idx[s.r] = r
	return s.m.At(idx)
}

func (s *section) X(c int) float64 { return float64(c) }
func (s *section) Y(r int) float64 { return float64(r) }

var axisNames = [3]string{"a", "b", "c"}

//Section saves, in file (the format is given by the extension, usually png), a
//heat map of the plane of M with the given index along the given axis (0, 1 or 2).
func Section(M *xtal.DensityMap, axis, index int, title, file string) error {
	s, err := newSection(M, axis, index)
	if err != nil {
		return err
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Grid point along " + axisNames[s.c]
	p.Y.Label.Text = "Grid point along " + axisNames[s.r]
	h := plotter.NewHeatMap(s, palette.Heat(colors, 1))
	p.Add(h)
	return p.Save(width, height, file)
}

//Histogram saves, in file, a histogram of the densities in M, with the given number of bins.
func Histogram(M *xtal.DensityMap, bins int, title, file string) error {
	if bins < 1 {
		return fmt.Errorf("invalid number of bins %d", bins)
	}
	dividers, counts := xtal.DensityHistogram(M, bins)
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Density"
	p.Y.Label.Text = "Points"
	h := &plotter.Histogram{
		Bins:      histogramBins(dividers, counts),
		Width:     dividers[1] - dividers[0],
		FillColor: color.RGBA{R: 196, G: 64, B: 32, A: 255},
		LineStyle: plotter.DefaultLineStyle,
	}
	p.Add(plotter.NewGrid())
	p.Add(h)
	return p.Save(width, height, file)
}

//histogramBins turns the dividers and counts of xtal.DensityHistogram into
//plotter bins, bin i spanning dividers[i] to dividers[i+1].
func histogramBins(dividers, counts []float64) []plotter.HistogramBin {
	b := make([]plotter.HistogramBin, len(counts))
	for i, c := range counts {
		b[i] = plotter.HistogramBin{Min: dividers[i], Max: dividers[i+1], Weight: c}
	}
	return b
}
