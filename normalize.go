/*
 * normalize.go, part of gochem.
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

package xtal

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

//negligible is the single-precision machine epsilon. Volumes, means and standard
//deviations with a smaller absolute value are treated as zero.
const negligible = 1.1920929e-07

//DensityMap is a real-valued 3D grid, with the same row-major layout as ReciprocalGrid.
type DensityMap struct {
	shape [3]int
	Data  []float64
}

//NewDensityMap returns a zeroed map with the given shape. It panics if any
//dimension is not positive.
func NewDensityMap(shape [3]int) *DensityMap {
	for _, v := range shape {
		if v <= 0 {
			panic(ErrShape)
		}
	}
	return &DensityMap{shape: shape, Data: make([]float64, shape[0]*shape[1]*shape[2])}
}

//Shape returns the number of points along each axis.
func (M *DensityMap) Shape() [3]int { return M.shape }

//Len returns the total number of points in the map.
func (M *DensityMap) Len() int { return len(M.Data) }

//Flat returns the flat index of the point idx.
func (M *DensityMap) Flat(idx [3]int) int {
	return idx[2] + idx[1]*M.shape[2] + idx[0]*M.shape[1]*M.shape[2]
}

//At returns the value at the point idx. It panics if idx is not in the map.
func (M *DensityMap) At(idx [3]int) float64 {
	if !inShape(idx, M.shape) {
		panic(ErrOutOfGrid)
	}
	return M.Data[M.Flat(idx)]
}

//Set puts v at the point idx. It panics if idx is not in the map.
func (M *DensityMap) Set(idx [3]int, v float64) {
	if !inShape(idx, M.shape) {
		panic(ErrOutOfGrid)
	}
	M.Data[M.Flat(idx)] = v
}

//meanSD returns the population mean and standard deviation of data, as
//mean=Σx/n and var=Σx²/n-mean². The standard deviation is 0 if var<=0.
func meanSD(data []float64) (float64, float64) {
	n := float64(len(data))
	if n == 0 {
		return 0, 0
	}
	mean := floats.Sum(data) / n
	sq := floats.Dot(data, data) / n
	variance := sq - mean*mean
	if variance <= 0 {
		return mean, 0
	}
	return mean, math.Sqrt(variance)
}

//NormalizeMap returns the real part of the transformed grid G, divided
//by the cell volume. If |volume| is negligible the scale is 1.
//If normalize is true, the map is then shifted and scaled to zero mean and
//unit standard deviation. If the standard deviation is negligible only the
//mean is subtracted (if it is not negligible itself).
func NormalizeMap(G *ReciprocalGrid, volume float64, normalize bool) *DensityMap {
	if G == nil {
		panic(ErrNilGrid)
	}
	M := NewDensityMap(G.Shape())
	scale := 1.0
	if math.Abs(volume) > negligible {
		scale = 1 / volume
	}
	for i, v := range G.Data {
		M.Data[i] = real(v) * scale
	}
	if normalize {
		NormalizeInPlace(M)
	}
	return M
}

//NormalizeInPlace shifts and scales M to zero mean and unit standard deviation,
//following the same rules as NormalizeMap.
func NormalizeInPlace(M *DensityMap) {
	mean, sd := meanSD(M.Data)
	switch {
	case math.Abs(sd) > negligible:
		floats.AddConst(-mean, M.Data)
		floats.Scale(1/sd, M.Data)
	case math.Abs(mean) > negligible:
		floats.AddConst(-mean, M.Data)
	}
}
