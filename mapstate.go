/*
 * mapstate.go, part of gochem.
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
	"fmt"

	v3 "github.com/pslacerda1/pymol-open-source/v3"
)

//MapState is a density map placed in space: the grid values, the cell, and the
//geometry needed to go from grid indexes to Cartesian coordinates.
//The grid covers exactly one unit cell, with grid point i at the fractional
//coordinate i/Div along each axis.
type MapState struct {
	Map       *DensityMap
	Ops       []SymOp
	Min       [3]int //first grid index along each axis, always 0
	Max       [3]int //last grid index along each axis
	Div       [3]int //grid points per cell edge
	ExtentMin [3]float64
	ExtentMax [3]float64
	//The 8 Cartesian corners of the map, with z varying slowest and x fastest.
	Corners    *v3.Matrix
	Normalized bool
	cell       UnitCell
	frac2cart  *v3.Matrix
}

//NewMapState builds the MapState for the map M, computed in the given cell.
//The symmetry operators are kept along, so the map can be symmetry-expanded
//when displayed.
func NewMapState(M *DensityMap, cell UnitCell, ops []SymOp) *MapState {
	if M == nil {
		panic(ErrNilGrid)
	}
	ms := &MapState{Map: M, Ops: ops, cell: cell, frac2cart: cell.FracToCart()}
	shape := M.Shape()
	for i := 0; i < 3; i++ {
		ms.Min[i] = 0
		ms.Max[i] = shape[i] - 1
		ms.Div[i] = shape[i]
	}
	ms.ExtentMin = ms.Point(ms.Min)
	ms.ExtentMax = ms.Point(ms.Max)
	fracs := v3.Zeros(8)
	c := 0
	for z := 0; z < 2; z++ {
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				idx := [3]int{ms.Min[0], ms.Min[1], ms.Min[2]}
				if x == 1 {
					idx[0] = ms.Max[0]
				}
				if y == 1 {
					idx[1] = ms.Max[1]
				}
				if z == 1 {
					idx[2] = ms.Max[2]
				}
				fracs.SetVec(c, ms.Fractional(idx))
				c++
			}
		}
	}
	ms.Corners = v3.Zeros(8)
	ms.Corners.Transform(ms.frac2cart, fracs)
	return ms
}

//Cell returns the unit cell of the map.
func (ms *MapState) Cell() UnitCell { return ms.cell }

//FracToCart returns the fractional-to-Cartesian matrix of the map's cell.
//The matrix is shared, so it should not be modified.
func (ms *MapState) FracToCart() *v3.Matrix { return ms.frac2cart }

//Fractional returns the fractional coordinates of the grid point idx.
func (ms *MapState) Fractional(idx [3]int) [3]float64 {
	var f [3]float64
	for i := range f {
		f[i] = float64(idx[i]) / float64(ms.Div[i])
	}
	return f
}

//Point returns the Cartesian coordinates, in A, of the grid point idx.
func (ms *MapState) Point(idx [3]int) [3]float64 {
	p := v3.Zeros(1)
	p.SetVec(0, ms.Fractional(idx))
	p.Transform(ms.frac2cart, p)
	return p.Vec(0)
}

//StepVectors returns, as rows, the Cartesian displacement between consecutive
//grid points along each of the 3 axes.
func (ms *MapState) StepVectors() *v3.Matrix {
	//the origin in row 0, then one step along each axis.
	fracs := v3.Zeros(4)
	for i := 0; i < 3; i++ {
		var idx [3]int
		idx[i] = 1
		fracs.SetVec(i+1, ms.Fractional(idx))
	}
	fracs.Transform(ms.frac2cart, fracs)
	steps := v3.Zeros(3)
	for i := 0; i < 3; i++ {
		steps.SetVec(i, fracs.Vec(i+1))
	}
	steps.SubVec(steps, fracs.VecView(0))
	return steps
}

func (ms *MapState) String() string {
	return fmt.Sprintf("map %dx%dx%d in cell %s, extent %.3v to %.3v", ms.Div[0], ms.Div[1], ms.Div[2], ms.cell, ms.ExtentMin, ms.ExtentMax)
}
