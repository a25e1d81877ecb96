/*
 * grid.go, part of gochem.
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

import "fmt"

//MaxGridPoints is the largest number of points a grid can have. Larger
//grids are rejected with ErrGridTooLarge instead of being allocated.
const MaxGridPoints = 1 << 30

//GridPoints returns the number of points in a grid with the given shape, or an
//ErrGridTooLarge error if that number is above MaxGridPoints.
//It panics if any dimension is not positive.
func GridPoints(shape [3]int) (int, error) {
	n := 1
	for i, v := range shape {
		if v <= 0 {
			panic(ErrShape)
		}
		if v > MaxGridPoints/n {
			return 0, newError(GridTooLarge, "GridPoints", fmt.Sprintf("the grid %v has more than %d points (axis %d)", shape, MaxGridPoints, i))
		}
		n *= v
	}
	return n, nil
}

//ReciprocalGrid is a 3D grid of complex structure factors, stored flat in
//row-major order (the last axis is contiguous), together with a mask telling
//which points have already received a value. A grid belongs to one reconstruction.
type ReciprocalGrid struct {
	shape [3]int
	Data  []complex128
	set   []bool
}

//NewReciprocalGrid returns an empty grid with the given shape. It panics
//if any dimension is not positive.
func NewReciprocalGrid(shape [3]int) *ReciprocalGrid {
	for _, v := range shape {
		if v <= 0 {
			panic(ErrShape)
		}
	}
	n := shape[0] * shape[1] * shape[2]
	return &ReciprocalGrid{shape: shape, Data: make([]complex128, n), set: make([]bool, n)}
}

//Shape returns the number of points along each axis.
func (G *ReciprocalGrid) Shape() [3]int { return G.shape }

//Len returns the total number of points in the grid.
func (G *ReciprocalGrid) Len() int { return len(G.Data) }

//Strides returns the distance in the flat array between consecutive points along each axis.
func (G *ReciprocalGrid) Strides() [3]int {
	return [3]int{G.shape[1] * G.shape[2], G.shape[2], 1}
}

//Flat returns the flat index of the grid point idx, which must be inside the grid.
func (G *ReciprocalGrid) Flat(idx [3]int) int {
	return idx[2] + idx[1]*G.shape[2] + idx[0]*G.shape[1]*G.shape[2]
}

//Index returns the grid point corresponding to the flat index.
func (G *ReciprocalGrid) Index(flat int) [3]int {
	return [3]int{
		flat / (G.shape[1] * G.shape[2]),
		(flat / G.shape[2]) % G.shape[1],
		flat % G.shape[2],
	}
}

//InShape returns true if idx is inside the grid.
func (G *ReciprocalGrid) InShape(idx [3]int) bool {
	return inShape(idx, G.shape)
}

//Wrap maps negative Miller indexes to grid points by adding the axis length once.
//The result may still fall outside the grid.
func (G *ReciprocalGrid) Wrap(hkl [3]int) [3]int {
	return wrap(hkl, G.shape)
}

//IsSet returns true if the point with the given flat index has a value.
func (G *ReciprocalGrid) IsSet(flat int) bool { return G.set[flat] }

//SetIfEmpty puts v in the point with the given flat index, unless the point
//already has a value. It returns true if v was written.
func (G *ReciprocalGrid) SetIfEmpty(flat int, v complex128) bool {
	if G.set[flat] {
		return false
	}
	G.Data[flat] = v
	G.set[flat] = true
	return true
}

//At returns the value at the grid point idx.
func (G *ReciprocalGrid) At(idx [3]int) complex128 {
	if !G.InShape(idx) {
		panic(ErrOutOfGrid)
	}
	return G.Data[G.Flat(idx)]
}

//Occupied returns the number of points with a value.
func (G *ReciprocalGrid) Occupied() int {
	n := 0
	for _, v := range G.set {
		if v {
			n++
		}
	}
	return n
}

func inShape(idx, shape [3]int) bool {
	return idx[0] >= 0 && idx[0] < shape[0] &&
		idx[1] >= 0 && idx[1] < shape[1] &&
		idx[2] >= 0 && idx[2] < shape[2]
}

func wrap(hkl, shape [3]int) [3]int {
	for i := range hkl {
		if hkl[i] < 0 {
			hkl[i] += shape[i]
		}
	}
	return hkl
}
