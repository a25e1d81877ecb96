/*
 * reflection.go, part of gochem.
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

//Reflection is one observed structure factor.
type Reflection struct {
	HKL       [3]int  //Miller indexes
	Amplitude float64 //Usually _refln.pdbx_FWT
	Phase     float64 //In degrees, usually _refln.pdbx_PHWT
	FOM       float64 //Figure of merit, nominally in [0,1]
}

//Weighted returns the amplitude times the figure of merit.
func (R Reflection) Weighted() float64 {
	return R.Amplitude * R.FOM
}

//Reflections is an in-memory ReflectionSource.
type Reflections []Reflection

//Len returns the number of reflections.
func (R Reflections) Len() int { return len(R) }

//Reflection returns the ith reflection.
func (R Reflections) Reflection(i int) (Reflection, error) {
	if i < 0 || i >= len(R) {
		return Reflection{}, newSoftError(Unresolved, "Reflections.Reflection", fmt.Sprintf("index %d out of range", i))
	}
	return R[i], nil
}

//ReflnColumns is a column-oriented ReflectionSource, with one slice per field,
//as they come from the _refln loop of a structure-factor CIF file. The length
//of the table is that of H. A row for which any other column is too short fails to resolve.
type ReflnColumns struct {
	H, K, L   []int
	Amplitude []float64
	Phase     []float64
	FOM       []float64
}

//Len returns the number of rows, i.e. the length of the H column.
func (C *ReflnColumns) Len() int { return len(C.H) }

//Reflection returns the ith row, or an error if some of its fields are missing.
func (C *ReflnColumns) Reflection(i int) (Reflection, error) {
	if i < 0 || i >= len(C.H) {
		return Reflection{}, newSoftError(Unresolved, "ReflnColumns.Reflection", fmt.Sprintf("index %d out of range", i))
	}
	missing := ""
	switch {
	case i >= len(C.K):
		missing = "index_k"
	case i >= len(C.L):
		missing = "index_l"
	case i >= len(C.Amplitude):
		missing = "amplitude"
	case i >= len(C.Phase):
		missing = "phase"
	case i >= len(C.FOM):
		missing = "fom"
	}
	if missing != "" {
		return Reflection{}, newSoftError(Unresolved, "ReflnColumns.Reflection", fmt.Sprintf("row %d has no %s", i, missing))
	}
	return Reflection{
		HKL:       [3]int{C.H[i], C.K[i], C.L[i]},
		Amplitude: C.Amplitude[i],
		Phase:     C.Phase[i],
		FOM:       C.FOM[i],
	}, nil
}
