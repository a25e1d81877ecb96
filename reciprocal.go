/*
 * reciprocal.go, part of gochem.
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
	"math"
)

//ReciprocalSpace holds the parameters of the reciprocal lattice of a cell.
//It is computed once per reconstruction and not modified afterwards.
type ReciprocalSpace struct {
	//a*, b*, c*, in 1/A
	Lengths [3]float64
	//cos(alpha*), cos(beta*), cos(gamma*)
	Cosines [3]float64
	//Volume of the direct cell, in A^3
	Volume float64
}

//Reciprocal obtains the reciprocal space parameters of the cell with the
//standard triclinic relations (Fundamentals of Crystallography, Table 2.1).
//For a degenerate cell the result contains non-finite values; use Check on it.
func Reciprocal(U UnitCell) *ReciprocalSpace {
	al, be, ga := Deg2Rad(U.Alpha), Deg2Rad(U.Beta), Deg2Rad(U.Gamma)
	ca, cb, cg := math.Cos(al), math.Cos(be), math.Cos(ga)
	sa, sb, sg := math.Sin(al), math.Sin(be), math.Sin(ga)
	v := U.Volume()
	inv := 1 / v
	R := new(ReciprocalSpace)
	R.Lengths = [3]float64{U.B * U.C * sa * inv, U.A * U.C * sb * inv, U.A * U.B * sg * inv}
	R.Cosines = [3]float64{
		(cb*cg - ca) / (sb * sg),
		(ca*cg - cb) / (sa * sg),
		(ca*cb - cg) / (sa * sb),
	}
	R.Volume = v
	return R
}

//Check returns a critical error if any of the parameters is not finite,
//or the volume or any reciprocal length is not positive.
func (R *ReciprocalSpace) Check() error {
	if !finitePositive(R.Volume) {
		return newError(DegenerateCell, "ReciprocalSpace.Check", fmt.Sprintf("volume is %g", R.Volume))
	}
	for i := 0; i < 3; i++ {
		if !finitePositive(R.Lengths[i]) {
			return newError(DegenerateCell, "ReciprocalSpace.Check", fmt.Sprintf("reciprocal length %d is %g", i, R.Lengths[i]))
		}
		if math.IsNaN(R.Cosines[i]) || math.IsInf(R.Cosines[i], 0) {
			return newError(DegenerateCell, "ReciprocalSpace.Check", fmt.Sprintf("reciprocal cosine %d is %g", i, R.Cosines[i]))
		}
	}
	return nil
}

//DistanceSquared returns d*^2 for the Miller index hkl, with the general
//triclinic metric (Fundamentals of Crystallography, Eqn 2.17b).
func (R *ReciprocalSpace) DistanceSquared(hkl [3]int) float64 {
	h, k, l := float64(hkl[0]), float64(hkl[1]), float64(hkl[2])
	as, bs, cs := R.Lengths[0], R.Lengths[1], R.Lengths[2]
	return h*h*as*as + k*k*bs*bs + l*l*cs*cs +
		2*h*k*as*bs*R.Cosines[2] +
		2*h*l*as*cs*R.Cosines[1] +
		2*k*l*bs*cs*R.Cosines[0]
}

//Resolution returns the resolution, in A, of the reflection hkl, i.e. 1/d*.
func (R *ReciprocalSpace) Resolution(hkl [3]int) float64 {
	return 1 / math.Sqrt(R.DistanceSquared(hkl))
}
