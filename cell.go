/*
 * cell.go, part of gochem.
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

	v3 "github.com/pslacerda1/pymol-open-source/v3"
)

//appzero is used to decide when a floating point value is, for all
//practical purposes, zero.
const appzero float64 = 1e-12

//UnitCell contains the lengths, in A, and the angles, in degrees, of
//a crystal's unit cell.
type UnitCell struct {
	A, B, C            float64
	Alpha, Beta, Gamma float64
}

//NewUnitCell returns a validated unit cell.
func NewUnitCell(a, b, c, alpha, beta, gamma float64) (UnitCell, error) {
	u := UnitCell{A: a, B: b, C: c, Alpha: alpha, Beta: beta, Gamma: gamma}
	if err := u.Validate(); err != nil {
		return u, errDecorate(err, "NewUnitCell")
	}
	return u, nil
}

//Lengths returns a, b and c.
func (U UnitCell) Lengths() [3]float64 {
	return [3]float64{U.A, U.B, U.C}
}

//Angles returns alpha, beta and gamma, in degrees.
func (U UnitCell) Angles() [3]float64 {
	return [3]float64{U.Alpha, U.Beta, U.Gamma}
}

//Volume returns the volume of the cell, from the general (triclinic) formula.
//The result is NaN if the angles can't close a cell.
func (U UnitCell) Volume() float64 {
	ca, cb, cg := cosines(U)
	return U.A * U.B * U.C * math.Sqrt(1-ca*ca-cb*cb-cg*cg+2*ca*cb*cg)
}

//Validate returns a critical error if the lengths are not positive, the
//angles are not in (0,180) degrees, or the volume is not positive and finite.
//Cells whose angles almost close them up in a plane are also rejected.
func (U UnitCell) Validate() error {
	for i, l := range U.Lengths() {
		if !(l > 0) || math.IsInf(l, 0) {
			return newError(DegenerateCell, "Validate", fmt.Sprintf("length %d is %g", i, l))
		}
	}
	for i, a := range U.Angles() {
		if !(a > 0 && a < 180) {
			return newError(DegenerateCell, "Validate", fmt.Sprintf("angle %d is %g", i, a))
		}
	}
	v := U.Volume()
	if !finitePositive(v) || v/(U.A*U.B*U.C) < minVolumeFraction {
		return newError(DegenerateCell, "Validate", fmt.Sprintf("volume is %g", v))
	}
	return nil
}

//FracToCart returns the matrix M that takes fractional coordinates to
//cartesian ones as cart=M·frac. The a axis is along x, and b lies in the
//xy plane (PDB/CCP4 convention).
func (U UnitCell) FracToCart() *v3.Matrix {
	ca, cb, cg := cosines(U)
	sg := math.Sin(Deg2Rad(U.Gamma))
	v := U.Volume()
	M, _ := v3.NewMatrix([]float64{
		U.A, U.B * cg, U.C * cb,
		0, U.B * sg, U.C * (ca - cb*cg) / sg,
		0, 0, v / (U.A * U.B * sg),
	})
	return M
}

//CartToFrac returns the inverse of the matrix returned by FracToCart.
func (U UnitCell) CartToFrac() (*v3.Matrix, error) {
	I := v3.Zeros(3)
	if err := I.Inverse(U.FracToCart()); err != nil {
		return nil, newError(DegenerateCell, "CartToFrac", err.Error())
	}
	return I, nil
}

func (U UnitCell) String() string {
	return fmt.Sprintf("a=%.3f b=%.3f c=%.3f alpha=%.2f beta=%.2f gamma=%.2f", U.A, U.B, U.C, U.Alpha, U.Beta, U.Gamma)
}

//Cells with a volume smaller than this fraction of a·b·c are taken as flat.
const minVolumeFraction = 1e-6

func cosines(U UnitCell) (float64, float64, float64) {
	return math.Cos(Deg2Rad(U.Alpha)), math.Cos(Deg2Rad(U.Beta)), math.Cos(Deg2Rad(U.Gamma))
}

func finitePositive(f float64) bool {
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}
