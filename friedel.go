/*
 * friedel.go, part of gochem.
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

import "math"

//Thresholds under which the imaginary part of a self-conjugate point is left alone.
const (
	imagRelTol = 1e-5
	imagAbsTol = 1e-5
)

//FriedelStats counts the changes made by CompleteFriedel.
type FriedelStats struct {
	Added   int //points filled with the conjugate of their mate
	Clipped int //self-conjugate points whose imaginary part was set to 0
}

//fold returns the signed index of the point i in an axis of n points:
//indexes in the upper half of the axis are negative frequencies.
func fold(i, n int) int {
	if i < n/2+n%2 {
		return i
	}
	return i - n
}

//unfold is the inverse of fold.
func unfold(i, n int) int {
	if i < 0 {
		return i + n
	}
	return i
}

//FriedelMate returns the grid point holding the Friedel mate, (-h,-k,-l),
//of the point idx, in a grid with the given shape.
func FriedelMate(idx, shape [3]int) [3]int {
	var ret [3]int
	for i := range idx {
		ret[i] = unfold(-fold(idx[i], shape[i]), shape[i])
	}
	return ret
}

//CompleteFriedel fills each empty point of G whose Friedel mate has a value
//with the complex conjugate of that value, so G becomes Hermitian and its
//transform is real. Self-conjugate points get their imaginary part
//set to zero, unless it is already negligible.
func CompleteFriedel(G *ReciprocalGrid) FriedelStats {
	if G == nil {
		panic(ErrNilGrid)
	}
	var st FriedelStats
	shape := G.Shape()
	for flat := 0; flat < G.Len(); flat++ {
		if !G.IsSet(flat) {
			continue
		}
		mate := FriedelMate(G.Index(flat), shape)
		if !inShape(mate, shape) {
			continue
		}
		mflat := G.Flat(mate)
		if G.SetIfEmpty(mflat, complex(real(G.Data[flat]), -imag(G.Data[flat]))) {
			st.Added++
		}
		if mflat != flat {
			continue
		}
		v := G.Data[flat]
		im := math.Abs(imag(v))
		if im > imagRelTol*math.Abs(real(v)) && im > imagAbsTol {
			G.Data[flat] = complex(real(v), 0)
			st.Clipped++
		}
	}
	return st
}
