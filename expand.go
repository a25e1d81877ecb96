/*
 * expand.go, part of gochem.
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

import "math/cmplx"

//ExpandStats counts what happened to the reflections during a symmetry expansion.
type ExpandStats struct {
	Used        int //reflections that were resolved and expanded
	Unresolved  int //rows that could not be resolved
	SkippedZero int //non-origin reflections with zero weighted amplitude
	Written     int //grid points that received a value
	OutOfBounds int //symmetry mates that fell outside the grid after wrapping
	Occupied    int //symmetry mates that hit an already filled point
}

//ExpandSymmetry puts in G, for each reflection of refl and each operator in ops,
//the structure factor of the symmetry mate: F=|F|·fom·exp(i(phi+2π·hkl·t)) at the
//index round(R·hkl). Negative indexes are wrapped once; mates still out of the grid
//are dropped, and the first value written to a point is kept.
//Reflections with zero weighted amplitude are skipped, except the origin.
func ExpandSymmetry(G *ReciprocalGrid, refl ReflectionSource, ops []SymOp) ExpandStats {
	if G == nil {
		panic(ErrNilGrid)
	}
	var st ExpandStats
	for i := 0; i < refl.Len(); i++ {
		r, err := refl.Reflection(i)
		if err != nil {
			st.Unresolved++
			continue
		}
		amp := r.Weighted()
		phase := Deg2Rad(r.Phase)
		if !isFinite(amp) || !isFinite(phase) {
			st.Unresolved++
			continue
		}
		if amp == 0 && !isOrigin(r.HKL) {
			st.SkippedZero++
			continue
		}
		st.Used++
		for _, op := range ops {
			mate, shift := op.Apply(r.HKL)
			mate = G.Wrap(mate)
			if !G.InShape(mate) {
				st.OutOfBounds++
				continue
			}
			F := cmplx.Rect(amp, phase+shift)
			if G.SetIfEmpty(G.Flat(mate), F) {
				st.Written++
			} else {
				st.Occupied++
			}
		}
	}
	return st
}
