/*
 * normalize_test.go, part of gochem.
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
	"testing"
)

func gridWith(shape [3]int, values ...complex128) *ReciprocalGrid {
	G := NewReciprocalGrid(shape)
	copy(G.Data, values)
	return G
}

func TestNormalizeScale(Te *testing.T) {
	G := gridWith([3]int{1, 2, 2}, 2+5i, -4, 6, 0)
	M := NormalizeMap(G, 2, false)
	expected := []float64{1, -2, 3, 0}
	for i, v := range expected {
		if M.Data[i] != v {
			Te.Errorf("Point %d: expected %g, got %g", i, v, M.Data[i])
		}
	}
	//a null volume leaves the values as they are.
	M = NormalizeMap(G, 0, false)
	for i := range G.Data {
		if M.Data[i] != real(G.Data[i]) {
			Te.Errorf("Point %d: expected %g, got %g", i, real(G.Data[i]), M.Data[i])
		}
	}
}

func TestNormalizeZScore(Te *testing.T) {
	G := gridWith([3]int{2, 2, 1}, 1, 2, 3, 4)
	mean, sd := meanSD([]float64{1, 2, 3, 4})
	if mean != 2.5 || !near(sd, math.Sqrt(1.25), 1e-12) {
		Te.Errorf("Expected mean 2.5 and sd %g, got %g and %g", math.Sqrt(1.25), mean, sd)
	}
	M := NormalizeMap(G, 1, true)
	mean, sd = meanSD(M.Data)
	if !near(mean, 0, 1e-12) || !near(sd, 1, 1e-12) {
		Te.Errorf("The normalized map should have mean 0 and sd 1, got %g and %g", mean, sd)
	}
	if !near(M.Data[0], -1.5/math.Sqrt(1.25), 1e-12) {
		Te.Errorf("Unexpected first value %g", M.Data[0])
	}
	//normalizing again does (almost) nothing
	again := NewDensityMap(M.Shape())
	copy(again.Data, M.Data)
	NormalizeInPlace(again)
	for i := range M.Data {
		if !near(again.Data[i], M.Data[i], 1e-12) {
			Te.Errorf("Point %d changed from %g to %g", i, M.Data[i], again.Data[i])
		}
	}
}

func TestNormalizeFlat(Te *testing.T) {
	flat := NormalizeMap(gridWith([3]int{2, 1, 1}, 5, 5), 1, true)
	for i, v := range flat.Data {
		if !near(v, 0, 1e-12) {
			Te.Errorf("A constant map should only be shifted to 0, point %d is %g", i, v)
		}
	}
	zero := NormalizeMap(gridWith([3]int{2, 1, 1}, 0, 0), 1, true)
	for i, v := range zero.Data {
		if v != 0 || math.IsNaN(v) {
			Te.Errorf("A null map should stay null, point %d is %g", i, v)
		}
	}
}

func TestDensityMapAccess(Te *testing.T) {
	M := NewDensityMap([3]int{2, 3, 4})
	M.Set([3]int{1, 2, 3}, 7)
	if M.Data[M.Len()-1] != 7 || M.At([3]int{1, 2, 3}) != 7 {
		Te.Errorf("The last point should be 7, got %v", M.Data)
	}
	defer func() {
		if r := recover(); r != ErrOutOfGrid {
			Te.Errorf("Expected an ErrOutOfGrid panic, got %v", r)
		}
	}()
	M.Set([3]int{0, 3, 0}, 1)
}
