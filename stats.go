/*
 * stats.go, part of gochem.
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
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Above this ratio between the largest imaginary part and the sum of the absolute
//real parts, a transformed grid is considered not to be real.
const significantImag = 1e-5

//GridStats summarizes a transformed complex grid, to check that the
//density it holds is real.
type GridStats struct {
	MaxAbsImag  float64
	MeanAbsReal float64
	//True if the imaginary parts are significant compared to the real ones.
	Significant bool
}

//GridStatistics returns the statistics of the grid G.
func GridStatistics(G *ReciprocalGrid) GridStats {
	var st GridStats
	var sum float64
	for _, v := range G.Data {
		sum += math.Abs(real(v))
		st.MaxAbsImag = math.Max(st.MaxAbsImag, math.Abs(imag(v)))
	}
	st.MeanAbsReal = sum / float64(len(G.Data))
	st.Significant = sum > negligible && st.MaxAbsImag/sum > significantImag
	return st
}

func (st GridStats) String() string {
	return fmt.Sprintf("max |imag| %g, mean |real| %g, significant imaginary part: %t", st.MaxAbsImag, st.MeanAbsReal, st.Significant)
}

//MapStats summarizes a density map and the data it was computed from.
type MapStats struct {
	Min, Max  float64
	Mean, SD  float64
	PeakIndex [3]int //grid point with the highest density
	//Reflection with the largest raw amplitude. HasStrongest is false
	//if no reflection has a positive amplitude.
	Strongest    Reflection
	HasStrongest bool
}

//MapStatistics returns the statistics of M. refl can be nil.
func MapStatistics(M *DensityMap, refl ReflectionSource) MapStats {
	var st MapStats
	if M.Len() == 0 {
		return st
	}
	st.Min = floats.Min(M.Data)
	st.Max = floats.Max(M.Data)
	st.Mean, st.SD = meanSD(M.Data)
	flat := floats.MaxIdx(M.Data)
	st.PeakIndex = (&ReciprocalGrid{shape: M.Shape()}).Index(flat)
	if refl == nil {
		return st
	}
	for i := 0; i < refl.Len(); i++ {
		r, err := refl.Reflection(i)
		if err != nil {
			continue
		}
		if r.Amplitude > st.Strongest.Amplitude {
			st.Strongest = r
			st.HasStrongest = true
		}
	}
	return st
}

func (st MapStats) String() string {
	return fmt.Sprintf("min %.4g max %.4g mean %.4g sd %.4g, peak at %v", st.Min, st.Max, st.Mean, st.SD, st.PeakIndex)
}

//DensityHistogram bins the values of M in bins equal intervals between the
//minimum and maximum density. It returns the bins' dividers (bins+1 values)
//and the number of points in each bin.
func DensityHistogram(M *DensityMap, bins int) ([]float64, []float64) {
	if bins < 1 {
		bins = 1
	}
	data := make([]float64, M.Len())
	copy(data, M.Data)
	sort.Float64s(data)
	lo, hi := data[0], data[len(data)-1]
	if hi <= lo {
		hi = lo + 1
	}
	dividers := floats.Span(make([]float64, bins+1), lo, hi)
	//the last bin is open on the right.
	dividers[bins] = math.Nextafter(hi, math.Inf(1))
	counts := stat.Histogram(nil, dividers, data, nil)
	return dividers, counts
}
